package paymentControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/AashishSahoo/MealMate-backend-Public/controllers/order"
	"github.com/AashishSahoo/MealMate-backend-Public/gateway"
	"github.com/AashishSahoo/MealMate-backend-Public/utils"
)

// POST /payments/create-order
func CreateOrderHandler(db *gorm.DB, gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		order, payment, err := PlaceOrder(db, gw, input)
		if err != nil {
			if errors.Is(err, utils.ErrUpstream) {
				utils.Respond(c, http.StatusBadGateway, utils.CodeError, nil, err.Error())
				return
			}
			utils.ServerError(c, err.Error())
			return
		}

		utils.Created(c, gin.H{
			"order":   order,
			"payment": payment,
		}, "Order created")
	}
}

type verifyPaymentInput struct {
	GatewayOrderID   string `json:"gatewayOrderId" binding:"required"`
	GatewayPaymentID string `json:"gatewayPaymentId" binding:"required"`
	GatewaySignature string `json:"gatewaySignature" binding:"required"`
}

// POST /payments/verify
func VerifyPaymentHandler(db *gorm.DB, gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input verifyPaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		payment, err := VerifyPayment(db, gw, input.GatewayOrderID, input.GatewayPaymentID, input.GatewaySignature)
		switch {
		case errors.Is(err, utils.ErrInvalidSignature):
			utils.BadRequest(c, "Invalid signature")
			return
		case errors.Is(err, utils.ErrNotFound):
			utils.NotFound(c, "Payment not found")
			return
		case err != nil:
			utils.ServerError(c, "Payment verification failed")
			return
		}

		orderControllers.BroadcastOrderUpdate(db, payment.OrderID)

		utils.OK(c, gin.H{"payment": payment}, "Payment verified")
	}
}
