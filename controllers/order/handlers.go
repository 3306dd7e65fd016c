package orderControllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AashishSahoo/MealMate-backend-Public/models"
	"github.com/AashishSahoo/MealMate-backend-Public/utils"
)

func userByEmail(c *gin.Context, db *gorm.DB) (*models.User, bool) {
	email := c.Param("email")
	if email == "" {
		utils.BadRequest(c, "Email is required")
		return nil, false
	}
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		utils.NotFound(c, "User not found")
		return nil, false
	}
	return &user, true
}

// GET /orders/user/:email
func GetOrdersByUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userByEmail(c, db)
		if !ok {
			return
		}
		orders, err := OrdersByUser(db, user.ID)
		if err != nil {
			utils.ServerError(c, err.Error())
			return
		}
		if len(orders) == 0 {
			utils.NotFound(c, "No order history found")
			return
		}
		utils.OK(c, orders, "")
	}
}

// GET /orders/incoming/:email
func GetIncomingOrdersByRestaurant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userByEmail(c, db)
		if !ok {
			return
		}
		orders, err := IncomingOrdersByRestaurant(db, user.ID)
		if err != nil {
			utils.ServerError(c, err.Error())
			return
		}
		if len(orders) == 0 {
			utils.NotFound(c, "No processing orders found for this restaurant")
			return
		}
		utils.OK(c, orders, "")
	}
}

// GET /orders/restaurant/:email
func GetOrdersByRestaurant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userByEmail(c, db)
		if !ok {
			return
		}
		orders, err := HistoryByRestaurant(db, user.ID)
		if err != nil {
			utils.ServerError(c, err.Error())
			return
		}
		if len(orders) == 0 {
			utils.NotFound(c, "No orders found")
			return
		}
		utils.OK(c, orders, "")
	}
}

// GET /orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := AllOrders(db)
		if err != nil {
			utils.ServerError(c, err.Error())
			return
		}
		utils.OK(c, orders, "All orders fetched successfully")
	}
}

func statusHandler(db *gorm.DB, target models.OrderStatus, verb string) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := utils.ParseUintParam(c.Param("orderId"))
		if err != nil {
			utils.BadRequest(c, "Order ID is required")
			return
		}

		order, changed, err := SetStatus(db, orderID, target)
		switch {
		case errors.Is(err, utils.ErrNotFound):
			utils.NotFound(c, "Order not found")
			return
		case err != nil:
			utils.ServerError(c, err.Error())
			return
		}

		if changed {
			broadcastOrder(order)
			utils.OK(c, order, "Order marked as "+verb)
			return
		}
		utils.OK(c, order, "Order already "+verb)
	}
}

// PUT /orders/:orderId/complete
func MarkOrderCompleted(db *gorm.DB) gin.HandlerFunc {
	return statusHandler(db, models.OrderStatusCompleted, "completed")
}

// PUT /orders/:orderId/cancel
func MarkOrderCancelled(db *gorm.DB) gin.HandlerFunc {
	return statusHandler(db, models.OrderStatusCancelled, "cancelled")
}
