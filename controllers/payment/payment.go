package paymentControllers

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AashishSahoo/MealMate-backend-Public/gateway"
	"github.com/AashishSahoo/MealMate-backend-Public/models"
	"github.com/AashishSahoo/MealMate-backend-Public/utils"
)

type OrderItemInput struct {
	FoodID   uint    `json:"foodId" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Price    float64 `json:"price" binding:"required"`
}

type PlaceOrderInput struct {
	UserID          uint             `json:"userId" binding:"required"`
	RestaurantID    uint             `json:"restaurantId" binding:"required"`
	Items           []OrderItemInput `json:"items" binding:"required,min=1"`
	TotalAmount     float64          `json:"totalAmount" binding:"required"`
	DeliveryAddress string           `json:"deliveryAddress"`
}

// PlaceOrder persists a pending Order, opens a matching gateway transaction
// for the amount in minor units, and records a Payment row in "created" state
// with placeholder id/signature values.
//
// If the gateway call fails after the Order is saved, the Order is deliberately
// left pending for manual reconciliation; a marker is logged so the case is
// findable. The caller may retry payment creation.
func PlaceOrder(db *gorm.DB, gw *gateway.Client, in PlaceOrderInput) (*models.Order, *models.Payment, error) {
	order := models.Order{
		UserID:          in.UserID,
		RestaurantID:    in.RestaurantID,
		TotalAmount:     in.TotalAmount,
		Status:          models.OrderStatusPending,
		DeliveryAddress: in.DeliveryAddress,
	}
	for _, item := range in.Items {
		order.Items = append(order.Items, models.OrderItem{
			FoodID:   item.FoodID,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	if err := db.Create(&order).Error; err != nil {
		return nil, nil, err
	}

	amountMinor := int64(math.Round(order.TotalAmount * 100))
	receipt := fmt.Sprintf("order_%s", uuid.NewString())

	gatewayOrderID, err := gw.CreateOrder(amountMinor, "INR", receipt)
	if err != nil {
		log.Printf("⚠️ Reconciliation needed: order %d is pending with no gateway transaction: %v", order.ID, err)
		return nil, nil, fmt.Errorf("%w: %v", utils.ErrUpstream, err)
	}

	payment := models.Payment{
		OrderID:          order.ID,
		GatewayOrderID:   gatewayOrderID,
		GatewayPaymentID: models.PlaceholderValue,
		GatewaySignature: models.PlaceholderValue,
		Amount:           order.TotalAmount,
		Status:           models.PaymentStatusCreated,
	}
	if err := db.Create(&payment).Error; err != nil {
		log.Printf("⚠️ Reconciliation needed: order %d has gateway transaction %s but no payment row: %v",
			order.ID, gatewayOrderID, err)
		return nil, nil, err
	}

	return &order, &payment, nil
}

// VerifyPayment checks the gateway callback signature and, on success,
// advances Payment to "paid" and the linked Order to "processing" in a single
// transaction.
//
// The handler is idempotent under at-least-once callback delivery: a payment
// already marked paid is a no-op success, never a second transition.
func VerifyPayment(db *gorm.DB, gw *gateway.Client, gatewayOrderID, gatewayPaymentID, signature string) (*models.Payment, error) {
	var payment models.Payment
	if err := db.Where("gateway_order_id = ?", gatewayOrderID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: payment", utils.ErrNotFound)
		}
		return nil, err
	}

	if payment.Status == models.PaymentStatusPaid {
		return &payment, nil
	}

	if !gw.VerifySignature(gatewayOrderID, gatewayPaymentID, signature) {
		// Payment and Order stay untouched on a mismatch.
		return nil, utils.ErrInvalidSignature
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&payment).Updates(map[string]interface{}{
			"gateway_payment_id": gatewayPaymentID,
			"gateway_signature":  signature,
			"status":             models.PaymentStatusPaid,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Order{}).
			Where("id = ?", payment.OrderID).
			Update("status", models.OrderStatusProcessing).Error
	})
	if err != nil {
		// Best-effort compensation: fail the payment and cancel the order.
		// Secondary errors are logged only, never surfaced over the original.
		if cleanupErr := db.Model(&models.Payment{}).
			Where("gateway_order_id = ?", gatewayOrderID).
			Update("status", models.PaymentStatusFailed).Error; cleanupErr != nil {
			log.Printf("❌ Error during payment cleanup: %v", cleanupErr)
		} else if cleanupErr := db.Model(&models.Order{}).
			Where("id = ?", payment.OrderID).
			Update("status", models.OrderStatusCancelled).Error; cleanupErr != nil {
			log.Printf("❌ Error during order cleanup: %v", cleanupErr)
		}
		return nil, err
	}

	payment.GatewayPaymentID = gatewayPaymentID
	payment.GatewaySignature = signature
	payment.Status = models.PaymentStatusPaid
	return &payment, nil
}
