package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/AashishSahoo/MealMate-backend-Public/controllers/order"
	paymentControllers "github.com/AashishSahoo/MealMate-backend-Public/controllers/payment"
	"github.com/AashishSahoo/MealMate-backend-Public/gateway"
	"github.com/AashishSahoo/MealMate-backend-Public/middleware"
	"github.com/AashishSahoo/MealMate-backend-Public/models"
)

// SetupOrderRoutes registers all "/orders/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	// Websocket upgrade cannot carry an Authorization header from browsers,
	// so the feed stays outside the token middleware.
	r.GET("/orders/ws", orderControllers.OrderWebSocketHandler)

	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.ValidateToken)
	{
		orderGroup.GET("/user/:email", orderControllers.GetOrdersByUser(db))

		ownerOnly := orderGroup.Group("/")
		ownerOnly.Use(middleware.RequireRole(models.RoleRestroOwner))
		{
			ownerOnly.GET("/incoming/:email", orderControllers.GetIncomingOrdersByRestaurant(db))
			ownerOnly.GET("/restaurant/:email", orderControllers.GetOrdersByRestaurant(db))
			ownerOnly.PUT("/:orderId/complete", orderControllers.MarkOrderCompleted(db))
			ownerOnly.PUT("/:orderId/cancel", orderControllers.MarkOrderCancelled(db))
		}

		orderGroup.GET("/", middleware.RequireRole(models.RoleAdmin), orderControllers.GetAllOrders(db))
	}
}

// SetupPaymentRoutes registers the payment-gateway checkout endpoints.
func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB, gw *gateway.Client) {
	paymentGroup := r.Group("/payments")
	paymentGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleCustomer))
	{
		paymentGroup.POST("/create-order", paymentControllers.CreateOrderHandler(db, gw))
		paymentGroup.POST("/verify", paymentControllers.VerifyPaymentHandler(db, gw))
	}
}
