package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AashishSahoo/MealMate-backend-Public/gateway"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, gw *gateway.Client) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Admin-only user management and approvals
	SetupUserRoutes(r, db)

	// Menu catalog: categories and food items
	SetupCatalogRoutes(r, db)

	// Customer cart
	SetupCartRoutes(r, db)

	// Orders (incl. websocket feed) and payments
	SetupOrderRoutes(r, db)
	SetupPaymentRoutes(r, db, gw)

	// Table reservations
	SetupTableRoutes(r, db)

	// Dashboards and exports
	SetupReportRoutes(r, db)
}
