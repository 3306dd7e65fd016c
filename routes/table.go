package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	tableControllers "github.com/AashishSahoo/MealMate-backend-Public/controllers/table"
	"github.com/AashishSahoo/MealMate-backend-Public/middleware"
	"github.com/AashishSahoo/MealMate-backend-Public/models"
)

// SetupTableRoutes registers all "/tables/*" endpoints.
func SetupTableRoutes(r *gin.Engine, db *gorm.DB) {
	tableGroup := r.Group("/tables")
	tableGroup.Use(middleware.ValidateToken)
	{
		ownerOnly := tableGroup.Group("/")
		ownerOnly.Use(middleware.RequireRole(models.RoleRestroOwner))
		{
			ownerOnly.POST("/", tableControllers.AddNewTable(db))
			ownerOnly.PUT("/:id", tableControllers.UpdateTableHandler(db))
			ownerOnly.DELETE("/:id", tableControllers.DeleteTableHandler(db))
			ownerOnly.GET("/restaurant", tableControllers.GetRestaurantTables(db))
			ownerOnly.GET("/restaurant/history", tableControllers.GetRestaurantTablesHistory(db))
		}

		customerOnly := tableGroup.Group("/")
		customerOnly.Use(middleware.RequireRole(models.RoleCustomer))
		{
			customerOnly.GET("/available", tableControllers.GetAvailableTablesForCustomers(db))
			customerOnly.POST("/book", tableControllers.BookTableHandler(db))
			customerOnly.GET("/bookings", tableControllers.GetAllBookings(db))
		}

		adminOnly := tableGroup.Group("/")
		adminOnly.Use(middleware.RequireRole(models.RoleAdmin))
		{
			adminOnly.GET("/bookings/restaurant/:id", tableControllers.GetAllBookingsByRestaurant(db))
			adminOnly.POST("/expire", tableControllers.ExpireOldBookingsHandler(db))
		}
	}
}
