package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	reportControllers "github.com/AashishSahoo/MealMate-backend-Public/controllers/report"
	"github.com/AashishSahoo/MealMate-backend-Public/middleware"
	"github.com/AashishSahoo/MealMate-backend-Public/models"
)

// SetupReportRoutes registers dashboard and export endpoints.
func SetupReportRoutes(r *gin.Engine, db *gorm.DB) {
	reportGroup := r.Group("/report")
	reportGroup.Use(middleware.ValidateToken)
	{
		ownerOnly := reportGroup.Group("/")
		ownerOnly.Use(middleware.RequireRole(models.RoleRestroOwner))
		{
			ownerOnly.GET("/dashboard/:email", reportControllers.GetOwnerDashboard(db))
			ownerOnly.GET("/monthly/:email", reportControllers.GetMonthlyProductReport(db))
		}

		adminOnly := reportGroup.Group("/")
		adminOnly.Use(middleware.RequireRole(models.RoleAdmin))
		{
			adminOnly.GET("/admin/overview", reportControllers.GetAdminDashboardOverview(db))
			adminOnly.GET("/orders-per-day", reportControllers.GetOrdersPerDay(db))
			adminOnly.GET("/orders/export", reportControllers.ExportOrdersToExcel(db))
		}

		reportGroup.GET("/customer/:email",
			middleware.RequireRole(models.RoleCustomer),
			reportControllers.GetCustomerDashboard(db))
	}
}
