package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/AashishSahoo/MealMate-backend-Public/controllers/user"
	"github.com/AashishSahoo/MealMate-backend-Public/middleware"
	"github.com/AashishSahoo/MealMate-backend-Public/models"
)

// SetupUserRoutes registers admin-only user management and owner approvals.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/users")
	userGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleAdmin))
	{
		userGroup.GET("/customers", userControllers.GetAllCustomers(db))
		userGroup.DELETE("/customers/:id", userControllers.DeleteCustomer(db))

		userGroup.GET("/restro-owners", userControllers.GetAllRestroOwners(db))
		userGroup.GET("/restro-owners/list", userControllers.GetRestroOwnerList(db))
		userGroup.DELETE("/restro-owners/:id", userControllers.DeleteRestroOwner(db))
	}

	statusGroup := r.Group("/restaurantStatus")
	statusGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleAdmin))
	{
		statusGroup.PUT("/approve/:id", userControllers.ApproveRestroOwner(db))
		statusGroup.PUT("/decline/:id", userControllers.DeclineRestroOwner(db))
	}
}
