package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	categoryControllers "github.com/AashishSahoo/MealMate-backend-Public/controllers/category"
	foodControllers "github.com/AashishSahoo/MealMate-backend-Public/controllers/food"
	"github.com/AashishSahoo/MealMate-backend-Public/middleware"
	"github.com/AashishSahoo/MealMate-backend-Public/models"
)

// SetupCatalogRoutes registers category and food endpoints. Reads are open to
// any authenticated user; writes require the owner (or admin) role.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	categoryGroup := r.Group("/categories")
	categoryGroup.Use(middleware.ValidateToken)
	{
		categoryGroup.GET("/", categoryControllers.GetCategories(db))

		adminOnly := categoryGroup.Group("/")
		adminOnly.Use(middleware.RequireRole(models.RoleAdmin))
		{
			adminOnly.POST("/", categoryControllers.CreateCategory(db))
			adminOnly.DELETE("/:id", categoryControllers.DeleteCategoryHandler(db))
		}
	}

	foodGroup := r.Group("/food")
	foodGroup.Use(middleware.ValidateToken)
	{
		foodGroup.GET("/", foodControllers.GetItems(db))
		foodGroup.GET("/random", foodControllers.GetRandomFood(db))
		foodGroup.GET("/owner", foodControllers.GetItemsByOwner(db))

		ownerOnly := foodGroup.Group("/")
		ownerOnly.Use(middleware.RequireRole(models.RoleRestroOwner))
		{
			ownerOnly.POST("/", foodControllers.AddItem(db))
			ownerOnly.PUT("/:id", foodControllers.UpdateItem(db))
			ownerOnly.DELETE("/:id", foodControllers.DeleteItem(db))
		}
	}
}
