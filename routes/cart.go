package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/AashishSahoo/MealMate-backend-Public/controllers/cart"
	"github.com/AashishSahoo/MealMate-backend-Public/middleware"
	"github.com/AashishSahoo/MealMate-backend-Public/models"
)

// SetupCartRoutes registers all "/cart/*" endpoints (customers only).
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleCustomer))
	{
		cartGroup.GET("/", cartControllers.GetUserCart(db))          // GET /cart?email=
		cartGroup.POST("/add", cartControllers.AddToCart(db))        // POST /cart/add
		cartGroup.PUT("/update", cartControllers.UpdateCartItem(db)) // PUT /cart/update?userId=&foodId=
		cartGroup.DELETE("/remove", cartControllers.RemoveCartItem(db))
	}
}
