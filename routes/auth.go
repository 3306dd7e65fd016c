package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AashishSahoo/MealMate-backend-Public/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.Login(db))
		authGroup.POST("/register/customer", auth.RegisterCustomer(db))
		authGroup.POST("/register/owner", auth.RegisterRestaurantOwner(db))
		authGroup.POST("/register/admin", auth.RegisterAdmin(db))

		// Email verification (OTP)
		authGroup.POST("/request-otp", auth.RequestEmailVerification(db))
		authGroup.POST("/verify-otp", auth.VerifyEmail(db))
	}
}
