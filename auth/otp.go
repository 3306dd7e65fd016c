package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AashishSahoo/MealMate-backend-Public/models"
	"github.com/AashishSahoo/MealMate-backend-Public/utils"
)

const otpTTL = 10 * time.Minute

func generateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

type otpRequestInput struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /auth/request-otp
func RequestEmailVerification(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input otpRequestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.BadRequest(c, "Email is required")
			return
		}

		var verified models.User
		if err := db.Where("email = ? AND is_verified = ?", input.Email, true).First(&verified).Error; err == nil {
			utils.Respond(c, http.StatusConflict, utils.CodeError, nil, "Email already verified")
			return
		}

		code, err := generateOtp()
		if err != nil {
			utils.ServerError(c, "Failed to send OTP")
			return
		}

		// A fresh request invalidates previous codes for the address.
		db.Where("email = ?", input.Email).Delete(&models.Otp{})

		otp := models.Otp{
			Email:     input.Email,
			Code:      code,
			ExpiresAt: time.Now().Add(otpTTL),
		}
		if err := db.Create(&otp).Error; err != nil {
			utils.ServerError(c, "Failed to send OTP")
			return
		}

		if err := utils.SendOtpEmail(input.Email, code); err != nil {
			utils.ServerError(c, "Failed to send OTP: "+err.Error())
			return
		}

		utils.OK(c, nil, "OTP sent successfully. Please check your email.")
	}
}

type otpVerifyInput struct {
	Email string `json:"email" binding:"required,email"`
	Otp   string `json:"otp" binding:"required"`
}

// POST /auth/verify-otp
func VerifyEmail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input otpVerifyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.BadRequest(c, "Email and OTP are required")
			return
		}

		var otp models.Otp
		err := db.Where("email = ? AND code = ?", input.Email, input.Otp).
			Order("created_at DESC").First(&otp).Error
		if err != nil {
			utils.BadRequest(c, "Invalid OTP")
			return
		}
		if time.Now().After(otp.ExpiresAt) {
			utils.BadRequest(c, "OTP has expired")
			return
		}

		db.Delete(&otp)

		now := time.Now()
		db.Model(&models.User{}).
			Where("email = ? AND is_verified = ?", input.Email, false).
			Updates(map[string]interface{}{"is_verified": true, "verified_at": now})

		utils.OK(c, nil, "Email verified successfully")
	}
}
