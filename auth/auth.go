package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AashishSahoo/MealMate-backend-Public/models"
	"github.com/AashishSahoo/MealMate-backend-Public/utils"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	RoleType string `json:"roleType" binding:"required"`
}

// POST /auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		var user models.User
		err := db.Where("email = ? AND role_type = ?", input.Email, input.RoleType).First(&user).Error
		if err != nil {
			utils.NotFound(c, "User not found or invalid role")
			return
		}

		// Owners must be approved by an admin before they can authenticate.
		if user.RoleType == models.RoleRestroOwner && user.RestroOwnerStatus != models.OwnerStatusApproved {
			utils.NotFound(c, "Your account is not yet approved by admin")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			utils.Respond(c, http.StatusUnauthorized, utils.CodeError, nil, "Invalid password")
			return
		}

		token, err := IssueToken(&user)
		if err != nil {
			utils.ServerError(c, "Token generation failed")
			return
		}

		utils.OK(c, gin.H{
			"user": gin.H{
				"userId":   user.ID,
				"email":    user.Email,
				"roleType": user.RoleType,
			},
			"token": token,
		}, "Login successful")
	}
}

type RegisterCustomerInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	MobileNo  string `json:"mobileNo"`
	Email     string `json:"email" binding:"required,email"`
	Address   string `json:"address"`
	Password  string `json:"password" binding:"required,min=6"`
}

// POST /auth/register/customer
func RegisterCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterCustomerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.ServerError(c, "Error registering new customer")
			return
		}

		user := models.User{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			MobileNo:  input.MobileNo,
			Email:     input.Email,
			Address:   input.Address,
			Password:  string(hashed),
			RoleType:  models.RoleCustomer,
		}

		if err := db.Create(&user).Error; err != nil {
			utils.Respond(c, http.StatusConflict, utils.CodeError, nil, "Email already exists")
			return
		}

		go utils.SendWelcomeEmail(user.Email, user.FirstName)

		utils.Created(c, user.ID, "Customer registered successfully")
	}
}

type RegisterOwnerInput struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName"`
	Email          string `json:"email" binding:"required,email"`
	MobileNo       string `json:"mobileNo" binding:"required"`
	RestaurantName string `json:"restaurantName" binding:"required"`
	Address        string `json:"address"`
	Password       string `json:"password" binding:"required,min=6"`
	AppLogo        string `json:"appLogo" binding:"required"`
	Document       string `json:"document" binding:"required"`
}

// POST /auth/register/owner — new owners start in the pending state and cannot
// log in until an admin approves them.
func RegisterRestaurantOwner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterOwnerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		var existing models.User
		err := db.Where("email = ? OR mobile_no = ? OR restaurant_name = ?",
			input.Email, input.MobileNo, input.RestaurantName).First(&existing).Error
		if err == nil {
			message := "Restaurant name already exists."
			switch {
			case existing.Email == input.Email:
				message = "Email already exists."
			case existing.MobileNo == input.MobileNo:
				message = "Mobile number already exists."
			}
			utils.Respond(c, http.StatusConflict, utils.CodeError, nil, message)
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ServerError(c, "Error registering new Restaurant Owner")
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.ServerError(c, "Error registering new Restaurant Owner")
			return
		}

		owner := models.User{
			FirstName:         input.FirstName,
			LastName:          input.LastName,
			Email:             input.Email,
			MobileNo:          input.MobileNo,
			RestaurantName:    input.RestaurantName,
			Address:           input.Address,
			Password:          string(hashed),
			AppLogo:           input.AppLogo,
			Document:          input.Document,
			RoleType:          models.RoleRestroOwner,
			RestroOwnerStatus: models.OwnerStatusPending,
		}

		if err := db.Create(&owner).Error; err != nil {
			utils.ServerError(c, "Error registering new Restaurant Owner")
			return
		}

		utils.Created(c, owner.ID, "Restaurant Owner registered successfully")
	}
}

type RegisterAdminInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// POST /auth/register/admin
func RegisterAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterAdminInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		var existing models.User
		if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			utils.Respond(c, http.StatusConflict, utils.CodeError, nil, "Admin already exists!")
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.ServerError(c, "Error registering new admin")
			return
		}

		admin := models.User{
			Email:      input.Email,
			Password:   string(hashed),
			RoleType:   models.RoleAdmin,
			IsVerified: true, // admins skip email verification
		}

		if err := db.Create(&admin).Error; err != nil {
			utils.ServerError(c, "Error registering new admin")
			return
		}

		utils.OK(c, nil, "Admin Registered Successfully")
	}
}
