package cartControllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AashishSahoo/MealMate-backend-Public/models"
	"github.com/AashishSahoo/MealMate-backend-Public/utils"
)

type addItemInput struct {
	Email    string `json:"email" binding:"required,email"`
	FoodID   uint   `json:"foodId" binding:"required"`
	Quantity int    `json:"quantity"`
}

// POST /cart/add
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input addItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		cart, err := AddItem(db, input.Email, input.FoodID, input.Quantity)
		switch {
		case errors.Is(err, utils.ErrNotFound):
			utils.NotFound(c, err.Error())
		case errors.Is(err, utils.ErrConflict):
			utils.BusinessRule(c, "Cannot add items from different restaurants. Clear cart first.")
		case err != nil:
			utils.ServerError(c, "Server error")
		default:
			utils.OK(c, cart, "Item added to cart")
		}
	}
}

type updateItemInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

// PUT /cart/update?userId=&foodId=
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, foodID, ok := cartQueryIDs(c)
		if !ok {
			return
		}

		var input updateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		cart, err := UpdateItem(db, userID, foodID, input.Quantity)
		switch {
		case errors.Is(err, utils.ErrValidation):
			utils.BusinessRule(c, "Quantity must be between 1 and 10")
		case errors.Is(err, utils.ErrNotFound):
			utils.NotFound(c, "Item not found in cart")
		case err != nil:
			utils.ServerError(c, "Server error")
		default:
			utils.OK(c, cart, "Quantity updated")
		}
	}
}

// DELETE /cart/remove?userId=&foodId=
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, foodID, ok := cartQueryIDs(c)
		if !ok {
			return
		}

		cart, err := RemoveItem(db, userID, foodID)
		switch {
		case errors.Is(err, utils.ErrNotFound):
			utils.NotFound(c, "Cart not found or item does not exist")
		case err != nil:
			utils.ServerError(c, "Server error")
		case cart == nil:
			utils.OK(c, nil, "Cart emptied")
		default:
			utils.OK(c, cart, "Item removed")
		}
	}
}

// GET /cart?email=
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			utils.BadRequest(c, "Email parameter is required")
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			utils.NotFound(c, "User not found")
			return
		}

		cart, err := GetCart(db, user.ID)
		if err != nil {
			utils.ServerError(c, "Server error")
			return
		}
		if cart == nil {
			utils.OK(c, gin.H{"items": []models.CartItem{}, "grandTotal": 0, "restaurant": nil}, "Empty cart")
			return
		}

		var restaurant models.User
		db.Select("id", "restaurant_name", "app_logo").First(&restaurant, cart.RestaurantID)

		utils.OK(c, gin.H{
			"cart": cart,
			"restaurant": gin.H{
				"name": restaurant.RestaurantName,
				"logo": restaurant.AppLogo,
			},
		}, "Cart retrieved successfully")
	}
}

func cartQueryIDs(c *gin.Context) (userID, foodID uint, ok bool) {
	uid, err1 := utils.ParseUintParam(c.Query("userId"))
	fid, err2 := utils.ParseUintParam(c.Query("foodId"))
	if err1 != nil || err2 != nil {
		utils.BadRequest(c, "Both foodId and userId are required")
		return 0, 0, false
	}
	return uid, fid, true
}
