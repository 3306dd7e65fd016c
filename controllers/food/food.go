package foodControllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AashishSahoo/MealMate-backend-Public/models"
	"github.com/AashishSahoo/MealMate-backend-Public/utils"
)

type addFoodInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	CategoryID  uint    `json:"categoryId" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Image       string  `json:"image"`
}

// POST /food
func AddItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input addFoodInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.BadRequest(c, "All fields are required!")
			return
		}

		var owner models.User
		if err := db.Where("email = ?", input.Email).First(&owner).Error; err != nil {
			utils.NotFound(c, "Restaurant owner not found!")
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			utils.NotFound(c, "Category not found!")
			return
		}

		food := models.Food{
			RestaurantID: owner.ID,
			Name:         input.Name,
			Description:  input.Description,
			Price:        input.Price,
			CategoryID:   input.CategoryID,
			Image:        input.Image,
			Available:    true,
		}
		if err := db.Create(&food).Error; err != nil {
			utils.ServerError(c, "Error adding food item")
			return
		}

		utils.Created(c, food, "Food item added successfully!")
	}
}

// GET /food
func GetItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var foods []models.Food
		if err := db.Preload("Category").Preload("Restaurant").Find(&foods).Error; err != nil {
			utils.ServerError(c, "Error fetching food items")
			return
		}
		utils.OK(c, withRestaurantNames(foods), "Food details fetched successfully")
	}
}

// GET /food/owner?email=
func GetItemsByOwner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			utils.BadRequest(c, "Email is required")
			return
		}

		var owner models.User
		if err := db.Where("email = ?", email).First(&owner).Error; err != nil {
			utils.NotFound(c, "User not found")
			return
		}

		var foods []models.Food
		if err := db.Preload("Category").Preload("Restaurant").
			Where("restaurant_id = ?", owner.ID).
			Find(&foods).Error; err != nil {
			utils.ServerError(c, "Error fetching food items")
			return
		}
		utils.OK(c, withRestaurantNames(foods), "Food details fetched successfully")
	}
}

type updateFoodInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	CategoryID  uint     `json:"categoryId"`
	Email       string   `json:"email" binding:"required,email"`
	Available   *bool    `json:"available"`
	Image       string   `json:"image"`
}

// PUT /food/:id
func UpdateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		foodID, err := utils.ParseUintParam(c.Param("id"))
		if err != nil {
			utils.BadRequest(c, "Invalid food ID")
			return
		}

		var input updateFoodInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		var food models.Food
		if err := db.First(&food, foodID).Error; err != nil {
			utils.NotFound(c, "Food item not found!")
			return
		}

		var owner models.User
		if err := db.Where("email = ?", input.Email).First(&owner).Error; err != nil {
			utils.NotFound(c, "Restaurant owner not found!")
			return
		}

		// Only the owning restaurant may edit its items.
		if food.RestaurantID != owner.ID {
			utils.Respond(c, 403, utils.CodeError, nil, "You are not authorized to update this food item!")
			return
		}

		if input.Name != "" {
			food.Name = input.Name
		}
		if input.Description != "" {
			food.Description = input.Description
		}
		if input.Price != nil {
			food.Price = *input.Price
		}
		if input.CategoryID != 0 {
			food.CategoryID = input.CategoryID
		}
		if input.Available != nil {
			food.Available = *input.Available
		}
		if input.Image != "" {
			food.Image = input.Image
		}

		if err := db.Save(&food).Error; err != nil {
			utils.ServerError(c, "Error updating food item")
			return
		}
		utils.OK(c, food, "Food item updated successfully!")
	}
}

// DELETE /food/:id
func DeleteItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		foodID, err := utils.ParseUintParam(c.Param("id"))
		if err != nil {
			utils.BadRequest(c, "Invalid food ID")
			return
		}

		result := db.Delete(&models.Food{}, foodID)
		if result.Error != nil {
			utils.ServerError(c, "Error deleting food item")
			return
		}
		if result.RowsAffected == 0 {
			utils.NotFound(c, "Food item not found!")
			return
		}
		utils.OK(c, nil, "Food item deleted successfully!")
	}
}

// GET /food/random — a small sample of available items for the landing page.
func GetRandomFood(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var foods []models.Food
		if err := db.Where("available = ?", true).
			Order("RANDOM()").
			Limit(7).
			Find(&foods).Error; err != nil {
			utils.ServerError(c, "Error generating random food items")
			return
		}
		utils.OK(c, foods, "Random food items fetched successfully")
	}
}

type foodWithRestaurant struct {
	models.Food
	RestaurantName string `json:"restaurantName"`
}

func withRestaurantNames(foods []models.Food) []foodWithRestaurant {
	out := make([]foodWithRestaurant, 0, len(foods))
	for _, f := range foods {
		name := f.Restaurant.RestaurantName
		if name == "" {
			name = "Unknown"
		}
		out = append(out, foodWithRestaurant{Food: f, RestaurantName: name})
	}
	return out
}
