package categoryControllers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AashishSahoo/MealMate-backend-Public/models"
	"github.com/AashishSahoo/MealMate-backend-Public/utils"
)

// POST /categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name        string `json:"name" binding:"required"`
			Description string `json:"description"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.BadRequest(c, "Name is required")
			return
		}

		var existing models.Category
		if err := db.Where("name = ?", input.Name).First(&existing).Error; err == nil {
			utils.Respond(c, 400, utils.CodeDuplicate, nil, "Category already exists")
			return
		}

		category := models.Category{Name: input.Name, Description: input.Description}
		if err := db.Create(&category).Error; err != nil {
			utils.ServerError(c, err.Error())
			return
		}

		var all []models.Category
		if err := db.Find(&all).Error; err != nil {
			utils.ServerError(c, err.Error())
			return
		}
		utils.Created(c, all, "Category created successfully")
	}
}

// GET /categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			utils.ServerError(c, err.Error())
			return
		}
		utils.OK(c, categories, "Category details fetched successfully")
	}
}

// DeleteCategory removes a category and reassigns its food items to the
// "Uncategorized" sentinel, creating the sentinel on demand. The sentinel
// itself cannot be deleted.
func DeleteCategory(db *gorm.DB, categoryID uint) error {
	var category models.Category
	if err := db.First(&category, categoryID).Error; err != nil {
		return fmt.Errorf("%w: category", utils.ErrNotFound)
	}

	if category.Name == models.UncategorizedName {
		return fmt.Errorf("%w: cannot delete default Uncategorized category", utils.ErrValidation)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var fallback models.Category
		err := tx.Where("name = ?", models.UncategorizedName).First(&fallback).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fallback = models.Category{Name: models.UncategorizedName, Description: "Default category"}
			if err := tx.Create(&fallback).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := tx.Model(&models.Food{}).
			Where("category_id = ?", category.ID).
			Update("category_id", fallback.ID).Error; err != nil {
			return err
		}

		return tx.Delete(&category).Error
	})
}

// DELETE /categories/:id
func DeleteCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := utils.ParseUintParam(c.Param("id"))
		if err != nil {
			utils.BadRequest(c, "Invalid category ID")
			return
		}

		err = DeleteCategory(db, categoryID)
		switch {
		case errors.Is(err, utils.ErrNotFound):
			utils.NotFound(c, "Category not found")
		case errors.Is(err, utils.ErrValidation):
			utils.BadRequest(c, "Cannot delete default Uncategorized category")
		case err != nil:
			utils.ServerError(c, err.Error())
		default:
			utils.OK(c, nil, "Category deleted and food items reassigned")
		}
	}
}
