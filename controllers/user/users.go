package userControllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AashishSahoo/MealMate-backend-Public/models"
	"github.com/AashishSahoo/MealMate-backend-Public/utils"
)

// GET /users/customers
func GetAllCustomers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Where("role_type = ?", models.RoleCustomer).Find(&users).Error; err != nil {
			utils.ServerError(c, "Error fetching users")
			return
		}
		utils.OK(c, users, "Fetched all users successfully")
	}
}

// GET /users/restro-owners
func GetAllRestroOwners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var owners []models.User
		if err := db.Where("role_type = ?", models.RoleRestroOwner).Find(&owners).Error; err != nil {
			utils.ServerError(c, "Error fetching restaurant owners")
			return
		}
		utils.OK(c, owners, "Restaurant owners list fetched successfully")
	}
}

// GET /users/restro-owners/list — id and restaurant name only, for dropdowns.
func GetRestroOwnerList(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var owners []models.User
		if err := db.Select("id", "restaurant_name").
			Where("role_type = ?", models.RoleRestroOwner).
			Find(&owners).Error; err != nil {
			utils.ServerError(c, "Error fetching restaurant owners list")
			return
		}
		utils.OK(c, owners, "Restaurant owners list fetched successfully")
	}
}

func deleteByRole(db *gorm.DB, role models.RoleType, notFoundMsg, okMsg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseUintParam(c.Param("id"))
		if err != nil {
			utils.BadRequest(c, "Invalid ID format")
			return
		}

		var user models.User
		if err := db.Where("id = ? AND role_type = ?", id, role).First(&user).Error; err != nil {
			utils.NotFound(c, notFoundMsg)
			return
		}

		if err := db.Delete(&user).Error; err != nil {
			utils.ServerError(c, "Error deleting user")
			return
		}
		utils.OK(c, user, okMsg)
	}
}

// DELETE /users/restro-owners/:id
func DeleteRestroOwner(db *gorm.DB) gin.HandlerFunc {
	return deleteByRole(db, models.RoleRestroOwner,
		"Restaurant owner not found", "Restaurant owner deleted successfully")
}

// DELETE /users/customers/:id
func DeleteCustomer(db *gorm.DB) gin.HandlerFunc {
	return deleteByRole(db, models.RoleCustomer,
		"Customer not found", "Customer deleted successfully")
}
