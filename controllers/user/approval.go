package userControllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AashishSahoo/MealMate-backend-Public/models"
	"github.com/AashishSahoo/MealMate-backend-Public/utils"
)

func setOwnerStatus(db *gorm.DB, ownerID uint, status int) (*models.User, error) {
	var owner models.User
	err := db.Where("id = ? AND role_type = ?", ownerID, models.RoleRestroOwner).First(&owner).Error
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = db.Model(&owner).Updates(map[string]interface{}{
		"restro_owner_status": status,
		"update_status_time":  now,
	}).Error
	if err != nil {
		return nil, err
	}
	owner.RestroOwnerStatus = status
	owner.UpdateStatusTime = &now
	return &owner, nil
}

// PUT /restaurantStatus/approve/:id
func ApproveRestroOwner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, err := utils.ParseUintParam(c.Param("id"))
		if err != nil {
			utils.BadRequest(c, "Invalid ID format")
			return
		}

		owner, err := setOwnerStatus(db, ownerID, models.OwnerStatusApproved)
		if err != nil {
			utils.NotFound(c, "Restaurant owner not found")
			return
		}

		// Notification is fire and forget; the approval stands regardless.
		go utils.SendApprovalEmail(owner.Email, owner.FirstName, owner.LastName, owner.RestaurantName)

		utils.OK(c, owner, "Restaurant owner approved successfully")
	}
}

// PUT /restaurantStatus/decline/:id
func DeclineRestroOwner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, err := utils.ParseUintParam(c.Param("id"))
		if err != nil {
			utils.BadRequest(c, "Invalid ID format")
			return
		}

		var input struct {
			Feedback string `json:"feedback" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.BadRequest(c, "Feedback is required for rejection")
			return
		}

		owner, err := setOwnerStatus(db, ownerID, models.OwnerStatusDeclined)
		if err != nil {
			utils.NotFound(c, "Restaurant owner not found")
			return
		}

		go utils.SendRejectionEmail(owner.Email, owner.FirstName, owner.LastName, owner.RestaurantName, input.Feedback)

		utils.OK(c, owner, "Restaurant owner declined successfully")
	}
}
