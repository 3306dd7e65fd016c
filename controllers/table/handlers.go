package tableControllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AashishSahoo/MealMate-backend-Public/models"
	"github.com/AashishSahoo/MealMate-backend-Public/utils"
)

type addTableRequest struct {
	Email string `json:"email" binding:"required,email"`
	AddTableInput
}

// POST /tables
func AddNewTable(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addTableRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequest(c, "All fields are required.")
			return
		}

		table, err := AddTable(db, req.Email, req.AddTableInput)
		switch {
		case errors.Is(err, utils.ErrNotFound):
			utils.NotFound(c, "Restaurant owner not found!")
		case errors.Is(err, utils.ErrConflict):
			utils.BusinessRule(c, "Table with the same number, date and timeslot already exists!")
		case err != nil:
			utils.ServerError(c, "Error adding new table!")
		default:
			utils.Created(c, table, "Table added successfully!")
		}
	}
}

// PUT /tables/:id
func UpdateTableHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tableID, err := utils.ParseUintParam(c.Param("id"))
		if err != nil {
			utils.BadRequest(c, "Invalid table ID format!")
			return
		}

		var input UpdateTableInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		table, err := UpdateTable(db, tableID, input)
		switch {
		case errors.Is(err, utils.ErrNotFound):
			utils.NotFound(c, "Table not found!")
		case errors.Is(err, utils.ErrConflict):
			utils.BusinessRule(c, "Another table with the same number, date, and timeslot already exists!")
		case err != nil:
			utils.ServerError(c, "Error updating table!")
		default:
			utils.OK(c, table, "Table updated successfully!")
		}
	}
}

// DELETE /tables/:id
func DeleteTableHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tableID, err := utils.ParseUintParam(c.Param("id"))
		if err != nil {
			utils.BadRequest(c, "Invalid table ID format!")
			return
		}

		if err := DeleteTable(db, tableID); err != nil {
			if errors.Is(err, utils.ErrNotFound) {
				utils.NotFound(c, "Table not found!")
				return
			}
			utils.ServerError(c, "Error deleting table!")
			return
		}
		utils.OK(c, nil, "Table deleted successfully!")
	}
}

// GET /tables/restaurant?email=
func GetRestaurantTables(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerByEmail(c, db)
		if !ok {
			return
		}

		tables, err := OwnerTables(db, owner.ID, time.Now())
		if err != nil {
			utils.ServerError(c, "Error fetching tables!")
			return
		}
		utils.OK(c, tables, "Tables fetched successfully!")
	}
}

// GET /tables/restaurant/history?email=
func GetRestaurantTablesHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerByEmail(c, db)
		if !ok {
			return
		}

		tables, err := OwnerBookingHistory(db, owner.ID)
		if err != nil {
			utils.ServerError(c, "Error fetching tables history!")
			return
		}
		utils.OK(c, tables, "Tables history fetched successfully!")
	}
}

// GET /tables/available?email=
func GetAvailableTablesForCustomers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			utils.BadRequest(c, "Email is required.")
			return
		}

		var customer models.User
		err := db.Where("email = ? AND role_type = ?", email, models.RoleCustomer).First(&customer).Error
		if err != nil {
			utils.NotFound(c, "Customer not found!")
			return
		}

		tables, err := AvailableForCustomer(db, time.Now())
		if err != nil {
			utils.ServerError(c, "Error fetching available tables!")
			return
		}
		utils.OK(c, tables, "Available tables fetched successfully!")
	}
}

type bookTableRequest struct {
	TableID uint   `json:"tableId" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
}

// POST /tables/book
func BookTableHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req bookTableRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequest(c, "Table ID and email are required.")
			return
		}

		table, err := BookTable(db, req.TableID, req.Email, time.Now())
		switch {
		case errors.Is(err, utils.ErrNotFound):
			utils.NotFound(c, err.Error())
		case errors.Is(err, utils.ErrConflict):
			utils.BusinessRule(c, "Table is already booked!")
		case err != nil:
			utils.ServerError(c, "Error booking table!")
		default:
			utils.OK(c, table, "Table booked successfully!")
		}
	}
}

// GET /tables/bookings?email=
func GetAllBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			utils.BadRequest(c, "Email is required.")
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			utils.NotFound(c, "User not found!")
			return
		}

		bookings, err := CustomerBookings(db, user.ID)
		if err != nil {
			utils.ServerError(c, "Error fetching bookings!")
			return
		}
		utils.OK(c, bookings, "Bookings fetched successfully!")
	}
}

// GET /tables/bookings/restaurant/:id
func GetAllBookingsByRestaurant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID, err := utils.ParseUintParam(c.Param("id"))
		if err != nil {
			utils.BadRequest(c, "Restaurant ID is required.")
			return
		}

		bookings, err := BookingsByRestaurant(db, restaurantID, time.Now())
		if err != nil {
			if errors.Is(err, utils.ErrNotFound) {
				utils.NotFound(c, "Restaurant not found or not authorized.")
				return
			}
			utils.ServerError(c, "Error fetching bookings!")
			return
		}
		utils.OK(c, bookings, "Restaurant bookings fetched successfully!")
	}
}

// POST /tables/expire — the maintenance sweep, also run on a schedule by main.
func ExpireOldBookingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := ExpireOldBookings(db, time.Now())
		if err != nil {
			utils.ServerError(c, "Error expiring old bookings")
			return
		}
		utils.OK(c, gin.H{"expired": count}, "Expired old bookings")
	}
}

func ownerByEmail(c *gin.Context, db *gorm.DB) (*models.User, bool) {
	email := c.Query("email")
	if email == "" {
		utils.BadRequest(c, "Email is required.")
		return nil, false
	}

	var owner models.User
	err := db.Where("email = ? AND role_type = ?", email, models.RoleRestroOwner).First(&owner).Error
	if err != nil {
		utils.NotFound(c, "Restaurant owner not found!")
		return nil, false
	}
	return &owner, true
}
