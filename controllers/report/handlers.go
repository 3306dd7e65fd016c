package reportControllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/AashishSahoo/MealMate-backend-Public/models"
	"github.com/AashishSahoo/MealMate-backend-Public/utils"
)

func ownerByEmail(db *gorm.DB, email string) (*models.User, error) {
	var owner models.User
	err := db.Where("email = ? AND role_type = ?", email, models.RoleRestroOwner).First(&owner).Error
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// GET /report/dashboard/:email
func GetOwnerDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, err := ownerByEmail(db, c.Param("email"))
		if err != nil {
			utils.NotFound(c, "Restaurant owner not found")
			return
		}

		stats, err := OwnerDashboard(db, owner.ID)
		if err != nil {
			utils.ServerError(c, "Error fetching dashboard stats")
			return
		}
		utils.OK(c, stats, "Dashboard stats fetched successfully")
	}
}

// GET /report/monthly/:email
func GetMonthlyProductReport(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, err := ownerByEmail(db, c.Param("email"))
		if err != nil {
			utils.NotFound(c, "Restaurant owner not found")
			return
		}

		report, err := MonthlyProductReport(db, owner.ID)
		if err != nil {
			utils.ServerError(c, "Error generating monthly report")
			return
		}
		utils.OK(c, report, "Monthly product report fetched successfully")
	}
}

// GET /report/admin/overview
func GetAdminDashboardOverview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		overview, err := AdminDashboardOverview(db, time.Now())
		if err != nil {
			utils.ServerError(c, "Error fetching admin dashboard")
			return
		}
		utils.OK(c, overview, "Admin dashboard fetched successfully")
	}
}

// GET /report/orders-per-day?year=
func GetOrdersPerDay(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		year := time.Now().Year()
		if raw := c.Query("year"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				utils.BadRequest(c, "Invalid year")
				return
			}
			year = parsed
		}

		series, err := OrdersPerDay(db, year)
		if err != nil {
			utils.ServerError(c, "Error fetching orders per day")
			return
		}
		utils.OK(c, series, "Orders per day fetched successfully")
	}
}

// GET /report/customer/:email
func GetCustomerDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		err := db.Where("email = ? AND role_type = ?", c.Param("email"), models.RoleCustomer).
			First(&user).Error
		if err != nil {
			utils.NotFound(c, "User not found")
			return
		}

		dashboard, err := CustomerDashboardStats(db, user.ID, time.Now())
		if err != nil {
			utils.ServerError(c, "Error fetching user dashboard")
			return
		}
		utils.OK(c, dashboard, "User dashboard fetched successfully")
	}
}

// GET /report/orders/export — admin download of all orders as a spreadsheet.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("User").Preload("Restaurant").Preload("Items").
			Find(&orders).Error; err != nil {
			utils.ServerError(c, "Failed to fetch orders")
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			utils.ServerError(c, "Failed to create Excel sheet")
			return
		}

		// Header row
		headers := []string{
			"ID", "Customer", "Restaurant", "Items",
			"TotalAmount", "Status", "DeliveryAddress", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.User.Email)
			row.AddCell().SetValue(o.Restaurant.RestaurantName)
			row.AddCell().SetValue(len(o.Items))
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.DeliveryAddress)
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			utils.ServerError(c, "Failed to write Excel file")
			return
		}
	}
}
