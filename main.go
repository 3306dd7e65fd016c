package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	tableControllers "github.com/AashishSahoo/MealMate-backend-Public/controllers/table"
	"github.com/AashishSahoo/MealMate-backend-Public/gateway"
	"github.com/AashishSahoo/MealMate-backend-Public/models"
	"github.com/AashishSahoo/MealMate-backend-Public/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Food{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Table{},
		&models.Otp{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	seedDefaultCategory(db)

	// Payment gateway client
	gw, err := gateway.NewClientFromEnv()
	if err != nil {
		log.Fatalf("❌ Payment gateway config: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", "./uploads")

	// Setup routes
	routes.SetupRoutes(r, db, gw)

	// Expire stale table bookings every night at 00:05
	go startBookingSweepAtFixedTime(db, 0, 5)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// seedDefaultCategory makes sure the Uncategorized sentinel exists so food
// reassignment always has a target.
func seedDefaultCategory(db *gorm.DB) {
	var category models.Category
	err := db.Where("name = ?", models.UncategorizedName).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		category = models.Category{Name: models.UncategorizedName, Description: "Default category"}
		if err := db.Create(&category).Error; err != nil {
			log.Printf("❌ Failed to seed default category: %v", err)
			return
		}
		log.Println("✅ Seeded Uncategorized category")
	} else if err != nil {
		log.Printf("❌ Failed to check default category: %v", err)
	}
}

// startBookingSweepAtFixedTime runs the table-booking expiry sweep daily at a
// fixed hour. The sweep is the only writer that marks bookings expired.
func startBookingSweepAtFixedTime(db *gorm.DB, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next booking expiry sweep scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		expired, err := tableControllers.ExpireOldBookings(db, time.Now())
		if err != nil {
			log.Printf("❌ Booking expiry sweep failed: %v", err)
			continue
		}
		log.Printf("✅ Booking expiry sweep done, %d bookings expired", expired)
	}
}
