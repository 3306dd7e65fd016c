package categoryControllers

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/AashishSahoo/MealMate-backend-Public/models"
	"github.com/AashishSahoo/MealMate-backend-Public/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Food{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestDeleteCategoryReassignsFood(t *testing.T) {
	db := newTestDB(t)

	category := models.Category{Name: "Starters"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	food := models.Food{RestaurantID: 1, Name: "Soup", Price: 50, CategoryID: category.ID}
	if err := db.Create(&food).Error; err != nil {
		t.Fatalf("seed food: %v", err)
	}

	if err := DeleteCategory(db, category.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}

	// The sentinel is created on demand and the food moved into it.
	var fallback models.Category
	if err := db.Where("name = ?", models.UncategorizedName).First(&fallback).Error; err != nil {
		t.Fatalf("sentinel not created: %v", err)
	}

	var reloaded models.Food
	if err := db.First(&reloaded, food.ID).Error; err != nil {
		t.Fatalf("reload food: %v", err)
	}
	if reloaded.CategoryID != fallback.ID {
		t.Errorf("food not reassigned, category %d", reloaded.CategoryID)
	}

	var gone models.Category
	if err := db.First(&gone, category.ID).Error; !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("deleted category still present")
	}
}

func TestDeleteCategoryReusesExistingSentinel(t *testing.T) {
	db := newTestDB(t)

	fallback := models.Category{Name: models.UncategorizedName}
	category := models.Category{Name: "Drinks"}
	for _, c := range []*models.Category{&fallback, &category} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("seed category: %v", err)
		}
	}

	if err := DeleteCategory(db, category.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}

	var count int64
	db.Model(&models.Category{}).Where("name = ?", models.UncategorizedName).Count(&count)
	if count != 1 {
		t.Fatalf("expected a single sentinel, got %d", count)
	}
}

func TestSentinelCategoryCannotBeDeleted(t *testing.T) {
	db := newTestDB(t)

	fallback := models.Category{Name: models.UncategorizedName}
	if err := db.Create(&fallback).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	if err := DeleteCategory(db, fallback.ID); !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestDeleteMissingCategory(t *testing.T) {
	db := newTestDB(t)

	if err := DeleteCategory(db, 42); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
