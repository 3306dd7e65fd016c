package cartControllers

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
	// One connection so every query sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Food{},
		&models.Cart{}, &models.CartItem{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) (customer models.User, foodA, foodB models.Food) {
	t.Helper()

	customer = models.User{Email: "cust@test.com", Password: "x", RoleType: models.RoleCustomer}
	ownerA := models.User{Email: "ownerA@test.com", Password: "x", RoleType: models.RoleRestroOwner, RestaurantName: "Place A"}
	ownerB := models.User{Email: "ownerB@test.com", Password: "x", RoleType: models.RoleRestroOwner, RestaurantName: "Place B"}
	for _, u := range []*models.User{&customer, &ownerA, &ownerB} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	category := models.Category{Name: "Mains"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	foodA = models.Food{RestaurantID: ownerA.ID, Name: "Biryani", Price: 100, CategoryID: category.ID, Available: true}
	foodB = models.Food{RestaurantID: ownerB.ID, Name: "Pizza", Price: 250, CategoryID: category.ID, Available: true}
	for _, f := range []*models.Food{&foodA, &foodB} {
		if err := db.Create(f).Error; err != nil {
			t.Fatalf("seed food: %v", err)
		}
	}
	return customer, foodA, foodB
}

func TestAddItemCreatesCartWithTotals(t *testing.T) {
	db := newTestDB(t)
	customer, foodA, _ := seedCatalog(t, db)

	cart, err := AddItem(db, customer.Email, foodA.ID, 5)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cart.Items))
	}
	if cart.Items[0].ItemTotal != 500 {
		t.Errorf("expected item total 500, got %v", cart.Items[0].ItemTotal)
	}
	if cart.GrandTotal != 500 {
		t.Errorf("expected grand total 500, got %v", cart.GrandTotal)
	}
	if cart.RestaurantID != foodA.RestaurantID {
		t.Errorf("cart bound to wrong restaurant")
	}
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	db := newTestDB(t)
	customer, foodA, _ := seedCatalog(t, db)

	if _, err := AddItem(db, customer.Email, foodA.ID, 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	cart, err := AddItem(db, customer.Email, foodA.ID, 3)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", cart.Items[0].Quantity)
	}
	if cart.GrandTotal != 500 {
		t.Errorf("expected grand total 500, got %v", cart.GrandTotal)
	}
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	db := newTestDB(t)
	customer, foodA, _ := seedCatalog(t, db)

	cart, err := AddItem(db, customer.Email, foodA.ID, 0)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if cart.Items[0].Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", cart.Items[0].Quantity)
	}
}

func TestAddItemAcrossRestaurantsConflicts(t *testing.T) {
	db := newTestDB(t)
	customer, foodA, foodB := seedCatalog(t, db)

	if _, err := AddItem(db, customer.Email, foodA.ID, 1); err != nil {
		t.Fatalf("first add: %v", err)
	}

	_, err := AddItem(db, customer.Email, foodB.ID, 1)
	if !errors.Is(err, utils.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// The rejected add must leave the cart unmodified.
	cart, err := GetCart(db, customer.ID)
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if cart.RestaurantID != foodA.RestaurantID {
		t.Errorf("cart restaurant changed after rejected add")
	}
	if len(cart.Items) != 1 || cart.Items[0].FoodID != foodA.ID {
		t.Errorf("cart lines changed after rejected add")
	}
}

func TestAddUnavailableFood(t *testing.T) {
	db := newTestDB(t)
	customer, foodA, _ := seedCatalog(t, db)

	if err := db.Model(&foodA).Update("available", false).Error; err != nil {
		t.Fatalf("update food: %v", err)
	}
	if _, err := AddItem(db, customer.Email, foodA.ID, 1); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unavailable food, got %v", err)
	}
}

func TestUpdateItemQuantityBounds(t *testing.T) {
	db := newTestDB(t)
	customer, foodA, _ := seedCatalog(t, db)

	if _, err := AddItem(db, customer.Email, foodA.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	for _, quantity := range []int{0, 11, -3} {
		if _, err := UpdateItem(db, customer.ID, foodA.ID, quantity); !errors.Is(err, utils.ErrValidation) {
			t.Errorf("quantity %d: expected ErrValidation, got %v", quantity, err)
		}
	}
	for _, quantity := range []int{1, 10} {
		cart, err := UpdateItem(db, customer.ID, foodA.ID, quantity)
		if err != nil {
			t.Errorf("quantity %d: unexpected error %v", quantity, err)
			continue
		}
		if cart.Items[0].Quantity != quantity {
			t.Errorf("quantity %d not applied, got %d", quantity, cart.Items[0].Quantity)
		}
	}
}

func TestUpdateItemRecalculatesTotals(t *testing.T) {
	db := newTestDB(t)
	customer, foodA, _ := seedCatalog(t, db)

	if _, err := AddItem(db, customer.Email, foodA.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := UpdateItem(db, customer.ID, foodA.ID, 7)
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if cart.Items[0].ItemTotal != 700 {
		t.Errorf("expected item total 700, got %v", cart.Items[0].ItemTotal)
	}
	if cart.GrandTotal != 700 {
		t.Errorf("expected grand total 700, got %v", cart.GrandTotal)
	}
}

func TestUpdateMissingItem(t *testing.T) {
	db := newTestDB(t)
	customer, foodA, foodB := seedCatalog(t, db)

	if _, err := AddItem(db, customer.Email, foodA.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := UpdateItem(db, customer.ID, foodB.ID, 2); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveLastItemDeletesCart(t *testing.T) {
	db := newTestDB(t)
	customer, foodA, _ := seedCatalog(t, db)

	if _, err := AddItem(db, customer.Email, foodA.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	cart, err := RemoveItem(db, customer.ID, foodA.ID)
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if cart != nil {
		t.Fatal("expected nil cart after removing the last item")
	}

	var count int64
	db.Model(&models.Cart{}).Where("user_id = ?", customer.ID).Count(&count)
	if count != 0 {
		t.Fatal("empty cart row should not persist")
	}
}

func TestGetCartNilWhenMissing(t *testing.T) {
	db := newTestDB(t)
	customer, _, _ := seedCatalog(t, db)

	cart, err := GetCart(db, customer.ID)
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if cart != nil {
		t.Fatal("expected nil cart for a user with no cart")
	}
}
