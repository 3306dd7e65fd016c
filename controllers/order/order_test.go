package orderControllers

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

	err = db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Food{},
		&models.Order{}, &models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, status models.OrderStatus) models.Order {
	t.Helper()

	order := models.Order{UserID: 1, RestaurantID: 2, TotalAmount: 300, Status: status}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func TestMarkCompleted(t *testing.T) {
	db := newTestDB(t)
	order := seedOrder(t, db, models.OrderStatusProcessing)

	updated, changed, err := MarkCompleted(db, order.ID)
	if err != nil {
		t.Fatalf("MarkCompleted: %v", err)
	}
	if !changed {
		t.Error("expected a transition on the first call")
	}
	if updated.Status != models.OrderStatusCompleted {
		t.Errorf("expected completed, got %s", updated.Status)
	}
}

func TestMarkCompletedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	order := seedOrder(t, db, models.OrderStatusCompleted)

	updated, changed, err := MarkCompleted(db, order.ID)
	if err != nil {
		t.Fatalf("MarkCompleted: %v", err)
	}
	if changed {
		t.Error("repeat completion must be a no-op")
	}
	if updated.Status != models.OrderStatusCompleted {
		t.Errorf("status drifted to %s", updated.Status)
	}
}

func TestMarkCancelledMissingOrder(t *testing.T) {
	db := newTestDB(t)

	_, _, err := MarkCancelled(db, 999)
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRestaurantQueuesSplitByStatus(t *testing.T) {
	db := newTestDB(t)

	processing := seedOrder(t, db, models.OrderStatusProcessing)
	completed := seedOrder(t, db, models.OrderStatusCompleted)
	seedOrder(t, db, models.OrderStatusPending) // unpaid, invisible to the kitchen

	incoming, err := IncomingOrdersByRestaurant(db, 2)
	if err != nil {
		t.Fatalf("IncomingOrdersByRestaurant: %v", err)
	}
	if len(incoming) != 1 || incoming[0].ID != processing.ID {
		t.Fatalf("incoming queue wrong: %+v", incoming)
	}

	history, err := HistoryByRestaurant(db, 2)
	if err != nil {
		t.Fatalf("HistoryByRestaurant: %v", err)
	}
	if len(history) != 1 || history[0].ID != completed.ID {
		t.Fatalf("history wrong: %+v", history)
	}
}

func TestAllOrdersExcludesPending(t *testing.T) {
	db := newTestDB(t)

	seedOrder(t, db, models.OrderStatusPending)
	seedOrder(t, db, models.OrderStatusProcessing)
	seedOrder(t, db, models.OrderStatusCompleted)
	seedOrder(t, db, models.OrderStatusCancelled)

	orders, err := AllOrders(db)
	if err != nil {
		t.Fatalf("AllOrders: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 visible orders, got %d", len(orders))
	}
	for _, order := range orders {
		if order.Status == models.OrderStatusPending {
			t.Fatal("pending order leaked into the admin view")
		}
	}
}
