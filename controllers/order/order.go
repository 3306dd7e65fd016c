package orderControllers

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/AashishSahoo/MealMate-backend-Public/models"
	"github.com/AashishSahoo/MealMate-backend-Public/utils"
)

// SetStatus performs a single idempotent status transition. When the order is
// already in the target status nothing is written and changed is false.
func SetStatus(db *gorm.DB, orderID uint, target models.OrderStatus) (*models.Order, bool, error) {
	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, fmt.Errorf("%w: order", utils.ErrNotFound)
		}
		return nil, false, err
	}

	if order.Status == target {
		return &order, false, nil
	}

	if err := db.Model(&order).Update("status", target).Error; err != nil {
		return nil, false, err
	}
	order.Status = target
	return &order, true, nil
}

func MarkCompleted(db *gorm.DB, orderID uint) (*models.Order, bool, error) {
	return SetStatus(db, orderID, models.OrderStatusCompleted)
}

func MarkCancelled(db *gorm.DB, orderID uint) (*models.Order, bool, error) {
	return SetStatus(db, orderID, models.OrderStatusCancelled)
}

func ordersQuery(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items").
		Preload("Items.Food").
		Preload("User").
		Preload("Restaurant").
		Order("created_at DESC")
}

// OrdersByUser returns a customer's full order history.
func OrdersByUser(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := ordersQuery(db).Where("user_id = ?", userID).Find(&orders).Error
	return orders, err
}

// IncomingOrdersByRestaurant returns paid orders awaiting the kitchen.
func IncomingOrdersByRestaurant(db *gorm.DB, restaurantID uint) ([]models.Order, error) {
	var orders []models.Order
	err := ordersQuery(db).
		Where("restaurant_id = ? AND status = ?", restaurantID, models.OrderStatusProcessing).
		Find(&orders).Error
	return orders, err
}

// HistoryByRestaurant returns settled (completed or cancelled) orders.
func HistoryByRestaurant(db *gorm.DB, restaurantID uint) ([]models.Order, error) {
	var orders []models.Order
	err := ordersQuery(db).
		Where("restaurant_id = ? AND status IN ?", restaurantID,
			[]models.OrderStatus{models.OrderStatusCompleted, models.OrderStatusCancelled}).
		Find(&orders).Error
	return orders, err
}

// AllOrders returns every order past the pending stage, for the admin view.
func AllOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := ordersQuery(db).
		Where("status IN ?", []models.OrderStatus{
			models.OrderStatusProcessing, models.OrderStatusCompleted, models.OrderStatusCancelled,
		}).
		Find(&orders).Error
	return orders, err
}
