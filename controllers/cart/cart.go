package cartControllers

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/AashishSahoo/MealMate-backend-Public/models"
	"github.com/AashishSahoo/MealMate-backend-Public/utils"
)

// Cart mutations follow a read-modify-write pattern on the same row, so
// concurrent requests from one user must serialize. A per-user lock is enough:
// carts are keyed by user and never shared.
var (
	cartLocksMu sync.Mutex
	cartLocks   = make(map[uint]*sync.Mutex)
)

func lockCart(userID uint) func() {
	cartLocksMu.Lock()
	l, ok := cartLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		cartLocks[userID] = l
	}
	cartLocksMu.Unlock()

	l.Lock()
	return l.Unlock
}

const (
	minQuantity = 1
	maxQuantity = 10
)

// AddItem resolves the user and food, creates a cart bound to the food's
// restaurant if none exists, and appends or increments the matching line.
// Adding across restaurants is a recoverable business outcome (ErrConflict),
// not a hard failure: the caller must clear the cart first.
func AddItem(db *gorm.DB, email string, foodID uint, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		quantity = 1
	}

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, fmt.Errorf("%w: user", utils.ErrNotFound)
	}

	var food models.Food
	if err := db.Preload("Category").First(&food, foodID).Error; err != nil || !food.Available {
		return nil, fmt.Errorf("%w: food item not available", utils.ErrNotFound)
	}

	unlock := lockCart(user.ID)
	defer unlock()

	var cart models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", user.ID).First(&cart).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			cart = models.Cart{UserID: user.ID, RestaurantID: food.RestaurantID}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		case cart.RestaurantID != food.RestaurantID:
			return fmt.Errorf("%w: cannot add items from different restaurants, clear cart first", utils.ErrConflict)
		}

		var item models.CartItem
		err = tx.Where("cart_id = ? AND food_id = ?", cart.ID, foodID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.CartItem{
				CartID:       cart.ID,
				FoodID:       food.ID,
				Name:         food.Name,
				CategoryID:   food.CategoryID,
				CategoryName: food.Category.Name,
				Image:        food.Image,
				Price:        food.Price,
				Quantity:     quantity,
				AddedAt:      time.Now(),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			item.Quantity += quantity
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
		}

		return recalcTotals(tx, &cart)
	})
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpdateItem sets the quantity of an existing line. Quantities outside [1,10]
// are a business-rule failure, not a system error.
func UpdateItem(db *gorm.DB, userID, foodID uint, quantity int) (*models.Cart, error) {
	if quantity < minQuantity || quantity > maxQuantity {
		return nil, fmt.Errorf("%w: quantity must be between %d and %d", utils.ErrValidation, minQuantity, maxQuantity)
	}

	unlock := lockCart(userID)
	defer unlock()

	var cart models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			return fmt.Errorf("%w: item not found in cart", utils.ErrNotFound)
		}

		result := tx.Model(&models.CartItem{}).
			Where("cart_id = ? AND food_id = ?", cart.ID, foodID).
			Update("quantity", quantity)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: item not found in cart", utils.ErrNotFound)
		}

		return recalcTotals(tx, &cart)
	})
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// RemoveItem drops a line from the cart. An emptied cart is deleted outright —
// no empty-cart row persists — in which case the returned cart is nil.
func RemoveItem(db *gorm.DB, userID, foodID uint) (*models.Cart, error) {
	unlock := lockCart(userID)
	defer unlock()

	var cart models.Cart
	deleted := false
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			return fmt.Errorf("%w: cart not found", utils.ErrNotFound)
		}

		result := tx.Where("cart_id = ? AND food_id = ?", cart.ID, foodID).Delete(&models.CartItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: item does not exist", utils.ErrNotFound)
		}

		var remaining int64
		if err := tx.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			deleted = true
			return tx.Delete(&cart).Error
		}

		return recalcTotals(tx, &cart)
	})
	if err != nil {
		return nil, err
	}
	if deleted {
		return nil, nil
	}
	return &cart, nil
}

// GetCart returns the user's cart, or nil when none exists.
func GetCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// recalcTotals reloads the cart's lines, rewrites every ItemTotal and the
// GrandTotal, and persists the result. Invoked on every cart mutation.
func recalcTotals(tx *gorm.DB, cart *models.Cart) error {
	if err := tx.Where("cart_id = ?", cart.ID).Order("id").Find(&cart.Items).Error; err != nil {
		return err
	}
	cart.RecalculateTotals()

	for i := range cart.Items {
		if err := tx.Model(&cart.Items[i]).Update("item_total", cart.Items[i].ItemTotal).Error; err != nil {
			return err
		}
	}
	return tx.Model(cart).Updates(map[string]interface{}{
		"grand_total": cart.GrandTotal,
		"updated_at":  time.Now(),
	}).Error
}
