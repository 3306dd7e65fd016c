package models

import "time"

type Cart struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"uniqueIndex;not null" json:"userId"` // one cart per user
	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Items        []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	GrandTotal   float64    `json:"grandTotal"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// CartItem snapshots name/image/price/category at the time the food was added,
// so later catalog edits do not silently reprice a cart.
type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CartID       uint      `gorm:"index" json:"cartId"`
	FoodID       uint      `gorm:"not null" json:"foodId"`
	Name         string    `gorm:"not null" json:"name"`
	CategoryID   uint      `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	Image        string    `json:"image"`
	Price        float64   `gorm:"not null" json:"price"`
	Quantity     int       `gorm:"default:1" json:"quantity"`
	ItemTotal    float64   `json:"itemTotal"`
	AddedAt      time.Time `json:"addedAt"`
}

// RecalculateTotals rewrites every line's ItemTotal and the cart's GrandTotal.
// Callers must persist the cart items afterwards.
func (c *Cart) RecalculateTotals() {
	var grand float64
	for i := range c.Items {
		c.Items[i].ItemTotal = c.Items[i].Price * float64(c.Items[i].Quantity)
		grand += c.Items[i].ItemTotal
	}
	c.GrandTotal = grand
}
