package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // placed, awaiting payment
	OrderStatusProcessing OrderStatus = "processing" // payment verified, restaurant preparing
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          uint        `gorm:"index;not null" json:"userId"`
	User            User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	RestaurantID    uint        `gorm:"index;not null" json:"restaurantId"`
	Restaurant      User        `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount     float64     `gorm:"not null" json:"totalAmount"` // fixed at creation
	Status          OrderStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	DeliveryAddress string      `json:"deliveryAddress"`
	CreatedAt       time.Time   `json:"createdAt"`
}

type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	OrderID  uint    `gorm:"index" json:"orderId"`
	FoodID   uint    `gorm:"not null" json:"foodId"`
	Food     Food    `gorm:"foreignKey:FoodID" json:"food,omitempty"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
