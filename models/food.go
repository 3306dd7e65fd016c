package models

import "time"

type Food struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RestaurantID uint      `gorm:"index;not null" json:"restaurantId"`
	Restaurant   User      `gorm:"foreignKey:RestaurantID" json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `json:"description"`
	Price        float64   `gorm:"not null" json:"price"`
	CategoryID   uint      `gorm:"index;not null" json:"categoryId"`
	Category     Category  `gorm:"foreignKey:CategoryID" json:"category"`
	Image        string    `json:"image"`
	Available    bool      `gorm:"default:true" json:"available"`
	CreatedAt    time.Time `json:"createdAt"`
}
