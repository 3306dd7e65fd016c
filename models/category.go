package models

import "time"

// UncategorizedName is the sentinel category food items fall back to when
// their category is deleted.
const UncategorizedName = "Uncategorized"

type Category struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
