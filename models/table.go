package models

import "time"

type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusBooked    TableStatus = "booked"
	TableStatusExpired   TableStatus = "expired"
)

// Table is a per-date booking slot: the same physical table may appear once per
// (restaurant, tableNumber, bookingDate, timeslot) combination.
type Table struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	RestaurantID   uint        `gorm:"not null;uniqueIndex:idx_table_slot" json:"restaurantId"`
	Restaurant     User        `gorm:"foreignKey:RestaurantID" json:"-"`
	TableNumber    string      `gorm:"not null;uniqueIndex:idx_table_slot" json:"tableNumber"`
	BookingDate    time.Time   `gorm:"not null;uniqueIndex:idx_table_slot" json:"bookingDate"`
	Timeslot       string      `gorm:"not null;uniqueIndex:idx_table_slot" json:"timeslot"` // comma-separated "HH:MM-HH:MM" labels
	Capacity       string      `gorm:"not null" json:"capacity"`
	BookingCharges float64     `gorm:"not null" json:"bookingCharges"`
	Status         TableStatus `gorm:"type:varchar(20);default:'available'" json:"status"`
	BookedBy       *uint       `json:"bookedBy,omitempty"`
	Booker         *User       `gorm:"foreignKey:BookedBy" json:"booker,omitempty"`
	BookedAt       *time.Time  `json:"bookedAt,omitempty"`
}
