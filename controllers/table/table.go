package tableControllers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/AashishSahoo/MealMate-backend-Public/models"
	"github.com/AashishSahoo/MealMate-backend-Public/utils"
)

type AddTableInput struct {
	TableNumber    string    `json:"tableNumber" binding:"required"`
	Capacity       string    `json:"capacity" binding:"required"`
	Timeslot       string    `json:"timeslot" binding:"required"`
	BookingCharges float64   `json:"bookingCharges" binding:"required"`
	BookingDate    time.Time `json:"bookingDate" binding:"required"`
}

// AddTable creates an available booking slot. A table is a per-date booking
// identity: the duplicate check and the unique index both cover
// (restaurant, tableNumber, bookingDate, timeslot).
func AddTable(db *gorm.DB, ownerEmail string, in AddTableInput) (*models.Table, error) {
	var owner models.User
	err := db.Where("email = ? AND role_type = ?", ownerEmail, models.RoleRestroOwner).First(&owner).Error
	if err != nil {
		return nil, fmt.Errorf("%w: restaurant owner", utils.ErrNotFound)
	}

	var existing models.Table
	err = db.Where("restaurant_id = ? AND table_number = ? AND booking_date = ? AND timeslot = ?",
		owner.ID, in.TableNumber, in.BookingDate, in.Timeslot).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: table with the same number, date and timeslot already exists", utils.ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	table := models.Table{
		RestaurantID:   owner.ID,
		TableNumber:    in.TableNumber,
		Capacity:       in.Capacity,
		Timeslot:       in.Timeslot,
		BookingCharges: in.BookingCharges,
		BookingDate:    in.BookingDate,
		Status:         models.TableStatusAvailable,
	}
	if err := db.Create(&table).Error; err != nil {
		// The unique index backstops the read-then-write check above.
		return nil, fmt.Errorf("%w: table with the same number, date and timeslot already exists", utils.ErrConflict)
	}
	return &table, nil
}

type UpdateTableInput struct {
	TableNumber    string    `json:"tableNumber"`
	Capacity       string    `json:"capacity"`
	Timeslot       string    `json:"timeslot"`
	BookingCharges float64   `json:"bookingCharges"`
	BookingDate    time.Time `json:"bookingDate"`
}

// UpdateTable edits a slot, rejecting edits that would collide with another
// slot on the same 4-tuple.
func UpdateTable(db *gorm.DB, tableID uint, in UpdateTableInput) (*models.Table, error) {
	var table models.Table
	if err := db.First(&table, tableID).Error; err != nil {
		return nil, fmt.Errorf("%w: table", utils.ErrNotFound)
	}

	if in.TableNumber != "" {
		table.TableNumber = in.TableNumber
	}
	if in.Capacity != "" {
		table.Capacity = in.Capacity
	}
	if in.Timeslot != "" {
		table.Timeslot = in.Timeslot
	}
	if in.BookingCharges != 0 {
		table.BookingCharges = in.BookingCharges
	}
	if !in.BookingDate.IsZero() {
		table.BookingDate = in.BookingDate
	}

	var duplicate models.Table
	err := db.Where("id <> ? AND restaurant_id = ? AND table_number = ? AND booking_date = ? AND timeslot = ?",
		table.ID, table.RestaurantID, table.TableNumber, table.BookingDate, table.Timeslot).
		First(&duplicate).Error
	if err == nil {
		return nil, fmt.Errorf("%w: another table with the same number, date and timeslot already exists", utils.ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := db.Save(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func DeleteTable(db *gorm.DB, tableID uint) error {
	result := db.Delete(&models.Table{}, tableID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: table", utils.ErrNotFound)
	}
	return nil
}

// OwnerTables lists a restaurant's upcoming slots. Reads never delete or
// expire rows; the sweep is the sole authority over the expired state.
func OwnerTables(db *gorm.DB, ownerID uint, now time.Time) ([]models.Table, error) {
	var tables []models.Table
	err := db.Where("restaurant_id = ? AND status IN ? AND booking_date >= ?",
		ownerID,
		[]models.TableStatus{models.TableStatusBooked, models.TableStatusAvailable},
		startOfDay(now)).
		Order("booking_date").
		Find(&tables).Error
	return tables, err
}

// OwnerBookingHistory lists every booked slot with the booker's details.
func OwnerBookingHistory(db *gorm.DB, ownerID uint) ([]models.Table, error) {
	var tables []models.Table
	err := db.Preload("Booker").
		Where("restaurant_id = ? AND status = ?", ownerID, models.TableStatusBooked).
		Order("booking_date DESC").
		Find(&tables).Error
	return tables, err
}

// AvailableTable annotates a table with the timeslot labels still bookable.
type AvailableTable struct {
	models.Table
	RestaurantName string   `json:"restaurantName"`
	AvailableSlots []string `json:"availableSlots"`
}

// AvailableForCustomer lists available tables from today onward, keeping only
// slots whose start time is still in the future when the booking date is
// today. Tables left with zero valid slots are dropped.
func AvailableForCustomer(db *gorm.DB, now time.Time) ([]AvailableTable, error) {
	var tables []models.Table
	err := db.Preload("Restaurant").
		Where("status = ? AND booking_date >= ?", models.TableStatusAvailable, startOfDay(now)).
		Order("booking_date").
		Find(&tables).Error
	if err != nil {
		return nil, err
	}

	result := make([]AvailableTable, 0, len(tables))
	for _, t := range tables {
		slots := FilterTimeslots(t.Timeslot, t.BookingDate, now)
		if len(slots) == 0 {
			continue
		}
		result = append(result, AvailableTable{
			Table:          t,
			RestaurantName: t.Restaurant.RestaurantName,
			AvailableSlots: slots,
		})
	}
	return result, nil
}

// FilterTimeslots splits a comma-separated "HH:MM-HH:MM" label list and keeps
// the slots still ahead of now. All slots on a future date are valid.
func FilterTimeslots(timeslot string, bookingDate, now time.Time) []string {
	slots := strings.Split(timeslot, ",")
	for i := range slots {
		slots[i] = strings.TrimSpace(slots[i])
	}

	if !sameDay(bookingDate, now) {
		return slots
	}

	valid := slots[:0]
	for _, slot := range slots {
		start := strings.SplitN(slot, "-", 2)[0]
		startTime, err := time.Parse("15:04", strings.TrimSpace(start))
		if err != nil {
			continue
		}
		slotStart := time.Date(now.Year(), now.Month(), now.Day(),
			startTime.Hour(), startTime.Minute(), 0, 0, now.Location())
		if slotStart.After(now) {
			valid = append(valid, slot)
		}
	}
	return valid
}

// BookTable books an available table for the user. The transition is a single
// conditional update so two concurrent bookers cannot both win: whoever
// matches zero rows gets Conflict.
func BookTable(db *gorm.DB, tableID uint, email string, now time.Time) (*models.Table, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, fmt.Errorf("%w: user", utils.ErrNotFound)
	}

	var table models.Table
	if err := db.First(&table, tableID).Error; err != nil {
		return nil, fmt.Errorf("%w: table", utils.ErrNotFound)
	}

	result := db.Model(&models.Table{}).
		Where("id = ? AND status = ?", tableID, models.TableStatusAvailable).
		Updates(map[string]interface{}{
			"status":    models.TableStatusBooked,
			"booked_by": user.ID,
			"booked_at": now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: table is already booked", utils.ErrConflict)
	}

	if err := db.First(&table, tableID).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// CustomerBookings lists every table the user has booked.
func CustomerBookings(db *gorm.DB, userID uint) ([]models.Table, error) {
	var tables []models.Table
	err := db.Preload("Restaurant").
		Where("booked_by = ?", userID).
		Order("booking_date DESC").
		Find(&tables).Error
	return tables, err
}

// BookingsByRestaurant lists upcoming booked tables for a restaurant.
func BookingsByRestaurant(db *gorm.DB, restaurantID uint, now time.Time) ([]models.Table, error) {
	var restaurant models.User
	err := db.Where("id = ? AND role_type = ?", restaurantID, models.RoleRestroOwner).First(&restaurant).Error
	if err != nil {
		return nil, fmt.Errorf("%w: restaurant", utils.ErrNotFound)
	}

	var tables []models.Table
	err = db.Preload("Booker").
		Where("restaurant_id = ? AND status = ? AND booking_date >= ?",
			restaurantID, models.TableStatusBooked, startOfDay(now)).
		Order("booking_date").
		Find(&tables).Error
	return tables, err
}

// ExpireOldBookings demotes every table whose booking date has passed to the
// expired state. The predicate excludes already-expired rows, so running the
// sweep twice in a row modifies nothing the second time, and a booking made in
// the same instant (bookingDate >= now) can never be clobbered.
func ExpireOldBookings(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Model(&models.Table{}).
		Where("booking_date < ? AND status <> ?", now, models.TableStatusExpired).
		Update("status", models.TableStatusExpired)
	return result.RowsAffected, result.Error
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
