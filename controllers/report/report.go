package reportControllers

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/AashishSahoo/MealMate-backend-Public/models"
)

// Reporting is a pure read path: everything here is recomputed from persisted
// Orders/Foods on each request, no incremental materialization.

type CategorySales struct {
	Category   string     `json:"category"`
	Sales      float64    `json:"sales"`
	LatestTime *time.Time `json:"latestTime"`
}

type DashboardStats struct {
	TotalRevenue    float64         `json:"totalRevenue"`
	TotalOrders     int             `json:"totalOrders"`
	PendingOrders   int             `json:"pendingOrders"`
	AcceptedOrders  int             `json:"acceptedOrders"`
	RejectedOrders  int             `json:"rejectedOrders"`
	SalesByCategory []CategorySales `json:"salesByCategory"`
}

// categorySales joins each completed order's lines to the food's category and
// sums price×quantity, ranked descending.
func categorySales(db *gorm.DB, restaurantID uint) ([]CategorySales, error) {
	var completed []models.Order
	err := db.Preload("Items").
		Where("restaurant_id = ? AND status = ?", restaurantID, models.OrderStatusCompleted).
		Find(&completed).Error
	if err != nil {
		return nil, err
	}

	var foods []models.Food
	if err := db.Preload("Category").Where("restaurant_id = ?", restaurantID).Find(&foods).Error; err != nil {
		return nil, err
	}

	categoryByFood := make(map[uint]string, len(foods))
	for _, f := range foods {
		name := f.Category.Name
		if name == "" {
			name = models.UncategorizedName
		}
		categoryByFood[f.ID] = name
	}

	salesMap := make(map[string]*CategorySales)
	for _, order := range completed {
		createdAt := order.CreatedAt
		for _, item := range order.Items {
			category, ok := categoryByFood[item.FoodID]
			if !ok {
				continue
			}
			entry, ok := salesMap[category]
			if !ok {
				entry = &CategorySales{Category: category}
				salesMap[category] = entry
			}
			entry.Sales += item.Price * float64(item.Quantity)
			if entry.LatestTime == nil || createdAt.After(*entry.LatestTime) {
				t := createdAt
				entry.LatestTime = &t
			}
		}
	}

	ranked := make([]CategorySales, 0, len(salesMap))
	for _, entry := range salesMap {
		ranked = append(ranked, *entry)
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].Sales > ranked[j].Sales })
	return ranked, nil
}

// OwnerDashboard aggregates a restaurant's order counts, revenue over
// completed orders, and its top-5 selling categories.
func OwnerDashboard(db *gorm.DB, restaurantID uint) (*DashboardStats, error) {
	var orders []models.Order
	if err := db.Where("restaurant_id = ?", restaurantID).Find(&orders).Error; err != nil {
		return nil, err
	}

	stats := DashboardStats{TotalOrders: len(orders)}
	for _, order := range orders {
		switch order.Status {
		case models.OrderStatusCompleted:
			stats.AcceptedOrders++
			stats.TotalRevenue += order.TotalAmount
		case models.OrderStatusProcessing:
			stats.PendingOrders++
		case models.OrderStatusCancelled:
			stats.RejectedOrders++
		}
	}

	ranked, err := categorySales(db, restaurantID)
	if err != nil {
		return nil, err
	}
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	stats.SalesByCategory = ranked
	return &stats, nil
}

// MonthlyProductReport returns the full ranked category-sales list.
func MonthlyProductReport(db *gorm.DB, restaurantID uint) ([]CategorySales, error) {
	return categorySales(db, restaurantID)
}

type TopFood struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	TotalSold int     `json:"totalSold"`
}

type TopRestaurant struct {
	RestaurantName string `json:"restaurantName"`
	TotalOrders    int    `json:"totalOrders"`
}

type AdminOverview struct {
	TopSellingItems []TopFood       `json:"topSellingItems"`
	TopRestaurants  []TopRestaurant `json:"topRestaurants"`
	MonthlyOrders   [12]int         `json:"monthlyOrders"`
}

// AdminDashboardOverview computes the platform-wide dashboard: top-5 selling
// foods, top-5 restaurants by order count, and current-year monthly counts.
func AdminDashboardOverview(db *gorm.DB, now time.Time) (*AdminOverview, error) {
	var orders []models.Order
	if err := db.Preload("Items").Preload("Restaurant").Find(&orders).Error; err != nil {
		return nil, err
	}

	soldByFood := make(map[uint]int)
	ordersByRestaurant := make(map[uint]*TopRestaurant)
	var overview AdminOverview

	for _, order := range orders {
		for _, item := range order.Items {
			soldByFood[item.FoodID] += item.Quantity
		}

		entry, ok := ordersByRestaurant[order.RestaurantID]
		if !ok {
			entry = &TopRestaurant{RestaurantName: order.Restaurant.RestaurantName}
			ordersByRestaurant[order.RestaurantID] = entry
		}
		entry.TotalOrders++

		if order.CreatedAt.Year() == now.Year() {
			overview.MonthlyOrders[order.CreatedAt.Month()-1]++
		}
	}

	type foodCount struct {
		id    uint
		count int
	}
	counts := make([]foodCount, 0, len(soldByFood))
	for id, count := range soldByFood {
		counts = append(counts, foodCount{id, count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].count > counts[j].count })
	if len(counts) > 5 {
		counts = counts[:5]
	}

	for _, fc := range counts {
		var food models.Food
		if err := db.First(&food, fc.id).Error; err != nil {
			continue
		}
		overview.TopSellingItems = append(overview.TopSellingItems, TopFood{
			Name:      food.Name,
			Price:     food.Price,
			TotalSold: fc.count,
		})
	}

	restaurants := make([]TopRestaurant, 0, len(ordersByRestaurant))
	for _, entry := range ordersByRestaurant {
		restaurants = append(restaurants, *entry)
	}
	sort.Slice(restaurants, func(i, j int) bool { return restaurants[i].TotalOrders > restaurants[j].TotalOrders })
	if len(restaurants) > 5 {
		restaurants = restaurants[:5]
	}
	overview.TopRestaurants = restaurants

	return &overview, nil
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// OrdersPerDay produces a count for every day of the given year, zero-filled.
func OrdersPerDay(db *gorm.DB, year int) ([]DayCount, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)

	var orders []models.Order
	err := db.Select("created_at").
		Where("created_at BETWEEN ? AND ?", start, end).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	countByDay := make(map[string]int)
	for _, order := range orders {
		countByDay[order.CreatedAt.UTC().Format("2006-01-02")]++
	}

	var days []DayCount
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		days = append(days, DayCount{Date: key, Count: countByDay[key]})
	}
	return days, nil
}

type CustomerDashboard struct {
	TodayOrderCount    int                 `json:"todayOrderCount"`
	CurrentOrderStatus *CurrentOrderStatus `json:"currentOrderStatus"`
}

type CurrentOrderStatus struct {
	Status models.OrderStatus `json:"status"`
	Items  []CurrentOrderItem `json:"items"`
}

type CurrentOrderItem struct {
	FoodName string  `json:"foodName"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CustomerDashboardStats reports today's order count and the latest active
// order for a customer.
func CustomerDashboardStats(db *gorm.DB, userID uint, now time.Time) (*CustomerDashboard, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	active := []models.OrderStatus{models.OrderStatusProcessing, models.OrderStatusCompleted}

	var todayCount int64
	err := db.Model(&models.Order{}).
		Where("user_id = ? AND status IN ? AND created_at >= ?", userID, active, startOfDay).
		Count(&todayCount).Error
	if err != nil {
		return nil, err
	}

	dashboard := CustomerDashboard{TodayOrderCount: int(todayCount)}

	var latest models.Order
	err = db.Preload("Items").Preload("Items.Food").
		Where("user_id = ? AND status IN ?", userID, active).
		Order("created_at DESC").
		First(&latest).Error
	if err == nil {
		status := CurrentOrderStatus{Status: latest.Status}
		for _, item := range latest.Items {
			name := item.Food.Name
			if name == "" {
				name = "Unknown Food"
			}
			status.Items = append(status.Items, CurrentOrderItem{
				FoodName: name,
				Quantity: item.Quantity,
				Price:    item.Price,
			})
		}
		dashboard.CurrentOrderStatus = &status
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &dashboard, nil
}
