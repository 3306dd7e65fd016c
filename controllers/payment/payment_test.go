package paymentControllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/AashishSahoo/MealMate-backend-Public/gateway"
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
		&models.Order{}, &models.OrderItem{}, &models.Payment{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// fakeGateway spins up an HTTP stub that answers /orders, returning either a
// fixed order id or a failure.
func fakeGateway(t *testing.T, fail bool) *gateway.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"code":"SERVER_ERROR","description":"boom"}}`))
			return
		}
		w.Write([]byte(`{"id":"order_gw_42"}`))
	}))
	t.Cleanup(srv.Close)

	gw, err := gateway.NewClient("key_test", "secret_test", srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return gw
}

func placeOrderInput() PlaceOrderInput {
	return PlaceOrderInput{
		UserID:       1,
		RestaurantID: 2,
		Items: []OrderItemInput{
			{FoodID: 1, Quantity: 2, Price: 150},
		},
		TotalAmount:     300,
		DeliveryAddress: "42 Test Street",
	}
}

func TestPlaceOrderCreatesPendingOrderAndPayment(t *testing.T) {
	db := newTestDB(t)
	gw := fakeGateway(t, false)

	order, payment, err := PlaceOrder(db, gw, placeOrderInput())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if order.Status != models.OrderStatusPending {
		t.Errorf("expected pending order, got %s", order.Status)
	}
	if payment.GatewayOrderID != "order_gw_42" {
		t.Errorf("wrong gateway order id %q", payment.GatewayOrderID)
	}
	if payment.Status != models.PaymentStatusCreated {
		t.Errorf("expected created payment, got %s", payment.Status)
	}
	if payment.GatewayPaymentID != models.PlaceholderValue || payment.GatewaySignature != models.PlaceholderValue {
		t.Error("payment id and signature should hold the placeholder until verification")
	}
	if payment.Amount != 300 {
		t.Errorf("expected amount 300, got %v", payment.Amount)
	}
}

func TestPlaceOrderGatewayFailureLeavesOrderPending(t *testing.T) {
	db := newTestDB(t)
	gw := fakeGateway(t, true)

	_, _, err := PlaceOrder(db, gw, placeOrderInput())
	if !errors.Is(err, utils.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}

	// The local order survives for reconciliation; no payment row exists.
	var orders []models.Order
	if err := db.Find(&orders).Error; err != nil {
		t.Fatalf("find orders: %v", err)
	}
	if len(orders) != 1 || orders[0].Status != models.OrderStatusPending {
		t.Fatalf("expected one pending order, got %+v", orders)
	}

	var paymentCount int64
	db.Model(&models.Payment{}).Count(&paymentCount)
	if paymentCount != 0 {
		t.Fatal("no payment row should exist after gateway failure")
	}
}

func TestVerifyPaymentHappyPath(t *testing.T) {
	db := newTestDB(t)
	gw := fakeGateway(t, false)

	order, payment, err := PlaceOrder(db, gw, placeOrderInput())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	signature := gw.Sign(payment.GatewayOrderID, "pay_1")
	verified, err := VerifyPayment(db, gw, payment.GatewayOrderID, "pay_1", signature)
	if err != nil {
		t.Fatalf("VerifyPayment: %v", err)
	}
	if verified.Status != models.PaymentStatusPaid {
		t.Errorf("expected paid, got %s", verified.Status)
	}
	if verified.GatewayPaymentID != "pay_1" {
		t.Errorf("payment id not recorded, got %q", verified.GatewayPaymentID)
	}

	var reloaded models.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if reloaded.Status != models.OrderStatusProcessing {
		t.Errorf("expected processing order, got %s", reloaded.Status)
	}
}

func TestVerifyPaymentIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	gw := fakeGateway(t, false)

	_, payment, err := PlaceOrder(db, gw, placeOrderInput())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	signature := gw.Sign(payment.GatewayOrderID, "pay_1")
	if _, err := VerifyPayment(db, gw, payment.GatewayOrderID, "pay_1", signature); err != nil {
		t.Fatalf("first verify: %v", err)
	}

	// Redelivered callback: same outcome, no error, still a single payment row.
	again, err := VerifyPayment(db, gw, payment.GatewayOrderID, "pay_1", signature)
	if err != nil {
		t.Fatalf("second verify: %v", err)
	}
	if again.Status != models.PaymentStatusPaid {
		t.Errorf("expected paid on redelivery, got %s", again.Status)
	}

	var count int64
	db.Model(&models.Payment{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected one payment row, got %d", count)
	}
}

func TestVerifyPaymentRejectsTamperedSignature(t *testing.T) {
	db := newTestDB(t)
	gw := fakeGateway(t, false)

	order, payment, err := PlaceOrder(db, gw, placeOrderInput())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	_, err = VerifyPayment(db, gw, payment.GatewayOrderID, "pay_1", "deadbeef")
	if !errors.Is(err, utils.ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}

	// Both records stay untouched on a mismatch.
	var reloadedPayment models.Payment
	if err := db.First(&reloadedPayment, payment.ID).Error; err != nil {
		t.Fatalf("reload payment: %v", err)
	}
	if reloadedPayment.Status != models.PaymentStatusCreated {
		t.Errorf("payment status changed on bad signature: %s", reloadedPayment.Status)
	}
	if reloadedPayment.GatewayPaymentID != models.PlaceholderValue {
		t.Errorf("payment id changed on bad signature: %q", reloadedPayment.GatewayPaymentID)
	}

	var reloadedOrder models.Order
	if err := db.First(&reloadedOrder, order.ID).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if reloadedOrder.Status != models.OrderStatusPending {
		t.Errorf("order status changed on bad signature: %s", reloadedOrder.Status)
	}
}

func TestVerifyPaymentUnknownGatewayOrder(t *testing.T) {
	db := newTestDB(t)
	gw := fakeGateway(t, false)

	_, err := VerifyPayment(db, gw, "order_unknown", "pay_1", "sig")
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
