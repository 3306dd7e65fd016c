package models

import "time"

type PaymentStatus string

const (
	PaymentStatusCreated   PaymentStatus = "created"
	PaymentStatusAttempted PaymentStatus = "attempted"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PlaceholderValue fills the gateway payment id and signature columns until the
// gateway callback is verified.
const PlaceholderValue = "pending"

type Payment struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	OrderID          uint          `gorm:"uniqueIndex;not null" json:"orderId"` // exactly one payment per order
	Order            Order         `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	GatewayOrderID   string        `gorm:"uniqueIndex;not null" json:"gatewayOrderId"`
	GatewayPaymentID string        `gorm:"not null" json:"gatewayPaymentId"`
	GatewaySignature string        `gorm:"not null" json:"gatewaySignature"`
	Status           PaymentStatus `gorm:"type:varchar(20);default:'created'" json:"status"`
	Amount           float64       `gorm:"not null" json:"amount"`
	Currency         string        `gorm:"default:'INR'" json:"currency"`
	Method           string        `json:"method,omitempty"`
	Timestamp        time.Time     `gorm:"autoCreateTime" json:"timestamp"`
}
