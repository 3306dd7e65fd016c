package models

import "time"

type RoleType string

const (
	RoleAdmin       RoleType = "admin"
	RoleRestroOwner RoleType = "restro-owner"
	RoleCustomer    RoleType = "customer"
)

// Restaurant-owner approval states. Only meaningful when RoleType is "restro-owner".
const (
	OwnerStatusDeclined = -1
	OwnerStatusPending  = 0
	OwnerStatusApproved = 1
)

type User struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	Email             string     `gorm:"uniqueIndex;not null" json:"email"`
	MobileNo          string     `json:"mobileNo"`
	Address           string     `json:"address"`
	Password          string     `gorm:"not null" json:"-"`
	RoleType          RoleType   `gorm:"type:varchar(20);not null" json:"roleType"`
	RestaurantName    string     `json:"restaurantName,omitempty"`
	AppLogo           string     `json:"appLogo,omitempty"`
	Document          string     `json:"document,omitempty"`
	RestroOwnerStatus int        `gorm:"default:0" json:"restroOwnerStatus"`
	IsVerified        bool       `json:"isVerified"`
	VerifiedAt        *time.Time `json:"verifiedAt,omitempty"`
	UpdateStatusTime  *time.Time `json:"updateStatusTime,omitempty"`
	RegistrationTime  time.Time  `gorm:"autoCreateTime" json:"registrationTime"`
}
