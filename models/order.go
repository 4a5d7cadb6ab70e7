package models

import (
	"gorm.io/gorm"
)

const OrderStatusPending = "Pending"

// OrderItem is one cart line. It is owned by exactly one order and is
// removed when that order is deleted.
type OrderItem struct {
	gorm.Model
	OrderID   uint     `json:"-" gorm:"index"`
	Quantity  int      `json:"quantity" gorm:"not null"`
	ProductID uint     `json:"product" gorm:"index;not null"`
	Product   *Product `json:"productDetail,omitempty" gorm:"foreignKey:ProductID"`
}

// Order is the parent record assembled by the composition workflow.
// TotalPrice is computed once at creation and never recomputed; the order
// date is the gorm CreatedAt timestamp.
type Order struct {
	gorm.Model
	Items            []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID"`
	ShippingAddress1 string      `json:"shippingAddress1" gorm:"not null"`
	ShippingAddress2 string      `json:"shippingAddress2" gorm:"default:''"`
	City             string      `json:"city" gorm:"not null"`
	Zip              string      `json:"zip" gorm:"not null"`
	Country          string      `json:"country" gorm:"not null"`
	Phone            string      `json:"phone" gorm:"not null"`
	Status           string      `json:"status" gorm:"default:'Pending'"`
	TotalPrice       float64     `json:"totalPrice"`
	UserID           uint        `json:"user" gorm:"index"`
	User             *User       `json:"userDetail,omitempty" gorm:"foreignKey:UserID"`
}
