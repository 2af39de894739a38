package models

import (
	"crypto/rand"
	"errors"
	"strings"
	"time"
)

type OrderStatus string
type DeliveryType string

const (
	// Order statuses. The progression pending -> confirmed -> shipped ->
	// delivered is the intended sequence; updates are not restricted to it.
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"

	DeliveryHome   DeliveryType = "home"
	DeliveryOffice DeliveryType = "office"
)

// Order is one line of a checkout batch. Product name and amount are
// snapshots taken at order time; only Status mutates after creation.
type Order struct {
	ID           string       `gorm:"primaryKey" json:"id"`
	CustomerName string       `gorm:"not null" json:"customer_name"`
	Phone        string       `gorm:"not null" json:"phone"`
	Wilaya       string       `gorm:"not null" json:"wilaya"`
	DeliveryType DeliveryType `gorm:"type:VARCHAR(10);not null" json:"delivery_type"`
	ProductID    string       `gorm:"not null" json:"product_id"`
	ProductName  string       `gorm:"not null" json:"product_name"`
	Amount       float64      `gorm:"not null" json:"amount"`
	Status       OrderStatus  `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
}

// MapOrderStatus converts a request string to a known status.
func MapOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusConfirmed):
		return OrderStatusConfirmed, nil
	case string(OrderStatusShipped):
		return OrderStatusShipped, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// MapDeliveryType converts a request string to a known delivery type.
func MapDeliveryType(t string) (DeliveryType, error) {
	switch strings.ToLower(t) {
	case string(DeliveryHome):
		return DeliveryHome, nil
	case string(DeliveryOffice):
		return DeliveryOffice, nil
	default:
		return "", errors.New("invalid delivery type")
	}
}

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderID generates an "ORD-" id with six base-36 characters. Collisions
// are possible but ignored, matching the reference id scheme.
func NewOrderID() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "ORD-000000"
	}
	for i, b := range buf {
		buf[i] = orderIDAlphabet[int(b)%len(orderIDAlphabet)]
	}
	return "ORD-" + string(buf)
}
