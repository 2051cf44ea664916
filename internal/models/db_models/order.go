package db_models

import "github.com/google/uuid"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Order is a customer order tracked by a tenant.
type Order struct {
	BaseModel
	AccountID    uuid.UUID `gorm:"index"`
	OrderRef     string
	CustomerName string
	PhoneNumber  string
	City         string
	Status       OrderStatus `gorm:"default:pending;index"`

	Account Account `gorm:"foreignKey:AccountID"`
}
