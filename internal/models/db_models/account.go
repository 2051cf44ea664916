package db_models

type SubscriptionStatus string

const (
	SubStatusActive   SubscriptionStatus = "active"
	SubStatusPending  SubscriptionStatus = "pending"
	SubStatusRejected SubscriptionStatus = "rejected"
)

// Account is a tenant user. Subscription state lives directly on the row:
// RequestedSubscription is non-nil exactly while SubscriptionStatus is
// pending and is cleared on either reviewer decision.
type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string `gorm:"default:user"`

	Subscription          string             `gorm:"default:free"`
	OrderLimit            int                `gorm:"default:20"` // 0 = unlimited
	OrdersUsed            int                `gorm:"default:0"`
	SubscriptionStatus    SubscriptionStatus `gorm:"default:active;index"`
	RequestedSubscription *string

	Orders   []Order
	Payments []Payment
}
