package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// Payment is one funding-verification attempt: the user reports a bank
// transfer by transaction reference and a human reviewer approves or
// rejects it through the relay. Status moves from pending to exactly one
// terminal state; the repository enforces that with a compare-and-set.
type Payment struct {
	BaseModel
	AccountID      uuid.UUID     `gorm:"index"`
	Email          string        // contact email used for the transfer
	TransactionRef string        `gorm:"index"`
	AmountMinor    int64
	Method         string        `gorm:"default:binance_pay"`
	PlanCode       string        // requested tier at submission time
	Status         PaymentStatus `gorm:"default:pending;index"`
	DecidedAt      *int64

	// Submission snapshot (raw request fields), kept for reviewer audits.
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
}
