package db_models

import (
	"gorm.io/datatypes"
)

// Plan is the price table for subscription tiers. Rows are seeded at boot
// (free/premium/unlimited) and looked up by code when a payment is
// submitted, so the declared amount can be checked against PriceMinor.
type Plan struct {
	BaseModel
	Code       string `gorm:"uniqueIndex"` // "free", "premium", "unlimited"
	Name       string
	PriceMinor int64  // 499 = $4.99
	Currency   string `gorm:"size:3"`
	OrderLimit int    // monthly order quota, 0 = unlimited
	IsActive   bool   `gorm:"default:true"`

	Features datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
