package response_models

import "github.com/google/uuid"

type PlanView struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	PriceMinor int64     `json:"price_minor"`
	Currency   string    `json:"currency"`
	OrderLimit int       `json:"order_limit"`
}
