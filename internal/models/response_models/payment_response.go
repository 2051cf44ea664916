package response_models

import "github.com/google/uuid"

type PaymentView struct {
	ID             uuid.UUID `json:"id"`
	PlanCode       string    `json:"plan_code"`
	TransactionRef string    `json:"transaction_ref"`
	AmountMinor    int64     `json:"amount_minor"`
	Method         string    `json:"method"`
	Status         string    `json:"status"`
	CreatedAt      int64     `json:"created_at"`
}

type SubmitPaymentResponse struct {
	PaymentID uuid.UUID `json:"payment_id"`
	Status    string    `json:"status"`
}

// ReviewItem is one entry in the admin review queue: the pending payment
// plus who submitted it, so a decision can be made without the relay.
type ReviewItem struct {
	PaymentView
	AccountID    uuid.UUID `json:"account_id"`
	AccountName  string    `json:"account_name"`
	AccountEmail string    `json:"account_email"`
}
