package request_models

// SubmitPaymentRequest carries the details of a manual bank transfer the
// user reports after paying for a tier upgrade. ContactEmail defaults to
// the account email when empty; AmountMinor must match the plan's price.
type SubmitPaymentRequest struct {
	PlanCode       string `json:"plan_code" binding:"required"`
	TransactionRef string `json:"transaction_ref"`
	ContactEmail   string `json:"contact_email" binding:"omitempty,email"`
	AmountMinor    int64  `json:"amount_minor" binding:"required,gt=0"`
	Method         string `json:"method"`
}
