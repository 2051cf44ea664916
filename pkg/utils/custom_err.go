package utils

import "errors"

var (
	ErrDatabaseError      = errors.New("database error")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTransactionRefRequired = errors.New("transaction reference is required")
	ErrUnknownPlan            = errors.New("unknown subscription plan")
	ErrAmountMismatch         = errors.New("amount does not match plan price")
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrPaymentAlreadyDecided  = errors.New("payment already decided")

	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderLimitReached = errors.New("order limit reached")
)
