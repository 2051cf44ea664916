package response_models

import "github.com/google/uuid"

type OrderSummary struct {
	ID           uuid.UUID `json:"id"`
	OrderRef     string    `json:"order_ref"`
	CustomerName string    `json:"customer_name"`
	City         string    `json:"city"`
	Status       string    `json:"status"`
	CreatedAt    int64     `json:"created_at"`
}

// DashboardReport is the per-tenant overview: order totals, split by
// status, quota usage and the latest orders.
type DashboardReport struct {
	TotalOrders     int64            `json:"total_orders"`
	OrdersByStatus  map[string]int64 `json:"orders_by_status"`
	OrdersLast30d   int64            `json:"orders_last_30d"`
	OrderLimit      int              `json:"order_limit"`
	OrdersUsed      int              `json:"orders_used"`
	Subscription    string           `json:"subscription"`
	PendingPayments int64            `json:"pending_payments"`
	RecentOrders    []OrderSummary   `json:"recent_orders"`
}
