package response_models

import "github.com/google/uuid"

// AccountProfile is what the client polls to observe subscription state
// (pending banner, plan card) after a payment submission.
type AccountProfile struct {
	ID                    uuid.UUID `json:"id"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	Role                  string    `json:"role"`
	Subscription          string    `json:"subscription"`
	OrderLimit            int       `json:"order_limit"`
	OrdersUsed            int       `json:"orders_used"`
	SubscriptionStatus    string    `json:"subscription_status"`
	RequestedSubscription *string   `json:"requested_subscription,omitempty"`
}

type LoginResponse struct {
	Token   string         `json:"token"`
	Account AccountProfile `json:"account"`
}
