package services

import (
	"fmt"
	"strings"

	"sahlatrack/internal/models/db_models"
)

type ReviewerAction string

const (
	ActionApprove ReviewerAction = "approve"
	ActionReject  ReviewerAction = "reject"
	ActionUnknown ReviewerAction = "unknown"
)

// ReviewerCommand is one parsed inbound message from the relay.
//
// Two grammars coexist. The current form addresses a payment:
//
//	approve_<paymentID>
//	reject_<paymentID>
//
// The legacy form addresses an account directly:
//
//	approve_<accountID>_<tier>
//	reject_<accountID>
//
// A two-segment command can be either form; TargetID carries the id and
// the handler resolves it payment-first, account second. A three-segment
// approve is unambiguous and fills AccountID/Tier instead.
type ReviewerCommand struct {
	Action    ReviewerAction
	TargetID  string
	AccountID string
	Tier      string
}

func validTier(tier string) bool {
	switch tier {
	case "free", "premium", "unlimited":
		return true
	default:
		return false
	}
}

// ParseReviewerCommand splits a relay message on underscores. UUIDs use
// hyphens, so ids never collide with the separator. Anything that does
// not fit the grammar parses as ActionUnknown, never as an error.
func ParseReviewerCommand(text string) ReviewerCommand {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "/")

	segs := strings.Split(text, "_")
	switch segs[0] {
	case "approve":
		if len(segs) == 2 && segs[1] != "" {
			return ReviewerCommand{Action: ActionApprove, TargetID: segs[1]}
		}
		if len(segs) == 3 && segs[1] != "" && validTier(segs[2]) {
			return ReviewerCommand{Action: ActionApprove, AccountID: segs[1], Tier: segs[2]}
		}
	case "reject":
		if len(segs) == 2 && segs[1] != "" {
			return ReviewerCommand{Action: ActionReject, TargetID: segs[1]}
		}
	}
	return ReviewerCommand{Action: ActionUnknown}
}

func methodLabel(method string) string {
	switch method {
	case "binance_pay":
		return "Binance Pay"
	case "bank_transfer":
		return "Bank Transfer"
	default:
		return method
	}
}

func formatAmount(minor int64, currency string) string {
	return fmt.Sprintf("%d.%02d %s", minor/100, minor%100, currency)
}

// formatReviewerRequest builds the outbound approval request. Both
// decision commands are embedded verbatim so the reviewer can reply with
// exact text.
func formatReviewerRequest(account *db_models.Account, payment *db_models.Payment, currency string) string {
	var b strings.Builder
	b.WriteString("🔔 *New Subscription Payment*\n\n")
	fmt.Fprintf(&b, "*User:* %s\n", account.Name)
	fmt.Fprintf(&b, "*Email:* %s\n", payment.Email)
	fmt.Fprintf(&b, "*Plan:* %s\n", payment.PlanCode)
	fmt.Fprintf(&b, "*Amount:* %s\n", formatAmount(payment.AmountMinor, currency))
	fmt.Fprintf(&b, "*Method:* %s\n", methodLabel(payment.Method))
	fmt.Fprintf(&b, "*Transaction ID:* %s\n", payment.TransactionRef)
	fmt.Fprintf(&b, "*User ID:* %s\n", account.ID)
	fmt.Fprintf(&b, "*Payment ID:* %s\n\n", payment.ID)
	b.WriteString("Use the following commands to approve or reject:\n")
	fmt.Fprintf(&b, "/approve_%s\n", payment.ID)
	fmt.Fprintf(&b, "/reject_%s\n", payment.ID)
	return b.String()
}
