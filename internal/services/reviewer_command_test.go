package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sahlatrack/internal/models/db_models"
)

func TestParseReviewerCommand(t *testing.T) {
	cases := []struct {
		name string
		text string
		want ReviewerCommand
	}{
		{"approve payment", "approve_9b8d3f", ReviewerCommand{Action: ActionApprove, TargetID: "9b8d3f"}},
		{"reject payment", "reject_9b8d3f", ReviewerCommand{Action: ActionReject, TargetID: "9b8d3f"}},
		{"slash prefix", "/approve_9b8d3f", ReviewerCommand{Action: ActionApprove, TargetID: "9b8d3f"}},
		{"surrounding whitespace", "  approve_9b8d3f \n", ReviewerCommand{Action: ActionApprove, TargetID: "9b8d3f"}},
		{"legacy approve with tier", "approve_user42_premium", ReviewerCommand{Action: ActionApprove, AccountID: "user42", Tier: "premium"}},
		{"legacy approve unlimited", "approve_user42_unlimited", ReviewerCommand{Action: ActionApprove, AccountID: "user42", Tier: "unlimited"}},
		{"uuid target keeps hyphens", "approve_6f1c2a3b-0000-4000-8000-000000000001", ReviewerCommand{Action: ActionApprove, TargetID: "6f1c2a3b-0000-4000-8000-000000000001"}},
		{"bad tier is unknown", "approve_user42_platinum", ReviewerCommand{Action: ActionUnknown}},
		{"reject never takes a tier", "reject_user42_premium", ReviewerCommand{Action: ActionUnknown}},
		{"plain chat", "hello there", ReviewerCommand{Action: ActionUnknown}},
		{"empty", "", ReviewerCommand{Action: ActionUnknown}},
		{"dangling underscore", "approve_", ReviewerCommand{Action: ActionUnknown}},
		{"verb only", "approve", ReviewerCommand{Action: ActionUnknown}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseReviewerCommand(tc.text))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "4.99 USD", formatAmount(499, "USD"))
	assert.Equal(t, "9.99 USD", formatAmount(999, "USD"))
	assert.Equal(t, "0.05 USD", formatAmount(5, "USD"))
	assert.Equal(t, "10.00 EUR", formatAmount(1000, "EUR"))
}

func TestFormatReviewerRequestEmbedsDecisionCommands(t *testing.T) {
	account := &db_models.Account{Name: "Lina"}
	payment := &db_models.Payment{
		Email:          "lina@example.com",
		TransactionRef: "TX-123",
		AmountMinor:    499,
		Method:         "binance_pay",
		PlanCode:       "premium",
	}
	msg := formatReviewerRequest(account, payment, "USD")

	assert.Contains(t, msg, "Lina")
	assert.Contains(t, msg, "lina@example.com")
	assert.Contains(t, msg, "TX-123")
	assert.Contains(t, msg, "4.99 USD")
	assert.Contains(t, msg, "Binance Pay")
	// The reviewer replies with these verbatim, so they must round-trip
	// through the parser.
	cmd := ParseReviewerCommand("/approve_" + payment.ID.String())
	assert.Equal(t, ActionApprove, cmd.Action)
}
