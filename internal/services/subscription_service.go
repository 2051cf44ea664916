package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"sahlatrack/internal/models/db_models"
	"sahlatrack/internal/models/request_models"
	"sahlatrack/internal/models/response_models"
	"sahlatrack/internal/repositories"
	"sahlatrack/pkg/utils"
)

// ReviewerNotifier delivers a message to the human reviewer's chat.
// Satisfied by telegram.Client.
type ReviewerNotifier interface {
	SendMessage(ctx context.Context, text string) error
}

// SubscriptionService drives a tier change from user intent to a terminal
// state: it records the pending payment, flips the account, asks the
// reviewer over the relay, and later applies the reviewer's decision.
type SubscriptionService interface {
	SubmitPayment(ctx context.Context, accountID uuid.UUID, req request_models.SubmitPaymentRequest) (*response_models.SubmitPaymentResponse, error)

	// HandleReviewerCommand processes one inbound relay message and
	// returns the acknowledgment to send back on the same channel. The
	// error is for logging; a reply is always returned.
	HandleReviewerCommand(ctx context.Context, text string) (string, error)

	PendingPayments(ctx context.Context, accountID uuid.UUID) ([]response_models.PaymentView, error)

	// ReviewQueue lists every pending payment for the admin console, the
	// fallback path when the relay is unavailable.
	ReviewQueue(ctx context.Context) ([]response_models.ReviewItem, error)
}

type subscriptionService struct {
	paymentRepo repositories.PaymentRepository
	accountRepo repositories.AccountRepository
	planRepo    repositories.PlanRepository
	notifier    ReviewerNotifier
	mail        IMailService
}

func NewSubscriptionService(
	paymentRepo repositories.PaymentRepository,
	accountRepo repositories.AccountRepository,
	planRepo repositories.PlanRepository,
	notifier ReviewerNotifier,
	mail IMailService,
) SubscriptionService {
	return &subscriptionService{
		paymentRepo: paymentRepo,
		accountRepo: accountRepo,
		planRepo:    planRepo,
		notifier:    notifier,
		mail:        mail,
	}
}

func (s *subscriptionService) SubmitPayment(ctx context.Context, accountID uuid.UUID, req request_models.SubmitPaymentRequest) (*response_models.SubmitPaymentResponse, error) {
	if strings.TrimSpace(req.TransactionRef) == "" {
		return nil, utils.ErrTransactionRefRequired
	}

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	plan, err := s.planRepo.FindByCode(ctx, req.PlanCode)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrUnknownPlan
	}
	if req.AmountMinor != plan.PriceMinor {
		return nil, utils.ErrAmountMismatch
	}

	contactEmail := strings.TrimSpace(req.ContactEmail)
	if contactEmail == "" {
		contactEmail = account.Email
	}
	method := req.Method
	if method == "" {
		method = "binance_pay"
	}

	snapshot, _ := json.Marshal(req)
	payment := &db_models.Payment{
		AccountID:      account.ID,
		Email:          contactEmail,
		TransactionRef: strings.TrimSpace(req.TransactionRef),
		AmountMinor:    req.AmountMinor,
		Method:         method,
		PlanCode:       plan.Code,
		Status:         db_models.PaymentStatusPending,
		Metadata:       snapshot,
	}

	if err := s.paymentRepo.InsertPending(ctx, payment); err != nil {
		if errors.Is(err, utils.ErrAccountNotFound) {
			return nil, err
		}
		log.Printf("submit payment: insert failed for account %s: %v", account.ID, err)
		return nil, utils.ErrDatabaseError
	}

	// The submission is recorded at this point; a relay failure must not
	// unwind it. The reviewer message can be re-sent by hand.
	msg := formatReviewerRequest(account, payment, plan.Currency)
	if err := s.notifier.SendMessage(ctx, msg); err != nil {
		log.Printf("submit payment: reviewer notification failed for payment %s: %v", payment.ID, err)
	}

	return &response_models.SubmitPaymentResponse{
		PaymentID: payment.ID,
		Status:    string(payment.Status),
	}, nil
}

func (s *subscriptionService) HandleReviewerCommand(ctx context.Context, text string) (string, error) {
	cmd := ParseReviewerCommand(text)

	switch cmd.Action {
	case ActionUnknown:
		return "Command not recognized. Reply with /approve_<payment id> or /reject_<payment id>.", nil

	case ActionApprove, ActionReject:
		approve := cmd.Action == ActionApprove

		if cmd.AccountID != "" {
			// Unambiguous legacy form: approve_<accountID>_<tier>.
			accountID, err := uuid.Parse(cmd.AccountID)
			if err != nil {
				return fmt.Sprintf("⚠️ No account found for %s", cmd.AccountID), utils.ErrAccountNotFound
			}
			return s.applyAccountDecision(ctx, accountID, cmd.Tier, approve)
		}

		id, err := uuid.Parse(cmd.TargetID)
		if err != nil {
			return fmt.Sprintf("⚠️ No payment or account found for %s", cmd.TargetID), utils.ErrPaymentNotFound
		}

		// Lookup-first disambiguation: try the id as a payment, fall back
		// to the legacy account interpretation.
		out, err := s.paymentRepo.ApplyDecision(ctx, id, approve)
		switch {
		case err == nil:
			s.notifyUserDecision(out, approve)
			return decisionReply(out, approve), nil
		case errors.Is(err, utils.ErrPaymentAlreadyDecided):
			return fmt.Sprintf("⚠️ Payment %s has already been decided, nothing changed", id), err
		case errors.Is(err, utils.ErrPaymentNotFound):
			return s.applyAccountDecision(ctx, id, "", approve)
		default:
			log.Printf("reviewer decision: apply failed for %s: %v", id, err)
			return fmt.Sprintf("⚠️ Failed to apply decision for %s, please retry", id), utils.ErrDatabaseError
		}
	}

	return "Command not recognized.", nil
}

func (s *subscriptionService) applyAccountDecision(ctx context.Context, accountID uuid.UUID, tier string, approve bool) (string, error) {
	out, err := s.paymentRepo.ApplyAccountDecision(ctx, accountID, tier, approve)
	switch {
	case err == nil:
		s.notifyUserDecision(out, approve)
		return decisionReply(out, approve), nil
	case errors.Is(err, utils.ErrAccountNotFound):
		return fmt.Sprintf("⚠️ No payment or account found for %s", accountID), err
	default:
		log.Printf("reviewer decision: account apply failed for %s: %v", accountID, err)
		return fmt.Sprintf("⚠️ Failed to apply decision for %s, please retry", accountID), utils.ErrDatabaseError
	}
}

func decisionReply(out *repositories.DecisionOutcome, approve bool) string {
	name := ""
	if out.Account != nil {
		name = out.Account.Name
	}
	if approve {
		plan := ""
		if out.Account != nil {
			plan = out.Account.Subscription
		}
		return fmt.Sprintf("✅ Approved subscription for %s, now on the %s plan", name, plan)
	}
	return fmt.Sprintf("❌ Rejected subscription request for %s", name)
}

// notifyUserDecision sends the end user a best-effort e-mail. A failure
// here never unwinds the decision.
func (s *subscriptionService) notifyUserDecision(out *repositories.DecisionOutcome, approve bool) {
	if out == nil || out.Account == nil || out.Account.Email == "" {
		return
	}

	var subject, body string
	if approve {
		subject = "Your subscription is active"
		body = fmt.Sprintf("Your payment was verified and your account has been upgraded to the %s plan.", out.Account.Subscription)
	} else {
		subject = "Your subscription request was declined"
		body = "Your payment could not be verified. Check the transaction details and submit again, or contact support."
	}

	if err := s.mail.SendMailToNotifyUser(out.Account.Email, subject, body, "", ""); err != nil {
		log.Printf("decision notification: mail to %s failed: %v", out.Account.Email, err)
	}
}

func (s *subscriptionService) ReviewQueue(ctx context.Context) ([]response_models.ReviewItem, error) {
	payments, err := s.paymentRepo.PendingAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.ReviewItem, 0, len(payments))
	for _, p := range payments {
		items = append(items, response_models.ReviewItem{
			PaymentView: response_models.PaymentView{
				ID:             p.ID,
				PlanCode:       p.PlanCode,
				TransactionRef: p.TransactionRef,
				AmountMinor:    p.AmountMinor,
				Method:         p.Method,
				Status:         string(p.Status),
				CreatedAt:      p.CreatedAt,
			},
			AccountID:    p.AccountID,
			AccountName:  p.Account.Name,
			AccountEmail: p.Account.Email,
		})
	}
	return items, nil
}

func (s *subscriptionService) PendingPayments(ctx context.Context, accountID uuid.UUID) ([]response_models.PaymentView, error) {
	payments, err := s.paymentRepo.PendingByAccount(ctx, accountID)
	if err != nil {
		// Display-only data: an empty list beats a failed page.
		log.Printf("pending payments: lookup failed for account %s: %v", accountID, err)
		return []response_models.PaymentView{}, nil
	}

	views := make([]response_models.PaymentView, 0, len(payments))
	for _, p := range payments {
		views = append(views, response_models.PaymentView{
			ID:             p.ID,
			PlanCode:       p.PlanCode,
			TransactionRef: p.TransactionRef,
			AmountMinor:    p.AmountMinor,
			Method:         p.Method,
			Status:         string(p.Status),
			CreatedAt:      p.CreatedAt,
		})
	}
	return views, nil
}
