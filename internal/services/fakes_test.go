package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"sahlatrack/internal/models/db_models"
	"sahlatrack/internal/repositories"
	"sahlatrack/pkg/utils"
)

// In-memory doubles for the repository interfaces. They keep just enough
// state to observe what a service call changed.

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*db_models.Account
	findErr  error
}

func newFakeAccountRepo(accounts ...*db_models.Account) *fakeAccountRepo {
	r := &fakeAccountRepo{accounts: make(map[uuid.UUID]*db_models.Account)}
	for _, a := range accounts {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		r.accounts[a.ID] = a
	}
	return r
}

func (r *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.accounts[id], nil
}

func (r *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, a := range r.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

type fakePlanRepo struct {
	plans map[string]*db_models.Plan
}

func newFakePlanRepo(plans ...*db_models.Plan) *fakePlanRepo {
	r := &fakePlanRepo{plans: make(map[string]*db_models.Plan)}
	for _, p := range plans {
		r.plans[p.Code] = p
	}
	return r
}

func (r *fakePlanRepo) ListActive(ctx context.Context) ([]db_models.Plan, error) {
	out := make([]db_models.Plan, 0, len(r.plans))
	for _, p := range r.plans {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePlanRepo) FindByCode(ctx context.Context, code string) (*db_models.Plan, error) {
	return r.plans[code], nil
}

// fakePaymentRepo drives the decision paths through canned results while
// recording what the service asked for.
type fakePaymentRepo struct {
	inserted  []*db_models.Payment
	insertErr error

	pending    []db_models.Payment
	pendingErr error

	decisionOutcome *repositories.DecisionOutcome
	decisionErr     error
	decisionCalls   int
	lastPaymentID   uuid.UUID
	lastApprove     bool

	accountOutcome *repositories.DecisionOutcome
	accountErr     error
	accountCalls   int
	lastAccountID  uuid.UUID
	lastTier       string
}

func (r *fakePaymentRepo) InsertPending(ctx context.Context, payment *db_models.Payment) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	r.inserted = append(r.inserted, payment)
	return nil
}

func (r *fakePaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Payment, error) {
	for i := range r.pending {
		if r.pending[i].ID == id {
			return &r.pending[i], nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) PendingByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Payment, error) {
	if r.pendingErr != nil {
		return nil, r.pendingErr
	}
	return r.pending, nil
}

func (r *fakePaymentRepo) PendingAll(ctx context.Context) ([]db_models.Payment, error) {
	if r.pendingErr != nil {
		return nil, r.pendingErr
	}
	return r.pending, nil
}

func (r *fakePaymentRepo) ApplyDecision(ctx context.Context, paymentID uuid.UUID, approve bool) (*repositories.DecisionOutcome, error) {
	r.decisionCalls++
	r.lastPaymentID = paymentID
	r.lastApprove = approve
	if r.decisionErr != nil {
		return nil, r.decisionErr
	}
	return r.decisionOutcome, nil
}

func (r *fakePaymentRepo) ApplyAccountDecision(ctx context.Context, accountID uuid.UUID, tier string, approve bool) (*repositories.DecisionOutcome, error) {
	r.accountCalls++
	r.lastAccountID = accountID
	r.lastTier = tier
	r.lastApprove = approve
	if r.accountErr != nil {
		return nil, r.accountErr
	}
	if r.accountOutcome == nil {
		return nil, utils.ErrAccountNotFound
	}
	return r.accountOutcome, nil
}

type fakeOrderRepo struct {
	orders    map[uuid.UUID]*db_models.Order
	insertErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*db_models.Order)}
}

func (r *fakeOrderRepo) InsertWithUsage(ctx context.Context, order *db_models.Order) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Order, error) {
	var out []db_models.Order
	for _, o := range r.orders {
		if o.AccountID == accountID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, accountID, orderID uuid.UUID) (*db_models.Order, error) {
	o, ok := r.orders[orderID]
	if !ok || o.AccountID != accountID {
		return nil, nil
	}
	return o, nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *db_models.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, accountID, orderID uuid.UUID) (bool, error) {
	o, ok := r.orders[orderID]
	if !ok || o.AccountID != accountID {
		return false, nil
	}
	delete(r.orders, orderID)
	return true, nil
}

// fakeNotifier records what was relayed to the reviewer chat.
type fakeNotifier struct {
	messages []string
	err      error
}

func (n *fakeNotifier) SendMessage(ctx context.Context, text string) error {
	if n.err != nil {
		return n.err
	}
	n.messages = append(n.messages, text)
	return nil
}

type fakeMail struct {
	sent []string // recipient addresses
	err  error
}

func (m *fakeMail) SendMailToNotifyUser(to, subject, body, ctaText, ctaURL string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

var errBoom = errors.New("boom")
