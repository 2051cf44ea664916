package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sahlatrack/internal/models/db_models"
	"sahlatrack/pkg/utils"
)

// DecisionOutcome is what a reviewer decision changed: the settled payment
// (nil when a legacy account-addressed command found no pending payment)
// and the account as it looks after the update.
type DecisionOutcome struct {
	Payment *db_models.Payment
	Account *db_models.Account
}

type PaymentRepository interface {
	// InsertPending writes the payment row and flips the owning account to
	// pending in a single transaction, so no reader observes one without
	// the other.
	InsertPending(ctx context.Context, payment *db_models.Payment) error

	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Payment, error)
	PendingByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Payment, error)

	// PendingAll is the admin review queue, oldest first, with the owning
	// account preloaded.
	PendingAll(ctx context.Context) ([]db_models.Payment, error)

	// ApplyDecision settles one payment. The pending -> terminal move is a
	// compare-and-set on status; a redelivered command hits zero rows and
	// comes back as utils.ErrPaymentAlreadyDecided with nothing changed.
	ApplyDecision(ctx context.Context, paymentID uuid.UUID, approve bool) (*DecisionOutcome, error)

	// ApplyAccountDecision settles a legacy account-addressed command:
	// the account's newest pending payment (if any) is settled alongside
	// the account itself. tier is only consulted on approval.
	ApplyAccountDecision(ctx context.Context, accountID uuid.UUID, tier string, approve bool) (*DecisionOutcome, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

func (r *paymentRepository) InsertPending(ctx context.Context, payment *db_models.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		res := tx.Model(&db_models.Account{}).
			Where("id = ?", payment.AccountID).
			Updates(map[string]interface{}{
				"subscription_status":    db_models.SubStatusPending,
				"requested_subscription": payment.PlanCode,
				"updated_at":             time.Now().Unix(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrAccountNotFound
		}
		return nil
	})
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Payment, error) {
	var payment db_models.Payment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) PendingByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Payment, error) {
	var payments []db_models.Payment
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND status = ?", accountID, db_models.PaymentStatusPending).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) PendingAll(ctx context.Context) ([]db_models.Payment, error) {
	var payments []db_models.Payment
	err := r.db.WithContext(ctx).
		Preload("Account").
		Where("status = ?", db_models.PaymentStatusPending).
		Order("created_at ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) ApplyDecision(ctx context.Context, paymentID uuid.UUID, approve bool) (*DecisionOutcome, error) {
	var out DecisionOutcome

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var payment db_models.Payment
		if err := tx.First(&payment, "id = ?", paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrPaymentNotFound
			}
			return err
		}

		settled, err := settlePayment(tx, payment.ID, approve)
		if err != nil {
			return err
		}
		if !settled {
			return utils.ErrPaymentAlreadyDecided
		}

		account, err := settleAccount(tx, payment.AccountID, payment.PlanCode, approve)
		if err != nil {
			return err
		}

		now := time.Now().Unix()
		payment.Status = terminalStatus(approve)
		payment.DecidedAt = &now
		out.Payment = &payment
		out.Account = account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *paymentRepository) ApplyAccountDecision(ctx context.Context, accountID uuid.UUID, tier string, approve bool) (*DecisionOutcome, error) {
	var out DecisionOutcome

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account db_models.Account
		if err := tx.First(&account, "id = ?", accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrAccountNotFound
			}
			return err
		}

		// Newest pending payment rides along with the account decision.
		var payment db_models.Payment
		err := tx.Where("account_id = ? AND status = ?", accountID, db_models.PaymentStatusPending).
			Order("created_at DESC").
			First(&payment).Error
		switch {
		case err == nil:
			settled, err := settlePayment(tx, payment.ID, approve)
			if err != nil {
				return err
			}
			if settled {
				now := time.Now().Unix()
				payment.Status = terminalStatus(approve)
				payment.DecidedAt = &now
				out.Payment = &payment
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Account-only decision, nothing to settle.
		default:
			return err
		}

		if tier == "" && approve {
			// Legacy approve always names a tier; fall back to whatever
			// the account asked for.
			if account.RequestedSubscription != nil {
				tier = *account.RequestedSubscription
			} else {
				tier = account.Subscription
			}
		}

		updated, err := settleAccount(tx, accountID, tier, approve)
		if err != nil {
			return err
		}
		out.Account = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// settlePayment is the compare-and-set: only a pending row moves to a
// terminal status. Reports whether a row was actually updated.
func settlePayment(tx *gorm.DB, paymentID uuid.UUID, approve bool) (bool, error) {
	now := time.Now().Unix()
	res := tx.Model(&db_models.Payment{}).
		Where("id = ? AND status = ?", paymentID, db_models.PaymentStatusPending).
		Updates(map[string]interface{}{
			"status":     terminalStatus(approve),
			"decided_at": now,
			"updated_at": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func settleAccount(tx *gorm.DB, accountID uuid.UUID, tier string, approve bool) (*db_models.Account, error) {
	updates := map[string]interface{}{
		"requested_subscription": nil,
		"updated_at":             time.Now().Unix(),
	}
	if approve {
		updates["subscription"] = tier
		updates["subscription_status"] = db_models.SubStatusActive

		var plan db_models.Plan
		if err := tx.First(&plan, "code = ?", tier).Error; err == nil {
			updates["order_limit"] = plan.OrderLimit
		}
	} else {
		// Tier stays as it was; only the request is rejected.
		updates["subscription_status"] = db_models.SubStatusRejected
	}

	if err := tx.Model(&db_models.Account{}).
		Where("id = ?", accountID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	var account db_models.Account
	if err := tx.First(&account, "id = ?", accountID).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func terminalStatus(approve bool) db_models.PaymentStatus {
	if approve {
		return db_models.PaymentStatusApproved
	}
	return db_models.PaymentStatusRejected
}
