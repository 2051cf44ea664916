package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sahlatrack/internal/models/db_models"
)

type OrderRepository interface {
	// InsertWithUsage creates the order and bumps the account's
	// orders_used counter in one transaction.
	InsertWithUsage(ctx context.Context, order *db_models.Order) error

	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Order, error)
	FindByID(ctx context.Context, accountID, orderID uuid.UUID) (*db_models.Order, error)
	Update(ctx context.Context, order *db_models.Order) error
	Delete(ctx context.Context, accountID, orderID uuid.UUID) (bool, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{
		db: db,
	}
}

func (o *orderRepository) InsertWithUsage(ctx context.Context, order *db_models.Order) error {
	return o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Model(&db_models.Account{}).
			Where("id = ?", order.AccountID).
			Updates(map[string]interface{}{
				"orders_used": gorm.Expr("orders_used + 1"),
				"updated_at":  time.Now().Unix(),
			}).Error
	})
}

func (o *orderRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := o.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (o *orderRepository) FindByID(ctx context.Context, accountID, orderID uuid.UUID) (*db_models.Order, error) {
	var order db_models.Order
	err := o.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", orderID, accountID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (o *orderRepository) Update(ctx context.Context, order *db_models.Order) error {
	return o.db.WithContext(ctx).Save(order).Error
}

func (o *orderRepository) Delete(ctx context.Context, accountID, orderID uuid.UUID) (bool, error) {
	res := o.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", orderID, accountID).
		Delete(&db_models.Order{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
