package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sahlatrack/internal/models/db_models"
)

type StatusCountRow struct {
	Status string `gorm:"column:status"`
	Count  int64  `gorm:"column:count"`
}

type DashboardRepository interface {
	CountOrders(ctx context.Context, accountID uuid.UUID) (int64, error)
	CountOrdersByStatus(ctx context.Context, accountID uuid.UUID) ([]StatusCountRow, error)
	CountOrdersSince(ctx context.Context, accountID uuid.UUID, since time.Time) (int64, error)
	CountPendingPayments(ctx context.Context, accountID uuid.UUID) (int64, error)
	RecentOrders(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.Order, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (d *dashboardRepository) CountOrders(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&db_models.Order{}).
		Where("account_id = ?", accountID).
		Count(&count).Error
	return count, err
}

func (d *dashboardRepository) CountOrdersByStatus(ctx context.Context, accountID uuid.UUID) ([]StatusCountRow, error) {
	var rows []StatusCountRow
	err := d.db.WithContext(ctx).Model(&db_models.Order{}).
		Select("status, COUNT(*) AS count").
		Where("account_id = ?", accountID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (d *dashboardRepository) CountOrdersSince(ctx context.Context, accountID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&db_models.Order{}).
		Where("account_id = ? AND created_at >= ?", accountID, since.Unix()).
		Count(&count).Error
	return count, err
}

func (d *dashboardRepository) CountPendingPayments(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&db_models.Payment{}).
		Where("account_id = ? AND status = ?", accountID, db_models.PaymentStatusPending).
		Count(&count).Error
	return count, err
}

func (d *dashboardRepository) RecentOrders(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := d.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
