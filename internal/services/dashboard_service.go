package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sahlatrack/internal/models/response_models"
	"sahlatrack/internal/repositories"
	"sahlatrack/pkg/utils"
)

const recentOrdersLimit = 5

type DashboardService interface {
	BuildDashboard(ctx context.Context, accountID uuid.UUID) (*response_models.DashboardReport, error)
}

type dashboardService struct {
	repo        repositories.DashboardRepository
	accountRepo repositories.AccountRepository
}

func NewDashboardService(repo repositories.DashboardRepository, accountRepo repositories.AccountRepository) DashboardService {
	return &dashboardService{
		repo:        repo,
		accountRepo: accountRepo,
	}
}

func (s *dashboardService) BuildDashboard(ctx context.Context, accountID uuid.UUID) (*response_models.DashboardReport, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	total, err := s.repo.CountOrders(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	statusRows, err := s.repo.CountOrdersByStatus(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	byStatus := map[string]int64{"pending": 0, "shipped": 0, "delivered": 0}
	for _, row := range statusRows {
		byStatus[row.Status] = row.Count
	}

	last30d, err := s.repo.CountOrdersSince(ctx, accountID, time.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	pendingPayments, err := s.repo.CountPendingPayments(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	recent, err := s.repo.RecentOrders(ctx, accountID, recentOrdersLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	recentViews := make([]response_models.OrderSummary, 0, len(recent))
	for i := range recent {
		recentViews = append(recentViews, toOrderSummary(&recent[i]))
	}

	return &response_models.DashboardReport{
		TotalOrders:     total,
		OrdersByStatus:  byStatus,
		OrdersLast30d:   last30d,
		OrderLimit:      account.OrderLimit,
		OrdersUsed:      account.OrdersUsed,
		Subscription:    account.Subscription,
		PendingPayments: pendingPayments,
		RecentOrders:    recentViews,
	}, nil
}
