package services

import (
	"context"

	"github.com/google/uuid"

	"sahlatrack/internal/models/db_models"
	"sahlatrack/internal/models/request_models"
	"sahlatrack/internal/models/response_models"
	"sahlatrack/internal/repositories"
	"sahlatrack/pkg/utils"
)

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, accountID uuid.UUID, req request_models.CreateOrderRequest) (*response_models.OrderSummary, error)
	ListOrders(ctx context.Context, accountID uuid.UUID) ([]response_models.OrderSummary, error)
	GetOrder(ctx context.Context, accountID, orderID uuid.UUID) (*response_models.OrderSummary, error)
	UpdateOrder(ctx context.Context, accountID, orderID uuid.UUID, req request_models.UpdateOrderRequest) (*response_models.OrderSummary, error)
	DeleteOrder(ctx context.Context, accountID, orderID uuid.UUID) error
}

type OrderService struct {
	orderRepo   repositories.OrderRepository
	accountRepo repositories.AccountRepository
}

func NewOrderService(orderRepo repositories.OrderRepository, accountRepo repositories.AccountRepository) OrderServiceInterface {
	return &OrderService{
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
	}
}

func (o *OrderService) CreateOrder(ctx context.Context, accountID uuid.UUID, req request_models.CreateOrderRequest) (*response_models.OrderSummary, error) {
	account, err := o.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	// OrderLimit 0 means unlimited.
	if account.OrderLimit > 0 && account.OrdersUsed >= account.OrderLimit {
		return nil, utils.ErrOrderLimitReached
	}

	order := &db_models.Order{
		AccountID:    accountID,
		OrderRef:     req.OrderRef,
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		City:         req.City,
		Status:       db_models.OrderStatusPending,
	}

	if err := o.orderRepo.InsertWithUsage(ctx, order); err != nil {
		return nil, utils.ErrDatabaseError
	}

	view := toOrderSummary(order)
	return &view, nil
}

func (o *OrderService) ListOrders(ctx context.Context, accountID uuid.UUID) ([]response_models.OrderSummary, error) {
	orders, err := o.orderRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.OrderSummary, 0, len(orders))
	for i := range orders {
		views = append(views, toOrderSummary(&orders[i]))
	}
	return views, nil
}

func (o *OrderService) GetOrder(ctx context.Context, accountID, orderID uuid.UUID) (*response_models.OrderSummary, error) {
	order, err := o.orderRepo.FindByID(ctx, accountID, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}

	view := toOrderSummary(order)
	return &view, nil
}

func (o *OrderService) UpdateOrder(ctx context.Context, accountID, orderID uuid.UUID, req request_models.UpdateOrderRequest) (*response_models.OrderSummary, error) {
	order, err := o.orderRepo.FindByID(ctx, accountID, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}

	if req.CustomerName != "" {
		order.CustomerName = req.CustomerName
	}
	if req.PhoneNumber != "" {
		order.PhoneNumber = req.PhoneNumber
	}
	if req.City != "" {
		order.City = req.City
	}
	if req.Status != "" {
		order.Status = db_models.OrderStatus(req.Status)
	}

	if err := o.orderRepo.Update(ctx, order); err != nil {
		return nil, utils.ErrDatabaseError
	}

	view := toOrderSummary(order)
	return &view, nil
}

func (o *OrderService) DeleteOrder(ctx context.Context, accountID, orderID uuid.UUID) error {
	deleted, err := o.orderRepo.Delete(ctx, accountID, orderID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrOrderNotFound
	}
	return nil
}

func toOrderSummary(order *db_models.Order) response_models.OrderSummary {
	return response_models.OrderSummary{
		ID:           order.ID,
		OrderRef:     order.OrderRef,
		CustomerName: order.CustomerName,
		City:         order.City,
		Status:       string(order.Status),
		CreatedAt:    order.CreatedAt,
	}
}
