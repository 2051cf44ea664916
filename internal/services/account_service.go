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

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.AccountProfile, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	// New tenants start on the free tier with the default quota.
	newAccount := &db_models.Account{
		Name:               request.DisplayName,
		Email:              request.Email,
		PasswordHash:       hashedPassword,
		Role:               "user",
		Subscription:       "free",
		OrderLimit:         20,
		SubscriptionStatus: db_models.SubStatusActive,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token:   token,
		Account: toProfile(account),
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.AccountProfile, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	profile := toProfile(account)
	return &profile, nil
}

func toProfile(account *db_models.Account) response_models.AccountProfile {
	return response_models.AccountProfile{
		ID:                    account.ID,
		Name:                  account.Name,
		Email:                 account.Email,
		Role:                  account.Role,
		Subscription:          account.Subscription,
		OrderLimit:            account.OrderLimit,
		OrdersUsed:            account.OrdersUsed,
		SubscriptionStatus:    string(account.SubscriptionStatus),
		RequestedSubscription: account.RequestedSubscription,
	}
}
