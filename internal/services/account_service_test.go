package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sahlatrack/internal/models/db_models"
	"sahlatrack/internal/models/request_models"
	"sahlatrack/pkg/utils"
)

func TestCreateAccountStartsOnFreeTier(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Lina",
		Email:       "lina@example.com",
		Password:    "s3cret-pw",
	})
	require.NoError(t, err)

	account, err := repo.FindByEmail(context.Background(), "lina@example.com")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "free", account.Subscription)
	assert.Equal(t, 20, account.OrderLimit)
	assert.Equal(t, db_models.SubStatusActive, account.SubscriptionStatus)
	assert.NotEqual(t, "s3cret-pw", account.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(account.PasswordHash, "s3cret-pw"))
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo(&db_models.Account{Name: "Lina", Email: "lina@example.com"})
	svc := NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Lina Again",
		Email:       "lina@example.com",
		Password:    "s3cret-pw",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)
	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Lina",
		Email:       "lina@example.com",
		Password:    "s3cret-pw",
	}))

	resp, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "lina@example.com",
		Password: "s3cret-pw",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "lina@example.com", resp.Account.Email)
	assert.Equal(t, "free", resp.Account.Subscription)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "lina@example.com",
		Password: "wrong-pw",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pw",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}
