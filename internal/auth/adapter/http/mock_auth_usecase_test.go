package http

import (
	"context"

	"snapfeed/internal/auth/domain/model"
	"snapfeed/internal/auth/domain/repository"
	"snapfeed/internal/auth/usecase"

	"github.com/stretchr/testify/mock"
)

// mockAuthUsecase implements usecase.AuthUsecaseInterface for handler tests.
type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Register(ctx context.Context, req usecase.RegisterRequest) (*model.Account, string, error) {
	args := m.Called(ctx, req)
	var account *model.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*model.Account)
	}
	return account, args.String(1), args.Error(2)
}

func (m *mockAuthUsecase) Login(ctx context.Context, req usecase.LoginRequest) (*model.Account, string, error) {
	args := m.Called(ctx, req)
	var account *model.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*model.Account)
	}
	return account, args.String(1), args.Error(2)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, tokenString string) error {
	args := m.Called(ctx, tokenString)
	return args.Error(0)
}

func (m *mockAuthUsecase) ValidateToken(ctx context.Context, tokenString string) (*repository.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Claims), args.Error(1)
}

func (m *mockAuthUsecase) GetAccountFromToken(ctx context.Context, tokenString string) (*model.Account, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockAuthUsecase) GetAccountByID(ctx context.Context, accountID string) (*model.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}
