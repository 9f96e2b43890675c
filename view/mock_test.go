package view

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"go-bank-cli/model"
)

// mockAccountClient is a mock implementation of client.IAccountClient for
// testing the views.
type mockAccountClient struct{ mock.Mock }

func (m *mockAccountClient) CreateAccount(_ context.Context, accountType string, initialDeposit float64) (*model.Account, error) {
	args := m.Called(accountType, initialDeposit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockAccountClient) GetUserAccounts(_ context.Context) ([]*model.Account, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Account), args.Error(1)
}

func (m *mockAccountClient) DepositMoney(_ context.Context, accountID int, amount float64) (*model.Account, error) {
	args := m.Called(accountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockAccountClient) WithdrawMoney(_ context.Context, accountID int, amount float64) (*model.Account, error) {
	args := m.Called(accountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockAccountClient) TransferMoney(_ context.Context, fromAccountID int, toAccountNumber string, amount float64) (*model.Account, error) {
	args := m.Called(fromAccountID, toAccountNumber, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

// mockAuthClient is a mock implementation of client.IAuthClient.
type mockAuthClient struct{ mock.Mock }

func (m *mockAuthClient) LoginUser(_ context.Context, email, password string) (*model.TokenResponse, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokenResponse), args.Error(1)
}

func (m *mockAuthClient) RegisterUser(_ context.Context, payload interface{}) (json.RawMessage, error) {
	args := m.Called(payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
