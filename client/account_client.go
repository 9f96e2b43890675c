package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-bank-cli/common"
	"go-bank-cli/logger"
	"go-bank-cli/model"
)

// IAccountClient is the contract the account views depend on.
type IAccountClient interface {
	CreateAccount(ctx context.Context, accountType string, initialDeposit float64) (*model.Account, error)
	GetUserAccounts(ctx context.Context) ([]*model.Account, error)
	DepositMoney(ctx context.Context, accountID int, amount float64) (*model.Account, error)
	WithdrawMoney(ctx context.Context, accountID int, amount float64) (*model.Account, error)
	TransferMoney(ctx context.Context, fromAccountID int, toAccountNumber string, amount float64) (*model.Account, error)
}

// AccountClient issues the authenticated /accounts requests. The bearer
// token is read from the token source on every call; when no session exists
// the header goes out blank and the server's rejection is surfaced like any
// other failure.
type AccountClient struct {
	apiClient
	tokens TokenSource
}

func NewAccountClient(baseURL string, tokens TokenSource, httpClient *http.Client) *AccountClient {
	return &AccountClient{
		apiClient: newAPIClient(baseURL, httpClient),
		tokens:    tokens,
	}
}

func (c *AccountClient) authHeader() http.Header {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.tokens.Token())
	return header
}

// CreateAccount opens a new account of the given type with an optional
// initial deposit and returns the server's account object unmodified.
func (c *AccountClient) CreateAccount(ctx context.Context, accountType string, initialDeposit float64) (*model.Account, error) {
	req := model.CreateAccountRequest{AccountType: accountType, InitialDeposit: initialDeposit}
	if err := common.ValidatePayload(req); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"account_type":    accountType,
		"initial_deposit": initialDeposit,
	}).Info("Sending create account request")

	var account model.Account
	if err := c.doJSON(ctx, http.MethodPost, "/accounts/", c.authHeader(), req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// GetUserAccounts lists the caller's accounts in the order the server
// reports them. No client-side filtering or sorting is applied.
func (c *AccountClient) GetUserAccounts(ctx context.Context) ([]*model.Account, error) {
	logger.Log.Info("Fetching user accounts")

	var accounts []*model.Account
	if err := c.doJSON(ctx, http.MethodGet, "/accounts/", c.authHeader(), nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// DepositMoney credits the named account and returns its updated state.
func (c *AccountClient) DepositMoney(ctx context.Context, accountID int, amount float64) (*model.Account, error) {
	return c.moveMoney(ctx, "/accounts/deposit", accountID, amount)
}

// WithdrawMoney debits the named account and returns its updated state.
func (c *AccountClient) WithdrawMoney(ctx context.Context, accountID int, amount float64) (*model.Account, error) {
	return c.moveMoney(ctx, "/accounts/withdraw", accountID, amount)
}

func (c *AccountClient) moveMoney(ctx context.Context, path string, accountID int, amount float64) (*model.Account, error) {
	req := model.MoneyRequest{AccountID: accountID, Amount: amount}
	if err := common.ValidatePayload(req); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"account_id": accountID,
		"amount":     amount,
		"endpoint":   path,
	}).Info("Sending balance operation request")

	var account model.Account
	if err := c.doJSON(ctx, http.MethodPost, path, c.authHeader(), req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// TransferMoney moves funds from one of the caller's accounts to the account
// with the given number; the server resolves the number to an account. Each
// submission carries a fresh Idempotency-Key header so a retry after a
// timeout cannot be applied twice once the server honors the key. The
// response is the updated source account.
func (c *AccountClient) TransferMoney(ctx context.Context, fromAccountID int, toAccountNumber string, amount float64) (*model.Account, error) {
	req := model.TransferRequest{
		FromAccountID:   fromAccountID,
		ToAccountNumber: toAccountNumber,
		Amount:          amount,
	}
	if err := common.ValidatePayload(req); err != nil {
		return nil, err
	}

	idempotencyKey := uuid.NewString()
	header := c.authHeader()
	header.Set("Idempotency-Key", idempotencyKey)

	log := logger.Log.WithFields(logrus.Fields{
		"from_account_id":   fromAccountID,
		"to_account_number": toAccountNumber,
		"amount":            amount,
		"idempotency_key":   idempotencyKey,
	})
	log.Info("Sending transfer request")

	var account model.Account
	if err := c.doJSON(ctx, http.MethodPost, "/accounts/transfer", header, req, &account); err != nil {
		log.WithError(err).Warn("Transfer request failed")
		return nil, err
	}

	log.Info("Transfer completed")
	return &account, nil
}
