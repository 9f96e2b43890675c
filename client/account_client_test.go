// file: client/account_client_test.go

package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-bank-cli/common"
	"go-bank-cli/model"
)

// staticTokens is a TokenSource with a fixed token, standing in for the
// session store.
type staticTokens string

func (s staticTokens) Token() string { return string(s) }

type capturedRequest struct {
	method         string
	path           string
	authorization  string
	idempotencyKey string
	body           string
}

// newFakeBackend records every request and plays back the given response.
func newFakeBackend(t *testing.T, status int, response string, requests *[]capturedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		*requests = append(*requests, capturedRequest{
			method:         r.Method,
			path:           r.URL.Path,
			authorization:  r.Header.Get("Authorization"),
			idempotencyKey: r.Header.Get("Idempotency-Key"),
			body:           string(body),
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, response)
	}))
}

func TestAccountClient_CreateAccount(t *testing.T) {
	t.Run("issues exactly one POST and returns the account unmodified", func(t *testing.T) {
		var requests []capturedRequest
		srv := newFakeBackend(t, http.StatusCreated,
			`{"id":7,"user_id":3,"account_number":"AC107","account_type":"savings","balance":100}`,
			&requests)
		defer srv.Close()

		c := NewAccountClient(srv.URL, staticTokens("test-token"), srv.Client())
		account, err := c.CreateAccount(context.Background(), "savings", 100)

		assert.NoError(t, err)
		assert.Equal(t, &model.Account{
			ID:            7,
			UserID:        3,
			AccountNumber: "AC107",
			AccountType:   "savings",
			Balance:       100,
		}, account)

		assert.Len(t, requests, 1)
		assert.Equal(t, http.MethodPost, requests[0].method)
		assert.Equal(t, "/accounts/", requests[0].path)
		assert.Equal(t, "Bearer test-token", requests[0].authorization)
		assert.JSONEq(t, `{"account_type":"savings","initial_deposit":100}`, requests[0].body)
	})

	t.Run("rejects an unknown account type before any network call", func(t *testing.T) {
		var requests []capturedRequest
		srv := newFakeBackend(t, http.StatusCreated, `{}`, &requests)
		defer srv.Close()

		c := NewAccountClient(srv.URL, staticTokens("test-token"), srv.Client())
		_, err := c.CreateAccount(context.Background(), "fd", 100)

		assert.Error(t, err)
		assert.Empty(t, requests)
	})

	t.Run("negative initial deposit never reaches the wire", func(t *testing.T) {
		var requests []capturedRequest
		srv := newFakeBackend(t, http.StatusCreated, `{}`, &requests)
		defer srv.Close()

		c := NewAccountClient(srv.URL, staticTokens("test-token"), srv.Client())
		_, err := c.CreateAccount(context.Background(), "current", -5)

		assert.Error(t, err)
		assert.Empty(t, requests)
	})
}

func TestAccountClient_GetUserAccounts(t *testing.T) {
	t.Run("keeps the server's order", func(t *testing.T) {
		var requests []capturedRequest
		srv := newFakeBackend(t, http.StatusOK,
			`[{"id":2,"account_number":"AC102","account_type":"current","balance":50},
			  {"id":1,"account_number":"AC101","account_type":"savings","balance":500}]`,
			&requests)
		defer srv.Close()

		c := NewAccountClient(srv.URL, staticTokens("test-token"), srv.Client())
		accounts, err := c.GetUserAccounts(context.Background())

		assert.NoError(t, err)
		assert.Len(t, accounts, 2)
		assert.Equal(t, 2, accounts[0].ID)
		assert.Equal(t, 1, accounts[1].ID)

		assert.Len(t, requests, 1)
		assert.Equal(t, http.MethodGet, requests[0].method)
		assert.Equal(t, "/accounts/", requests[0].path)
	})

	t.Run("sends a blank bearer header when no session exists", func(t *testing.T) {
		var requests []capturedRequest
		srv := newFakeBackend(t, http.StatusUnauthorized, `{"detail":"Could not validate credentials"}`, &requests)
		defer srv.Close()

		c := NewAccountClient(srv.URL, staticTokens(""), srv.Client())
		_, err := c.GetUserAccounts(context.Background())

		assert.Error(t, err)
		assert.Len(t, requests, 1)
		assert.Equal(t, "Bearer ", requests[0].authorization)

		var apiErr *common.APIError
		assert.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Equal(t, "Could not validate credentials", apiErr.Detail)
	})
}

func TestAccountClient_DepositAndWithdraw(t *testing.T) {
	t.Run("deposit posts account_id and amount", func(t *testing.T) {
		var requests []capturedRequest
		srv := newFakeBackend(t, http.StatusOK,
			`{"id":1,"account_number":"AC101","account_type":"savings","balance":600}`,
			&requests)
		defer srv.Close()

		c := NewAccountClient(srv.URL, staticTokens("test-token"), srv.Client())
		account, err := c.DepositMoney(context.Background(), 1, 100)

		assert.NoError(t, err)
		assert.Equal(t, 600.0, account.Balance)
		assert.Len(t, requests, 1)
		assert.Equal(t, "/accounts/deposit", requests[0].path)
		assert.JSONEq(t, `{"account_id":1,"amount":100}`, requests[0].body)
	})

	t.Run("withdraw posts to its own endpoint", func(t *testing.T) {
		var requests []capturedRequest
		srv := newFakeBackend(t, http.StatusOK,
			`{"id":1,"account_number":"AC101","account_type":"savings","balance":400}`,
			&requests)
		defer srv.Close()

		c := NewAccountClient(srv.URL, staticTokens("test-token"), srv.Client())
		account, err := c.WithdrawMoney(context.Background(), 1, 100)

		assert.NoError(t, err)
		assert.Equal(t, 400.0, account.Balance)
		assert.Equal(t, "/accounts/withdraw", requests[0].path)
	})

	t.Run("non-positive amount is rejected locally", func(t *testing.T) {
		var requests []capturedRequest
		srv := newFakeBackend(t, http.StatusOK, `{}`, &requests)
		defer srv.Close()

		c := NewAccountClient(srv.URL, staticTokens("test-token"), srv.Client())
		_, err := c.DepositMoney(context.Background(), 1, 0)

		assert.Error(t, err)
		assert.Empty(t, requests)
	})
}

func TestAccountClient_TransferMoney(t *testing.T) {
	t.Run("body fields map one to one to the arguments", func(t *testing.T) {
		var requests []capturedRequest
		srv := newFakeBackend(t, http.StatusOK,
			`{"id":1,"account_number":"AC101","account_type":"savings","balance":250}`,
			&requests)
		defer srv.Close()

		c := NewAccountClient(srv.URL, staticTokens("test-token"), srv.Client())
		account, err := c.TransferMoney(context.Background(), 1, "AC200", 250)

		assert.NoError(t, err)
		assert.Equal(t, 250.0, account.Balance)
		assert.Len(t, requests, 1)
		assert.Equal(t, "/accounts/transfer", requests[0].path)
		assert.JSONEq(t, `{"from_account_id":1,"to_account_number":"AC200","amount":250}`, requests[0].body)
	})

	t.Run("every submission carries a fresh idempotency key", func(t *testing.T) {
		var requests []capturedRequest
		srv := newFakeBackend(t, http.StatusOK,
			`{"id":1,"account_number":"AC101","account_type":"savings","balance":0}`,
			&requests)
		defer srv.Close()

		c := NewAccountClient(srv.URL, staticTokens("test-token"), srv.Client())
		_, err := c.TransferMoney(context.Background(), 1, "AC200", 10)
		assert.NoError(t, err)
		_, err = c.TransferMoney(context.Background(), 1, "AC200", 10)
		assert.NoError(t, err)

		assert.Len(t, requests, 2)
		assert.NotEmpty(t, requests[0].idempotencyKey)
		assert.NotEmpty(t, requests[1].idempotencyKey)
		assert.NotEqual(t, requests[0].idempotencyKey, requests[1].idempotencyKey)
	})

	t.Run("server failure without detail surfaces an empty detail", func(t *testing.T) {
		var requests []capturedRequest
		srv := newFakeBackend(t, http.StatusInternalServerError, ``, &requests)
		defer srv.Close()

		c := NewAccountClient(srv.URL, staticTokens("test-token"), srv.Client())
		_, err := c.TransferMoney(context.Background(), 1, "AC200", 10)

		var apiErr *common.APIError
		assert.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Empty(t, apiErr.Detail)
	})

	t.Run("server detail is carried verbatim", func(t *testing.T) {
		var requests []capturedRequest
		srv := newFakeBackend(t, http.StatusBadRequest, `{"detail":"Insufficient balance"}`, &requests)
		defer srv.Close()

		c := NewAccountClient(srv.URL, staticTokens("test-token"), srv.Client())
		_, err := c.TransferMoney(context.Background(), 1, "AC200", 10)

		var apiErr *common.APIError
		assert.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "Insufficient balance", apiErr.Detail)
		assert.Equal(t, "Insufficient balance", apiErr.Error())
	})

	t.Run("missing destination never reaches the wire", func(t *testing.T) {
		var requests []capturedRequest
		srv := newFakeBackend(t, http.StatusOK, `{}`, &requests)
		defer srv.Close()

		c := NewAccountClient(srv.URL, staticTokens("test-token"), srv.Client())
		_, err := c.TransferMoney(context.Background(), 1, "", 10)

		assert.Error(t, err)
		assert.Empty(t, requests)
	})
}
