// file: model/request.go

package model

// CreateAccountRequest is the body of POST /accounts/. The type whitelist
// matches the options the account-creation form offers.
type CreateAccountRequest struct {
	AccountType    string  `json:"account_type" validate:"required,oneof=savings current"`
	InitialDeposit float64 `json:"initial_deposit" validate:"gte=0"`
}

// MoneyRequest is the body of POST /accounts/deposit and /accounts/withdraw.
type MoneyRequest struct {
	AccountID int     `json:"account_id" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
}

// TransferRequest is the body of POST /accounts/transfer. The destination is
// an account number, not an id; the server resolves it.
type TransferRequest struct {
	FromAccountID   int     `json:"from_account_id" validate:"required"`
	ToAccountNumber string  `json:"to_account_number" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
}

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest defines the payload for creating a new user.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}
