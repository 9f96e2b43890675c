package model

// Account mirrors the account object the API returns. The id is
// server-assigned and opaque; the account number is the human-facing
// identifier other users transfer to. The balance is only ever mutated
// server-side.
type Account struct {
	ID            int     `json:"id"`
	UserID        int     `json:"user_id"`
	AccountNumber string  `json:"account_number"`
	AccountType   string  `json:"account_type"`
	Balance       float64 `json:"balance"`
}
