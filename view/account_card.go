package view

import (
	"fmt"
	"io"

	"go-bank-cli/model"
)

// RenderAccountCard writes the three-line card for one account: its type,
// its number, and its balance with two decimals.
func RenderAccountCard(out io.Writer, account *model.Account) {
	fmt.Fprintf(out, "%s Account\n", titleCaser.String(account.AccountType))
	fmt.Fprintf(out, "Account Number: %s\n", account.AccountNumber)
	fmt.Fprintf(out, "Balance: ₹%.2f\n", account.Balance)
}
