package view

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"go-bank-cli/client"
	"go-bank-cli/common"
	"go-bank-cli/logger"
	"go-bank-cli/model"
)

// TransferView is the transfer form. It fetches the account list once on
// entry to populate the source selector; the quick view below the form keeps
// showing those balances, so after a transfer they are stale until the view
// is reopened.
type TransferView struct {
	accounts client.IAccountClient
	in       *bufio.Scanner
	out      io.Writer

	fromAccountID   string
	toAccountNumber string
	amount          string
}

func NewTransferView(accounts client.IAccountClient, in *bufio.Scanner, out io.Writer) *TransferView {
	return &TransferView{accounts: accounts, in: in, out: out}
}

func (v *TransferView) Run(ctx context.Context) Route {
	header(v.out, "Transfer Money")
	fmt.Fprintln(v.out, "Send money securely between accounts")

	accounts, err := v.accounts.GetUserAccounts(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Error fetching accounts")
		banner(v.out, "Failed to fetch your accounts.")
		accounts = nil
	}
	if len(accounts) > 0 {
		v.fromAccountID = strconv.Itoa(accounts[0].ID)
	}

	v.renderSelector(accounts)

	from, ok := prompt(v.in, v.out, fmt.Sprintf("From account id [%s]", v.fromAccountID))
	if !ok {
		return RouteQuit
	}
	if from != "" {
		v.fromAccountID = from
	}
	v.toAccountNumber, ok = prompt(v.in, v.out, "Receiver's account number")
	if !ok {
		return RouteQuit
	}
	v.amount, ok = prompt(v.in, v.out, "Amount")
	if !ok {
		return RouteQuit
	}

	v.submit(ctx)
	v.renderQuickView(accounts)
	return RouteDashboard
}

func (v *TransferView) submit(ctx context.Context) {
	if v.fromAccountID == "" || v.toAccountNumber == "" || v.amount == "" {
		banner(v.out, "All fields are required.")
		return
	}

	// Presence is the only check here; parse leftovers are zero values the
	// client's own validation rejects before anything hits the wire.
	fromID, _ := strconv.Atoi(v.fromAccountID)
	amount, _ := strconv.ParseFloat(v.amount, 64)

	if _, err := v.accounts.TransferMoney(ctx, fromID, v.toAccountNumber, amount); err != nil {
		logger.Log.WithError(err).Error("Transfer request failed")
		var apiErr *common.APIError
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			banner(v.out, apiErr.Detail)
		} else {
			banner(v.out, "Transfer failed.")
		}
		return
	}

	banner(v.out, fmt.Sprintf("₹%s transferred successfully!", v.amount))
	v.toAccountNumber = ""
	v.amount = ""
}

func (v *TransferView) renderSelector(accounts []*model.Account) {
	if len(accounts) == 0 {
		return
	}
	fmt.Fprintln(v.out, "\nFrom Account")
	for _, account := range accounts {
		fmt.Fprintf(v.out, "  [%d] %s - %s (₹%.2f)\n",
			account.ID, account.AccountType, account.AccountNumber, account.Balance)
	}
}

func (v *TransferView) renderQuickView(accounts []*model.Account) {
	if len(accounts) == 0 {
		return
	}
	fmt.Fprintln(v.out, "\nYour Accounts")
	for _, account := range accounts {
		fmt.Fprintf(v.out, "  %s\n", account.AccountType)
		fmt.Fprintf(v.out, "  Account No: %s\n", account.AccountNumber)
		fmt.Fprintf(v.out, "  ₹%.2f\n", account.Balance)
	}
}
