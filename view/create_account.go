package view

import (
	"bufio"
	"context"
	"io"
	"strconv"

	"go-bank-cli/client"
	"go-bank-cli/logger"
	"go-bank-cli/model"
)

// CreateAccountView is the account-creation form. It runs inside the
// dashboard; on success the parent is handed the created account through
// OnAccountCreated so it can update its list without a refetch.
type CreateAccountView struct {
	accounts client.IAccountClient
	in       *bufio.Scanner
	out      io.Writer

	// OnAccountCreated is called with the server's account object after a
	// successful submission.
	OnAccountCreated func(*model.Account)

	accountType    string
	initialBalance string
}

func NewCreateAccountView(accounts client.IAccountClient, in *bufio.Scanner, out io.Writer) *CreateAccountView {
	return &CreateAccountView{
		accounts:    accounts,
		in:          in,
		out:         out,
		accountType: "savings",
	}
}

func (v *CreateAccountView) Run(ctx context.Context) {
	header(v.out, "Create New Account")

	accountType, ok := prompt(v.in, v.out, "Account type (savings/current) [savings]")
	if !ok {
		return
	}
	if accountType != "" {
		v.accountType = accountType
	}

	v.initialBalance, ok = prompt(v.in, v.out, "Initial balance")
	if !ok {
		return
	}

	// The balance is free text parsed to a number; anything unparseable is
	// rejected the same way a server refusal is reported.
	initialDeposit, err := strconv.ParseFloat(v.initialBalance, 64)
	if err != nil {
		logger.Log.WithError(err).Error("Could not parse initial balance")
		banner(v.out, "Failed to create account.")
		return
	}

	account, err := v.accounts.CreateAccount(ctx, v.accountType, initialDeposit)
	if err != nil {
		logger.Log.WithError(err).Error("Create account request failed")
		banner(v.out, "Failed to create account.")
		return
	}

	banner(v.out, "Account created successfully!")
	v.initialBalance = ""
	v.accountType = "savings"

	if v.OnAccountCreated != nil {
		v.OnAccountCreated(account)
	}
}
