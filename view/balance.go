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

// BalanceView covers the deposit and withdraw forms, which differ only in
// the client operation they submit to.
type BalanceView struct {
	accounts client.IAccountClient
	withdraw bool
	in       *bufio.Scanner
	out      io.Writer
}

func NewDepositView(accounts client.IAccountClient, in *bufio.Scanner, out io.Writer) *BalanceView {
	return &BalanceView{accounts: accounts, in: in, out: out}
}

func NewWithdrawView(accounts client.IAccountClient, in *bufio.Scanner, out io.Writer) *BalanceView {
	return &BalanceView{accounts: accounts, withdraw: true, in: in, out: out}
}

func (v *BalanceView) Run(ctx context.Context) Route {
	title, verb := "Deposit Money", "deposited"
	if v.withdraw {
		title, verb = "Withdraw Money", "withdrawn"
	}
	header(v.out, title)

	accounts, err := v.accounts.GetUserAccounts(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Error fetching accounts")
		banner(v.out, "Failed to fetch your accounts.")
		accounts = nil
	}

	defaultID := ""
	if len(accounts) > 0 {
		defaultID = strconv.Itoa(accounts[0].ID)
	}
	v.renderSelector(accounts)

	accountID, ok := prompt(v.in, v.out, fmt.Sprintf("Account id [%s]", defaultID))
	if !ok {
		return RouteQuit
	}
	if accountID == "" {
		accountID = defaultID
	}
	amountStr, ok := prompt(v.in, v.out, "Amount")
	if !ok {
		return RouteQuit
	}

	if accountID == "" || amountStr == "" {
		banner(v.out, "All fields are required.")
		return RouteDashboard
	}

	id, _ := strconv.Atoi(accountID)
	amount, _ := strconv.ParseFloat(amountStr, 64)

	op := v.accounts.DepositMoney
	if v.withdraw {
		op = v.accounts.WithdrawMoney
	}

	account, err := op(ctx, id, amount)
	if err != nil {
		logger.Log.WithError(err).Error("Balance operation failed")
		var apiErr *common.APIError
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			banner(v.out, apiErr.Detail)
		} else if v.withdraw {
			banner(v.out, "Withdrawal failed.")
		} else {
			banner(v.out, "Deposit failed.")
		}
		return RouteDashboard
	}

	banner(v.out, fmt.Sprintf("₹%s %s successfully! New balance: ₹%.2f", amountStr, verb, account.Balance))
	return RouteDashboard
}

func (v *BalanceView) renderSelector(accounts []*model.Account) {
	if len(accounts) == 0 {
		return
	}
	fmt.Fprintln(v.out, "\nYour Accounts")
	for _, account := range accounts {
		fmt.Fprintf(v.out, "  [%d] %s - %s (₹%.2f)\n",
			account.ID, account.AccountType, account.AccountNumber, account.Balance)
	}
}
