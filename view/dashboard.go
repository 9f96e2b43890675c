package view

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"go-bank-cli/client"
	"go-bank-cli/logger"
	"go-bank-cli/model"
	"go-bank-cli/session"
)

// DashboardView lists the caller's accounts and offers account creation,
// transfer, and logout. A failed fetch shows an error banner and renders an
// empty list; the view stays usable either way.
type DashboardView struct {
	accounts client.IAccountClient
	sessions *session.Store
	in       *bufio.Scanner
	out      io.Writer
}

func NewDashboardView(accounts client.IAccountClient, sessions *session.Store, in *bufio.Scanner, out io.Writer) *DashboardView {
	return &DashboardView{accounts: accounts, sessions: sessions, in: in, out: out}
}

func (v *DashboardView) Run(ctx context.Context) Route {
	header(v.out, "Dashboard")
	fmt.Fprintln(v.out, "Welcome to your banking app!")

	if claims, err := v.sessions.Claims(); err == nil && claims.Subject != "" {
		fmt.Fprintf(v.out, "Logged in as %s\n", claims.Subject)
	}

	accounts, err := v.accounts.GetUserAccounts(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Error fetching accounts")
		banner(v.out, "Failed to fetch accounts")
		accounts = nil
	}

	for {
		v.renderAccounts(accounts)

		choice, ok := prompt(v.in, v.out, "[c]reate account, [d]eposit, [w]ithdraw, [t]ransfer money, [l]ogout, [q]uit")
		if !ok {
			return RouteQuit
		}

		switch choice {
		case "c":
			create := NewCreateAccountView(v.accounts, v.in, v.out)
			create.OnAccountCreated = func(account *model.Account) {
				// Optimistic append: the new account joins the in-memory
				// list without a refetch.
				accounts = append(accounts, account)
			}
			create.Run(ctx)
		case "d":
			return RouteDeposit
		case "w":
			return RouteWithdraw
		case "t":
			return RouteTransfer
		case "l":
			if err := v.sessions.Clear(); err != nil {
				logger.Log.WithError(err).Error("Could not clear session token")
			}
			// Logout always lands on the login route, token or no token.
			return RouteLogin
		case "q":
			return RouteQuit
		default:
			banner(v.out, "Unknown option.")
		}
	}
}

func (v *DashboardView) renderAccounts(accounts []*model.Account) {
	fmt.Fprintln(v.out)
	if len(accounts) == 0 {
		fmt.Fprintln(v.out, "No accounts found.")
		return
	}
	for _, account := range accounts {
		RenderAccountCard(v.out, account)
		fmt.Fprintln(v.out)
	}
}
