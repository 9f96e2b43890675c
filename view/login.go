package view

import (
	"bufio"
	"context"
	"errors"
	"io"

	"go-bank-cli/client"
	"go-bank-cli/common"
	"go-bank-cli/logger"
	"go-bank-cli/session"
)

// LoginView collects credentials, exchanges them for a session token, and
// stores the token for the account clients to pick up.
type LoginView struct {
	auth     client.IAuthClient
	sessions *session.Store
	in       *bufio.Scanner
	out      io.Writer
}

func NewLoginView(auth client.IAuthClient, sessions *session.Store, in *bufio.Scanner, out io.Writer) *LoginView {
	return &LoginView{auth: auth, sessions: sessions, in: in, out: out}
}

func (v *LoginView) Run(ctx context.Context) Route {
	header(v.out, "Login")

	email, ok := prompt(v.in, v.out, "Email")
	if !ok {
		return RouteQuit
	}
	password, ok := prompt(v.in, v.out, "Password")
	if !ok {
		return RouteQuit
	}

	token, err := v.auth.LoginUser(ctx, email, password)
	if err != nil {
		logger.Log.WithError(err).Error("Login request failed")
		var apiErr *common.APIError
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			banner(v.out, apiErr.Detail)
		} else {
			banner(v.out, "Login failed.")
		}
		return RouteLogin
	}

	if err := v.sessions.Save(token.AccessToken); err != nil {
		logger.Log.WithError(err).Error("Could not store session token")
		banner(v.out, "Login failed.")
		return RouteLogin
	}

	banner(v.out, "Login successful!")
	return RouteDashboard
}
