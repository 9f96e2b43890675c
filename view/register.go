package view

import (
	"bufio"
	"context"
	"errors"
	"io"

	"go-bank-cli/client"
	"go-bank-cli/common"
	"go-bank-cli/logger"
	"go-bank-cli/model"
)

// RegisterView collects the registration form and passes it through to the
// auth client. The server response is not interpreted beyond pass/fail.
type RegisterView struct {
	auth client.IAuthClient
	in   *bufio.Scanner
	out  io.Writer
}

func NewRegisterView(auth client.IAuthClient, in *bufio.Scanner, out io.Writer) *RegisterView {
	return &RegisterView{auth: auth, in: in, out: out}
}

func (v *RegisterView) Run(ctx context.Context) Route {
	header(v.out, "Register")

	name, ok := prompt(v.in, v.out, "Name")
	if !ok {
		return RouteQuit
	}
	email, ok := prompt(v.in, v.out, "Email")
	if !ok {
		return RouteQuit
	}
	password, ok := prompt(v.in, v.out, "Password")
	if !ok {
		return RouteQuit
	}

	if name == "" || email == "" || password == "" {
		banner(v.out, "All fields are required.")
		return RouteRegister
	}

	payload := model.RegisterRequest{Name: name, Email: email, Password: password}
	if _, err := v.auth.RegisterUser(ctx, payload); err != nil {
		logger.Log.WithError(err).Error("Registration request failed")
		var apiErr *common.APIError
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			banner(v.out, apiErr.Detail)
		} else {
			banner(v.out, "Registration failed.")
		}
		return RouteRegister
	}

	banner(v.out, "Registration successful! Please log in.")
	return RouteLogin
}
