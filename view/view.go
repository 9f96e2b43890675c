// Package view holds the terminal views: each one renders a page of the
// banking front end, reads form input, calls the API clients, and reports
// the outcome as a banner line. Views never interpret server data beyond
// what they display.
package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Route names the page a finished view hands control to.
type Route string

const (
	RouteLogin     Route = "login"
	RouteRegister  Route = "register"
	RouteDashboard Route = "dashboard"
	RouteTransfer  Route = "transfer"
	RouteDeposit   Route = "deposit"
	RouteWithdraw  Route = "withdraw"
	RouteQuit      Route = "quit"
)

var titleCaser = cases.Title(language.English)

// prompt prints a label and reads one trimmed input line. ok is false once
// the input stream is exhausted, which callers treat as leaving the view.
func prompt(in *bufio.Scanner, out io.Writer, label string) (value string, ok bool) {
	fmt.Fprintf(out, "%s: ", label)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

func banner(out io.Writer, message string) {
	fmt.Fprintln(out, message)
}

func header(out io.Writer, title string) {
	fmt.Fprintf(out, "\n== %s ==\n", title)
}
