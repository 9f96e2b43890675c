// File: app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-bank-cli/client"
	"go-bank-cli/config"
	"go-bank-cli/logger"
	"go-bank-cli/session"
	"go-bank-cli/view"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Configuration loaded successfully")

	cfg := config.AppConfig

	// Timeout 0 leaves the client unbounded: a hanging request simply waits
	// until it resolves or the process is interrupted.
	httpClient := &http.Client{
		Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
	}

	// --- Wiring All Layers Together ---
	sessions := session.NewStore(cfg.Session.File)
	authClient := client.NewAuthClient(cfg.API.BaseURL, httpClient)
	accountClient := client.NewAccountClient(cfg.API.BaseURL, sessions, httpClient)

	in := bufio.NewScanner(os.Stdin)
	out := os.Stdout

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	route := startRoute(sessions)
	if len(os.Args) > 1 {
		var ok bool
		route, ok = routeFromCommand(os.Args[1], sessions, out)
		if !ok {
			return
		}
	}

	for route != view.RouteQuit {
		switch route {
		case view.RouteLogin:
			route = view.NewLoginView(authClient, sessions, in, out).Run(ctx)
		case view.RouteRegister:
			route = view.NewRegisterView(authClient, in, out).Run(ctx)
		case view.RouteDashboard:
			route = view.NewDashboardView(accountClient, sessions, in, out).Run(ctx)
		case view.RouteTransfer:
			route = view.NewTransferView(accountClient, in, out).Run(ctx)
		case view.RouteDeposit:
			route = view.NewDepositView(accountClient, in, out).Run(ctx)
		case view.RouteWithdraw:
			route = view.NewWithdrawView(accountClient, in, out).Run(ctx)
		default:
			logger.Log.WithField("route", route).Error("Unknown route")
			route = view.RouteQuit
		}
	}

	logger.Log.Info("Session ended")
}

// startRoute lands returning users on the dashboard and everyone else on
// the login page.
func startRoute(sessions *session.Store) view.Route {
	if sessions.Token() == "" {
		return view.RouteLogin
	}
	return view.RouteDashboard
}

// routeFromCommand maps the optional command argument to a starting view,
// mirroring the pages the browser app routed to.
func routeFromCommand(command string, sessions *session.Store, out *os.File) (view.Route, bool) {
	switch command {
	case "login":
		return view.RouteLogin, true
	case "register":
		return view.RouteRegister, true
	case "dashboard":
		return view.RouteDashboard, true
	case "transfer":
		return view.RouteTransfer, true
	case "deposit":
		return view.RouteDeposit, true
	case "withdraw":
		return view.RouteWithdraw, true
	case "logout":
		if err := sessions.Clear(); err != nil {
			logger.Log.WithError(err).Error("Could not clear session token")
		}
		fmt.Fprintln(out, "Logged out.")
		return view.RouteLogin, true
	default:
		fmt.Fprintf(out, "Unknown command %q. Commands: login, register, dashboard, transfer, deposit, withdraw, logout\n", command)
		return view.RouteQuit, false
	}
}
