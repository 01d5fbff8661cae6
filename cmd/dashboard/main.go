// Command dashboard is a terminal client for the Taskboard API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Taskboard/internal/client"
	"Taskboard/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "dashboard:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.SetOutput(stderr)
	server := fs.String("server", envOr("TASKBOARD_SERVER", "http://localhost:8080"), "API base URL")
	email := fs.String("email", os.Getenv("TASKBOARD_EMAIL"), "account email")
	password := fs.String("password", os.Getenv("TASKBOARD_PASSWORD"), "account password")
	token := fs.String("token", os.Getenv("TASKBOARD_TOKEN"), "bearer token instead of email and password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c := client.New(*server, nil)
	switch {
	case *token != "":
		c.SetToken(*token)
	case *email != "" && *password != "":
		loginCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()
		if _, err := c.Login(loginCtx, *email, *password); err != nil {
			return fmt.Errorf("login: %w", err)
		}
	default:
		return errors.New("-token or -email and -password are required")
	}

	if !isTTY(stdout) {
		return errors.New("dashboard requires a TTY")
	}
	return tui.Run(ctx, c)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
