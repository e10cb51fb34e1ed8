// Command authctl is a small operator tool for the auth service. It drives
// the same client SDK the applications use, storing the session in the
// per-user credentials file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pennywise-app/pennywise/pkg/authsdk"
)

const defaultBaseURL = "http://localhost:8080"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	client, err := newClient()
	if err != nil {
		fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var cmdErr error
	switch os.Args[1] {
	case "register":
		cmdErr = runRegister(ctx, client, os.Args[2:])
	case "login":
		cmdErr = runLogin(ctx, client, os.Args[2:])
	case "whoami":
		cmdErr = runWhoami(ctx, client)
	case "refresh":
		cmdErr = runRefresh(ctx, client)
	case "logout":
		cmdErr = client.Logout()
	case "health":
		cmdErr = runHealth(ctx, client)
	default:
		usage()
		os.Exit(2)
	}

	if cmdErr != nil {
		fatal(cmdErr)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: authctl <command> [flags]

commands:
  register   create a new account and store the session
  login      authenticate and store the session
  whoami     show the account behind the stored session
  refresh    exchange the stored session for a fresh one
  logout     discard the stored session
  health     show service readiness

environment:
  AUTHCTL_URL   base URL of the auth service (default http://localhost:8080)`)
}

func newClient() (*authsdk.Client, error) {
	baseURL := os.Getenv("AUTHCTL_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	store, err := authsdk.NewFileStore()
	if err != nil {
		return nil, err
	}
	return authsdk.NewClient(baseURL).WithCredentialStore(store), nil
}

func runRegister(ctx context.Context, client *authsdk.Client, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "display name")
	role := fs.String("role", authsdk.RoleUser, "account role: user, admin or business")
	_ = fs.Parse(args)

	out, err := client.Register(ctx, authsdk.RegisterRequest{
		Email:    *email,
		Password: *password,
		Name:     *name,
		Role:     *role,
	})
	if err != nil {
		return err
	}

	fmt.Printf("registered %s (%s), session valid for %s\n",
		out.User.Email, out.User.ID, time.Duration(out.ExpiresIn)*time.Second)
	return nil
}

func runLogin(ctx context.Context, client *authsdk.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	out, err := client.Login(ctx, authsdk.LoginRequest{
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}

	fmt.Printf("logged in as %s, session valid for %s\n",
		out.User.Email, time.Duration(out.ExpiresIn)*time.Second)
	return nil
}

func runWhoami(ctx context.Context, client *authsdk.Client) error {
	sess, err := client.RestoreSession(ctx)
	if err != nil {
		return err
	}
	if !sess.Authenticated() {
		fmt.Println("not logged in")
		return nil
	}

	fmt.Printf("%s <%s> role=%s id=%s\n",
		sess.User.Name, sess.User.Email, sess.User.Role, sess.User.ID)
	return nil
}

func runRefresh(ctx context.Context, client *authsdk.Client) error {
	sess, err := client.RestoreSession(ctx)
	if err != nil {
		return err
	}
	if !sess.Authenticated() {
		return fmt.Errorf("not logged in")
	}

	out, err := client.Refresh(ctx, sess.Token)
	if err != nil {
		return err
	}

	fmt.Printf("session refreshed, valid for %s\n", time.Duration(out.ExpiresIn)*time.Second)
	return nil
}

func runHealth(ctx context.Context, client *authsdk.Client) error {
	out, err := client.GetReadiness(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("status=%s uptime=%s version=%s\n", out.Status, out.Uptime, out.Version)
	if out.Checks != nil {
		fmt.Printf("  database: %s\n  signer:   %s\n", out.Checks.Database, out.Checks.Signer)
	}
	return nil
}

func fatal(err error) {
	var netErr *authsdk.NetworkError
	var apiErr *authsdk.APIError
	switch {
	case errors.As(err, &netErr):
		fmt.Fprintf(os.Stderr, "authctl: service unreachable: %v\n", netErr)
	case errors.As(err, &apiErr):
		fmt.Fprintf(os.Stderr, "authctl: %s\n", apiErr.Description)
		for field, msg := range apiErr.Details {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
		}
	default:
		fmt.Fprintf(os.Stderr, "authctl: %v\n", err)
	}
	os.Exit(1)
}
