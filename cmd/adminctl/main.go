// Command adminctl creates, rotates and deletes administrator accounts. It talks to the
// document store directly; there is no HTTP route for this.
//
//	adminctl passwd <username>
//	adminctl delete <username>
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"miswa/internal/config"
	"miswa/internal/docstore"
	"miswa/internal/domain/auth"
	"miswa/internal/pkg/logger"
)

var errUsage = errors.New("usage: adminctl passwd <username> | adminctl delete <username>")

// readPassword is swapped out in tests.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

type adminService interface {
	SetPassword(ctx context.Context, username, password string) (bool, error)
	DeleteAdmin(ctx context.Context, username string) error
}

func main() {
	if err := mainErr(); err != nil {
		fmt.Fprintln(os.Stderr, "adminctl:", err)
		os.Exit(1)
	}
}

func mainErr() error {
	if len(os.Args) != 3 {
		return errUsage
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(logger.Config{Level: "warn", Dev: true})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := docstore.Open(ctx, cfg.DatabaseURL, cfg.DBName, log)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(context.Background()) }()

	svc := auth.NewService(auth.NewRepository(store, log), nil, log)
	return run(ctx, os.Args[1:], svc, os.Stdout)
}

func run(ctx context.Context, args []string, svc adminService, out io.Writer) error {
	if len(args) != 2 || args[1] == "" {
		return errUsage
	}
	cmd, username := args[0], args[1]

	switch cmd {
	case "passwd":
		password, err := promptNewPassword(out)
		if err != nil {
			return err
		}
		created, err := svc.SetPassword(ctx, username, password)
		if err != nil {
			if errors.Is(err, auth.ErrWeakPassword) {
				return fmt.Errorf("password must be at least %d characters", auth.MinPasswordLength)
			}
			return err
		}
		if created {
			fmt.Fprintf(out, "admin %q created\n", username)
		} else {
			fmt.Fprintf(out, "password for %q updated\n", username)
		}
		return nil

	case "delete":
		if err := svc.DeleteAdmin(ctx, username); err != nil {
			if errors.Is(err, auth.ErrAdminNotFound) {
				return fmt.Errorf("admin %q not found", username)
			}
			return err
		}
		fmt.Fprintf(out, "admin %q deleted\n", username)
		return nil
	}
	return errUsage
}

func promptNewPassword(out io.Writer) (string, error) {
	fmt.Fprint(out, "New password: ")
	first, err := readPassword()
	fmt.Fprintln(out)
	if err != nil {
		return "", err
	}
	fmt.Fprint(out, "Repeat password: ")
	second, err := readPassword()
	fmt.Fprintln(out)
	if err != nil {
		return "", err
	}
	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}
