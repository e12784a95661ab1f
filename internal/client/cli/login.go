package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/dogbrowser/internal/models"
)

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	var username string
	if len(args) > 0 {
		username = args[0]
	} else {
		input, err := c.io.ReadInput("Username: ")
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
		username = input
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	c.auth.Login(ctx, models.Credentials{
		Username: strings.TrimSpace(username),
		Password: password,
	})

	snap := c.auth.Snapshot()
	if !snap.IsAuthenticated {
		if snap.Error != "" {
			return fmt.Errorf("login failed: %s", snap.Error)
		}
		return errors.New("login failed")
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.printUser(snap.User)
	c.io.Println()
	c.io.Println("Your session has been saved.")

	return nil
}
