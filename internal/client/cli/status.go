package cli

import (
	"context"
	"time"
)

func (c *Cli) runWhoami() error {
	snap := c.auth.Snapshot()
	if !snap.IsAuthenticated || snap.User == nil {
		c.io.Println("Not authenticated.")
		c.io.Println("Run 'dogbrowser login' to authenticate.")
		return nil
	}

	c.printUser(snap.User)
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	snap := c.auth.Snapshot()
	if !snap.IsAuthenticated {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'dogbrowser login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	if snap.User != nil {
		c.io.Printf("Username: %s\n", snap.User.Username)
	}

	c.printExpiry(ctx)
	return nil
}

func (c *Cli) printExpiry(ctx context.Context) {
	expiresAt, err := c.session.AccessTokenExpiry(ctx)
	if err != nil {
		// не прерываем выполнение, токен мог быть выдан без exp
		c.io.Printf("Warning: failed to read token expiry: %v\n", err)
		return
	}

	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
	if remaining := time.Until(expiresAt); remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("⚠️  Token has expired. Run 'dogbrowser refresh' or login again.")
	}
}
