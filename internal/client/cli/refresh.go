package cli

import (
	"context"
)

// runRefresh обновляет токены; при ошибке стор уже выполнил Logout
func (c *Cli) runRefresh(ctx context.Context) error {
	if err := c.auth.RefreshToken(ctx); err != nil {
		return err
	}

	c.io.Println("✓ Token refreshed")
	c.printExpiry(ctx)
	return nil
}
