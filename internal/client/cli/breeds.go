package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/dogbrowser/internal/client/state"
	"github.com/iudanet/dogbrowser/internal/models"
)

func (c *Cli) runBreeds(ctx context.Context) error {
	c.dogs.LoadBreeds(ctx)

	snap := c.dogs.Snapshot()
	if snap.BreedsStatus == state.StatusError {
		return fmt.Errorf("failed to load breeds: %s", snap.BreedsError)
	}

	c.io.Println("=== Dog Breeds ===")
	c.io.Println()

	if len(snap.Breeds) == 0 {
		c.io.Println("No breeds found.")
		return nil
	}

	for _, breed := range snap.Breeds {
		c.io.Printf("  %s\n", breed)
	}
	c.io.Println()
	c.io.Printf("Total: %d breed(s)\n", len(snap.Breeds))

	return nil
}

func joinBreeds(breeds []models.Breed) string {
	names := make([]string, len(breeds))
	for i, b := range breeds {
		names[i] = b.String()
	}
	return strings.Join(names, ", ")
}
