package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/iudanet/dogbrowser/internal/client/api"
	"github.com/iudanet/dogbrowser/internal/client/state"
	"github.com/iudanet/dogbrowser/internal/models"
	"github.com/iudanet/dogbrowser/internal/validation"
)

var errImagesUsage = errors.New("usage: dogbrowser images <breed> [--check]")

func (c *Cli) runImages(ctx context.Context, args []string) error {
	name, check, err := parseImagesArgs(args)
	if err != nil {
		return err
	}

	breed, err := validation.NormalizeBreed(models.Breed(name))
	if err != nil {
		return err
	}

	c.dogs.SelectBreed(ctx, breed)

	snap := c.dogs.Snapshot()
	if snap.ImagesStatus == state.StatusError {
		return fmt.Errorf("failed to load images for %s: %s", breed, snap.ImagesError)
	}
	c.printImages(snap)

	if !check {
		return nil
	}
	return c.checkImages(ctx, breed, snap.Images)
}

// parseImagesArgs принимает --check в любой позиции
func parseImagesArgs(args []string) (string, bool, error) {
	var (
		breed string
		check bool
	)
	for _, arg := range args {
		switch {
		case arg == "--check" || arg == "-check":
			check = true
		case strings.HasPrefix(arg, "-"):
			return "", false, fmt.Errorf("unknown flag %q: %w", arg, errImagesUsage)
		case breed != "":
			return "", false, fmt.Errorf("unexpected argument %q: %w", arg, errImagesUsage)
		default:
			breed = arg
		}
	}
	if breed == "" {
		return "", false, errImagesUsage
	}
	return breed, check, nil
}

func (c *Cli) printImages(snap state.DogSnapshot) {
	c.io.Printf("=== Images: %s ===\n", snap.SelectedBreed)
	c.io.Println()

	if len(snap.Images) == 0 {
		c.io.Println("No images found.")
		return
	}
	for i, url := range snap.Images {
		c.io.Printf("  %d. %s\n", i+1, url)
	}
}

// checkImages шлет HEAD на каждый URL без повторов и отмечает породу при ошибке
func (c *Cli) checkImages(ctx context.Context, breed models.Breed, images []string) error {
	if len(images) == 0 {
		return nil
	}

	c.io.Println()
	c.io.Println("Checking images...")

	policy := api.RetryPolicy{MaxAttempts: 1}.WithDefaults()
	broken := 0
	for _, url := range images {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, err := c.prober.Request(ctx, url, api.RequestOptions{Method: http.MethodHead}, &policy)
		if err != nil {
			broken++
			c.dogs.MarkImageIssue(breed)
			c.io.Printf("  ✗ %s: %v\n", url, err)
			continue
		}
		c.io.Printf("  ✓ %s\n", url)
	}

	c.io.Println()
	if broken == 0 {
		c.io.Println("✓ All images are reachable")
		return nil
	}

	c.io.Printf("⚠️  %d of %d image(s) failed to load\n", broken, len(images))
	if issues := c.dogs.Snapshot().BreedsWithImageIssues; len(issues) > 0 {
		c.io.Printf("Breeds with image issues: %s\n", joinBreeds(issues))
	}
	return nil
}
