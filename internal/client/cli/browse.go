package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/iudanet/dogbrowser/internal/client/state"
	"github.com/iudanet/dogbrowser/internal/models"
	"github.com/iudanet/dogbrowser/internal/validation"
)

const browsePrompt = "Breed (r = retry, empty = exit): "

// runBrowse интерактивный цикл: пустая строка или EOF завершает работу
func (c *Cli) runBrowse(ctx context.Context) error {
	c.io.Println("=== Browse Dog Breeds ===")
	c.io.Println()

	c.dogs.LoadBreeds(ctx)
	c.renderBreeds()

	for {
		line, err := c.io.ReadInput(browsePrompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		input := strings.TrimSpace(line)
		switch input {
		case "":
			return nil
		case "r":
			c.retryLast(ctx)
		default:
			c.browseBreed(ctx, models.Breed(input))
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

func (c *Cli) browseBreed(ctx context.Context, input models.Breed) {
	breed, err := validation.NormalizeBreed(input)
	if err != nil {
		c.io.Printf("Error: %v\n", err)
		return
	}

	snap := c.dogs.Snapshot()
	if snap.BreedsStatus == state.StatusSuccess && !slices.Contains(snap.Breeds, breed) {
		c.io.Printf("Unknown breed: %s\n", breed)
		return
	}

	c.dogs.SelectBreed(ctx, breed)
	c.renderImages()
}

// retryLast повторяет последнюю неудачную загрузку: сначала каталог, потом фотографии
func (c *Cli) retryLast(ctx context.Context) {
	snap := c.dogs.Snapshot()
	switch {
	case snap.BreedsStatus == state.StatusError:
		c.dogs.RetryBreeds(ctx)
		c.renderBreeds()
	case snap.ImagesStatus == state.StatusError:
		c.dogs.RetryImages(ctx)
		c.renderImages()
	default:
		c.io.Println("Nothing to retry.")
	}
}

func (c *Cli) renderBreeds() {
	snap := c.dogs.Snapshot()
	if snap.BreedsStatus == state.StatusError {
		c.io.Printf("Failed to load breeds: %s\n", snap.BreedsError)
		c.io.Println("Type 'r' to retry.")
		return
	}
	c.io.Printf("%d breed(s): %s\n", len(snap.Breeds), joinBreeds(snap.Breeds))
	c.io.Println()
}

func (c *Cli) renderImages() {
	snap := c.dogs.Snapshot()
	if snap.ImagesStatus == state.StatusError {
		c.io.Printf("Failed to load images for %s: %s\n", snap.SelectedBreed, snap.ImagesError)
		c.io.Println("Type 'r' to retry.")
		return
	}
	c.printImages(snap)
	c.io.Println()
}
