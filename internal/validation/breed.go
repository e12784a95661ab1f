package validation

import (
	"fmt"
	"strings"

	"github.com/iudanet/dogbrowser/internal/models"
)

// NormalizeBreed trims and lowercases a breed name, rejecting blank input.
func NormalizeBreed(breed models.Breed) (models.Breed, error) {
	trimmed := strings.TrimSpace(string(breed))
	if trimmed == "" {
		return models.NoBreed, fmt.Errorf("%w: breed name is required", models.ErrValidation)
	}
	return models.Breed(strings.ToLower(trimmed)), nil
}
