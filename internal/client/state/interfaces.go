package state

import (
	"context"

	"github.com/iudanet/dogbrowser/internal/models"
)

//go:generate moq -out breedsource_mock.go . BreedSource
//go:generate moq -out imagesource_mock.go . ImageSource
//go:generate moq -out authservice_mock.go . AuthService

// BreedSource loads the breed catalog (dogs.CatalogService)
type BreedSource interface {
	FetchBreeds(ctx context.Context) ([]models.Breed, error)
}

// ImageSource loads sample images for a breed (dogs.ImageService)
type ImageSource interface {
	FetchBreedImages(ctx context.Context, breed models.Breed) ([]string, error)
}

// AuthService is the subset of auth.Service the auth store drives
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)
	GetCurrentUser(ctx context.Context) (*models.User, error)
	RefreshAccessToken(ctx context.Context) (*models.TokenPair, error)
	Logout(ctx context.Context)
	HasValidTokens(ctx context.Context) bool
}
