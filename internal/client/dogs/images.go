package dogs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/iudanet/dogbrowser/internal/client/api"
	"github.com/iudanet/dogbrowser/internal/models"
	"github.com/iudanet/dogbrowser/internal/validation"
	pkgapi "github.com/iudanet/dogbrowser/pkg/api"
)

// ImagesPerBreed is how many random images are requested per breed.
const ImagesPerBreed = 3

// ImageService загружает случайные фотографии породы, без кеширования
type ImageService struct {
	client  Fetcher
	opts    options
	baseURL string
}

// NewImageService creates an image lookup service
func NewImageService(client Fetcher, baseURL string, opts ...Option) *ImageService {
	return &ImageService{
		client:  client,
		opts:    buildOptions(opts),
		baseURL: trimBase(baseURL),
	}
}

// FetchBreedImages returns the image URLs exactly as the API sent them.
func (s *ImageService) FetchBreedImages(ctx context.Context, breed models.Breed) ([]string, error) {
	normalized, err := validation.NormalizeBreed(breed)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/breed/%s/images/random/%d", s.baseURL, url.PathEscape(normalized.String()), ImagesPerBreed)

	var resp pkgapi.ImagesResponse
	if err := s.client.FetchJSON(ctx, endpoint, api.RequestOptions{}, &s.opts.policy, &resp); err != nil {
		return nil, err
	}

	if resp.Status != pkgapi.StatusSuccess {
		return nil, fmt.Errorf("%w: images status %q", models.ErrAPILogic, resp.Status)
	}

	// message должен быть массивом: при ошибке API присылает строку
	raw := bytes.TrimSpace(resp.Message)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%w: invalid response format: expected array of image URLs", models.ErrAPILogic)
	}

	var images []string
	if err := json.Unmarshal(raw, &images); err != nil {
		return nil, fmt.Errorf("%w: invalid response format: %v", models.ErrAPILogic, err)
	}
	if images == nil {
		images = []string{}
	}

	s.opts.logger.Debug("breed images fetched", "breed", normalized, "count", len(images))
	return images, nil
}
