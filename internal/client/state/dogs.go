package state

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/iudanet/dogbrowser/internal/models"
)

// DogSnapshot is a copy of the dog store state for rendering.
type DogSnapshot struct {
	SelectedBreed         models.Breed
	BreedsError           string
	ImagesError           string
	Breeds                []models.Breed
	Images                []string
	BreedsWithImageIssues []models.Breed
	BreedsStatus          Status
	ImagesStatus          Status
}

// DogStore владеет каталогом пород, выбранной породой и ее фотографиями
//
// Операции блокируют вызывающего до завершения загрузки. Мьютекс не
// удерживается во время сетевых вызовов, поэтому операции можно вызывать
// из разных горутин. Ответ на загрузку фотографий применяется, только если
// его поколение (imagesGen) все еще текущее.
type DogStore struct {
	breedSource BreedSource
	imageSource ImageSource
	logger      *slog.Logger

	imageIssues map[models.Breed]struct{}

	selected     models.Breed
	imagesTarget models.Breed // порода текущей загрузки фотографий
	breedsError  string
	imagesError  string
	breeds       []models.Breed
	images       []string
	imagesGen    uint64
	breedsStatus Status
	imagesStatus Status
	mu           sync.Mutex
}

// NewDogStore creates a dog store in the idle state
func NewDogStore(breeds BreedSource, images ImageSource, logger *slog.Logger) *DogStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &DogStore{
		breedSource: breeds,
		imageSource: images,
		logger:      logger,
		imageIssues: make(map[models.Breed]struct{}),
	}
}

// LoadBreeds fetches the catalog; no-op while a breeds load is in flight.
func (s *DogStore) LoadBreeds(ctx context.Context) {
	s.mu.Lock()
	if s.breedsStatus == StatusLoading {
		s.mu.Unlock()
		return
	}
	s.breedsStatus = StatusLoading
	s.breedsError = ""
	s.mu.Unlock()

	breeds, err := s.breedSource.FetchBreeds(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.logger.Debug("failed to load breeds", "error", err)
		s.breeds = nil
		s.breedsStatus = StatusError
		s.breedsError = err.Error()
		return
	}

	s.breeds = breeds
	s.breedsStatus = StatusSuccess
	s.breedsError = ""
}

// RetryBreeds re-runs LoadBreeds.
func (s *DogStore) RetryBreeds(ctx context.Context) {
	s.LoadBreeds(ctx)
}

// SelectBreed меняет выбранную породу и загружает ее фотографии
// Повторный выбор той же породы ничего не делает.
func (s *DogStore) SelectBreed(ctx context.Context, breed models.Breed) {
	if breed.IsNone() {
		breed = models.NoBreed
	}

	s.mu.Lock()
	if breed == s.selected {
		s.mu.Unlock()
		return
	}

	s.selected = breed
	s.images = nil
	s.imagesStatus = StatusIdle
	s.imagesError = ""
	// любая смена выбора делает текущую загрузку устаревшей
	s.imagesGen++

	if breed == models.NoBreed {
		s.imagesTarget = models.NoBreed
		s.mu.Unlock()
		return
	}

	// загрузка начинается в той же критической секции, что и смена выбора
	gen := s.beginImagesLocked(breed)
	s.mu.Unlock()

	s.runImages(ctx, breed, gen)
}

// LoadImagesForBreed selects breed and fetches its images.
// No-op while images for the same breed are already loading.
func (s *DogStore) LoadImagesForBreed(ctx context.Context, breed models.Breed) {
	s.mu.Lock()
	if s.imagesStatus == StatusLoading && s.imagesTarget == breed {
		s.mu.Unlock()
		return
	}
	s.selected = breed
	gen := s.beginImagesLocked(breed)
	s.mu.Unlock()

	s.runImages(ctx, breed, gen)
}

// RetryImages reloads images for the current selection; no-op with nothing selected.
func (s *DogStore) RetryImages(ctx context.Context) {
	s.mu.Lock()
	selected := s.selected
	s.mu.Unlock()

	if selected.IsNone() {
		return
	}
	s.LoadImagesForBreed(ctx, selected)
}

// MarkImageIssue records that an image of breed failed to render.
// Состояние загрузки не меняется и повторных запросов нет.
func (s *DogStore) MarkImageIssue(breed models.Breed) {
	if breed.IsNone() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.imageIssues[breed]; !ok {
		s.logger.Debug("image issue recorded", "breed", breed)
	}
	s.imageIssues[breed] = struct{}{}
}

// Snapshot returns a copy of the current state.
func (s *DogStore) Snapshot() DogSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return DogSnapshot{
		Breeds:                slices.Clone(s.breeds),
		BreedsStatus:          s.breedsStatus,
		BreedsError:           s.breedsError,
		SelectedBreed:         s.selected,
		Images:                slices.Clone(s.images),
		ImagesStatus:          s.imagesStatus,
		ImagesError:           s.imagesError,
		BreedsWithImageIssues: slices.Sorted(maps.Keys(s.imageIssues)),
	}
}

func (s *DogStore) beginImagesLocked(breed models.Breed) uint64 {
	s.imagesGen++
	s.imagesTarget = breed
	s.imagesStatus = StatusLoading
	s.imagesError = ""
	return s.imagesGen
}

func (s *DogStore) runImages(ctx context.Context, breed models.Breed, gen uint64) {
	images, err := s.imageSource.FetchBreedImages(ctx, breed)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.imagesGen {
		s.logger.Debug("discarding stale images response", "breed", breed, "selected", s.selected)
		return
	}

	if err != nil {
		s.logger.Debug("failed to load images", "breed", breed, "error", err)
		s.images = nil
		s.imagesStatus = StatusError
		s.imagesError = err.Error()
		return
	}

	s.images = images
	s.imagesStatus = StatusSuccess
	s.imagesError = ""
}
