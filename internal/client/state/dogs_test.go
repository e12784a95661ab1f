package state

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/dogbrowser/internal/models"
)

func imagesFor(breed models.Breed) []string {
	return []string{
		fmt.Sprintf("https://images.dog.ceo/breeds/%s/1.jpg", breed),
		fmt.Sprintf("https://images.dog.ceo/breeds/%s/2.jpg", breed),
		fmt.Sprintf("https://images.dog.ceo/breeds/%s/3.jpg", breed),
	}
}

func staticImages() *ImageSourceMock {
	return &ImageSourceMock{
		FetchBreedImagesFunc: func(ctx context.Context, breed models.Breed) ([]string, error) {
			return imagesFor(breed), nil
		},
	}
}

func staticBreeds(breeds ...models.Breed) *BreedSourceMock {
	return &BreedSourceMock{
		FetchBreedsFunc: func(ctx context.Context) ([]models.Breed, error) {
			return breeds, nil
		},
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "error", StatusError.String())
	assert.Equal(t, "unknown", Status(42).String())
}

func TestNewDogStore_Idle(t *testing.T) {
	store := NewDogStore(staticBreeds(), staticImages(), nil)
	snap := store.Snapshot()

	assert.Equal(t, StatusIdle, snap.BreedsStatus)
	assert.Equal(t, StatusIdle, snap.ImagesStatus)
	assert.Equal(t, models.NoBreed, snap.SelectedBreed)
	assert.Empty(t, snap.Breeds)
	assert.Empty(t, snap.Images)
	assert.Empty(t, snap.BreedsWithImageIssues)
}

func TestDogStore_LoadBreeds(t *testing.T) {
	store := NewDogStore(staticBreeds("akita", "beagle"), staticImages(), nil)

	store.LoadBreeds(context.Background())

	snap := store.Snapshot()
	assert.Equal(t, StatusSuccess, snap.BreedsStatus)
	assert.Equal(t, []models.Breed{"akita", "beagle"}, snap.Breeds)
	assert.Empty(t, snap.BreedsError)
}

func TestDogStore_LoadBreeds_FailureThenRetry(t *testing.T) {
	fail := true
	source := &BreedSourceMock{
		FetchBreedsFunc: func(ctx context.Context) ([]models.Breed, error) {
			if fail {
				return nil, errors.New("HTTP 503: Service Unavailable")
			}
			return []models.Breed{"akita"}, nil
		},
	}
	store := NewDogStore(source, staticImages(), nil)
	ctx := context.Background()

	store.LoadBreeds(ctx)

	snap := store.Snapshot()
	assert.Equal(t, StatusError, snap.BreedsStatus)
	assert.Equal(t, "HTTP 503: Service Unavailable", snap.BreedsError)
	assert.Empty(t, snap.Breeds)

	fail = false
	store.RetryBreeds(ctx)

	snap = store.Snapshot()
	assert.Equal(t, StatusSuccess, snap.BreedsStatus)
	assert.Empty(t, snap.BreedsError)
	assert.Equal(t, []models.Breed{"akita"}, snap.Breeds)
	assert.Len(t, source.FetchBreedsCalls(), 2)
}

func TestDogStore_LoadBreeds_FailureDropsPreviousCatalog(t *testing.T) {
	calls := 0
	source := &BreedSourceMock{
		FetchBreedsFunc: func(ctx context.Context) ([]models.Breed, error) {
			calls++
			if calls == 1 {
				return []models.Breed{"akita"}, nil
			}
			return nil, errors.New("network error")
		},
	}
	store := NewDogStore(source, staticImages(), nil)

	store.LoadBreeds(context.Background())
	store.LoadBreeds(context.Background())

	snap := store.Snapshot()
	assert.Equal(t, StatusError, snap.BreedsStatus)
	assert.Empty(t, snap.Breeds)
}

func TestDogStore_LoadBreeds_NoOpWhileLoading(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	source := &BreedSourceMock{
		FetchBreedsFunc: func(ctx context.Context) ([]models.Breed, error) {
			close(started)
			<-release
			return []models.Breed{"akita"}, nil
		},
	}
	store := NewDogStore(source, staticImages(), nil)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		store.LoadBreeds(ctx)
		close(done)
	}()
	<-started

	assert.Equal(t, StatusLoading, store.Snapshot().BreedsStatus)

	// второй вызов возвращается сразу
	store.LoadBreeds(ctx)
	assert.Len(t, source.FetchBreedsCalls(), 1)

	close(release)
	<-done
	assert.Equal(t, StatusSuccess, store.Snapshot().BreedsStatus)
}

func TestDogStore_SelectBreed(t *testing.T) {
	images := staticImages()
	store := NewDogStore(staticBreeds(), images, nil)

	store.SelectBreed(context.Background(), "hound")

	snap := store.Snapshot()
	assert.Equal(t, models.Breed("hound"), snap.SelectedBreed)
	assert.Equal(t, StatusSuccess, snap.ImagesStatus)
	assert.Equal(t, imagesFor("hound"), snap.Images)
	require.Len(t, images.FetchBreedImagesCalls(), 1)
	assert.Equal(t, models.Breed("hound"), images.FetchBreedImagesCalls()[0].Breed)
}

func TestDogStore_SelectBreed_SameBreedFetchesOnce(t *testing.T) {
	images := staticImages()
	store := NewDogStore(staticBreeds(), images, nil)
	ctx := context.Background()

	store.SelectBreed(ctx, "hound")
	store.SelectBreed(ctx, "hound")

	assert.Len(t, images.FetchBreedImagesCalls(), 1)
}

func TestDogStore_SelectBreed_SameBreedWhileLoading(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	images := &ImageSourceMock{
		FetchBreedImagesFunc: func(ctx context.Context, breed models.Breed) ([]string, error) {
			close(started)
			<-release
			return imagesFor(breed), nil
		},
	}
	store := NewDogStore(staticBreeds(), images, nil)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		store.SelectBreed(ctx, "hound")
		close(done)
	}()
	<-started

	store.SelectBreed(ctx, "hound")
	store.LoadImagesForBreed(ctx, "hound")
	assert.Len(t, images.FetchBreedImagesCalls(), 1)

	close(release)
	<-done
	assert.Equal(t, imagesFor("hound"), store.Snapshot().Images)
}

func TestDogStore_SelectBreed_None(t *testing.T) {
	images := staticImages()
	store := NewDogStore(staticBreeds(), images, nil)
	ctx := context.Background()

	store.SelectBreed(ctx, "hound")
	store.SelectBreed(ctx, models.NoBreed)

	snap := store.Snapshot()
	assert.Equal(t, models.NoBreed, snap.SelectedBreed)
	assert.Equal(t, StatusIdle, snap.ImagesStatus)
	assert.Empty(t, snap.Images)
	assert.Empty(t, snap.ImagesError)
	assert.Len(t, images.FetchBreedImagesCalls(), 1)

	// пробелы тоже означают "ничего не выбрано"
	store.SelectBreed(ctx, "  ")
	assert.Equal(t, models.NoBreed, store.Snapshot().SelectedBreed)
	assert.Len(t, images.FetchBreedImagesCalls(), 1)
}

func TestDogStore_SelectBreed_SlowResponseForPreviousBreedIsDiscarded(t *testing.T) {
	startedA := make(chan struct{})
	releaseA := make(chan struct{})
	images := &ImageSourceMock{
		FetchBreedImagesFunc: func(ctx context.Context, breed models.Breed) ([]string, error) {
			if breed == "akita" {
				close(startedA)
				<-releaseA
			}
			return imagesFor(breed), nil
		},
	}
	store := NewDogStore(staticBreeds(), images, nil)
	ctx := context.Background()

	doneA := make(chan struct{})
	go func() {
		store.SelectBreed(ctx, "akita")
		close(doneA)
	}()
	<-startedA

	store.SelectBreed(ctx, "beagle")

	snap := store.Snapshot()
	assert.Equal(t, models.Breed("beagle"), snap.SelectedBreed)
	assert.Equal(t, imagesFor("beagle"), snap.Images)

	// ответ для akita приходит последним и отбрасывается
	close(releaseA)
	<-doneA

	snap = store.Snapshot()
	assert.Equal(t, models.Breed("beagle"), snap.SelectedBreed)
	assert.Equal(t, StatusSuccess, snap.ImagesStatus)
	assert.Equal(t, imagesFor("beagle"), snap.Images)
}

func TestDogStore_SelectBreed_StaleErrorIsDiscarded(t *testing.T) {
	startedA := make(chan struct{})
	releaseA := make(chan struct{})
	images := &ImageSourceMock{
		FetchBreedImagesFunc: func(ctx context.Context, breed models.Breed) ([]string, error) {
			if breed == "akita" {
				close(startedA)
				<-releaseA
				return nil, errors.New("request timeout")
			}
			return imagesFor(breed), nil
		},
	}
	store := NewDogStore(staticBreeds(), images, nil)
	ctx := context.Background()

	doneA := make(chan struct{})
	go func() {
		store.SelectBreed(ctx, "akita")
		close(doneA)
	}()
	<-startedA

	store.SelectBreed(ctx, models.NoBreed)
	close(releaseA)
	<-doneA

	snap := store.Snapshot()
	assert.Equal(t, StatusIdle, snap.ImagesStatus)
	assert.Empty(t, snap.ImagesError)
	assert.Empty(t, snap.Images)
}

func TestDogStore_SelectBreed_ReselectRefetches(t *testing.T) {
	images := staticImages()
	store := NewDogStore(staticBreeds(), images, nil)
	ctx := context.Background()

	store.SelectBreed(ctx, "akita")
	store.SelectBreed(ctx, "beagle")
	store.SelectBreed(ctx, "akita")

	assert.Len(t, images.FetchBreedImagesCalls(), 3)
	assert.Equal(t, imagesFor("akita"), store.Snapshot().Images)
}

func TestDogStore_LoadImagesForBreed_Error(t *testing.T) {
	images := &ImageSourceMock{
		FetchBreedImagesFunc: func(ctx context.Context, breed models.Breed) ([]string, error) {
			return nil, errors.New("HTTP 404: Not Found")
		},
	}
	store := NewDogStore(staticBreeds(), images, nil)

	store.LoadImagesForBreed(context.Background(), "unicorn")

	snap := store.Snapshot()
	assert.Equal(t, models.Breed("unicorn"), snap.SelectedBreed)
	assert.Equal(t, StatusError, snap.ImagesStatus)
	assert.Equal(t, "HTTP 404: Not Found", snap.ImagesError)
	assert.Empty(t, snap.Images)
}

func TestDogStore_LoadImagesForBreed_Refresh(t *testing.T) {
	images := staticImages()
	store := NewDogStore(staticBreeds(), images, nil)
	ctx := context.Background()

	store.SelectBreed(ctx, "hound")
	store.LoadImagesForBreed(ctx, "hound")

	assert.Len(t, images.FetchBreedImagesCalls(), 2)
	assert.Equal(t, StatusSuccess, store.Snapshot().ImagesStatus)
}

func TestDogStore_RetryImages(t *testing.T) {
	fail := true
	images := &ImageSourceMock{
		FetchBreedImagesFunc: func(ctx context.Context, breed models.Breed) ([]string, error) {
			if fail {
				return nil, errors.New("network error")
			}
			return imagesFor(breed), nil
		},
	}
	store := NewDogStore(staticBreeds(), images, nil)
	ctx := context.Background()

	// без выбранной породы retry ничего не делает
	store.RetryImages(ctx)
	assert.Empty(t, images.FetchBreedImagesCalls())

	store.SelectBreed(ctx, "hound")
	assert.Equal(t, StatusError, store.Snapshot().ImagesStatus)

	fail = false
	store.RetryImages(ctx)

	snap := store.Snapshot()
	assert.Equal(t, StatusSuccess, snap.ImagesStatus)
	assert.Equal(t, imagesFor("hound"), snap.Images)
	require.Len(t, images.FetchBreedImagesCalls(), 2)
	assert.Equal(t, models.Breed("hound"), images.FetchBreedImagesCalls()[1].Breed)
}

func TestDogStore_MarkImageIssue(t *testing.T) {
	images := staticImages()
	store := NewDogStore(staticBreeds(), images, nil)
	ctx := context.Background()

	store.SelectBreed(ctx, "hound")
	before := store.Snapshot()

	store.MarkImageIssue("hound")
	store.MarkImageIssue("akita")
	store.MarkImageIssue("hound")
	store.MarkImageIssue(models.NoBreed)

	after := store.Snapshot()
	assert.Equal(t, before.ImagesStatus, after.ImagesStatus)
	assert.Equal(t, before.Images, after.Images)
	assert.Equal(t, []models.Breed{"akita", "hound"}, after.BreedsWithImageIssues)
	assert.Len(t, images.FetchBreedImagesCalls(), 1, "marking an issue must not refetch")
}

func TestDogStore_SnapshotIsCopy(t *testing.T) {
	store := NewDogStore(staticBreeds("akita", "beagle"), staticImages(), nil)
	ctx := context.Background()
	store.LoadBreeds(ctx)
	store.SelectBreed(ctx, "akita")

	snap := store.Snapshot()
	snap.Breeds[0] = "mutated"
	snap.Images[0] = "mutated"

	again := store.Snapshot()
	assert.Equal(t, models.Breed("akita"), again.Breeds[0])
	assert.Equal(t, imagesFor("akita")[0], again.Images[0])
}

func TestDogStore_ConcurrentSelectionsConverge(t *testing.T) {
	breeds := []models.Breed{"akita", "beagle", "corgi", "dingo", "hound"}
	images := &ImageSourceMock{
		FetchBreedImagesFunc: func(ctx context.Context, breed models.Breed) ([]string, error) {
			time.Sleep(time.Duration(rand.IntN(3)) * time.Millisecond)
			return imagesFor(breed), nil
		},
	}
	store := NewDogStore(staticBreeds(breeds...), images, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 40 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.SelectBreed(ctx, breeds[i%len(breeds)])
		}()
	}
	wg.Wait()

	// после завершения всех загрузок фотографии соответствуют выбору
	snap := store.Snapshot()
	require.False(t, snap.SelectedBreed.IsNone())
	assert.Equal(t, StatusSuccess, snap.ImagesStatus)
	assert.Equal(t, imagesFor(snap.SelectedBreed), snap.Images)
}
