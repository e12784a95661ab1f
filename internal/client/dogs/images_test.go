package dogs

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/dogbrowser/internal/client/api"
	"github.com/iudanet/dogbrowser/internal/models"
)

const houndImages = `{
	"message": [
		"https://images.dog.ceo/breeds/hound-afghan/n02088094_1003.jpg",
		"https://images.dog.ceo/breeds/hound-basset/n02088238_10005.jpg",
		"https://images.dog.ceo/breeds/hound-blood/n02088466_10083.jpg"
	],
	"status": "success"
}`

func TestImageService_FetchBreedImages(t *testing.T) {
	var calls atomic.Int32
	server := dogServer(t, &calls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/breed/hound/images/random/3", r.URL.Path)
		_, _ = w.Write([]byte(houndImages))
	})

	svc := NewImageService(api.NewClient(), server.URL, fastRetry())
	images, err := svc.FetchBreedImages(context.Background(), "  Hound ")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://images.dog.ceo/breeds/hound-afghan/n02088094_1003.jpg",
		"https://images.dog.ceo/breeds/hound-basset/n02088238_10005.jpg",
		"https://images.dog.ceo/breeds/hound-blood/n02088466_10083.jpg",
	}, images)
}

func TestImageService_FetchBreedImages_NoCaching(t *testing.T) {
	var calls atomic.Int32
	server := dogServer(t, &calls, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(houndImages))
	})

	svc := NewImageService(api.NewClient(), server.URL, fastRetry())
	ctx := context.Background()

	_, err := svc.FetchBreedImages(ctx, "hound")
	require.NoError(t, err)
	_, err = svc.FetchBreedImages(ctx, "hound")
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
}

func TestImageService_FetchBreedImages_Errors(t *testing.T) {
	tests := []struct {
		name      string
		breed     models.Breed
		status    int
		body      string
		wantErr   error
		wantCalls int32
	}{
		{
			name:      "empty breed",
			breed:     "",
			wantErr:   models.ErrValidation,
			wantCalls: 0,
		},
		{
			name:      "blank breed",
			breed:     "   ",
			wantErr:   models.ErrValidation,
			wantCalls: 0,
		},
		{
			name:      "unsuccessful status",
			breed:     "hound",
			status:    http.StatusOK,
			body:      `{"message":[],"status":"error"}`,
			wantErr:   models.ErrAPILogic,
			wantCalls: 1,
		},
		{
			name:      "message is not an array",
			breed:     "hound",
			status:    http.StatusOK,
			body:      `{"message":"https://images.dog.ceo/breeds/hound/1.jpg","status":"success"}`,
			wantErr:   models.ErrAPILogic,
			wantCalls: 1,
		},
		{
			name:      "message missing",
			breed:     "hound",
			status:    http.StatusOK,
			body:      `{"status":"success"}`,
			wantErr:   models.ErrAPILogic,
			wantCalls: 1,
		},
		{
			name:      "unknown breed",
			breed:     "unicorn",
			status:    http.StatusNotFound,
			body:      `{"status":"error","message":"Breed not found (main breed does not exist)","code":404}`,
			wantErr:   api.ErrStatus,
			wantCalls: 1,
		},
		{
			name:      "server error exhausts retries",
			breed:     "hound",
			status:    http.StatusBadGateway,
			wantErr:   api.ErrStatus,
			wantCalls: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := dogServer(t, &calls, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			svc := NewImageService(api.NewClient(), server.URL, fastRetry())
			images, err := svc.FetchBreedImages(context.Background(), tt.breed)

			require.Error(t, err)
			assert.Nil(t, images)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestImageService_FetchBreedImages_PathEscaped(t *testing.T) {
	var calls atomic.Int32
	server := dogServer(t, &calls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/breed/st%20bernard/images/random/3", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"message":[],"status":"success"}`))
	})

	svc := NewImageService(api.NewClient(), server.URL, fastRetry())
	images, err := svc.FetchBreedImages(context.Background(), "St Bernard")

	require.NoError(t, err)
	assert.NotNil(t, images)
	assert.Empty(t, images)
}
