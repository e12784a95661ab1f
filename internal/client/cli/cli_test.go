package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/iudanet/dogbrowser/internal/client/iocli"
	"github.com/iudanet/dogbrowser/internal/client/state"
	"github.com/iudanet/dogbrowser/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// terminal собирает вывод и отдает заранее заданный ввод
type terminal struct {
	out    strings.Builder
	inputs []string
	mu     sync.Mutex
}

func newTerminal(inputs ...string) (*iocli.IOMock, *terminal) {
	term := &terminal{inputs: inputs}
	mock := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			term.write(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			term.write(fmt.Sprintf(format, a...))
		},
		WriteFunc: func(p []byte) (int, error) {
			term.write(string(p))
			return len(p), nil
		},
		ReadInputFunc: func(prompt string) (string, error) {
			return term.next()
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			return term.next()
		},
	}
	return mock, term
}

func (t *terminal) write(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.out.WriteString(s)
}

func (t *terminal) next() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.inputs) == 0 {
		return "", io.EOF
	}
	line := t.inputs[0]
	t.inputs = t.inputs[1:]
	return line, nil
}

func (t *terminal) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.out.String()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// guestAuth is an auth service without stored tokens
func guestAuth() *state.AuthServiceMock {
	return &state.AuthServiceMock{
		HasValidTokensFunc: func(ctx context.Context) bool { return false },
		LogoutFunc:         func(ctx context.Context) {},
	}
}

func staticBreeds(breeds ...models.Breed) *state.BreedSourceMock {
	return &state.BreedSourceMock{
		FetchBreedsFunc: func(ctx context.Context) ([]models.Breed, error) {
			return breeds, nil
		},
	}
}

func staticImages(images ...string) *state.ImageSourceMock {
	return &state.ImageSourceMock{
		FetchBreedImagesFunc: func(ctx context.Context, breed models.Breed) ([]string, error) {
			return images, nil
		},
	}
}

type testDeps struct {
	breeds  state.BreedSource
	images  state.ImageSource
	auth    state.AuthService
	session SessionInfo
	prober  Prober
}

func newTestCli(term iocli.IO, deps testDeps) *Cli {
	if deps.breeds == nil {
		deps.breeds = staticBreeds()
	}
	if deps.images == nil {
		deps.images = staticImages()
	}
	if deps.auth == nil {
		deps.auth = guestAuth()
	}
	logger := discardLogger()
	return New(
		term,
		state.NewDogStore(deps.breeds, deps.images, logger),
		state.NewAuthStore(deps.auth, logger),
		deps.session,
		deps.prober,
	)
}

func TestCli_Run_UnknownCommand(t *testing.T) {
	mockIO, term := newTerminal()
	c := newTestCli(mockIO, testDeps{})

	err := c.Run(context.Background(), "fetch", nil)

	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "fetch")
	assert.Contains(t, term.String(), "Usage:")
}

func TestCli_Run_RestoresSession(t *testing.T) {
	authService := &state.AuthServiceMock{
		HasValidTokensFunc: func(ctx context.Context) bool { return true },
		GetCurrentUserFunc: func(ctx context.Context) (*models.User, error) {
			return &models.User{ID: 1, Username: "emilys", FirstName: "Emily", LastName: "Johnson"}, nil
		},
	}
	mockIO, term := newTerminal()
	c := newTestCli(mockIO, testDeps{auth: authService})

	require.NoError(t, c.Run(context.Background(), "whoami", nil))

	assert.Len(t, authService.GetCurrentUserCalls(), 1)
	out := term.String()
	assert.Contains(t, out, "Username: emilys")
	assert.Contains(t, out, "Name:     Emily Johnson")
}

func TestCli_Run_SessionRestoredOnlyWhenNeeded(t *testing.T) {
	tests := []struct {
		command     string
		args        []string
		wantRestore bool
	}{
		{command: "breeds"},
		{command: "images", args: []string{"hound"}},
		{command: "browse"},
		{command: "logout"},
		{command: "whoami", wantRestore: true},
		{command: "status", wantRestore: true},
		{command: "refresh", wantRestore: true},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			authService := &state.AuthServiceMock{
				HasValidTokensFunc: func(ctx context.Context) bool { return true },
				GetCurrentUserFunc: func(ctx context.Context) (*models.User, error) {
					return &models.User{ID: 1, Username: "emilys"}, nil
				},
				RefreshAccessTokenFunc: func(ctx context.Context) (*models.TokenPair, error) {
					return &models.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil
				},
				LogoutFunc: func(ctx context.Context) {},
			}
			session := &SessionInfoMock{
				AccessTokenExpiryFunc: func(ctx context.Context) (time.Time, error) {
					return time.Now().Add(time.Hour), nil
				},
			}
			mockIO, _ := newTerminal()
			c := newTestCli(mockIO, testDeps{auth: authService, session: session})

			require.NoError(t, c.Run(context.Background(), tt.command, tt.args))

			if tt.wantRestore {
				assert.Len(t, authService.GetCurrentUserCalls(), 1)
				return
			}
			assert.Empty(t, authService.HasValidTokensCalls())
			assert.Empty(t, authService.GetCurrentUserCalls())
		})
	}
}

func TestCli_Run_Whoami_NotAuthenticated(t *testing.T) {
	mockIO, term := newTerminal()
	c := newTestCli(mockIO, testDeps{})

	require.NoError(t, c.Run(context.Background(), "whoami", nil))
	assert.Contains(t, term.String(), "Not authenticated.")
}

func TestPrintUsage(t *testing.T) {
	mockIO, term := newTerminal()

	PrintUsage(mockIO)

	out := term.String()
	for _, command := range []string{"breeds", "images <breed>", "browse", "login", "logout", "whoami", "status", "refresh"} {
		assert.Contains(t, out, command)
	}
}
