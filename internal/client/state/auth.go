package state

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/dogbrowser/internal/models"
)

// AuthSnapshot is a copy of the auth store state for rendering.
type AuthSnapshot struct {
	User            *models.User
	Error           string
	Status          Status
	IsAuthenticated bool
}

// AuthStore владеет состоянием сессии пользователя
// Токены хранит AuthService, здесь только профиль и статус.
// Ответ, пришедший после Logout, отбрасывается по sessionGen.
type AuthStore struct {
	service AuthService
	logger  *slog.Logger

	user            *models.User
	err             string
	sessionGen      uint64 // увеличивается при каждом Logout
	status          Status
	isAuthenticated bool
	mu              sync.Mutex
}

// NewAuthStore creates an unauthenticated store in the idle state
func NewAuthStore(service AuthService, logger *slog.Logger) *AuthStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthStore{service: service, logger: logger}
}

// Login signs in; no-op while another auth request is in flight.
func (s *AuthStore) Login(ctx context.Context, creds models.Credentials) {
	gen, ok := s.begin()
	if !ok {
		return
	}

	session, err := s.service.Login(ctx, creds)

	s.mu.Lock()
	if gen != s.sessionGen {
		s.discardLocked(ctx, err == nil)
		return
	}
	defer s.mu.Unlock()

	if err != nil {
		s.user = nil
		s.isAuthenticated = false
		s.status = StatusError
		s.err = err.Error()
		return
	}

	// токены в состояние не попадают
	user := session.User
	s.user = &user
	s.isAuthenticated = true
	s.status = StatusSuccess
	s.err = ""
}

// Logout clears tokens and resets the store to idle.
func (s *AuthStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.sessionGen++
	s.resetLocked()
	s.mu.Unlock()

	s.service.Logout(ctx)
}

// FetchCurrentUser restores the profile from stored tokens.
// При ошибке выполняется одно обновление токена и повторный запрос;
// если и он не удался, выполняется полный Logout.
func (s *AuthStore) FetchCurrentUser(ctx context.Context) {
	if err := s.fetchCurrentUser(ctx); err != nil {
		s.logger.Debug("current user unavailable", "error", err)
	}
}

// RefreshToken refreshes tokens; on failure the store logs out and the error is returned.
func (s *AuthStore) RefreshToken(ctx context.Context) error {
	if _, err := s.service.RefreshAccessToken(ctx); err != nil {
		s.Logout(ctx)
		return fmt.Errorf("failed to refresh token: %w", err)
	}
	return nil
}

// Initialize runs at session start: with stored tokens it restores the user.
// Ошибка только логируется, пользователь остается неаутентифицированным.
func (s *AuthStore) Initialize(ctx context.Context) {
	if !s.service.HasValidTokens(ctx) {
		return
	}
	if err := s.fetchCurrentUser(ctx); err != nil {
		s.logger.Warn("failed to initialize auth", "error", err)
	}
}

// Snapshot returns a copy of the current state.
func (s *AuthStore) Snapshot() AuthSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := AuthSnapshot{
		Error:           s.err,
		Status:          s.status,
		IsAuthenticated: s.isAuthenticated,
	}
	if s.user != nil {
		user := *s.user
		snap.User = &user
	}
	return snap
}

func (s *AuthStore) fetchCurrentUser(ctx context.Context) error {
	if !s.service.HasValidTokens(ctx) {
		return nil
	}
	gen, ok := s.begin()
	if !ok {
		return nil
	}

	refreshed := false
	user, err := s.service.GetCurrentUser(ctx)
	if err != nil {
		s.logger.Debug("fetching current user failed, refreshing token", "error", err)

		if refreshErr := s.RefreshToken(ctx); refreshErr != nil {
			// RefreshToken уже выполнил Logout
			return refreshErr
		}
		refreshed = true

		user, err = s.service.GetCurrentUser(ctx)
		if err != nil {
			s.Logout(ctx)
			return fmt.Errorf("failed to fetch current user after refresh: %w", err)
		}
	}

	s.mu.Lock()
	if gen != s.sessionGen {
		s.discardLocked(ctx, refreshed)
		return nil
	}
	defer s.mu.Unlock()

	s.user = user
	s.isAuthenticated = true
	s.status = StatusSuccess
	s.err = ""
	return nil
}

// begin переводит стор в loading и возвращает поколение сессии;
// false если запрос уже выполняется
func (s *AuthStore) begin() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusLoading {
		return 0, false
	}
	s.status = StatusLoading
	s.err = ""
	return s.sessionGen, true
}

// discardLocked отбрасывает ответ, устаревший из-за Logout, и отпускает мьютекс.
// Если запрос успел сохранить токены, а новой сессии нет, токены удаляются снова.
func (s *AuthStore) discardLocked(ctx context.Context, savedTokens bool) {
	orphaned := savedTokens && s.status != StatusLoading && !s.isAuthenticated
	s.mu.Unlock()

	s.logger.Debug("discarding auth response after logout", "clear_tokens", orphaned)
	if orphaned {
		s.service.Logout(ctx)
	}
}

func (s *AuthStore) resetLocked() {
	s.user = nil
	s.isAuthenticated = false
	s.status = StatusIdle
	s.err = ""
}
