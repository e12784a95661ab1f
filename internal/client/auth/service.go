package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/dogbrowser/internal/client/api"
	"github.com/iudanet/dogbrowser/internal/client/storage"
	"github.com/iudanet/dogbrowser/internal/models"
	"github.com/iudanet/dogbrowser/internal/validation"
	pkgapi "github.com/iudanet/dogbrowser/pkg/api"
)

const (
	// DefaultBaseURL is the DummyJSON auth API root.
	DefaultBaseURL = "https://dummyjson.com/auth"

	// DefaultExpiresInMins время жизни access token по умолчанию
	DefaultExpiresInMins = 60
)

// Fetcher is the part of api.Client the service depends on
type Fetcher interface {
	FetchJSON(ctx context.Context, url string, opts api.RequestOptions, policy *api.RetryPolicy, dest any) error
}

// Option configures Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithRetryPolicy overrides the retry policy (2 attempts, 1s base delay by default).
func WithRetryPolicy(p api.RetryPolicy) Option {
	return func(s *Service) { s.policy = p.WithDefaults() }
}

// Service предоставляет функции авторизации
// Единственный компонент, который пишет токены в хранилище
type Service struct {
	client  Fetcher
	tokens  storage.TokenStorage
	logger  *slog.Logger
	baseURL string
	policy  api.RetryPolicy
}

// NewService создает новый сервис авторизации
func NewService(client Fetcher, tokens storage.TokenStorage, baseURL string, opts ...Option) *Service {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	s := &Service{
		client:  client,
		tokens:  tokens,
		baseURL: strings.TrimRight(baseURL, "/"),
		policy:  api.RetryPolicy{MaxAttempts: 2, BaseDelay: time.Second}.WithDefaults(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Login выполняет аутентификацию пользователя и сохраняет оба токена
// При любой ошибке сохраненные токены удаляются
func (s *Service) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	session, err := s.login(ctx, creds)
	if err != nil {
		s.clearTokens(ctx)
		return nil, err
	}
	return session, nil
}

func (s *Service) login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	if err := validation.ValidateUsername(creds.Username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(creds.Password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	expires := creds.ExpiresInMins
	if expires <= 0 {
		expires = DefaultExpiresInMins
	}

	req := pkgapi.LoginRequest{
		Username:      creds.Username,
		Password:      creds.Password,
		ExpiresInMins: expires,
	}

	var resp pkgapi.AuthResponse
	opts := api.RequestOptions{Method: http.MethodPost, Body: req}
	if err := s.client.FetchJSON(ctx, s.baseURL+"/login", opts, &s.policy, &resp); err != nil {
		return nil, withServerMessage(err)
	}

	if err := s.saveTokens(ctx, resp.AccessToken, resp.RefreshToken); err != nil {
		return nil, err
	}

	s.logger.Debug("logged in", "username", resp.Username)

	return &models.Session{
		User:         toUser(resp.UserResponse),
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// GetCurrentUser возвращает профиль владельца access token
// 401 от сервера удаляет оба токена
func (s *Service) GetCurrentUser(ctx context.Context) (*models.User, error) {
	token, err := s.requireToken(ctx, storage.KeyAccessToken)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	var resp pkgapi.UserResponse
	if err := s.client.FetchJSON(ctx, s.baseURL+"/me", api.RequestOptions{Header: header}, &s.policy, &resp); err != nil {
		if api.StatusCode(err) == http.StatusUnauthorized {
			s.clearTokens(ctx)
		}
		return nil, withServerMessage(err)
	}

	user := toUser(resp)
	return &user, nil
}

// RefreshAccessToken обменивает refresh token на новую пару токенов
// Любая ошибка после чтения refresh token удаляет оба токена
func (s *Service) RefreshAccessToken(ctx context.Context) (*models.TokenPair, error) {
	refreshToken, err := s.requireToken(ctx, storage.KeyRefreshToken)
	if err != nil {
		return nil, err
	}

	req := pkgapi.RefreshRequest{
		RefreshToken:  refreshToken,
		ExpiresInMins: DefaultExpiresInMins,
	}

	var resp pkgapi.TokenResponse
	opts := api.RequestOptions{Method: http.MethodPost, Body: req}
	if err := s.client.FetchJSON(ctx, s.baseURL+"/refresh", opts, &s.policy, &resp); err != nil {
		s.clearTokens(ctx)
		return nil, withServerMessage(err)
	}

	if err := s.saveTokens(ctx, resp.AccessToken, resp.RefreshToken); err != nil {
		s.clearTokens(ctx)
		return nil, err
	}

	return &models.TokenPair{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// Logout удаляет оба токена; сервер не уведомляется
func (s *Service) Logout(ctx context.Context) {
	s.clearTokens(ctx)
}

// HasValidTokens reports whether both tokens are stored.
// Проверяется только наличие, срок действия не проверяется.
func (s *Service) HasValidTokens(ctx context.Context) bool {
	for _, key := range []string{storage.KeyAccessToken, storage.KeyRefreshToken} {
		value, err := s.tokens.GetToken(ctx, key)
		if err != nil {
			if !errors.Is(err, storage.ErrTokenNotFound) {
				s.logger.Warn("failed to read token", "key", key, "error", err)
			}
			return false
		}
		if value == "" {
			return false
		}
	}
	return true
}

// AccessTokenExpiry reads the exp claim of the stored access token.
// Подпись не проверяется: значение только для отображения.
func (s *Service) AccessTokenExpiry(ctx context.Context) (time.Time, error) {
	token, err := s.requireToken(ctx, storage.KeyAccessToken)
	if err != nil {
		return time.Time{}, err
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse access token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("access token has no expiration claim")
	}
	return claims.ExpiresAt.Time, nil
}

func (s *Service) requireToken(ctx context.Context, key string) (string, error) {
	value, err := s.tokens.GetToken(ctx, key)
	if errors.Is(err, storage.ErrTokenNotFound) || (err == nil && value == "") {
		return "", fmt.Errorf("%w: no %s found", models.ErrAuthRequired, key)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

// saveTokens сохраняет только непустые значения
func (s *Service) saveTokens(ctx context.Context, accessToken, refreshToken string) error {
	if accessToken != "" {
		if err := s.tokens.SetToken(ctx, storage.KeyAccessToken, accessToken); err != nil {
			return fmt.Errorf("failed to save access token: %w", err)
		}
	}
	if refreshToken != "" {
		if err := s.tokens.SetToken(ctx, storage.KeyRefreshToken, refreshToken); err != nil {
			return fmt.Errorf("failed to save refresh token: %w", err)
		}
	}
	return nil
}

func (s *Service) clearTokens(ctx context.Context) {
	// удаление не должно зависеть от отмены контекста вызывающего
	ctx = context.WithoutCancel(ctx)
	for _, key := range []string{storage.KeyAccessToken, storage.KeyRefreshToken} {
		if err := s.tokens.DeleteToken(ctx, key); err != nil {
			s.logger.Warn("failed to delete token", "key", key, "error", err)
		}
	}
}

// withServerMessage дополняет ошибку статуса текстом из тела ответа DummyJSON
func withServerMessage(err error) error {
	var httpErr *api.HTTPError
	if !errors.As(err, &httpErr) || len(httpErr.Body) == 0 {
		return err
	}

	var body pkgapi.ErrorResponse
	if json.Unmarshal(httpErr.Body, &body) != nil || body.Message == "" {
		return err
	}
	return fmt.Errorf("%w (%s)", err, body.Message)
}

func toUser(r pkgapi.UserResponse) models.User {
	return models.User{
		Username:  r.Username,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Gender:    r.Gender,
		Image:     r.Image,
		ID:        r.ID,
	}
}
