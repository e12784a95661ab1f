package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	pkgapi "github.com/iudanet/dogbrowser/pkg/api"
)

const (
	demoUsername = "emilys"
	demoPassword = "emilyspass"
)

// dummyJSON эмулирует DummyJSON auth API для тестов
type dummyJSON struct {
	server *httptest.Server

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	lastLogin    pkgapi.LoginRequest
	lastRefresh  pkgapi.RefreshRequest
	issued       int

	// failStatus заставляет все эндпоинты отвечать этим статусом
	failStatus atomic.Int32
	calls      atomic.Int32
}

var demoUser = pkgapi.UserResponse{
	ID:        1,
	Username:  demoUsername,
	Email:     "emily.johnson@x.dummyjson.com",
	FirstName: "Emily",
	LastName:  "Johnson",
	Gender:    "female",
	Image:     "https://dummyjson.com/icon/emilys/128",
}

func newDummyJSON(t *testing.T) *dummyJSON {
	t.Helper()
	d := &dummyJSON{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", d.handleLogin)
	mux.HandleFunc("GET /me", d.handleMe)
	mux.HandleFunc("POST /refresh", d.handleRefresh)

	d.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d.calls.Add(1)
		if status := int(d.failStatus.Load()); status != 0 {
			writeJSON(w, status, pkgapi.ErrorResponse{Message: "service unavailable"})
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(d.server.Close)
	return d
}

func (d *dummyJSON) URL() string { return d.server.URL }

func (d *dummyJSON) issueTokens(expiresInMins int) (string, string) {
	d.issued++
	now := time.Now()
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       demoUser.ID,
		"username": demoUser.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(time.Duration(expiresInMins) * time.Minute).Unix(),
		"n":        d.issued,
	}).SignedString([]byte("dummyjson-test-secret"))
	if err != nil {
		panic(err)
	}
	d.accessToken = access
	d.refreshToken = fmt.Sprintf("refresh-%d", d.issued)
	return d.accessToken, d.refreshToken
}

func (d *dummyJSON) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req pkgapi.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, pkgapi.ErrorResponse{Message: "invalid body"})
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastLogin = req

	if req.Username != demoUsername || req.Password != demoPassword {
		writeJSON(w, http.StatusBadRequest, pkgapi.ErrorResponse{Message: "Invalid credentials"})
		return
	}

	access, refresh := d.issueTokens(req.ExpiresInMins)
	writeJSON(w, http.StatusOK, pkgapi.AuthResponse{
		UserResponse: demoUser,
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

func (d *dummyJSON) handleMe(w http.ResponseWriter, r *http.Request) {
	d.mu.Lock()
	defer d.mu.Unlock()

	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" || token != d.accessToken {
		writeJSON(w, http.StatusUnauthorized, pkgapi.ErrorResponse{Message: "Invalid/expired Token!"})
		return
	}
	writeJSON(w, http.StatusOK, demoUser)
}

func (d *dummyJSON) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req pkgapi.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, pkgapi.ErrorResponse{Message: "invalid body"})
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastRefresh = req

	if req.RefreshToken == "" || req.RefreshToken != d.refreshToken {
		writeJSON(w, http.StatusForbidden, pkgapi.ErrorResponse{Message: "Invalid refresh token"})
		return
	}

	access, refresh := d.issueTokens(req.ExpiresInMins)
	writeJSON(w, http.StatusOK, pkgapi.TokenResponse{AccessToken: access, RefreshToken: refresh})
}

func (d *dummyJSON) tokens() (string, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.accessToken, d.refreshToken
}

func (d *dummyJSON) lastLoginRequest() pkgapi.LoginRequest {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastLogin
}

func (d *dummyJSON) lastRefreshRequest() pkgapi.RefreshRequest {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastRefresh
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
