package api

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	ExpiresInMins int    `json:"expiresInMins"` // время жизни access token в минутах
}

// UserResponse представляет профиль пользователя (ответ GET /me)
type UserResponse struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Image     string `json:"image"`
	ID        int64  `json:"id"`
}

// AuthResponse представляет ответ POST /login: профиль + токены
type AuthResponse struct {
	UserResponse
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshRequest представляет запрос на обновление токенов
type RefreshRequest struct {
	RefreshToken  string `json:"refreshToken"`
	ExpiresInMins int    `json:"expiresInMins"`
}

// TokenResponse представляет ответ POST /refresh
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ErrorResponse is the error body DummyJSON returns on 4xx.
type ErrorResponse struct {
	Message string `json:"message"`
}
