package models

// User представляет профиль пользователя demo-auth API
// Хранится только в памяти, токены сюда не попадают
type User struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Image     string `json:"image"` // URL аватара
	ID        int64  `json:"id"`
}

// FullName returns "First Last" with empty parts skipped.
func (u *User) FullName() string {
	if u == nil {
		return ""
	}
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// Credentials содержит данные для входа
type Credentials struct {
	Username      string
	Password      string
	ExpiresInMins int // 0 означает значение по умолчанию (60 минут)
}

// Session is the result of a successful login: the profile plus both tokens.
type Session struct {
	User         User
	AccessToken  string
	RefreshToken string
}

// TokenPair holds a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
