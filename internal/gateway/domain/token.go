package domain

import "time"

// TokenPair is what the auth endpoints return: the short-lived access token
// and the long-lived refresh token, both JWTs.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Session records that a user currently holds a live access token. It is
// stored as a Redis hash keyed by user id with TTL equal to the remaining
// access-token lifetime, and exists so logout can find the token to blacklist.
type Session struct {
	UserID      string
	Username    string
	Roles       []string
	AccessToken string
	ExpiresAt   time.Time
}
