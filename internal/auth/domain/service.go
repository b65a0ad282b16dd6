package domain

import (
	"context"
	"errors"
)

type Service interface {
	Register(ctx context.Context, req Credentials) error
	// Login verifies the credentials and issues a signed session token.
	Login(ctx context.Context, req Credentials) (*TokenResponse, error)
	// VerifyToken parses a bearer token and returns the admin username
	// it was issued to.
	VerifyToken(token string) (string, error)
}

type Credentials struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUsernameTaken      = errors.New("username_taken")
	ErrInvalidUsername    = errors.New("invalid_username")
	ErrInvalidPassword    = errors.New("invalid_password")
	ErrInvalidToken       = errors.New("invalid_token")
)
