package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/jwt"
)

// Credentials is the single admin account configured for the dashboard.
type Credentials struct {
	Username string
	Password string
}

type AuthServiceImpl struct {
	credentials Credentials
	jwt.Service
}

func NewAuthService(credentials Credentials, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		credentials: credentials,
		Service:     jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.credentials.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(a.credentials.Password)) == 1
	if !userOK || !passOK {
		slog.Warn("admin login failed", "username", req.Username)
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(req.Username)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	slog.Info("admin logged in", "username", req.Username)
	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// IssueStreamToken implements auth.AuthService.
func (a *AuthServiceImpl) IssueStreamToken(ctx context.Context, username string) (auth.StreamTokenResponse, error) {
	if username == "" {
		return auth.StreamTokenResponse{}, auth.ErrInvalidToken
	}

	token, expiresIn, err := a.Service.GenerateStreamToken(username)
	if err != nil {
		return auth.StreamTokenResponse{}, fmt.Errorf("failed to generate stream token: %w", err)
	}

	return auth.StreamTokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}
