package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	// IssueStreamToken returns a short-lived token for the admin event stream
	IssueStreamToken(ctx context.Context, username string) (StreamTokenResponse, error)
}
