// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required to log in. Identifier matches either
// the username or the email, case-sensitively.
type LoginInput struct {
	Identifier string
	Password   string
}

// --- Output DTOs ---

// SignupOutput returns the newly created account's public projection.
// Signup does not log the user in; no session token is issued here.
type SignupOutput struct {
	User *entity.PublicUser
}

// LoginOutput returns the session token to set as a cookie after a successful login.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.PublicUser
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// CurrentUser resolves the authenticated session to its public user projection.
	CurrentUser(ctx context.Context, session *entity.Session) (*entity.PublicUser, error)
}
