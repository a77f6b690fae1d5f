// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// CredentialsInput defines the payload shared by register and login.
type CredentialsInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// AuthOutput returns the caller's identity. No token or session is issued:
// the caller re-supplies user_id on subsequent requests.
type AuthOutput struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new user. Fails when the username is taken.
	Register(ctx context.Context, input *CredentialsInput) (*AuthOutput, error)

	// Login verifies credentials. An unknown username and a wrong password
	// produce the same error, so callers cannot tell which occurred.
	Login(ctx context.Context, input *CredentialsInput) (*AuthOutput, error)
}
