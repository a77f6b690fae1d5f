// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager: txManager,
		hasher:    hasher,
		logger:    logger,
	}
}

// Register creates a new user with a hashed password.
func (srv *authService) Register(ctx context.Context, input *usecase.CredentialsInput) (*usecase.AuthOutput, error) {
	srv.logger.Debug("Starting registration", slog.String("username", input.Username))

	// bcrypt is CPU-bound; hash outside the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registered *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if _, err := userRepo.FindByUsername(ctx, input.Username); err == nil {
			return errors.Wrap(domainerrors.ErrUsernameTaken, "username already registered")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up username during registration")
		}

		newUser := &entity.User{
			Username:     input.Username,
			PasswordHash: hashedPassword,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		registered = newUser

		return nil
	})
	if err != nil {
		srv.logger.Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Info("User registered", slog.Uint64("userID", uint64(registered.ID)))

	return &usecase.AuthOutput{UserID: registered.ID, Username: registered.Username}, nil
}

// Login verifies credentials and returns the caller's identity.
func (srv *authService) Login(ctx context.Context, input *usecase.CredentialsInput) (*usecase.AuthOutput, error) {
	srv.logger.Debug("Starting login", slog.String("username", input.Username))

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Same error as a wrong password, to avoid leaking which
				// case occurred.
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown username")
			}

			return errors.Wrap(err, "failed to load user during login")
		}

		user = found

		return nil
	})
	if err != nil {
		srv.logger.Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	srv.logger.Debug("User logged in", slog.Uint64("userID", uint64(user.ID)))

	return &usecase.AuthOutput{UserID: user.ID, Username: user.Username}, nil
}
