package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/internal/validators"
	"github.com/MKhiriev/ar-fit/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored and compared verbatim.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewFitnessValidator(),
		logger:         logger,
	}
}

// Register creates a new user record.
//
// Returns the persisted user (with an assigned ID and creation time) or:
//   - ErrInvalidDataProvided if email or password is empty or a profile
//     value is out of range.
//   - store.ErrDuplicateEmail if the email is already registered.
func (a *authService) Register(ctx context.Context, user models.User) (models.User, error) {
	if err := a.validator.Validate(ctx, user); err != nil {
		a.logger.Debug().Err(err).Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	// registration never starts a session
	user.LoggedIn = false

	registeredUser, err := a.userRepository.Add(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.logger.Info().Str("user_id", registeredUser.ID).Msg("user registered")
	return registeredUser, nil
}

// Login looks the credentials up and, on success, marks the record as
// logged in both in the user store and in the session. A different user
// held by the session is marked logged out first.
//
// Returns ErrInvalidCredentials when nothing matches.
func (a *authService) Login(ctx context.Context, session *Session, email, password string) (models.User, error) {
	found, err := a.userRepository.FindByEmailAndPassword(ctx, email, password)
	if errors.Is(err, store.ErrUserNotFound) {
		a.logger.Debug().Str("email", email).Msg("invalid email/password")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Err(err).Str("email", email).Msg("error looking up user")
		return models.User{}, fmt.Errorf("login lookup: %w", err)
	}

	if err = a.clearPreviousLogin(ctx, session, found.ID); err != nil {
		a.logger.Err(err).Str("user_id", found.ID).Msg("error logging out previous session user")
		return models.User{}, err
	}

	loggedIn, err := a.userRepository.Update(ctx, found.ID, store.Fields{"loggedIn": true})
	if err != nil {
		a.logger.Err(err).Str("user_id", found.ID).Msg("error marking user as logged in")
		return models.User{}, fmt.Errorf("mark logged in: %w", err)
	}

	if err = session.refresh(ctx, loggedIn); err != nil {
		a.logger.Err(err).Str("user_id", found.ID).Msg("error saving session")
		return models.User{}, fmt.Errorf("save session: %w", err)
	}

	a.logger.Info().Str("user_id", loggedIn.ID).Msg("user logged in")
	return loggedIn, nil
}

// clearPreviousLogin drops the logged-in flag of the user the session held
// before nextID, so at most one stored record is marked logged in.
func (a *authService) clearPreviousLogin(ctx context.Context, session *Session, nextID string) error {
	prev, err := session.actingUser(ctx)
	if errors.Is(err, store.ErrNoSession) {
		return nil
	}
	if err != nil {
		return err
	}
	if prev.ID == nextID {
		return nil
	}

	_, err = a.userRepository.Update(ctx, prev.ID, store.Fields{"loggedIn": false})
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("mark %q logged out: %w", prev.ID, err)
	}
	return nil
}

// Logout clears the logged-in flag of the session user in the user store
// and removes the session. Without a session it does nothing.
func (a *authService) Logout(ctx context.Context, session *Session) error {
	user, err := session.actingUser(ctx)
	if errors.Is(err, store.ErrNoSession) {
		return nil
	}
	if err != nil {
		return err
	}

	_, err = a.userRepository.Update(ctx, user.ID, store.Fields{"loggedIn": false})
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		a.logger.Err(err).Str("user_id", user.ID).Msg("error marking user as logged out")
		return fmt.Errorf("mark logged out: %w", err)
	}

	session.Clear()
	if err = session.Save(ctx); err != nil {
		a.logger.Err(err).Str("user_id", user.ID).Msg("error clearing session")
		return err
	}

	a.logger.Info().Str("user_id", user.ID).Msg("user logged out")
	return nil
}

// Current returns the session user, or store.ErrNoSession.
func (a *authService) Current(ctx context.Context, session *Session) (models.User, error) {
	return session.actingUser(ctx)
}
