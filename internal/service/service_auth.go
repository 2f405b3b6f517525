// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/store"
	"github.com/MKhiriev/go-session-keeper/internal/utils"
	"github.com/MKhiriev/go-session-keeper/internal/validators"
	"github.com/MKhiriev/go-session-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; every issued JWT is backed by a
// session record keyed by its "jti" claim, so deleting the record revokes
// the token before it expires.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository

	// idGenerator issues the "jti" of new tokens.
	idGenerator IDGenerator

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(users store.UserRepository, sessions store.SessionRepository, cfg config.ServerApp, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    users,
		sessionRepository: sessions,
		idGenerator:       utils.NewUUIDGenerator(),
		validator:         validators.NewCredentialsValidator(),
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		now:               time.Now,
		logger:            logger,
	}
}

// RegisterUser creates a new account with a bcrypt hash of password.
//
// Returns ErrInvalidDataProvided (wrapping the validation error) for an
// empty or oversized login or password, or a wrapped storage error (e.g.
// store.ErrLoginAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, login, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, models.User{Login: login, Password: password}); err != nil {
		log.Err(err).Str("login", login).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("login", login).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Login:        login,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("login", login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

func (a *authService) SeedUsers(ctx context.Context, seeds []string) error {
	for _, seed := range seeds {
		login, password, err := config.ParseSeedUser(seed)
		if err != nil {
			return err
		}

		_, err = a.RegisterUser(ctx, login, password)
		if errors.Is(err, store.ErrLoginAlreadyExists) {
			a.logger.Debug().Str("login", login).Msg("seed user already exists")
			continue
		}
		if err != nil {
			return fmt.Errorf("seeding user %q: %w", login, err)
		}

		a.logger.Info().Str("login", login).Msg("seed user created")
	}

	return nil
}

// Login checks the credentials of an existing account.
//
// Returns ErrInvalidDataProvided for empty input and ErrWrongPassword both for
// an unknown login and for a password mismatch.
func (a *authService) Login(ctx context.Context, login, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	err := a.validator.Validate(ctx, models.User{Login: login, Password: password}, validators.FieldLogin, validators.FieldPassword)
	if err != nil {
		log.Err(err).Str("login", login).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("login", login).Msg("unknown login")
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("login", login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Warn().Int64("id", foundUser.UserID).Str("login", foundUser.Login).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for user and records its session.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.idGenerator.Generate(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	token.Login = user.Login

	session := models.Session{
		TokenID:   token.TokenID(),
		UserID:    user.UserID,
		Login:     user.Login,
		CreatedAt: token.IssuedAt.Time,
		ExpiresAt: token.ExpiresAt.Time,
	}
	if err = a.sessionRepository.SaveSession(ctx, session); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.UserID).Msg("saving session failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT and resolves its session.
//
// Any token-level failure (signature, issuer, expiry, unknown or expired
// session, owner mismatch) is normalised to ErrTokenIsExpiredOrInvalid.
// Storage failures are returned wrapped.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Session, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	session, err := a.sessionRepository.FindSession(ctx, token.TokenID())
	if errors.Is(err, store.ErrSessionNotFound) {
		log.Debug().Str("token_id", token.TokenID()).Msg("session is revoked")
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.UserID != token.UserID || session.Expired(a.now()) {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	return session, nil
}

// Logout deletes the session, revoking its token.
func (a *authService) Logout(ctx context.Context, session models.Session) error {
	err := a.sessionRepository.DeleteSession(ctx, session.TokenID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("token_id", session.TokenID).Msg("deleting session failed")
		return fmt.Errorf("deleting session failed: %w", err)
	}

	return nil
}

func (a *authService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := a.sessionRepository.DeleteExpiredSessions(ctx, a.now())
	if err != nil {
		return 0, fmt.Errorf("purging expired sessions: %w", err)
	}
	return n, nil
}
