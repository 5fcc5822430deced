package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/gw-job-tracker/internal/logger"
	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// Error variables
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrTooManyLoginAttempts   = errors.New("too many login attempts")
	ErrUserNotFound           = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, passwordHash string) (int64, error)
	Delete(ctx context.Context, userID int64) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// LoginAttemptCounter tracks failed logins per email.
type LoginAttemptCounter interface {
	Count(ctx context.Context, email string) (int64, error)
	Increment(ctx context.Context, email string) (int64, error)
	Reset(ctx context.Context, email string) error
}

// AuthService handles registration, login and account removal.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	jwt         JWTGenerator
	attempts    LoginAttemptCounter
	maxAttempts int64
}

// NewAuthService creates a new AuthService instance. A nil attempts counter
// or maxAttempts <= 0 disables login throttling.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, attempts LoginAttemptCounter, maxAttempts int) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		attempts:    attempts,
		maxAttempts: int64(maxAttempts),
	}
}

func validateCredentials(email, password string) error {
	if len(email) < 3 || len(email) > 255 || !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	if len(password) < 8 || len(password) > 72 {
		return ErrInvalidPassword
	}
	return nil
}

// Register registers a new user and returns its id.
func (svc *AuthService) Register(ctx context.Context, email, password string) (int64, error) {
	if err := validateCredentials(email, password); err != nil {
		return 0, err
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return 0, err
	}
	if user != nil {
		logger.Log.Warnw("email already registered", "email", email)
		return 0, ErrEmailAlreadyRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	id, err := svc.writer.Save(ctx, email, string(hashedPassword))
	if errors.Is(err, models.ErrAlreadyExists) {
		logger.Log.Warnw("email registered concurrently", "email", email)
		return 0, ErrEmailAlreadyRegistered
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	return id, nil
}

// Login authenticates a user and returns a JWT token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if svc.throttled(ctx, email) {
		logger.Log.Warnw("login throttled", "email", email)
		return "", ErrTooManyLoginAttempts
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Warnw("login for unknown email", "email", email)
		svc.recordFailure(ctx, email)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		svc.recordFailure(ctx, email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	if svc.throttleEnabled() {
		if err := svc.attempts.Reset(ctx, email); err != nil {
			logger.Log.Errorw("failed to reset login attempts", "email", email, "err", err)
		}
	}

	return token, nil
}

// DeleteAccount removes the user and every application they own.
func (svc *AuthService) DeleteAccount(ctx context.Context, userID int64) error {
	err := svc.writer.Delete(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete user", "userID", userID, "err", err)
		return err
	}
	return nil
}

func (svc *AuthService) throttleEnabled() bool {
	return svc.attempts != nil && svc.maxAttempts > 0
}

// throttled fails open: a broken counter store never locks users out.
func (svc *AuthService) throttled(ctx context.Context, email string) bool {
	if !svc.throttleEnabled() {
		return false
	}
	n, err := svc.attempts.Count(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to read login attempts", "email", email, "err", err)
		return false
	}
	return n >= svc.maxAttempts
}

func (svc *AuthService) recordFailure(ctx context.Context, email string) {
	if !svc.throttleEnabled() {
		return
	}
	if _, err := svc.attempts.Increment(ctx, email); err != nil {
		logger.Log.Errorw("failed to record login attempt", "email", email, "err", err)
	}
}
