package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/dependencies/clock"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/metrics"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/model"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidSession     = errors.New("invalid or expired session")

	ErrUsernameTooShort   = errors.New("username must be at least 8 characters long")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNeedsUpper = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNeedsLower = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNeedsDigit = errors.New("password must contain at least one number")
)

const minUsernameLen = 8

// Principal is the authenticated identity attached to a request
type Principal struct {
	UserID model.UserID
	Role   model.Role
}

// IsAdmin reports whether the principal may use the admin surface
func (p Principal) IsAdmin() bool {
	return p.Role == model.RoleAdmin
}

// Service handles registration, login and session management
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	metrics metrics.Metrics
	logger  *slog.Logger

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth service
func New(storage storage.Storage, clock clock.Clock, metrics metrics.Metrics, cfg Config, logger *slog.Logger) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         storage,
		clock:           clock,
		metrics:         metrics,
		logger:          logger,
		sessionDuration: cfg.SessionDuration,
	}
}

// ValidatePassword checks the registration password policy
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return ErrPasswordNeedsUpper
	}
	if !hasLower {
		return ErrPasswordNeedsLower
	}
	if !hasDigit {
		return ErrPasswordNeedsDigit
	}
	return nil
}

// Register creates a new user account with the default role and budget
func (s *Service) Register(ctx context.Context, username, password string) (*model.User, error) {
	if len(username) < minUsernameLen {
		return nil, ErrUsernameTooShort
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	return s.createUser(ctx, username, password, model.RoleUser)
}

func (s *Service) createUser(ctx context.Context, username, password string, role model.Role) (*model.User, error) {
	_, err := s.storage.GetUserByUsername(ctx, username)
	if err == nil {
		return nil, model.ErrUsernameExists
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           model.UserID(uuid.NewString()),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		TotalBudget:  model.DefaultBudget,
		Roster:       []model.PlayerID{},
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		slog.String("user_id", string(user.ID)),
		slog.String("username", username),
		slog.String("role", string(role)),
	)

	return user, nil
}

// EnsureAdmin creates the admin account if it does not exist yet.
// Called once at startup with credentials from config.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := s.storage.GetUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return err
	}

	_, err = s.createUser(ctx, username, password, model.RoleAdmin)
	return err
}

// UsernameAvailable reports whether a username can still be registered.
// Usernames below the minimum length are reported unavailable rather than
// rejected, so signup forms can poll while the user types.
func (s *Service) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	if len(username) < minUsernameLen {
		return false, nil
	}

	_, err := s.storage.GetUserByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, model.ErrUserNotFound) {
		return true, nil
	}
	return false, err
}

// User fetches the account behind a principal
func (s *Service) User(ctx context.Context, id model.UserID) (*model.User, error) {
	return s.storage.GetUser(ctx, id)
}

// Login authenticates a user and creates a persisted session
func (s *Service) Login(ctx context.Context, username, password string) (*model.Session, error) {
	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.clock.Now()
	session := &model.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	s.metrics.IncSessionsIssued()

	s.logger.Info("user logged in",
		slog.String("user_id", string(user.ID)),
		slog.String("username", username),
	)

	return session, nil
}

// Authenticate resolves a session token to a principal. Expired sessions are
// deleted on first access and reported as invalid.
func (s *Service) Authenticate(ctx context.Context, sessionID string) (Principal, error) {
	if sessionID == "" {
		return Principal{}, ErrInvalidSession
	}

	session, err := s.storage.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return Principal{}, ErrInvalidSession
		}
		return Principal{}, err
	}

	if session.Expired(s.clock.Now()) {
		if err := s.storage.DeleteSession(ctx, sessionID); err != nil {
			s.logger.Warn("failed to delete expired session", slog.String("error", err.Error()))
		}
		return Principal{}, ErrInvalidSession
	}

	return Principal{UserID: session.UserID, Role: session.Role}, nil
}

// Logout removes a session. Unknown tokens are not an error.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.storage.DeleteSession(ctx, sessionID)
}
