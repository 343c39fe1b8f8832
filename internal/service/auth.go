package service

import (
	"log/slog"
	"strings"

	"github.com/obinna/suya/internal/domain"
)

// AuthService guards access to the app: a local account table plus a
// single session marker. Passwords are stored as entered; this is a
// single-user local client, not a shared credential store.
type AuthService struct {
	accounts domain.AccountStore
	session  domain.SessionStore
	logger   *slog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(accounts domain.AccountStore, session domain.SessionStore, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		accounts: accounts,
		session:  session,
		logger:   logger,
	}
}

// SignUp registers a new account. Both fields are required and the
// username must be unused. The account table is left untouched on any
// failure.
func (s *AuthService) SignUp(username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" || password == "" {
		return domain.ErrMissingFields
	}
	if _, exists := s.accounts.Account(username); exists {
		return domain.ErrUserExists
	}

	if err := s.accounts.SaveAccount(username, password); err != nil {
		return err
	}
	s.logger.Info("account created", "username", username)
	return nil
}

// LogIn verifies the credentials against the stored pair and sets the
// session marker. No session is created on failure.
func (s *AuthService) LogIn(username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	// Empty fields fall through to the same verdict as a wrong pair;
	// login reports any non-match as invalid credentials.
	stored, ok := s.accounts.Account(username)
	if !ok || stored != password {
		return domain.ErrInvalidCredentials
	}

	if err := s.session.SetCurrentUser(username); err != nil {
		return err
	}
	s.logger.Info("logged in", "username", username)
	return nil
}

// LogOut clears the session marker.
func (s *AuthService) LogOut() error {
	if err := s.session.ClearCurrentUser(); err != nil {
		return err
	}
	s.logger.Info("logged out")
	return nil
}

// CurrentUser returns the logged-in username, if any. Drives the
// startup guard: present -> app view plus initial suggestions, absent
// -> signup view.
func (s *AuthService) CurrentUser() (string, bool) {
	return s.session.CurrentUser()
}
