package auth

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"cashbox/internal/domain"
)

const (
	// minPasswordLength is the minimum number of characters in a password.
	minPasswordLength = 6
)

// Service registers users and checks their passwords.
type Service struct {
	users  domain.UserStore
	hasher domain.PasswordHasher
	logger *slog.Logger

	// regMu makes the exists-check and the insert of Register one step.
	regMu sync.Mutex
}

// New returns an auth service backed by the given store and hasher.
func New(users domain.UserStore, hasher domain.PasswordHasher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{users: users, hasher: hasher, logger: logger}
}

// SanitizeUsername trims surrounding whitespace. Nothing else is changed.
func SanitizeUsername(username string) string {
	return strings.TrimSpace(username)
}

// Register creates a user. It reports false for an empty or multi-line
// username, a password shorter than six characters, or a taken username.
func (s *Service) Register(username string, password []byte) (bool, error) {
	name := SanitizeUsername(username)
	switch {
	case name == "":
		s.logger.Debug("registration rejected", "reason", "empty username")
		return false, nil
	case strings.ContainsAny(name, "\r\n"):
		s.logger.Debug("registration rejected", "reason", "line break in username")
		return false, nil
	case utf8.RuneCount(password) < minPasswordLength:
		s.logger.Debug("registration rejected", "username", name, "reason", "password too short")
		return false, nil
	}

	s.regMu.Lock()
	defer s.regMu.Unlock()

	if s.users.UsernameExists(domain.Username(name)) {
		s.logger.Debug("registration rejected", "username", name, "reason", "username taken")
		return false, nil
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return false, fmt.Errorf("auth: generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(password, salt)
	if err != nil {
		return false, fmt.Errorf("auth: hash password: %w", err)
	}
	if err := s.users.AddUser(domain.User{
		Username:     domain.Username(name),
		PasswordHash: hash,
		Salt:         salt,
	}); err != nil {
		return false, err
	}

	s.logger.Info("user registered", "username", name)
	return true, nil
}

// Login reports whether password matches the stored hash for username.
func (s *Service) Login(username string, password []byte) (bool, error) {
	name := SanitizeUsername(username)
	u, ok := s.users.GetUser(domain.Username(name))
	if !ok {
		s.logger.Debug("login failed", "username", name, "reason", "unknown user")
		return false, nil
	}
	if !s.hasher.Verify(u.PasswordHash, password, u.Salt) {
		s.logger.Debug("login failed", "username", name, "reason", "bad password")
		return false, nil
	}
	return true, nil
}

// Compile-time assertion that Service implements domain.AuthService.
var _ domain.AuthService = (*Service)(nil)
