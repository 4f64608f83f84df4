package services

import (
	"fmt"
	"log/slog"
	"quickchat/auth"
	"quickchat/errors"
	"quickchat/repositories"
	"sync"
	"time"
)

const loginFailed = "Username or password incorrect, please try again."

type IAuthService interface {
	Register(req auth.RegisterRequest) (string, error)
	Login(username, password string) (Session, error)
	Attempts() int
}

type Token string

func (t Token) String() string {
	return string(t)
}

// Session is what a successful login hands to the shell.
type Session struct {
	Token     Token
	FirstName string
	LastName  string
	Greeting  string
}

type AuthService struct {
	userRepository    repositories.IUserRepository
	secret            []byte
	authTokenDuration time.Duration
	maxAttempts       int
	log               *slog.Logger

	mu       sync.Mutex
	failures int
}

func NewAuthService(repo repositories.IUserRepository, secret []byte, authTokenDuration time.Duration,
	maxAttempts int, log *slog.Logger) *AuthService {
	return &AuthService{
		userRepository:    repo,
		secret:            secret,
		authTokenDuration: authTokenDuration,
		maxAttempts:       maxAttempts,
		log:               log,
	}
}

// Register returns the per-field status text. The error is non nil when any field was rejected
// or the username is taken.
func (s *AuthService) Register(req auth.RegisterRequest) (string, error) {
	status := auth.RegistrationStatus(req)
	if err := auth.ValidateRegister(req); err != nil {
		return status, err
	}

	// Hashing only once the rules passed, it is the expensive part.
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return status, fmt.Errorf("hashing failed: %w", err)
	}

	userID, err := s.userRepository.CreateUser(repositories.User{
		Username:     req.Username,
		PasswordHash: hashedPassword,
		CellPhone:    req.CellPhone,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if err != nil {
		return status, err
	}
	s.log.Info("User registered", "user_id", userID)
	return status, nil
}

// Login checks the credentials and issues a session token.
// After maxAttempts failures every further call fails with ErrTooManyAttempts.
func (s *AuthService) Login(username, password string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.maxAttempts > 0 && s.failures >= s.maxAttempts {
		return Session{}, errors.ErrTooManyAttempts
	}

	user, err := s.userRepository.GetUserByUsername(username)
	if err != nil {
		return Session{}, s.fail(username)
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return Session{}, s.fail(username)
	}

	token, err := auth.GenerateToken(s.secret, user.Username, user.FirstName, user.LastName, s.authTokenDuration)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", errors.ErrTokenGeneration, err)
	}

	s.failures = 0
	return Session{
		Token:     Token(token),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Greeting:  LoginStatus(true, user.FirstName, user.LastName),
	}, nil
}

// Attempts is the number of failed logins since the last success.
func (s *AuthService) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failures
}

// fail must be called with mu held.
func (s *AuthService) fail(username string) error {
	s.failures++
	s.log.Warn("Login failed", "username", username, "attempt", s.failures)
	if s.maxAttempts > 0 && s.failures >= s.maxAttempts {
		return fmt.Errorf("%w: %w", errors.ErrInvalidCredentials, errors.ErrTooManyAttempts)
	}
	return errors.ErrInvalidCredentials
}

// LoginStatus renders the greeting or the failure text.
func LoginStatus(success bool, firstName, lastName string) string {
	if !success {
		return loginFailed
	}
	return fmt.Sprintf("Welcome %s %s, it is great to see you again.", firstName, lastName)
}
