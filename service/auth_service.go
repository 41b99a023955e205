package service

import (
	"context"
	"errors"

	"healthmate-backend/models"
	"healthmate-backend/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials covers both unknown usernames and wrong passwords
	// so the login response never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore is the credential store surface AuthService depends on
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// TokenIssuer issues bearer tokens for authenticated usernames
type TokenIssuer interface {
	Issue(username string) (string, error)
}

// AuthService handles registration and login
type AuthService struct {
	users  UserStore
	tokens TokenIssuer
}

// AuthServiceOption is a functional option for AuthService
type AuthServiceOption func(*AuthService)

// AuthWithUserRepository sets the user store
func AuthWithUserRepository(users UserStore) AuthServiceOption {
	return func(s *AuthService) {
		s.users = users
	}
}

// AuthWithTokenService sets the token issuer
func AuthWithTokenService(tokens TokenIssuer) AuthServiceOption {
	return func(s *AuthService) {
		s.tokens = tokens
	}
}

// NewAuthService creates a new auth service
func NewAuthService(opts ...AuthServiceOption) *AuthService {
	s := &AuthService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterRequest carries the fields needed to create an account
type RegisterRequest struct {
	Username string
	Password string
	Email    *string
}

// AuthResult is returned by both Register and Login
type AuthResult struct {
	Token    string
	Username string
}

// Register creates a new user with a bcrypt-hashed password and issues a
// token for the fresh account
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	if s.users == nil {
		return nil, errors.New("user repository not set")
	}
	if s.tokens == nil {
		return nil, errors.New("token service not set")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, Username: user.Username}, nil
}

// Login verifies credentials and issues a token. bcrypt's comparison is
// timing-safe; unknown user and wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	if s.users == nil {
		return nil, errors.New("user repository not set")
	}
	if s.tokens == nil {
		return nil, errors.New("token service not set")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, Username: user.Username}, nil
}
