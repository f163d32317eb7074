package app

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"green-wheels/internal/auth/jwt"
	"green-wheels/internal/shared/apperrors"
	"green-wheels/internal/shared/util"
	userapp "green-wheels/internal/user/app"
	userdomain "green-wheels/internal/user/domain"
)

var (
	ErrUsernameTaken      = fmt.Errorf("the chosen username has already been used: %w", apperrors.ErrConflict)
	ErrEmailTaken         = fmt.Errorf("the chosen email has already been used: %w", apperrors.ErrConflict)
	ErrUnknownUsername    = fmt.Errorf("the given username doesn't exist: %w", apperrors.ErrNotFound)
	ErrInvalidCredentials = fmt.Errorf("the given password is invalid: %w", apperrors.ErrUnauthorized)
)

type AuthService struct {
	users  *userapp.UserService
	tokens *jwt.TokenManager
	logger *util.Logger
}

func NewAuthService(users *userapp.UserService, tokens *jwt.TokenManager, logger *util.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Register stores a new account with a bcrypt password hash. Usernames and
// emails are unique.
func (s *AuthService) Register(user userdomain.User) (int, error) {
	instance := "AuthService.Register"

	for _, existing := range s.users.AllUsers() {
		if existing.Username == user.Username {
			return 0, ErrUsernameTaken
		}
		if existing.Email == user.Email {
			return 0, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error(instance, err)
		return 0, fmt.Errorf("failed to hash password: %w", apperrors.ErrInternal)
	}
	user.Password = string(hash)

	id, err := s.users.InsertUser(user)
	if err != nil {
		s.logger.Error(instance, err)
		return 0, err
	}

	s.logger.OK(instance, fmt.Sprintf("user registered [user_id=%d, username=%s]", id, user.Username))
	return id, nil
}

// Login verifies the credentials and returns a signed session token.
func (s *AuthService) Login(username, password string) (string, error) {
	instance := "AuthService.Login"

	var account *userdomain.User
	for _, u := range s.users.AllUsers() {
		if u.Username == username {
			account = &u
			break
		}
	}
	if account == nil {
		s.logger.Warn(instance, fmt.Sprintf("login failed: unknown username %s", username))
		return "", ErrUnknownUsername
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		s.logger.Warn(instance, fmt.Sprintf("login failed: invalid password for %s", username))
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(account.ID, account.Username)
	if err != nil {
		s.logger.Error(instance, err)
		return "", fmt.Errorf("failed to generate token: %w", apperrors.ErrInternal)
	}

	s.logger.OK(instance, fmt.Sprintf("user login successful [user_id=%d]", account.ID))
	return token, nil
}

// Validate parses a session token and returns its claims.
func (s *AuthService) Validate(token string) (*jwt.Claims, error) {
	return s.tokens.Parse(token)
}
