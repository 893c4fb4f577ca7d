package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/yonchee/conduit-api/internal/auth"
	"github.com/yonchee/conduit-api/internal/models"
	"github.com/yonchee/conduit-api/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrCredentialsTaken   = errors.New("email or username already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRequired      = errors.New("email is required")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrFailedToHash       = errors.New("failed to hash password")
	ErrFailedToCreateUser = errors.New("failed to create user")
)

// UserService handles identity and profile business logic.
type UserService struct {
	userRepo repository.UserRepository
	codec    *auth.TokenCodec
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, codec *auth.TokenCodec) *UserService {
	return &UserService{
		userRepo: userRepo,
		codec:    codec,
	}
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	Email    string
	Username string
	Password string
}

// Signup registers a new user and issues a token for the fresh identity.
func (s *UserService) Signup(input SignupInput) (*models.User, string, error) {
	email := strings.TrimSpace(input.Email)
	username := strings.TrimSpace(input.Username)
	if email == "" {
		return nil, "", ErrEmailRequired
	}
	if username == "" {
		return nil, "", ErrUsernameRequired
	}
	if input.Password == "" {
		return nil, "", ErrPasswordRequired
	}

	if taken, err := s.userRepo.EmailTaken(email, 0); err != nil {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	} else if taken {
		return nil, "", ErrEmailTaken
	}

	if taken, err := s.userRepo.UsernameTaken(username, 0); err != nil {
		return nil, "", fmt.Errorf("failed to check username: %w", err)
	} else if taken {
		return nil, "", ErrUsernameTaken
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", ErrFailedToHash
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashed,
	}

	if err := s.userRepo.Create(user); err != nil {
		// The pre-checks above can race a concurrent signup; the unique
		// index is the real safety net. Surface it as the same conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrCredentialsTaken
		}
		return nil, "", ErrFailedToCreateUser
	}

	token, err := s.codec.Sign(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	log.Info().Uint64("user_id", user.ID).Msg("user registered")
	return user, token, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and issues a token. An unknown email and a wrong
// password produce the same error so callers cannot probe which was wrong.
func (s *UserService) Login(input LoginInput) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if !auth.CheckPassword(input.Password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.codec.Sign(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return user, token, nil
}

// GetCurrentUser retrieves a user by ID. A structurally valid token can
// outlive its account, so a missing row is a not-found, not an auth failure.
func (s *UserService) GetCurrentUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateUserInput carries the optional fields of a profile update. Nil means
// the field is left untouched.
type UpdateUserInput struct {
	Email    *string
	Username *string
	Password *string
	Bio      *string
	Image    *string
}

// UpdateUser applies a partial update to the caller's own user record,
// re-checking uniqueness against everyone but the caller.
func (s *UserService) UpdateUser(id uint64, input UpdateUserInput) (*models.User, error) {
	user, err := s.GetCurrentUser(id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		if taken, err := s.userRepo.EmailTaken(*input.Email, id); err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		} else if taken {
			return nil, ErrEmailTaken
		}
		user.Email = *input.Email
	}

	if input.Username != nil {
		if taken, err := s.userRepo.UsernameTaken(*input.Username, id); err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		} else if taken {
			return nil, ErrUsernameTaken
		}
		user.Username = *input.Username
	}

	if input.Password != nil {
		hashed, err := auth.HashPassword(*input.Password)
		if err != nil {
			return nil, ErrFailedToHash
		}
		user.PasswordHash = hashed
	}

	if input.Bio != nil {
		user.Bio = input.Bio
	}
	if input.Image != nil {
		user.Image = input.Image
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCredentialsTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// GetProfile retrieves the public profile for a username.
func (s *UserService) GetProfile(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
