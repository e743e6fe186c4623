package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/budgetbook/internal/models"
	"github.com/budgetbook/internal/repository"
	"github.com/budgetbook/pkg/crypto"
)

var (
	// ErrInvalidCredentials deliberately covers both unknown email and
	// wrong password so login failures never reveal whether an email
	// is registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrEmailRequired      = errors.New("email is required")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrSessionExpired     = errors.New("session expired")
)

// MinPasswordLength is the minimum accepted password length at signup.
const MinPasswordLength = 8

// AuthService handles signup, login and session resolution. Sessions
// are opaque random tokens; only their digest is persisted, so the
// stored rows are useless to anyone who reads the database.
type AuthService struct {
	userRepo    *repository.UserRepository
	sessionRepo *repository.SessionRepository
	sessionTTL  time.Duration
	now         func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repository.UserRepository,
	sessionRepo *repository.SessionRepository,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
		now:         time.Now,
	}
}

// SignupRequest represents the signup request
type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public shape of a user
type UserResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	DisplayName *string `json:"display_name"`
}

func buildUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}
}

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a new user and opens a session for them. It returns
// the user and the raw session token for cookie issuance.
func (s *AuthService) Signup(req *SignupRequest) (*UserResponse, string, error) {
	email := NormalizeEmail(req.Email)
	if email == "" {
		return nil, "", ErrEmailRequired
	}
	if len(req.Password) < MinPasswordLength {
		return nil, "", ErrWeakPassword
	}

	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	var displayName *string
	if name := strings.TrimSpace(req.DisplayName); name != "" {
		displayName = &name
	}

	user := &models.User{
		Email:        email,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.CreateSession(user.ID)
	if err != nil {
		return nil, "", err
	}

	return buildUserResponse(user), token, nil
}

// Login verifies credentials and opens a session. It returns the user
// and the raw session token for cookie issuance.
func (s *AuthService) Login(req *LoginRequest) (*UserResponse, string, error) {
	user, err := s.userRepo.GetByEmail(NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !crypto.CheckPassword(req.Password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.CreateSession(user.ID)
	if err != nil {
		return nil, "", err
	}

	return buildUserResponse(user), token, nil
}

// CreateSession persists a session for a user and returns the raw token
func (s *AuthService) CreateSession(userID string) (string, error) {
	token, err := crypto.GenerateSessionToken()
	if err != nil {
		return "", err
	}

	session := &models.Session{
		TokenHash: crypto.HashSessionToken(token),
		UserID:    userID,
		ExpiresAt: s.now().Add(s.sessionTTL),
	}

	if err := s.sessionRepo.Create(session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return token, nil
}

// ResolveSession maps a raw session token to its user. An expired
// session is deleted on sight and reported as ErrSessionExpired; any
// other failure to resolve is ErrUnauthorized.
func (s *AuthService) ResolveSession(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	tokenHash := crypto.HashSessionToken(token)
	session, err := s.sessionRepo.GetByTokenHash(tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if session.Expired(s.now()) {
		// Lazy expiry sweep: there is no background reaper.
		if err := s.sessionRepo.DeleteByTokenHash(tokenHash); err != nil {
			return nil, err
		}
		return nil, ErrSessionExpired
	}

	user, err := s.userRepo.GetByID(session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	return user, nil
}

// Logout revokes the session matching a raw token. Unknown tokens are
// ignored so logout stays idempotent.
func (s *AuthService) Logout(token string) error {
	if token == "" {
		return nil
	}
	return s.sessionRepo.DeleteByTokenHash(crypto.HashSessionToken(token))
}

// GetProfile returns the public profile of a user
func (s *AuthService) GetProfile(user *models.User) *UserResponse {
	return buildUserResponse(user)
}

// UpdateProfileRequest represents the profile update request
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name"`
}

// UpdateProfile updates the display name; a blank name is stored as null
func (s *AuthService) UpdateProfile(userID string, req *UpdateProfileRequest) (*UserResponse, error) {
	var displayName *string
	if req.DisplayName != nil {
		if name := strings.TrimSpace(*req.DisplayName); name != "" {
			displayName = &name
		}
	}

	user, err := s.userRepo.UpdateDisplayName(userID, displayName)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	return buildUserResponse(user), nil
}
