package service

import (
	"testing"
	"time"

	"github.com/budgetbook/internal/repository"
	"github.com/budgetbook/pkg/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupNormalizesEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	user, token, err := svc.Signup(&SignupRequest{
		Email:    "  Alice@Example.COM ",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, "alice@example.com", user.Email)
	assert.Nil(t, user.DisplayName)
}

func TestSignupValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	_, _, err := svc.Signup(&SignupRequest{Email: "   ", Password: "password123"})
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, _, err = svc.Signup(&SignupRequest{Email: "bob@example.com", Password: "short"})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestSignupDuplicateEmailCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	_, _, err := svc.Signup(&SignupRequest{Email: "carol@example.com", Password: "password123"})
	require.NoError(t, err)

	_, _, err = svc.Signup(&SignupRequest{Email: "CAROL@example.com", Password: "password456"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	_, _, err := svc.Signup(&SignupRequest{Email: "dave@example.com", Password: "password123"})
	require.NoError(t, err)

	user, token, err := svc.Login(&LoginRequest{Email: "Dave@Example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "dave@example.com", user.Email)
	assert.NotEmpty(t, token)
}

func TestLoginInvalidCredentialsIndistinguishable(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	_, _, err := svc.Signup(&SignupRequest{Email: "erin@example.com", Password: "password123"})
	require.NoError(t, err)

	// Unknown email and wrong password fail with the same error so the
	// response does not reveal which emails are registered.
	_, _, unknownErr := svc.Login(&LoginRequest{Email: "nobody@example.com", Password: "password123"})
	_, _, wrongPwErr := svc.Login(&LoginRequest{Email: "erin@example.com", Password: "wrongpassword"})

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPwErr, ErrInvalidCredentials)
}

func TestResolveSession(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	signedUp, token, err := svc.Signup(&SignupRequest{Email: "frank@example.com", Password: "password123"})
	require.NoError(t, err)

	user, err := svc.ResolveSession(token)
	require.NoError(t, err)
	assert.Equal(t, signedUp.ID, user.ID)

	_, err = svc.ResolveSession("")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.ResolveSession("not-a-real-token")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogoutRevokesSession(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	_, token, err := svc.Signup(&SignupRequest{Email: "grace@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(token))

	_, err = svc.ResolveSession(token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Logout is idempotent
	assert.NoError(t, svc.Logout(token))
	assert.NoError(t, svc.Logout(""))
}

func TestResolveSessionExpiredDeletesRow(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	_, token, err := svc.Signup(&SignupRequest{Email: "heidi@example.com", Password: "password123"})
	require.NoError(t, err)

	// Fast-forward past the 30 day TTL
	svc.now = func() time.Time { return time.Now().Add(31 * 24 * time.Hour) }

	_, err = svc.ResolveSession(token)
	assert.ErrorIs(t, err, ErrSessionExpired)

	// The expired row is swept on detection
	sessionRepo := repository.NewSessionRepository(db)
	_, err = sessionRepo.GetByTokenHash(crypto.HashSessionToken(token))
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestUpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	user, _, err := svc.Signup(&SignupRequest{Email: "ivan@example.com", Password: "password123"})
	require.NoError(t, err)

	name := "Ivan"
	updated, err := svc.UpdateProfile(user.ID, &UpdateProfileRequest{DisplayName: &name})
	require.NoError(t, err)
	require.NotNil(t, updated.DisplayName)
	assert.Equal(t, "Ivan", *updated.DisplayName)

	// Blank display name is stored as null
	blank := "   "
	updated, err = svc.UpdateProfile(user.ID, &UpdateProfileRequest{DisplayName: &blank})
	require.NoError(t, err)
	assert.Nil(t, updated.DisplayName)
}
