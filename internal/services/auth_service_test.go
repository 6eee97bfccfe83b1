package services

import (
	"context"
	"testing"

	"Stowage/internal/config"
	"Stowage/internal/models"
	"Stowage/internal/store"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T, mockDocs store.DocumentStore) AuthService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed opening in-memory sqlite database: %v", err)
	}
	if err := db.AutoMigrate(&models.Credential{}); err != nil {
		t.Fatalf("failed migrating credentials: %v", err)
	}
	cfg := &config.Configuration{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.ExpirationHours = 1
	return NewAuthService(db, mockDocs, cfg, testLogService())
}

func TestAuthService_RegisterAndSignIn(t *testing.T) {
	mockDocs := new(MockDocumentStore)
	mockDocs.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	service := setupAuthService(t, mockDocs)

	userID, token, err := service.Register(context.Background(), "alec@example.com", "secret1", "Alec", "Nash")
	assert.NoError(t, err)
	assert.NotEmpty(t, userID)
	assert.NotEmpty(t, token)

	signedInID, signedInToken, err := service.SignIn(context.Background(), "alec@example.com", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, userID, signedInID)
	assert.NotEmpty(t, signedInToken)

	validatedID, err := service.ValidateToken(signedInToken)
	assert.NoError(t, err)
	assert.Equal(t, userID, validatedID)
}

func TestAuthService_RegisterWritesUserDocumentWithDefaults(t *testing.T) {
	mockDocs := new(MockDocumentStore)
	var savedPath string
	var savedRecord store.Record
	mockDocs.On("Set", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		savedPath = args.String(1)
		savedRecord = args.Get(2).(store.Record)
	}).Return(nil)
	service := setupAuthService(t, mockDocs)

	userID, _, err := service.Register(context.Background(), "alec@example.com", "secret1", "Alec", "Nash")

	assert.NoError(t, err)
	assert.Equal(t, "users/"+userID, savedPath)
	assert.Equal(t, "Alec", savedRecord["firstName"])
	assert.Equal(t, "alec@example.com", savedRecord["email"])
	assert.Equal(t, []string{"Basement", "Garage", "Attic"}, savedRecord["availableLocations"])
}

func TestAuthService_RegisterValidation(t *testing.T) {
	service := setupAuthService(t, new(MockDocumentStore))

	_, _, err := service.Register(context.Background(), "", "secret1", "Alec", "Nash")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, _, err = service.Register(context.Background(), "alec@example.com", "short", "Alec", "Nash")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	mockDocs := new(MockDocumentStore)
	mockDocs.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	service := setupAuthService(t, mockDocs)

	_, _, err := service.Register(context.Background(), "alec@example.com", "secret1", "Alec", "Nash")
	assert.NoError(t, err)

	_, _, err = service.Register(context.Background(), "alec@example.com", "secret2", "Other", "Person")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_SignInWrongPassword(t *testing.T) {
	mockDocs := new(MockDocumentStore)
	mockDocs.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	service := setupAuthService(t, mockDocs)

	_, _, err := service.Register(context.Background(), "alec@example.com", "secret1", "Alec", "Nash")
	assert.NoError(t, err)

	_, _, err = service.SignIn(context.Background(), "alec@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = service.SignIn(context.Background(), "unknown@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ChangePassword(t *testing.T) {
	mockDocs := new(MockDocumentStore)
	mockDocs.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	service := setupAuthService(t, mockDocs)

	userID, _, err := service.Register(context.Background(), "alec@example.com", "secret1", "Alec", "Nash")
	assert.NoError(t, err)

	err = service.ChangePassword(context.Background(), userID, "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	err = service.ChangePassword(context.Background(), userID, "newsecret")
	assert.NoError(t, err)

	_, _, err = service.SignIn(context.Background(), "alec@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = service.SignIn(context.Background(), "alec@example.com", "newsecret")
	assert.NoError(t, err)
}

func TestAuthService_ValidateTokenRejectsGarbage(t *testing.T) {
	service := setupAuthService(t, new(MockDocumentStore))

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}
