package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Stowage/internal/config"
	"Stowage/internal/helpers"
	"Stowage/internal/models"
	"Stowage/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

type AuthService interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (string, string, error)
	SignIn(ctx context.Context, email, password string) (string, string, error)
	ChangePassword(ctx context.Context, userID, newPassword string) error
	ValidateToken(tokenString string) (string, error)
}

type authClaims struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type authServiceImpl struct {
	db         *gorm.DB
	docs       store.DocumentStore
	logService LogService
	secret     []byte
	expiration time.Duration
}

func NewAuthService(db *gorm.DB, docs store.DocumentStore, configuration *config.Configuration, logService LogService) AuthService {
	return &authServiceImpl{
		db:         db,
		docs:       docs,
		logService: logService,
		secret:     []byte(configuration.Auth.JWTSecret),
		expiration: time.Duration(configuration.Auth.ExpirationHours) * time.Hour,
	}
}

// Register creates the credential row and the user document in one go; new
// accounts start with the default location set so the registry never has to
// self-heal for them.
func (s *authServiceImpl) Register(ctx context.Context, email, password, firstName, lastName string) (string, string, error) {
	if email == "" || password == "" || firstName == "" || lastName == "" {
		return "", "", ErrMissingFields
	}
	if len(password) < minPasswordLength {
		return "", "", ErrPasswordTooShort
	}

	var existing models.Credential
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return "", "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	credential := models.Credential{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.db.WithContext(ctx).Create(&credential).Error; err != nil {
		return "", "", err
	}

	err = s.docs.Set(ctx, helpers.UserDocPath(credential.UserID), store.Record{
		"firstName":          firstName,
		"lastName":           lastName,
		"email":              email,
		"availableLocations": DefaultLocations(),
	})
	if err != nil {
		return "", "", err
	}

	token, err := s.generateToken(&credential)
	if err != nil {
		return "", "", err
	}
	return credential.UserID, token, nil
}

func (s *authServiceImpl) SignIn(ctx context.Context, email, password string) (string, string, error) {
	var credential models.Credential
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&credential).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)) != nil {
		return "", "", ErrInvalidCredentials
	}
	token, err := s.generateToken(&credential)
	if err != nil {
		return "", "", err
	}
	return credential.UserID, token, nil
}

func (s *authServiceImpl) ChangePassword(ctx context.Context, userID, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}
	var credential models.Credential
	err := s.db.WithContext(ctx).First(&credential, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	credential.PasswordHash = string(hash)
	return s.db.WithContext(ctx).Save(&credential).Error
}

// ValidateToken returns the user id carried by a session token.
func (s *authServiceImpl) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &authClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*authClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	return claims.UserID, nil
}

func (s *authServiceImpl) generateToken(credential *models.Credential) (string, error) {
	now := time.Now()
	claims := authClaims{
		UserID: credential.UserID,
		Email:  credential.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   credential.UserID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
