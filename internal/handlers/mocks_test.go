package handlers

import (
	"context"

	"Stowage/internal/middleware"
	"Stowage/internal/models"
	"Stowage/internal/services"
	"Stowage/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

type MockBoxService struct {
	mock.Mock
}

func (m *MockBoxService) ListBoxes(ctx context.Context, userID string) ([]models.Box, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Box), args.Error(1)
}

func (m *MockBoxService) GetBox(ctx context.Context, userID, boxID string) (*models.Box, error) {
	args := m.Called(ctx, userID, boxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Box), args.Error(1)
}

func (m *MockBoxService) DeleteBox(ctx context.Context, userID, boxID string) error {
	args := m.Called(ctx, userID, boxID)
	return args.Error(0)
}

type MockSuggestService struct {
	mock.Mock
}

func (m *MockSuggestService) SuggestName(ctx context.Context, items []string) (string, error) {
	args := m.Called(ctx, items)
	return args.String(0), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password, firstName, lastName string) (string, string, error) {
	args := m.Called(ctx, email, password, firstName, lastName)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string) (string, string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID, newPassword string) error {
	args := m.Called(ctx, userID, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(tokenString string) (string, error) {
	args := m.Called(tokenString)
	return args.String(0), args.Error(1)
}

type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Get(ctx context.Context, path string) (store.Record, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(store.Record), args.Error(1)
}

func (m *MockDocumentStore) Set(ctx context.Context, path string, record store.Record) error {
	args := m.Called(ctx, path, record)
	return args.Error(0)
}

func (m *MockDocumentStore) Update(ctx context.Context, path string, fields store.Record) error {
	args := m.Called(ctx, path, fields)
	return args.Error(0)
}

func (m *MockDocumentStore) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockDocumentStore) ListChildren(ctx context.Context, path string) ([]models.Document, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Put(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, path, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockBlobStore) List(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func testLogService() services.LogService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return services.LogService{Log: log}
}

// asUser stands in for RequireAuth in tests, pinning the session user.
func asUser(userID string, handler fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.UserIDKey, userID)
		return handler(c)
	}
}
