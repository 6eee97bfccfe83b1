package services

import (
	"context"
	"testing"

	"Stowage/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLocationService_FetchOrInitializeReturnsExisting(t *testing.T) {
	mockDocs := new(MockDocumentStore)
	service := NewLocationService(mockDocs, testLogService())

	mockDocs.On("Get", mock.Anything, "users/user-1").Return(store.Record{
		"availableLocations": []interface{}{"Attic", "Shed"},
	}, nil)

	locations, err := service.FetchOrInitialize(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"Attic", "Shed"}, locations)
	mockDocs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestLocationService_FetchOrInitializePersistsDefaults(t *testing.T) {
	mockDocs := new(MockDocumentStore)
	service := NewLocationService(mockDocs, testLogService())

	mockDocs.On("Get", mock.Anything, "users/user-1").Return(store.Record{
		"firstName": "Alice",
	}, nil)
	mockDocs.On("Update", mock.Anything, "users/user-1", store.Record{
		"availableLocations": []string{"Basement", "Garage", "Attic"},
	}).Return(nil)

	locations, err := service.FetchOrInitialize(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"Basement", "Garage", "Attic"}, locations)
	mockDocs.AssertExpectations(t)
}

func TestLocationService_FetchOrInitializeMissingUser(t *testing.T) {
	mockDocs := new(MockDocumentStore)
	service := NewLocationService(mockDocs, testLogService())

	mockDocs.On("Get", mock.Anything, "users/user-1").Return(nil, store.ErrNotFound)

	_, err := service.FetchOrInitialize(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLocationService_AddLocationSortsAndPersists(t *testing.T) {
	mockDocs := new(MockDocumentStore)
	service := NewLocationService(mockDocs, testLogService())

	mockDocs.On("Get", mock.Anything, "users/user-1").Return(store.Record{
		"availableLocations": []interface{}{"Basement", "Garage", "Attic"},
	}, nil)
	mockDocs.On("Update", mock.Anything, "users/user-1", store.Record{
		"availableLocations": []string{"Attic", "Basement", "Garage", "Shed"},
	}).Return(nil)

	locations, err := service.AddLocation(context.Background(), "user-1", "  Shed  ")

	assert.NoError(t, err)
	assert.Equal(t, []string{"Attic", "Basement", "Garage", "Shed"}, locations)
	mockDocs.AssertExpectations(t)
}

func TestLocationService_AddLocationIsCaseSensitive(t *testing.T) {
	mockDocs := new(MockDocumentStore)
	service := NewLocationService(mockDocs, testLogService())

	mockDocs.On("Get", mock.Anything, "users/user-1").Return(store.Record{
		"availableLocations": []interface{}{"Basement", "Garage", "Attic"},
	}, nil)
	mockDocs.On("Update", mock.Anything, "users/user-1", store.Record{
		"availableLocations": []string{"Attic", "Basement", "Garage", "garage"},
	}).Return(nil)

	// "garage" differs from "Garage" by case only, and still goes in.
	locations, err := service.AddLocation(context.Background(), "user-1", "garage")

	assert.NoError(t, err)
	assert.Equal(t, []string{"Attic", "Basement", "Garage", "garage"}, locations)
	mockDocs.AssertExpectations(t)
}

func TestLocationService_AddLocationDuplicateIsNoop(t *testing.T) {
	mockDocs := new(MockDocumentStore)
	service := NewLocationService(mockDocs, testLogService())

	mockDocs.On("Get", mock.Anything, "users/user-1").Return(store.Record{
		"availableLocations": []interface{}{"Basement", "Garage", "Attic"},
	}, nil)

	locations, err := service.AddLocation(context.Background(), "user-1", "Garage")

	assert.NoError(t, err)
	assert.Equal(t, []string{"Basement", "Garage", "Attic"}, locations)
	mockDocs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestLocationService_AddLocationBlankIsNoop(t *testing.T) {
	mockDocs := new(MockDocumentStore)
	service := NewLocationService(mockDocs, testLogService())

	mockDocs.On("Get", mock.Anything, "users/user-1").Return(store.Record{
		"availableLocations": []interface{}{"Basement"},
	}, nil)

	locations, err := service.AddLocation(context.Background(), "user-1", "   ")

	assert.NoError(t, err)
	assert.Equal(t, []string{"Basement"}, locations)
	mockDocs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
