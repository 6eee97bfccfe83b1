package services

import (
	"context"

	"Stowage/internal/models"
	"Stowage/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Get(ctx context.Context, path string) (store.Record, error) {
	args := m.Called(ctx, path)
	record, ok := args.Get(0).(store.Record)
	if !ok {
		return nil, args.Error(1)
	}
	return record, args.Error(1)
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
	docs, ok := args.Get(0).([]models.Document)
	if !ok {
		return nil, args.Error(1)
	}
	return docs, args.Error(1)
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
	keys, ok := args.Get(0).([]string)
	if !ok {
		return nil, args.Error(1)
	}
	return keys, args.Error(1)
}

func testLogService() LogService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return LogService{Log: log}
}
