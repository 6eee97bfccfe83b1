package store

import (
	"context"
	"encoding/json"
	"errors"

	"Stowage/internal/helpers"
	"Stowage/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DocumentStoreImpl struct {
	db *gorm.DB
}

func NewDocumentStore(db *gorm.DB) DocumentStore {
	return &DocumentStoreImpl{db: db}
}

func (s *DocumentStoreImpl) Get(ctx context.Context, path string) (Record, error) {
	var doc models.Document
	err := s.db.WithContext(ctx).First(&doc, "path = ?", path).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return decodeRecord(doc.Data)
}

func (s *DocumentStoreImpl) Set(ctx context.Context, path string, record Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	doc := models.Document{
		Path:   path,
		Parent: helpers.ParentPath(path),
		Data:   data,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "path"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&doc).Error
}

// Update merges top-level fields into the stored record. Absent documents are
// an error; callers that want create-or-merge fall back to Set.
func (s *DocumentStoreImpl) Update(ctx context.Context, path string, fields Record) error {
	existing, err := s.Get(ctx, path)
	if err != nil {
		return err
	}
	for key, value := range fields {
		existing[key] = value
	}
	return s.Set(ctx, path, existing)
}

func (s *DocumentStoreImpl) Delete(ctx context.Context, path string) error {
	result := s.db.WithContext(ctx).Delete(&models.Document{}, "path = ?", path)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DocumentStoreImpl) ListChildren(ctx context.Context, path string) ([]models.Document, error) {
	var docs []models.Document
	err := s.db.WithContext(ctx).
		Where("parent = ?", path).
		Order("path").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// DecodeDocument unwraps a listed child document into its record.
func DecodeDocument(doc models.Document) (Record, error) {
	return decodeRecord(doc.Data)
}

func decodeRecord(data json.RawMessage) (Record, error) {
	if len(data) == 0 {
		return Record{}, nil
	}
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return record, nil
}
