package store

import (
	"context"
	"errors"

	"Stowage/internal/models"
)

// Record is the schemaless payload of one document: string keys mapped to
// primitive or array values, no enforcement beyond what json allows.
type Record = map[string]interface{}

var ErrNotFound = errors.New("record not found")

// DocumentStore is keyed, hierarchical record storage. Paths are
// slash-joined collection/id segments; writes are last-writer-wins whole
// record overwrites except Update, which merges top-level fields.
type DocumentStore interface {
	Get(ctx context.Context, path string) (Record, error)
	Set(ctx context.Context, path string, record Record) error
	Update(ctx context.Context, path string, fields Record) error
	Delete(ctx context.Context, path string) error
	ListChildren(ctx context.Context, path string) ([]models.Document, error)
}

// BlobStore holds photo payloads. Put returns the public URL of the stored
// object.
type BlobStore interface {
	Put(ctx context.Context, path string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, path string) error
	List(ctx context.Context, prefix string) ([]string, error)
}
