package models

import (
	"encoding/json"
	"time"
)

// Document is one path-keyed record row backing the document store.
// Parent is the path minus its last segment, kept denormalized so child
// collections can be listed with a plain indexed lookup.
type Document struct {
	Path      string          `gorm:"primaryKey;type:text" json:"path"`
	Parent    string          `gorm:"index;type:text" json:"parent"`
	Data      json.RawMessage `gorm:"type:jsonb" json:"data,omitempty"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// ID returns the last path segment, the document's name within its collection.
func (d *Document) ID() string {
	for i := len(d.Path) - 1; i >= 0; i-- {
		if d.Path[i] == '/' {
			return d.Path[i+1:]
		}
	}
	return d.Path
}
