package mapper

import (
	"testing"
	"time"

	"Stowage/internal/models"
	"Stowage/internal/store"

	"github.com/stretchr/testify/assert"
)

func TestRecordToBox(t *testing.T) {
	record := store.Record{
		"name":          "Winter Coats",
		"items":         []interface{}{"scarf", "gloves"},
		"photoURLs":     []interface{}{"http://x/photo_0.jpg"},
		"location":      "Attic",
		"locationNotes": "under the fan",
		"timestamp":     "2025-03-14T10:30:00Z",
	}

	box, err := RecordToBox("box-1", record)

	assert.NoError(t, err)
	assert.Equal(t, "box-1", box.ID)
	assert.Equal(t, "Winter Coats", box.Name)
	assert.Equal(t, []string{"scarf", "gloves"}, box.Items)
	assert.Equal(t, []string{"http://x/photo_0.jpg"}, box.PhotoURLs)
	assert.Equal(t, "Attic", box.Location)
	assert.Equal(t, "under the fan", box.LocationNotes)
	assert.Equal(t, 2025, box.Timestamp.Year())
}

func TestRecordToBox_MissingRequiredFields(t *testing.T) {
	_, err := RecordToBox("box-1", store.Record{"items": []interface{}{}})
	assert.ErrorIs(t, err, ErrMalformedRecord)

	_, err = RecordToBox("box-1", store.Record{"name": "No items"})
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestRecordToBox_OptionalFieldsDefaultEmpty(t *testing.T) {
	box, err := RecordToBox("box-1", store.Record{
		"name":  "Sparse",
		"items": []interface{}{},
	})

	assert.NoError(t, err)
	assert.Empty(t, box.PhotoURLs)
	assert.Empty(t, box.Location)
	assert.True(t, box.Timestamp.IsZero())
}

func TestBoxToRecord(t *testing.T) {
	ts := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	box := &models.Box{
		ID:            "box-1",
		Name:          "Tools",
		Items:         []string{"hammer"},
		PhotoURLs:     []string{"http://x/photo_0.jpg"},
		Location:      "Garage",
		LocationNotes: "workbench",
		Timestamp:     ts,
	}

	record := BoxToRecord(box)

	assert.Equal(t, "Tools", record["name"])
	assert.Equal(t, []string{"hammer"}, record["items"])
	assert.Equal(t, "Garage", record["location"])
	assert.Equal(t, ts.Format(time.RFC3339Nano), record["timestamp"])
	_, hasID := record["id"]
	assert.False(t, hasID, "the id is the document name, not a field")
}
