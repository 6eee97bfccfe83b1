package mapper

import (
	"errors"
	"time"

	"Stowage/internal/dto"
	"Stowage/internal/models"
	"Stowage/internal/store"
)

var ErrMalformedRecord = errors.New("box record is missing required fields")

// RecordToBox decodes one persisted box record. Name and items are required;
// everything else defaults to empty, matching what older records may lack.
func RecordToBox(id string, record store.Record) (*models.Box, error) {
	name, nameOK := record["name"].(string)
	items, itemsOK := toStringSlice(record["items"])
	if !nameOK || !itemsOK {
		return nil, ErrMalformedRecord
	}
	photoURLs, _ := toStringSlice(record["photoURLs"])
	location, _ := record["location"].(string)
	locationNotes, _ := record["locationNotes"].(string)

	box := &models.Box{
		ID:            id,
		Name:          name,
		Items:         items,
		PhotoURLs:     photoURLs,
		Location:      location,
		LocationNotes: locationNotes,
	}
	if raw, ok := record["timestamp"].(string); ok {
		if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			box.Timestamp = ts
		}
	}
	return box, nil
}

// BoxToRecord builds the persisted shape of a box. The id is the document
// name, never a field.
func BoxToRecord(box *models.Box) store.Record {
	return store.Record{
		"name":          box.Name,
		"items":         box.Items,
		"photoURLs":     box.PhotoURLs,
		"location":      box.Location,
		"locationNotes": box.LocationNotes,
		"timestamp":     box.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}

func ToBoxGetDTO(box *models.Box) *dto.BoxGetDTO {
	return &dto.BoxGetDTO{
		ID:            box.ID,
		Name:          box.Name,
		Items:         box.Items,
		PhotoURLs:     box.PhotoURLs,
		Location:      box.Location,
		LocationNotes: box.LocationNotes,
		Timestamp:     box.Timestamp,
	}
}

func ToBoxGetDTOs(boxes []models.Box) []dto.BoxGetDTO {
	boxDTOs := make([]dto.BoxGetDTO, 0, len(boxes))
	for i := range boxes {
		boxDTOs = append(boxDTOs, *ToBoxGetDTO(&boxes[i]))
	}
	return boxDTOs
}

// toStringSlice accepts both decoded json arrays and native string slices.
func toStringSlice(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	case nil:
		return nil, false
	default:
		return nil, false
	}
}
