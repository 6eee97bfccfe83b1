package models

import (
	"time"
)

// Box is one storage container. ID is assigned once, client-side, and never
// changes afterwards. Persisted Items never contain blank entries; the blank
// trailing slot users type into only exists inside the editor draft.
type Box struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Items         []string  `json:"items"`
	PhotoURLs     []string  `json:"photoURLs"`
	Location      string    `json:"location"`
	LocationNotes string    `json:"locationNotes"`
	Timestamp     time.Time `json:"timestamp"`
}
