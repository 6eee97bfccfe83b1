package services

import (
	"strings"

	"Stowage/internal/models"
)

// AllLocations is the sentinel filter value meaning no location constraint.
const AllLocations = "All Locations"

// FilterBoxes derives the visible subset of boxes for a search string and a
// location filter. Matching is case-insensitive substring over the box name
// and every item; input order is preserved and the input is never mutated.
func FilterBoxes(boxes []models.Box, search string, location string) []models.Box {
	search = strings.TrimSpace(search)
	filtered := make([]models.Box, 0, len(boxes))
	for _, box := range boxes {
		if !matchesSearch(&box, search) {
			continue
		}
		if location != "" && location != AllLocations && box.Location != location {
			continue
		}
		filtered = append(filtered, box)
	}
	return filtered
}

func matchesSearch(box *models.Box, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(box.Name), needle) {
		return true
	}
	for _, item := range box.Items {
		if strings.Contains(strings.ToLower(item), needle) {
			return true
		}
	}
	return false
}
