package services

import (
	"testing"

	"Stowage/internal/models"

	"github.com/stretchr/testify/assert"
)

func testBoxes() []models.Box {
	return []models.Box{
		{ID: "1", Name: "Winter Coats", Items: []string{"scarf"}, Location: "Attic"},
		{ID: "2", Name: "Tools", Items: []string{"hammer"}, Location: "Garage"},
	}
}

func TestFilterBoxes_SearchMatchesItems(t *testing.T) {
	filtered := FilterBoxes(testBoxes(), "scar", AllLocations)

	assert.Len(t, filtered, 1)
	assert.Equal(t, "Winter Coats", filtered[0].Name)
}

func TestFilterBoxes_LocationOnly(t *testing.T) {
	filtered := FilterBoxes(testBoxes(), "", "Garage")

	assert.Len(t, filtered, 1)
	assert.Equal(t, "Tools", filtered[0].Name)
}

func TestFilterBoxes_SearchIsCaseInsensitive(t *testing.T) {
	filtered := FilterBoxes(testBoxes(), "WINTER", AllLocations)
	assert.Len(t, filtered, 1)

	filtered = FilterBoxes(testBoxes(), "HAMMER", AllLocations)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Tools", filtered[0].Name)
}

func TestFilterBoxes_SearchAndLocationCombine(t *testing.T) {
	filtered := FilterBoxes(testBoxes(), "scar", "Garage")
	assert.Empty(t, filtered)
}

func TestFilterBoxes_EmptyInputsReturnEverythingInOrder(t *testing.T) {
	boxes := testBoxes()

	filtered := FilterBoxes(boxes, "", AllLocations)
	assert.Equal(t, boxes, filtered)

	// Empty location filter behaves like the sentinel.
	filtered = FilterBoxes(boxes, "", "")
	assert.Equal(t, boxes, filtered)
}

func TestFilterBoxes_IsIdempotent(t *testing.T) {
	boxes := testBoxes()
	first := FilterBoxes(boxes, "o", AllLocations)
	second := FilterBoxes(boxes, "o", AllLocations)

	assert.Equal(t, first, second)
	assert.Equal(t, testBoxes(), boxes, "input must not be mutated")
}

func TestFilterBoxes_LocationIsExactMatch(t *testing.T) {
	filtered := FilterBoxes(testBoxes(), "", "garage")
	assert.Empty(t, filtered, "location filter is case-sensitive equality")
}
