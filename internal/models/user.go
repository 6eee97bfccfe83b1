package models

// User is rebuilt from the document store on every session start; it is never
// cached durably on this side. Boxes live in a child collection of the user
// document and are merged in at fetch time.
type User struct {
	UserID             string   `json:"userID"`
	Email              string   `json:"email"`
	FirstName          string   `json:"firstName"`
	LastName           string   `json:"lastName"`
	Boxes              []Box    `json:"boxes,omitempty"`
	AvailableLocations []string `json:"availableLocations,omitempty"`
}
