package dto

import "time"

type BoxGetDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Items         []string  `json:"items"`
	PhotoURLs     []string  `json:"photoURLs"`
	Location      string    `json:"location"`
	LocationNotes string    `json:"locationNotes"`
	Timestamp     time.Time `json:"timestamp"`
}

type ProfileGetDTO struct {
	UserID    string `json:"userID"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
