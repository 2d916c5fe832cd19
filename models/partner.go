package models

import "time"

// Partner is a workshop bookable by clients.
type Partner struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Specialities []string  `json:"specialities"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PartnerSearchFilter carries the optional filters of the partner search
// endpoint. Zero values mean "no filter".
type PartnerSearchFilter struct {
	Speciality string `form:"speciality"`
	City       string `form:"city"`
	Query      string `form:"q"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}
