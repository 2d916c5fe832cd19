package models

import "time"

// Client is a mobile-app user who books appointments.
type Client struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Car belongs to a client; a ticket always references one.
type Car struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	Plate     string    `json:"plate"`
	CreatedAt time.Time `json:"createdAt"`
}
