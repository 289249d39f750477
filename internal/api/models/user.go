package models

import "time"

// User represents a user in the database.
type User struct {
	ID             int64     `db:"id"`
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	Email          string    `db:"email"`
	PasswordHash   string    `db:"password_hash"`
	PhoneNumber    string    `db:"phone_number"`
	ProfilePicture string    `db:"profile_picture"`
	CreatedAt      time.Time `db:"created_at"`
}

// RegisterRequest carries the registration fields. They are read from the query
// string, a form body or a JSON body; rules are enforced by the validator package.
type RegisterRequest struct {
	FirstName   string `form:"firstName" json:"firstName"`
	LastName    string `form:"lastName" json:"lastName"`
	Email       string `form:"email" json:"email"`
	Password    string `form:"password" json:"password"`
	PhoneNumber string `form:"phoneNumber" json:"phoneNumber"`
}

// LoginRequest defines the structure for a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse defines the structure for a successful login response.
type LoginResponse struct {
	Token string `json:"token"`
}

// DetailsResponse is returned by the profile endpoint.
type DetailsResponse struct {
	Status string `json:"status"`
}
