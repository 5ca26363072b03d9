package api

import "time"

// UserResponse is the representation of a user returned by the API.
// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	FirstName string    `json:"first_name" example:"Alice"`
	LastName  string    `json:"last_name" example:"Smith"`
	Email     string    `json:"email" example:"alice@example.com"`
	Username  string    `json:"username" example:"alice"`
	IsAdmin   bool      `json:"is_admin" example:"false"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}
