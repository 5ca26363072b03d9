package api

// CreateAccountRequest is the JSON payload for PUT /api/user.
// Every field travels as a string, including is_admin; the server parses
// it with strconv.ParseBool, so "true"/"false"/"1"/"0" are all accepted.
// swagger:model api.CreateAccountRequest
type CreateAccountRequest struct {
	FirstName string `json:"first_name" validate:"required" example:"Alice"`
	LastName  string `json:"last_name" validate:"required" example:"Smith"`
	Email     string `json:"email" validate:"required,email" example:"alice@example.com"`
	Username  string `json:"username" validate:"required" example:"alice"`
	Password  string `json:"password" validate:"required" example:"Secret123!"`
	IsAdmin   string `json:"is_admin" validate:"required" example:"false"`
}
