package api

// ErrorResponse is the error body returned on any failed request. The
// console only surfaces errors whose message field is present.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message"`
}
