package api

// ErrorResponse is the error body for every failing endpoint.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message"`
}
