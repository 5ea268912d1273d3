package dto

// ErrorResponse represents a standardized error response for the API.
// Stack carries the underlying error detail and is only populated in
// development mode.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}
