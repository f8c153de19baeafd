package models

import "fmt"

// Response messages returned to API clients
const (
	MsgRestaurantNotFound = "Restaurant not found"
	MsgValidationErrors   = "validation errors"
	MsgInvalidBody        = "invalid request body"
	MsgInvalidID          = "Invalid restaurant ID format"
)

// ValidationError reports a field that failed validation before persistence
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// ErrorResponse is the body for a single error, e.g. {"error": "Restaurant not found"}
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse is the body for validation failures, e.g. {"errors": ["validation errors"]}
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// NewErrorResponse creates a single error body with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewErrorsResponse creates a body listing one or more error messages
func NewErrorsResponse(messages ...string) ErrorsResponse {
	return ErrorsResponse{Errors: messages}
}
