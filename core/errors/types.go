// ABOUTME: Custom error types for the core business logic
// ABOUTME: Structured errors the API layer maps onto response status codes

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a rejected request or input field. The API
// layer maps it to a 400 response.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents a failed call to an upstream collaborator:
// a news source page, the translation endpoint or the speech endpoint.
// URL carries the fetched resource when the collaborator is a news source.
type ExternalAPIError struct {
	API        string
	StatusCode int
	URL        string
	Message    string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("external API error from %s: %d fetching %s", e.API, e.StatusCode, e.URL)
	}
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
