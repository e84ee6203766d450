package asana

import "fmt"

// APIError is a non-2xx response from the Asana API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s (status %d)", e.Body, e.Status)
}

// IsUnauthorized reports whether the error represents a 401 response.
func (e *APIError) IsUnauthorized() bool {
	return e.Status == 401
}

// UnableToRefreshError means credentials could not be renewed: either a
// refresh was attempted too recently, or the credential kind cannot be
// refreshed at all (personal access tokens).
type UnableToRefreshError struct {
	Reason string
}

func (e *UnableToRefreshError) Error() string {
	return "unable to refresh access token: " + e.Reason
}
