package models

import "fmt"

// RemoteServiceError reports a failed call to one of the external HTTP
// collaborators (chat, prediction, geocoding, media upload): non-2xx
// status, timeout, or a response that does not match the pinned schema.
type RemoteServiceError struct {
	Service string
	Status  int
	Detail  string
}

func (e *RemoteServiceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s service error (status %d): %s", e.Service, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s service error: %s", e.Service, e.Detail)
}
