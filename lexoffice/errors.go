package lexoffice

import (
	"errors"
	"fmt"
)

var ErrContactNotFound = errors.New("contact not found")
var ErrRateLimited = errors.New("rate limit exceeded")

// StatusError is returned for an unexpected lexoffice response status.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %v: %v", e.Status, e.Body)
}
