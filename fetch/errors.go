package fetch

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for fetch package.
var (
	// ErrNotFound is returned when the release server answers 404,
	// usually because of a wrong font name or version.
	ErrNotFound = errors.New("fetch: release archive not found (bad version or font name?)")

	// ErrUnsafePath is returned when an archive member would be written
	// outside the destination directory.
	ErrUnsafePath = errors.New("fetch: unsafe path in archive")
)

// StatusError is returned for unexpected HTTP status codes other than 404.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch: %s: unexpected status %d %s",
		e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}
