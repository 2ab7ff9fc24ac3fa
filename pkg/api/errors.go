package api

import "fmt"

// APIError reports a non-2xx response from a backend. It is distinct from
// the registry's validation errors so callers can tell "I called it wrong"
// from "the backend rejected the call".
type APIError struct {
	StatusCode int
	Message    string
	URL        string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status %d from %s: %s", e.StatusCode, e.URL, e.Message)
	}
	return fmt.Sprintf("api error: status %d from %s", e.StatusCode, e.URL)
}

// AuthenticationError reports a 401 from a backend.
type AuthenticationError struct {
	URL string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed for %s: invalid or missing API key", e.URL)
}

// FileError reports a problem reading or recognizing an audio source.
type FileError struct {
	Path    string
	Message string
}

func (e *FileError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("file error: %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("file error: %s", e.Message)
}
