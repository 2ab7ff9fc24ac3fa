package hathora

import (
	"github.com/hathora/hathora-go/pkg/api"
	"github.com/hathora/hathora-go/pkg/registry"
)

// The SDK's error taxonomy, re-exported so callers can errors.As against a
// single package. Three kinds are distinguishable: the model key did not
// resolve, the parameters did not validate, or the backend rejected/failed
// the call.
type (
	// ModelNotFoundError: the capability+key pair matches no registered model.
	ModelNotFoundError = registry.ModelNotFoundError
	// ValidationError: unknown parameter supplied or required parameter missing.
	ValidationError = registry.ValidationError
	// APIError: the backend answered non-2xx.
	APIError = api.APIError
	// AuthenticationError: the backend answered 401.
	AuthenticationError = api.AuthenticationError
	// FileError: an audio source could not be read or recognized.
	FileError = api.FileError
)
