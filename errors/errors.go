package whverrors

import (
	"errors"
	"fmt"
)

// Error codes that are embedded in error
// messages for easier identification in the logs.
const (
	DEV_ERROR = iota + 1000
	OS_ERROR
	INPUT_ERROR
	RESPONSE_ERROR
	JSON_ERROR
	UNEXPECTED_ERROR
)

var (
	// ErrInvalidOption is wrapped by the parameter builder
	// when a setter is given an unknown enum value.
	ErrInvalidOption = errors.New("invalid option")

	// ErrApiKeyRequired is returned before any network call when an
	// operation that needs a credential is invoked without one. It is
	// also returned when the API rejects the supplied key with a 401.
	ErrApiKeyRequired = errors.New("api key is missing or invalid")

	// ErrNotFound is returned when the API reports that the requested
	// resource, such as a wallpaper or a tag, does not exist.
	ErrNotFound = errors.New("requested resource does not exist")

	// ErrRateLimited is returned when the API reports that the
	// request quota of 45 requests per minute has been exhausted.
	ErrRateLimited = errors.New("api rate limit exceeded")
)

// ApiError is returned for any non-2xx response
// that is not otherwise classified.
type ApiError struct {
	StatusCode int
	Url        string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf(
		"error %d: request to %s failed with status code %d",
		RESPONSE_ERROR,
		e.Url,
		e.StatusCode,
	)
}
