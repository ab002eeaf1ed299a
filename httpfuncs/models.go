package httpfuncs

import (
	"context"
	"net/http"
)

type RequestHandler func(reqArgs *RequestArgs) (*http.Response, error)

type RequestArgs struct {
	// Main Request Options
	Method  string
	Url     string
	Timeout int

	// Additional Request Options
	Headers   map[string]string
	Params    map[string]string
	UserAgent string

	// HTTP/2 and HTTP/3 Options
	Http2 bool
	Http3 bool

	// Check status will check the status code of the response for 200 OK.
	// If the status code is not 200 OK, an error is returned and the
	// response body is closed. Otherwise, the response is returned
	// regardless of the status code and the caller is expected to
	// classify it and close the body.
	CheckStatus bool

	// Context is used to cancel the request if needed.
	// E.g. if the user presses Ctrl+C, we can use context.WithCancel(context.Background())
	Context context.Context

	// RequestHandler is the main function that will be called to make the request.
	RequestHandler RequestHandler
}
