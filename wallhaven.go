// Package wallhaven is a client library for the Wallhaven API
// (https://wallhaven.cc/help/api). It exposes the wallpaper, tag,
// settings, collections and search endpoints as typed method calls.
//
// Sample usage:
//
//	client := wallhaven.New("") // or wallhaven.New(apiKey)
//	wallpaper, err := client.GetWallpaperInfo("r25peq")
package wallhaven

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shivlim/wallhaven-go/constants"
	"github.com/shivlim/wallhaven-go/errors"
	"github.com/shivlim/wallhaven-go/httpfuncs"
	"github.com/shivlim/wallhaven-go/logger"
)

// Wallhaven is a client for the Wallhaven API. An API key is optional
// but required for NSFW search results and for the settings and own
// collections endpoints.
//
// A Wallhaven instance is not thread-safe and should not be shared
// across goroutines without external synchronisation.
type Wallhaven struct {
	apiKey string
	apiUrl string

	// Minimum delay enforced after every request. Wallhaven
	// allows 45 requests per minute, so hammering the API
	// without a delay will quickly result in 429 responses.
	delay time.Duration

	timeout    int
	reqHandler httpfuncs.RequestHandler
}

// New returns a Wallhaven client. Pass an empty
// string to use the API anonymously.
func New(apiKey string) *Wallhaven {
	return &Wallhaven{
		apiKey:     apiKey,
		apiUrl:     constants.WALLHAVEN_API_URL,
		delay:      time.Duration(constants.MIN_REQUEST_DELAY*1000) * time.Millisecond,
		timeout:    constants.DEFAULT_REQ_TIMEOUT,
		reqHandler: httpfuncs.CallRequest,
	}
}

// HasApiKey reports whether the client was constructed with an API key.
func (w *Wallhaven) HasApiKey() bool {
	return w.apiKey != ""
}

// SetRequestDelay sets the minimum delay that is enforced after every
// request. Negative durations are treated as zero.
func (w *Wallhaven) SetRequestDelay(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	w.delay = delay
}

// Sleeps for at least the configured delay with a
// bit of jitter so requests do not fire in lockstep.
func (w *Wallhaven) waitAfterRequest() {
	if w.delay <= 0 {
		return
	}
	minDelay := w.delay.Seconds()
	time.Sleep(httpfuncs.GetRandomTime(minDelay, minDelay+constants.MAX_EXTRA_DELAY))
}

// Issues one GET request to the given API path, classifies the
// response status and decodes the JSON body into format.
func (w *Wallhaven) get(path string, params map[string]string, format any) error {
	headers := make(map[string]string)
	if w.apiKey != "" {
		headers[constants.API_KEY_HEADER] = w.apiKey
	}

	reqUrl := w.apiUrl + path
	logger.MainLogger.Debugf(
		"GET %s?%s",
		reqUrl,
		httpfuncs.ParamsToString(params),
	)

	res, err := w.reqHandler(
		&httpfuncs.RequestArgs{
			Url:     reqUrl,
			Method:  "GET",
			Timeout: w.timeout,
			Headers: headers,
			Params:  params,
			Http2:   true,
		},
	)
	defer w.waitAfterRequest()
	if err != nil {
		return err
	}

	if err := checkApiRes(res); err != nil {
		res.Body.Close()
		return err
	}
	return httpfuncs.LoadJsonFromResponse(res, format)
}

// Maps the response status code to the
// error taxonomy used by this library.
func checkApiRes(res *http.Response) error {
	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return nil
	}

	reqUrl := res.Request.URL.String()
	switch res.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf(
			"error %d: unauthorised request to %s: %w",
			whverrors.RESPONSE_ERROR,
			reqUrl,
			whverrors.ErrApiKeyRequired,
		)
	case http.StatusNotFound:
		return fmt.Errorf(
			"error %d: %s was not found: %w",
			whverrors.RESPONSE_ERROR,
			reqUrl,
			whverrors.ErrNotFound,
		)
	case http.StatusTooManyRequests:
		return fmt.Errorf(
			"error %d: too many requests to %s, limit is %d per minute: %w",
			whverrors.RESPONSE_ERROR,
			reqUrl,
			constants.API_RATE_LIMIT,
			whverrors.ErrRateLimited,
		)
	default:
		return &whverrors.ApiError{
			StatusCode: res.StatusCode,
			Url:        reqUrl,
		}
	}
}
