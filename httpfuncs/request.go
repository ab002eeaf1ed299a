package httpfuncs

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shivlim/wallhaven-go/errors"
	"github.com/quic-go/quic-go/http3"
)

// Shared transports so that connections are reused across
// requests instead of being re-established for every call.
var (
	http2Transport = &http.Transport{}
	http3Transport = &http3.RoundTripper{}
)

// Get a new HTTP/2 or HTTP/3 client based on the request arguments
func GetHttpClient(reqArgs *RequestArgs) *http.Client {
	if reqArgs.Http2 {
		return &http.Client{
			Transport: http2Transport,
		}
	}
	return &http.Client{
		Transport: http3Transport,
	}
}

// add headers to the request
func AddHeaders(headers map[string]string, defaultUserAgent string, req *http.Request) {
	if userAgent, ok := headers["User-Agent"]; !ok || userAgent == "" {
		headers["User-Agent"] = defaultUserAgent
	}

	for key, value := range headers {
		req.Header.Add(key, value)
	}
}

// add params to the request
func AddParams(params map[string]string, req *http.Request) {
	if len(params) == 0 {
		return
	}

	query := req.URL.Query()
	for key, value := range params {
		query.Add(key, value)
	}
	req.URL.RawQuery = query.Encode()
}

// send the request to the target URL.
//
// Unlike a downloader, an API client should surface errors such as a
// rate limited response to the caller instead of retrying, hence
// each request is only ever sent once.
func sendRequest(req *http.Request, reqArgs *RequestArgs) (*http.Response, error) {
	AddHeaders(reqArgs.Headers, reqArgs.UserAgent, req)
	AddParams(reqArgs.Params, req)

	client := GetHttpClient(reqArgs)
	client.Timeout = time.Duration(reqArgs.Timeout) * time.Second
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf(
			"error %d: the request to %s failed, more info => %w",
			whverrors.RESPONSE_ERROR,
			reqArgs.Url,
			err,
		)
	}

	if reqArgs.CheckStatus && res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, fmt.Errorf(
			"error %d: the request to %s failed, status code => %s",
			whverrors.RESPONSE_ERROR,
			reqArgs.Url,
			res.Status,
		)
	}
	return res, nil
}

// CallRequest is used to make a request to a URL and return the response
func CallRequest(reqArgs *RequestArgs) (*http.Response, error) {
	reqArgs.ValidateArgs()
	req, err := http.NewRequestWithContext(
		reqArgs.Context,
		reqArgs.Method,
		reqArgs.Url,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf(
			"error %d: unable to create a new request, more info => %w",
			whverrors.DEV_ERROR,
			err,
		)
	}

	return sendRequest(req, reqArgs)
}
