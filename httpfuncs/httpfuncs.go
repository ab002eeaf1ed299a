package httpfuncs

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"

	"github.com/shivlim/wallhaven-go/errors"
)

var DEFAULT_USER_AGENT string

func init() {
	// https://www.whatismybrowser.com/guides/the-latest-user-agent/chrome
	var userAgent = map[string]string{
		"linux":   "X11; Linux x86_64",
		"darwin":  "Macintosh; Intel Mac OS X 10_15_7",
		"windows": "Windows NT 10.0; Win64; x64",
	}
	userAgentOS, ok := userAgent[runtime.GOOS]
	if !ok { // fallback to Windows
		DEFAULT_USER_AGENT = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"
	} else {
		DEFAULT_USER_AGENT = fmt.Sprintf("Mozilla/5.0 (%s) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36", userAgentOS)
	}
}

// Converts a map of string back to a string
func ParamsToString(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	paramsStr := ""
	for key, value := range params {
		paramsStr += fmt.Sprintf("%s=%s&", key, url.QueryEscape(value))
	}
	return paramsStr[:len(paramsStr)-1] // remove the last &
}

// Reads and returns the response body in bytes and closes it
func ReadResBody(res *http.Response) ([]byte, error) {
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf(
			"error %d: failed to read response body from %s due to %w",
			whverrors.RESPONSE_ERROR,
			res.Request.URL.String(),
			err,
		)
	}
	return body, nil
}
