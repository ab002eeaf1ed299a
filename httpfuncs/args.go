package httpfuncs

import (
	"context"
	"fmt"
	"strings"

	"github.com/shivlim/wallhaven-go/constants"
	"github.com/shivlim/wallhaven-go/errors"
)

func (args *RequestArgs) validateHttp3Arg() {
	if !args.Http2 && !args.Http3 {
		// if http2 and http3 are not enabled,
		// do a check to determine which protocol to use.
		// The API endpoints are served over HTTP/2 while the
		// main site supports HTTP/3.
		if strings.HasPrefix(args.Url, constants.WALLHAVEN_API_URL) {
			args.Http2 = true
		} else if strings.HasPrefix(args.Url, constants.WALLHAVEN_URL) {
			args.Http3 = true
		} else {
			// fall back to the default HTTP/2 for unknown hosts
			args.Http2 = true
		}
	} else if args.Http2 && args.Http3 {
		panic(
			fmt.Errorf(
				"error %d: http2 and http3 cannot be enabled at the same time",
				whverrors.DEV_ERROR,
			),
		)
	}
}

func (args *RequestArgs) getDefaultArgs() {
	if args.RequestHandler == nil {
		args.RequestHandler = CallRequest
	}

	if args.Headers == nil {
		args.Headers = make(map[string]string)
	}

	if args.Params == nil {
		args.Params = make(map[string]string)
	}

	if args.UserAgent == "" {
		args.UserAgent = DEFAULT_USER_AGENT
	}

	if args.Context == nil {
		args.Context = context.Background()
	}
}

// ValidateArgs validates the arguments of the request
//
// Will panic if the arguments are invalid as this is a developer error
func (args *RequestArgs) ValidateArgs() {
	args.getDefaultArgs()
	args.validateHttp3Arg()

	if args.Method == "" {
		panic(
			fmt.Errorf(
				"error %d: method cannot be empty",
				whverrors.DEV_ERROR,
			),
		)
	}

	if args.Url == "" {
		panic(
			fmt.Errorf(
				"error %d: url cannot be empty",
				whverrors.DEV_ERROR,
			),
		)
	}

	if args.Timeout < 0 {
		panic(
			fmt.Errorf(
				"error %d: timeout cannot be negative",
				whverrors.DEV_ERROR,
			),
		)
	} else if args.Timeout == 0 {
		args.Timeout = constants.DEFAULT_REQ_TIMEOUT
	}
}
