package httpfuncs

import (
	"math/rand"
	"time"

	"github.com/shivlim/wallhaven-go/constants"
)

// Returns a random time.Duration between the given min and max arguments
func GetRandomTime(min, max float64) time.Duration {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	randomDelay := min + r.Float64()*(max-min)
	return time.Duration(randomDelay*1000) * time.Millisecond
}

// Returns a random time.Duration based on the request
// delay values defined in the constants package
func GetRandomDelay() time.Duration {
	return GetRandomTime(
		constants.MIN_REQUEST_DELAY,
		constants.MIN_REQUEST_DELAY+constants.MAX_EXTRA_DELAY,
	)
}
