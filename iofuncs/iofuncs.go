package iofuncs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shivlim/wallhaven-go/errors"
)

// APP_PATH is the directory used for files written by
// this library at runtime, such as logs and debug output.
var APP_PATH = getAppPath()

// Returns the path to the application's config directory
func getAppPath() string {
	appPath, err := os.UserConfigDir()
	if err != nil {
		panic(
			fmt.Errorf(
				"error %d, failed to get user's config directory: %v",
				whverrors.OS_ERROR,
				err,
			),
		)
	}
	return filepath.Join(appPath, "Wallhaven-Go")
}
