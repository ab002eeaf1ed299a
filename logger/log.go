package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shivlim/wallhaven-go/constants"
	"github.com/shivlim/wallhaven-go/iofuncs"
)

const LogSuffix = "\n\n"

var (
	MainLogger  *Logger
	logFolder   = filepath.Join(iofuncs.APP_PATH, "logs")
	logFilePath = filepath.Join(
		logFolder,
		fmt.Sprintf(
			"wallhaven-go_v%s_%s.log",
			constants.VERSION,
			time.Now().Format("2006-01-02"),
		),
	)
)

func init() {
	// create the logs directory if it does not exist
	os.MkdirAll(logFolder, constants.DEFAULT_PERMS)

	// will be opened throughout the program's runtime
	// hence, there is no need to call f.Close() at the end of this function
	f, fileErr := os.OpenFile(
		logFilePath,
		os.O_WRONLY|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if fileErr != nil {
		fileErr = fmt.Errorf(
			"error opening log file: %v\nlog file path: %s",
			fileErr,
			logFilePath,
		)
		panic(fileErr)
	}
	MainLogger = NewLogger(f)
}

// Delete all empty log files and log files
// older than 30 days except for the current day's log file.
func DeleteEmptyAndOldLogs() error {
	return filepath.Walk(logFolder, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || path == logFilePath {
			return nil
		}

		if info.Size() == 0 || info.ModTime().Before(time.Now().AddDate(0, 0, -30)) {
			return os.Remove(path)
		}

		return nil
	})
}

// Logs the given error to the main log file if it is not nil
func LogError(err error, level int) {
	if err == nil {
		return
	}

	MainLogger.LogBasedOnLvl(level, err.Error()+LogSuffix)
}
