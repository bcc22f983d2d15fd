package errors

import (
	"fmt"
	"os"

	"github.com/julianstephens/remind/internal/logger"
)

// Fatal reports a command failure on stderr, records it in the log file, and
// exits with status 1. A nil error is a no-op so call sites can pass errors
// through unconditionally.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command failed", "error", err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// Fatalf is Fatal with a formatted message.
func Fatalf(format string, args ...interface{}) {
	Fatal(fmt.Errorf(format, args...))
}
