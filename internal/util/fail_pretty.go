package util

import (
	"fmt"
	"os"
)

// FailPretty prints an error message and exits with status 1.
func FailPretty(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	fmt.Fprintf(os.Stderr, "\nError: %s\n", msg)
	os.Exit(1)
}
