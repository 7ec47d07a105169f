// Package log prints program diagnostics to the standard error.
package log

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var CrashOnError = false

// Err prints a diagnostic to the standard error according to format.
// It also prepends the program name and appends a newline.  This is
// much like the errx(3) function from C unless CrashOnError is false in
// which case this will act like warnx(3).
func Err(format string, args ...any) {
	Warn(format, args...)
	if CrashOnError {
		os.Exit(1)
	}
}

// Warn is Err without the possibility of exiting.
func Warn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s: %s\n",
		color.RedString("tysh"), fmt.Sprintf(format, args...))
}
