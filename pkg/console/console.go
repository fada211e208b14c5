// Package console provides user-facing terminal output for the CLI,
// separate from the debug log stream.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	writer io.Writer = os.Stdout

	mu sync.Mutex

	// Track if the last write was a rewritable progress line
	inProgress bool

	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"

	clearLine = "\r\033[K"

	colorsSupported = isTerminal()
)

func isTerminal() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// SetWriter sets the output writer (useful for testing)
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	writer = w
}

func color(text, colorCode string) string {
	if !colorsSupported {
		return text
	}
	return colorCode + text + colorReset
}

// Print outputs a message, terminating any in-place progress line first.
func Print(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if inProgress {
		fmt.Fprint(writer, clearLine)
	}
	fmt.Fprintln(writer, fmt.Sprintf(format, args...))
	inProgress = false
}

// Info outputs an info message
func Info(format string, args ...interface{}) {
	Print("["+color("INFO", colorBlue)+"] "+format, args...)
}

// Success outputs a success message
func Success(format string, args ...interface{}) {
	Print("["+color("OK", colorGreen)+"] "+format, args...)
}

// Warning outputs a warning message
func Warning(format string, args ...interface{}) {
	Print("["+color("WARN", colorYellow)+"] "+format, args...)
}

// Error outputs an error message
func Error(format string, args ...interface{}) {
	Print("["+color("ERROR", colorRed)+"] "+format, args...)
}

// Status outputs a status transition message
func Status(format string, args ...interface{}) {
	Print("["+color("STATUS", colorCyan)+"] "+format, args...)
}

// Progress rewrites the current line in place so a stream of progress
// updates occupies a single terminal row.
func Progress(msg string) {
	mu.Lock()
	defer mu.Unlock()

	if colorsSupported {
		fmt.Fprint(writer, clearLine+msg)
		inProgress = true
	} else {
		fmt.Fprintln(writer, msg)
	}
}
