// Package logging provides colored, leveled log output for the irtus server
// and CLI.
//
// All output functions write a prefixed, color-coded line. Debug output is
// suppressed unless verbose mode is enabled via SetVerbose(true).
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

var (
	mu      sync.Mutex
	verbose bool
	stdout  io.Writer = os.Stdout
	stderr  io.Writer = os.Stderr
)

// Color printers for each log level.
var (
	infoPrefix    = color.New(color.FgBlue).SprintFunc()
	successPrefix = color.New(color.FgGreen).SprintFunc()
	warnPrefix    = color.New(color.FgYellow).SprintFunc()
	errorPrefix   = color.New(color.FgRed).SprintFunc()
	phasePrefix   = color.New(color.FgCyan).SprintFunc()
	debugPrefix   = color.New(color.FgBlue).SprintFunc()
)

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// Verbose reports whether Debug output is enabled.
func Verbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// SetOutput redirects log output. A nil writer restores the process default.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout = out
	stderr = errOut
}

// Writers returns the current output and error writers.
func Writers() (out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	return stdout, stderr
}

func writeLine(toErr bool, line string) {
	mu.Lock()
	defer mu.Unlock()
	w := stdout
	if toErr {
		w = stderr
	}
	fmt.Fprintln(w, line)
}

// Info prints an informational message to stdout in blue.
func Info(msg string) {
	writeLine(false, infoPrefix("[INFO]")+" "+msg)
}

// Success prints a success message to stdout in green.
func Success(msg string) {
	writeLine(false, successPrefix("[SUCCESS]")+" "+msg)
}

// Warn prints a warning message to stdout in yellow.
func Warn(msg string) {
	writeLine(false, warnPrefix("[WARN]")+" "+msg)
}

// Error prints an error message to stderr in red.
func Error(msg string) {
	writeLine(true, errorPrefix("[ERROR]")+" "+msg)
}

// Phase prints a section header to stdout in cyan, surrounded by separator lines.
func Phase(msg string) {
	sep := phasePrefix("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	writeLine(false, sep+"\n"+phasePrefix("[PHASE]")+" "+msg+"\n"+sep)
}

// Debug prints a debug message to stdout in blue, only when verbose mode is enabled.
func Debug(msg string) {
	if !Verbose() {
		return
	}
	writeLine(false, debugPrefix("[DEBUG]")+" "+msg)
}

// FormatDuration converts a duration in seconds to a human-readable string.
//
// Examples:
//
//	FormatDuration(0)    => "0s"
//	FormatDuration(45)   => "45s"
//	FormatDuration(90)   => "1m 30s"
//	FormatDuration(3661) => "1h 1m 1s"
//	FormatDuration(7200) => "2h 0m 0s"
func FormatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		m := seconds / 60
		s := seconds % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}
