package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/picross/terminal"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the session crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			// Print error and stack trace to stderr so it's visible after reset
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPICROSS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		newErrorLogger(os.Stderr).Error(err)
		os.Exit(1)
	}
}
