// Package core holds process-level helpers shared by the host: panic recovery that
// restores the terminal before reporting.
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	restoreMu sync.Mutex
	restore   func()

	// Overridden in tests
	exit             = os.Exit
	stderr io.Writer = os.Stderr
)

// SetRestore registers the terminal cleanup run before a crash report
// Passing nil clears it
func SetRestore(fn func()) {
	restoreMu.Lock()
	restore = fn
	restoreMu.Unlock()
}

// HandleCrash restores the terminal, prints the panic value and stack trace, and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	restoreMu.Lock()
	fn := restore
	restore = nil
	restoreMu.Unlock()

	if fn != nil {
		fn()
	}

	fmt.Fprintf(stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	exit(1)
}

// Go runs fn in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword so the terminal is restored on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
