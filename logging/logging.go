// Package logging provides a minimal timestamped logger with tag-based
// filtering. Messages carry a one-byte tag; only messages whose tag has
// been activated are written, so individual subsystems can be switched on
// and off at runtime without touching call sites.
package logging

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/boljen/go-bitmap"
)

var (
	mu sync.Mutex
	// active holds one activation bit per possible tag.
	active = bitmap.New(256)
)

// Activate enables messages carrying the given tag.
func Activate(tag byte) {
	mu.Lock()
	defer mu.Unlock()
	active.Set(int(tag), true)
}

// Deactivate disables messages carrying the given tag. All tags start out
// disabled.
func Deactivate(tag byte) {
	mu.Lock()
	defer mu.Unlock()
	active.Set(int(tag), false)
}

// Active reports whether the given tag is enabled.
func Active(tag byte) bool {
	mu.Lock()
	defer mu.Unlock()
	return active.Get(int(tag))
}

// Write unconditionally writes a timestamped line to w.
func Write(w io.Writer, message string) error {
	mu.Lock()
	defer mu.Unlock()
	return write(w, message)
}

// WriteTagged writes a timestamped line to w if at least one of the tags is
// active, and reports whether the line was written. Calls with no active
// tag cost one mutex acquisition and nothing else.
func WriteTagged(w io.Writer, message string, tags ...byte) (bool, error) {
	mu.Lock()
	defer mu.Unlock()

	for _, tag := range tags {
		if active.Get(int(tag)) {
			return true, write(w, message)
		}
	}
	return false, nil
}

// write emits "[hh:mm:ss] -> message". The mutex must be held, which also
// keeps lines from concurrent writers intact.
func write(w io.Writer, message string) error {
	_, err := fmt.Fprintf(w, "[%s] -> %s\n", time.Now().Format("15:04:05"), message)
	return err
}
