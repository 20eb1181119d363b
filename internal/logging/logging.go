// Package logging holds the library-wide zerolog logger. Every component logs
// through a tagged sub-logger so output keeps the "[module::function]" shape.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	root = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)
)

// Set replaces the library logger.
func Set(l zerolog.Logger) {
	mu.Lock()
	root = l
	mu.Unlock()
}

// SetLevel adjusts the level of the current logger.
func SetLevel(lvl zerolog.Level) {
	mu.Lock()
	root = root.Level(lvl)
	mu.Unlock()
}

// L returns the current logger.
func L() zerolog.Logger {
	mu.RLock()
	l := root
	mu.RUnlock()
	return l
}

// Tag returns a sub-logger carrying tag="[a::b::c]".
func Tag(parts ...string) *zerolog.Logger {
	l := L().With().Str("tag", "["+strings.Join(parts, "::")+"]").Logger()
	return &l
}
