package collections

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// loggerState is the package-level logger used by Dump and by lazy sources.
var loggerState struct {
	mu     sync.RWMutex
	logger zerolog.Logger
}

func init() {
	loggerState.logger = zerolog.New(os.Stderr).
		Level(zerolog.InfoLevel).
		With().Timestamp().Str("component", "collections").
		Logger()
}

// SetLogger replaces the logger used by [Collection.Dump] and by lazy
// pipelines for lifecycle events. Pass zerolog.Nop() to silence the package.
// Safe to call from multiple goroutines.
func SetLogger(l zerolog.Logger) {
	loggerState.mu.Lock()
	defer loggerState.mu.Unlock()
	loggerState.logger = l
}

// Logger returns the logger currently used by the package.
func Logger() zerolog.Logger {
	loggerState.mu.RLock()
	defer loggerState.mu.RUnlock()
	return loggerState.logger
}
