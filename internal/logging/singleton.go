package logging

import (
	"log"
	"os"
	"sync"
)

var (
	instance *Logger
	mu       sync.Mutex
)

// InitLogger initializes the global logger with the given configuration.
// Calling it again replaces the previous instance.
func InitLogger(config *LogConfig) error {
	mu.Lock()
	defer mu.Unlock()

	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	if instance != nil {
		instance.Close()
	}
	instance = logger
	return nil
}

// GetGlobalLogger returns the global logger instance.
// Before InitLogger is called it falls back to a plain stderr logger,
// which keeps package-level logging usable in tests.
func GetGlobalLogger() *Logger {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		instance = &Logger{Logger: log.New(os.Stderr, "", log.LstdFlags)}
	}
	return instance
}
