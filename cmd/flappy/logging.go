package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger returns the game logger. The TUI owns the terminal, so without a
// log file everything is discarded.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	return fileLogger(path, debug, "flappy")
}

// newServerLogger returns the SSH server logger, writing to stderr unless a
// log file is given.
func newServerLogger(path string, debug bool) (*log.Logger, func(), error) {
	if path != "" {
		return fileLogger(path, debug, "flappy-ssh")
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy-ssh",
		Level:           level(debug),
	})
	return logger, func() {}, nil
}

func fileLogger(path string, debug bool, prefix string) (*log.Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level(debug),
	})
	return logger, func() { _ = f.Close() }, nil
}

func level(debug bool) log.Level {
	if debug {
		return log.DebugLevel
	}
	return log.InfoLevel
}
