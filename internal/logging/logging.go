// Package logging builds the process-wide log stream. The logger is handed
// explicitly to each component at construction instead of living in a
// package-level singleton.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls log file rotation and console echo.
type Options struct {
	Dir        string // directory for log files, created if missing
	MaxSizeMB  int    // rotate after this many megabytes
	MaxBackups int    // rotated files to keep
	MaxAgeDays int    // days to keep rotated files
	Verbose    bool   // also echo to stderr
}

// New creates a logger writing to a date-named file under opts.Dir, one
// file per calendar day of first use. When the directory cannot be
// created the logger falls back to stderr only.
func New(opts Options) *log.Logger {
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 10
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = 3
	}

	var writers []io.Writer

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o755); err == nil {
			name := fmt.Sprintf("limpeza_%s.log", time.Now().Format("20060102"))
			writers = append(writers, &lumberjack.Logger{
				Filename:   filepath.Join(opts.Dir, name),
				MaxSize:    opts.MaxSizeMB,
				MaxBackups: opts.MaxBackups,
				MaxAge:     opts.MaxAgeDays,
				Compress:   true,
			})
		}
	}

	if opts.Verbose || len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	return log.New(io.MultiWriter(writers...), "", log.LstdFlags)
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}
