// Package engine exposes the cleaning capability behind a single
// interface: list categories, scan one, clean a file list, empty the
// trash. One concrete engine is constructed per OS family at startup; the
// platform path table is the only point of variation.
package engine

import (
	"errors"
	"log"
	"sync/atomic"

	"github.com/dhqdev/limpeza-david/internal/cleaner"
	"github.com/dhqdev/limpeza-david/internal/config"
	"github.com/dhqdev/limpeza-david/internal/platform"
	"github.com/dhqdev/limpeza-david/internal/safety"
	"github.com/dhqdev/limpeza-david/internal/scanner"
	"github.com/dhqdev/limpeza-david/internal/trash"
)

// ErrBusy is returned when a scan or clean is already in flight.
// Concurrent invocations are rejected, not queued.
var ErrBusy = errors.New("a scan or clean operation is already running")

// Engine is the capability surface the presentation layer drives.
type Engine interface {
	Categories() []scanner.Category
	ScanCategory(id string) (*scanner.ScanResult, error)
	CleanFiles(paths []string) (cleaner.Outcome, error)
	EmptyTrash() bool
}

type systemEngine struct {
	paths   *platform.Paths
	scanner *scanner.Scanner
	cleaner *cleaner.Cleaner
	logger  *log.Logger
	busy    atomic.Bool
}

// New wires the scanner and cleaner around one shared safety filter. This
// is the single selection point for platform behavior.
func New(paths *platform.Paths, cfg *config.Config, logger *log.Logger) Engine {
	filter := safety.New(paths, logger, cfg.ExtraProtectedPaths, cfg.ExtraProtectedExtensions)

	cln := cleaner.New(filter, logger)
	cln.SetDryRun(cfg.DryRun)

	return &systemEngine{
		paths:   paths,
		scanner: scanner.New(paths, filter, logger),
		cleaner: cln,
		logger:  logger,
	}
}

func (e *systemEngine) Categories() []scanner.Category {
	return e.scanner.Categories()
}

// ScanCategory runs one category scan. Only one scan or clean may be in
// flight; there is no cancellation once started.
func (e *systemEngine) ScanCategory(id string) (*scanner.ScanResult, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer e.busy.Store(false)

	e.logger.Printf("[INFO] scanning category %s", id)
	result := e.scanner.ScanCategory(id)
	e.logger.Printf("[INFO] category %s: %d files, %d bytes", id, result.Count(), result.TotalSize)
	return result, nil
}

// CleanFiles deletes a previously scanned list.
func (e *systemEngine) CleanFiles(paths []string) (cleaner.Outcome, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return cleaner.Outcome{}, ErrBusy
	}
	defer e.busy.Store(false)

	e.logger.Printf("[INFO] cleaning %d files", len(paths))
	out := e.cleaner.Clean(paths)
	e.logger.Printf("[INFO] clean finished: removed=%d freed=%d errors=%d", out.Removed, out.BytesFreed, out.Errors)
	return out, nil
}

// EmptyTrash is best-effort and never fails the caller.
func (e *systemEngine) EmptyTrash() bool {
	return trash.Empty(e.paths, e.logger)
}
