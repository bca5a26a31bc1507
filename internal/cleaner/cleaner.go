// Package cleaner deletes previously scanned file lists. A clean pass
// never aborts partway through: every path is attempted exactly once and
// failures only increment the error count. There is no rollback; partial
// completion is the expected failure mode.
package cleaner

import (
	"log"
	"os"
	"path/filepath"

	"github.com/dhqdev/limpeza-david/internal/safety"
)

// Outcome reports a single cleaning pass. Ephemeral; discarded after being
// shown to the user.
type Outcome struct {
	Removed    int   `json:"removed" yaml:"removed"`
	BytesFreed int64 `json:"bytes_freed" yaml:"bytes_freed"`
	Errors     int   `json:"errors" yaml:"errors"`
}

// Cleaner deletes files with safety re-validation.
type Cleaner struct {
	filter *safety.Filter
	logger *log.Logger
	dryRun bool
}

// New creates a Cleaner sharing the scanner's safety filter.
func New(filter *safety.Filter, logger *log.Logger) *Cleaner {
	return &Cleaner{
		filter: filter,
		logger: logger,
	}
}

// SetDryRun makes Clean report what it would remove without deleting.
func (c *Cleaner) SetDryRun(dryRun bool) {
	c.dryRun = dryRun
}

// Clean removes each path in the list. Paths that vanished since the scan
// are skipped silently; paths the safety filter now rejects are counted as
// errors and never attempted. The filter re-check matters because scan and
// clean are separated by user interaction of arbitrary duration.
func (c *Cleaner) Clean(paths []string) Outcome {
	var out Outcome

	for _, path := range paths {
		info, err := os.Lstat(path)
		if err != nil {
			if os.IsNotExist(err) {
				// Already gone, nothing to free.
				continue
			}
			c.logger.Printf("[ERROR] cannot stat %s: %v", path, err)
			out.Errors++
			continue
		}

		if !c.filter.IsSafeToDelete(path) {
			c.logger.Printf("[WARN] protected path skipped: %s", path)
			out.Errors++
			continue
		}

		size := sizeOf(path, info)

		if c.dryRun {
			out.Removed++
			out.BytesFreed += size
			continue
		}

		var removeErr error
		if info.IsDir() {
			removeErr = os.RemoveAll(path)
		} else {
			removeErr = os.Remove(path)
		}
		if removeErr != nil {
			delErr := CategorizeError(path, removeErr)
			if delErr.Reason == ErrorFileNotFound {
				// Vanished between stat and remove.
				continue
			}
			c.logger.Printf("[ERROR] failed to remove %s: %v", path, delErr)
			out.Errors++
			continue
		}

		out.Removed++
		out.BytesFreed += size
		c.logger.Printf("[DEBUG] removed: %s", path)
	}

	return out
}

// sizeOf returns the file size, or for a directory the recursive sum of
// contained regular files.
func sizeOf(path string, info os.FileInfo) int64 {
	if !info.IsDir() {
		return info.Size()
	}

	var total int64
	filepath.Walk(path, func(_ string, fi os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if fi.Mode().IsRegular() {
			total += fi.Size()
		}
		return nil
	})
	return total
}
