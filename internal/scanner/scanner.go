// Package scanner enumerates deletion candidates per category. Scanning is
// read-only: it never deletes anything.
package scanner

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/IGLOU-EU/go-wildcard"

	"github.com/dhqdev/limpeza-david/internal/platform"
	"github.com/dhqdev/limpeza-david/internal/safety"
)

// Scanner walks the platform's well-known roots and collects files that
// pass the safety filter.
type Scanner struct {
	paths  *platform.Paths
	filter *safety.Filter
	logger *log.Logger
}

// New creates a Scanner. The filter must be the same one the cleaner will
// re-validate against.
func New(paths *platform.Paths, filter *safety.Filter, logger *log.Logger) *Scanner {
	return &Scanner{
		paths:  paths,
		filter: filter,
		logger: logger,
	}
}

// ScanCategory dispatches to the category's scan procedure. Unknown ids
// yield an empty result, not an error.
func (s *Scanner) ScanCategory(id string) *ScanResult {
	switch id {
	case CategoryUserTemp:
		return s.scanUserTemp()
	case CategorySystemTemp:
		return s.scanSystemTemp()
	case CategoryPrefetch:
		return s.scanPrefetch()
	case CategoryBrowserCache:
		return s.scanBrowserCache()
	case CategoryThumbnailCache:
		return s.scanThumbnailCache()
	case CategoryRecentFiles:
		return s.scanRecentFiles()
	case CategoryLogFiles:
		return s.scanLogFiles()
	case CategoryOldFiles:
		return s.scanOldFiles()
	default:
		return &ScanResult{}
	}
}

// scanRoots recursively walks each existing root, collecting regular files
// that match the patterns (all files when patterns is empty) and pass the
// safety filter. Per-subtree errors are logged and skipped; they never
// abort the scan.
func (s *Scanner) scanRoots(roots []string, patterns []string) *ScanResult {
	result := &ScanResult{}
	for _, root := range roots {
		if root == "" {
			continue
		}
		s.walkRoot(root, patterns, result)
	}
	return result
}

func (s *Scanner) walkRoot(root string, patterns []string, result *ScanResult) {
	if _, err := os.Stat(root); err != nil {
		// Missing or unreadable root: empty contribution.
		return
	}

	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsPermission(err) {
				s.logger.Printf("[WARN] no permission, skipping: %s", path)
			} else {
				s.logger.Printf("[WARN] skipping %s: %v", path, err)
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if len(patterns) > 0 && !matchAny(patterns, d.Name()) {
			return nil
		}
		if !s.filter.IsSafeToDelete(path) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			s.logger.Printf("[WARN] cannot stat %s: %v", path, err)
			return nil
		}
		result.add(path, info.Size(), info.ModTime())
		return nil
	})
}

// addFile appends a single fixed-path file when it exists, is regular and
// passes the safety filter.
func (s *Scanner) addFile(result *ScanResult, path string) {
	if path == "" {
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return
	}
	if !s.filter.IsSafeToDelete(path) {
		return
	}
	result.add(path, info.Size(), info.ModTime())
}

// matchAny matches the file name against the category patterns,
// case-insensitively. Patterns are written lower-case.
func matchAny(patterns []string, name string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range patterns {
		if wildcard.Match(pattern, lower) {
			return true
		}
	}
	return false
}
