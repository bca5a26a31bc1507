// Package safety decides whether a path may be deleted. The filter is the
// single source of truth for deletion safety: the scanner consults it to
// exclude candidates and the cleaner re-validates against it before every
// removal, since scan and clean can be separated by user interaction of
// arbitrary duration.
package safety

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/dhqdev/limpeza-david/internal/platform"
)

// Filter is the deny-list predicate guarding deletions. Immutable after
// construction.
type Filter struct {
	protectedDirs []string
	protectedExts map[string]struct{}
	systemCore    []string
	foldCase      bool // case-insensitive filesystem (Windows)
	logger        *log.Logger
}

// New builds a filter from the platform deny-lists plus any user-configured
// extras. Extra extensions are normalized to ".ext" lower-case form.
func New(p *platform.Paths, logger *log.Logger, extraDirs, extraExts []string) *Filter {
	f := &Filter{
		protectedExts: make(map[string]struct{}),
		systemCore:    p.SystemCore,
		foldCase:      p.Family == platform.Windows,
		logger:        logger,
	}

	for _, dir := range append(append([]string{}, p.ProtectedDirs...), extraDirs...) {
		if dir == "" {
			continue
		}
		f.protectedDirs = append(f.protectedDirs, f.normalize(dir))
	}

	for _, ext := range append(append([]string{}, p.ProtectedExts...), extraExts...) {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		f.protectedExts[ext] = struct{}{}
	}

	return f
}

// IsSafeToDelete reports whether path may be deleted. Fail-closed: any
// problem evaluating the path makes it unsafe.
func (f *Filter) IsSafeToDelete(path string) bool {
	safe, reason := f.evaluate(path)
	if !safe && reason != "" && f.logger != nil {
		f.logger.Printf("[DEBUG] rejecting %s: %s", path, reason)
	}
	return safe
}

func (f *Filter) evaluate(path string) (bool, string) {
	if path == "" {
		return false, "empty path"
	}
	if !filepath.IsAbs(path) {
		return false, "path is not absolute"
	}

	norm := f.normalize(path)

	// A filesystem or drive root is never a deletion target.
	if norm == "/" || isDriveRoot(norm) {
		return false, "filesystem root"
	}

	// Rule 1: equal to, or nested inside, a protected directory.
	for _, dir := range f.protectedDirs {
		if norm == dir || strings.HasPrefix(norm, dir+sep(dir)) {
			return false, "inside protected directory"
		}
	}

	// Rule 2: protected extension, case-insensitive.
	if _, ok := f.protectedExts[strings.ToLower(filepath.Ext(path))]; ok {
		return false, "protected extension"
	}

	// Rule 3: redundant system-core substring safeguard.
	for _, core := range f.systemCore {
		if strings.Contains(norm, f.normalizeFragment(core)) {
			return false, "system core path"
		}
	}

	return true, ""
}

// normalize cleans a path and lowers it on case-insensitive filesystems so
// the prefix comparisons in evaluate behave like the OS does.
func (f *Filter) normalize(path string) string {
	cleaned := filepath.Clean(path)
	if f.foldCase {
		return strings.ToLower(cleaned)
	}
	return cleaned
}

func (f *Filter) normalizeFragment(fragment string) string {
	if f.foldCase {
		return strings.ToLower(fragment)
	}
	return fragment
}

// sep picks the separator used by the stored protected path, so Windows
// paths match with backslashes and Unix paths with slashes.
func sep(dir string) string {
	if strings.Contains(dir, `\`) {
		return `\`
	}
	return "/"
}

// isDriveRoot matches Windows drive roots like C:\ or c:.
func isDriveRoot(path string) bool {
	if len(path) == 2 && path[1] == ':' {
		return true
	}
	if len(path) == 3 && path[1] == ':' && (path[2] == '\\' || path[2] == '/') {
		return true
	}
	return false
}
