package scanner

import (
	"os"
	"path/filepath"
)

// Category describes one independently scannable grouping of disposable
// files. The set is fixed; there is no dynamic registration.
type Category struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Icon        string `json:"icon" yaml:"icon"`
	Description string `json:"description" yaml:"description"`
}

// Category identifiers.
const (
	CategoryUserTemp       = "user_temp"
	CategorySystemTemp     = "system_temp"
	CategoryPrefetch       = "prefetch"
	CategoryBrowserCache   = "browser_cache"
	CategoryThumbnailCache = "thumbnail_cache"
	CategoryRecentFiles    = "recent_files"
	CategoryLogFiles       = "log_files"
	CategoryOldFiles       = "old_files"
)

// categories is the fixed, ordered category table.
var categories = []Category{
	{CategoryUserTemp, "User Temporary Files", "📁", "The current user's temp directory"},
	{CategorySystemTemp, "System Temporary Files", "🪟", "The system-wide temp directory"},
	{CategoryPrefetch, "Prefetch", "⚡", "OS preload data (*.pf)"},
	{CategoryBrowserCache, "Browser Cache", "🌐", "Chrome, Edge and Firefox caches"},
	{CategoryThumbnailCache, "Thumbnail Cache", "💾", "Explorer thumbnail and icon caches"},
	{CategoryRecentFiles, "Recent Files", "📋", "Recent-item shortcuts"},
	{CategoryLogFiles, "Log Files", "📝", "Stale *.log files"},
	{CategoryOldFiles, "Old/Backup Files", "📦", "*.old, *.bak, *.tmp and editor backups"},
}

// Categories returns the fixed ordered category table.
func (s *Scanner) Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (s *Scanner) scanUserTemp() *ScanResult {
	return s.scanRoots([]string{s.paths.UserTemp}, nil)
}

func (s *Scanner) scanSystemTemp() *ScanResult {
	return s.scanRoots([]string{s.paths.SystemTemp}, nil)
}

func (s *Scanner) scanPrefetch() *ScanResult {
	return s.scanRoots([]string{s.paths.Prefetch}, []string{"*.pf"})
}

// scanBrowserCache walks the fixed browser cache roots, then iterates the
// Firefox profile container since profile directory names are generated.
func (s *Scanner) scanBrowserCache() *ScanResult {
	result := s.scanRoots(s.paths.BrowserCaches, nil)

	if s.paths.FirefoxProfiles != "" {
		entries, err := os.ReadDir(s.paths.FirefoxProfiles)
		if err == nil {
			for _, entry := range entries {
				if !entry.IsDir() {
					continue
				}
				cache := filepath.Join(s.paths.FirefoxProfiles, entry.Name(), "cache2")
				result.merge(s.scanRoots([]string{cache}, nil))
			}
		}
	}

	return result
}

// scanThumbnailCache collects thumbcache databases plus the single icon
// cache file.
func (s *Scanner) scanThumbnailCache() *ScanResult {
	result := s.scanRoots([]string{s.paths.ExplorerCache}, []string{"thumbcache_*.db"})
	s.addFile(result, s.paths.IconCache)
	return result
}

func (s *Scanner) scanRecentFiles() *ScanResult {
	return s.scanRoots([]string{s.paths.RecentItems}, []string{"*.lnk"})
}

func (s *Scanner) scanLogFiles() *ScanResult {
	roots := append([]string{s.paths.UserTemp, s.paths.LocalData}, s.paths.SystemLogs...)
	return s.scanRoots(roots, []string{"*.log"})
}

func (s *Scanner) scanOldFiles() *ScanResult {
	roots := []string{s.paths.UserTemp, s.paths.HomeDir, s.paths.LocalData}
	return s.scanRoots(roots, []string{"*.old", "*.bak", "*.tmp", "*.temp", "~*"})
}
