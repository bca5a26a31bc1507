// Package testutil provides fixtures for scanner and cleaner tests.
// All file operations use t.TempDir() for safe, isolated testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dhqdev/limpeza-david/internal/platform"
)

// Fixture is a throwaway directory tree shaped like the locations the
// scanner walks, plus a platform.Paths pointing into it.
type Fixture struct {
	T       *testing.T
	RootDir string // root temp directory, auto-cleaned

	HomeDir    string
	UserTemp   string
	SystemTemp string
	Prefetch   string
	BrowserDir string
	RecentDir  string
	LogsDir    string
	LocalData  string
	TrashFiles string
}

// NewFixture creates the standard directory layout under t.TempDir().
func NewFixture(t *testing.T) *Fixture {
	t.Helper()

	root := t.TempDir()

	f := &Fixture{
		T:          t,
		RootDir:    root,
		HomeDir:    filepath.Join(root, "home"),
		UserTemp:   filepath.Join(root, "home", "tmp"),
		SystemTemp: filepath.Join(root, "systmp"),
		Prefetch:   filepath.Join(root, "prefetch"),
		BrowserDir: filepath.Join(root, "home", "browser-cache"),
		RecentDir:  filepath.Join(root, "home", "recent"),
		LogsDir:    filepath.Join(root, "varlog"),
		LocalData:  filepath.Join(root, "home", "local"),
		TrashFiles: filepath.Join(root, "home", "trash", "files"),
	}

	dirs := []string{
		f.UserTemp,
		f.SystemTemp,
		f.Prefetch,
		f.BrowserDir,
		f.RecentDir,
		f.LogsDir,
		f.LocalData,
		f.TrashFiles,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("failed to create directory %s: %v", dir, err)
		}
	}

	return f
}

// Paths returns a platform.Paths wired to the fixture tree. The
// protected list covers a fixture subdirectory so safety rejections can
// be exercised without touching real system paths.
func (f *Fixture) Paths() *platform.Paths {
	protected := filepath.Join(f.RootDir, "protected")
	if err := os.MkdirAll(protected, 0o755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", protected, err)
	}

	return &platform.Paths{
		Family:        platform.Linux,
		HomeDir:       f.HomeDir,
		UserTemp:      f.UserTemp,
		SystemTemp:    f.SystemTemp,
		LocalData:     f.LocalData,
		Prefetch:      f.Prefetch,
		RecentItems:   f.RecentDir,
		SystemLogs:    []string{f.LogsDir},
		BrowserCaches: []string{f.BrowserDir},
		TrashDirs:     []string{f.TrashFiles},
		ProtectedDirs: []string{protected},
		ProtectedExts: []string{".exe", ".dll", ".doc", ".pdf"},
		SystemCore:    []string{"/usr/bin", "/usr/sbin"},
		LogDir:        filepath.Join(f.RootDir, "applogs"),
		ConfigDir:     filepath.Join(f.RootDir, "appconfig"),
	}
}

// ProtectedDir returns the directory Paths() marks as protected.
func (f *Fixture) ProtectedDir() string {
	return filepath.Join(f.RootDir, "protected")
}

// CreateFile creates a file relative to the fixture root and returns
// its full path.
func (f *Fixture) CreateFile(relPath string, content []byte) string {
	f.T.Helper()

	fullPath := filepath.Join(f.RootDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		f.T.Fatalf("failed to create directory for %s: %v", fullPath, err)
	}
	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		f.T.Fatalf("failed to create file %s: %v", fullPath, err)
	}
	return fullPath
}

// CreateFileAt creates a file under an absolute directory, for writing
// directly into fixture scan roots.
func (f *Fixture) CreateFileAt(dir, name string, size int) string {
	f.T.Helper()

	fullPath := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		f.T.Fatalf("failed to create directory for %s: %v", fullPath, err)
	}
	if err := os.WriteFile(fullPath, make([]byte, size), 0o644); err != nil {
		f.T.Fatalf("failed to create file %s: %v", fullPath, err)
	}
	return fullPath
}

// CreateFileWithAge creates a file and backdates its modification time.
func (f *Fixture) CreateFileWithAge(relPath string, content []byte, age time.Duration) string {
	f.T.Helper()

	fullPath := f.CreateFile(relPath, content)
	old := time.Now().Add(-age)
	if err := os.Chtimes(fullPath, old, old); err != nil {
		f.T.Fatalf("failed to set file time for %s: %v", fullPath, err)
	}
	return fullPath
}

// CreateDir creates a directory relative to the fixture root.
func (f *Fixture) CreateDir(relPath string) string {
	f.T.Helper()

	fullPath := filepath.Join(f.RootDir, relPath)
	if err := os.MkdirAll(fullPath, 0o755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", fullPath, err)
	}
	return fullPath
}

// Path returns the full path for a relative path within the fixture.
func (f *Fixture) Path(relPath string) string {
	return filepath.Join(f.RootDir, relPath)
}

// FileExists reports whether a file exists.
func (f *Fixture) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// AssertFileExists fails the test if the file does not exist.
func (f *Fixture) AssertFileExists(path string) {
	f.T.Helper()
	if !f.FileExists(path) {
		f.T.Errorf("expected file to exist: %s", path)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (f *Fixture) AssertFileNotExists(path string) {
	f.T.Helper()
	if f.FileExists(path) {
		f.T.Errorf("expected file to not exist: %s", path)
	}
}

// DirSize returns the total size of all regular files under path.
func DirSize(path string) (int64, error) {
	var size int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			size += info.Size()
		}
		return nil
	})
	return size, err
}

// CountFiles returns the number of regular files under path.
func CountFiles(path string) (int, error) {
	var count int
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			count++
		}
		return nil
	})
	return count, err
}
