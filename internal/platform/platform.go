package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// Family represents the operating system family
type Family string

const (
	Windows Family = "windows"
	Linux   Family = "linux"
	MacOS   Family = "darwin"
	Unknown Family = "unknown"
)

// Paths holds the well-known roots consulted by the scanner and the
// deny-list material used to build the safety filter. Roots that do not
// exist as a concept on the current family are left empty; scans over an
// empty root yield an empty result instead of failing.
type Paths struct {
	Family Family

	HomeDir     string
	UserTemp    string // per-user temp directory
	SystemTemp  string // system-wide temp directory
	LocalData   string // per-user local cache root (LOCALAPPDATA, ~/.cache, ~/Library/Caches)
	RoamingData string // per-user roaming config root (Windows only)

	Prefetch      string // OS prefetch directory (Windows only)
	ExplorerCache string // explorer thumbnail cache directory (Windows only)
	IconCache     string // icon cache file (Windows only)
	RecentItems   string // recent-items shortcut directory (Windows only)

	SystemLogs      []string // system-wide log roots
	BrowserCaches   []string // fixed browser cache roots
	FirefoxProfiles string   // profile container holding per-profile cache2 dirs

	TrashDirs []string // user trash directories emptied file-by-file (non-Windows)

	ProtectedDirs []string // directories that must never be deleted from
	ProtectedExts []string // file extensions that must never be deleted
	SystemCore    []string // substrings identifying core system paths (redundant safeguard)

	LogDir    string // where this application writes its own log files
	ConfigDir string // where this application keeps its config file
}

// Detect returns the current OS family
func Detect() Family {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "linux":
		return Linux
	case "darwin":
		return MacOS
	default:
		return Unknown
	}
}

// Resolve builds the path table for the current OS family. Called once at
// process startup; the result is treated as immutable afterwards.
func Resolve() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	switch Detect() {
	case Windows:
		return resolveWindows(home), nil
	case Linux:
		return resolveLinux(home), nil
	case MacOS:
		return resolveDarwin(home), nil
	default:
		return nil, ErrUnsupportedPlatform
	}
}

// protectedExtensions is the base deny-list of extensions, shared by every
// family: executables, installers, scripts, office documents.
func protectedExtensions() []string {
	return []string{
		".exe", ".dll", ".sys", ".msi", ".bat", ".cmd", ".ps1",
		".doc", ".docx", ".xls", ".xlsx", ".pdf", ".ppt", ".pptx",
	}
}

// userContentDirs returns the per-user document folders that are protected
// on every family.
func userContentDirs(home string) []string {
	return []string{
		filepath.Join(home, "Documents"),
		filepath.Join(home, "Desktop"),
		filepath.Join(home, "Pictures"),
		filepath.Join(home, "Downloads"),
	}
}

// Errors
var ErrUnsupportedPlatform = &Error{"unsupported platform"}

// Error represents a platform-related error
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
