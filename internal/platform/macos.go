package platform

import (
	"os"
	"path/filepath"
)

// resolveDarwin builds the path table for the macOS family.
func resolveDarwin(home string) *Paths {
	caches := filepath.Join(home, "Library", "Caches")

	return &Paths{
		Family:     MacOS,
		HomeDir:    home,
		UserTemp:   os.TempDir(),
		SystemTemp: "/private/tmp",
		LocalData:  caches,

		SystemLogs: []string{
			filepath.Join(home, "Library", "Logs"),
			"/Library/Logs",
		},
		BrowserCaches: []string{
			filepath.Join(caches, "Google", "Chrome", "Default", "Cache"),
			filepath.Join(caches, "Google", "Chrome", "Default", "Code Cache"),
			filepath.Join(caches, "Microsoft Edge", "Default", "Cache"),
			filepath.Join(caches, "Microsoft Edge", "Default", "Code Cache"),
		},
		FirefoxProfiles: filepath.Join(caches, "Firefox", "Profiles"),

		TrashDirs: []string{
			filepath.Join(home, ".Trash"),
		},

		ProtectedDirs: append([]string{
			"/System",
			"/Applications",
			"/Library/System",
			"/bin",
			"/sbin",
			"/usr",
			"/etc",
			"/private/etc",
			filepath.Join(home, "Library", "Application Support"),
			filepath.Join(home, "Library", "Preferences"),
		}, userContentDirs(home)...),
		ProtectedExts: append(protectedExtensions(), ".sh", ".dylib"),
		SystemCore: []string{
			"/System/Library",
			"/usr/bin",
		},

		LogDir:    filepath.Join(home, "Library", "Logs", "limpeza-david"),
		ConfigDir: filepath.Join(home, "Library", "Application Support", "limpeza-david"),
	}
}
