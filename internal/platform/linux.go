package platform

import (
	"os"
	"path/filepath"
)

// resolveLinux builds the path table for the Linux family. Windows-only
// roots (prefetch, explorer cache, recent items) stay empty so the
// categories depending on them scan nothing.
func resolveLinux(home string) *Paths {
	cache := os.Getenv("XDG_CACHE_HOME")
	if cache == "" {
		cache = filepath.Join(home, ".cache")
	}
	config := os.Getenv("XDG_CONFIG_HOME")
	if config == "" {
		config = filepath.Join(home, ".config")
	}
	share := os.Getenv("XDG_DATA_HOME")
	if share == "" {
		share = filepath.Join(home, ".local", "share")
	}

	return &Paths{
		Family:     Linux,
		HomeDir:    home,
		UserTemp:   os.TempDir(),
		SystemTemp: "/var/tmp",
		LocalData:  cache,

		SystemLogs: []string{"/var/log"},
		BrowserCaches: []string{
			filepath.Join(cache, "google-chrome", "Default", "Cache"),
			filepath.Join(cache, "google-chrome", "Default", "Code Cache"),
			filepath.Join(cache, "chromium", "Default", "Cache"),
			filepath.Join(cache, "chromium", "Default", "Code Cache"),
		},
		FirefoxProfiles: filepath.Join(cache, "mozilla", "firefox"),

		TrashDirs: []string{
			filepath.Join(share, "Trash", "files"),
			filepath.Join(share, "Trash", "info"),
		},

		ProtectedDirs: append([]string{
			"/bin",
			"/boot",
			"/dev",
			"/etc",
			"/lib",
			"/lib64",
			"/proc",
			"/root",
			"/sbin",
			"/sys",
			"/usr",
		}, userContentDirs(home)...),
		ProtectedExts: append(protectedExtensions(), ".sh", ".so"),
		SystemCore: []string{
			"/usr/bin",
			"/usr/sbin",
		},

		LogDir:    filepath.Join(share, "limpeza-david", "logs"),
		ConfigDir: filepath.Join(config, "limpeza-david"),
	}
}
