package platform

import (
	"os"
	"path/filepath"
)

// winDir returns the Windows directory, falling back to C:\Windows only
// when %WINDIR% is not set.
func winDir() string {
	if w := os.Getenv("WINDIR"); w != "" {
		return w
	}
	return `C:\Windows`
}

// systemDrive returns the system drive root (e.g. C:\).
func systemDrive() string {
	if d := os.Getenv("SYSTEMDRIVE"); d != "" {
		return d + `\`
	}
	return `C:\`
}

func programFiles() string {
	if p := os.Getenv("PROGRAMFILES"); p != "" {
		return p
	}
	return `C:\Program Files`
}

func programFilesX86() string {
	if p := os.Getenv("PROGRAMFILES(X86)"); p != "" {
		return p
	}
	return `C:\Program Files (x86)`
}

// resolveWindows builds the path table for the Windows family. All roots
// come from environment variables so installations on non-C: drives work.
func resolveWindows(home string) *Paths {
	local := os.Getenv("LOCALAPPDATA")
	if local == "" {
		local = filepath.Join(home, "AppData", "Local")
	}
	roaming := os.Getenv("APPDATA")
	if roaming == "" {
		roaming = filepath.Join(home, "AppData", "Roaming")
	}
	userTemp := os.Getenv("TEMP")
	if userTemp == "" {
		userTemp = filepath.Join(local, "Temp")
	}

	w := winDir()
	sd := systemDrive()

	return &Paths{
		Family:      Windows,
		HomeDir:     home,
		UserTemp:    userTemp,
		SystemTemp:  filepath.Join(w, "Temp"),
		LocalData:   local,
		RoamingData: roaming,

		Prefetch:      filepath.Join(w, "Prefetch"),
		ExplorerCache: filepath.Join(local, "Microsoft", "Windows", "Explorer"),
		IconCache:     filepath.Join(local, "IconCache.db"),
		RecentItems:   filepath.Join(roaming, "Microsoft", "Windows", "Recent"),

		SystemLogs: []string{filepath.Join(w, "Logs")},
		BrowserCaches: []string{
			filepath.Join(local, "Google", "Chrome", "User Data", "Default", "Cache"),
			filepath.Join(local, "Google", "Chrome", "User Data", "Default", "Code Cache"),
			filepath.Join(local, "Microsoft", "Edge", "User Data", "Default", "Cache"),
			filepath.Join(local, "Microsoft", "Edge", "User Data", "Default", "Code Cache"),
		},
		FirefoxProfiles: filepath.Join(local, "Mozilla", "Firefox", "Profiles"),

		ProtectedDirs: append([]string{
			filepath.Join(w, "System32"),
			filepath.Join(w, "SysWOW64"),
			filepath.Join(w, "WinSxS"),
			programFiles(),
			programFilesX86(),
			filepath.Join(sd, "Boot"),
			filepath.Join(sd, "EFI"),
			filepath.Join(sd, "Recovery"),
		}, userContentDirs(home)...),
		ProtectedExts: protectedExtensions(),
		SystemCore: []string{
			`windows\system32`,
			`windows\syswow64`,
		},

		LogDir:    filepath.Join(local, "limpeza-david", "logs"),
		ConfigDir: filepath.Join(roaming, "limpeza-david"),
	}
}
