package platform

import (
	"path/filepath"
	"runtime"
	"slices"
	"testing"
)

func TestDetectMatchesRuntime(t *testing.T) {
	family := Detect()
	switch runtime.GOOS {
	case "windows":
		if family != Windows {
			t.Errorf("Detect() = %v, want Windows", family)
		}
	case "linux":
		if family != Linux {
			t.Errorf("Detect() = %v, want Linux", family)
		}
	case "darwin":
		if family != MacOS {
			t.Errorf("Detect() = %v, want MacOS", family)
		}
	}
}

func TestResolveWindowsUsesEnvironment(t *testing.T) {
	home := filepath.Join("/", "Users", "dave")
	local := filepath.Join(home, "AppData", "Local")
	t.Setenv("LOCALAPPDATA", local)
	t.Setenv("APPDATA", filepath.Join(home, "AppData", "Roaming"))
	t.Setenv("TEMP", filepath.Join(local, "Temp"))
	t.Setenv("WINDIR", filepath.Join("/", "Windows"))
	t.Setenv("SYSTEMDRIVE", "")
	t.Setenv("PROGRAMFILES", filepath.Join("/", "Program Files"))

	p := resolveWindows(home)

	if p.Family != Windows {
		t.Errorf("Family = %v, want Windows", p.Family)
	}
	if p.UserTemp != filepath.Join(local, "Temp") {
		t.Errorf("UserTemp = %s", p.UserTemp)
	}
	if p.Prefetch != filepath.Join("/", "Windows", "Prefetch") {
		t.Errorf("Prefetch = %s", p.Prefetch)
	}
	if p.IconCache != filepath.Join(local, "IconCache.db") {
		t.Errorf("IconCache = %s", p.IconCache)
	}
	if !slices.Contains(p.ProtectedDirs, filepath.Join("/", "Program Files")) {
		t.Errorf("ProtectedDirs missing Program Files: %v", p.ProtectedDirs)
	}
	if !slices.Contains(p.ProtectedDirs, filepath.Join(home, "Documents")) {
		t.Errorf("ProtectedDirs missing user Documents: %v", p.ProtectedDirs)
	}
	if len(p.SystemCore) == 0 {
		t.Error("SystemCore must not be empty on Windows")
	}
	if len(p.BrowserCaches) == 0 || p.FirefoxProfiles == "" {
		t.Error("browser cache roots must be populated")
	}
	if p.LogDir == "" || p.ConfigDir == "" {
		t.Error("LogDir and ConfigDir must be populated")
	}
}

func TestResolveWindowsFallbacks(t *testing.T) {
	home := filepath.Join("/", "Users", "dave")
	t.Setenv("LOCALAPPDATA", "")
	t.Setenv("APPDATA", "")
	t.Setenv("TEMP", "")

	p := resolveWindows(home)

	wantLocal := filepath.Join(home, "AppData", "Local")
	if p.LocalData != wantLocal {
		t.Errorf("LocalData = %s, want %s", p.LocalData, wantLocal)
	}
	if p.UserTemp != filepath.Join(wantLocal, "Temp") {
		t.Errorf("UserTemp = %s", p.UserTemp)
	}
}

func TestResolveLinux(t *testing.T) {
	home := t.TempDir()
	cache := filepath.Join(home, "my-cache")
	t.Setenv("XDG_CACHE_HOME", cache)
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	p := resolveLinux(home)

	if p.Family != Linux {
		t.Errorf("Family = %v, want Linux", p.Family)
	}
	if p.LocalData != cache {
		t.Errorf("LocalData = %s, want %s", p.LocalData, cache)
	}
	if p.SystemTemp != "/var/tmp" {
		t.Errorf("SystemTemp = %s", p.SystemTemp)
	}
	// Windows-only concepts stay empty so their categories scan nothing.
	if p.Prefetch != "" || p.ExplorerCache != "" || p.RecentItems != "" {
		t.Error("Windows-only roots should be empty on Linux")
	}
	if !slices.Contains(p.ProtectedDirs, "/etc") {
		t.Errorf("ProtectedDirs missing /etc: %v", p.ProtectedDirs)
	}
	if slices.Contains(p.ProtectedDirs, "/var") {
		t.Error("/var must not be protected, log scans walk /var/log")
	}
	if len(p.TrashDirs) == 0 {
		t.Error("TrashDirs must be populated on Linux")
	}
	if !slices.Contains(p.ProtectedExts, ".sh") {
		t.Error("Linux deny-list should include .sh")
	}
}

func TestProtectedExtensionsAreLowercaseWithDot(t *testing.T) {
	for _, ext := range protectedExtensions() {
		if ext == "" || ext[0] != '.' {
			t.Errorf("extension %q must start with a dot", ext)
		}
		if ext != filepath.Ext("x"+ext) {
			t.Errorf("extension %q does not roundtrip through filepath.Ext", ext)
		}
	}
}
