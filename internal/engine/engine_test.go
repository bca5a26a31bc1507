package engine

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dhqdev/limpeza-david/internal/config"
	"github.com/dhqdev/limpeza-david/internal/logging"
	"github.com/dhqdev/limpeza-david/internal/scanner"
	"github.com/dhqdev/limpeza-david/internal/testutil"
)

func newTestEngine(t *testing.T, f *testutil.Fixture, cfg *config.Config) Engine {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	return New(f.Paths(), cfg, logging.Discard())
}

func TestEngineScanThenClean(t *testing.T) {
	f := testutil.NewFixture(t)
	eng := newTestEngine(t, f, nil)

	f.CreateFileAt(f.UserTemp, "a.tmp", 100)
	f.CreateFileAt(f.UserTemp, "b.tmp", 200)

	result, err := eng.ScanCategory(scanner.CategoryUserTemp)
	if err != nil {
		t.Fatalf("ScanCategory: %v", err)
	}
	if result.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", result.Count())
	}

	out, err := eng.CleanFiles(result.Paths())
	if err != nil {
		t.Fatalf("CleanFiles: %v", err)
	}
	if out.Removed != 2 || out.BytesFreed != 300 || out.Errors != 0 {
		t.Errorf("outcome = %+v, want 2 removed, 300 freed, 0 errors", out)
	}
}

func TestEngineRejectsConcurrentOperations(t *testing.T) {
	f := testutil.NewFixture(t)
	eng := newTestEngine(t, f, nil).(*systemEngine)

	eng.busy.Store(true)

	if _, err := eng.ScanCategory(scanner.CategoryUserTemp); !errors.Is(err, ErrBusy) {
		t.Errorf("ScanCategory during operation: err = %v, want ErrBusy", err)
	}
	if _, err := eng.CleanFiles(nil); !errors.Is(err, ErrBusy) {
		t.Errorf("CleanFiles during operation: err = %v, want ErrBusy", err)
	}

	eng.busy.Store(false)
	if _, err := eng.ScanCategory(scanner.CategoryUserTemp); err != nil {
		t.Errorf("ScanCategory after release: %v", err)
	}
}

func TestEngineAppliesConfigExtras(t *testing.T) {
	f := testutil.NewFixture(t)
	cfg := config.Default()
	cfg.ExtraProtectedExtensions = []string{".keepme"}
	eng := newTestEngine(t, f, cfg)

	f.CreateFileAt(f.UserTemp, "data.keepme", 100)
	f.CreateFileAt(f.UserTemp, "data.tmp", 200)

	result, err := eng.ScanCategory(scanner.CategoryUserTemp)
	if err != nil {
		t.Fatalf("ScanCategory: %v", err)
	}
	if result.Count() != 1 || result.TotalSize != 200 {
		t.Errorf("got %d files, %d bytes; extra extension should be excluded",
			result.Count(), result.TotalSize)
	}
}

func TestEngineDryRunConfig(t *testing.T) {
	f := testutil.NewFixture(t)
	cfg := config.Default()
	cfg.DryRun = true
	eng := newTestEngine(t, f, cfg)

	path := f.CreateFileAt(f.UserTemp, "kept.tmp", 64)

	out, err := eng.CleanFiles([]string{path})
	if err != nil {
		t.Fatalf("CleanFiles: %v", err)
	}
	if out.Removed != 1 {
		t.Errorf("Removed = %d, want 1", out.Removed)
	}
	f.AssertFileExists(path)
}

func TestEngineEmptyTrash(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("emptying the trash on Windows hits the real recycle bin")
	}

	f := testutil.NewFixture(t)
	eng := newTestEngine(t, f, nil)

	f.CreateFileAt(f.TrashFiles, "deleted1.txt", 10)
	if err := os.MkdirAll(filepath.Join(f.TrashFiles, "folder"), 0o755); err != nil {
		t.Fatal(err)
	}

	if !eng.EmptyTrash() {
		t.Fatal("EmptyTrash() = false, want true")
	}

	entries, err := os.ReadDir(f.TrashFiles)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("trash dir still has %d entries", len(entries))
	}

	// Emptying an already empty trash still succeeds.
	if !eng.EmptyTrash() {
		t.Error("EmptyTrash() on empty trash = false, want true")
	}
}
