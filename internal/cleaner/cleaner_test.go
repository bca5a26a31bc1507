package cleaner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dhqdev/limpeza-david/internal/cleaner"
	"github.com/dhqdev/limpeza-david/internal/logging"
	"github.com/dhqdev/limpeza-david/internal/safety"
	"github.com/dhqdev/limpeza-david/internal/testutil"
)

func newCleaner(f *testutil.Fixture) *cleaner.Cleaner {
	filter := safety.New(f.Paths(), logging.Discard(), nil, nil)
	return cleaner.New(filter, logging.Discard())
}

func TestCleanSkipsVanishedFilesSilently(t *testing.T) {
	f := testutil.NewFixture(t)
	c := newCleaner(f)

	a := f.CreateFileAt(f.UserTemp, "a.tmp", 100)
	b := f.CreateFileAt(f.UserTemp, "b.tmp", 200)
	gone := f.CreateFileAt(f.UserTemp, "gone.tmp", 300)
	if err := os.Remove(gone); err != nil {
		t.Fatal(err)
	}

	out := c.Clean([]string{a, b, gone})

	if out.Removed != 2 {
		t.Errorf("Removed = %d, want 2", out.Removed)
	}
	if out.Errors != 0 {
		t.Errorf("Errors = %d, want 0 (vanished file is not an error)", out.Errors)
	}
	if out.BytesFreed != 300 {
		t.Errorf("BytesFreed = %d, want 300", out.BytesFreed)
	}
	f.AssertFileNotExists(a)
	f.AssertFileNotExists(b)
}

func TestCleanRefusesProtectedPath(t *testing.T) {
	f := testutil.NewFixture(t)
	c := newCleaner(f)

	protected := filepath.Join(f.ProtectedDir(), "keep.tmp")
	if err := os.WriteFile(protected, []byte("important"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := c.Clean([]string{protected})

	if out.Removed != 0 {
		t.Errorf("Removed = %d, want 0", out.Removed)
	}
	if out.Errors != 1 {
		t.Errorf("Errors = %d, want 1 (safety rejection counts as error)", out.Errors)
	}
	f.AssertFileExists(protected)
}

func TestCleanContinuesPastFailures(t *testing.T) {
	f := testutil.NewFixture(t)
	c := newCleaner(f)

	protected := filepath.Join(f.ProtectedDir(), "keep.tmp")
	if err := os.WriteFile(protected, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	after := f.CreateFileAt(f.UserTemp, "after.tmp", 50)

	out := c.Clean([]string{protected, after})

	if out.Removed != 1 || out.Errors != 1 {
		t.Errorf("Removed = %d, Errors = %d; want 1 and 1", out.Removed, out.Errors)
	}
	f.AssertFileNotExists(after)
}

func TestCleanIsIdempotent(t *testing.T) {
	f := testutil.NewFixture(t)
	c := newCleaner(f)

	paths := []string{
		f.CreateFileAt(f.UserTemp, "one.tmp", 10),
		f.CreateFileAt(f.UserTemp, "two.tmp", 20),
	}

	first := c.Clean(paths)
	if first.Removed != 2 || first.Errors != 0 {
		t.Fatalf("first pass: Removed = %d, Errors = %d", first.Removed, first.Errors)
	}

	second := c.Clean(paths)
	if second.Removed != 0 || second.Errors != 0 || second.BytesFreed != 0 {
		t.Errorf("second pass should be a no-op, got %+v", second)
	}
}

func TestCleanRemovesDirectoriesRecursively(t *testing.T) {
	f := testutil.NewFixture(t)
	c := newCleaner(f)

	dir := filepath.Join(f.UserTemp, "session-cache")
	f.CreateFileAt(dir, "page1.html", 100)
	f.CreateFileAt(filepath.Join(dir, "img"), "logo.png", 400)

	out := c.Clean([]string{dir})

	if out.Removed != 1 {
		t.Errorf("Removed = %d, want 1 (the directory)", out.Removed)
	}
	if out.BytesFreed != 500 {
		t.Errorf("BytesFreed = %d, want 500 (recursive content size)", out.BytesFreed)
	}
	f.AssertFileNotExists(dir)
}

func TestCleanDryRunDeletesNothing(t *testing.T) {
	f := testutil.NewFixture(t)
	c := newCleaner(f)
	c.SetDryRun(true)

	path := f.CreateFileAt(f.UserTemp, "kept.tmp", 123)

	out := c.Clean([]string{path})

	if out.Removed != 1 || out.BytesFreed != 123 {
		t.Errorf("dry run outcome = %+v, want counts as if deleted", out)
	}
	f.AssertFileExists(path)
}
