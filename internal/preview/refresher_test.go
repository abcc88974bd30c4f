package preview_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/markview/internal/preview"
)

func waitForChange(t *testing.T, ch <-chan string, want string) {
	t.Helper()
	select {
	case got := <-ch:
		if got != want {
			t.Errorf("expected change for %q, got %q", want, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for change to %q", want)
	}
}

func TestRefresherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.adoc")
	if err := os.WriteFile(path, []byte("= Doc"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	changes := make(chan string, 8)
	r, err := preview.NewRefresher(func(p string) { changes <- p },
		preview.WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("new refresher: %v", err)
	}
	defer r.Close()

	if err := r.Track(path); err != nil {
		t.Fatalf("track: %v", err)
	}

	if err := os.WriteFile(path, []byte("= Doc\nchanged"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	waitForChange(t, changes, path)
}

func TestRefresherCoalescesRapidWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.adoc")
	if err := os.WriteFile(path, []byte("v0"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	changes := make(chan string, 8)
	r, err := preview.NewRefresher(func(p string) { changes <- p },
		preview.WithDebounce(150*time.Millisecond))
	if err != nil {
		t.Fatalf("new refresher: %v", err)
	}
	defer r.Close()

	if err := r.Track(path); err != nil {
		t.Fatalf("track: %v", err)
	}

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("burst"), 0o644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	waitForChange(t, changes, path)
	select {
	case extra := <-changes:
		t.Errorf("expected a single coalesced change, got extra %q", extra)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestRefresherIgnoresUntrackedFiles(t *testing.T) {
	dir := t.TempDir()
	tracked := filepath.Join(dir, "tracked.adoc")
	other := filepath.Join(dir, "other.adoc")
	for _, p := range []string{tracked, other} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	changes := make(chan string, 8)
	r, err := preview.NewRefresher(func(p string) { changes <- p },
		preview.WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("new refresher: %v", err)
	}
	defer r.Close()

	if err := r.Track(tracked); err != nil {
		t.Fatalf("track: %v", err)
	}

	if err := os.WriteFile(other, []byte("y"), 0o644); err != nil {
		t.Fatalf("rewrite other: %v", err)
	}
	select {
	case got := <-changes:
		t.Errorf("expected no change for untracked file, got %q", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestRefresherUntrack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.adoc")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	r, err := preview.NewRefresher(nil)
	if err != nil {
		t.Fatalf("new refresher: %v", err)
	}
	defer r.Close()

	if err := r.Untrack(path); !errors.Is(err, preview.ErrNotTracking) {
		t.Errorf("expected ErrNotTracking, got %v", err)
	}

	if err := r.Track(path); err != nil {
		t.Fatalf("track: %v", err)
	}
	if len(r.Tracked()) != 1 {
		t.Errorf("expected 1 tracked path, got %d", len(r.Tracked()))
	}
	if err := r.Untrack(path); err != nil {
		t.Errorf("untrack: %v", err)
	}
	if len(r.Tracked()) != 0 {
		t.Errorf("expected no tracked paths, got %d", len(r.Tracked()))
	}
}

func TestRefresherClosed(t *testing.T) {
	r, err := preview.NewRefresher(nil)
	if err != nil {
		t.Fatalf("new refresher: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("double close: %v", err)
	}
	if err := r.Track("doc.adoc"); !errors.Is(err, preview.ErrRefresherClosed) {
		t.Errorf("expected ErrRefresherClosed, got %v", err)
	}
}
