package fswatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func startWatcher(t *testing.T, dir string, files []string) <-chan struct{} {
	t.Helper()
	changed := make(chan struct{}, 10)
	w := New(dir, files, 50*time.Millisecond, func(context.Context) {
		changed <- struct{}{}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Run: %v", err)
		}
	})

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	return changed
}

func TestWatcherFiresOnTrackedWrite(t *testing.T) {
	dir := t.TempDir()
	changed := startWatcher(t, dir, []string{filepath.Join(dir, "tools.yaml")})

	if err := os.WriteFile(filepath.Join(dir, "tools.yaml"), []byte("- id: a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("expected change callback after writing tracked file")
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	changed := startWatcher(t, dir, []string{"guide.yaml"})

	path := filepath.Join(dir, "guide.yaml")
	for i := range 5 {
		if err := os.WriteFile(path, []byte{byte('a' + i)}, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("expected change callback")
	}
	select {
	case <-changed:
		t.Fatal("expected a single callback for a burst of writes")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherIgnoresUntrackedFiles(t *testing.T) {
	dir := t.TempDir()
	changed := startWatcher(t, dir, []string{"guide.yaml"})

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
		t.Fatal("untracked file must not trigger a callback")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherMissingDir(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "nope"), []string{"guide.yaml"}, 0, func(context.Context) {})
	if err := w.Run(context.Background()); err == nil {
		t.Fatal("expected error when directory does not exist")
	}
}

func TestRelevant(t *testing.T) {
	w := New("/data", []string{"/data/tools.yaml"}, 0, nil)
	tests := []struct {
		event fsnotify.Event
		want  bool
	}{
		{fsnotify.Event{Name: "/data/tools.yaml", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "/data/tools.yaml", Op: fsnotify.Rename}, true},
		{fsnotify.Event{Name: "/data/tools.yaml", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "/data/other.yaml", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		if got := w.relevant(tt.event); got != tt.want {
			t.Errorf("relevant(%v) = %v, want %v", tt.event, got, tt.want)
		}
	}
}
