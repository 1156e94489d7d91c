package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSpecAndScriptChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	write := func(name string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x: 1\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	expect := func(name string, kind ChangeKind) {
		t.Helper()
		timeout := time.After(2 * time.Second)
		for {
			select {
			case c := <-w.Events:
				if filepath.Base(c.Path) != name {
					continue
				}
				if c.Kind != kind {
					t.Fatalf("%s: kind = %v, want %v", name, c.Kind, kind)
				}
				return
			case err := <-w.Errors:
				t.Fatalf("watcher error: %v", err)
			case <-timeout:
				t.Fatalf("no event for %s", name)
			}
		}
	}

	write("notes.txt")
	write("player.yaml")
	expect("player.yaml", ChangeSpec)
	write("enemy_patrol.tengo")
	expect("enemy_patrol.tengo", ChangeScript)
}

func TestWatcherCloseClosesChannels(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatalf("Events should be closed")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
