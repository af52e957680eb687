// file: internal/watcher/watcher_test.go
// version: 1.0.0
// guid: 3f5a7b9c-1d2e-4f3a-8b4c-5d6e7f8a9b0c

package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebounceSingleEvent(t *testing.T) {
	dir := t.TempDir()

	var calls atomic.Int32
	w := New(func(sourceDir string) {
		calls.Add(1)
	}, 100*time.Millisecond)

	if err := w.Start(dir); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	f := filepath.Join(dir, "new.mp3")
	if err := os.WriteFile(f, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}

	// Wait for debounce + buffer.
	time.Sleep(300 * time.Millisecond)

	if c := calls.Load(); c != 1 {
		t.Errorf("expected 1 callback, got %d", c)
	}
}

func TestDebounceCoalescesBurst(t *testing.T) {
	dir := t.TempDir()

	var calls atomic.Int32
	w := New(func(sourceDir string) {
		calls.Add(1)
	}, 200*time.Millisecond)

	if err := w.Start(dir); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	for i := 0; i < 5; i++ {
		f := filepath.Join(dir, "burst"+string(rune('a'+i))+".mp3")
		if err := os.WriteFile(f, []byte("data"), 0644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	time.Sleep(500 * time.Millisecond)

	if c := calls.Load(); c != 1 {
		t.Errorf("expected a single coalesced callback, got %d", c)
	}
}

func TestIgnoresNonAudioFiles(t *testing.T) {
	dir := t.TempDir()

	var calls atomic.Int32
	w := New(func(sourceDir string) {
		calls.Add(1)
	}, 100*time.Millisecond)

	if err := w.Start(dir); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	f := filepath.Join(dir, "cover.jpg")
	if err := os.WriteFile(f, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(300 * time.Millisecond)

	if c := calls.Load(); c != 0 {
		t.Errorf("expected no callbacks for non-audio files, got %d", c)
	}
}

func TestStopBeforeStart(t *testing.T) {
	w := New(nil, 0)
	w.Stop() // must not panic or block
}

func TestStartTwice(t *testing.T) {
	dir := t.TempDir()

	w := New(nil, 0)
	if err := w.Start(dir); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := w.Start(dir); err != nil {
		t.Errorf("second Start should be a no-op, got %v", err)
	}
}
