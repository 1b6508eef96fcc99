package debug

import (
	"strings"
	"testing"
	"time"
)

func TestOverlayLines(t *testing.T) {
	o := NewOverlay("cubes", "Rendering simple static mesh.", true)
	o.Update(16 * time.Millisecond)
	o.SetStatus("Uploads: 3")

	lines := o.Lines()
	want := []string{
		"gfx-examples/cubes",
		"Description: Rendering simple static mesh.",
		"Frame:  16.000[ms]",
		"Uploads: 3",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestOverlayRefreshInterval(t *testing.T) {
	o := NewOverlay("cubes", "", true)

	for i := 0; i < 99; i++ {
		if o.Update(10 * time.Millisecond) {
			t.Fatalf("refreshed early at frame %d", i)
		}
	}
	if !o.Update(10 * time.Millisecond) {
		t.Fatal("expected refresh after one second of frames")
	}
	if fps := o.FPS(); fps < 99.9 || fps > 100.1 {
		t.Errorf("fps = %v, want 100", fps)
	}
	if ft := o.FrameTime(); ft != 10*time.Millisecond {
		t.Errorf("frame time = %v, want 10ms", ft)
	}
}

func TestOverlayTitle(t *testing.T) {
	o := NewOverlay("buffer-updates", "", false)
	if got := o.Title(); got != "gfx-examples/buffer-updates" {
		t.Errorf("disabled title = %q", got)
	}

	o.Toggle()
	o.SetStatus("Cycles: 2")
	title := o.Title()
	if !strings.HasPrefix(title, "gfx-examples/buffer-updates | ") {
		t.Errorf("enabled title = %q", title)
	}
	if !strings.HasSuffix(title, "Cycles: 2") {
		t.Errorf("title missing status: %q", title)
	}
}

func TestOverlaySetStatusReplaces(t *testing.T) {
	o := NewOverlay("x", "", true)
	o.SetStatus("a", "b")
	o.SetStatus("c")

	lines := o.Lines()
	if got := lines[len(lines)-1]; got != "c" || len(lines) != 4 {
		t.Errorf("status not replaced: %q", lines)
	}
}
