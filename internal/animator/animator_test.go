package animator

import (
	"errors"
	"testing"

	"github.com/Faultbox/gfx-examples/pkg/geometry"
	"github.com/Faultbox/gfx-examples/pkg/math"
)

// scriptedSource replays a fixed list of indices, cycling when exhausted.
type scriptedSource struct {
	indices []int
	pos     int
}

func (s *scriptedSource) NextIndex(n int) int {
	idx := s.indices[s.pos%len(s.indices)] % n
	s.pos++
	return idx
}

type upload struct {
	first    int
	vertices []geometry.FlatVertex
}

// recordingUploader keeps a copy of every upload.
type recordingUploader struct {
	uploads []upload
	err     error
}

func (r *recordingUploader) UpdateVertices(first int, vertices []geometry.FlatVertex) error {
	if r.err != nil {
		return r.err
	}
	r.uploads = append(r.uploads, upload{
		first:    first,
		vertices: append([]geometry.FlatVertex(nil), vertices...),
	})
	return nil
}

func newFan(t *testing.T, n int) []geometry.FlatVertex {
	t.Helper()
	fan, err := geometry.BuildFan(n)
	if err != nil {
		t.Fatalf("BuildFan(%d): %v", n, err)
	}
	return fan.Vertices
}

func TestNewValidation(t *testing.T) {
	base := newFan(t, 8)
	up := &recordingUploader{}
	src := &scriptedSource{indices: []int{1}}

	if _, err := New(nil, up, src, Config{UpdateCount: 1}); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("expected ErrEmptyMesh, got %v", err)
	}
	if _, err := New(base, up, src, Config{UpdateCount: 0}); !errors.Is(err, ErrUpdateCount) {
		t.Errorf("expected ErrUpdateCount, got %v", err)
	}

	a, err := New(base, up, src, Config{UpdateCount: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.Config().Duration != DefaultDuration {
		t.Errorf("expected default duration, got %v", a.Config().Duration)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(128)
	if cfg.UpdateCount != 16 {
		t.Errorf("expected 16 update indices, got %d", cfg.UpdateCount)
	}
	if cfg.Duration != 1 {
		t.Errorf("expected duration 1, got %v", cfg.Duration)
	}
	if got := DefaultConfig(3).UpdateCount; got != 1 {
		t.Errorf("expected at least one update index, got %d", got)
	}
}

func TestUpdateSelectsThenUploads(t *testing.T) {
	base := newFan(t, 16)
	up := &recordingUploader{}
	src := &scriptedSource{indices: []int{7, 3, 9, 5}}

	a, err := New(base, up, src, Config{UpdateCount: 4, Duration: 1})
	if err != nil {
		t.Fatal(err)
	}

	// First frame only selects.
	if err := a.Update(10); err != nil {
		t.Fatal(err)
	}
	if !a.Animating() {
		t.Fatal("expected animating after first update")
	}
	if len(up.uploads) != 0 {
		t.Fatalf("expected no upload on selection frame, got %d", len(up.uploads))
	}

	w := a.Window()
	if w.Lower != 3 || w.Upper != 9 {
		t.Fatalf("window = [%d, %d], want [3, 9]", w.Lower, w.Upper)
	}

	// Quarter of the way in: ease(0.25) = 0.5.
	if err := a.Update(10.25); err != nil {
		t.Fatal(err)
	}
	if len(up.uploads) != 1 {
		t.Fatalf("expected 1 upload, got %d", len(up.uploads))
	}

	got := up.uploads[0]
	if got.first != 3 {
		t.Errorf("upload offset %d, want 3", got.first)
	}
	if len(got.vertices) != 6 {
		t.Errorf("upload length %d, want Upper-Lower = 6", len(got.vertices))
	}

	for _, idx := range []int{3, 5, 7} {
		v := got.vertices[idx-3]
		p := base[idx].Position()
		want := p.Add(p.Normalize().Scale(0.5))
		if !near(v.Position(), want) {
			t.Errorf("vertex %d at %v, want %v", idx, v.Position(), want)
		}
		if v.ABGR != base[idx].ABGR || v.NZ != base[idx].NZ {
			t.Errorf("vertex %d lost color or normal: %+v", idx, v)
		}
	}

	// Unselected interior slots keep the snapshot.
	for _, idx := range []int{4, 6, 8} {
		if got.vertices[idx-3] != base[idx] {
			t.Errorf("interior vertex %d changed: %+v", idx, got.vertices[idx-3])
		}
	}
}

func TestUpdatePeakDisplacement(t *testing.T) {
	base := newFan(t, 16)
	up := &recordingUploader{}
	src := &scriptedSource{indices: []int{2, 6}}

	a, err := New(base, up, src, Config{UpdateCount: 2, Duration: 1})
	if err != nil {
		t.Fatal(err)
	}
	a.Update(0)
	a.Update(0.5)

	v := up.uploads[0].vertices[0]
	want := base[2].Position().Scale(2)
	if !near(v.Position(), want) {
		t.Errorf("peak position %v, want %v", v.Position(), want)
	}
}

func TestUpdateCenterVertexStaysPut(t *testing.T) {
	base := newFan(t, 16)
	up := &recordingUploader{}
	src := &scriptedSource{indices: []int{0, 4}}

	a, err := New(base, up, src, Config{UpdateCount: 2, Duration: 1})
	if err != nil {
		t.Fatal(err)
	}
	a.Update(0)
	a.Update(0.5)

	v := up.uploads[0].vertices[0]
	if v.X != 0 || v.Y != 0 || v.Z != 0 {
		t.Errorf("center vertex moved to %v", v.Position())
	}
}

func TestUpdateCycleCompletes(t *testing.T) {
	const n = 128
	base := newFan(t, n)
	up := &recordingUploader{}
	src := NewRandSource(42)
	cfg := DefaultConfig(n)

	a, err := New(base, up, src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UpdateCount != 16 {
		t.Fatalf("expected K=16, got %d", cfg.UpdateCount)
	}

	now := float32(0)
	a.Update(now)
	first := a.Window()
	if len(first.Indices) != 16 {
		t.Fatalf("expected 16 indices, got %d", len(first.Indices))
	}

	for now < 1 {
		now += 1.0 / 60
		if err := a.Update(now); err != nil {
			t.Fatal(err)
		}
	}
	if a.Animating() {
		now += 1.0 / 60
		a.Update(now)
	}
	if a.Animating() {
		t.Fatal("expected idle after the duration elapsed")
	}
	if a.Stats().Cycles != 1 {
		t.Fatalf("expected 1 cycle, got %d", a.Stats().Cycles)
	}

	// The next frame starts a fresh selection.
	now += 1.0 / 60
	a.Update(now)
	if !a.Animating() {
		t.Fatal("expected a new cycle to start")
	}
	if a.Stats().Cycles != 2 {
		t.Errorf("expected 2 cycles, got %d", a.Stats().Cycles)
	}
	second := a.Window()
	same := true
	for i := range first.Indices {
		if first.Indices[i] != second.Indices[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("expected a freshly drawn window")
	}

	for _, u := range up.uploads {
		if u.first < 0 || u.first+len(u.vertices) > len(base) {
			t.Errorf("upload [%d, %d) outside mesh", u.first, u.first+len(u.vertices))
		}
	}
}

func TestUpdateNoFinalUpload(t *testing.T) {
	base := newFan(t, 16)
	up := &recordingUploader{}
	src := &scriptedSource{indices: []int{1, 9}}

	a, err := New(base, up, src, Config{UpdateCount: 2, Duration: 1})
	if err != nil {
		t.Fatal(err)
	}
	a.Update(0)
	a.Update(0.9)
	a.Update(1.5)

	if len(up.uploads) != 1 {
		t.Errorf("expected only the in-cycle upload, got %d", len(up.uploads))
	}
	if a.Animating() {
		t.Error("expected idle")
	}
}

func TestUpdateZeroLengthWindow(t *testing.T) {
	base := newFan(t, 16)
	up := &recordingUploader{}
	src := &scriptedSource{indices: []int{5}}

	a, err := New(base, up, src, Config{UpdateCount: 4, Duration: 1})
	if err != nil {
		t.Fatal(err)
	}
	a.Update(0)
	w := a.Window()
	if !w.Empty() || w.Len() != 0 {
		t.Fatalf("expected empty window, got [%d, %d]", w.Lower, w.Upper)
	}

	for _, now := range []float32{0.1, 0.5, 0.9} {
		if err := a.Update(now); err != nil {
			t.Fatalf("Update(%v): %v", now, err)
		}
	}
	if len(up.uploads) != 0 {
		t.Errorf("expected no uploads, got %d", len(up.uploads))
	}
	if a.Stats().SkippedUploads != 3 {
		t.Errorf("expected 3 skipped uploads, got %d", a.Stats().SkippedUploads)
	}
}

func TestUpdateDuplicateIndices(t *testing.T) {
	base := newFan(t, 16)
	up := &recordingUploader{}
	src := &scriptedSource{indices: []int{4, 8, 4, 8}}

	a, err := New(base, up, src, Config{UpdateCount: 4, Duration: 1})
	if err != nil {
		t.Fatal(err)
	}
	a.Update(0)
	if err := a.Update(0.5); err != nil {
		t.Fatal(err)
	}

	w := a.Window()
	if w.Lower != 4 || w.Upper != 8 {
		t.Fatalf("window = [%d, %d], want [4, 8]", w.Lower, w.Upper)
	}
	want := base[4].Position().Scale(2)
	if got := up.uploads[0].vertices[0].Position(); !near(got, want) {
		t.Errorf("duplicate index vertex at %v, want %v", got, want)
	}
}

func TestUpdateNoDrift(t *testing.T) {
	base := newFan(t, 16)
	up := &recordingUploader{}
	src := &scriptedSource{indices: []int{3, 6}}

	a, err := New(base, up, src, Config{UpdateCount: 2, Duration: 1})
	if err != nil {
		t.Fatal(err)
	}

	// Run several cycles over the same window.
	now := float32(0)
	for cycle := 0; cycle < 3; cycle++ {
		a.Update(now)
		a.Update(now + 0.5)
		a.Update(now + 2)
		now += 3
	}

	peaks := 0
	want := base[3].Position().Scale(2)
	for _, u := range up.uploads {
		peaks++
		if got := u.vertices[0].Position(); !near(got, want) {
			t.Errorf("cycle peak %v, want %v", got, want)
		}
	}
	if peaks != 3 {
		t.Errorf("expected 3 peak uploads, got %d", peaks)
	}
}

func TestUpdateUploadError(t *testing.T) {
	base := newFan(t, 16)
	boom := errors.New("device lost")
	up := &recordingUploader{err: boom}
	src := &scriptedSource{indices: []int{1, 5}}

	a, err := New(base, up, src, Config{UpdateCount: 2, Duration: 1})
	if err != nil {
		t.Fatal(err)
	}
	a.Update(0)
	if err := a.Update(0.5); !errors.Is(err, boom) {
		t.Errorf("expected wrapped upload error, got %v", err)
	}
}

func TestNewCopiesBase(t *testing.T) {
	base := newFan(t, 8)
	up := &recordingUploader{}
	src := &scriptedSource{indices: []int{2, 4}}

	a, err := New(base, up, src, Config{UpdateCount: 2, Duration: 1})
	if err != nil {
		t.Fatal(err)
	}
	orig := base[2]
	base[2].X = 100

	a.Update(0)
	a.Update(0.5)
	want := orig.Position().Scale(2)
	if got := up.uploads[0].vertices[0].Position(); !near(got, want) {
		t.Errorf("animator read caller's mutated slice: got %v, want %v", got, want)
	}
}

func near(a, b math.Vec3) bool {
	return a.Distance(b) < 1e-5
}
