package animator

// Window is the set of vertices animated during one cycle together with
// the contiguous range covering them. Lower and Upper are the smallest and
// largest selected index; Indices may repeat.
type Window struct {
	Indices []int
	Lower   int
	Upper   int
}

// Len returns the number of vertices uploaded for the window, Upper-Lower.
func (w Window) Len() int {
	return w.Upper - w.Lower
}

// Empty reports whether the upload range has zero length.
func (w Window) Empty() bool {
	return w.Upper <= w.Lower
}

// SelectWindow draws k indices from [0, n) with replacement and tracks
// their running minimum and maximum.
func SelectWindow(src IndexSource, k, n int) Window {
	w := Window{Indices: make([]int, 0, k)}
	w.fill(src, k, n)
	return w
}

// fill reuses the window's index storage for a new selection.
func (w *Window) fill(src IndexSource, k, n int) {
	w.Indices = w.Indices[:0]
	for i := 0; i < k; i++ {
		idx := src.NextIndex(n)
		w.Indices = append(w.Indices, idx)

		if i == 0 {
			w.Lower, w.Upper = idx, idx
			continue
		}
		if idx < w.Lower {
			w.Lower = idx
		}
		if idx > w.Upper {
			w.Upper = idx
		}
	}
}
