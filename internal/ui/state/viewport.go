package state

// Viewport tracks which slice of a list of rows is visible.
type Viewport struct {
	Offset int
}

// Follow adjusts the offset so the cursor row stays visible when at most
// maxVisible of total rows fit on screen. A negative cursor means nothing is
// focused; the offset is only clamped.
func (v *Viewport) Follow(cursor, total, maxVisible int) {
	if total == 0 || maxVisible <= 0 {
		v.Offset = 0
		return
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
	if cursor < 0 {
		return
	}
	if cursor >= total {
		cursor = total - 1
	}
	if cursor < v.Offset {
		v.Offset = cursor
	}
	upper := v.Offset + maxVisible - 1
	if cursor > upper {
		v.Offset = cursor - maxVisible + 1
		if v.Offset > maxOffset {
			v.Offset = maxOffset
		}
	}
}

// Window returns the [start, end) bounds of the visible rows.
func (v Viewport) Window(total, maxVisible int) (int, int) {
	if maxVisible <= 0 || total <= maxVisible {
		return 0, total
	}
	start := v.Offset
	if start < 0 {
		start = 0
	}
	if start+maxVisible > total {
		start = total - maxVisible
	}
	return start, start + maxVisible
}

// Reset scrolls back to the top.
func (v *Viewport) Reset() {
	v.Offset = 0
}
