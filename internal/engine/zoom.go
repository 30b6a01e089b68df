package engine

// Viewport is the visible date window of the chart. Bounds are ISO dates
// (YYYY-MM-DD), so string comparison is chronological comparison. Empty
// strings mean full extent.
type Viewport struct {
	Left  string
	Right string
}

// Full reports whether the viewport covers the whole loaded series.
func (v Viewport) Full() bool {
	return v.Left == "" && v.Right == ""
}

// Drag is an in-progress zoom gesture. Anchor is the press position, Cursor
// the latest motion position, both as series dates. A zero Drag means idle.
type Drag struct {
	Anchor string
	Cursor string
}

// Active reports whether a drag gesture is in progress.
func (d Drag) Active() bool {
	return d.Anchor != ""
}

// BeginDrag starts a zoom gesture anchored at date. The cursor stays empty
// until the first motion. A press while another gesture is active is
// ignored.
func (e *Engine) BeginDrag(date string) {
	if e.drag.Active() || date == "" {
		return
	}
	e.drag = Drag{Anchor: date}
}

// UpdateDrag moves the gesture's cursor. Motion outside an active gesture is
// a no-op.
func (e *Engine) UpdateDrag(date string) {
	if !e.drag.Active() || date == "" {
		return
	}
	e.drag.Cursor = date
}

// CommitZoom ends the gesture. A proper drag sets the viewport to the
// normalized (anchor, cursor) span; a degenerate one (no gesture, missing
// endpoint, or anchor == cursor) changes nothing. The drag state is cleared
// either way.
func (e *Engine) CommitZoom() {
	d := e.drag
	e.drag = Drag{}
	if !d.Active() || d.Cursor == "" || d.Anchor == d.Cursor {
		return
	}
	left, right := d.Anchor, d.Cursor
	if left > right {
		left, right = right, left
	}
	e.viewport = Viewport{Left: left, Right: right}
}

// ResetZoom restores the full-extent viewport and abandons any in-progress
// gesture. Safe to call in any state.
func (e *Engine) ResetZoom() {
	e.viewport = Viewport{}
	e.drag = Drag{}
}
