package engine

import "testing"

func TestCommitZoomNormalizesBounds(t *testing.T) {
	e := New()
	e.BeginDrag("2024-06-01")
	e.UpdateDrag("2024-03-01")
	e.CommitZoom()

	v := e.Viewport()
	if v.Left != "2024-03-01" || v.Right != "2024-06-01" {
		t.Fatalf("viewport = %+v, want [2024-03-01, 2024-06-01]", v)
	}
	if e.Drag().Active() {
		t.Fatal("drag still active after commit")
	}
}

func TestCommitZoomForwardDrag(t *testing.T) {
	e := New()
	e.BeginDrag("2024-03-01")
	e.UpdateDrag("2024-06-01")
	e.CommitZoom()

	v := e.Viewport()
	if v.Left != "2024-03-01" || v.Right != "2024-06-01" {
		t.Fatalf("viewport = %+v, want [2024-03-01, 2024-06-01]", v)
	}
}

func TestCommitZoomDegenerateDrag(t *testing.T) {
	e := New()
	e.BeginDrag("2024-03-01")
	e.CommitZoom()

	if !e.Viewport().Full() {
		t.Fatalf("degenerate drag changed viewport: %+v", e.Viewport())
	}
	if e.Drag().Active() {
		t.Fatal("drag still active after degenerate commit")
	}
}

func TestCommitZoomAnchorEqualsCursor(t *testing.T) {
	e := New()
	e.BeginDrag("2024-01-01")
	e.UpdateDrag("2024-06-01")
	e.CommitZoom()

	// A second gesture that never leaves its start column must not touch
	// the viewport, only clear the drag.
	e.BeginDrag("2024-03-01")
	e.UpdateDrag("2024-03-01")
	e.CommitZoom()

	v := e.Viewport()
	if v.Left != "2024-01-01" || v.Right != "2024-06-01" {
		t.Fatalf("viewport changed by anchor==cursor commit: %+v", v)
	}
	if e.Drag().Active() {
		t.Fatal("drag still active after anchor==cursor commit")
	}
}

func TestCommitZoomWithoutDrag(t *testing.T) {
	e := New()
	e.CommitZoom()
	if !e.Viewport().Full() {
		t.Fatalf("commit without drag changed viewport: %+v", e.Viewport())
	}
}

func TestUpdateDragIgnoredWhenIdle(t *testing.T) {
	e := New()
	e.UpdateDrag("2024-03-01")
	if e.Drag().Active() {
		t.Fatal("motion without press started a drag")
	}
}

func TestBeginDragIgnoredWhileDragging(t *testing.T) {
	e := New()
	e.BeginDrag("2024-03-01")
	e.BeginDrag("2024-05-01")
	if e.Drag().Anchor != "2024-03-01" {
		t.Fatalf("second press replaced anchor: %+v", e.Drag())
	}
}

func TestResetZoomClearsEverything(t *testing.T) {
	e := New()
	e.BeginDrag("2024-01-01")
	e.UpdateDrag("2024-02-01")
	e.CommitZoom()
	e.BeginDrag("2024-01-10")
	e.ResetZoom()

	if !e.Viewport().Full() {
		t.Fatalf("viewport not reset: %+v", e.Viewport())
	}
	if e.Drag().Active() {
		t.Fatal("drag survived reset")
	}
}

func TestResetZoomIdempotent(t *testing.T) {
	e := New()
	e.ResetZoom()
	e.ResetZoom()
	if !e.Viewport().Full() || e.Drag().Active() {
		t.Fatal("reset from idle is not a clean no-op")
	}
}
