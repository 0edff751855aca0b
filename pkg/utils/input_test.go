package utils

import "testing"

func TestTouchDragInitialState(t *testing.T) {
	var d TouchDrag
	if d.State() != DragStateNone {
		t.Errorf("State() = %v, want DragStateNone", d.State())
	}
	if d.IsDragging() {
		t.Error("IsDragging() should be false before any touch")
	}
	if got := d.Move(100); got != 0 {
		t.Errorf("Move() without Begin = %v, want 0", got)
	}
}

func TestTouchDragSequence(t *testing.T) {
	var d TouchDrag
	d.Begin(500)
	if d.State() != DragStateStarted {
		t.Fatalf("State() after Begin = %v, want DragStateStarted", d.State())
	}

	tests := []struct {
		name string
		y    float64
		want float64
	}{
		{"上滑为正", 460, 40},
		{"继续上滑", 400, 60},
		{"下滑为负", 430, -30},
		{"不动", 430, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Move(tt.y); got != tt.want {
				t.Errorf("Move(%v) = %v, want %v", tt.y, got, tt.want)
			}
			if d.State() != DragStateDragging {
				t.Errorf("State() = %v, want DragStateDragging", d.State())
			}
		})
	}

	d.End()
	if d.State() != DragStateEnded {
		t.Errorf("State() after End = %v, want DragStateEnded", d.State())
	}
	if got := d.Move(0); got != 0 {
		t.Errorf("Move() after End = %v, want 0", got)
	}
}

func TestTouchDragEndWithoutBegin(t *testing.T) {
	var d TouchDrag
	d.End()
	if d.State() != DragStateNone {
		t.Errorf("End() without Begin moved state to %v", d.State())
	}
}

func TestTouchDragReset(t *testing.T) {
	var d TouchDrag
	d.Begin(100)
	d.Move(50)
	d.Reset()
	if d.IsDragging() {
		t.Error("IsDragging() should be false after Reset")
	}
}
