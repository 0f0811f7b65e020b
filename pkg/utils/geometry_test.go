package utils

import (
	"math"
	"testing"
)

func TestRectOverlaps(t *testing.T) {
	base := NewRect(0, 0, 10, 10)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"inside", NewRect(2, 2, 2, 2), true},
		{"partial overlap", NewRect(5, 5, 10, 10), true},
		{"edge touching right", NewRect(10, 0, 5, 5), false},
		{"edge touching bottom", NewRect(0, 10, 5, 5), false},
		{"far away", NewRect(100, 100, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps(%v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("reverse Overlaps(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 5, 5)

	if !r.Contains(10, 20) {
		t.Error("top-left corner should be contained")
	}
	if !r.Contains(12.5, 22.5) {
		t.Error("center should be contained")
	}
	if r.Contains(15, 22) {
		t.Error("right edge should not be contained")
	}
	if r.Contains(12, 25) {
		t.Error("bottom edge should not be contained")
	}
}

func TestRectCenter(t *testing.T) {
	cx, cy := NewRect(10, 20, 30, 40).Center()
	if cx != 25 || cy != 40 {
		t.Errorf("expected center (25, 40), got (%f, %f)", cx, cy)
	}
}

func TestClampWithNegativeInfinity(t *testing.T) {
	if got := Clamp(-1e9, math.Inf(-1), 0); got != -1e9 {
		t.Errorf("expected -1e9 to pass through unbounded lower clamp, got %f", got)
	}
	if got := Clamp(50, math.Inf(-1), 0); got != 0 {
		t.Errorf("expected 0, got %f", got)
	}
}

func TestNormalize(t *testing.T) {
	x, y, ok := Normalize(3, 4)
	if !ok {
		t.Fatal("expected ok for non-zero vector")
	}
	if math.Abs(x-0.6) > 1e-9 || math.Abs(y-0.8) > 1e-9 {
		t.Errorf("expected (0.6, 0.8), got (%f, %f)", x, y)
	}

	if _, _, ok := Normalize(0, 0); ok {
		t.Error("zero vector should not normalize")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.5); got != 15 {
		t.Errorf("expected 15, got %f", got)
	}
	if got := Lerp(10, 20, 1); got != 20 {
		t.Errorf("expected 20, got %f", got)
	}
}
