package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 10, 10, true},
		{"inside", 12, 12, true},
		{"last column", 14, 12, true},
		{"right edge is exclusive", 15, 12, false},
		{"bottom edge is exclusive", 12, 15, false},
		{"left of rect", 9, 12, false},
		{"above rect", 12, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 10, 6)
	if r.Right() != 13 {
		t.Errorf("Right() = %d, expected 13", r.Right())
	}
	if r.Bottom() != 10 {
		t.Errorf("Bottom() = %d, expected 10", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 0, 0},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}

func TestViewport(t *testing.T) {
	tests := []struct {
		name                     string
		focus, view, total, want int
	}{
		{"content fits exactly", 3, 10, 10, 0},
		{"content smaller is centered", 1, 10, 6, -2},
		{"focus near start", 2, 10, 40, 0},
		{"focus in middle", 20, 10, 40, 15},
		{"focus near end", 39, 10, 40, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Viewport(tt.focus, tt.view, tt.total); got != tt.want {
				t.Errorf("Viewport(%d, %d, %d) = %d, expected %d", tt.focus, tt.view, tt.total, got, tt.want)
			}
		})
	}
}
