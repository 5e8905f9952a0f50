package utils

import "testing"

func TestAxisFromKeys(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		want        float64
	}{
		{"none", false, false, 0},
		{"left", true, false, -1},
		{"right", false, true, 1},
		{"both cancel", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AxisFromKeys(tt.left, tt.right); got != tt.want {
				t.Errorf("AxisFromKeys(%v, %v) = %v, want %v", tt.left, tt.right, got, tt.want)
			}
		})
	}
}
