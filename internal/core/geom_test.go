package core

import "testing"

func TestMax(t *testing.T) {
	tests := []struct {
		a, b, expected int
	}{
		{2, 20, 20},
		{2, -5, 2},
		{0, 0, 0},
		{-3, -1, -1},
	}

	for _, tc := range tests {
		if got := Max(tc.a, tc.b); got != tc.expected {
			t.Errorf("Max(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}
