package geometry

import "testing"

func TestRectIntClamp(t *testing.T) {
	bounds := RectInt{Width: 100, Height: 80}

	tests := []struct {
		name string
		in   RectInt
		want RectInt
	}{
		{"inside", RectInt{X: 10, Y: 10, Width: 20, Height: 20}, RectInt{X: 10, Y: 10, Width: 20, Height: 20}},
		{"overhang right", RectInt{X: 90, Y: 0, Width: 30, Height: 10}, RectInt{X: 90, Y: 0, Width: 10, Height: 10}},
		{"overhang left", RectInt{X: -5, Y: 0, Width: 20, Height: 10}, RectInt{X: 0, Y: 0, Width: 15, Height: 10}},
		{"disjoint", RectInt{X: 200, Y: 200, Width: 10, Height: 10}, RectInt{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamp(bounds)
			if got != tt.want {
				t.Errorf("Clamp = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectIntEmpty(t *testing.T) {
	if (RectInt{Width: 1, Height: 1}).Empty() {
		t.Error("1x1 rect reported empty")
	}
	if !(RectInt{Width: 0, Height: 5}).Empty() {
		t.Error("zero-width rect not reported empty")
	}
}
