package control

import "testing"

func TestInterp(t *testing.T) {
	in := Range{Min: 50, Max: 200}
	out := Range{Min: -63, Max: 0}

	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"at input min", 50, -63},
		{"at input max", 200, 0},
		{"below input min", 10, -63},
		{"above input max", 500, 0},
		{"midpoint", 125, -31.5},
		{"negative input", -20, -63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interp(tt.v, in, out); got != tt.want {
				t.Errorf("Interp(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestInterp_DescendingOutput(t *testing.T) {
	in := Range{Min: -63, Max: 0}
	out := Range{Min: BarEmpty, Max: BarFull}

	if got := Interp(-63, in, out); got != BarEmpty {
		t.Errorf("Interp(min) = %v, want %v", got, BarEmpty)
	}
	if got := Interp(0, in, out); got != BarFull {
		t.Errorf("Interp(max) = %v, want %v", got, BarFull)
	}
	if got := Interp(-31.5, in, out); got != 275 {
		t.Errorf("Interp(mid) = %v, want 275", got)
	}
}

func TestInterp_Monotonic(t *testing.T) {
	in := Range{Min: 50, Max: 200}
	out := Range{Min: -63, Max: 6}

	prev := Interp(0, in, out)
	for v := 1.0; v <= 250; v++ {
		got := Interp(v, in, out)
		if got < prev {
			t.Fatalf("Interp(%v) = %v decreased from %v", v, got, prev)
		}
		if got < out.Min || got > out.Max {
			t.Fatalf("Interp(%v) = %v outside [%v, %v]", v, got, out.Min, out.Max)
		}
		prev = got
	}
}

func TestInterp_SinglePointInput(t *testing.T) {
	in := Range{Min: 10, Max: 10}
	out := Range{Min: 0, Max: 1}

	if got := Interp(5, in, out); got != 0 {
		t.Errorf("below = %v, want 0", got)
	}
	if got := Interp(10, in, out); got != 1 {
		t.Errorf("at = %v, want 1", got)
	}
}
