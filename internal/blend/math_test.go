package blend

import "testing"

func TestDiv255(t *testing.T) {
	for x := 0; x <= 255*255; x++ {
		want := (2*x + 255) / 510 // round(x / 255)
		if got := div255(uint16(x)); int(got) != want {
			t.Fatalf("div255(%d) = %d, want %d", x, got, want)
		}
	}
}

// TestMulDiv255 tests the multiply and divide by 255 helper function.
func TestMulDiv255(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want byte
	}{
		{"zero * zero", 0, 0, 0},
		{"zero * max", 0, 255, 0},
		{"max * zero", 255, 0, 0},
		{"max * max", 255, 255, 255},
		{"half * half", 128, 128, 64},
		{"255 * 128", 255, 128, 128},
		{"128 * 255", 128, 255, 128},
		{"1 * 1", 1, 1, 0},
		{"10 * 10", 10, 10, 0}, // 100/255 = 0.39 -> 0
		{"100 * 100", 100, 100, 39},
		{"200 * 200", 200, 200, 157},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mulDiv255(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMulDiv255Identity(t *testing.T) {
	for a := 0; a <= 255; a++ {
		if got := mulDiv255(byte(a), 255); int(got) != a {
			t.Errorf("mulDiv255(%d, 255) = %d, want %d", a, got, a)
		}
	}
}

func TestAddClamp(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want byte
	}{
		{"zero + zero", 0, 0, 0},
		{"zero + max", 0, 255, 255},
		{"max + max (clamped)", 255, 255, 255},
		{"100 + 100", 100, 100, 200},
		{"200 + 100 (clamped)", 200, 100, 255},
		{"127 + 128", 127, 128, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := addClamp(tt.a, tt.b); got != tt.want {
				t.Errorf("addClamp(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
