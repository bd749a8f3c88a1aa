package image4bit

import "testing"

func rgb565(r, g, b uint16) uint16 {
	return r<<11 | g<<5 | b
}

func TestFromL8(t *testing.T) {
	for v := 0; v < 256; v++ {
		if got := FromL8(uint8(v)); got.Y != uint8(v)>>4 {
			t.Fatalf("FromL8(0x%02X) = %d, want %d", v, got.Y, v>>4)
		}
	}
}

func TestFromRGB565(t *testing.T) {
	tests := []struct {
		name string
		v    uint16
		want uint8
	}{
		{"black", 0x0000, 0},
		{"white", 0xFFFF, 15},
		{"red", rgb565(31, 0, 0), 4},
		{"green", rgb565(0, 63, 0), 9},
		{"blue", rgb565(0, 0, 31), 1},
		{"mid gray", rgb565(16, 32, 16), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromRGB565(tt.v); got.Y != tt.want {
				t.Errorf("FromRGB565(0x%04X) = %d, want %d", tt.v, got.Y, tt.want)
			}
		})
	}
}

func TestFromRGB565Monotonic(t *testing.T) {
	for r := uint16(0); r < 32; r++ {
		for g := uint16(0); g < 64; g++ {
			for b := uint16(0); b < 32; b++ {
				base := FromRGB565(rgb565(r, g, b)).Y
				if r < 31 && FromRGB565(rgb565(r+1, g, b)).Y < base {
					t.Fatalf("raising R at (%d, %d, %d) lowers the level", r, g, b)
				}
				if g < 63 && FromRGB565(rgb565(r, g+1, b)).Y < base {
					t.Fatalf("raising G at (%d, %d, %d) lowers the level", r, g, b)
				}
				if b < 31 && FromRGB565(rgb565(r, g, b+1)).Y < base {
					t.Fatalf("raising B at (%d, %d, %d) lowers the level", r, g, b)
				}
			}
		}
	}
}

func TestLuma(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint8
	}{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{0x80, 0x80, 0x80, 0x80},
		{255, 0, 0, 76},
		{0, 255, 0, 149},
		{0, 0, 255, 28},
	}
	for _, tt := range tests {
		if got := Luma(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("Luma(%d, %d, %d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}
