package wavetrace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIntensityMap_Basics(t *testing.T) {
	m := NewIntensityMap(4, 3)

	if m.Width() != 4 || m.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 4x3", m.Width(), m.Height())
	}
	if len(m.Data()) != 12 {
		t.Fatalf("Data() len = %d, want 12", len(m.Data()))
	}

	m.Data()[2*4+1] = 7 // (1, 2)
	if m.At(1, 2) != 7 {
		t.Errorf("At(1,2) = %v, want 7", m.At(1, 2))
	}
	if got := m.Row(2)[1]; got != 7 {
		t.Errorf("Row(2)[1] = %v, want 7", got)
	}

	// Out-of-range reads return 0.
	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		if m.At(xy[0], xy[1]) != 0 {
			t.Errorf("At(%d,%d) out of range = %v, want 0", xy[0], xy[1], m.At(xy[0], xy[1]))
		}
	}

	if m.Max() != 7 {
		t.Errorf("Max() = %v, want 7", m.Max())
	}

	m.Reset()
	if m.Max() != 0 {
		t.Errorf("Max() after Reset = %v, want 0", m.Max())
	}
}

func TestIntensityMap_ToGray(t *testing.T) {
	m := NewIntensityMap(2, 2)
	m.Data()[0] = 1 // (0, 0)
	m.Data()[3] = 4 // (1, 1)

	img := m.ToGray()

	if got := img.GrayAt(1, 1).Y; got != 255 {
		t.Errorf("brightest cell = %d, want 255", got)
	}
	// 1/4 of max, rounded down by the float conversion.
	if got := img.GrayAt(0, 0).Y; got != 63 {
		t.Errorf("quarter-intensity cell = %d, want 63", got)
	}
	if got := img.GrayAt(0, 1).Y; got != 0 {
		t.Errorf("empty cell = %d, want 0", got)
	}
}

func TestIntensityMap_ToGrayEmpty(t *testing.T) {
	m := NewIntensityMap(3, 3)
	img := m.ToGray()
	for _, px := range img.Pix {
		if px != 0 {
			t.Fatal("all-zero map must render black")
		}
	}
}

func TestIntensityMap_SavePNG(t *testing.T) {
	m := NewIntensityMap(8, 8)
	m.Data()[0] = 1

	path := filepath.Join(t.TempDir(), "trace.png")
	if err := m.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("PNG file is empty")
	}
}
