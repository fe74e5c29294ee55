package wavetrace

import (
	"image"
	"image/png"
	"os"
)

// IntensityMap is a width×height raster of accumulated intensity values,
// row-major by Y (each row contiguous across X). Intensities are unbounded
// additive floats; mapping them to display colors is the caller's concern.
type IntensityMap struct {
	width  int
	height int
	data   []float32
}

// NewIntensityMap creates a zeroed intensity map with the given dimensions.
func NewIntensityMap(width, height int) *IntensityMap {
	return &IntensityMap{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}
}

// Width returns the raster width in columns.
func (m *IntensityMap) Width() int {
	return m.width
}

// Height returns the raster height in rows.
func (m *IntensityMap) Height() int {
	return m.height
}

// Data returns the underlying buffer. The slice shares memory with the map.
func (m *IntensityMap) Data() []float32 {
	return m.data
}

// At returns the intensity at (x, y). Out-of-range coordinates return 0.
func (m *IntensityMap) At(x, y int) float32 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Row returns row y as a slice sharing memory with the map.
func (m *IntensityMap) Row(y int) []float32 {
	return m.data[y*m.width : (y+1)*m.width]
}

// Max returns the largest intensity in the map.
func (m *IntensityMap) Max() float32 {
	var mx float32
	for _, v := range m.data {
		if v > mx {
			mx = v
		}
	}
	return mx
}

// Reset zeroes every cell.
func (m *IntensityMap) Reset() {
	clear(m.data)
}

// ToGray converts the map to an 8-bit grayscale image, linearly normalized
// so the brightest cell maps to white. An all-zero map yields a black image.
// This is a debugging aid, not the display path's tone mapping.
func (m *IntensityMap) ToGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.width, m.height))

	mx := m.Max()
	if mx <= 0 {
		return img
	}
	scale := 255 / mx

	for y := 0; y < m.height; y++ {
		row := m.Row(y)
		for x, v := range row {
			g := v * scale
			if g > 255 {
				g = 255
			}
			img.Pix[y*img.Stride+x] = uint8(g)
		}
	}
	return img
}

// SavePNG writes the normalized grayscale rendering of the map to a file.
func (m *IntensityMap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, m.ToGray())
}
