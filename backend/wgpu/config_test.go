package wgpu

import (
	"math"
	"testing"

	"github.com/gogpu/wavetrace"
)

func TestByteConversions(t *testing.T) {
	t.Run("uint32", func(t *testing.T) {
		buf := make([]byte, 4)
		writeUint32(buf, 0, 0x12345678)

		// Little-endian check
		if buf[0] != 0x78 || buf[1] != 0x56 || buf[2] != 0x34 || buf[3] != 0x12 {
			t.Errorf("writeUint32 failed: got %v", buf)
		}
	})

	t.Run("int32", func(t *testing.T) {
		buf := make([]byte, 4)
		writeInt32(buf, 0, -1)

		// -1 in two's complement is 0xFFFFFFFF
		if buf[0] != 0xFF || buf[1] != 0xFF || buf[2] != 0xFF || buf[3] != 0xFF {
			t.Errorf("writeInt32 failed: got %v", buf)
		}
	})

	t.Run("float32", func(t *testing.T) {
		buf := make([]byte, 4)
		writeFloat32(buf, 0, 1.0)

		bits := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
		if got := math.Float32frombits(bits); got != 1.0 {
			t.Errorf("writeFloat32 round trip: got %v, want 1.0", got)
		}
	})
}

func TestConfigToBytes(t *testing.T) {
	cfg := GPUConfig{
		PlotRight:     800,
		Width:         1024,
		Height:        256,
		FirstCol:      0,
		Depth:         4096,
		InnerXoff:     -3,
		OffsetSamples: 7,
		Alpha:         0.25,
		XScale:        0.5,
	}

	buf := configToBytes(cfg)
	if len(buf) != gpuConfigSize {
		t.Fatalf("configToBytes: expected %d bytes, got %d", gpuConfigSize, len(buf))
	}

	readUint32 := func(off int) uint32 {
		return uint32(buf[off]) | uint32(buf[off+1])<<8 |
			uint32(buf[off+2])<<16 | uint32(buf[off+3])<<24
	}

	if got := readUint32(0); got != 800 {
		t.Errorf("PlotRight at offset 0: got %d, want 800", got)
	}
	if got := readUint32(4); got != 1024 {
		t.Errorf("Width at offset 4: got %d, want 1024", got)
	}
	if got := readUint32(8); got != 256 {
		t.Errorf("Height at offset 8: got %d, want 256", got)
	}
	if got := readUint32(16); got != 4096 {
		t.Errorf("Depth at offset 16: got %d, want 4096", got)
	}
	if got := int32(readUint32(20)); got != -3 {
		t.Errorf("InnerXoff at offset 20: got %d, want -3", got)
	}
	if got := int32(readUint32(24)); got != 7 {
		t.Errorf("OffsetSamples at offset 24: got %d, want 7", got)
	}
	if got := math.Float32frombits(readUint32(28)); got != 0.25 {
		t.Errorf("Alpha at offset 28: got %v, want 0.25", got)
	}
	if got := math.Float32frombits(readUint32(36)); got != 0.5 {
		t.Errorf("XScale at offset 36: got %v, want 0.5", got)
	}
}

func TestConfigFromParams(t *testing.T) {
	p := wavetrace.Params{
		PlotRight:     100,
		Width:         100,
		Height:        64,
		Depth:         500,
		InnerXoff:     -8,
		OffsetSamples: 2,
		Alpha:         0.1,
		XScale:        0.2,
		YScale:        4,
		YBase:         32,
	}

	cfg := configFromParams(p)
	if cfg.Width != 100 || cfg.Height != 64 || cfg.Depth != 500 {
		t.Errorf("dimension fields mismatch: %+v", cfg)
	}
	if cfg.InnerXoff != -8 || cfg.OffsetSamples != 2 {
		t.Errorf("offset fields mismatch: got %d, %d", cfg.InnerXoff, cfg.OffsetSamples)
	}
	if cfg.Alpha != 0.1 || cfg.XScale != 0.2 || cfg.YScale != 4 || cfg.YBase != 32 {
		t.Errorf("transform fields mismatch: %+v", cfg)
	}
}

func TestSamplesToBytes(t *testing.T) {
	samples := []float32{0, 1, -1, 0.5}
	buf := samplesToBytes(samples)
	if len(buf) != 16 {
		t.Fatalf("samplesToBytes: expected 16 bytes, got %d", len(buf))
	}

	for i, want := range samples {
		off := i * 4
		bits := uint32(buf[off]) | uint32(buf[off+1])<<8 |
			uint32(buf[off+2])<<16 | uint32(buf[off+3])<<24
		if got := math.Float32frombits(bits); got != want {
			t.Errorf("sample %d: got %v, want %v", i, got, want)
		}
	}
}
