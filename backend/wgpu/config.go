package wgpu

import (
	"math"

	"github.com/gogpu/wavetrace"
)

// gpuConfigSize is the byte size of GPUConfig on the GPU (16 x 4 bytes).
const gpuConfigSize = 64

// GPUConfig is the GPU-compatible layout of wavetrace.Params.
// Must match the Config struct in waveform.wgsl.
type GPUConfig struct {
	PlotRight     uint32  // First column past the drawable plot area
	Width         uint32  // Raster width in pixels
	Height        uint32  // Raster height in pixels
	FirstCol      uint32  // Column index of workgroup 0
	Depth         uint32  // Number of samples
	InnerXoff     int32   // Sample-index shift applied before scaling
	OffsetSamples int32   // Sample-index shift applied after scaling
	Alpha         float32 // Intensity added per covered row
	XOff          float32 // Horizontal pixel offset
	XScale        float32 // Pixels per sample
	YBase         float32 // Vertical pixel offset
	YScale        float32 // Pixels per sample unit
	YOff          float32 // Value offset applied before scaling
	PersistScale  float32 // Reserved for persistence grading (currently inert)
	Padding1      uint32  // Padding for alignment
	Padding2      uint32  // Padding for alignment
}

// configFromParams converts renderer parameters to the GPU uniform layout.
// The 64-bit fields are narrowed; callers validate ranges before dispatch.
func configFromParams(p wavetrace.Params) GPUConfig {
	//nolint:gosec // Narrowing to the GPU uniform layout is intentional
	return GPUConfig{
		PlotRight:     p.PlotRight,
		Width:         p.Width,
		Height:        p.Height,
		FirstCol:      uint32(p.FirstCol),
		Depth:         uint32(p.Depth),
		InnerXoff:     int32(p.InnerXoff),
		OffsetSamples: int32(p.OffsetSamples),
		Alpha:         p.Alpha,
		XOff:          p.XOff,
		XScale:        p.XScale,
		YBase:         p.YBase,
		YScale:        p.YScale,
		YOff:          p.YOff,
		PersistScale:  p.PersistScale,
	}
}

// Byte serialization helpers (little-endian, matching GPU buffer layout)

func writeUint32(buf []byte, offset int, val uint32) {
	buf[offset] = byte(val)
	buf[offset+1] = byte(val >> 8)
	buf[offset+2] = byte(val >> 16)
	buf[offset+3] = byte(val >> 24)
}

func writeInt32(buf []byte, offset int, val int32) {
	//nolint:gosec // Intentional bit-cast for GPU buffer serialization
	writeUint32(buf, offset, uint32(val))
}

func writeFloat32(buf []byte, offset int, val float32) {
	writeUint32(buf, offset, math.Float32bits(val))
}

// configToBytes serializes the uniform block for GPU upload.
func configToBytes(cfg GPUConfig) []byte {
	buf := make([]byte, gpuConfigSize)
	writeUint32(buf, 0, cfg.PlotRight)
	writeUint32(buf, 4, cfg.Width)
	writeUint32(buf, 8, cfg.Height)
	writeUint32(buf, 12, cfg.FirstCol)
	writeUint32(buf, 16, cfg.Depth)
	writeInt32(buf, 20, cfg.InnerXoff)
	writeInt32(buf, 24, cfg.OffsetSamples)
	writeFloat32(buf, 28, cfg.Alpha)
	writeFloat32(buf, 32, cfg.XOff)
	writeFloat32(buf, 36, cfg.XScale)
	writeFloat32(buf, 40, cfg.YBase)
	writeFloat32(buf, 44, cfg.YScale)
	writeFloat32(buf, 48, cfg.YOff)
	writeFloat32(buf, 52, cfg.PersistScale)
	writeUint32(buf, 56, cfg.Padding1)
	writeUint32(buf, 60, cfg.Padding2)
	return buf
}

// samplesToBytes serializes the sample buffer for GPU upload.
func samplesToBytes(samples []float32) []byte {
	buf := make([]byte, len(samples)*4)
	for i, v := range samples {
		writeFloat32(buf, i*4, v)
	}
	return buf
}
