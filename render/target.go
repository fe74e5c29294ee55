// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wavetrace"
)

// Target describes where a rasterized intensity column buffer ends up.
//
// Targets may be CPU-backed (FloatTarget, direct access to the intensity
// values) or GPU-backed (an R32Float texture owned by the host device).
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// Values returns direct access to the intensity data, row-major by
	// Y. Returns nil for GPU-only targets.
	Values() []float32
}

// FloatTarget is a CPU-backed target wrapping a wavetrace.IntensityMap.
// It is the default target for pure CPU rasterization workflows.
type FloatTarget struct {
	m *wavetrace.IntensityMap
}

// NewFloatTarget creates a CPU-backed target of the given dimensions.
func NewFloatTarget(width, height int) *FloatTarget {
	return &FloatTarget{m: wavetrace.NewIntensityMap(width, height)}
}

// NewFloatTargetFromMap wraps an existing intensity map as a target.
// The map is used directly without copying.
func NewFloatTargetFromMap(m *wavetrace.IntensityMap) *FloatTarget {
	return &FloatTarget{m: m}
}

// Width returns the target width in pixels.
func (t *FloatTarget) Width() int {
	return t.m.Width()
}

// Height returns the target height in pixels.
func (t *FloatTarget) Height() int {
	return t.m.Height()
}

// Format returns the pixel format (one 32-bit float per cell).
func (t *FloatTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatR32Float
}

// Values returns direct access to the intensity data.
func (t *FloatTarget) Values() []float32 {
	return t.m.Data()
}

// Map returns the underlying intensity map, sharing memory with the target.
func (t *FloatTarget) Map() *wavetrace.IntensityMap {
	return t.m
}

// GrayImage returns the normalized grayscale rendering of the target.
func (t *FloatTarget) GrayImage() *image.Gray {
	return t.m.ToGray()
}

var _ Target = (*FloatTarget)(nil)

// TextureDescriptor describes parameters for creating a GPU texture that
// can receive the intensity raster. This mirrors the WebGPU
// GPUTextureDescriptor specification.
type TextureDescriptor struct {
	// Label is an optional debug label for the texture.
	Label string

	// Width and Height are the texture dimensions in pixels.
	Width  uint32
	Height uint32

	// MipLevelCount is the number of mipmap levels. Use 1 for none.
	MipLevelCount uint32

	// SampleCount is the number of samples for multisampling. Use 1.
	SampleCount uint32

	// Format is the texture pixel format.
	Format gputypes.TextureFormat
}

// IntensityTextureDescriptor returns the descriptor for an R32Float
// texture sized to hold an intensity raster, ready for the host's palette
// mapping pass to sample.
func IntensityTextureDescriptor(width, height uint32) TextureDescriptor {
	return TextureDescriptor{
		Label:         "wavetrace_intensity",
		Width:         width,
		Height:        height,
		MipLevelCount: 1,
		SampleCount:   1,
		Format:        gputypes.TextureFormatR32Float,
	}
}
