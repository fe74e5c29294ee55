// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wavetrace"
)

func TestFloatTarget(t *testing.T) {
	target := NewFloatTarget(8, 4)

	if target.Width() != 8 || target.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, want 8x4", target.Width(), target.Height())
	}
	if target.Format() != gputypes.TextureFormatR32Float {
		t.Errorf("Format() = %v, want R32Float", target.Format())
	}
	if len(target.Values()) != 32 {
		t.Errorf("Values() len = %d, want 32", len(target.Values()))
	}

	// The target shares memory with its map.
	target.Values()[0] = 3
	if target.Map().At(0, 0) != 3 {
		t.Error("Values() and Map() should share memory")
	}
}

func TestFloatTargetFromMap(t *testing.T) {
	m := wavetrace.NewIntensityMap(2, 2)
	m.Data()[3] = 5

	target := NewFloatTargetFromMap(m)
	if target.Values()[3] != 5 {
		t.Error("wrapped map data not visible through target")
	}

	img := target.GrayImage()
	if img.GrayAt(1, 1).Y != 255 {
		t.Errorf("brightest cell = %d, want 255", img.GrayAt(1, 1).Y)
	}
}

func TestIntensityTextureDescriptor(t *testing.T) {
	desc := IntensityTextureDescriptor(1920, 1080)

	if desc.Width != 1920 || desc.Height != 1080 {
		t.Errorf("dimensions = %dx%d, want 1920x1080", desc.Width, desc.Height)
	}
	if desc.Format != gputypes.TextureFormatR32Float {
		t.Errorf("Format = %v, want R32Float", desc.Format)
	}
	if desc.MipLevelCount != 1 || desc.SampleCount != 1 {
		t.Error("intensity textures use no mips and no multisampling")
	}
}
