// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render defines the integration surface between the waveform
// rasterizer and a GPU-owning host application.
//
// The key principle: wavetrace RECEIVES the device from the host, it does
// NOT create one. A scope UI that already owns a WebGPU device implements
// DeviceHandle and hands it to the GPU backend, sharing resources instead
// of duplicating them.
//
// The package also defines render targets for the intensity raster: a
// CPU-backed FloatTarget and texture descriptors for R32Float GPU upload.
package render
