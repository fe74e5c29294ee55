// Package wavetrace converts one-dimensional analog sample sequences into
// two-dimensional per-pixel intensity rasters with additive brightness
// grading, the way an oscilloscope renders a dense trace.
//
// # Overview
//
// The rasterizer handles both zoom regimes transparently: many samples per
// pixel column (density accumulation) and many columns per sample
// (interpolation). Each output column is rasterized by an independent
// 64-lane cooperating group, mirroring the module's GPU compute kernel; on
// the CPU, columns run in parallel on a work-stealing pool while lanes
// within a column execute deterministically in order.
//
// Basic usage:
//
//	r := wavetrace.NewRenderer()
//	defer r.Close()
//
//	m := wavetrace.NewIntensityMap(1920, 1080)
//	r.RasterizeMap(wavetrace.Params{
//	    PlotRight: 1920,
//	    Width:     1920,
//	    Height:    1080,
//	    Depth:     uint64(len(samples)),
//	    Alpha:     0.2,
//	    XScale:    1920.0 / float32(len(samples)),
//	    YScale:    -200,
//	    YBase:     540,
//	}, samples, m)
//
// The accumulated intensity at a cell equals Alpha times the number of
// segment-column overlaps covering it; palette mapping of intensities to
// final colors is left to the caller.
//
// # Backends
//
// The backend package exposes the same contract through pluggable execution
// engines: a software backend built on this package and a wgpu compute
// backend carrying the kernel as a WGSL shader. See backend and
// backend/wgpu.
//
// # Logging
//
// wavetrace produces no log output by default. Call SetLogger to enable
// structured logging via log/slog.
package wavetrace
