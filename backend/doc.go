// Package backend defines the pluggable execution engines for the waveform
// rasterizer and a registry to select between them.
//
// Two backends ship with the module:
//   - software: the CPU engine built on the wavetrace renderer (always
//     available, the fallback)
//   - wgpu: the GPU compute engine carrying the same kernel as a WGSL
//     shader (backend/wgpu, requires a host-provided device)
//
// Backends register themselves from init() functions; Default() picks the
// best available one by priority.
package backend
