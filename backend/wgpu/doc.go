// Package wgpu provides GPU-accelerated waveform rasterization using WebGPU.
//
// The backend compiles a WGSL compute kernel to SPIR-V via naga and builds
// the compute pipeline through the wgpu HAL. One workgroup of 64 lanes is
// dispatched per output column.
//
// The package registers itself under the name "wgpu" on import:
//
//	import _ "github.com/gogpu/wavetrace/backend/wgpu"
//
// A GPU device is never created by this package. The host application owns
// the device and queue (typically via gpucontext) and passes them to New.
// The self-registered instance has no device, so backend.InitDefault skips
// it and falls through to the software backend on hosts without a GPU.
package wgpu
