package wgpu

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/waveform.wgsl
var waveformShaderWGSL string

// WaveformPipeline owns the compute pipeline for the waveform kernel.
// It compiles the WGSL shader to SPIR-V and creates the GPU resources
// needed to dispatch one 64-lane workgroup per output column.
//
// Note: Full GPU buffer binding requires HAL API extensions to expose
// buffer handles. Currently this serves as infrastructure and data flow
// verification; dispatch mirrors the shader on the CPU.
type WaveformPipeline struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue

	pipeline     hal.ComputePipeline
	shaderModule hal.ShaderModule

	pipelineLayout   hal.PipelineLayout
	inputBindLayout  hal.BindGroupLayout
	outputBindLayout hal.BindGroupLayout

	// Compiled SPIR-V (cached for verification)
	spirvCode []uint32

	initialized bool
	shaderReady bool
}

// NewWaveformPipeline creates the compute pipeline on the given device.
// Returns an error if GPU compute is not supported.
func NewWaveformPipeline(device hal.Device, queue hal.Queue) (*WaveformPipeline, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("wgpu: device and queue are required")
	}

	p := &WaveformPipeline{
		device: device,
		queue:  queue,
	}

	if err := p.init(); err != nil {
		p.Destroy()
		return nil, err
	}

	return p, nil
}

func (p *WaveformPipeline) init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Compile WGSL to SPIR-V
	spirvBytes, err := naga.Compile(waveformShaderWGSL)
	if err != nil {
		return fmt.Errorf("wgpu: failed to compile shader: %w", err)
	}

	// Convert bytes to uint32 slice for SPIR-V
	p.spirvCode = make([]uint32, len(spirvBytes)/4)
	for i := range p.spirvCode {
		p.spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	p.shaderReady = true

	shaderModule, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "waveform_shader",
		Source: hal.ShaderSource{
			SPIRV: p.spirvCode,
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create shader module: %w", err)
	}
	p.shaderModule = shaderModule

	if err := p.createBindGroupLayouts(); err != nil {
		return err
	}

	if err := p.createPipelineLayout(); err != nil {
		return err
	}

	if err := p.createPipeline(); err != nil {
		return err
	}

	p.initialized = true
	return nil
}

// createBindGroupLayouts creates the bind group layouts for the pipeline.
func (p *WaveformPipeline) createBindGroupLayouts() error {
	// Input bind group layout (group 0): config uniform + sample buffer
	inputLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "waveform_input_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageCompute,
				Buffer: &gputypes.BufferBindingLayout{
					Type:           gputypes.BufferBindingTypeUniform,
					MinBindingSize: gpuConfigSize,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageCompute,
				Buffer: &gputypes.BufferBindingLayout{
					Type: gputypes.BufferBindingTypeReadOnlyStorage,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create input bind group layout: %w", err)
	}
	p.inputBindLayout = inputLayout

	// Output bind group layout (group 1): intensity raster
	outputLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "waveform_output_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageCompute,
				Buffer: &gputypes.BufferBindingLayout{
					Type: gputypes.BufferBindingTypeStorage,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create output bind group layout: %w", err)
	}
	p.outputBindLayout = outputLayout

	return nil
}

func (p *WaveformPipeline) createPipelineLayout() error {
	layout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "waveform_pipeline_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.inputBindLayout, p.outputBindLayout},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create pipeline layout: %w", err)
	}
	p.pipelineLayout = layout
	return nil
}

func (p *WaveformPipeline) createPipeline() error {
	pipeline, err := p.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  "waveform_pipeline",
		Layout: p.pipelineLayout,
		Compute: hal.ComputeState{
			Module:     p.shaderModule,
			EntryPoint: "cs_waveform",
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create waveform pipeline: %w", err)
	}
	p.pipeline = pipeline
	return nil
}

// IsInitialized returns whether the pipeline is ready for dispatch.
func (p *WaveformPipeline) IsInitialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// IsShaderReady returns whether the shader compiled successfully.
func (p *WaveformPipeline) IsShaderReady() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.shaderReady
}

// SPIRVCode returns the compiled SPIR-V code (for debugging/verification).
func (p *WaveformPipeline) SPIRVCode() []uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.spirvCode
}

// Destroy releases all GPU resources.
func (p *WaveformPipeline) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.device == nil {
		return
	}

	if p.pipeline != nil {
		p.device.DestroyComputePipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipelineLayout != nil {
		p.device.DestroyPipelineLayout(p.pipelineLayout)
		p.pipelineLayout = nil
	}
	if p.inputBindLayout != nil {
		p.device.DestroyBindGroupLayout(p.inputBindLayout)
		p.inputBindLayout = nil
	}
	if p.outputBindLayout != nil {
		p.device.DestroyBindGroupLayout(p.outputBindLayout)
		p.outputBindLayout = nil
	}
	if p.shaderModule != nil {
		p.device.DestroyShaderModule(p.shaderModule)
		p.shaderModule = nil
	}

	p.initialized = false
}
