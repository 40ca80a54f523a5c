// Package glfake provides an in-memory implementation of driver.Functions.
//
// The fake keeps every object the real driver would keep (buffer bytes,
// immutable texture storage and images, framebuffer attachments, shader
// sources, linked program interfaces, fences) and reports GL errors through
// GetError the way a core profile context does. It is deterministic and has
// no threads, which makes it suitable for unit tests of the glkit wrappers.
//
// A few rules are stricter than OpenGL 4.6 so that failure paths can be
// exercised:
//
//   - framebuffer attachments must share the same dimensions, otherwise the
//     framebuffer is FRAMEBUFFER_INCOMPLETE_ATTACHMENT;
//   - a GLSL stage containing an #error directive fails to compile, and a
//     program fails to link when an attached stage has no main function;
//   - a fence signals after FenceLatency polls instead of when work
//     completes. Finish signals every fence.
package glfake

import (
	"fmt"
	"sort"

	"github.com/gogpu/glkit/driver"
)

// BinaryFormat is the program binary format reported by the fake.
const BinaryFormat driver.Enum = 0x6F4B

var _ driver.Functions = (*Driver)(nil)

// State mirrors the global pipeline state set through the driver.
type State struct {
	Enabled map[driver.Enum]bool

	BlendSrcRGB   driver.Enum
	BlendDstRGB   driver.Enum
	BlendSrcAlpha driver.Enum
	BlendDstAlpha driver.Enum
	BlendEquation driver.Enum

	ClearColor  [4]float32
	LastClear   driver.Enum
	Viewport    [4]int32
	Scissor     [4]int32
	PolygonMode map[driver.Enum]driver.Enum
	DepthMask   bool
	CullFace    driver.Enum
	FrontFace   driver.Enum
	ColorMask   [4]bool

	Barriers       []driver.Enum
	RegionBarriers []driver.Enum
	Flushes        int
	Finishes       int

	UnpackAlignment int32
	PackAlignment   int32

	Program        driver.Program
	VertexArray    driver.VertexArray
	Framebuffers   map[driver.Enum]driver.Framebuffer
	Buffers        map[driver.Enum]driver.Buffer
	IndexedBuffers map[IndexedBinding]BufferRange
	Textures       map[driver.Enum]driver.Texture
	TextureUnits   map[uint32]driver.Texture
}

// IndexedBinding identifies an indexed buffer binding point.
type IndexedBinding struct {
	Target driver.Enum
	Index  uint32
}

// BufferRange is a buffer bound to an indexed binding point. Size is zero
// for whole-buffer bindings.
type BufferRange struct {
	Buffer driver.Buffer
	Offset int
	Size   int
}

// DebugMessage is a message delivered through the debug callback.
type DebugMessage struct {
	Source   driver.Enum
	Type     driver.Enum
	ID       uint32
	Severity driver.Enum
	Message  string
}

// Driver is the in-memory GL implementation. The zero value is not usable;
// call New.
type Driver struct {
	State State

	// Calls counts invocations per entry point name.
	Calls map[string]int

	// FenceLatency is the number of polls a fence needs before it signals.
	FenceLatency int

	// BinaryFormats is the value reported for NUM_PROGRAM_BINARY_FORMATS.
	BinaryFormats int32

	// FailMapping makes every MapNamedBufferRange call fail.
	FailMapping bool

	// MutableStorage makes textures report TEXTURE_IMMUTABLE_FORMAT false.
	MutableStorage bool

	// FailValidation makes ValidateProgram report failure.
	FailValidation bool

	// Specializations records every SpecializeShader call.
	Specializations []Specialization

	// Clears records every ClearNamedFramebuffer* call.
	Clears []Clear

	// Draws records every draw call.
	Draws []Draw

	// Messages records every message delivered to the debug callback.
	Messages []DebugMessage

	nextName uint32
	err      driver.Enum
	debug    driver.DebugProc
	labels   map[label]string

	buffers       map[driver.Buffer]*buffer
	textures      map[driver.Texture]*texture
	renderbuffers map[driver.Renderbuffer]*renderbuffer
	framebuffers  map[driver.Framebuffer]*framebuffer
	shaders       map[driver.Shader]*shader
	programs      map[driver.Program]*program
	vertexArrays  map[driver.VertexArray]*vertexArray
	syncs         map[driver.Sync]*fence
}

type label struct {
	identifier driver.Enum
	name       uint64
}

// New returns an empty driver with default state.
func New() *Driver {
	return &Driver{
		State: State{
			Enabled:         make(map[driver.Enum]bool),
			BlendSrcRGB:     driver.ONE,
			BlendDstRGB:     driver.ZERO,
			BlendSrcAlpha:   driver.ONE,
			BlendDstAlpha:   driver.ZERO,
			BlendEquation:   driver.FUNC_ADD,
			PolygonMode:     map[driver.Enum]driver.Enum{driver.FRONT_AND_BACK: driver.FILL},
			DepthMask:       true,
			CullFace:        driver.BACK,
			FrontFace:       driver.CCW,
			ColorMask:       [4]bool{true, true, true, true},
			UnpackAlignment: 4,
			PackAlignment:   4,
			Framebuffers:    make(map[driver.Enum]driver.Framebuffer),
			Buffers:         make(map[driver.Enum]driver.Buffer),
			IndexedBuffers:  make(map[IndexedBinding]BufferRange),
			Textures:        make(map[driver.Enum]driver.Texture),
			TextureUnits:    make(map[uint32]driver.Texture),
		},
		Calls:         make(map[string]int),
		BinaryFormats: 1,
		labels:        make(map[label]string),
		buffers:       make(map[driver.Buffer]*buffer),
		textures:      make(map[driver.Texture]*texture),
		renderbuffers: make(map[driver.Renderbuffer]*renderbuffer),
		framebuffers:  make(map[driver.Framebuffer]*framebuffer),
		shaders:       make(map[driver.Shader]*shader),
		programs:      make(map[driver.Program]*program),
		vertexArrays:  make(map[driver.VertexArray]*vertexArray),
		syncs:         make(map[driver.Sync]*fence),
	}
}

// Live reports the number of live objects of each kind.
type Live struct {
	Buffers       int
	Textures      int
	Renderbuffers int
	Framebuffers  int
	Shaders       int
	Programs      int
	VertexArrays  int
	Syncs         int
}

// Total returns the number of live objects of all kinds.
func (l Live) Total() int {
	return l.Buffers + l.Textures + l.Renderbuffers + l.Framebuffers +
		l.Shaders + l.Programs + l.VertexArrays + l.Syncs
}

// Live returns the live object counts.
func (d *Driver) Live() Live {
	return Live{
		Buffers:       len(d.buffers),
		Textures:      len(d.textures),
		Renderbuffers: len(d.renderbuffers),
		Framebuffers:  len(d.framebuffers),
		Shaders:       len(d.shaders),
		Programs:      len(d.programs),
		VertexArrays:  len(d.vertexArrays),
		Syncs:         len(d.syncs),
	}
}

// Label returns the debug label attached to an object.
func (d *Driver) Label(identifier driver.Enum, name uint32) string {
	return d.labels[label{identifier, uint64(name)}]
}

// SyncLabel returns the debug label attached to a fence.
func (d *Driver) SyncLabel(s driver.Sync) string {
	return d.labels[label{0, uint64(s)}]
}

// Emit delivers a message through the registered debug callback, as a driver
// would when it detects a problem. Nothing happens when debug output is
// disabled or no callback is registered.
func (d *Driver) Emit(source, typ driver.Enum, id uint32, severity driver.Enum, message string) {
	if d.debug == nil || !d.State.Enabled[driver.DEBUG_OUTPUT] {
		return
	}
	d.Messages = append(d.Messages, DebugMessage{source, typ, id, severity, message})
	d.debug(source, typ, id, severity, message)
}

// PendingError returns the recorded error without clearing it.
func (d *Driver) PendingError() driver.Enum {
	return d.err
}

func (d *Driver) call(name string) {
	d.Calls[name]++
}

func (d *Driver) fail(code driver.Enum, format string, args ...any) {
	if d.err == driver.NO_ERROR {
		d.err = code
	}
	d.Emit(driver.DEBUG_SOURCE_API, driver.DEBUG_TYPE_ERROR, uint32(code),
		driver.DEBUG_SEVERITY_HIGH, fmt.Sprintf(format, args...))
}

func (d *Driver) name() uint32 {
	d.nextName++
	return d.nextName
}

// GetError returns and clears the first recorded error.
func (d *Driver) GetError() driver.Enum {
	d.call("GetError")
	e := d.err
	d.err = driver.NO_ERROR
	return e
}

func (d *Driver) GetString(name driver.Enum) string {
	d.call("GetString")
	switch name {
	case driver.VENDOR:
		return "gogpu"
	case driver.RENDERER:
		return "glfake"
	case driver.VERSION:
		return "4.6.0 glfake"
	case driver.SHADING_LANGUAGE_VERSION:
		return "4.60 glfake"
	}
	d.fail(driver.INVALID_ENUM, "GetString: unknown name 0x%X", uint32(name))
	return ""
}

func (d *Driver) GetIntegerv(pname driver.Enum) int32 {
	d.call("GetIntegerv")
	switch pname {
	case driver.NUM_PROGRAM_BINARY_FORMATS:
		return d.BinaryFormats
	case driver.MAX_COLOR_ATTACHMENTS:
		return 8
	case driver.UNPACK_ALIGNMENT:
		return d.State.UnpackAlignment
	case driver.PACK_ALIGNMENT:
		return d.State.PackAlignment
	}
	return 0
}

func (d *Driver) GetInternalformativ(target, internalFormat, pname driver.Enum) int32 {
	d.call("GetInternalformativ")
	bits, ok := formatBits[internalFormat]
	if !ok {
		return 0
	}
	switch pname {
	case driver.INTERNALFORMAT_RED_SIZE:
		return bits[0]
	case driver.INTERNALFORMAT_GREEN_SIZE:
		return bits[1]
	case driver.INTERNALFORMAT_BLUE_SIZE:
		return bits[2]
	case driver.INTERNALFORMAT_ALPHA_SIZE:
		return bits[3]
	case driver.INTERNALFORMAT_DEPTH_SIZE:
		return bits[4]
	case driver.INTERNALFORMAT_STENCIL_SIZE:
		return bits[5]
	}
	d.fail(driver.INVALID_ENUM, "GetInternalformativ: unknown pname 0x%X", uint32(pname))
	return 0
}

// red, green, blue, alpha, depth, stencil bits.
var formatBits = map[driver.Enum][6]int32{
	driver.R8:                 {8, 0, 0, 0, 0, 0},
	driver.RG8:                {8, 8, 0, 0, 0, 0},
	driver.RGB8:               {8, 8, 8, 0, 0, 0},
	driver.RGBA8:              {8, 8, 8, 8, 0, 0},
	driver.SRGB8_ALPHA8:       {8, 8, 8, 8, 0, 0},
	driver.RGBA16F:            {16, 16, 16, 16, 0, 0},
	driver.RGBA32F:            {32, 32, 32, 32, 0, 0},
	driver.R32F:               {32, 0, 0, 0, 0, 0},
	driver.R32UI:              {32, 0, 0, 0, 0, 0},
	driver.DEPTH_COMPONENT16:  {0, 0, 0, 0, 16, 0},
	driver.DEPTH_COMPONENT24:  {0, 0, 0, 0, 24, 0},
	driver.DEPTH_COMPONENT32F: {0, 0, 0, 0, 32, 0},
	driver.DEPTH24_STENCIL8:   {0, 0, 0, 0, 24, 8},
	driver.DEPTH32F_STENCIL8:  {0, 0, 0, 0, 32, 8},
	driver.STENCIL_INDEX8:     {0, 0, 0, 0, 0, 8},
}

// CallNames returns the names of all entry points invoked so far, sorted.
func (d *Driver) CallNames() []string {
	names := make([]string, 0, len(d.Calls))
	for name := range d.Calls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d *Driver) ObjectLabel(identifier driver.Enum, name uint32, l string) {
	d.call("ObjectLabel")
	if !d.exists(identifier, name) {
		d.fail(driver.INVALID_VALUE, "ObjectLabel: %d is not a valid object", name)
		return
	}
	d.labels[label{identifier, uint64(name)}] = l
}

func (d *Driver) ObjectPtrLabel(s driver.Sync, l string) {
	d.call("ObjectPtrLabel")
	if _, ok := d.syncs[s]; !ok {
		d.fail(driver.INVALID_VALUE, "ObjectPtrLabel: not a sync object")
		return
	}
	d.labels[label{0, uint64(s)}] = l
}

func (d *Driver) exists(identifier driver.Enum, name uint32) bool {
	var ok bool
	switch identifier {
	case driver.BUFFER:
		_, ok = d.buffers[driver.Buffer(name)]
	case driver.TEXTURE:
		_, ok = d.textures[driver.Texture(name)]
	case driver.RENDERBUFFER:
		_, ok = d.renderbuffers[driver.Renderbuffer(name)]
	case driver.FRAMEBUFFER:
		_, ok = d.framebuffers[driver.Framebuffer(name)]
	case driver.SHADER:
		_, ok = d.shaders[driver.Shader(name)]
	case driver.PROGRAM:
		_, ok = d.programs[driver.Program(name)]
	case driver.VERTEX_ARRAY:
		_, ok = d.vertexArrays[driver.VertexArray(name)]
	}
	return ok
}

func (d *Driver) DebugMessageCallback(cb driver.DebugProc) {
	d.call("DebugMessageCallback")
	d.debug = cb
}

func (d *Driver) DebugMessageInsert(source, typ driver.Enum, id uint32, severity driver.Enum, message string) {
	d.call("DebugMessageInsert")
	d.Emit(source, typ, id, severity, message)
}
