package glkit

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/glkit/driver"
)

// Device is the explicit OpenGL context object. It owns the driver function
// table and the debug-output routing, and exposes the global pipeline state
// of the context. Every resource is created through a Device.
//
// A Device performs no locking and must be used from the thread that owns
// the GL context.
type Device struct {
	fns driver.Functions
	log *slog.Logger

	debugEnabled  bool
	debugCallback DebugCallback

	// unpackAlignment mirrors UNPACK_ALIGNMENT for upload size checks.
	unpackAlignment int
}

// DeviceInfo holds the identification strings reported by the driver.
type DeviceInfo struct {
	Vendor          string
	Renderer        string
	Version         string
	ShadingLanguage string
}

// NewDevice creates a Device over a driver function table. The GL context
// the table talks to must be current on the calling thread.
//
// Example:
//
//	fns, err := driver.Default()
//	if err != nil {
//	    return err
//	}
//	dev, err := glkit.NewDevice(fns, glkit.WithDebugOutput(true))
func NewDevice(fns driver.Functions, opts ...DeviceOption) (*Device, error) {
	if fns == nil {
		return nil, ErrNilDriver
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &Device{
		fns:             fns,
		log:             o.logger,
		debugCallback:   o.callback,
		unpackAlignment: defaultPixelAlignment,
	}
	if o.debugOutput {
		d.EnableDebugOutput(o.synchronous)
	}

	d.logger().Info("glkit: device created",
		"renderer", fns.GetString(driver.RENDERER),
		"version", fns.GetString(driver.VERSION))
	return d, nil
}

// Functions returns the driver function table of the device.
func (d *Device) Functions() driver.Functions { return d.fns }

// Logger returns the logger used by the device: the one passed with
// [WithLogger], or the package logger.
func (d *Device) Logger() *slog.Logger { return d.logger() }

func (d *Device) logger() *slog.Logger {
	if d.log != nil {
		return d.log
	}
	return Logger()
}

// Info queries the driver identification strings.
func (d *Device) Info() DeviceInfo {
	return DeviceInfo{
		Vendor:          d.fns.GetString(driver.VENDOR),
		Renderer:        d.fns.GetString(driver.RENDERER),
		Version:         d.fns.GetString(driver.VERSION),
		ShadingLanguage: d.fns.GetString(driver.SHADING_LANGUAGE_VERSION),
	}
}

// checkError drains the driver error queue and reports the first error as
// ErrDriver.
func (d *Device) checkError(op string) error {
	first := d.fns.GetError()
	if first == driver.NO_ERROR {
		return nil
	}
	// The queue holds at most one flag per error kind.
	for range 8 {
		if d.fns.GetError() == driver.NO_ERROR {
			break
		}
	}
	return fmt.Errorf("%w: %s: %s", ErrDriver, op, errorName(first))
}

func errorName(code driver.Enum) string {
	switch code {
	case driver.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case driver.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case driver.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case driver.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case driver.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("error code %d", uint32(code))
}

// ===== Global state =====

// Enable enables a server-side capability.
func (d *Device) Enable(c Capability) { d.fns.Enable(driver.Enum(c)) }

// Disable disables a server-side capability.
func (d *Device) Disable(c Capability) { d.fns.Disable(driver.Enum(c)) }

// BlendFunc sets the blend factors for both color and alpha.
func (d *Device) BlendFunc(src, dst BlendFactor) {
	d.fns.BlendFunc(driver.Enum(src), driver.Enum(dst))
}

// BlendFuncSeparate sets separate blend factors for color and alpha.
func (d *Device) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha BlendFactor) {
	d.fns.BlendFuncSeparate(driver.Enum(srcRGB), driver.Enum(dstRGB), driver.Enum(srcAlpha), driver.Enum(dstAlpha))
}

// BlendEquation sets the blend equation for color and alpha.
func (d *Device) BlendEquation(e BlendEquation) { d.fns.BlendEquation(driver.Enum(e)) }

// ClearColor sets the color used by Clear.
func (d *Device) ClearColor(r, g, b, a float32) { d.fns.ClearColor(r, g, b, a) }

// Clear clears the buffers of the bound draw framebuffer selected by mask.
func (d *Device) Clear(mask ClearMask) { d.fns.Clear(driver.Enum(mask)) }

// Scissor sets the scissor box.
func (d *Device) Scissor(x, y, width, height int) {
	d.fns.Scissor(int32(x), int32(y), int32(width), int32(height)) //nolint:gosec // window coordinates fit in int32
}

// Viewport sets the viewport transform.
func (d *Device) Viewport(x, y, width, height int) {
	d.fns.Viewport(int32(x), int32(y), int32(width), int32(height)) //nolint:gosec // window coordinates fit in int32
}

// PolygonMode sets how polygons are rasterized. Core profiles only accept
// FaceFrontAndBack.
func (d *Device) PolygonMode(face Face, mode PolygonRasterMode) {
	d.fns.PolygonMode(driver.Enum(face), driver.Enum(mode))
}

// DepthMask enables or disables writing into the depth buffer.
func (d *Device) DepthMask(enabled bool) { d.fns.DepthMask(enabled) }

// CullFace selects which faces are culled when CapCullFace is enabled.
func (d *Device) CullFace(face Face) { d.fns.CullFace(driver.Enum(face)) }

// FrontFace sets the winding of front-facing polygons.
func (d *Device) FrontFace(w Winding) { d.fns.FrontFace(driver.Enum(w)) }

// ColorMask enables or disables writing of color components.
func (d *Device) ColorMask(r, g, b, a bool) { d.fns.ColorMask(r, g, b, a) }

// MemoryBarrier orders memory transactions issued before it against those
// issued after it.
func (d *Device) MemoryBarrier(b Barrier) { d.fns.MemoryBarrier(driver.Enum(b)) }

// MemoryBarrierByRegion is MemoryBarrier limited to framebuffer-local
// dependencies.
func (d *Device) MemoryBarrierByRegion(b Barrier) { d.fns.MemoryBarrierByRegion(driver.Enum(b)) }

// Flush forces issued commands to start executing.
func (d *Device) Flush() { d.fns.Flush() }

// Finish blocks until all issued commands have completed.
func (d *Device) Finish() { d.fns.Finish() }

// defaultPixelAlignment is the initial PACK_ALIGNMENT and UNPACK_ALIGNMENT.
const defaultPixelAlignment = 4

// SetPixelPackAlignment sets the row alignment used when reading pixels
// back into client memory. Valid values are 1, 2, 4 and 8.
func (d *Device) SetPixelPackAlignment(n int) error {
	return d.pixelStore(driver.PACK_ALIGNMENT, n)
}

// SetPixelUnpackAlignment sets the row alignment of pixel data supplied to
// texture uploads. Valid values are 1, 2, 4 and 8.
func (d *Device) SetPixelUnpackAlignment(n int) error {
	return d.pixelStore(driver.UNPACK_ALIGNMENT, n)
}

func (d *Device) pixelStore(pname driver.Enum, n int) error {
	switch n {
	case 1, 2, 4, 8:
	default:
		return fmt.Errorf("%w: pixel alignment must be 1, 2, 4 or 8, got %d", ErrInvalidArgument, n)
	}
	d.fns.PixelStorei(pname, int32(n)) //nolint:gosec // validated above
	if pname == driver.UNPACK_ALIGNMENT {
		d.unpackAlignment = n
	}
	return nil
}

// UnpackAlignment returns the row alignment last set with
// SetPixelUnpackAlignment, or the OpenGL default of 4.
func (d *Device) UnpackAlignment() int { return d.unpackAlignment }

// BindTextures binds textures to consecutive units starting at first. A nil
// entry unbinds its unit.
func (d *Device) BindTextures(first uint32, textures ...*Texture) {
	ids := make([]driver.Texture, len(textures))
	for i, t := range textures {
		if t != nil {
			ids[i] = t.id
		}
	}
	d.fns.BindTextures(first, ids)
}

// BindTextureID binds a raw texture name to a texture unit.
func (d *Device) BindTextureID(unit uint32, id driver.Texture) {
	d.fns.BindTextureUnit(unit, id)
}

// BindTextureIDs binds raw texture names to consecutive units starting at
// first.
func (d *Device) BindTextureIDs(first uint32, ids ...driver.Texture) {
	d.fns.BindTextures(first, ids)
}

// UnbindBuffer clears a buffer binding point.
func (d *Device) UnbindBuffer(target BufferTarget) {
	d.fns.BindBuffer(driver.Enum(target), 0)
}

// UnbindTexture clears the binding of target on the active texture unit.
func (d *Device) UnbindTexture(target TextureTarget) {
	d.fns.BindTexture(driver.Enum(target), 0)
}

// UnbindProgram clears the current program.
func (d *Device) UnbindProgram() { d.fns.UseProgram(0) }

// UnbindVertexArray clears the vertex array binding.
func (d *Device) UnbindVertexArray() { d.fns.BindVertexArray(0) }

// InternalFormatInfo queries an implementation-dependent property of an
// internal format, such as driver.INTERNALFORMAT_DEPTH_SIZE.
func (d *Device) InternalFormatInfo(target TextureTarget, format InternalFormat, pname driver.Enum) int32 {
	return d.fns.GetInternalformativ(driver.Enum(target), driver.Enum(format), pname)
}

// ===== Object labels =====

// Labeled is implemented by every object that can carry a debug label.
type Labeled interface {
	// objectName returns the label namespace and the object name.
	objectName() (identifier driver.Enum, name uint32)
}

// SetObjectName attaches a debug label to obj. Fences are labeled through
// the pointer-label entry point.
func (d *Device) SetObjectName(obj Labeled, name string) {
	if s, ok := obj.(*Sync); ok {
		s.SetDebugName(name)
		return
	}
	identifier, id := obj.objectName()
	if id == 0 {
		return
	}
	d.fns.ObjectLabel(identifier, id, name)
}
