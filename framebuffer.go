package glkit

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/glkit/driver"
)

// attachment pairs shared settings with the GPU object created from them.
type attachment struct {
	settings     *FramebufferAttachment
	texture      driver.Texture
	renderbuffer driver.Renderbuffer
}

func (a *attachment) id() uint32 {
	if a.settings.UseRenderbuffer {
		return uint32(a.renderbuffer)
	}
	return uint32(a.texture)
}

// Framebuffer is a render target built from attachment settings. It owns
// the textures and renderbuffers it creates for them.
type Framebuffer struct {
	dev         *Device
	id          driver.Framebuffer
	attachments []attachment
	drawBuffers []AttachmentPoint
	width       int
	height      int
}

// CreateFramebuffer creates a framebuffer of the given size with one GPU
// object per attachment. Writable color attachments become the draw
// buffers in the order given.
//
// The framebuffer must be complete; otherwise every object created for it
// is deleted and an ErrDriver error naming the status is returned.
func (d *Device) CreateFramebuffer(attachments []*FramebufferAttachment, width, height int) (*Framebuffer, error) {
	fb := &Framebuffer{
		dev:         d,
		attachments: make([]attachment, len(attachments)),
		width:       width,
		height:      height,
	}
	for i, a := range attachments {
		if a == nil {
			return nil, fmt.Errorf("%w: attachments[%d] is nil", ErrInvalidType, i)
		}
		fb.attachments[i].settings = a
	}

	if err := fb.initialize(); err != nil {
		return nil, err
	}
	d.logger().Debug("glkit: framebuffer created", "id", fb.id, "width", width, "height", height,
		"attachments", len(attachments))
	return fb, nil
}

func (f *Framebuffer) initialize() error {
	fns := f.dev.fns
	f.id = fns.CreateFramebuffer()
	f.drawBuffers = f.drawBuffers[:0]

	for i := range f.attachments {
		a := &f.attachments[i]
		s := a.settings
		w, h := s.size(f.width, f.height)
		point := driver.Enum(s.attachmentPoint())
		format := driver.Enum(s.Format)

		if s.UseRenderbuffer {
			a.renderbuffer = fns.CreateRenderbuffer()
			if s.IsMultisampled() {
				fns.NamedRenderbufferStorageMultisample(a.renderbuffer, s.Samples, format, w, h)
			} else {
				fns.NamedRenderbufferStorage(a.renderbuffer, format, w, h)
			}
			fns.NamedFramebufferRenderbuffer(f.id, point, a.renderbuffer)
		} else {
			if s.IsMultisampled() {
				a.texture = fns.CreateTexture(driver.TEXTURE_2D_MULTISAMPLE)
				fns.TextureStorage2DMultisample(a.texture, s.Samples, format, w, h, true)
			} else {
				a.texture = fns.CreateTexture(driver.TEXTURE_2D)
				fns.TextureStorage2D(a.texture, 1, format, w, h)
				fns.TextureParameteri(a.texture, driver.TEXTURE_MIN_FILTER, int32(s.MinFilter))
				fns.TextureParameteri(a.texture, driver.TEXTURE_MAG_FILTER, int32(s.MagFilter))
				fns.TextureParameteri(a.texture, driver.TEXTURE_MAX_LEVEL, 0)
				fns.TextureParameteri(a.texture, driver.TEXTURE_WRAP_S, driver.CLAMP_TO_EDGE)
				fns.TextureParameteri(a.texture, driver.TEXTURE_WRAP_R, driver.CLAMP_TO_EDGE)
				fns.TextureParameteri(a.texture, driver.TEXTURE_WRAP_T, driver.CLAMP_TO_EDGE)
			}
			fns.NamedFramebufferTexture(f.id, point, a.texture, 0)
		}

		if s.Writable && !s.IsDepthAttachment() {
			f.drawBuffers = append(f.drawBuffers, s.attachmentPoint())
		}
	}

	if len(f.drawBuffers) == 0 {
		fns.NamedFramebufferDrawBuffer(f.id, driver.NONE)
	} else {
		bufs := make([]driver.Enum, len(f.drawBuffers))
		for i, p := range f.drawBuffers {
			bufs[i] = driver.Enum(p)
		}
		fns.NamedFramebufferDrawBuffers(f.id, bufs)
	}

	if err := f.validate(); err != nil {
		f.release()
		return err
	}
	return nil
}

func (f *Framebuffer) validate() error {
	status := f.dev.fns.CheckNamedFramebufferStatus(f.id, driver.FRAMEBUFFER)
	if status != driver.FRAMEBUFFER_COMPLETE {
		// Pending errors belong to the rejected configuration.
		_ = f.dev.checkError("CheckNamedFramebufferStatus")
		return fmt.Errorf("%w: failed to create framebuffer (id: %d): %s", ErrDriver, f.id, framebufferStatusName(status))
	}
	return nil
}

// release deletes the framebuffer and every attachment object.
func (f *Framebuffer) release() {
	fns := f.dev.fns
	for i := range f.attachments {
		a := &f.attachments[i]
		if a.renderbuffer.Valid() {
			fns.DeleteRenderbuffer(a.renderbuffer)
			a.renderbuffer = 0
		}
		if a.texture.Valid() {
			fns.DeleteTexture(a.texture)
			a.texture = 0
		}
	}
	if f.id.Valid() {
		fns.DeleteFramebuffer(f.id)
		f.id = 0
	}
}

func framebufferStatusName(status driver.Enum) string {
	switch status {
	case driver.FRAMEBUFFER_UNDEFINED:
		return "FRAMEBUFFER_UNDEFINED"
	case driver.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return "FRAMEBUFFER_INCOMPLETE_ATTACHMENT"
	case driver.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return "FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT"
	case driver.FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER:
		return "FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER"
	case driver.FRAMEBUFFER_INCOMPLETE_READ_BUFFER:
		return "FRAMEBUFFER_INCOMPLETE_READ_BUFFER"
	case driver.FRAMEBUFFER_UNSUPPORTED:
		return "FRAMEBUFFER_UNSUPPORTED"
	case driver.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		return "FRAMEBUFFER_INCOMPLETE_MULTISAMPLE"
	case driver.FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS:
		return "FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS"
	default:
		return "UNKNOWN"
	}
}

// ID returns the driver name of the framebuffer.
func (f *Framebuffer) ID() driver.Framebuffer { return f.id }

// Size returns the framebuffer size.
func (f *Framebuffer) Size() (width, height int) { return f.width, f.height }

// Width returns the framebuffer width.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the framebuffer height.
func (f *Framebuffer) Height() int { return f.height }

// AttachmentCount returns the number of attachments.
func (f *Framebuffer) AttachmentCount() int { return len(f.attachments) }

// DrawBuffers returns the draw buffer list in attachment order.
func (f *Framebuffer) DrawBuffers() []AttachmentPoint {
	return append([]AttachmentPoint(nil), f.drawBuffers...)
}

// Resize recreates every attachment object at the new size. A zero
// dimension or an unchanged size is a no-op.
//
// If the resized framebuffer is incomplete, all of its objects are
// released and the error is returned.
func (f *Framebuffer) Resize(width, height int) error {
	if width == 0 || height == 0 || (width == f.width && height == f.height) {
		return nil
	}
	if f.id == 0 {
		return ErrDestroyed
	}
	f.release()
	f.width, f.height = width, height
	if err := f.initialize(); err != nil {
		return err
	}
	f.dev.logger().Debug("glkit: framebuffer resized", "id", f.id, "width", width, "height", height)
	return nil
}

func (f *Framebuffer) find(point AttachmentPoint) (*attachment, error) {
	point = resolveAttachmentPoint(point)
	for i := range f.attachments {
		if f.attachments[i].settings.attachmentPoint() == point {
			return &f.attachments[i], nil
		}
	}
	return nil, fmt.Errorf("%w: no attachment bound to attachment point %s", ErrNotFound, point)
}

// Attachment returns the settings of the attachment at point. Values below
// 32 are treated as color attachment indices, so Attachment(0) and
// Attachment(AttachmentColor0) are the same lookup.
func (f *Framebuffer) Attachment(point AttachmentPoint) (*FramebufferAttachment, error) {
	a, err := f.find(point)
	if err != nil {
		return nil, err
	}
	return a.settings, nil
}

// AttachmentID returns the texture or renderbuffer name of the attachment
// at point. Points are resolved as in Attachment.
func (f *Framebuffer) AttachmentID(point AttachmentPoint) (uint32, error) {
	a, err := f.find(point)
	if err != nil {
		return 0, err
	}
	return a.id(), nil
}

type clearKind uint8

const (
	clearFloat clearKind = iota
	clearInt
	clearUint
)

// ClearValue is a four-component color clear value of one of the three
// clear variants.
type ClearValue struct {
	kind   clearKind
	floats [4]float32
	ints   [4]int32
	uints  [4]uint32
}

// ClearFloat returns a clear value for normalized and floating-point
// attachments.
func ClearFloat(r, g, b, a float32) ClearValue {
	return ClearValue{kind: clearFloat, floats: [4]float32{r, g, b, a}}
}

// ClearInt returns a clear value for signed integer attachments.
func ClearInt(r, g, b, a int32) ClearValue {
	return ClearValue{kind: clearInt, ints: [4]int32{r, g, b, a}}
}

// ClearUint returns a clear value for unsigned integer attachments.
func ClearUint(r, g, b, a uint32) ClearValue {
	return ClearValue{kind: clearUint, uints: [4]uint32{r, g, b, a}}
}

// ClearColor clears the color attachment used by the given draw buffer.
func (f *Framebuffer) ClearColor(v ClearValue, drawBuffer int) {
	db := int32(drawBuffer) //nolint:gosec // draw buffer index is small
	switch v.kind {
	case clearInt:
		f.dev.fns.ClearNamedFramebufferiv(f.id, driver.COLOR, db, v.ints[:])
	case clearUint:
		f.dev.fns.ClearNamedFramebufferuiv(f.id, driver.COLOR, db, v.uints[:])
	default:
		f.dev.fns.ClearNamedFramebufferfv(f.id, driver.COLOR, db, v.floats[:])
	}
}

// ClearColorBytes clears a color attachment from four raw values of typ in
// native byte order. raw must hold exactly four values.
//
// Float, fixed and double values use the float clear; byte, short and int
// values the signed clear; unsigned values the unsigned clear.
func (f *Framebuffer) ClearColorBytes(raw []byte, drawBuffer int, typ DataType) error {
	size := typ.Size()
	if size == 0 || typ.IsPacked() {
		return fmt.Errorf("%w: unsupported type for buffer clear value: %s", ErrInvalidArgument, typ)
	}
	if len(raw)%size != 0 {
		return fmt.Errorf("%w: clear value item size does not match requested type size", ErrInvalidArgument)
	}
	if n := len(raw) / size; n != 4 {
		return fmt.Errorf("%w: clear value buffer must be 4 items long, got %d items", ErrInvalidArgument, n)
	}

	v, err := decodeClearValue(raw, typ)
	if err != nil {
		return err
	}
	f.ClearColor(v, drawBuffer)
	return nil
}

func decodeClearValue(raw []byte, typ DataType) (ClearValue, error) {
	var v ClearValue
	ne := binary.NativeEndian
	size := typ.Size()
	for i := range 4 {
		b := raw[i*size : (i+1)*size]
		switch typ {
		case TypeFloat:
			v.kind, v.floats[i] = clearFloat, math.Float32frombits(ne.Uint32(b))
		case TypeDouble:
			v.kind, v.floats[i] = clearFloat, float32(math.Float64frombits(ne.Uint64(b)))
		case TypeFixed:
			v.kind, v.floats[i] = clearFloat, float32(int32(ne.Uint32(b)))/65536 //nolint:gosec // 16.16 fixed point
		case TypeByte:
			v.kind, v.ints[i] = clearInt, int32(int8(b[0]))
		case TypeShort:
			v.kind, v.ints[i] = clearInt, int32(int16(ne.Uint16(b))) //nolint:gosec // reinterpret bits
		case TypeInt:
			v.kind, v.ints[i] = clearInt, int32(ne.Uint32(b)) //nolint:gosec // reinterpret bits
		case TypeUnsignedByte:
			v.kind, v.uints[i] = clearUint, uint32(b[0])
		case TypeUnsignedShort:
			v.kind, v.uints[i] = clearUint, uint32(ne.Uint16(b))
		case TypeUnsignedInt:
			v.kind, v.uints[i] = clearUint, ne.Uint32(b)
		default:
			return v, fmt.Errorf("%w: unsupported type for buffer clear value: %s", ErrInvalidArgument, typ)
		}
	}
	return v, nil
}

// ClearDepth clears the depth attachment.
func (f *Framebuffer) ClearDepth(depth float32) {
	f.dev.fns.ClearNamedFramebufferfv(f.id, driver.DEPTH, 0, []float32{depth})
}

// ClearStencil clears the stencil attachment.
func (f *Framebuffer) ClearStencil(stencil int32) {
	f.dev.fns.ClearNamedFramebufferiv(f.id, driver.STENCIL, 0, []int32{stencil})
}

// ClearDepthStencil clears the depth and stencil attachments together.
func (f *Framebuffer) ClearDepthStencil(depth float32, stencil int32) {
	f.dev.fns.ClearNamedFramebufferfi(f.id, driver.DEPTH_STENCIL, 0, depth, stencil)
}

// ReadColorAttachment copies the texture of a single-sampled attachment into
// dst using the given client format and type.
func (f *Framebuffer) ReadColorAttachment(point AttachmentPoint, format PixelFormat, typ DataType, dst []byte) error {
	a, err := f.find(point)
	if err != nil {
		return err
	}
	if a.settings.UseRenderbuffer || a.settings.IsMultisampled() {
		return fmt.Errorf("%w: attachment %s cannot be read back", ErrInvalidState, a.settings.attachmentPoint())
	}
	f.dev.fns.GetTextureImage(a.texture, 0, driver.Enum(format), driver.Enum(typ), dst)
	return f.dev.checkError("GetTextureImage")
}

// Bind binds the framebuffer for drawing and reading.
func (f *Framebuffer) Bind() { f.dev.fns.BindFramebuffer(driver.FRAMEBUFFER, f.id) }

// Unbind binds the default framebuffer.
func (f *Framebuffer) Unbind() { f.dev.fns.BindFramebuffer(driver.FRAMEBUFFER, 0) }

// SetDebugName attaches a debug label to the framebuffer.
func (f *Framebuffer) SetDebugName(name string) {
	f.dev.fns.ObjectLabel(driver.FRAMEBUFFER, uint32(f.id), name)
}

func (f *Framebuffer) objectName() (driver.Enum, uint32) { return driver.FRAMEBUFFER, uint32(f.id) }

// Destroy deletes the framebuffer and its attachment objects. It is safe to
// call more than once.
func (f *Framebuffer) Destroy() {
	if f.id == 0 {
		return
	}
	id := f.id
	f.release()
	f.dev.logger().Debug("glkit: framebuffer destroyed", "id", id)
}

func (f *Framebuffer) String() string {
	return fmt.Sprintf("Framebuffer(id: %d, width: %d, height: %d, attachments: %d)",
		f.id, f.width, f.height, len(f.attachments))
}
