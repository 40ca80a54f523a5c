package glfake

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/glkit/driver"
)

type renderbuffer struct {
	format  driver.Enum
	width   int
	height  int
	samples int
}

type attachment struct {
	texture      driver.Texture
	renderbuffer driver.Renderbuffer
	level        int
}

type framebuffer struct {
	attachments map[driver.Enum]attachment
	drawBuffers []driver.Enum
}

// Clear is a recorded ClearNamedFramebuffer* call.
type Clear struct {
	Framebuffer driver.Framebuffer
	Buffer      driver.Enum
	DrawBuffer  int32
	Floats      []float32
	Ints        []int32
	Uints       []uint32
	Depth       float32
	Stencil     int32
}

// RenderbufferInfo describes a renderbuffer's storage.
type RenderbufferInfo struct {
	InternalFormat driver.Enum
	Width          int
	Height         int
	Samples        int
}

// RenderbufferInfo returns the storage description of a renderbuffer.
func (d *Driver) RenderbufferInfo(r driver.Renderbuffer) (RenderbufferInfo, bool) {
	rb, ok := d.renderbuffers[r]
	if !ok {
		return RenderbufferInfo{}, false
	}
	return RenderbufferInfo{rb.format, rb.width, rb.height, rb.samples}, true
}

// DrawBuffers returns the draw buffers of a framebuffer.
func (d *Driver) DrawBuffers(f driver.Framebuffer) []driver.Enum {
	if fb, ok := d.framebuffers[f]; ok {
		return fb.drawBuffers
	}
	return nil
}

// Attachment returns the object attached at a framebuffer attachment point.
// Exactly one of the returned handles is valid when ok is true.
func (d *Driver) Attachment(f driver.Framebuffer, point driver.Enum) (driver.Texture, driver.Renderbuffer, bool) {
	fb, ok := d.framebuffers[f]
	if !ok {
		return 0, 0, false
	}
	a, ok := fb.attachments[point]
	return a.texture, a.renderbuffer, ok
}

func (d *Driver) CreateRenderbuffer() driver.Renderbuffer {
	d.call("CreateRenderbuffer")
	r := driver.Renderbuffer(d.name())
	d.renderbuffers[r] = &renderbuffer{}
	return r
}

func (d *Driver) DeleteRenderbuffer(r driver.Renderbuffer) {
	d.call("DeleteRenderbuffer")
	delete(d.renderbuffers, r)
}

func (d *Driver) NamedRenderbufferStorage(r driver.Renderbuffer, internalFormat driver.Enum, width, height int) {
	d.call("NamedRenderbufferStorage")
	d.renderbufferStorage("NamedRenderbufferStorage", r, 1, internalFormat, width, height)
}

func (d *Driver) NamedRenderbufferStorageMultisample(r driver.Renderbuffer, samples int, internalFormat driver.Enum, width, height int) {
	d.call("NamedRenderbufferStorageMultisample")
	d.renderbufferStorage("NamedRenderbufferStorageMultisample", r, samples, internalFormat, width, height)
}

func (d *Driver) renderbufferStorage(fn string, r driver.Renderbuffer, samples int, format driver.Enum, w, h int) {
	rb, ok := d.renderbuffers[r]
	if !ok {
		d.fail(driver.INVALID_OPERATION, "%s: %d is not a renderbuffer", fn, r)
		return
	}
	if w < 1 || h < 1 || samples < 0 {
		d.fail(driver.INVALID_VALUE, "%s: size %dx%d samples %d", fn, w, h, samples)
		return
	}
	rb.format, rb.width, rb.height, rb.samples = format, w, h, max(samples, 1)
}

func (d *Driver) CreateFramebuffer() driver.Framebuffer {
	d.call("CreateFramebuffer")
	f := driver.Framebuffer(d.name())
	d.framebuffers[f] = &framebuffer{
		attachments: make(map[driver.Enum]attachment),
		drawBuffers: []driver.Enum{driver.COLOR_ATTACHMENT0},
	}
	return f
}

func (d *Driver) DeleteFramebuffer(f driver.Framebuffer) {
	d.call("DeleteFramebuffer")
	delete(d.framebuffers, f)
	for target, bound := range d.State.Framebuffers {
		if bound == f {
			delete(d.State.Framebuffers, target)
		}
	}
}

func (d *Driver) lookupFramebuffer(fn string, f driver.Framebuffer) *framebuffer {
	fb, ok := d.framebuffers[f]
	if !ok {
		d.fail(driver.INVALID_OPERATION, "%s: %d is not a framebuffer", fn, f)
		return nil
	}
	return fb
}

func validAttachmentPoint(point driver.Enum) bool {
	switch point {
	case driver.DEPTH_ATTACHMENT, driver.STENCIL_ATTACHMENT, driver.DEPTH_STENCIL_ATTACHMENT:
		return true
	}
	return point >= driver.COLOR_ATTACHMENT0 && point < driver.COLOR_ATTACHMENT0+8
}

func (d *Driver) NamedFramebufferTexture(f driver.Framebuffer, point driver.Enum, t driver.Texture, level int) {
	d.call("NamedFramebufferTexture")
	fb := d.lookupFramebuffer("NamedFramebufferTexture", f)
	if fb == nil {
		return
	}
	if !validAttachmentPoint(point) {
		d.fail(driver.INVALID_ENUM, "NamedFramebufferTexture: attachment 0x%X", uint32(point))
		return
	}
	if !t.Valid() {
		delete(fb.attachments, point)
		return
	}
	if d.lookupTexture("NamedFramebufferTexture", t) == nil {
		return
	}
	fb.attachments[point] = attachment{texture: t, level: level}
}

func (d *Driver) NamedFramebufferRenderbuffer(f driver.Framebuffer, point driver.Enum, r driver.Renderbuffer) {
	d.call("NamedFramebufferRenderbuffer")
	fb := d.lookupFramebuffer("NamedFramebufferRenderbuffer", f)
	if fb == nil {
		return
	}
	if !validAttachmentPoint(point) {
		d.fail(driver.INVALID_ENUM, "NamedFramebufferRenderbuffer: attachment 0x%X", uint32(point))
		return
	}
	if !r.Valid() {
		delete(fb.attachments, point)
		return
	}
	if _, ok := d.renderbuffers[r]; !ok {
		d.fail(driver.INVALID_OPERATION, "NamedFramebufferRenderbuffer: %d is not a renderbuffer", r)
		return
	}
	fb.attachments[point] = attachment{renderbuffer: r}
}

func (d *Driver) NamedFramebufferDrawBuffer(f driver.Framebuffer, buf driver.Enum) {
	d.call("NamedFramebufferDrawBuffer")
	fb := d.lookupFramebuffer("NamedFramebufferDrawBuffer", f)
	if fb == nil {
		return
	}
	if buf == driver.NONE {
		fb.drawBuffers = nil
		return
	}
	fb.drawBuffers = []driver.Enum{buf}
}

func (d *Driver) NamedFramebufferDrawBuffers(f driver.Framebuffer, bufs []driver.Enum) {
	d.call("NamedFramebufferDrawBuffers")
	fb := d.lookupFramebuffer("NamedFramebufferDrawBuffers", f)
	if fb == nil {
		return
	}
	seen := make(map[driver.Enum]bool, len(bufs))
	for _, b := range bufs {
		if b != driver.NONE && seen[b] {
			d.fail(driver.INVALID_OPERATION, "NamedFramebufferDrawBuffers: 0x%X listed twice", uint32(b))
			return
		}
		seen[b] = true
	}
	fb.drawBuffers = append([]driver.Enum(nil), bufs...)
}

func isDepthStencilFormat(format driver.Enum) bool {
	switch format {
	case driver.DEPTH_COMPONENT, driver.DEPTH_STENCIL, driver.DEPTH_COMPONENT16, driver.DEPTH_COMPONENT24,
		driver.DEPTH_COMPONENT32, driver.DEPTH_COMPONENT32F, driver.DEPTH24_STENCIL8,
		driver.DEPTH32F_STENCIL8, driver.STENCIL_INDEX8:
		return true
	}
	return false
}

func (d *Driver) attachmentShape(a attachment) (format driver.Enum, w, h, samples int, ok bool) {
	if a.texture.Valid() {
		tex, found := d.textures[a.texture]
		if !found || tex.levels == 0 {
			return 0, 0, 0, 0, false
		}
		w, h, _ := d.levelSize(tex, a.level)
		return tex.format, w, h, tex.samples, true
	}
	rb, found := d.renderbuffers[a.renderbuffer]
	if !found || rb.width == 0 {
		return 0, 0, 0, 0, false
	}
	return rb.format, rb.width, rb.height, rb.samples, true
}

func (d *Driver) CheckNamedFramebufferStatus(f driver.Framebuffer, target driver.Enum) driver.Enum {
	d.call("CheckNamedFramebufferStatus")
	if !f.Valid() {
		return driver.FRAMEBUFFER_COMPLETE
	}
	fb := d.lookupFramebuffer("CheckNamedFramebufferStatus", f)
	if fb == nil {
		return 0
	}
	if len(fb.attachments) == 0 {
		return driver.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	}
	first := true
	var width, height, samples int
	for point, a := range fb.attachments {
		format, w, h, s, ok := d.attachmentShape(a)
		if !ok {
			return driver.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
		depthPoint := point == driver.DEPTH_ATTACHMENT || point == driver.STENCIL_ATTACHMENT ||
			point == driver.DEPTH_STENCIL_ATTACHMENT
		if depthPoint != isDepthStencilFormat(format) {
			return driver.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
		if first {
			width, height, samples = w, h, s
			first = false
			continue
		}
		if w != width || h != height {
			return driver.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
		if s != samples {
			return driver.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE
		}
	}
	for _, b := range fb.drawBuffers {
		if b == driver.NONE {
			continue
		}
		if _, ok := fb.attachments[b]; !ok {
			return driver.FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER
		}
	}
	return driver.FRAMEBUFFER_COMPLETE
}

func (d *Driver) BindFramebuffer(target driver.Enum, f driver.Framebuffer) {
	d.call("BindFramebuffer")
	if f.Valid() && d.lookupFramebuffer("BindFramebuffer", f) == nil {
		return
	}
	switch target {
	case driver.FRAMEBUFFER:
		d.State.Framebuffers[driver.DRAW_FRAMEBUFFER] = f
		d.State.Framebuffers[driver.READ_FRAMEBUFFER] = f
	case driver.DRAW_FRAMEBUFFER, driver.READ_FRAMEBUFFER:
		d.State.Framebuffers[target] = f
	default:
		d.fail(driver.INVALID_ENUM, "BindFramebuffer: target 0x%X", uint32(target))
	}
}

func (d *Driver) ClearNamedFramebufferfv(f driver.Framebuffer, buffer driver.Enum, drawBuffer int32, value []float32) {
	d.call("ClearNamedFramebufferfv")
	d.Clears = append(d.Clears, Clear{Framebuffer: f, Buffer: buffer, DrawBuffer: drawBuffer,
		Floats: append([]float32(nil), value...)})
	if buffer == driver.COLOR {
		d.fillColor(f, drawBuffer, value)
	}
}

func (d *Driver) ClearNamedFramebufferiv(f driver.Framebuffer, buffer driver.Enum, drawBuffer int32, value []int32) {
	d.call("ClearNamedFramebufferiv")
	d.Clears = append(d.Clears, Clear{Framebuffer: f, Buffer: buffer, DrawBuffer: drawBuffer,
		Ints: append([]int32(nil), value...)})
}

func (d *Driver) ClearNamedFramebufferuiv(f driver.Framebuffer, buffer driver.Enum, drawBuffer int32, value []uint32) {
	d.call("ClearNamedFramebufferuiv")
	d.Clears = append(d.Clears, Clear{Framebuffer: f, Buffer: buffer, DrawBuffer: drawBuffer,
		Uints: append([]uint32(nil), value...)})
}

func (d *Driver) ClearNamedFramebufferfi(f driver.Framebuffer, buffer driver.Enum, drawBuffer int32, depth float32, stencil int32) {
	d.call("ClearNamedFramebufferfi")
	d.Clears = append(d.Clears, Clear{Framebuffer: f, Buffer: buffer, DrawBuffer: drawBuffer,
		Depth: depth, Stencil: stencil})
}

// fillColor writes a float clear value into an RGBA8 or RGBA32F texture
// attached at the given draw buffer so that read-back observes the clear.
func (d *Driver) fillColor(f driver.Framebuffer, drawBuffer int32, value []float32) {
	fb, ok := d.framebuffers[f]
	if !ok || drawBuffer < 0 || int(drawBuffer) >= len(fb.drawBuffers) || len(value) < 4 {
		return
	}
	a, ok := fb.attachments[fb.drawBuffers[drawBuffer]]
	if !ok || !a.texture.Valid() {
		return
	}
	tex := d.textures[a.texture]
	var pixel []byte
	switch tex.format {
	case driver.RGBA8, driver.SRGB8_ALPHA8:
		pixel = make([]byte, 4)
		for i := range pixel {
			pixel[i] = byte(math.Round(float64(min(max(value[i], 0), 1)) * 255))
		}
	case driver.RGBA32F:
		pixel = make([]byte, 16)
		for i := 0; i < 4; i++ {
			binary.LittleEndian.PutUint32(pixel[i*4:], math.Float32bits(value[i]))
		}
	default:
		return
	}
	w, h, depth := d.levelSize(tex, a.level)
	img := &image{pixelSize: len(pixel), width: w, height: h, depth: depth, data: make([]byte, w*h*depth*len(pixel))}
	for i := 0; i < len(img.data); i += len(pixel) {
		copy(img.data[i:], pixel)
	}
	tex.images[a.level] = img
}
