package glkit

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/glkit/driver"
)

// colorDepthAttachments returns a writable RGBA8 color texture and a depth
// renderbuffer.
func colorDepthAttachments() (color, depth *FramebufferAttachment) {
	color = NewFramebufferAttachment(AttachmentColor0, FormatRGBA8)
	depth = NewFramebufferAttachment(AttachmentDepth, FormatDepth24)
	depth.UseRenderbuffer = true
	depth.Writable = false
	return color, depth
}

// ===== FramebufferAttachment =====

func TestNewFramebufferAttachment(t *testing.T) {
	a := NewFramebufferAttachment(2, FormatRGBA8)
	if a.Point != ColorAttachment(2) {
		t.Errorf("Point = %s, want COLOR_ATTACHMENT2", a.Point)
	}
	if !a.IsResizable() || !a.Writable || a.Samples != 1 || a.IsMultisampled() {
		t.Errorf("defaults = %+v", a)
	}
	if !a.IsColorAttachment() || a.IsDepthAttachment() {
		t.Error("color attachment reported as depth")
	}

	a.SetSize(16, 8)
	if w, h := a.Size(); w != 16 || h != 8 || a.IsResizable() {
		t.Errorf("Size() = %d, %d resizable %t after SetSize", w, h, a.IsResizable())
	}
	a.SetSize(0, 0)
	if !a.IsResizable() {
		t.Error("SetSize(0, 0) did not make the attachment resizable")
	}

	for _, p := range []AttachmentPoint{AttachmentDepth, AttachmentStencil, AttachmentDepthStencil} {
		if !NewFramebufferAttachment(p, FormatDepth24Stencil8).IsDepthAttachment() {
			t.Errorf("%s not reported as a depth attachment", p)
		}
	}
}

// ===== Creation =====

func TestCreateFramebuffer_ColorAndDepth(t *testing.T) {
	dev, fake := newTestDevice(t)
	color, depth := colorDepthAttachments()

	fb, err := dev.CreateFramebuffer([]*FramebufferAttachment{color, depth}, 8, 8)
	if err != nil {
		t.Fatalf("CreateFramebuffer() error = %v", err)
	}
	defer fb.Destroy()

	if got := fb.DrawBuffers(); !slices.Equal(got, []AttachmentPoint{AttachmentColor0}) {
		t.Errorf("DrawBuffers() = %v, want [COLOR_ATTACHMENT0]", got)
	}
	if got := fake.DrawBuffers(fb.ID()); !slices.Equal(got, []driver.Enum{driver.COLOR_ATTACHMENT0}) {
		t.Errorf("driver draw buffers = %v", got)
	}
	if w, h := fb.Size(); w != 8 || h != 8 || fb.AttachmentCount() != 2 {
		t.Errorf("Size() = %d, %d, AttachmentCount() = %d", w, h, fb.AttachmentCount())
	}

	tex, _, ok := fake.Attachment(fb.ID(), driver.COLOR_ATTACHMENT0)
	if !ok || !tex.Valid() {
		t.Fatal("no texture attached at COLOR_ATTACHMENT0")
	}
	if got, _ := fake.TextureParameter(tex, driver.TEXTURE_MAX_LEVEL); got != 0 {
		t.Errorf("color texture MAX_LEVEL = %d, want 0", got)
	}
	_, rb, ok := fake.Attachment(fb.ID(), driver.DEPTH_ATTACHMENT)
	if !ok || !rb.Valid() {
		t.Fatal("no renderbuffer attached at DEPTH_ATTACHMENT")
	}
	if info, _ := fake.RenderbufferInfo(rb); info.InternalFormat != driver.DEPTH_COMPONENT24 || info.Width != 8 {
		t.Errorf("depth renderbuffer = %+v", info)
	}

	got, err := fb.Attachment(0)
	if err != nil || got != color {
		t.Errorf("Attachment(0) = %v, %v, want the color settings", got, err)
	}
	if id, err := fb.AttachmentID(AttachmentDepth); err != nil || id != uint32(rb) {
		t.Errorf("AttachmentID(depth) = %d, %v, want %d", id, err, rb)
	}
	if _, err := fb.Attachment(AttachmentStencil); !errors.Is(err, ErrNotFound) {
		t.Errorf("Attachment(stencil) error = %v, want ErrNotFound", err)
	}
	requireNoGLError(t, fake)
}

func TestCreateFramebuffer_DepthOnly(t *testing.T) {
	dev, fake := newTestDevice(t)
	_, depth := colorDepthAttachments()

	fb, err := dev.CreateFramebuffer([]*FramebufferAttachment{depth}, 4, 4)
	if err != nil {
		t.Fatalf("CreateFramebuffer() error = %v", err)
	}
	defer fb.Destroy()

	if len(fb.DrawBuffers()) != 0 || len(fake.DrawBuffers(fb.ID())) != 0 {
		t.Error("depth-only framebuffer has draw buffers")
	}
	if fake.Calls["NamedFramebufferDrawBuffer"] != 1 {
		t.Error("draw buffer not set to NONE")
	}
}

func TestCreateFramebuffer_ReadOnlyColorIsNotDrawn(t *testing.T) {
	dev, _ := newTestDevice(t)

	a := NewFramebufferAttachment(AttachmentColor0, FormatRGBA8)
	b := NewFramebufferAttachment(1, FormatRGBA8)
	b.Writable = false
	c := NewFramebufferAttachment(2, FormatR32F)

	fb, err := dev.CreateFramebuffer([]*FramebufferAttachment{a, b, c}, 4, 4)
	if err != nil {
		t.Fatalf("CreateFramebuffer() error = %v", err)
	}
	defer fb.Destroy()

	want := []AttachmentPoint{AttachmentColor0, ColorAttachment(2)}
	if got := fb.DrawBuffers(); !slices.Equal(got, want) {
		t.Errorf("DrawBuffers() = %v, want %v", got, want)
	}
}

func TestCreateFramebuffer_LiteralBareIndex(t *testing.T) {
	dev, fake := newTestDevice(t)

	a := &FramebufferAttachment{
		Samples:   1,
		Format:    FormatRGBA8,
		MinFilter: FilterNearest,
		MagFilter: FilterNearest,
		Point:     0,
		Writable:  true,
	}
	fb, err := dev.CreateFramebuffer([]*FramebufferAttachment{a}, 4, 4)
	if err != nil {
		t.Fatalf("CreateFramebuffer() error = %v", err)
	}
	defer fb.Destroy()

	if tex, _, ok := fake.Attachment(fb.ID(), driver.COLOR_ATTACHMENT0); !ok || !tex.Valid() {
		t.Fatal("bare index 0 not attached at COLOR_ATTACHMENT0")
	}
	if got := fb.DrawBuffers(); !slices.Equal(got, []AttachmentPoint{AttachmentColor0}) {
		t.Errorf("DrawBuffers() = %v, want [COLOR_ATTACHMENT0]", got)
	}
	for _, p := range []AttachmentPoint{0, AttachmentColor0} {
		if got, err := fb.Attachment(p); err != nil || got != a {
			t.Errorf("Attachment(%s) = %v, %v, want the literal settings", p, got, err)
		}
	}
	if a.Point != 0 {
		t.Errorf("settings Point rewritten to %s", a.Point)
	}
	requireNoGLError(t, fake)
}

func TestCreateFramebuffer_Errors(t *testing.T) {
	t.Run("nil attachment", func(t *testing.T) {
		dev, fake := newTestDevice(t)
		_, err := dev.CreateFramebuffer([]*FramebufferAttachment{nil}, 4, 4)
		if !errors.Is(err, ErrInvalidType) {
			t.Errorf("CreateFramebuffer() error = %v, want ErrInvalidType", err)
		}
		if fake.Calls["CreateFramebuffer"] != 0 {
			t.Error("driver called for a nil attachment")
		}
	})

	t.Run("depth format at color point", func(t *testing.T) {
		dev, fake := newTestDevice(t)
		bad := NewFramebufferAttachment(AttachmentColor0, FormatDepth24)
		_, err := dev.CreateFramebuffer([]*FramebufferAttachment{bad}, 4, 4)
		if !errors.Is(err, ErrDriver) || !strings.Contains(err.Error(), "FRAMEBUFFER_INCOMPLETE_ATTACHMENT") {
			t.Errorf("CreateFramebuffer() error = %v, want incomplete attachment", err)
		}
		requireNoLeaks(t, fake)
		requireNoGLError(t, fake)
	})

	t.Run("mismatched sizes", func(t *testing.T) {
		dev, fake := newTestDevice(t)
		color, depth := colorDepthAttachments()
		depth.SetSize(2, 2)
		_, err := dev.CreateFramebuffer([]*FramebufferAttachment{color, depth}, 4, 4)
		if !errors.Is(err, ErrDriver) {
			t.Errorf("CreateFramebuffer() error = %v, want ErrDriver", err)
		}
		requireNoLeaks(t, fake)
	})

	t.Run("no attachments", func(t *testing.T) {
		dev, fake := newTestDevice(t)
		_, err := dev.CreateFramebuffer(nil, 4, 4)
		if !errors.Is(err, ErrDriver) || !strings.Contains(err.Error(), "MISSING_ATTACHMENT") {
			t.Errorf("CreateFramebuffer() error = %v, want missing attachment", err)
		}
		requireNoLeaks(t, fake)
	})
}

func TestCreateFramebuffer_Multisample(t *testing.T) {
	dev, fake := newTestDevice(t)
	color, depth := colorDepthAttachments()
	color.Samples = 4
	depth.Samples = 4

	fb, err := dev.CreateFramebuffer([]*FramebufferAttachment{color, depth}, 8, 8)
	if err != nil {
		t.Fatalf("CreateFramebuffer() error = %v", err)
	}
	defer fb.Destroy()

	tex, _, _ := fake.Attachment(fb.ID(), driver.COLOR_ATTACHMENT0)
	if info, _ := fake.TextureInfo(tex); info.Target != driver.TEXTURE_2D_MULTISAMPLE || info.Samples != 4 {
		t.Errorf("color texture = %+v, want 4-sample TEXTURE_2D_MULTISAMPLE", info)
	}
	if fake.Calls["NamedRenderbufferStorageMultisample"] != 1 {
		t.Error("depth renderbuffer not allocated multisampled")
	}
	if err := fb.ReadColorAttachment(AttachmentColor0, PixelRGBA, TypeUnsignedByte, make([]byte, 256)); !errors.Is(err, ErrInvalidState) {
		t.Errorf("ReadColorAttachment() error = %v, want ErrInvalidState", err)
	}
}

// ===== Clearing and read-back =====

func TestFramebuffer_ClearColorAndRead(t *testing.T) {
	dev, fake := newTestDevice(t)
	color, depth := colorDepthAttachments()

	fb, err := dev.CreateFramebuffer([]*FramebufferAttachment{color, depth}, 8, 8)
	if err != nil {
		t.Fatalf("CreateFramebuffer() error = %v", err)
	}
	defer fb.Destroy()

	fb.ClearColor(ClearFloat(1, 0, 0, 1), 0)
	fb.ClearDepth(1)

	dst := make([]byte, 8*8*4)
	if err := fb.ReadColorAttachment(0, PixelRGBA, TypeUnsignedByte, dst); err != nil {
		t.Fatalf("ReadColorAttachment() error = %v", err)
	}
	want := bytes.Repeat([]byte{255, 0, 0, 255}, 64)
	if !bytes.Equal(dst, want) {
		t.Errorf("read-back = %v..., want opaque red", dst[:8])
	}

	if len(fake.Clears) != 2 {
		t.Fatalf("recorded %d clears, want 2", len(fake.Clears))
	}
	if c := fake.Clears[1]; c.Buffer != driver.DEPTH || !slices.Equal(c.Floats, []float32{1}) {
		t.Errorf("depth clear = %+v", c)
	}
	if err := fb.ReadColorAttachment(AttachmentDepth, PixelDepth, TypeFloat, dst); !errors.Is(err, ErrInvalidState) {
		t.Errorf("ReadColorAttachment(renderbuffer) error = %v, want ErrInvalidState", err)
	}
	if err := fb.ReadColorAttachment(3, PixelRGBA, TypeUnsignedByte, dst); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReadColorAttachment(missing) error = %v, want ErrNotFound", err)
	}
}

func TestFramebuffer_ClearVariants(t *testing.T) {
	dev, fake := newTestDevice(t)

	fb, err := dev.CreateFramebuffer([]*FramebufferAttachment{
		NewFramebufferAttachment(0, FormatR32I),
		NewFramebufferAttachment(1, FormatRGBA8UI),
		NewFramebufferAttachment(AttachmentDepthStencil, FormatDepth24Stencil8),
	}, 4, 4)
	if err != nil {
		t.Fatalf("CreateFramebuffer() error = %v", err)
	}
	defer fb.Destroy()

	fb.ClearColor(ClearInt(-1, 2, 3, 4), 0)
	fb.ClearColor(ClearUint(5, 6, 7, 8), 1)
	fb.ClearStencil(3)
	fb.ClearDepthStencil(0.5, 7)

	clears := fake.Clears
	if len(clears) != 4 {
		t.Fatalf("recorded %d clears, want 4", len(clears))
	}
	if !slices.Equal(clears[0].Ints, []int32{-1, 2, 3, 4}) || clears[0].DrawBuffer != 0 {
		t.Errorf("int clear = %+v", clears[0])
	}
	if !slices.Equal(clears[1].Uints, []uint32{5, 6, 7, 8}) || clears[1].DrawBuffer != 1 {
		t.Errorf("uint clear = %+v", clears[1])
	}
	if clears[2].Buffer != driver.STENCIL || !slices.Equal(clears[2].Ints, []int32{3}) {
		t.Errorf("stencil clear = %+v", clears[2])
	}
	if c := clears[3]; c.Buffer != driver.DEPTH_STENCIL || c.Depth != 0.5 || c.Stencil != 7 {
		t.Errorf("depth-stencil clear = %+v", c)
	}
}

func TestFramebuffer_ClearColorBytes(t *testing.T) {
	ne := binary.NativeEndian
	floats := make([]byte, 16)
	for i, v := range []float32{0.25, 0.5, 0.75, 1} {
		ne.PutUint32(floats[i*4:], math.Float32bits(v))
	}
	shorts := make([]byte, 8)
	for i, v := range []int16{-1, 0, 1, 2} {
		ne.PutUint16(shorts[i*2:], uint16(v))
	}

	tests := []struct {
		name      string
		raw       []byte
		typ       DataType
		wantFloat []float32
		wantInt   []int32
		wantUint  []uint32
		wantErr   bool
	}{
		{name: "float", raw: floats, typ: TypeFloat, wantFloat: []float32{0.25, 0.5, 0.75, 1}},
		{name: "short", raw: shorts, typ: TypeShort, wantInt: []int32{-1, 0, 1, 2}},
		{name: "unsigned byte", raw: []byte{9, 8, 7, 6}, typ: TypeUnsignedByte, wantUint: []uint32{9, 8, 7, 6}},
		{name: "signed byte", raw: []byte{0xFF, 1, 2, 3}, typ: TypeByte, wantInt: []int32{-1, 1, 2, 3}},
		{name: "three items", raw: make([]byte, 12), typ: TypeFloat, wantErr: true},
		{name: "ragged", raw: make([]byte, 15), typ: TypeFloat, wantErr: true},
		{name: "packed type", raw: make([]byte, 8), typ: TypeUnsignedShort4444, wantErr: true},
		{name: "unknown type", raw: make([]byte, 4), typ: DataType(0x1234), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, fake := newTestDevice(t)
			fb, err := dev.CreateFramebuffer([]*FramebufferAttachment{NewFramebufferAttachment(0, FormatRGBA32F)}, 2, 2)
			if err != nil {
				t.Fatalf("CreateFramebuffer() error = %v", err)
			}
			defer fb.Destroy()

			err = fb.ClearColorBytes(tt.raw, 0, tt.typ)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("ClearColorBytes() error = %v, want ErrInvalidArgument", err)
				}
				if len(fake.Clears) != 0 {
					t.Error("invalid clear value reached the driver")
				}
				return
			}
			if err != nil {
				t.Fatalf("ClearColorBytes() error = %v", err)
			}
			c := fake.Clears[0]
			if !slices.Equal(c.Floats, tt.wantFloat) || !slices.Equal(c.Ints, tt.wantInt) || !slices.Equal(c.Uints, tt.wantUint) {
				t.Errorf("clear = %+v", c)
			}
		})
	}
}

// ===== Resize and lifetime =====

func TestFramebuffer_Resize(t *testing.T) {
	dev, fake := newTestDevice(t)
	color, depth := colorDepthAttachments()

	fb, err := dev.CreateFramebuffer([]*FramebufferAttachment{color, depth}, 8, 8)
	if err != nil {
		t.Fatalf("CreateFramebuffer() error = %v", err)
	}
	defer fb.Destroy()

	created := fake.Calls["CreateFramebuffer"]
	if err := fb.Resize(0, 16); err != nil {
		t.Fatalf("Resize(0, 16) error = %v", err)
	}
	if err := fb.Resize(8, 8); err != nil {
		t.Fatalf("Resize(8, 8) error = %v", err)
	}
	if fake.Calls["CreateFramebuffer"] != created {
		t.Error("no-op resize recreated the framebuffer")
	}

	if err := fb.Resize(16, 12); err != nil {
		t.Fatalf("Resize(16, 12) error = %v", err)
	}
	if fb.Width() != 16 || fb.Height() != 12 {
		t.Errorf("size after Resize = %dx%d", fb.Width(), fb.Height())
	}
	tex, _, _ := fake.Attachment(fb.ID(), driver.COLOR_ATTACHMENT0)
	if info, _ := fake.TextureInfo(tex); info.Width != 16 || info.Height != 12 {
		t.Errorf("color texture = %dx%d, want 16x12", info.Width, info.Height)
	}
	if live := fake.Live(); live.Framebuffers != 1 || live.Textures != 1 || live.Renderbuffers != 1 {
		t.Errorf("live objects after Resize = %+v", live)
	}
	requireNoGLError(t, fake)
}

func TestFramebuffer_ResizeIncompleteReleases(t *testing.T) {
	dev, fake := newTestDevice(t)
	color, depth := colorDepthAttachments()
	depth.SetSize(8, 8)

	fb, err := dev.CreateFramebuffer([]*FramebufferAttachment{color, depth}, 8, 8)
	if err != nil {
		t.Fatalf("CreateFramebuffer() error = %v", err)
	}

	if err := fb.Resize(16, 16); !errors.Is(err, ErrDriver) {
		t.Fatalf("Resize() error = %v, want ErrDriver", err)
	}
	if fb.ID().Valid() {
		t.Error("framebuffer kept after a failed Resize")
	}
	requireNoLeaks(t, fake)

	fb.Destroy()
	if err := fb.Resize(32, 32); !errors.Is(err, ErrDestroyed) {
		t.Errorf("Resize() after release error = %v, want ErrDestroyed", err)
	}
}

func TestFramebuffer_SharedSettings(t *testing.T) {
	dev, fake := newTestDevice(t)
	color, depth := colorDepthAttachments()
	attachments := []*FramebufferAttachment{color, depth}

	a, err := dev.CreateFramebuffer(attachments, 8, 8)
	if err != nil {
		t.Fatalf("CreateFramebuffer(a) error = %v", err)
	}
	b, err := dev.CreateFramebuffer(attachments, 4, 4)
	if err != nil {
		t.Fatalf("CreateFramebuffer(b) error = %v", err)
	}

	aColor, _ := a.AttachmentID(0)
	bColor, _ := b.AttachmentID(0)
	if aColor == bColor {
		t.Error("framebuffers share an attachment object")
	}

	a.Destroy()
	b.Destroy()
	b.Destroy()
	requireNoLeaks(t, fake)
}

func TestFramebuffer_BindAndLabel(t *testing.T) {
	dev, fake := newTestDevice(t)
	color, _ := colorDepthAttachments()

	fb, err := dev.CreateFramebuffer([]*FramebufferAttachment{color}, 2, 2)
	if err != nil {
		t.Fatalf("CreateFramebuffer() error = %v", err)
	}
	defer fb.Destroy()

	fb.Bind()
	if fake.State.Framebuffers[driver.DRAW_FRAMEBUFFER] != fb.ID() || fake.State.Framebuffers[driver.READ_FRAMEBUFFER] != fb.ID() {
		t.Error("Bind() did not bind draw and read framebuffers")
	}
	fb.Unbind()
	if fake.State.Framebuffers[driver.DRAW_FRAMEBUFFER] != 0 {
		t.Error("Unbind() left the framebuffer bound")
	}

	dev.SetObjectName(fb, "gbuffer")
	if got := fake.Label(driver.FRAMEBUFFER, uint32(fb.ID())); got != "gbuffer" {
		t.Errorf("label = %q, want gbuffer", got)
	}
	if !strings.HasPrefix(fb.String(), "Framebuffer(id: ") || !strings.HasSuffix(fb.String(), "width: 2, height: 2, attachments: 1)") {
		t.Errorf("String() = %q", fb.String())
	}
}
