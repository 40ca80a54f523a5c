package glkit

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/glkit/driver"
)

func TestDevice_Info(t *testing.T) {
	dev, _ := newTestDevice(t)

	want := DeviceInfo{
		Vendor:          "gogpu",
		Renderer:        "glfake",
		Version:         "4.6.0 glfake",
		ShadingLanguage: "4.60 glfake",
	}
	if got := dev.Info(); got != want {
		t.Errorf("Info() = %+v, want %+v", got, want)
	}
}

// ===== Global state =====

func TestDevice_Capabilities(t *testing.T) {
	dev, fake := newTestDevice(t)

	dev.Enable(CapBlend)
	dev.Enable(CapDepthTest)
	dev.Disable(CapBlend)

	if fake.State.Enabled[driver.BLEND] {
		t.Error("BLEND still enabled")
	}
	if !fake.State.Enabled[driver.DEPTH_TEST] {
		t.Error("DEPTH_TEST not enabled")
	}
	if got := CapScissorTest.String(); got != "SCISSOR_TEST" {
		t.Errorf("String() = %q, want SCISSOR_TEST", got)
	}
}

func TestDevice_Blending(t *testing.T) {
	dev, fake := newTestDevice(t)

	dev.BlendFunc(BlendSrcAlpha, BlendOneMinusSrcAlpha)
	s := fake.State
	if s.BlendSrcRGB != driver.SRC_ALPHA || s.BlendDstRGB != driver.ONE_MINUS_SRC_ALPHA ||
		s.BlendSrcAlpha != driver.SRC_ALPHA || s.BlendDstAlpha != driver.ONE_MINUS_SRC_ALPHA {
		t.Errorf("BlendFunc state = %+v", s)
	}

	dev.BlendFuncSeparate(BlendOne, BlendZero, BlendDstAlpha, BlendConstantColor)
	s = fake.State
	if s.BlendSrcRGB != driver.ONE || s.BlendDstRGB != driver.ZERO ||
		s.BlendSrcAlpha != driver.DST_ALPHA || s.BlendDstAlpha != driver.CONSTANT_COLOR {
		t.Errorf("BlendFuncSeparate state = %+v", s)
	}

	dev.BlendEquation(BlendReverseSubtract)
	if fake.State.BlendEquation != driver.FUNC_REVERSE_SUBTRACT {
		t.Errorf("BlendEquation = 0x%X", uint32(fake.State.BlendEquation))
	}
	requireNoGLError(t, fake)
}

func TestDevice_ClearAndRegions(t *testing.T) {
	dev, fake := newTestDevice(t)

	dev.ClearColor(0.1, 0.2, 0.3, 1)
	dev.Clear(ClearColorBit | ClearDepthBit)
	dev.Viewport(0, 0, 640, 480)
	dev.Scissor(10, 20, 30, 40)

	if fake.State.ClearColor != [4]float32{0.1, 0.2, 0.3, 1} {
		t.Errorf("ClearColor = %v", fake.State.ClearColor)
	}
	if fake.State.LastClear != driver.COLOR_BUFFER_BIT|driver.DEPTH_BUFFER_BIT {
		t.Errorf("LastClear = 0x%X", uint32(fake.State.LastClear))
	}
	if fake.State.Viewport != [4]int32{0, 0, 640, 480} {
		t.Errorf("Viewport = %v", fake.State.Viewport)
	}
	if fake.State.Scissor != [4]int32{10, 20, 30, 40} {
		t.Errorf("Scissor = %v", fake.State.Scissor)
	}
	requireNoGLError(t, fake)

	// Negative sizes reach the driver unchanged.
	dev.Scissor(0, 0, -1, 1)
	if code := fake.GetError(); code != driver.INVALID_VALUE {
		t.Errorf("GetError() = 0x%X, want INVALID_VALUE", uint32(code))
	}
}

func TestDevice_Rasterizer(t *testing.T) {
	dev, fake := newTestDevice(t)

	dev.PolygonMode(FaceFrontAndBack, PolygonLine)
	dev.DepthMask(false)
	dev.CullFace(FaceFront)
	dev.FrontFace(WindingCW)
	dev.ColorMask(true, false, true, false)

	s := fake.State
	if s.PolygonMode[driver.FRONT_AND_BACK] != driver.LINE {
		t.Errorf("PolygonMode = %v", s.PolygonMode)
	}
	if s.DepthMask {
		t.Error("DepthMask still enabled")
	}
	if s.CullFace != driver.FRONT || s.FrontFace != driver.CW {
		t.Errorf("CullFace = 0x%X, FrontFace = 0x%X", uint32(s.CullFace), uint32(s.FrontFace))
	}
	if s.ColorMask != [4]bool{true, false, true, false} {
		t.Errorf("ColorMask = %v", s.ColorMask)
	}
	requireNoGLError(t, fake)

	dev.PolygonMode(FaceFront, PolygonFill)
	if code := fake.GetError(); code != driver.INVALID_ENUM {
		t.Errorf("PolygonMode(FRONT) error = 0x%X, want INVALID_ENUM", uint32(code))
	}
}

func TestDevice_BarriersAndSync(t *testing.T) {
	dev, fake := newTestDevice(t)

	dev.MemoryBarrier(BarrierShaderStorage | BarrierCommand)
	dev.MemoryBarrierByRegion(BarrierFramebuffer)
	dev.Flush()
	dev.Finish()
	dev.Finish()

	want := []driver.Enum{driver.SHADER_STORAGE_BARRIER_BIT | driver.COMMAND_BARRIER_BIT}
	if !slices.Equal(fake.State.Barriers, want) {
		t.Errorf("Barriers = %v, want %v", fake.State.Barriers, want)
	}
	if !slices.Equal(fake.State.RegionBarriers, []driver.Enum{driver.FRAMEBUFFER_BARRIER_BIT}) {
		t.Errorf("RegionBarriers = %v", fake.State.RegionBarriers)
	}
	if fake.State.Flushes != 1 || fake.State.Finishes != 2 {
		t.Errorf("Flushes = %d, Finishes = %d", fake.State.Flushes, fake.State.Finishes)
	}
}

// ===== Pixel store =====

func TestDevice_PixelAlignment(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"1", 1, false},
		{"2", 2, false},
		{"8", 8, false},
		{"zero", 0, true},
		{"three", 3, true},
		{"sixteen", 16, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, fake := newTestDevice(t)

			errPack := dev.SetPixelPackAlignment(tt.n)
			errUnpack := dev.SetPixelUnpackAlignment(tt.n)
			if tt.wantErr {
				if !errors.Is(errPack, ErrInvalidArgument) || !errors.Is(errUnpack, ErrInvalidArgument) {
					t.Fatalf("errors = %v, %v, want ErrInvalidArgument", errPack, errUnpack)
				}
				if fake.Calls["PixelStorei"] != 0 {
					t.Error("invalid alignment reached the driver")
				}
				return
			}
			if errPack != nil || errUnpack != nil {
				t.Fatalf("errors = %v, %v", errPack, errUnpack)
			}
			if fake.State.PackAlignment != int32(tt.n) || fake.State.UnpackAlignment != int32(tt.n) {
				t.Errorf("alignment = %d/%d, want %d", fake.State.PackAlignment, fake.State.UnpackAlignment, tt.n)
			}
		})
	}
}

// ===== Bindings =====

func TestDevice_BindTextures(t *testing.T) {
	dev, fake := newTestDevice(t)

	a, err := dev.CreateTexture(NewTextureSpec(TextureTarget2D, 2, 2, FormatRGBA8), false)
	if err != nil {
		t.Fatalf("CreateTexture() error = %v", err)
	}
	defer a.Destroy()
	b, err := dev.CreateTexture(NewTextureSpec(TextureTarget2D, 2, 2, FormatR8), false)
	if err != nil {
		t.Fatalf("CreateTexture() error = %v", err)
	}
	defer b.Destroy()

	dev.BindTextures(2, a, nil, b)
	units := fake.State.TextureUnits
	if units[2] != a.ID() || units[4] != b.ID() {
		t.Errorf("units = %v", units)
	}
	if _, ok := units[3]; ok {
		t.Error("nil entry bound a texture")
	}

	dev.BindTextureID(3, a.ID())
	if units[3] != a.ID() {
		t.Errorf("unit 3 = %d, want %d", units[3], a.ID())
	}
	dev.BindTextureIDs(2, 0, 0, 0)
	if len(units) != 0 {
		t.Errorf("units after unbinding = %v", units)
	}
	requireNoGLError(t, fake)
}

func TestDevice_Unbind(t *testing.T) {
	dev, fake := newTestDevice(t)

	buf := newVertexBuffer(t, dev, 16)
	defer buf.Destroy()
	tex, err := dev.CreateTexture(NewTextureSpec(TextureTarget2D, 2, 2, FormatRGBA8), false)
	if err != nil {
		t.Fatalf("CreateTexture() error = %v", err)
	}
	defer tex.Destroy()
	p := newTestProgram(t, dev)
	defer p.Destroy()

	fake.BindBuffer(driver.ARRAY_BUFFER, buf.ID())
	tex.Bind()
	p.Use()

	dev.UnbindBuffer(BufferTargetArray)
	dev.UnbindTexture(TextureTarget2D)
	dev.UnbindProgram()

	if _, ok := fake.State.Buffers[driver.ARRAY_BUFFER]; ok {
		t.Error("array buffer still bound")
	}
	if fake.State.Textures[driver.TEXTURE_2D] != 0 {
		t.Error("2D texture still bound")
	}
	if fake.State.Program != 0 {
		t.Error("program still in use")
	}
	requireNoGLError(t, fake)
}

// ===== Queries and labels =====

func TestDevice_InternalFormatInfo(t *testing.T) {
	dev, _ := newTestDevice(t)

	tests := []struct {
		format InternalFormat
		pname  driver.Enum
		want   int32
	}{
		{FormatR8, driver.INTERNALFORMAT_RED_SIZE, 8},
		{FormatR8, driver.INTERNALFORMAT_GREEN_SIZE, 0},
		{FormatRGBA32F, driver.INTERNALFORMAT_ALPHA_SIZE, 32},
		{FormatDepth24Stencil8, driver.INTERNALFORMAT_DEPTH_SIZE, 24},
		{FormatDepth24Stencil8, driver.INTERNALFORMAT_STENCIL_SIZE, 8},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := dev.InternalFormatInfo(TextureTarget2D, tt.format, tt.pname); got != tt.want {
				t.Errorf("InternalFormatInfo(0x%X) = %d, want %d", uint32(tt.pname), got, tt.want)
			}
		})
	}
}

func TestDevice_SetObjectName(t *testing.T) {
	dev, fake := newTestDevice(t)

	buf := newVertexBuffer(t, dev, 16)
	dev.SetObjectName(buf, "uniforms")
	if got := fake.Label(driver.BUFFER, uint32(buf.ID())); got != "uniforms" {
		t.Errorf("label = %q, want uniforms", got)
	}

	id := buf.ID()
	buf.Destroy()
	calls := fake.Calls["ObjectLabel"]
	dev.SetObjectName(buf, "gone")
	if fake.Calls["ObjectLabel"] != calls {
		t.Error("destroyed object labeled")
	}
	if got := fake.Label(driver.BUFFER, uint32(id)); got == "gone" {
		t.Error("label attached to a destroyed name")
	}
}
