package glkit

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestTextureFormatFromGPU(t *testing.T) {
	tests := []struct {
		in      gputypes.TextureFormat
		want    InternalFormat
		wantErr bool
	}{
		{gputypes.TextureFormatRGBA8Unorm, FormatRGBA8, false},
		{gputypes.TextureFormatBGRA8Unorm, FormatRGBA8, false},
		{gputypes.TextureFormatBGRA8UnormSrgb, FormatSRGB8Alpha8, false},
		{gputypes.TextureFormatRG16Float, FormatRG16F, false},
		{gputypes.TextureFormatRGBA32Uint, FormatRGBA32UI, false},
		{gputypes.TextureFormatRG11B10Ufloat, FormatR11FG11FB10F, false},
		{gputypes.TextureFormatDepth24Plus, FormatDepth24, false},
		{gputypes.TextureFormatDepth32FloatStencil8, FormatDepth32FStencil8, false},
		{gputypes.TextureFormatBC3RGBAUnorm, FormatBC3RGBA, false},
		{gputypes.TextureFormatBC7RGBAUnorm, 0, true},
		{gputypes.TextureFormatUndefined, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			got, err := TextureFormatFromGPU(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidType) {
					t.Fatalf("error = %v, want ErrInvalidType", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("TextureFormatFromGPU() = %s, %v, want %s", got, err, tt.want)
			}
		})
	}
}

func TestTextureSpecFromDescriptor(t *testing.T) {
	desc := func(dim gputypes.TextureDimension, w, h, layers, samples, mips uint32) *gputypes.TextureDescriptor {
		return &gputypes.TextureDescriptor{
			Size:          gputypes.Extent3D{Width: w, Height: h, DepthOrArrayLayers: layers},
			MipLevelCount: mips,
			SampleCount:   samples,
			Dimension:     dim,
			Format:        gputypes.TextureFormatRGBA8Unorm,
		}
	}

	tests := []struct {
		name       string
		desc       *gputypes.TextureDescriptor
		wantTarget TextureTarget
		wantSize   [3]int
		wantMips   int
	}{
		{"2d", desc(gputypes.TextureDimension2D, 64, 32, 1, 1, 3), TextureTarget2D, [3]int{64, 32, 1}, 3},
		{"2d array", desc(gputypes.TextureDimension2D, 16, 16, 4, 1, 1), TextureTarget2DArray, [3]int{16, 16, 4}, 1},
		{"multisample", desc(gputypes.TextureDimension2D, 16, 16, 1, 4, 1), TextureTarget2DMultisample, [3]int{16, 16, 1}, 1},
		{"1d", desc(gputypes.TextureDimension1D, 128, 1, 1, 1, 1), TextureTarget1D, [3]int{128, 1, 1}, 1},
		{"1d array", desc(gputypes.TextureDimension1D, 128, 1, 6, 1, 1), TextureTarget1DArray, [3]int{128, 6, 1}, 1},
		{"3d", desc(gputypes.TextureDimension3D, 8, 8, 8, 1, 0), TextureTarget3D, [3]int{8, 8, 8}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := TextureSpecFromDescriptor(tt.desc)
			if err != nil {
				t.Fatalf("TextureSpecFromDescriptor() error = %v", err)
			}
			if spec.Target != tt.wantTarget {
				t.Errorf("Target = %s, want %s", spec.Target, tt.wantTarget)
			}
			if got := [3]int{spec.Width, spec.Height, spec.Depth}; got != tt.wantSize {
				t.Errorf("size = %v, want %v", got, tt.wantSize)
			}
			if spec.Mipmaps != tt.wantMips {
				t.Errorf("Mipmaps = %d, want %d", spec.Mipmaps, tt.wantMips)
			}
			if spec.InternalFormat != FormatRGBA8 {
				t.Errorf("InternalFormat = %s, want RGBA8", spec.InternalFormat)
			}
		})
	}

	if _, err := TextureSpecFromDescriptor(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil descriptor error = %v, want ErrInvalidArgument", err)
	}
	bad := desc(gputypes.TextureDimensionUndefined, 4, 4, 1, 1, 1)
	if _, err := TextureSpecFromDescriptor(bad); !errors.Is(err, ErrInvalidType) {
		t.Errorf("undefined dimension error = %v, want ErrInvalidType", err)
	}
	empty := desc(gputypes.TextureDimension2D, 0, 4, 1, 1, 1)
	if _, err := TextureSpecFromDescriptor(empty); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("zero width error = %v, want ErrInvalidArgument", err)
	}
}

func TestTextureSpecFromDescriptor_Creates(t *testing.T) {
	dev, fake := newTestDevice(t)

	spec, err := TextureSpecFromDescriptor(&gputypes.TextureDescriptor{
		Size:          gputypes.Extent3D{Width: 8, Height: 8, DepthOrArrayLayers: 1},
		MipLevelCount: 4,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8UnormSrgb,
	})
	if err != nil {
		t.Fatalf("TextureSpecFromDescriptor() error = %v", err)
	}
	tex, err := dev.CreateTexture(spec, true)
	if err != nil {
		t.Fatalf("CreateTexture() error = %v", err)
	}
	tex.Destroy()
	requireNoLeaks(t, fake)
}

func TestBufferFlagsFromUsage(t *testing.T) {
	tests := []struct {
		name  string
		usage gputypes.BufferUsage
		want  BufferFlag
	}{
		{"vertex only", gputypes.BufferUsageVertex, 0},
		{"copy dst", gputypes.BufferUsageCopyDst | gputypes.BufferUsageUniform, BufferDynamicStorage},
		{"map read", gputypes.BufferUsageMapRead, BufferMapRead | BufferMapPersistent | BufferMapCoherent},
		{"map write copy src", gputypes.BufferUsageMapWrite | gputypes.BufferUsageCopySrc,
			BufferMapWrite | BufferMapPersistent | BufferMapCoherent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BufferFlagsFromUsage(tt.usage); got != tt.want {
				t.Errorf("BufferFlagsFromUsage() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestVertexDescriptorFromFormat(t *testing.T) {
	tests := []struct {
		in   gputypes.VertexFormat
		want VertexDescriptor
	}{
		{gputypes.VertexFormatFloat32x3, VertexDescriptor{Index: 2, Type: TypeFloat, Count: 3, Rows: 1}},
		{gputypes.VertexFormatUnorm8x4, VertexDescriptor{Index: 2, Type: TypeUnsignedByte, Count: 4, Rows: 1, Normalized: true}},
		{gputypes.VertexFormatSint16x2, VertexDescriptor{Index: 2, Type: TypeShort, Count: 2, Rows: 1}},
		{gputypes.VertexFormatFloat16x4, VertexDescriptor{Index: 2, Type: TypeHalfFloat, Count: 4, Rows: 1}},
		{gputypes.VertexFormatUint32, VertexDescriptor{Index: 2, Type: TypeUnsignedInt, Count: 1, Rows: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			got, err := VertexDescriptorFromFormat(2, tt.in)
			if err != nil {
				t.Fatalf("VertexDescriptorFromFormat() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("descriptor = %+v, want %+v", got, tt.want)
			}
		})
	}

	if _, err := VertexDescriptorFromFormat(0, gputypes.VertexFormatUnorm1010102); !errors.Is(err, ErrInvalidType) {
		t.Errorf("packed format error = %v, want ErrInvalidType", err)
	}
}

func TestPipelineStateFromGPU(t *testing.T) {
	if got, err := IndexTypeFromGPU(gputypes.IndexFormatUint16); err != nil || got != IndexUint16 {
		t.Errorf("IndexTypeFromGPU(Uint16) = %s, %v", got, err)
	}
	if _, err := IndexTypeFromGPU(gputypes.IndexFormatUndefined); !errors.Is(err, ErrInvalidType) {
		t.Errorf("IndexTypeFromGPU(Undefined) error = %v", err)
	}

	if got, err := DrawModeFromTopology(gputypes.PrimitiveTopologyTriangleStrip); err != nil || got != DrawTriangleStrip {
		t.Errorf("DrawModeFromTopology(TriangleStrip) = %s, %v", got, err)
	}
	if got, err := DrawModeFromTopology(gputypes.PrimitiveTopologyPointList); err != nil || got != DrawPoints {
		t.Errorf("DrawModeFromTopology(PointList) = %s, %v", got, err)
	}

	if face, enabled := CullFaceFromMode(gputypes.CullModeFront); !enabled || face != FaceFront {
		t.Errorf("CullFaceFromMode(Front) = %v, %t", face, enabled)
	}
	if _, enabled := CullFaceFromMode(gputypes.CullModeNone); enabled {
		t.Error("CullFaceFromMode(None) enabled culling")
	}
	if FrontFaceFromGPU(gputypes.FrontFaceCW) != WindingCW || FrontFaceFromGPU(gputypes.FrontFaceCCW) != WindingCCW {
		t.Error("FrontFaceFromGPU mismatch")
	}
}

func TestBlendStateFromGPU(t *testing.T) {
	factors := map[gputypes.BlendFactor]BlendFactor{
		gputypes.BlendFactorSrcAlpha:          BlendSrcAlpha,
		gputypes.BlendFactorOneMinusDst:       BlendOneMinusDstColor,
		gputypes.BlendFactorSrcAlphaSaturated: BlendSrcAlphaSaturate,
		gputypes.BlendFactorConstant:          BlendConstantColor,
	}
	for in, want := range factors {
		if got, err := BlendFactorFromGPU(in); err != nil || got != want {
			t.Errorf("BlendFactorFromGPU(%v) = %s, %v, want %s", in, got, err, want)
		}
	}
	if _, err := BlendFactorFromGPU(gputypes.BlendFactorUndefined); !errors.Is(err, ErrInvalidType) {
		t.Errorf("BlendFactorFromGPU(Undefined) error = %v", err)
	}

	if got, err := BlendEquationFromGPU(gputypes.BlendOperationReverseSubtract); err != nil || got != BlendReverseSubtract {
		t.Errorf("BlendEquationFromGPU(ReverseSubtract) = %s, %v", got, err)
	}
	if _, err := BlendEquationFromGPU(gputypes.BlendOperationUndefined); !errors.Is(err, ErrInvalidType) {
		t.Errorf("BlendEquationFromGPU(Undefined) error = %v", err)
	}
}

func TestSamplerStateFromGPU(t *testing.T) {
	if got, err := WrapModeFromAddressMode(gputypes.AddressModeMirrorRepeat); err != nil || got != WrapMirroredRepeat {
		t.Errorf("WrapModeFromAddressMode(MirrorRepeat) = %s, %v", got, err)
	}
	if _, err := WrapModeFromAddressMode(gputypes.AddressModeUndefined); !errors.Is(err, ErrInvalidType) {
		t.Errorf("WrapModeFromAddressMode(Undefined) error = %v", err)
	}

	tests := []struct {
		name string
		min  gputypes.FilterMode
		mip  gputypes.MipmapFilterMode
		want Filter
	}{
		{"nearest", gputypes.FilterModeNearest, gputypes.MipmapFilterModeUndefined, FilterNearest},
		{"linear", gputypes.FilterModeLinear, gputypes.MipmapFilterModeUndefined, FilterLinear},
		{"trilinear", gputypes.FilterModeLinear, gputypes.MipmapFilterModeLinear, FilterLinearMipmapLinear},
		{"linear nearest mip", gputypes.FilterModeLinear, gputypes.MipmapFilterModeNearest, FilterLinearMipmapNearest},
		{"nearest linear mip", gputypes.FilterModeNearest, gputypes.MipmapFilterModeLinear, FilterNearestMipmapLinear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinFilterFromGPU(tt.min, tt.mip); got != tt.want {
				t.Errorf("MinFilterFromGPU() = %s, want %s", got, tt.want)
			}
		})
	}
	if FilterFromGPU(gputypes.FilterModeUndefined) != FilterNearest {
		t.Error("FilterFromGPU(Undefined) is not NEAREST")
	}
}
