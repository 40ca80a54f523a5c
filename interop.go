package glkit

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Conversions from the WebGPU-style descriptors in gputypes to glkit values.
// Values without an OpenGL counterpart return ErrInvalidType.

var gpuTextureFormats = map[gputypes.TextureFormat]InternalFormat{
	gputypes.TextureFormatR8Unorm:  FormatR8,
	gputypes.TextureFormatR8Snorm:  FormatR8SNorm,
	gputypes.TextureFormatR8Uint:   FormatR8UI,
	gputypes.TextureFormatR8Sint:   FormatR8I,
	gputypes.TextureFormatR16Unorm: FormatR16,
	gputypes.TextureFormatR16Uint:  FormatR16UI,
	gputypes.TextureFormatR16Sint:  FormatR16I,
	gputypes.TextureFormatR16Float: FormatR16F,
	gputypes.TextureFormatRG8Unorm: FormatRG8,
	gputypes.TextureFormatRG8Snorm: FormatRG8SNorm,
	gputypes.TextureFormatRG8Uint:  FormatRG8UI,
	gputypes.TextureFormatRG8Sint:  FormatRG8I,
	gputypes.TextureFormatR32Float: FormatR32F,
	gputypes.TextureFormatR32Uint:  FormatR32UI,
	gputypes.TextureFormatR32Sint:  FormatR32I,

	gputypes.TextureFormatRG16Unorm: FormatRG16,
	gputypes.TextureFormatRG16Uint:  FormatRG16UI,
	gputypes.TextureFormatRG16Sint:  FormatRG16I,
	gputypes.TextureFormatRG16Float: FormatRG16F,

	gputypes.TextureFormatRGBA8Unorm:     FormatRGBA8,
	gputypes.TextureFormatRGBA8UnormSrgb: FormatSRGB8Alpha8,
	gputypes.TextureFormatRGBA8Snorm:     FormatRGBA8SNorm,
	gputypes.TextureFormatRGBA8Uint:      FormatRGBA8UI,
	gputypes.TextureFormatRGBA8Sint:      FormatRGBA8I,
	gputypes.TextureFormatBGRA8Unorm:     FormatRGBA8,
	gputypes.TextureFormatBGRA8UnormSrgb: FormatSRGB8Alpha8,

	gputypes.TextureFormatRGB10A2Uint:   FormatRGB10A2UI,
	gputypes.TextureFormatRGB10A2Unorm:  FormatRGB10A2,
	gputypes.TextureFormatRG11B10Ufloat: FormatR11FG11FB10F,
	gputypes.TextureFormatRGB9E5Ufloat:  FormatRGB9E5,

	gputypes.TextureFormatRG32Float:   FormatRG32F,
	gputypes.TextureFormatRG32Uint:    FormatRG32UI,
	gputypes.TextureFormatRG32Sint:    FormatRG32I,
	gputypes.TextureFormatRGBA16Unorm: FormatRGBA16,
	gputypes.TextureFormatRGBA16Uint:  FormatRGBA16UI,
	gputypes.TextureFormatRGBA16Sint:  FormatRGBA16I,
	gputypes.TextureFormatRGBA16Float: FormatRGBA16F,
	gputypes.TextureFormatRGBA32Float: FormatRGBA32F,
	gputypes.TextureFormatRGBA32Uint:  FormatRGBA32UI,
	gputypes.TextureFormatRGBA32Sint:  FormatRGBA32I,

	gputypes.TextureFormatStencil8:             FormatStencil8,
	gputypes.TextureFormatDepth16Unorm:         FormatDepth16,
	gputypes.TextureFormatDepth24Plus:          FormatDepth24,
	gputypes.TextureFormatDepth24PlusStencil8:  FormatDepth24Stencil8,
	gputypes.TextureFormatDepth32Float:         FormatDepth32F,
	gputypes.TextureFormatDepth32FloatStencil8: FormatDepth32FStencil8,

	gputypes.TextureFormatBC1RGBAUnorm: FormatBC1RGBA,
	gputypes.TextureFormatBC2RGBAUnorm: FormatBC2RGBA,
	gputypes.TextureFormatBC3RGBAUnorm: FormatBC3RGBA,
}

// TextureFormatFromGPU returns the sized internal format matching f. BGRA
// formats map to their RGBA counterparts; the channel order is a property
// of the uploaded pixel data, not of the storage.
func TextureFormatFromGPU(f gputypes.TextureFormat) (InternalFormat, error) {
	if format, ok := gpuTextureFormats[f]; ok {
		return format, nil
	}
	return 0, fmt.Errorf("%w: texture format %v has no OpenGL equivalent", ErrInvalidType, f)
}

// TextureSpecFromDescriptor builds a TextureSpec from a texture descriptor.
// 2D descriptors with more than one layer become 2D array textures and
// sample counts above one select the multisample targets.
func TextureSpecFromDescriptor(desc *gputypes.TextureDescriptor) (TextureSpec, error) {
	if desc == nil {
		return TextureSpec{}, fmt.Errorf("%w: nil texture descriptor", ErrInvalidArgument)
	}
	format, err := TextureFormatFromGPU(desc.Format)
	if err != nil {
		return TextureSpec{}, err
	}

	w, h, layers := int(desc.Size.Width), int(desc.Size.Height), int(desc.Size.DepthOrArrayLayers)
	layers = max(layers, 1)
	samples := max(int(desc.SampleCount), 1)

	var target TextureTarget
	switch desc.Dimension {
	case gputypes.TextureDimension1D:
		target = TextureTarget1D
		if layers > 1 {
			target, h = TextureTarget1DArray, layers
		}
		layers = 1
	case gputypes.TextureDimension2D:
		switch {
		case samples > 1 && layers > 1:
			target = TextureTarget2DMultisampleArray
		case samples > 1:
			target = TextureTarget2DMultisample
		case layers > 1:
			target = TextureTarget2DArray
		default:
			target = TextureTarget2D
		}
	case gputypes.TextureDimension3D:
		target = TextureTarget3D
	default:
		return TextureSpec{}, fmt.Errorf("%w: texture dimension %v", ErrInvalidType, desc.Dimension)
	}

	spec := NewTextureSpec(target, w, h, format)
	spec.Depth = layers
	spec.Samples = samples
	spec.Mipmaps = max(int(desc.MipLevelCount), 1)
	if err := spec.Validate(); err != nil {
		return TextureSpec{}, err
	}
	return spec, nil
}

// BufferFlagsFromUsage returns the storage flags that allow the given
// usage. Usages without a storage requirement map to no flags.
func BufferFlagsFromUsage(u gputypes.BufferUsage) BufferFlag {
	var flags BufferFlag
	if u&gputypes.BufferUsageMapRead != 0 {
		flags |= BufferMapRead | BufferMapPersistent | BufferMapCoherent
	}
	if u&gputypes.BufferUsageMapWrite != 0 {
		flags |= BufferMapWrite | BufferMapPersistent | BufferMapCoherent
	}
	if u&gputypes.BufferUsageCopyDst != 0 {
		flags |= BufferDynamicStorage
	}
	return flags
}

type gpuVertexFormat struct {
	typ        DataType
	count      int
	normalized bool
}

var gpuVertexFormats = map[gputypes.VertexFormat]gpuVertexFormat{
	gputypes.VertexFormatUint8x2:   {TypeUnsignedByte, 2, false},
	gputypes.VertexFormatUint8x4:   {TypeUnsignedByte, 4, false},
	gputypes.VertexFormatSint8x2:   {TypeByte, 2, false},
	gputypes.VertexFormatSint8x4:   {TypeByte, 4, false},
	gputypes.VertexFormatUnorm8x2:  {TypeUnsignedByte, 2, true},
	gputypes.VertexFormatUnorm8x4:  {TypeUnsignedByte, 4, true},
	gputypes.VertexFormatSnorm8x2:  {TypeByte, 2, true},
	gputypes.VertexFormatSnorm8x4:  {TypeByte, 4, true},
	gputypes.VertexFormatUint16x2:  {TypeUnsignedShort, 2, false},
	gputypes.VertexFormatUint16x4:  {TypeUnsignedShort, 4, false},
	gputypes.VertexFormatSint16x2:  {TypeShort, 2, false},
	gputypes.VertexFormatSint16x4:  {TypeShort, 4, false},
	gputypes.VertexFormatUnorm16x2: {TypeUnsignedShort, 2, true},
	gputypes.VertexFormatUnorm16x4: {TypeUnsignedShort, 4, true},
	gputypes.VertexFormatSnorm16x2: {TypeShort, 2, true},
	gputypes.VertexFormatSnorm16x4: {TypeShort, 4, true},
	gputypes.VertexFormatFloat16x2: {TypeHalfFloat, 2, false},
	gputypes.VertexFormatFloat16x4: {TypeHalfFloat, 4, false},
	gputypes.VertexFormatFloat32:   {TypeFloat, 1, false},
	gputypes.VertexFormatFloat32x2: {TypeFloat, 2, false},
	gputypes.VertexFormatFloat32x3: {TypeFloat, 3, false},
	gputypes.VertexFormatFloat32x4: {TypeFloat, 4, false},
	gputypes.VertexFormatUint32:    {TypeUnsignedInt, 1, false},
	gputypes.VertexFormatUint32x2:  {TypeUnsignedInt, 2, false},
	gputypes.VertexFormatUint32x3:  {TypeUnsignedInt, 3, false},
	gputypes.VertexFormatUint32x4:  {TypeUnsignedInt, 4, false},
	gputypes.VertexFormatSint32:    {TypeInt, 1, false},
	gputypes.VertexFormatSint32x2:  {TypeInt, 2, false},
	gputypes.VertexFormatSint32x3:  {TypeInt, 3, false},
	gputypes.VertexFormatSint32x4:  {TypeInt, 4, false},
}

// VertexDescriptorFromFormat returns the attribute descriptor for a vertex
// format at index. Unorm and snorm formats are normalized; plain integer
// formats stay integer attributes.
func VertexDescriptorFromFormat(index uint32, f gputypes.VertexFormat) (VertexDescriptor, error) {
	vf, ok := gpuVertexFormats[f]
	if !ok {
		return VertexDescriptor{}, fmt.Errorf("%w: vertex format %v", ErrInvalidType, f)
	}
	desc := NewVertexDescriptor(index, vf.typ, vf.count)
	desc.Normalized = vf.normalized
	return desc, nil
}

// IndexTypeFromGPU returns the index type matching f.
func IndexTypeFromGPU(f gputypes.IndexFormat) (IndexType, error) {
	switch f {
	case gputypes.IndexFormatUint16:
		return IndexUint16, nil
	case gputypes.IndexFormatUint32:
		return IndexUint32, nil
	}
	return 0, fmt.Errorf("%w: index format %v", ErrInvalidType, f)
}

// DrawModeFromTopology returns the draw mode for a primitive topology.
func DrawModeFromTopology(t gputypes.PrimitiveTopology) (DrawMode, error) {
	switch t {
	case gputypes.PrimitiveTopologyPointList:
		return DrawPoints, nil
	case gputypes.PrimitiveTopologyLineList:
		return DrawLines, nil
	case gputypes.PrimitiveTopologyLineStrip:
		return DrawLineStrip, nil
	case gputypes.PrimitiveTopologyTriangleList:
		return DrawTriangles, nil
	case gputypes.PrimitiveTopologyTriangleStrip:
		return DrawTriangleStrip, nil
	}
	return 0, fmt.Errorf("%w: primitive topology %v", ErrInvalidType, t)
}

// CullFaceFromMode returns the face to cull and whether culling is enabled.
func CullFaceFromMode(m gputypes.CullMode) (Face, bool) {
	switch m {
	case gputypes.CullModeFront:
		return FaceFront, true
	case gputypes.CullModeBack:
		return FaceBack, true
	}
	return FaceBack, false
}

// FrontFaceFromGPU returns the winding of front-facing polygons.
func FrontFaceFromGPU(f gputypes.FrontFace) Winding {
	if f == gputypes.FrontFaceCW {
		return WindingCW
	}
	return WindingCCW
}

var gpuBlendFactors = map[gputypes.BlendFactor]BlendFactor{
	gputypes.BlendFactorZero:              BlendZero,
	gputypes.BlendFactorOne:               BlendOne,
	gputypes.BlendFactorSrc:               BlendSrcColor,
	gputypes.BlendFactorOneMinusSrc:       BlendOneMinusSrcColor,
	gputypes.BlendFactorSrcAlpha:          BlendSrcAlpha,
	gputypes.BlendFactorOneMinusSrcAlpha:  BlendOneMinusSrcAlpha,
	gputypes.BlendFactorDst:               BlendDstColor,
	gputypes.BlendFactorOneMinusDst:       BlendOneMinusDstColor,
	gputypes.BlendFactorDstAlpha:          BlendDstAlpha,
	gputypes.BlendFactorOneMinusDstAlpha:  BlendOneMinusDstAlpha,
	gputypes.BlendFactorSrcAlphaSaturated: BlendSrcAlphaSaturate,
	gputypes.BlendFactorConstant:          BlendConstantColor,
	gputypes.BlendFactorOneMinusConstant:  BlendOneMinusConstantColor,
}

// BlendFactorFromGPU returns the blend factor matching f.
func BlendFactorFromGPU(f gputypes.BlendFactor) (BlendFactor, error) {
	if factor, ok := gpuBlendFactors[f]; ok {
		return factor, nil
	}
	return 0, fmt.Errorf("%w: blend factor %v", ErrInvalidType, f)
}

// BlendEquationFromGPU returns the blend equation matching op.
func BlendEquationFromGPU(op gputypes.BlendOperation) (BlendEquation, error) {
	switch op {
	case gputypes.BlendOperationAdd:
		return BlendAdd, nil
	case gputypes.BlendOperationSubtract:
		return BlendSubtract, nil
	case gputypes.BlendOperationReverseSubtract:
		return BlendReverseSubtract, nil
	case gputypes.BlendOperationMin:
		return BlendMin, nil
	case gputypes.BlendOperationMax:
		return BlendMax, nil
	}
	return 0, fmt.Errorf("%w: blend operation %v", ErrInvalidType, op)
}

// WrapModeFromAddressMode returns the wrap mode matching an address mode.
func WrapModeFromAddressMode(m gputypes.AddressMode) (WrapMode, error) {
	switch m {
	case gputypes.AddressModeClampToEdge:
		return WrapClampToEdge, nil
	case gputypes.AddressModeRepeat:
		return WrapRepeat, nil
	case gputypes.AddressModeMirrorRepeat:
		return WrapMirroredRepeat, nil
	}
	return 0, fmt.Errorf("%w: address mode %v", ErrInvalidType, m)
}

// FilterFromGPU returns the texture filter for a filter mode.
func FilterFromGPU(m gputypes.FilterMode) Filter {
	if m == gputypes.FilterModeLinear {
		return FilterLinear
	}
	return FilterNearest
}

// MinFilterFromGPU combines a minification filter and a mipmap filter into
// one minification filter. An undefined mipmap filter disables mipmapping.
func MinFilterFromGPU(m gputypes.FilterMode, mip gputypes.MipmapFilterMode) Filter {
	linear := m == gputypes.FilterModeLinear
	switch mip {
	case gputypes.MipmapFilterModeNearest:
		if linear {
			return FilterLinearMipmapNearest
		}
		return FilterNearestMipmapNearest
	case gputypes.MipmapFilterModeLinear:
		if linear {
			return FilterLinearMipmapLinear
		}
		return FilterNearestMipmapLinear
	}
	return FilterFromGPU(m)
}
