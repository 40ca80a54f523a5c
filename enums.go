package glkit

import (
	"fmt"
	"strings"

	"github.com/gogpu/glkit/driver"
)

// enumName returns the registered name of v, or its hex value.
func enumName[T ~uint32](names map[T]string, v T) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("0x%04X", uint32(v))
}

// flagNames joins the names of the bits set in v with '|'.
func flagNames[T ~uint32](names map[T]string, order []T, v T) string {
	if v == 0 {
		return "NONE"
	}
	var parts []string
	rest := v
	for _, bit := range order {
		if v&bit == bit {
			parts = append(parts, names[bit])
			rest &^= bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%X", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// BufferFlag is a bitmask of immutable buffer storage flags.
type BufferFlag uint32

const (
	BufferMapRead        BufferFlag = driver.MAP_READ_BIT
	BufferMapWrite       BufferFlag = driver.MAP_WRITE_BIT
	BufferMapPersistent  BufferFlag = driver.MAP_PERSISTENT_BIT
	BufferMapCoherent    BufferFlag = driver.MAP_COHERENT_BIT
	BufferDynamicStorage BufferFlag = driver.DYNAMIC_STORAGE_BIT
	BufferClientStorage  BufferFlag = driver.CLIENT_STORAGE_BIT
)

var bufferFlagOrder = []BufferFlag{
	BufferMapRead, BufferMapWrite, BufferMapPersistent, BufferMapCoherent,
	BufferDynamicStorage, BufferClientStorage,
}

var bufferFlagNames = map[BufferFlag]string{
	BufferMapRead:        "MAP_READ",
	BufferMapWrite:       "MAP_WRITE",
	BufferMapPersistent:  "MAP_PERSISTENT",
	BufferMapCoherent:    "MAP_COHERENT",
	BufferDynamicStorage: "DYNAMIC_STORAGE",
	BufferClientStorage:  "CLIENT_STORAGE",
}

// Has reports whether every bit of other is set in f.
func (f BufferFlag) Has(other BufferFlag) bool { return f&other == other }

func (f BufferFlag) String() string { return flagNames(bufferFlagNames, bufferFlagOrder, f) }

// BufferTarget is a buffer binding point.
type BufferTarget uint32

const (
	BufferTargetArray             BufferTarget = driver.ARRAY_BUFFER
	BufferTargetElementArray      BufferTarget = driver.ELEMENT_ARRAY_BUFFER
	BufferTargetUniform           BufferTarget = driver.UNIFORM_BUFFER
	BufferTargetShaderStorage     BufferTarget = driver.SHADER_STORAGE_BUFFER
	BufferTargetDrawIndirect      BufferTarget = driver.DRAW_INDIRECT_BUFFER
	BufferTargetDispatchIndirect  BufferTarget = driver.DISPATCH_INDIRECT_BUFFER
	BufferTargetPixelPack         BufferTarget = driver.PIXEL_PACK_BUFFER
	BufferTargetPixelUnpack       BufferTarget = driver.PIXEL_UNPACK_BUFFER
	BufferTargetCopyRead          BufferTarget = driver.COPY_READ_BUFFER
	BufferTargetCopyWrite         BufferTarget = driver.COPY_WRITE_BUFFER
	BufferTargetTexture           BufferTarget = driver.TEXTURE_BUFFER
	BufferTargetTransformFeedback BufferTarget = driver.TRANSFORM_FEEDBACK_BUFFER
	BufferTargetAtomicCounter     BufferTarget = driver.ATOMIC_COUNTER_BUFFER
	BufferTargetQuery             BufferTarget = driver.QUERY_BUFFER
)

var bufferTargetNames = map[BufferTarget]string{
	BufferTargetArray:             "ARRAY_BUFFER",
	BufferTargetElementArray:      "ELEMENT_ARRAY_BUFFER",
	BufferTargetUniform:           "UNIFORM_BUFFER",
	BufferTargetShaderStorage:     "SHADER_STORAGE_BUFFER",
	BufferTargetDrawIndirect:      "DRAW_INDIRECT_BUFFER",
	BufferTargetDispatchIndirect:  "DISPATCH_INDIRECT_BUFFER",
	BufferTargetPixelPack:         "PIXEL_PACK_BUFFER",
	BufferTargetPixelUnpack:       "PIXEL_UNPACK_BUFFER",
	BufferTargetCopyRead:          "COPY_READ_BUFFER",
	BufferTargetCopyWrite:         "COPY_WRITE_BUFFER",
	BufferTargetTexture:           "TEXTURE_BUFFER",
	BufferTargetTransformFeedback: "TRANSFORM_FEEDBACK_BUFFER",
	BufferTargetAtomicCounter:     "ATOMIC_COUNTER_BUFFER",
	BufferTargetQuery:             "QUERY_BUFFER",
}

func (t BufferTarget) String() string { return enumName(bufferTargetNames, t) }

// TextureTarget is the kind of a texture object.
type TextureTarget uint32

const (
	TextureTarget1D                 TextureTarget = driver.TEXTURE_1D
	TextureTarget2D                 TextureTarget = driver.TEXTURE_2D
	TextureTarget3D                 TextureTarget = driver.TEXTURE_3D
	TextureTargetRectangle          TextureTarget = driver.TEXTURE_RECTANGLE
	TextureTargetCubeMap            TextureTarget = driver.TEXTURE_CUBE_MAP
	TextureTarget1DArray            TextureTarget = driver.TEXTURE_1D_ARRAY
	TextureTarget2DArray            TextureTarget = driver.TEXTURE_2D_ARRAY
	TextureTargetCubeMapArray       TextureTarget = driver.TEXTURE_CUBE_MAP_ARRAY
	TextureTarget2DMultisample      TextureTarget = driver.TEXTURE_2D_MULTISAMPLE
	TextureTarget2DMultisampleArray TextureTarget = driver.TEXTURE_2D_MULTISAMPLE_ARRAY
	TextureTargetBuffer             TextureTarget = driver.TEXTURE_BUFFER
)

var textureTargetNames = map[TextureTarget]string{
	TextureTarget1D:                 "TEXTURE_1D",
	TextureTarget2D:                 "TEXTURE_2D",
	TextureTarget3D:                 "TEXTURE_3D",
	TextureTargetRectangle:          "TEXTURE_RECTANGLE",
	TextureTargetCubeMap:            "TEXTURE_CUBE_MAP",
	TextureTarget1DArray:            "TEXTURE_1D_ARRAY",
	TextureTarget2DArray:            "TEXTURE_2D_ARRAY",
	TextureTargetCubeMapArray:       "TEXTURE_CUBE_MAP_ARRAY",
	TextureTarget2DMultisample:      "TEXTURE_2D_MULTISAMPLE",
	TextureTarget2DMultisampleArray: "TEXTURE_2D_MULTISAMPLE_ARRAY",
	TextureTargetBuffer:             "TEXTURE_BUFFER",
}

func (t TextureTarget) String() string {
	if name, ok := textureTargetNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsMultisample reports whether the target stores multisampled images.
func (t TextureTarget) IsMultisample() bool {
	return t == TextureTarget2DMultisample || t == TextureTarget2DMultisampleArray
}

// InternalFormat is a sized internal texture or renderbuffer format.
type InternalFormat uint32

const (
	FormatR8               InternalFormat = driver.R8
	FormatRG8              InternalFormat = driver.RG8
	FormatRGB8             InternalFormat = driver.RGB8
	FormatRGBA8            InternalFormat = driver.RGBA8
	FormatSRGB8            InternalFormat = driver.SRGB8
	FormatSRGB8Alpha8      InternalFormat = driver.SRGB8_ALPHA8
	FormatR8SNorm          InternalFormat = driver.R8_SNORM
	FormatRG8SNorm         InternalFormat = driver.RG8_SNORM
	FormatRGBA8SNorm       InternalFormat = driver.RGBA8_SNORM
	FormatR16              InternalFormat = driver.R16
	FormatRG16             InternalFormat = driver.RG16
	FormatRGBA16           InternalFormat = driver.RGBA16
	FormatR16F             InternalFormat = driver.R16F
	FormatRG16F            InternalFormat = driver.RG16F
	FormatRGB16F           InternalFormat = driver.RGB16F
	FormatRGBA16F          InternalFormat = driver.RGBA16F
	FormatR32F             InternalFormat = driver.R32F
	FormatRG32F            InternalFormat = driver.RG32F
	FormatRGB32F           InternalFormat = driver.RGB32F
	FormatRGBA32F          InternalFormat = driver.RGBA32F
	FormatR8I              InternalFormat = driver.R8I
	FormatR8UI             InternalFormat = driver.R8UI
	FormatR16I             InternalFormat = driver.R16I
	FormatR16UI            InternalFormat = driver.R16UI
	FormatR32I             InternalFormat = driver.R32I
	FormatR32UI            InternalFormat = driver.R32UI
	FormatRG8I             InternalFormat = driver.RG8I
	FormatRG8UI            InternalFormat = driver.RG8UI
	FormatRG16I            InternalFormat = driver.RG16I
	FormatRG16UI           InternalFormat = driver.RG16UI
	FormatRG32I            InternalFormat = driver.RG32I
	FormatRG32UI           InternalFormat = driver.RG32UI
	FormatRGBA8I           InternalFormat = driver.RGBA8I
	FormatRGBA8UI          InternalFormat = driver.RGBA8UI
	FormatRGBA16I          InternalFormat = driver.RGBA16I
	FormatRGBA16UI         InternalFormat = driver.RGBA16UI
	FormatRGBA32I          InternalFormat = driver.RGBA32I
	FormatRGBA32UI         InternalFormat = driver.RGBA32UI
	FormatRGB10A2          InternalFormat = driver.RGB10_A2
	FormatRGB10A2UI        InternalFormat = driver.RGB10_A2UI
	FormatR11FG11FB10F     InternalFormat = driver.R11F_G11F_B10F
	FormatRGB9E5           InternalFormat = driver.RGB9_E5
	FormatRGB565           InternalFormat = driver.RGB565
	FormatDepth16          InternalFormat = driver.DEPTH_COMPONENT16
	FormatDepth24          InternalFormat = driver.DEPTH_COMPONENT24
	FormatDepth32          InternalFormat = driver.DEPTH_COMPONENT32
	FormatDepth32F         InternalFormat = driver.DEPTH_COMPONENT32F
	FormatDepth24Stencil8  InternalFormat = driver.DEPTH24_STENCIL8
	FormatDepth32FStencil8 InternalFormat = driver.DEPTH32F_STENCIL8
	FormatStencil8         InternalFormat = driver.STENCIL_INDEX8
	FormatBC1RGB           InternalFormat = driver.COMPRESSED_RGB_S3TC_DXT1_EXT
	FormatBC1RGBA          InternalFormat = driver.COMPRESSED_RGBA_S3TC_DXT1_EXT
	FormatBC2RGBA          InternalFormat = driver.COMPRESSED_RGBA_S3TC_DXT3_EXT
	FormatBC3RGBA          InternalFormat = driver.COMPRESSED_RGBA_S3TC_DXT5_EXT
)

type formatInfo struct {
	name       string
	size       int // bytes per texel, 0 for block-compressed formats
	depth      bool
	stencil    bool
	integer    bool
	compressed bool
}

var formatInfos = map[InternalFormat]formatInfo{
	FormatR8:               {name: "R8", size: 1},
	FormatRG8:              {name: "RG8", size: 2},
	FormatRGB8:             {name: "RGB8", size: 3},
	FormatRGBA8:            {name: "RGBA8", size: 4},
	FormatSRGB8:            {name: "SRGB8", size: 3},
	FormatSRGB8Alpha8:      {name: "SRGB8_ALPHA8", size: 4},
	FormatR8SNorm:          {name: "R8_SNORM", size: 1},
	FormatRG8SNorm:         {name: "RG8_SNORM", size: 2},
	FormatRGBA8SNorm:       {name: "RGBA8_SNORM", size: 4},
	FormatR16:              {name: "R16", size: 2},
	FormatRG16:             {name: "RG16", size: 4},
	FormatRGBA16:           {name: "RGBA16", size: 8},
	FormatR16F:             {name: "R16F", size: 2},
	FormatRG16F:            {name: "RG16F", size: 4},
	FormatRGB16F:           {name: "RGB16F", size: 6},
	FormatRGBA16F:          {name: "RGBA16F", size: 8},
	FormatR32F:             {name: "R32F", size: 4},
	FormatRG32F:            {name: "RG32F", size: 8},
	FormatRGB32F:           {name: "RGB32F", size: 12},
	FormatRGBA32F:          {name: "RGBA32F", size: 16},
	FormatR8I:              {name: "R8I", size: 1, integer: true},
	FormatR8UI:             {name: "R8UI", size: 1, integer: true},
	FormatR16I:             {name: "R16I", size: 2, integer: true},
	FormatR16UI:            {name: "R16UI", size: 2, integer: true},
	FormatR32I:             {name: "R32I", size: 4, integer: true},
	FormatR32UI:            {name: "R32UI", size: 4, integer: true},
	FormatRG8I:             {name: "RG8I", size: 2, integer: true},
	FormatRG8UI:            {name: "RG8UI", size: 2, integer: true},
	FormatRG16I:            {name: "RG16I", size: 4, integer: true},
	FormatRG16UI:           {name: "RG16UI", size: 4, integer: true},
	FormatRG32I:            {name: "RG32I", size: 8, integer: true},
	FormatRG32UI:           {name: "RG32UI", size: 8, integer: true},
	FormatRGBA8I:           {name: "RGBA8I", size: 4, integer: true},
	FormatRGBA8UI:          {name: "RGBA8UI", size: 4, integer: true},
	FormatRGBA16I:          {name: "RGBA16I", size: 8, integer: true},
	FormatRGBA16UI:         {name: "RGBA16UI", size: 8, integer: true},
	FormatRGBA32I:          {name: "RGBA32I", size: 16, integer: true},
	FormatRGBA32UI:         {name: "RGBA32UI", size: 16, integer: true},
	FormatRGB10A2:          {name: "RGB10_A2", size: 4},
	FormatRGB10A2UI:        {name: "RGB10_A2UI", size: 4, integer: true},
	FormatR11FG11FB10F:     {name: "R11F_G11F_B10F", size: 4},
	FormatRGB9E5:           {name: "RGB9_E5", size: 4},
	FormatRGB565:           {name: "RGB565", size: 2},
	FormatDepth16:          {name: "DEPTH_COMPONENT16", size: 2, depth: true},
	FormatDepth24:          {name: "DEPTH_COMPONENT24", size: 4, depth: true},
	FormatDepth32:          {name: "DEPTH_COMPONENT32", size: 4, depth: true},
	FormatDepth32F:         {name: "DEPTH_COMPONENT32F", size: 4, depth: true},
	FormatDepth24Stencil8:  {name: "DEPTH24_STENCIL8", size: 4, depth: true, stencil: true},
	FormatDepth32FStencil8: {name: "DEPTH32F_STENCIL8", size: 8, depth: true, stencil: true},
	FormatStencil8:         {name: "STENCIL_INDEX8", size: 1, stencil: true},
	FormatBC1RGB:           {name: "COMPRESSED_RGB_S3TC_DXT1", compressed: true},
	FormatBC1RGBA:          {name: "COMPRESSED_RGBA_S3TC_DXT1", compressed: true},
	FormatBC2RGBA:          {name: "COMPRESSED_RGBA_S3TC_DXT3", compressed: true},
	FormatBC3RGBA:          {name: "COMPRESSED_RGBA_S3TC_DXT5", compressed: true},
}

func (f InternalFormat) String() string {
	if info, ok := formatInfos[f]; ok {
		return info.name
	}
	return fmt.Sprintf("0x%04X", uint32(f))
}

// Size returns the size of one texel in bytes. It returns 0 for
// block-compressed and unknown formats.
func (f InternalFormat) Size() int { return formatInfos[f].size }

// IsDepth reports whether the format has a depth component.
func (f InternalFormat) IsDepth() bool { return formatInfos[f].depth }

// HasStencil reports whether the format has a stencil component.
func (f InternalFormat) HasStencil() bool { return formatInfos[f].stencil }

// IsInteger reports whether the format stores unnormalized integers.
func (f InternalFormat) IsInteger() bool { return formatInfos[f].integer }

// IsCompressed reports whether the format is block-compressed.
func (f InternalFormat) IsCompressed() bool { return formatInfos[f].compressed }

// PixelFormat is the client-side layout of pixel data.
type PixelFormat uint32

const (
	PixelRed          PixelFormat = driver.RED
	PixelRG           PixelFormat = driver.RG
	PixelRGB          PixelFormat = driver.RGB
	PixelRGBA         PixelFormat = driver.RGBA
	PixelBGR          PixelFormat = driver.BGR
	PixelBGRA         PixelFormat = driver.BGRA
	PixelRedInteger   PixelFormat = driver.RED_INTEGER
	PixelRGInteger    PixelFormat = driver.RG_INTEGER
	PixelRGBInteger   PixelFormat = driver.RGB_INTEGER
	PixelRGBAInteger  PixelFormat = driver.RGBA_INTEGER
	PixelDepth        PixelFormat = driver.DEPTH_COMPONENT
	PixelStencil      PixelFormat = driver.STENCIL_INDEX
	PixelDepthStencil PixelFormat = driver.DEPTH_STENCIL
)

var pixelFormatNames = map[PixelFormat]string{
	PixelRed:          "RED",
	PixelRG:           "RG",
	PixelRGB:          "RGB",
	PixelRGBA:         "RGBA",
	PixelBGR:          "BGR",
	PixelBGRA:         "BGRA",
	PixelRedInteger:   "RED_INTEGER",
	PixelRGInteger:    "RG_INTEGER",
	PixelRGBInteger:   "RGB_INTEGER",
	PixelRGBAInteger:  "RGBA_INTEGER",
	PixelDepth:        "DEPTH_COMPONENT",
	PixelStencil:      "STENCIL_INDEX",
	PixelDepthStencil: "DEPTH_STENCIL",
}

func (f PixelFormat) String() string { return enumName(pixelFormatNames, f) }

// Components returns the number of components per pixel, or 0 for an
// unknown format.
func (f PixelFormat) Components() int {
	switch f {
	case PixelRed, PixelRedInteger, PixelDepth, PixelStencil:
		return 1
	case PixelRG, PixelRGInteger, PixelDepthStencil:
		return 2
	case PixelRGB, PixelBGR, PixelRGBInteger:
		return 3
	case PixelRGBA, PixelBGRA, PixelRGBAInteger:
		return 4
	}
	return 0
}

// DataType is a GL component or packed pixel type.
type DataType uint32

const (
	TypeByte          DataType = driver.BYTE
	TypeUnsignedByte  DataType = driver.UNSIGNED_BYTE
	TypeShort         DataType = driver.SHORT
	TypeUnsignedShort DataType = driver.UNSIGNED_SHORT
	TypeInt           DataType = driver.INT
	TypeUnsignedInt   DataType = driver.UNSIGNED_INT
	TypeFixed         DataType = driver.FIXED
	TypeHalfFloat     DataType = driver.HALF_FLOAT
	TypeFloat         DataType = driver.FLOAT
	TypeDouble        DataType = driver.DOUBLE

	TypeUnsignedByte332          DataType = driver.UNSIGNED_BYTE_3_3_2
	TypeUnsignedShort565         DataType = driver.UNSIGNED_SHORT_5_6_5
	TypeUnsignedShort4444        DataType = driver.UNSIGNED_SHORT_4_4_4_4
	TypeUnsignedShort5551        DataType = driver.UNSIGNED_SHORT_5_5_5_1
	TypeUnsignedInt8888          DataType = driver.UNSIGNED_INT_8_8_8_8
	TypeUnsignedInt8888Rev       DataType = driver.UNSIGNED_INT_8_8_8_8_REV
	TypeUnsignedInt2101010Rev    DataType = driver.UNSIGNED_INT_2_10_10_10_REV
	TypeUnsignedInt248           DataType = driver.UNSIGNED_INT_24_8
	TypeFloat32UnsignedInt248Rev DataType = driver.FLOAT_32_UNSIGNED_INT_24_8_REV
)

type dataTypeInfo struct {
	name   string
	size   int
	packed bool
}

var dataTypeInfos = map[DataType]dataTypeInfo{
	TypeByte:          {name: "BYTE", size: 1},
	TypeUnsignedByte:  {name: "UNSIGNED_BYTE", size: 1},
	TypeShort:         {name: "SHORT", size: 2},
	TypeUnsignedShort: {name: "UNSIGNED_SHORT", size: 2},
	TypeInt:           {name: "INT", size: 4},
	TypeUnsignedInt:   {name: "UNSIGNED_INT", size: 4},
	TypeFixed:         {name: "FIXED", size: 4},
	TypeHalfFloat:     {name: "HALF_FLOAT", size: 2},
	TypeFloat:         {name: "FLOAT", size: 4},
	TypeDouble:        {name: "DOUBLE", size: 8},

	TypeUnsignedByte332:          {name: "UNSIGNED_BYTE_3_3_2", size: 1, packed: true},
	TypeUnsignedShort565:         {name: "UNSIGNED_SHORT_5_6_5", size: 2, packed: true},
	TypeUnsignedShort4444:        {name: "UNSIGNED_SHORT_4_4_4_4", size: 2, packed: true},
	TypeUnsignedShort5551:        {name: "UNSIGNED_SHORT_5_5_5_1", size: 2, packed: true},
	TypeUnsignedInt8888:          {name: "UNSIGNED_INT_8_8_8_8", size: 4, packed: true},
	TypeUnsignedInt8888Rev:       {name: "UNSIGNED_INT_8_8_8_8_REV", size: 4, packed: true},
	TypeUnsignedInt2101010Rev:    {name: "UNSIGNED_INT_2_10_10_10_REV", size: 4, packed: true},
	TypeUnsignedInt248:           {name: "UNSIGNED_INT_24_8", size: 4, packed: true},
	TypeFloat32UnsignedInt248Rev: {name: "FLOAT_32_UNSIGNED_INT_24_8_REV", size: 8, packed: true},
}

func (t DataType) String() string {
	if info, ok := dataTypeInfos[t]; ok {
		return info.name
	}
	return fmt.Sprintf("0x%04X", uint32(t))
}

// Size returns the size of one component in bytes, or of a whole pixel for
// packed types. It returns 0 for unknown types.
func (t DataType) Size() int { return dataTypeInfos[t].size }

// IsPacked reports whether all components of a pixel share one value.
func (t DataType) IsPacked() bool { return dataTypeInfos[t].packed }

// Filter is a texture minification or magnification filter.
type Filter uint32

const (
	FilterNearest              Filter = driver.NEAREST
	FilterLinear               Filter = driver.LINEAR
	FilterNearestMipmapNearest Filter = driver.NEAREST_MIPMAP_NEAREST
	FilterLinearMipmapNearest  Filter = driver.LINEAR_MIPMAP_NEAREST
	FilterNearestMipmapLinear  Filter = driver.NEAREST_MIPMAP_LINEAR
	FilterLinearMipmapLinear   Filter = driver.LINEAR_MIPMAP_LINEAR
)

var filterNames = map[Filter]string{
	FilterNearest:              "NEAREST",
	FilterLinear:               "LINEAR",
	FilterNearestMipmapNearest: "NEAREST_MIPMAP_NEAREST",
	FilterLinearMipmapNearest:  "LINEAR_MIPMAP_NEAREST",
	FilterNearestMipmapLinear:  "NEAREST_MIPMAP_LINEAR",
	FilterLinearMipmapLinear:   "LINEAR_MIPMAP_LINEAR",
}

func (f Filter) String() string { return enumName(filterNames, f) }

// WrapMode is a texture coordinate wrap mode.
type WrapMode uint32

const (
	WrapRepeat            WrapMode = driver.REPEAT
	WrapMirroredRepeat    WrapMode = driver.MIRRORED_REPEAT
	WrapClampToEdge       WrapMode = driver.CLAMP_TO_EDGE
	WrapClampToBorder     WrapMode = driver.CLAMP_TO_BORDER
	WrapMirrorClampToEdge WrapMode = driver.MIRROR_CLAMP_TO_EDGE
)

var wrapModeNames = map[WrapMode]string{
	WrapRepeat:            "REPEAT",
	WrapMirroredRepeat:    "MIRRORED_REPEAT",
	WrapClampToEdge:       "CLAMP_TO_EDGE",
	WrapClampToBorder:     "CLAMP_TO_BORDER",
	WrapMirrorClampToEdge: "MIRROR_CLAMP_TO_EDGE",
}

func (w WrapMode) String() string { return enumName(wrapModeNames, w) }

// TextureParameter names a texture parameter.
type TextureParameter uint32

const (
	ParamMinFilter        TextureParameter = driver.TEXTURE_MIN_FILTER
	ParamMagFilter        TextureParameter = driver.TEXTURE_MAG_FILTER
	ParamWrapS            TextureParameter = driver.TEXTURE_WRAP_S
	ParamWrapT            TextureParameter = driver.TEXTURE_WRAP_T
	ParamWrapR            TextureParameter = driver.TEXTURE_WRAP_R
	ParamBaseLevel        TextureParameter = driver.TEXTURE_BASE_LEVEL
	ParamMaxLevel         TextureParameter = driver.TEXTURE_MAX_LEVEL
	ParamMinLOD           TextureParameter = driver.TEXTURE_MIN_LOD
	ParamMaxLOD           TextureParameter = driver.TEXTURE_MAX_LOD
	ParamLODBias          TextureParameter = driver.TEXTURE_LOD_BIAS
	ParamCompareMode      TextureParameter = driver.TEXTURE_COMPARE_MODE
	ParamCompareFunc      TextureParameter = driver.TEXTURE_COMPARE_FUNC
	ParamSwizzleR         TextureParameter = driver.TEXTURE_SWIZZLE_R
	ParamSwizzleG         TextureParameter = driver.TEXTURE_SWIZZLE_G
	ParamSwizzleB         TextureParameter = driver.TEXTURE_SWIZZLE_B
	ParamSwizzleA         TextureParameter = driver.TEXTURE_SWIZZLE_A
	ParamDepthStencilMode TextureParameter = driver.DEPTH_STENCIL_TEXTURE_MODE
)

var textureParameterNames = map[TextureParameter]string{
	ParamMinFilter:        "TEXTURE_MIN_FILTER",
	ParamMagFilter:        "TEXTURE_MAG_FILTER",
	ParamWrapS:            "TEXTURE_WRAP_S",
	ParamWrapT:            "TEXTURE_WRAP_T",
	ParamWrapR:            "TEXTURE_WRAP_R",
	ParamBaseLevel:        "TEXTURE_BASE_LEVEL",
	ParamMaxLevel:         "TEXTURE_MAX_LEVEL",
	ParamMinLOD:           "TEXTURE_MIN_LOD",
	ParamMaxLOD:           "TEXTURE_MAX_LOD",
	ParamLODBias:          "TEXTURE_LOD_BIAS",
	ParamCompareMode:      "TEXTURE_COMPARE_MODE",
	ParamCompareFunc:      "TEXTURE_COMPARE_FUNC",
	ParamSwizzleR:         "TEXTURE_SWIZZLE_R",
	ParamSwizzleG:         "TEXTURE_SWIZZLE_G",
	ParamSwizzleB:         "TEXTURE_SWIZZLE_B",
	ParamSwizzleA:         "TEXTURE_SWIZZLE_A",
	ParamDepthStencilMode: "DEPTH_STENCIL_TEXTURE_MODE",
}

func (p TextureParameter) String() string { return enumName(textureParameterNames, p) }

// AttachmentPoint is a framebuffer attachment point.
type AttachmentPoint uint32

const (
	AttachmentColor0       AttachmentPoint = driver.COLOR_ATTACHMENT0
	AttachmentDepth        AttachmentPoint = driver.DEPTH_ATTACHMENT
	AttachmentStencil      AttachmentPoint = driver.STENCIL_ATTACHMENT
	AttachmentDepthStencil AttachmentPoint = driver.DEPTH_STENCIL_ATTACHMENT
)

// maxColorAttachments bounds the color attachment range accepted by
// IsColor. Drivers expose at least 8.
const maxColorAttachments = 32

// ColorAttachment returns the attachment point COLOR_ATTACHMENTn.
func ColorAttachment(n int) AttachmentPoint {
	return AttachmentColor0 + AttachmentPoint(n)
}

// IsColor reports whether p is a color attachment point.
func (p AttachmentPoint) IsColor() bool {
	return p >= AttachmentColor0 && p < AttachmentColor0+maxColorAttachments
}

// IsDepthOrStencil reports whether p is the depth, stencil or combined
// depth-stencil attachment point.
func (p AttachmentPoint) IsDepthOrStencil() bool {
	return p == AttachmentDepth || p == AttachmentStencil || p == AttachmentDepthStencil
}

func (p AttachmentPoint) String() string {
	switch {
	case p.IsColor():
		return fmt.Sprintf("COLOR_ATTACHMENT%d", p-AttachmentColor0)
	case p == AttachmentDepth:
		return "DEPTH_ATTACHMENT"
	case p == AttachmentStencil:
		return "STENCIL_ATTACHMENT"
	case p == AttachmentDepthStencil:
		return "DEPTH_STENCIL_ATTACHMENT"
	}
	return fmt.Sprintf("0x%04X", uint32(p))
}

// ShaderType is a shader stage.
type ShaderType uint32

const (
	ShaderVertex         ShaderType = driver.VERTEX_SHADER
	ShaderFragment       ShaderType = driver.FRAGMENT_SHADER
	ShaderGeometry       ShaderType = driver.GEOMETRY_SHADER
	ShaderTessControl    ShaderType = driver.TESS_CONTROL_SHADER
	ShaderTessEvaluation ShaderType = driver.TESS_EVALUATION_SHADER
	ShaderCompute        ShaderType = driver.COMPUTE_SHADER
)

var shaderTypeNames = map[ShaderType]string{
	ShaderVertex:         "VERTEX_SHADER",
	ShaderFragment:       "FRAGMENT_SHADER",
	ShaderGeometry:       "GEOMETRY_SHADER",
	ShaderTessControl:    "TESS_CONTROL_SHADER",
	ShaderTessEvaluation: "TESS_EVALUATION_SHADER",
	ShaderCompute:        "COMPUTE_SHADER",
}

func (t ShaderType) String() string { return enumName(shaderTypeNames, t) }

// Capability is a server-side capability toggled with Enable and Disable.
type Capability uint32

const (
	CapBlend                      Capability = driver.BLEND
	CapCullFace                   Capability = driver.CULL_FACE
	CapDepthTest                  Capability = driver.DEPTH_TEST
	CapStencilTest                Capability = driver.STENCIL_TEST
	CapScissorTest                Capability = driver.SCISSOR_TEST
	CapDither                     Capability = driver.DITHER
	CapLineSmooth                 Capability = driver.LINE_SMOOTH
	CapPolygonOffsetFill          Capability = driver.POLYGON_OFFSET_FILL
	CapPolygonOffsetLine          Capability = driver.POLYGON_OFFSET_LINE
	CapMultisample                Capability = driver.MULTISAMPLE
	CapSampleAlphaToCoverage      Capability = driver.SAMPLE_ALPHA_TO_COVERAGE
	CapSampleShading              Capability = driver.SAMPLE_SHADING
	CapProgramPointSize           Capability = driver.PROGRAM_POINT_SIZE
	CapDepthClamp                 Capability = driver.DEPTH_CLAMP
	CapTextureCubeMapSeamless     Capability = driver.TEXTURE_CUBE_MAP_SEAMLESS
	CapRasterizerDiscard          Capability = driver.RASTERIZER_DISCARD
	CapPrimitiveRestart           Capability = driver.PRIMITIVE_RESTART
	CapPrimitiveRestartFixedIndex Capability = driver.PRIMITIVE_RESTART_FIXED_INDEX
	CapFramebufferSRGB            Capability = driver.FRAMEBUFFER_SRGB
	CapDebugOutput                Capability = driver.DEBUG_OUTPUT
	CapDebugOutputSynchronous     Capability = driver.DEBUG_OUTPUT_SYNCHRONOUS
)

var capabilityNames = map[Capability]string{
	CapBlend:                      "BLEND",
	CapCullFace:                   "CULL_FACE",
	CapDepthTest:                  "DEPTH_TEST",
	CapStencilTest:                "STENCIL_TEST",
	CapScissorTest:                "SCISSOR_TEST",
	CapDither:                     "DITHER",
	CapLineSmooth:                 "LINE_SMOOTH",
	CapPolygonOffsetFill:          "POLYGON_OFFSET_FILL",
	CapPolygonOffsetLine:          "POLYGON_OFFSET_LINE",
	CapMultisample:                "MULTISAMPLE",
	CapSampleAlphaToCoverage:      "SAMPLE_ALPHA_TO_COVERAGE",
	CapSampleShading:              "SAMPLE_SHADING",
	CapProgramPointSize:           "PROGRAM_POINT_SIZE",
	CapDepthClamp:                 "DEPTH_CLAMP",
	CapTextureCubeMapSeamless:     "TEXTURE_CUBE_MAP_SEAMLESS",
	CapRasterizerDiscard:          "RASTERIZER_DISCARD",
	CapPrimitiveRestart:           "PRIMITIVE_RESTART",
	CapPrimitiveRestartFixedIndex: "PRIMITIVE_RESTART_FIXED_INDEX",
	CapFramebufferSRGB:            "FRAMEBUFFER_SRGB",
	CapDebugOutput:                "DEBUG_OUTPUT",
	CapDebugOutputSynchronous:     "DEBUG_OUTPUT_SYNCHRONOUS",
}

func (c Capability) String() string { return enumName(capabilityNames, c) }

// BlendFactor is a source or destination blend factor.
type BlendFactor uint32

const (
	BlendZero                  BlendFactor = driver.ZERO
	BlendOne                   BlendFactor = driver.ONE
	BlendSrcColor              BlendFactor = driver.SRC_COLOR
	BlendOneMinusSrcColor      BlendFactor = driver.ONE_MINUS_SRC_COLOR
	BlendSrcAlpha              BlendFactor = driver.SRC_ALPHA
	BlendOneMinusSrcAlpha      BlendFactor = driver.ONE_MINUS_SRC_ALPHA
	BlendDstAlpha              BlendFactor = driver.DST_ALPHA
	BlendOneMinusDstAlpha      BlendFactor = driver.ONE_MINUS_DST_ALPHA
	BlendDstColor              BlendFactor = driver.DST_COLOR
	BlendOneMinusDstColor      BlendFactor = driver.ONE_MINUS_DST_COLOR
	BlendSrcAlphaSaturate      BlendFactor = driver.SRC_ALPHA_SATURATE
	BlendConstantColor         BlendFactor = driver.CONSTANT_COLOR
	BlendOneMinusConstantColor BlendFactor = driver.ONE_MINUS_CONSTANT_COLOR
	BlendConstantAlpha         BlendFactor = driver.CONSTANT_ALPHA
	BlendOneMinusConstantAlpha BlendFactor = driver.ONE_MINUS_CONSTANT_ALPHA
)

var blendFactorNames = map[BlendFactor]string{
	BlendZero:                  "ZERO",
	BlendOne:                   "ONE",
	BlendSrcColor:              "SRC_COLOR",
	BlendOneMinusSrcColor:      "ONE_MINUS_SRC_COLOR",
	BlendSrcAlpha:              "SRC_ALPHA",
	BlendOneMinusSrcAlpha:      "ONE_MINUS_SRC_ALPHA",
	BlendDstAlpha:              "DST_ALPHA",
	BlendOneMinusDstAlpha:      "ONE_MINUS_DST_ALPHA",
	BlendDstColor:              "DST_COLOR",
	BlendOneMinusDstColor:      "ONE_MINUS_DST_COLOR",
	BlendSrcAlphaSaturate:      "SRC_ALPHA_SATURATE",
	BlendConstantColor:         "CONSTANT_COLOR",
	BlendOneMinusConstantColor: "ONE_MINUS_CONSTANT_COLOR",
	BlendConstantAlpha:         "CONSTANT_ALPHA",
	BlendOneMinusConstantAlpha: "ONE_MINUS_CONSTANT_ALPHA",
}

func (f BlendFactor) String() string { return enumName(blendFactorNames, f) }

// BlendEquation combines the weighted source and destination colors.
type BlendEquation uint32

const (
	BlendAdd             BlendEquation = driver.FUNC_ADD
	BlendSubtract        BlendEquation = driver.FUNC_SUBTRACT
	BlendReverseSubtract BlendEquation = driver.FUNC_REVERSE_SUBTRACT
	BlendMin             BlendEquation = driver.MIN
	BlendMax             BlendEquation = driver.MAX
)

var blendEquationNames = map[BlendEquation]string{
	BlendAdd:             "FUNC_ADD",
	BlendSubtract:        "FUNC_SUBTRACT",
	BlendReverseSubtract: "FUNC_REVERSE_SUBTRACT",
	BlendMin:             "MIN",
	BlendMax:             "MAX",
}

func (e BlendEquation) String() string { return enumName(blendEquationNames, e) }

// DrawMode is a primitive topology.
type DrawMode uint32

const (
	DrawPoints                 DrawMode = driver.POINTS
	DrawLines                  DrawMode = driver.LINES
	DrawLineLoop               DrawMode = driver.LINE_LOOP
	DrawLineStrip              DrawMode = driver.LINE_STRIP
	DrawTriangles              DrawMode = driver.TRIANGLES
	DrawTriangleStrip          DrawMode = driver.TRIANGLE_STRIP
	DrawTriangleFan            DrawMode = driver.TRIANGLE_FAN
	DrawLinesAdjacency         DrawMode = driver.LINES_ADJACENCY
	DrawLineStripAdjacency     DrawMode = driver.LINE_STRIP_ADJACENCY
	DrawTrianglesAdjacency     DrawMode = driver.TRIANGLES_ADJACENCY
	DrawTriangleStripAdjacency DrawMode = driver.TRIANGLE_STRIP_ADJACENCY
	DrawPatches                DrawMode = driver.PATCHES
)

var drawModeNames = map[DrawMode]string{
	DrawPoints:                 "POINTS",
	DrawLines:                  "LINES",
	DrawLineLoop:               "LINE_LOOP",
	DrawLineStrip:              "LINE_STRIP",
	DrawTriangles:              "TRIANGLES",
	DrawTriangleStrip:          "TRIANGLE_STRIP",
	DrawTriangleFan:            "TRIANGLE_FAN",
	DrawLinesAdjacency:         "LINES_ADJACENCY",
	DrawLineStripAdjacency:     "LINE_STRIP_ADJACENCY",
	DrawTrianglesAdjacency:     "TRIANGLES_ADJACENCY",
	DrawTriangleStripAdjacency: "TRIANGLE_STRIP_ADJACENCY",
	DrawPatches:                "PATCHES",
}

func (m DrawMode) String() string { return enumName(drawModeNames, m) }

// IndexType is the element type of an index buffer.
type IndexType uint32

const (
	IndexUint8  IndexType = driver.UNSIGNED_BYTE
	IndexUint16 IndexType = driver.UNSIGNED_SHORT
	IndexUint32 IndexType = driver.UNSIGNED_INT
)

// Size returns the size of one index in bytes.
func (t IndexType) Size() int { return DataType(t).Size() }

func (t IndexType) String() string { return DataType(t).String() }

// ClearMask selects the buffers cleared by Device.Clear.
type ClearMask uint32

const (
	ClearColorBit   ClearMask = driver.COLOR_BUFFER_BIT
	ClearDepthBit   ClearMask = driver.DEPTH_BUFFER_BIT
	ClearStencilBit ClearMask = driver.STENCIL_BUFFER_BIT
)

var clearMaskOrder = []ClearMask{ClearColorBit, ClearDepthBit, ClearStencilBit}

var clearMaskNames = map[ClearMask]string{
	ClearColorBit:   "COLOR",
	ClearDepthBit:   "DEPTH",
	ClearStencilBit: "STENCIL",
}

func (m ClearMask) String() string { return flagNames(clearMaskNames, clearMaskOrder, m) }

// Barrier is a bitmask of memory barrier bits.
type Barrier uint32

const (
	BarrierVertexAttribArray  Barrier = driver.VERTEX_ATTRIB_ARRAY_BARRIER_BIT
	BarrierElementArray       Barrier = driver.ELEMENT_ARRAY_BARRIER_BIT
	BarrierUniform            Barrier = driver.UNIFORM_BARRIER_BIT
	BarrierTextureFetch       Barrier = driver.TEXTURE_FETCH_BARRIER_BIT
	BarrierShaderImageAccess  Barrier = driver.SHADER_IMAGE_ACCESS_BARRIER_BIT
	BarrierCommand            Barrier = driver.COMMAND_BARRIER_BIT
	BarrierPixelBuffer        Barrier = driver.PIXEL_BUFFER_BARRIER_BIT
	BarrierTextureUpdate      Barrier = driver.TEXTURE_UPDATE_BARRIER_BIT
	BarrierBufferUpdate       Barrier = driver.BUFFER_UPDATE_BARRIER_BIT
	BarrierFramebuffer        Barrier = driver.FRAMEBUFFER_BARRIER_BIT
	BarrierTransformFeedback  Barrier = driver.TRANSFORM_FEEDBACK_BARRIER_BIT
	BarrierAtomicCounter      Barrier = driver.ATOMIC_COUNTER_BARRIER_BIT
	BarrierShaderStorage      Barrier = driver.SHADER_STORAGE_BARRIER_BIT
	BarrierClientMappedBuffer Barrier = driver.CLIENT_MAPPED_BUFFER_BARRIER_BIT
	BarrierQueryBuffer        Barrier = driver.QUERY_BUFFER_BARRIER_BIT
	BarrierAll                Barrier = driver.ALL_BARRIER_BITS
)

// Face selects front- or back-facing polygons.
type Face uint32

const (
	FaceFront        Face = driver.FRONT
	FaceBack         Face = driver.BACK
	FaceFrontAndBack Face = driver.FRONT_AND_BACK
)

// Winding is the vertex order of front-facing polygons.
type Winding uint32

const (
	WindingCW  Winding = driver.CW
	WindingCCW Winding = driver.CCW
)

// PolygonRasterMode controls how polygons are rasterized.
type PolygonRasterMode uint32

const (
	PolygonPoint PolygonRasterMode = driver.POINT
	PolygonLine  PolygonRasterMode = driver.LINE
	PolygonFill  PolygonRasterMode = driver.FILL
)

// DebugSource is the origin of a debug message.
type DebugSource uint32

const (
	DebugSourceAPI            DebugSource = driver.DEBUG_SOURCE_API
	DebugSourceWindowSystem   DebugSource = driver.DEBUG_SOURCE_WINDOW_SYSTEM
	DebugSourceShaderCompiler DebugSource = driver.DEBUG_SOURCE_SHADER_COMPILER
	DebugSourceThirdParty     DebugSource = driver.DEBUG_SOURCE_THIRD_PARTY
	DebugSourceApplication    DebugSource = driver.DEBUG_SOURCE_APPLICATION
	DebugSourceOther          DebugSource = driver.DEBUG_SOURCE_OTHER
)

var debugSourceNames = map[DebugSource]string{
	DebugSourceAPI:            "API",
	DebugSourceWindowSystem:   "WINDOW_SYSTEM",
	DebugSourceShaderCompiler: "SHADER_COMPILER",
	DebugSourceThirdParty:     "THIRD_PARTY",
	DebugSourceApplication:    "APPLICATION",
	DebugSourceOther:          "OTHER",
}

func (s DebugSource) String() string {
	if name, ok := debugSourceNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// DebugType is the category of a debug message.
type DebugType uint32

const (
	DebugTypeError              DebugType = driver.DEBUG_TYPE_ERROR
	DebugTypeDeprecatedBehavior DebugType = driver.DEBUG_TYPE_DEPRECATED_BEHAVIOR
	DebugTypeUndefinedBehavior  DebugType = driver.DEBUG_TYPE_UNDEFINED_BEHAVIOR
	DebugTypePortability        DebugType = driver.DEBUG_TYPE_PORTABILITY
	DebugTypePerformance        DebugType = driver.DEBUG_TYPE_PERFORMANCE
	DebugTypeOther              DebugType = driver.DEBUG_TYPE_OTHER
	DebugTypeMarker             DebugType = driver.DEBUG_TYPE_MARKER
	DebugTypePushGroup          DebugType = driver.DEBUG_TYPE_PUSH_GROUP
	DebugTypePopGroup           DebugType = driver.DEBUG_TYPE_POP_GROUP
)

var debugTypeNames = map[DebugType]string{
	DebugTypeError:              "ERROR",
	DebugTypeDeprecatedBehavior: "DEPRECATED_BEHAVIOR",
	DebugTypeUndefinedBehavior:  "UNDEFINED_BEHAVIOR",
	DebugTypePortability:        "PORTABILITY",
	DebugTypePerformance:        "PERFORMANCE",
	DebugTypeOther:              "OTHER",
	DebugTypeMarker:             "MARKER",
	DebugTypePushGroup:          "PUSH_GROUP",
	DebugTypePopGroup:           "POP_GROUP",
}

func (t DebugType) String() string {
	if name, ok := debugTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// DebugSeverity is the importance of a debug message.
type DebugSeverity uint32

const (
	DebugSeverityNotification DebugSeverity = driver.DEBUG_SEVERITY_NOTIFICATION
	DebugSeverityLow          DebugSeverity = driver.DEBUG_SEVERITY_LOW
	DebugSeverityMedium       DebugSeverity = driver.DEBUG_SEVERITY_MEDIUM
	DebugSeverityHigh         DebugSeverity = driver.DEBUG_SEVERITY_HIGH
)

var debugSeverityNames = map[DebugSeverity]string{
	DebugSeverityNotification: "NOTIFICATION",
	DebugSeverityLow:          "LOW",
	DebugSeverityMedium:       "MEDIUM",
	DebugSeverityHigh:         "HIGH",
}

func (s DebugSeverity) String() string {
	if name, ok := debugSeverityNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}
