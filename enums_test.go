package glkit

import "testing"

func TestBufferFlag(t *testing.T) {
	flags := BufferMapWrite | BufferMapPersistent | BufferMapCoherent
	if !flags.Has(BufferMapWrite | BufferMapCoherent) {
		t.Error("Has() = false for a subset")
	}
	if flags.Has(BufferMapRead | BufferMapWrite) {
		t.Error("Has() = true with a missing bit")
	}

	tests := []struct {
		flags BufferFlag
		want  string
	}{
		{0, "NONE"},
		{BufferDynamicStorage, "DYNAMIC_STORAGE"},
		{flags, "MAP_WRITE|MAP_PERSISTENT|MAP_COHERENT"},
		{BufferMapRead | 0x8000_0000, "MAP_READ|0x80000000"},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestInternalFormat_Properties(t *testing.T) {
	tests := []struct {
		format                              InternalFormat
		name                                string
		size                                int
		depth, stencil, integer, compressed bool
	}{
		{FormatRGBA8, "RGBA8", 4, false, false, false, false},
		{FormatRGBA32F, "RGBA32F", 16, false, false, false, false},
		{FormatR16UI, "R16UI", 2, false, false, true, false},
		{FormatDepth24, "DEPTH_COMPONENT24", 4, true, false, false, false},
		{FormatDepth24Stencil8, "DEPTH24_STENCIL8", 4, true, true, false, false},
		{FormatStencil8, "STENCIL_INDEX8", 1, false, true, false, false},
		{FormatBC1RGBA, "COMPRESSED_RGBA_S3TC_DXT1", 0, false, false, false, true},
		{InternalFormat(0x1234), "0x1234", 0, false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.format.Size(); got != tt.size {
				t.Errorf("Size() = %d, want %d", got, tt.size)
			}
			if tt.format.IsDepth() != tt.depth || tt.format.HasStencil() != tt.stencil {
				t.Errorf("IsDepth/HasStencil = %t/%t", tt.format.IsDepth(), tt.format.HasStencil())
			}
			if tt.format.IsInteger() != tt.integer || tt.format.IsCompressed() != tt.compressed {
				t.Errorf("IsInteger/IsCompressed = %t/%t", tt.format.IsInteger(), tt.format.IsCompressed())
			}
		})
	}
}

func TestPixelFormat_Components(t *testing.T) {
	tests := []struct {
		format PixelFormat
		want   int
	}{
		{PixelRed, 1},
		{PixelDepth, 1},
		{PixelRGInteger, 2},
		{PixelDepthStencil, 2},
		{PixelBGR, 3},
		{PixelRGBA, 4},
		{PixelFormat(0), 0},
	}
	for _, tt := range tests {
		if got := tt.format.Components(); got != tt.want {
			t.Errorf("%s.Components() = %d, want %d", tt.format, got, tt.want)
		}
	}
}

func TestDataType(t *testing.T) {
	tests := []struct {
		typ    DataType
		name   string
		size   int
		packed bool
	}{
		{TypeUnsignedByte, "UNSIGNED_BYTE", 1, false},
		{TypeHalfFloat, "HALF_FLOAT", 2, false},
		{TypeDouble, "DOUBLE", 8, false},
		{TypeUnsignedShort565, "UNSIGNED_SHORT_5_6_5", 2, true},
		{TypeFloat32UnsignedInt248Rev, "FLOAT_32_UNSIGNED_INT_24_8_REV", 8, true},
		{DataType(0x0001), "0x0001", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.typ.Size(); got != tt.size {
				t.Errorf("Size() = %d, want %d", got, tt.size)
			}
			if got := tt.typ.IsPacked(); got != tt.packed {
				t.Errorf("IsPacked() = %t, want %t", got, tt.packed)
			}
		})
	}

	if got := IndexUint16.Size(); got != 2 {
		t.Errorf("IndexUint16.Size() = %d, want 2", got)
	}
	if got := IndexUint32.String(); got != "UNSIGNED_INT" {
		t.Errorf("IndexUint32.String() = %q", got)
	}
}

func TestAttachmentPoint(t *testing.T) {
	tests := []struct {
		point   AttachmentPoint
		name    string
		color   bool
		special bool
	}{
		{ColorAttachment(0), "COLOR_ATTACHMENT0", true, false},
		{ColorAttachment(7), "COLOR_ATTACHMENT7", true, false},
		{ColorAttachment(31), "COLOR_ATTACHMENT31", true, false},
		{AttachmentDepth, "DEPTH_ATTACHMENT", false, true},
		{AttachmentStencil, "STENCIL_ATTACHMENT", false, true},
		{AttachmentDepthStencil, "DEPTH_STENCIL_ATTACHMENT", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.point.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.point.IsColor(); got != tt.color {
				t.Errorf("IsColor() = %t, want %t", got, tt.color)
			}
			if got := tt.point.IsDepthOrStencil(); got != tt.special {
				t.Errorf("IsDepthOrStencil() = %t, want %t", got, tt.special)
			}
		})
	}
	if ColorAttachment(32).IsColor() {
		t.Error("COLOR_ATTACHMENT32 reported as a color attachment")
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"buffer target", BufferTargetShaderStorage.String(), "SHADER_STORAGE_BUFFER"},
		{"texture target", TextureTargetCubeMapArray.String(), "TEXTURE_CUBE_MAP_ARRAY"},
		{"unknown texture target", TextureTarget(1).String(), "UNKNOWN"},
		{"pixel format", PixelRGBAInteger.String(), "RGBA_INTEGER"},
		{"filter", FilterLinearMipmapNearest.String(), "LINEAR_MIPMAP_NEAREST"},
		{"wrap mode", WrapMirroredRepeat.String(), "MIRRORED_REPEAT"},
		{"shader type", ShaderFragment.String(), "FRAGMENT_SHADER"},
		{"blend factor", BlendOneMinusConstantAlpha.String(), "ONE_MINUS_CONSTANT_ALPHA"},
		{"blend equation", BlendMax.String(), "MAX"},
		{"draw mode", DrawTriangleStripAdjacency.String(), "TRIANGLE_STRIP_ADJACENCY"},
		{"unknown draw mode", DrawMode(0xBEEF).String(), "0xBEEF"},
		{"clear mask", (ClearColorBit | ClearStencilBit).String(), "COLOR|STENCIL"},
		{"empty clear mask", ClearMask(0).String(), "NONE"},
		{"debug source", DebugSourceWindowSystem.String(), "WINDOW_SYSTEM"},
		{"debug type", DebugTypeUndefinedBehavior.String(), "UNDEFINED_BEHAVIOR"},
		{"debug severity", DebugSeverityMedium.String(), "MEDIUM"},
		{"unknown severity", DebugSeverity(0).String(), "UNKNOWN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}
