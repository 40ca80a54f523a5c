package glkit

import (
	"fmt"

	"github.com/gogpu/glkit/driver"
)

// Texture is a GPU image with immutable storage. Only the contents of the
// storage may change after creation.
type Texture struct {
	dev            *Device
	id             driver.Texture
	target         TextureTarget
	width          int
	height         int
	depth          int
	samples        int
	mipmaps        int
	internalFormat InternalFormat
}

// CreateTexture creates a texture from spec. Cube maps always get 6 layers.
// Buffer textures have one level, no storage of their own and no sampler
// parameters; attach a buffer with SetTextureBuffer.
//
// The spec is validated before any driver call. When setParameters is true
// the mip range, filters and wrap mode of the spec are applied.
func (d *Device) CreateTexture(spec TextureSpec, setParameters bool) (*Texture, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	t := &Texture{
		dev:            d,
		target:         spec.Target,
		width:          spec.Width,
		height:         spec.Height,
		depth:          spec.Depth,
		samples:        spec.Samples,
		mipmaps:        spec.Mipmaps,
		internalFormat: spec.InternalFormat,
	}
	switch t.target {
	case TextureTargetCubeMap:
		t.depth = 6
	case TextureTargetBuffer:
		t.mipmaps = 1
		setParameters = false
	case TextureTargetCubeMapArray:
		if t.depth%6 != 0 {
			return nil, fmt.Errorf("%w: cubemap array depth must be a multiple of 6, got %d", ErrInvalidArgument, t.depth)
		}
	}

	t.id = d.fns.CreateTexture(driver.Enum(t.target))
	if err := t.allocate(); err != nil {
		d.fns.DeleteTexture(t.id)
		return nil, err
	}

	if setParameters {
		t.setParameters(spec)
	}
	d.logger().Debug("glkit: texture created", "id", t.id, "texture", t.String())
	return t, nil
}

func (t *Texture) allocate() error {
	fns := t.dev.fns
	format := driver.Enum(t.internalFormat)
	switch t.target {
	case TextureTargetBuffer:
		return t.dev.checkError("CreateTexture")
	case TextureTarget1D:
		fns.TextureStorage1D(t.id, t.mipmaps, format, t.width)
	case TextureTarget2DMultisample:
		fns.TextureStorage2DMultisample(t.id, t.samples, format, t.width, t.height, true)
	case TextureTarget1DArray, TextureTarget2D, TextureTargetRectangle:
		fns.TextureStorage2D(t.id, t.mipmaps, format, t.width, t.height)
	case TextureTargetCubeMap:
		// Cube map storage is allocated per face; the driver adds the 6 layers.
		fns.TextureStorage2D(t.id, t.mipmaps, format, t.width, t.height)
	case TextureTarget2DMultisampleArray:
		fns.TextureStorage3DMultisample(t.id, t.samples, format, t.width, t.height, t.depth, true)
	case TextureTarget2DArray, TextureTarget3D, TextureTargetCubeMapArray:
		fns.TextureStorage3D(t.id, t.mipmaps, format, t.width, t.height, t.depth)
	default:
		return fmt.Errorf("%w: unsupported texture target %s", ErrInvalidArgument, t.target)
	}
	if err := t.dev.checkError("TextureStorage"); err != nil {
		return err
	}
	if fns.GetTextureParameteri(t.id, driver.TEXTURE_IMMUTABLE_FORMAT) != driver.TRUE {
		return fmt.Errorf("%w: couldn't create immutable texture storage", ErrDriver)
	}
	return nil
}

func (t *Texture) setParameters(spec TextureSpec) {
	fns := t.dev.fns
	if t.target.IsMultisample() {
		// Multisample textures cannot be sampled with filters.
		return
	}
	fns.TextureParameteri(t.id, driver.TEXTURE_BASE_LEVEL, 0)
	fns.TextureParameteri(t.id, driver.TEXTURE_MAX_LEVEL, int32(t.mipmaps-1)) //nolint:gosec // mip count is small
	fns.TextureParameteri(t.id, driver.TEXTURE_MIN_FILTER, int32(spec.MinFilter))
	fns.TextureParameteri(t.id, driver.TEXTURE_MAG_FILTER, int32(spec.MagFilter))
	fns.TextureParameteri(t.id, driver.TEXTURE_WRAP_S, int32(spec.WrapMode))
	fns.TextureParameteri(t.id, driver.TEXTURE_WRAP_R, int32(spec.WrapMode))
	fns.TextureParameteri(t.id, driver.TEXTURE_WRAP_T, int32(spec.WrapMode))
}

// ID returns the driver name of the texture.
func (t *Texture) ID() driver.Texture { return t.id }

// Target returns the texture target.
func (t *Texture) Target() TextureTarget { return t.target }

// Width returns the width of level 0.
func (t *Texture) Width() int { return t.width }

// Height returns the height of level 0.
func (t *Texture) Height() int { return t.height }

// Depth returns the depth or layer count of level 0.
func (t *Texture) Depth() int { return t.depth }

// Mipmaps returns the number of mip levels.
func (t *Texture) Mipmaps() int { return t.mipmaps }

// Samples returns the sample count.
func (t *Texture) Samples() int { return t.samples }

// InternalFormat returns the storage format.
func (t *Texture) InternalFormat() InternalFormat { return t.internalFormat }

// IsCubemap reports whether the texture is a cube map or cube map array.
func (t *Texture) IsCubemap() bool {
	return t.target == TextureTargetCubeMap || t.target == TextureTargetCubeMapArray
}

// IsArray reports whether the texture is a 1D or 2D array.
func (t *Texture) IsArray() bool {
	return t.target == TextureTarget1DArray || t.target == TextureTarget2DArray ||
		t.target == TextureTarget2DMultisampleArray
}

// Is1D reports whether the texture is 1D or a 1D array.
func (t *Texture) Is1D() bool {
	return t.target == TextureTarget1D || t.target == TextureTarget1DArray
}

// Is2D reports whether the texture has 2D images.
func (t *Texture) Is2D() bool {
	switch t.target {
	case TextureTarget2D, TextureTarget2DArray, TextureTarget2DMultisample, TextureTarget2DMultisampleArray:
		return true
	}
	return false
}

// Is3D reports whether the texture is a 3D texture.
func (t *Texture) Is3D() bool { return t.target == TextureTarget3D }

// Upload fills a region of one level from data, starting at
// info.DataOffset. Uncompressed rows are read at the device's unpack
// alignment, so data must hold the padding between rows. A nil data slice
// only validates the region.
//
// Buffer textures cannot be uploaded to; write to their buffer instead.
func (t *Texture) Upload(info TextureUploadInfo, data []byte) error {
	if t.id == 0 {
		return ErrDestroyed
	}
	if t.target == TextureTargetBuffer {
		return fmt.Errorf("%w: cannot upload to a texture with TEXTURE_BUFFER target, "+
			"update the contents of its buffer instead", ErrInvalidState)
	}

	var src []byte
	if data != nil {
		if info.DataOffset < 0 {
			return fmt.Errorf("%w: negative data offset %d", ErrInvalidArgument, info.DataOffset)
		}
		if !info.IsCompressed() && info.PixelSize() == 0 {
			return fmt.Errorf("%w: unsupported pixel format %s with type %s", ErrInvalidType, info.Format, info.PixelType)
		}
		n := info.AlignedDataLength(t.dev.unpackAlignment)
		if n < 0 || !fits(info.DataOffset, n, len(data)) {
			return fmt.Errorf("%w: requested transfer data size exceeds provided buffer size "+
				"(offset: %d, calculated: %d, provided: %d, unpack alignment: %d)",
				ErrInvalidArgument, info.DataOffset, n, len(data), t.dev.unpackAlignment)
		}
		src = data[info.DataOffset : info.DataOffset+n]
	}

	var err error
	switch t.target {
	case TextureTarget1D:
		err = t.upload1D(info, src)
	case TextureTarget1DArray, TextureTarget2D, TextureTarget2DMultisample, TextureTargetRectangle:
		err = t.upload2D(info, src)
	case TextureTarget3D, TextureTarget2DArray, TextureTarget2DMultisampleArray, TextureTargetCubeMap:
		err = t.upload3D(info, src)
	default:
		return fmt.Errorf("%w: upload to %s textures", ErrNotImplemented, t.target)
	}
	if err != nil {
		return err
	}

	if info.GenerateMipmap && t.hasMipChain() {
		t.dev.fns.GenerateTextureMipmap(t.id)
	}
	return t.dev.checkError("Upload")
}

// hasMipChain reports whether the target supports mipmaps.
func (t *Texture) hasMipChain() bool {
	return t.target != TextureTargetRectangle && !t.target.IsMultisample()
}

func (t *Texture) upload1D(info TextureUploadInfo, src []byte) error {
	if info.Width <= 0 || info.XOffset < 0 {
		return fmt.Errorf("%w: 1D texture upload requires width to be greater than 0 "+
			"and x offset to be non-negative", ErrInvalidArgument)
	}
	if info.IsCompressed() {
		t.dev.fns.CompressedTextureSubImage1D(t.id, info.Level, info.XOffset, info.Width,
			driver.Enum(t.internalFormat), info.ImageSize, src)
		return nil
	}
	t.dev.fns.TextureSubImage1D(t.id, info.Level, info.XOffset, info.Width,
		driver.Enum(info.Format), driver.Enum(info.PixelType), src)
	return nil
}

func (t *Texture) upload2D(info TextureUploadInfo, src []byte) error {
	if info.Width <= 0 || info.Height <= 0 || info.XOffset < 0 || info.YOffset < 0 {
		return fmt.Errorf("%w: 2D texture upload requires width and height to be greater than 0 "+
			"and x, y offsets to be non-negative", ErrInvalidArgument)
	}
	if info.IsCompressed() {
		t.dev.fns.CompressedTextureSubImage2D(t.id, info.Level, info.XOffset, info.YOffset, info.Width, info.Height,
			driver.Enum(t.internalFormat), info.ImageSize, src)
		return nil
	}
	t.dev.fns.TextureSubImage2D(t.id, info.Level, info.XOffset, info.YOffset, info.Width, info.Height,
		driver.Enum(info.Format), driver.Enum(info.PixelType), src)
	return nil
}

func (t *Texture) upload3D(info TextureUploadInfo, src []byte) error {
	if info.Width <= 0 || info.Height <= 0 || info.Depth <= 0 ||
		info.XOffset < 0 || info.YOffset < 0 || info.ZOffset < 0 {
		return fmt.Errorf("%w: 3D texture upload requires width, height and depth to be greater than 0 "+
			"and x, y, z offsets to be non-negative", ErrInvalidArgument)
	}
	if info.IsCompressed() {
		t.dev.fns.CompressedTextureSubImage3D(t.id, info.Level, info.XOffset, info.YOffset, info.ZOffset,
			info.Width, info.Height, info.Depth, driver.Enum(t.internalFormat), info.ImageSize, src)
		return nil
	}
	t.dev.fns.TextureSubImage3D(t.id, info.Level, info.XOffset, info.YOffset, info.ZOffset,
		info.Width, info.Height, info.Depth, driver.Enum(info.Format), driver.Enum(info.PixelType), src)
	return nil
}

// Read copies a whole level into dst using the given client format and
// type. Rows are padded to the pack alignment of the device.
func (t *Texture) Read(level int, format PixelFormat, typ DataType, dst []byte) error {
	if t.id == 0 {
		return ErrDestroyed
	}
	if level < 0 || level >= t.mipmaps {
		return fmt.Errorf("%w: level %d outside mip range [0, %d)", ErrInvalidArgument, level, t.mipmaps)
	}
	if t.target == TextureTargetBuffer || t.target.IsMultisample() {
		return fmt.Errorf("%w: cannot read back %s textures", ErrInvalidState, t.target)
	}
	t.dev.fns.GetTextureImage(t.id, level, driver.Enum(format), driver.Enum(typ), dst)
	return t.dev.checkError("GetTextureImage")
}

// SetTextureBuffer makes buf the storage of a buffer texture, interpreted
// with the texture's internal format.
func (t *Texture) SetTextureBuffer(buf *Buffer) error {
	if t.target != TextureTargetBuffer {
		return fmt.Errorf("%w: texture whose target is not TEXTURE_BUFFER cannot be used as buffer texture",
			ErrInvalidState)
	}
	if buf == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidType)
	}
	t.dev.fns.TextureBuffer(t.id, driver.Enum(t.internalFormat), buf.id)
	return nil
}

// SetParameterInt sets an integer texture parameter.
func (t *Texture) SetParameterInt(name TextureParameter, value int32) error {
	if t.target == TextureTargetBuffer {
		return fmt.Errorf("%w: cannot set parameters of texture which is a buffer texture", ErrInvalidState)
	}
	t.dev.fns.TextureParameteri(t.id, driver.Enum(name), value)
	return nil
}

// SetParameterFloat sets a floating-point texture parameter.
func (t *Texture) SetParameterFloat(name TextureParameter, value float32) error {
	if t.target == TextureTargetBuffer {
		return fmt.Errorf("%w: cannot set parameters of texture which is a buffer texture", ErrInvalidState)
	}
	t.dev.fns.TextureParameterf(t.id, driver.Enum(name), value)
	return nil
}

// GenerateMipmap regenerates every level from level 0.
func (t *Texture) GenerateMipmap() { t.dev.fns.GenerateTextureMipmap(t.id) }

// Bind binds the texture to its target on the active unit.
func (t *Texture) Bind() { t.dev.fns.BindTexture(driver.Enum(t.target), t.id) }

// BindToUnit binds the texture to a texture unit.
func (t *Texture) BindToUnit(unit uint32) { t.dev.fns.BindTextureUnit(unit, t.id) }

// SetDebugName attaches a debug label to the texture.
func (t *Texture) SetDebugName(name string) {
	t.dev.fns.ObjectLabel(driver.TEXTURE, uint32(t.id), name)
}

func (t *Texture) objectName() (driver.Enum, uint32) { return driver.TEXTURE, uint32(t.id) }

// Destroy releases the texture. It is safe to call more than once.
func (t *Texture) Destroy() {
	if t.id == 0 {
		return
	}
	t.dev.fns.DeleteTexture(t.id)
	t.dev.logger().Debug("glkit: texture destroyed", "id", t.id)
	t.id = 0
}

func (t *Texture) String() string {
	return fmt.Sprintf("Texture(target: %s, width: %d, height: %d, depth: %d, mipmaps: %d)",
		t.target, t.width, t.height, t.depth, t.mipmaps)
}
