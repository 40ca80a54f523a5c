package glkit

import "fmt"

// TextureSpec describes the shape and sampling of a texture. It is a plain
// value; a texture is created from it with Device.CreateTexture.
type TextureSpec struct {
	Target         TextureTarget
	Width          int
	Height         int
	Depth          int
	Samples        int
	Mipmaps        int
	InternalFormat InternalFormat
	MinFilter      Filter
	MagFilter      Filter
	WrapMode       WrapMode
}

// NewTextureSpec returns a spec with depth 1, one sample, one mip level,
// linear filtering and clamp-to-edge wrapping.
func NewTextureSpec(target TextureTarget, width, height int, format InternalFormat) TextureSpec {
	return TextureSpec{
		Target:         target,
		Width:          width,
		Height:         height,
		Depth:          1,
		Samples:        1,
		Mipmaps:        1,
		InternalFormat: format,
		MinFilter:      FilterLinear,
		MagFilter:      FilterLinear,
		WrapMode:       WrapClampToEdge,
	}
}

// Size returns the width, height and depth of the spec.
func (s TextureSpec) Size() (width, height, depth int) {
	return s.Width, s.Height, s.Depth
}

// IsMultisampled reports whether the spec asks for more than one sample.
func (s TextureSpec) IsMultisampled() bool { return s.Samples > 1 }

// Validate checks the counts and the dimensions required by the target.
func (s TextureSpec) Validate() error {
	if s.Samples <= 0 {
		return fmt.Errorf("%w: samples count has to be higher than 0", ErrInvalidArgument)
	}
	if s.Target != TextureTargetBuffer && s.Mipmaps <= 0 {
		return fmt.Errorf("%w: mipmaps count has to be higher than 0", ErrInvalidArgument)
	}
	return checkStorageSize(s.Target, s.Width, s.Height, s.Depth)
}

// storageDims returns the number of dimensions the storage of a target
// needs, or 0 for targets without storage of their own.
func storageDims(target TextureTarget) int {
	switch target {
	case TextureTarget1D:
		return 1
	case TextureTarget1DArray, TextureTarget2D, TextureTarget2DMultisample, TextureTargetRectangle:
		return 2
	case TextureTarget2DArray, TextureTarget2DMultisampleArray, TextureTarget3D,
		TextureTargetCubeMap, TextureTargetCubeMapArray:
		return 3
	}
	return 0
}

func checkStorageSize(target TextureTarget, width, height, depth int) error {
	switch storageDims(target) {
	case 1:
		if width <= 0 {
			return fmt.Errorf("%w: texture width must be positive for 1D texture", ErrInvalidArgument)
		}
	case 2:
		if width <= 0 || height <= 0 {
			return fmt.Errorf("%w: texture width and height must be positive for 2D texture or 1D texture array",
				ErrInvalidArgument)
		}
	case 3:
		if width <= 0 || height <= 0 || depth <= 0 {
			return fmt.Errorf("%w: texture width, height and depth must be positive for 3D texture, "+
				"2D array texture or cubemap texture", ErrInvalidArgument)
		}
	}
	return nil
}
