// Package textureload decodes image files into pixel data ready for upload
// to a glkit texture.
//
// PNG, JPEG, GIF, BMP, TIFF and WebP are supported. Pixels are converted to
// non-premultiplied 8-bit RGBA (or RGB for opaque images with
// [Options.DropAlpha]) and flipped so the first row is the bottom of the
// image, matching OpenGL texture coordinates.
package textureload

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math/bits"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp" // register BMP, TIFF and WebP decoders
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/glkit"
)

// ErrEmptyData is returned when decoding an empty byte slice.
var ErrEmptyData = errors.New("textureload: empty data")

// Options control how a decoded image is converted.
type Options struct {
	// DropAlpha stores fully opaque images as RGB.
	DropAlpha bool

	// NoFlip keeps the file's top-down row order.
	NoFlip bool

	// SRGB selects sRGB internal formats.
	SRGB bool

	// Mipmaps is the number of mip levels of the texture. Zero means the
	// full chain down to 1x1.
	Mipmaps int

	// MaxSize downscales images whose longer side exceeds it. Zero
	// disables scaling.
	MaxSize int
}

// Image is a decoded image and the texture parameters to store it.
type Image struct {
	// Format is the name of the decoder that read the file ("png", "webp"...).
	Format string

	Spec   glkit.TextureSpec
	Upload glkit.TextureUploadInfo
	Pixels []byte
}

// Load reads and decodes the image file at path.
func Load(path string, opts Options) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("textureload: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := Decode(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	glkit.Logger().Debug("textureload: image loaded", "path", path, "format", img.Format,
		"width", img.Spec.Width, "height", img.Spec.Height, "internalFormat", img.Spec.InternalFormat)
	return img, nil
}

// LoadBytes decodes an image held in memory.
func LoadBytes(data []byte, opts Options) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data), opts)
}

// Decode decodes an image, detecting the format from its content.
func Decode(r io.Reader, opts Options) (*Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("textureload: decode: %w", err)
	}
	img := FromImage(src, opts)
	img.Format = format
	return img, nil
}

// FromImage converts an already decoded image.
func FromImage(src image.Image, opts Options) *Image {
	src = scaleDown(src, opts.MaxSize)

	b := src.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)
	w, h := b.Dx(), b.Dy()

	internal, pixel, pixels := glkit.FormatRGBA8, glkit.PixelRGBA, nrgba.Pix
	if opts.DropAlpha && nrgba.Opaque() {
		internal, pixel, pixels = glkit.FormatRGB8, glkit.PixelRGB, dropAlpha(nrgba.Pix)
	}
	if opts.SRGB {
		if internal == glkit.FormatRGB8 {
			internal = glkit.FormatSRGB8
		} else {
			internal = glkit.FormatSRGB8Alpha8
		}
	}
	if !opts.NoFlip {
		flipRows(pixels, w*pixel.Components(), h)
	}

	spec := glkit.NewTextureSpec(glkit.TextureTarget2D, w, h, internal)
	spec.Mipmaps = opts.Mipmaps
	if spec.Mipmaps <= 0 {
		spec.Mipmaps = mipLevels(w, h)
	}
	if spec.Mipmaps > 1 {
		spec.MinFilter = glkit.FilterLinearMipmapLinear
	}
	spec.WrapMode = glkit.WrapRepeat

	upload := glkit.NewTextureUploadInfo(pixel, w, h)
	upload.GenerateMipmap = spec.Mipmaps > 1

	return &Image{Spec: spec, Upload: upload, Pixels: pixels}
}

// CreateTexture creates a texture from the image and uploads its pixels.
// The unpack alignment is set to 1 for the upload and restored to the
// OpenGL default of 4 afterwards.
func (img *Image) CreateTexture(dev *glkit.Device) (*glkit.Texture, error) {
	tex, err := dev.CreateTexture(img.Spec, true)
	if err != nil {
		return nil, err
	}
	if err := dev.SetPixelUnpackAlignment(1); err != nil {
		tex.Destroy()
		return nil, err
	}
	defer func() { _ = dev.SetPixelUnpackAlignment(4) }()

	if err := tex.Upload(img.Upload, img.Pixels); err != nil {
		tex.Destroy()
		return nil, err
	}
	return tex, nil
}

// scaleDown returns src scaled so its longer side is at most maxSize.
func scaleDown(src image.Image, maxSize int) image.Image {
	b := src.Bounds()
	longest := max(b.Dx(), b.Dy())
	if maxSize <= 0 || longest <= maxSize {
		return src
	}
	w := max(1, b.Dx()*maxSize/longest)
	h := max(1, b.Dy()*maxSize/longest)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	glkit.Logger().Debug("textureload: image scaled", "from", b.Size(), "to", dst.Bounds().Size())
	return dst
}

// dropAlpha packs RGBA pixels into RGB.
func dropAlpha(rgba []byte) []byte {
	rgb := make([]byte, len(rgba)/4*3)
	for i, j := 0, 0; i < len(rgba); i, j = i+4, j+3 {
		copy(rgb[j:j+3], rgba[i:i+3])
	}
	return rgb
}

// flipRows reverses the row order of pixels in place.
func flipRows(pixels []byte, stride, rows int) {
	tmp := make([]byte, stride)
	for top, bottom := 0, rows-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pixels[top*stride : (top+1)*stride]
		b := pixels[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// mipLevels returns the length of the full mip chain for a w x h image.
func mipLevels(w, h int) int {
	return max(1, bits.Len(uint(max(w, h))))
}
