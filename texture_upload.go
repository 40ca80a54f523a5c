package glkit

// TextureUploadInfo describes a region of a texture level to fill and the
// layout of the source pixels.
type TextureUploadInfo struct {
	Format PixelFormat
	Width  int
	Height int
	Depth  int

	XOffset int
	YOffset int
	ZOffset int
	Level   int

	PixelType DataType

	// ImageSize is the byte size of block-compressed data. Zero means the
	// data is uncompressed.
	ImageSize int

	// DataOffset is the offset of the first pixel in the data slice.
	DataOffset int

	// GenerateMipmap regenerates the mip chain after the upload.
	GenerateMipmap bool
}

// NewTextureUploadInfo returns upload info for a full level-0 region with
// depth 1, unsigned byte pixels and mipmap generation.
func NewTextureUploadInfo(format PixelFormat, width, height int) TextureUploadInfo {
	return TextureUploadInfo{
		Format:         format,
		Width:          width,
		Height:         height,
		Depth:          1,
		PixelType:      TypeUnsignedByte,
		GenerateMipmap: true,
	}
}

// IsCompressed reports whether the info describes block-compressed data.
func (u TextureUploadInfo) IsCompressed() bool { return u.ImageSize != 0 }

// PixelSize returns the byte size of one tightly packed source pixel, or 0
// for an unknown format or type.
func (u TextureUploadInfo) PixelSize() int {
	if u.PixelType.IsPacked() {
		return u.PixelType.Size()
	}
	return u.PixelType.Size() * u.Format.Components()
}

// DataLength returns the number of bytes of tightly packed source pixels,
// which is what the upload reads at an unpack alignment of 1.
func (u TextureUploadInfo) DataLength() int {
	if u.IsCompressed() {
		return u.ImageSize
	}
	return u.Width * u.Height * u.Depth * u.PixelSize()
}

// RowStride returns the distance in bytes between the starts of two source
// rows when rows are padded to alignment.
func (u TextureUploadInfo) RowStride(alignment int) int {
	return alignUp(u.Width*u.PixelSize(), alignment)
}

// AlignedDataLength returns the number of bytes the upload reads from its
// source when rows are padded to alignment. The last row is not padded.
// An empty region reads nothing.
func (u TextureUploadInfo) AlignedDataLength(alignment int) int {
	if u.IsCompressed() {
		return u.ImageSize
	}
	if u.Width <= 0 || u.Height <= 0 || u.Depth <= 0 {
		return 0
	}
	rowSize := u.Width * u.PixelSize()
	return u.RowStride(alignment)*(u.Height*u.Depth-1) + rowSize
}
