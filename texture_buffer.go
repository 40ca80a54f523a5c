package glkit

import "fmt"

// TextureBuffer is a buffer texture together with the buffer backing it.
// Shaders read it as a one-dimensional array of texels.
type TextureBuffer struct {
	buffer  *Buffer
	texture *Texture
	width   int
}

// NewTextureBuffer creates a buffer of width texels of format and a
// TEXTURE_BUFFER texture reading from it.
func NewTextureBuffer(dev *Device, width int, format InternalFormat, flags BufferFlag) (*TextureBuffer, error) {
	texel := format.Size()
	if texel == 0 || format.IsCompressed() || format.IsDepth() || format.HasStencil() {
		return nil, fmt.Errorf("%w: unsupported format for texture buffer: %s", ErrInvalidArgument, format)
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: texture buffer width must be positive", ErrInvalidArgument)
	}

	buf, err := dev.CreateBuffer(BufferDescriptor{Size: texel * width, Flags: flags})
	if err != nil {
		return nil, err
	}
	spec := NewTextureSpec(TextureTargetBuffer, width, 1, format)
	spec.MinFilter, spec.MagFilter = FilterNearest, FilterNearest
	tex, err := dev.CreateTexture(spec, false)
	if err != nil {
		buf.Destroy()
		return nil, err
	}
	if err := tex.SetTextureBuffer(buf); err != nil {
		tex.Destroy()
		buf.Destroy()
		return nil, err
	}
	return &TextureBuffer{buffer: buf, texture: tex, width: width}, nil
}

// Buffer returns the backing buffer.
func (t *TextureBuffer) Buffer() *Buffer { return t.buffer }

// Texture returns the buffer texture.
func (t *TextureBuffer) Texture() *Texture { return t.texture }

// Width returns the number of texels.
func (t *TextureBuffer) Width() int { return t.width }

// Bind binds the texture to a texture unit.
func (t *TextureBuffer) Bind(unit uint32) { t.texture.BindToUnit(unit) }

// Write queues data in the backing buffer.
func (t *TextureBuffer) Write(data []byte) error { return t.buffer.Write(data) }

// Transfer uploads the queued data.
func (t *TextureBuffer) Transfer() int { return t.buffer.Transfer() }

// ResetOffset rewinds the write cursor of the backing buffer.
func (t *TextureBuffer) ResetOffset() { t.buffer.ResetOffset() }

// Destroy deletes the texture and its buffer.
func (t *TextureBuffer) Destroy() {
	t.texture.Destroy()
	t.buffer.Destroy()
}
