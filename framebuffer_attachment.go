package glkit

// FramebufferAttachment holds the settings of one framebuffer attachment.
// The same settings may be shared by several framebuffers; a framebuffer
// reads them again whenever it recreates its attachments.
//
// A zero Width or Height makes the attachment follow the framebuffer size.
type FramebufferAttachment struct {
	Width           int
	Height          int
	Samples         int
	Format          InternalFormat
	MinFilter       Filter
	MagFilter       Filter
	Point           AttachmentPoint
	UseRenderbuffer bool
	Writable        bool
}

// NewFramebufferAttachment returns resizable, writable texture attachment
// settings with one sample and nearest filtering.
func NewFramebufferAttachment(point AttachmentPoint, format InternalFormat) *FramebufferAttachment {
	return &FramebufferAttachment{
		Samples:   1,
		Format:    format,
		MinFilter: FilterNearest,
		MagFilter: FilterNearest,
		Point:     resolveAttachmentPoint(point),
		Writable:  true,
	}
}

// Size returns the fixed size of the attachment.
func (a *FramebufferAttachment) Size() (width, height int) { return a.Width, a.Height }

// SetSize fixes the size of the attachment. 0, 0 makes it resizable again.
func (a *FramebufferAttachment) SetSize(width, height int) { a.Width, a.Height = width, height }

// IsResizable reports whether the attachment follows the framebuffer size.
func (a *FramebufferAttachment) IsResizable() bool { return a.Width == 0 && a.Height == 0 }

// IsDepthAttachment reports whether the attachment is a depth, stencil or
// depth-stencil attachment.
func (a *FramebufferAttachment) IsDepthAttachment() bool { return a.Point.IsDepthOrStencil() }

// IsColorAttachment reports whether the attachment is not a depth or
// stencil attachment.
func (a *FramebufferAttachment) IsColorAttachment() bool { return !a.IsDepthAttachment() }

// IsMultisampled reports whether the attachment has more than one sample.
func (a *FramebufferAttachment) IsMultisampled() bool { return a.Samples > 1 }

// attachmentPoint returns Point with a bare index resolved to
// COLOR_ATTACHMENTn.
func (a *FramebufferAttachment) attachmentPoint() AttachmentPoint {
	return resolveAttachmentPoint(a.Point)
}

// size resolves the effective size against the framebuffer size.
func (a *FramebufferAttachment) size(fbWidth, fbHeight int) (width, height int) {
	if a.Width != 0 && a.Height != 0 {
		return a.Width, a.Height
	}
	return fbWidth, fbHeight
}

// resolveAttachmentPoint maps a bare index to COLOR_ATTACHMENTn and leaves
// attachment point enumerants unchanged.
func resolveAttachmentPoint(p AttachmentPoint) AttachmentPoint {
	if p < maxColorAttachments {
		return ColorAttachment(int(p))
	}
	return p
}
