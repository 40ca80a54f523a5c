package glkit

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/gogpu/glkit/driver"
)

// BufferDescriptor describes a buffer to create.
type BufferDescriptor struct {
	// Label is an optional debug label.
	Label string

	// Size is the size of the storage in bytes. It cannot change later.
	Size int

	// Flags are the immutable storage flags.
	Flags BufferFlag

	// Data is optional initial content. It may be shorter than Size, in
	// which case the rest of the storage is zeroed.
	Data []byte
}

// Buffer is a GPU allocation with immutable storage and an optional
// CPU-visible view.
//
// The view is a Go-owned shadow copy for BufferDynamicStorage buffers, and
// the driver mapping otherwise. Writes go into the view at a cursor that
// Transfer publishes to the GPU and resets.
type Buffer struct {
	dev   *Device
	id    driver.Buffer
	size  int
	flags BufferFlag

	// mapAccess is the access used for mappings: the storage access bits
	// plus MAP_FLUSH_EXPLICIT for non-coherent writable storage.
	mapAccess driver.Enum

	offset int
	view   []byte
	mapped bool
}

// Numeric is the set of element types accepted by WriteValues.
type Numeric interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// CreateBuffer allocates a buffer with immutable storage.
//
// Dynamic storage buffers get a shadow copy holding the initial data.
// Persistent buffers are mapped over their full range immediately. Other
// mappable buffers must be mapped with Map before writing.
func (d *Device) CreateBuffer(desc BufferDescriptor) (*Buffer, error) {
	if desc.Size <= 0 {
		return nil, fmt.Errorf("%w: buffer size must be positive, got %d", ErrInvalidArgument, desc.Size)
	}
	if len(desc.Data) > desc.Size {
		return nil, fmt.Errorf("%w: provided data size (%d) is bigger than requested buffer size (%d)",
			ErrInvalidArgument, len(desc.Data), desc.Size)
	}

	initial := desc.Data
	if len(initial) > 0 && len(initial) < desc.Size {
		initial = make([]byte, desc.Size)
		copy(initial, desc.Data)
	}

	b := &Buffer{
		dev:       d,
		id:        d.fns.CreateBuffer(),
		size:      desc.Size,
		flags:     desc.Flags,
		mapAccess: mapAccess(desc.Flags),
	}
	d.fns.NamedBufferStorage(b.id, b.size, initial, driver.Enum(b.flags))
	if err := d.checkError("NamedBufferStorage"); err != nil {
		d.fns.DeleteBuffer(b.id)
		return nil, err
	}

	switch {
	case b.flags.Has(BufferDynamicStorage):
		b.view = make([]byte, b.size)
		copy(b.view, desc.Data)
	case b.flags.Has(BufferMapPersistent):
		if err := b.Map(); err != nil {
			d.fns.DeleteBuffer(b.id)
			return nil, err
		}
	}

	if desc.Label != "" {
		b.SetDebugName(desc.Label)
	}
	d.logger().Debug("glkit: buffer created", "id", b.id, "size", b.size, "flags", b.flags)
	return b, nil
}

func mapAccess(flags BufferFlag) driver.Enum {
	access := driver.Enum(flags & (BufferMapRead | BufferMapWrite | BufferMapPersistent | BufferMapCoherent))
	if !flags.Has(BufferMapCoherent) && flags.Has(BufferMapWrite) {
		access |= driver.MAP_FLUSH_EXPLICIT_BIT
	}
	return access
}

func alignUp(x, alignment int) int {
	return x + alignUpPadding(x, alignment)
}

// alignUpPadding returns the bytes needed to round x up to alignment.
func alignUpPadding(x, alignment int) int {
	if r := x % alignment; r != 0 {
		return alignment - r
	}
	return 0
}

// fits reports whether n bytes at offset lie inside size bytes. It does not
// overflow for any non-negative offset and n.
func fits(offset, n, size int) bool {
	return offset <= size && n <= size-offset
}

// ID returns the driver name of the buffer.
func (b *Buffer) ID() driver.Buffer { return b.id }

// Size returns the size of the storage in bytes.
func (b *Buffer) Size() int { return b.size }

// Flags returns the storage flags.
func (b *Buffer) Flags() BufferFlag { return b.flags }

// Offset returns the write cursor.
func (b *Buffer) Offset() int { return b.offset }

// SetOffset moves the write cursor.
func (b *Buffer) SetOffset(offset int) error {
	if offset < 0 || offset > b.size {
		return fmt.Errorf("%w: offset %d outside buffer of %d bytes", ErrInvalidArgument, offset, b.size)
	}
	b.offset = offset
	return nil
}

// ResetOffset moves the write cursor back to the start of the buffer
// without transferring anything.
func (b *Buffer) ResetOffset() { b.offset = 0 }

// IsMapped reports whether the buffer has a driver mapping.
func (b *Buffer) IsMapped() bool { return b.mapped }

// CanStoreData reports whether n more bytes fit after the cursor.
func (b *Buffer) CanStoreData(n int) bool {
	return n >= 0 && fits(b.offset, n, b.size)
}

// Write copies data at the cursor and advances it.
func (b *Buffer) Write(data []byte) error {
	return b.WriteAt(data, -1, 1)
}

// WriteAt copies data at offset rounded up to alignment. A negative offset
// means the cursor. The cursor is left at the end of the written range.
//
// The write fails without modifying the buffer if the buffer has no view
// or the range does not fit in the storage.
func (b *Buffer) WriteAt(data []byte, offset, alignment int) error {
	if b.id == 0 {
		return ErrDestroyed
	}
	if b.view == nil {
		return fmt.Errorf("%w: buffers that use mapping have to be mapped before storing data", ErrInvalidState)
	}
	if alignment < 1 {
		return fmt.Errorf("%w: alignment must be positive, got %d", ErrInvalidArgument, alignment)
	}
	if offset < 0 {
		offset = b.offset
	}
	if offset > b.size || alignUpPadding(offset, alignment) > b.size-offset {
		return fmt.Errorf("%w: writing %d bytes at offset %d exceeds buffer size %d",
			ErrOverflow, len(data), offset, b.size)
	}
	offset = alignUp(offset, alignment)
	if !fits(offset, len(data), b.size) {
		return fmt.Errorf("%w: writing %d bytes at offset %d exceeds buffer size %d",
			ErrOverflow, len(data), offset, b.size)
	}

	copy(b.view[offset:], data)
	b.offset = offset + len(data)
	return nil
}

// WriteUint32 writes one uint32 in native byte order at the cursor.
func (b *Buffer) WriteUint32(v uint32) error {
	var buf [4]byte
	binary.NativeEndian.PutUint32(buf[:], v)
	return b.Write(buf[:])
}

// WriteFloat32 writes one float32 in native byte order at the cursor.
func (b *Buffer) WriteFloat32(v float32) error {
	var buf [4]byte
	binary.NativeEndian.PutUint32(buf[:], math.Float32bits(v))
	return b.Write(buf[:])
}

// WriteValues writes values in native byte order at the cursor.
//
// Example:
//
//	err := glkit.WriteValues(buf, float32(0), 0.5, 1)
func WriteValues[T Numeric](b *Buffer, values ...T) error {
	return b.Write(driver.BytesOf(values))
}

// WriteAddress copies size bytes starting at ptr into the buffer, with the
// same rules as WriteAt. The memory must stay valid for the duration of the
// call.
func (b *Buffer) WriteAddress(ptr unsafe.Pointer, size, offset, alignment int) error {
	if size < 0 || (ptr == nil && size > 0) {
		return fmt.Errorf("%w: invalid source of %d bytes", ErrInvalidArgument, size)
	}
	var data []byte
	if size > 0 {
		data = unsafe.Slice((*byte)(ptr), size)
	}
	return b.WriteAt(data, offset, alignment)
}

// Transfer publishes the bytes written since the last transfer and resets
// the cursor. It returns the number of bytes published.
//
// Dynamic storage uploads the shadow range. Mapped storage flushes the
// range when the mapping is not coherent, and unmaps unless the mapping is
// persistent. Nothing happens when the cursor is zero.
func (b *Buffer) Transfer() int {
	n := b.offset
	if n == 0 || b.id == 0 {
		return 0
	}

	if b.flags.Has(BufferDynamicStorage) {
		b.dev.fns.NamedBufferSubData(b.id, 0, b.view[:n])
	} else if b.mapped {
		if b.mapAccess&driver.MAP_FLUSH_EXPLICIT_BIT != 0 {
			b.dev.fns.FlushMappedNamedBufferRange(b.id, 0, n)
		}
		if !b.flags.Has(BufferMapPersistent) {
			b.unmap()
		}
	}

	b.offset = 0
	return n
}

// Map maps the full range of the buffer. It does nothing when the buffer
// already has a view.
func (b *Buffer) Map() error {
	if b.id == 0 {
		return ErrDestroyed
	}
	if b.view != nil {
		return nil
	}
	view := b.dev.fns.MapNamedBufferRange(b.id, 0, b.size, b.mapAccess)
	if view == nil {
		code := b.dev.fns.GetError()
		return fmt.Errorf("%w: failed to map the buffer, error code: %d", ErrDriver, uint32(code))
	}
	b.view = view
	b.mapped = true
	b.dev.logger().Debug("glkit: buffer mapped", "id", b.id, "access", b.mapAccess)
	return nil
}

func (b *Buffer) unmap() {
	b.dev.fns.UnmapNamedBuffer(b.id)
	b.view = nil
	b.mapped = false
}

// Read copies size bytes starting at offset into dst. A size of zero means
// len(dst).
//
// Dynamic storage is read back from the driver. Mapped storage is read from
// the mapping and requires BufferMapRead.
func (b *Buffer) Read(dst []byte, size, offset int) error {
	if b.id == 0 {
		return ErrDestroyed
	}
	if size == 0 {
		size = len(dst)
	}
	if size < 0 || offset < 0 {
		return fmt.Errorf("%w: negative read range (size: %d, offset: %d)", ErrInvalidArgument, size, offset)
	}
	if size > len(dst) {
		return fmt.Errorf("%w: provided buffer (%d bytes) is smaller than requested read size (%d)",
			ErrInvalidArgument, len(dst), size)
	}
	if !fits(offset, size, b.size) {
		return fmt.Errorf("%w: reading %d bytes at offset %d exceeds buffer size %d",
			ErrOverflow, size, offset, b.size)
	}

	if b.flags.Has(BufferDynamicStorage) {
		b.dev.fns.GetNamedBufferSubData(b.id, offset, dst[:size])
		return nil
	}
	if !b.flags.Has(BufferMapRead) {
		return fmt.Errorf("%w: buffer is not readable", ErrInvalidState)
	}
	if b.view == nil {
		return fmt.Errorf("%w: buffers that use non-persistent mapping must be mapped before reading", ErrInvalidState)
	}
	copy(dst[:size], b.view[offset:offset+size])
	return nil
}

// Bind binds the buffer to a target.
func (b *Buffer) Bind(target BufferTarget) {
	b.dev.fns.BindBuffer(driver.Enum(target), b.id)
}

// BindBase binds the buffer to an indexed binding point.
func (b *Buffer) BindBase(target BufferTarget, index uint32) {
	b.dev.fns.BindBufferBase(driver.Enum(target), index, b.id)
}

// BindRange binds a range of the buffer to an indexed binding point.
func (b *Buffer) BindRange(target BufferTarget, index uint32, offset, size int) error {
	if offset < 0 || size <= 0 || !fits(offset, size, b.size) {
		return fmt.Errorf("%w: range of %d bytes at offset %d outside buffer of %d bytes", ErrOverflow, size, offset, b.size)
	}
	b.dev.fns.BindBufferRange(driver.Enum(target), index, b.id, offset, size)
	return nil
}

// SetDebugName attaches a debug label to the buffer.
func (b *Buffer) SetDebugName(name string) {
	b.dev.fns.ObjectLabel(driver.BUFFER, uint32(b.id), name)
}

func (b *Buffer) objectName() (driver.Enum, uint32) { return driver.BUFFER, uint32(b.id) }

// Destroy unmaps the buffer if needed and releases its storage. It is safe
// to call more than once.
func (b *Buffer) Destroy() {
	if b.id == 0 {
		return
	}
	if b.mapped {
		b.unmap()
	}
	b.dev.fns.DeleteBuffer(b.id)
	b.dev.logger().Debug("glkit: buffer destroyed", "id", b.id)
	b.id = 0
	b.view = nil
	b.offset = 0
}

func (b *Buffer) String() string {
	memory := "OPENGL"
	if b.flags.Has(BufferDynamicStorage) {
		memory = "CLIENT"
	}
	return fmt.Sprintf("Buffer(id: %d, size: %d, current offset: %d, memory: %s)", b.id, b.size, b.offset, memory)
}
