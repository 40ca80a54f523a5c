package glfake

import "github.com/gogpu/glkit/driver"

type buffer struct {
	data      []byte
	flags     driver.Enum
	immutable bool

	mapped    bool
	mapOffset int
	mapLength int
	mapAccess driver.Enum
	flushed   []BufferRange
}

// BufferData returns the storage of a buffer. The slice aliases the driver's
// copy.
func (d *Driver) BufferData(b driver.Buffer) []byte {
	if buf, ok := d.buffers[b]; ok {
		return buf.data
	}
	return nil
}

// BufferFlags returns the storage flags of a buffer.
func (d *Driver) BufferFlags(b driver.Buffer) driver.Enum {
	if buf, ok := d.buffers[b]; ok {
		return buf.flags
	}
	return 0
}

// BufferMapping reports whether a buffer is mapped and with which access.
func (d *Driver) BufferMapping(b driver.Buffer) (mapped bool, access driver.Enum) {
	if buf, ok := d.buffers[b]; ok {
		return buf.mapped, buf.mapAccess
	}
	return false, 0
}

// FlushedRanges returns the ranges flushed on a buffer since creation.
func (d *Driver) FlushedRanges(b driver.Buffer) []BufferRange {
	if buf, ok := d.buffers[b]; ok {
		return buf.flushed
	}
	return nil
}

func (d *Driver) lookupBuffer(fn string, b driver.Buffer) *buffer {
	buf, ok := d.buffers[b]
	if !ok {
		d.fail(driver.INVALID_OPERATION, "%s: %d is not a buffer", fn, b)
		return nil
	}
	return buf
}

func (d *Driver) CreateBuffer() driver.Buffer {
	d.call("CreateBuffer")
	b := driver.Buffer(d.name())
	d.buffers[b] = &buffer{}
	return b
}

func (d *Driver) DeleteBuffer(b driver.Buffer) {
	d.call("DeleteBuffer")
	delete(d.buffers, b)
	for target, bound := range d.State.Buffers {
		if bound == b {
			delete(d.State.Buffers, target)
		}
	}
}

func (d *Driver) NamedBufferStorage(b driver.Buffer, size int, data []byte, flags driver.Enum) {
	d.call("NamedBufferStorage")
	buf := d.lookupBuffer("NamedBufferStorage", b)
	if buf == nil {
		return
	}
	if buf.immutable {
		d.fail(driver.INVALID_OPERATION, "NamedBufferStorage: buffer %d storage is immutable", b)
		return
	}
	if size <= 0 {
		d.fail(driver.INVALID_VALUE, "NamedBufferStorage: size %d", size)
		return
	}
	if flags&driver.MAP_PERSISTENT_BIT != 0 && flags&(driver.MAP_READ_BIT|driver.MAP_WRITE_BIT) == 0 {
		d.fail(driver.INVALID_VALUE, "NamedBufferStorage: MAP_PERSISTENT_BIT without read or write access")
		return
	}
	if flags&driver.MAP_COHERENT_BIT != 0 && flags&driver.MAP_PERSISTENT_BIT == 0 {
		d.fail(driver.INVALID_VALUE, "NamedBufferStorage: MAP_COHERENT_BIT without MAP_PERSISTENT_BIT")
		return
	}
	buf.data = make([]byte, size)
	copy(buf.data, data)
	buf.flags = flags
	buf.immutable = true
}

func (d *Driver) NamedBufferSubData(b driver.Buffer, offset int, data []byte) {
	d.call("NamedBufferSubData")
	buf := d.lookupBuffer("NamedBufferSubData", b)
	if buf == nil {
		return
	}
	if buf.immutable && buf.flags&driver.DYNAMIC_STORAGE_BIT == 0 {
		d.fail(driver.INVALID_OPERATION, "NamedBufferSubData: buffer %d lacks DYNAMIC_STORAGE_BIT", b)
		return
	}
	if offset < 0 || offset+len(data) > len(buf.data) {
		d.fail(driver.INVALID_VALUE, "NamedBufferSubData: range [%d, %d) exceeds %d bytes", offset, offset+len(data), len(buf.data))
		return
	}
	if buf.mapped && buf.mapAccess&driver.MAP_PERSISTENT_BIT == 0 {
		d.fail(driver.INVALID_OPERATION, "NamedBufferSubData: buffer %d is mapped", b)
		return
	}
	copy(buf.data[offset:], data)
}

func (d *Driver) GetNamedBufferSubData(b driver.Buffer, offset int, dst []byte) {
	d.call("GetNamedBufferSubData")
	buf := d.lookupBuffer("GetNamedBufferSubData", b)
	if buf == nil {
		return
	}
	if offset < 0 || offset+len(dst) > len(buf.data) {
		d.fail(driver.INVALID_VALUE, "GetNamedBufferSubData: range [%d, %d) exceeds %d bytes", offset, offset+len(dst), len(buf.data))
		return
	}
	copy(dst, buf.data[offset:])
}

func (d *Driver) MapNamedBufferRange(b driver.Buffer, offset, length int, access driver.Enum) []byte {
	d.call("MapNamedBufferRange")
	buf := d.lookupBuffer("MapNamedBufferRange", b)
	if buf == nil {
		return nil
	}
	if d.FailMapping {
		d.fail(driver.OUT_OF_MEMORY, "MapNamedBufferRange: mapping failed")
		return nil
	}
	switch {
	case buf.mapped:
		d.fail(driver.INVALID_OPERATION, "MapNamedBufferRange: buffer %d is already mapped", b)
		return nil
	case offset < 0 || length <= 0 || offset+length > len(buf.data):
		d.fail(driver.INVALID_VALUE, "MapNamedBufferRange: range [%d, %d) exceeds %d bytes", offset, offset+length, len(buf.data))
		return nil
	case access&(driver.MAP_READ_BIT|driver.MAP_WRITE_BIT) == 0:
		d.fail(driver.INVALID_OPERATION, "MapNamedBufferRange: neither read nor write access")
		return nil
	case access&driver.MAP_FLUSH_EXPLICIT_BIT != 0 && access&driver.MAP_WRITE_BIT == 0:
		d.fail(driver.INVALID_OPERATION, "MapNamedBufferRange: MAP_FLUSH_EXPLICIT_BIT without MAP_WRITE_BIT")
		return nil
	}
	storageBits := driver.Enum(driver.MAP_READ_BIT | driver.MAP_WRITE_BIT | driver.MAP_PERSISTENT_BIT | driver.MAP_COHERENT_BIT)
	if access&storageBits&^buf.flags != 0 {
		d.fail(driver.INVALID_OPERATION, "MapNamedBufferRange: access 0x%X not allowed by storage flags 0x%X", uint32(access), uint32(buf.flags))
		return nil
	}
	buf.mapped = true
	buf.mapOffset = offset
	buf.mapLength = length
	buf.mapAccess = access
	return buf.data[offset : offset+length : offset+length]
}

func (d *Driver) FlushMappedNamedBufferRange(b driver.Buffer, offset, length int) {
	d.call("FlushMappedNamedBufferRange")
	buf := d.lookupBuffer("FlushMappedNamedBufferRange", b)
	if buf == nil {
		return
	}
	if !buf.mapped || buf.mapAccess&driver.MAP_FLUSH_EXPLICIT_BIT == 0 {
		d.fail(driver.INVALID_OPERATION, "FlushMappedNamedBufferRange: buffer %d is not mapped for explicit flushing", b)
		return
	}
	if offset < 0 || length < 0 || offset+length > buf.mapLength {
		d.fail(driver.INVALID_VALUE, "FlushMappedNamedBufferRange: range [%d, %d) exceeds the mapping", offset, offset+length)
		return
	}
	buf.flushed = append(buf.flushed, BufferRange{Buffer: b, Offset: offset, Size: length})
}

func (d *Driver) UnmapNamedBuffer(b driver.Buffer) bool {
	d.call("UnmapNamedBuffer")
	buf := d.lookupBuffer("UnmapNamedBuffer", b)
	if buf == nil {
		return false
	}
	if !buf.mapped {
		d.fail(driver.INVALID_OPERATION, "UnmapNamedBuffer: buffer %d is not mapped", b)
		return false
	}
	buf.mapped = false
	buf.mapOffset, buf.mapLength, buf.mapAccess = 0, 0, 0
	return true
}

func (d *Driver) BindBuffer(target driver.Enum, b driver.Buffer) {
	d.call("BindBuffer")
	if b.Valid() && d.lookupBuffer("BindBuffer", b) == nil {
		return
	}
	if !b.Valid() {
		delete(d.State.Buffers, target)
		return
	}
	d.State.Buffers[target] = b
}

func (d *Driver) BindBufferBase(target driver.Enum, index uint32, b driver.Buffer) {
	d.call("BindBufferBase")
	if b.Valid() && d.lookupBuffer("BindBufferBase", b) == nil {
		return
	}
	d.State.IndexedBuffers[IndexedBinding{target, index}] = BufferRange{Buffer: b}
	d.State.Buffers[target] = b
}

func (d *Driver) BindBufferRange(target driver.Enum, index uint32, b driver.Buffer, offset, size int) {
	d.call("BindBufferRange")
	buf := d.lookupBuffer("BindBufferRange", b)
	if buf == nil {
		return
	}
	if offset < 0 || size <= 0 || offset+size > len(buf.data) {
		d.fail(driver.INVALID_VALUE, "BindBufferRange: range [%d, %d) exceeds %d bytes", offset, offset+size, len(buf.data))
		return
	}
	d.State.IndexedBuffers[IndexedBinding{target, index}] = BufferRange{Buffer: b, Offset: offset, Size: size}
	d.State.Buffers[target] = b
}
