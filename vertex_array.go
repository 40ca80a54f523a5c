package glkit

import (
	"fmt"

	"github.com/gogpu/glkit/driver"
)

// VertexDescriptor describes one vertex attribute. Matrix attributes use
// Rows consecutive attribute slots starting at Index, one per column.
type VertexDescriptor struct {
	Index      uint32
	Type       DataType
	Count      int
	Rows       int
	Normalized bool
}

// NewVertexDescriptor returns a single-row descriptor.
func NewVertexDescriptor(index uint32, typ DataType, count int) VertexDescriptor {
	return VertexDescriptor{Index: index, Type: typ, Count: count, Rows: 1}
}

// Size returns the number of bytes the attribute occupies in a vertex.
func (d VertexDescriptor) Size() int {
	return vertexTypeSize(d.Type) * d.Count * max(d.Rows, 1)
}

func vertexTypeSize(typ DataType) int {
	switch typ {
	case TypeDouble:
		return 8
	case TypeFloat, TypeInt, TypeUnsignedInt:
		return 4
	case TypeHalfFloat, TypeShort, TypeUnsignedShort:
		return 2
	case TypeByte, TypeUnsignedByte:
		return 1
	}
	return 0
}

func (d VertexDescriptor) validate() error {
	if vertexTypeSize(d.Type) == 0 {
		return fmt.Errorf("%w: invalid attribute type %s", ErrInvalidType, d.Type)
	}
	if d.Count < 1 || d.Count > 4 {
		return fmt.Errorf("%w: attribute %d component count %d outside [1, 4]", ErrInvalidArgument, d.Index, d.Count)
	}
	if d.Rows < 1 {
		return fmt.Errorf("%w: attribute %d row count must be positive", ErrInvalidArgument, d.Index)
	}
	return nil
}

// VertexInput is one vertex buffer binding and the attributes read from it.
// Attribute offsets follow the descriptor order. The buffer stays owned by
// the caller.
type VertexInput struct {
	Buffer      *Buffer
	Stride      int
	Offset      int
	Divisor     uint32
	Descriptors []VertexDescriptor
}

// VertexStride returns the byte size of one vertex holding descriptors.
func VertexStride(descriptors ...VertexDescriptor) int {
	n := 0
	for _, d := range descriptors {
		n += d.Size()
	}
	return n
}

// VertexArray holds vertex attribute and buffer binding state.
type VertexArray struct {
	dev *Device
	id  driver.VertexArray
}

// CreateVertexArray creates a vertex array with one binding per input; the
// input's position is its binding index. elementBuffer may be nil.
func (d *Device) CreateVertexArray(inputs []VertexInput, elementBuffer *Buffer) (*VertexArray, error) {
	for i, in := range inputs {
		for j, desc := range in.Descriptors {
			if err := desc.validate(); err != nil {
				return nil, fmt.Errorf("inputs[%d].Descriptors[%d]: %w", i, j, err)
			}
		}
	}

	va := &VertexArray{dev: d, id: d.fns.CreateVertexArray()}
	if elementBuffer != nil {
		d.fns.VertexArrayElementBuffer(va.id, elementBuffer.id)
	}
	for i, in := range inputs {
		va.addInput(uint32(i), in) //nolint:gosec // binding count is small
	}
	if err := d.checkError("CreateVertexArray"); err != nil {
		d.fns.DeleteVertexArray(va.id)
		return nil, err
	}
	d.logger().Debug("glkit: vertex array created", "id", va.id, "inputs", len(inputs))
	return va, nil
}

func (va *VertexArray) addInput(binding uint32, in VertexInput) {
	fns := va.dev.fns
	fns.VertexArrayBindingDivisor(va.id, binding, in.Divisor)
	if in.Buffer != nil {
		fns.VertexArrayVertexBuffer(va.id, binding, in.Buffer.id, in.Offset, in.Stride)
	}

	var offset uint32
	for _, desc := range in.Descriptors {
		typ := driver.Enum(desc.Type)
		for row := range uint32(desc.Rows) { //nolint:gosec // validated positive
			attrib := desc.Index + row
			fns.EnableVertexArrayAttrib(va.id, attrib)
			fns.VertexArrayAttribBinding(va.id, attrib, binding)
			switch {
			case desc.Type == TypeDouble:
				fns.VertexArrayAttribLFormat(va.id, attrib, desc.Count, typ, offset)
			case desc.Type == TypeFloat || desc.Type == TypeHalfFloat || desc.Normalized:
				fns.VertexArrayAttribFormat(va.id, attrib, desc.Count, typ, desc.Normalized, offset)
			default:
				fns.VertexArrayAttribIFormat(va.id, attrib, desc.Count, typ, offset)
			}
			offset += uint32(vertexTypeSize(desc.Type) * desc.Count) //nolint:gosec // small
		}
	}
}

// ID returns the driver name of the vertex array.
func (va *VertexArray) ID() driver.VertexArray { return va.id }

// BindVertexBuffer binds buf to a vertex buffer binding.
func (va *VertexArray) BindVertexBuffer(buf *Buffer, index uint32, stride, offset int, divisor uint32) {
	var id driver.Buffer
	if buf != nil {
		id = buf.id
	}
	va.dev.fns.VertexArrayBindingDivisor(va.id, index, divisor)
	va.dev.fns.VertexArrayVertexBuffer(va.id, index, id, offset, stride)
}

// BindIndexBuffer sets the element buffer. Nil detaches it.
func (va *VertexArray) BindIndexBuffer(buf *Buffer) {
	var id driver.Buffer
	if buf != nil {
		id = buf.id
	}
	va.dev.fns.VertexArrayElementBuffer(va.id, id)
}

// Bind makes the vertex array current.
func (va *VertexArray) Bind() { va.dev.fns.BindVertexArray(va.id) }

// SetDebugName attaches a debug label to the vertex array.
func (va *VertexArray) SetDebugName(name string) {
	va.dev.fns.ObjectLabel(driver.VERTEX_ARRAY, uint32(va.id), name)
}

func (va *VertexArray) objectName() (driver.Enum, uint32) { return driver.VERTEX_ARRAY, uint32(va.id) }

// Destroy deletes the vertex array. Bound buffers are not affected. It is
// safe to call more than once.
func (va *VertexArray) Destroy() {
	if va.id == 0 {
		return
	}
	va.dev.fns.DeleteVertexArray(va.id)
	va.id = 0
}
