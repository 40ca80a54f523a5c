package glfake

import "github.com/gogpu/glkit/driver"

// VertexBinding is the state of one vertex buffer binding point.
type VertexBinding struct {
	Buffer  driver.Buffer
	Offset  int
	Stride  int
	Divisor uint32
}

// AttribFormat selects which VertexArrayAttrib*Format entry point set an
// attribute's format.
type AttribFormat int

const (
	FormatFloat AttribFormat = iota
	FormatInteger
	FormatLong
)

// VertexAttrib is the state of one vertex attribute.
type VertexAttrib struct {
	Enabled        bool
	Binding        uint32
	Size           int
	Type           driver.Enum
	Normalized     bool
	RelativeOffset uint32
	Format         AttribFormat
}

type vertexArray struct {
	elements driver.Buffer
	bindings map[uint32]VertexBinding
	attribs  map[uint32]VertexAttrib
}

// VertexArrayInfo is a snapshot of a vertex array object.
type VertexArrayInfo struct {
	ElementBuffer driver.Buffer
	Bindings      map[uint32]VertexBinding
	Attribs       map[uint32]VertexAttrib
}

// VertexArrayInfo returns a snapshot of a vertex array's state.
func (d *Driver) VertexArrayInfo(v driver.VertexArray) (VertexArrayInfo, bool) {
	vao, ok := d.vertexArrays[v]
	if !ok {
		return VertexArrayInfo{}, false
	}
	info := VertexArrayInfo{
		ElementBuffer: vao.elements,
		Bindings:      make(map[uint32]VertexBinding, len(vao.bindings)),
		Attribs:       make(map[uint32]VertexAttrib, len(vao.attribs)),
	}
	for k, b := range vao.bindings {
		info.Bindings[k] = b
	}
	for k, a := range vao.attribs {
		info.Attribs[k] = a
	}
	return info, true
}

func (d *Driver) lookupVertexArray(fn string, v driver.VertexArray) *vertexArray {
	vao, ok := d.vertexArrays[v]
	if !ok {
		d.fail(driver.INVALID_OPERATION, "%s: %d is not a vertex array", fn, v)
		return nil
	}
	return vao
}

func (d *Driver) CreateVertexArray() driver.VertexArray {
	d.call("CreateVertexArray")
	v := driver.VertexArray(d.name())
	d.vertexArrays[v] = &vertexArray{
		bindings: make(map[uint32]VertexBinding),
		attribs:  make(map[uint32]VertexAttrib),
	}
	return v
}

func (d *Driver) DeleteVertexArray(v driver.VertexArray) {
	d.call("DeleteVertexArray")
	delete(d.vertexArrays, v)
	if d.State.VertexArray == v {
		d.State.VertexArray = 0
	}
}

func (d *Driver) BindVertexArray(v driver.VertexArray) {
	d.call("BindVertexArray")
	if v.Valid() && d.lookupVertexArray("BindVertexArray", v) == nil {
		return
	}
	d.State.VertexArray = v
}

func (d *Driver) VertexArrayElementBuffer(v driver.VertexArray, b driver.Buffer) {
	d.call("VertexArrayElementBuffer")
	vao := d.lookupVertexArray("VertexArrayElementBuffer", v)
	if vao == nil || (b.Valid() && d.lookupBuffer("VertexArrayElementBuffer", b) == nil) {
		return
	}
	vao.elements = b
}

func (d *Driver) VertexArrayVertexBuffer(v driver.VertexArray, binding uint32, b driver.Buffer, offset, stride int) {
	d.call("VertexArrayVertexBuffer")
	vao := d.lookupVertexArray("VertexArrayVertexBuffer", v)
	if vao == nil || (b.Valid() && d.lookupBuffer("VertexArrayVertexBuffer", b) == nil) {
		return
	}
	if offset < 0 || stride < 0 {
		d.fail(driver.INVALID_VALUE, "VertexArrayVertexBuffer: offset %d stride %d", offset, stride)
		return
	}
	vb := vao.bindings[binding]
	vb.Buffer, vb.Offset, vb.Stride = b, offset, stride
	vao.bindings[binding] = vb
}

func (d *Driver) VertexArrayBindingDivisor(v driver.VertexArray, binding, divisor uint32) {
	d.call("VertexArrayBindingDivisor")
	vao := d.lookupVertexArray("VertexArrayBindingDivisor", v)
	if vao == nil {
		return
	}
	vb := vao.bindings[binding]
	vb.Divisor = divisor
	vao.bindings[binding] = vb
}

func (d *Driver) EnableVertexArrayAttrib(v driver.VertexArray, attrib uint32) {
	d.call("EnableVertexArrayAttrib")
	vao := d.lookupVertexArray("EnableVertexArrayAttrib", v)
	if vao == nil {
		return
	}
	a := vao.attribs[attrib]
	a.Enabled = true
	vao.attribs[attrib] = a
}

func (d *Driver) VertexArrayAttribBinding(v driver.VertexArray, attrib, binding uint32) {
	d.call("VertexArrayAttribBinding")
	vao := d.lookupVertexArray("VertexArrayAttribBinding", v)
	if vao == nil {
		return
	}
	a := vao.attribs[attrib]
	a.Binding = binding
	vao.attribs[attrib] = a
}

func (d *Driver) attribFormat(fn string, v driver.VertexArray, attrib uint32, size int, typ driver.Enum, normalized bool, offset uint32, format AttribFormat) {
	vao := d.lookupVertexArray(fn, v)
	if vao == nil {
		return
	}
	if size < 1 || size > 4 {
		d.fail(driver.INVALID_VALUE, "%s: size %d", fn, size)
		return
	}
	a := vao.attribs[attrib]
	a.Size, a.Type, a.Normalized, a.RelativeOffset, a.Format = size, typ, normalized, offset, format
	vao.attribs[attrib] = a
}

func (d *Driver) VertexArrayAttribFormat(v driver.VertexArray, attrib uint32, size int, typ driver.Enum, normalized bool, relativeOffset uint32) {
	d.call("VertexArrayAttribFormat")
	d.attribFormat("VertexArrayAttribFormat", v, attrib, size, typ, normalized, relativeOffset, FormatFloat)
}

func (d *Driver) VertexArrayAttribIFormat(v driver.VertexArray, attrib uint32, size int, typ driver.Enum, relativeOffset uint32) {
	d.call("VertexArrayAttribIFormat")
	switch typ {
	case driver.BYTE, driver.UNSIGNED_BYTE, driver.SHORT, driver.UNSIGNED_SHORT, driver.INT, driver.UNSIGNED_INT:
	default:
		d.fail(driver.INVALID_ENUM, "VertexArrayAttribIFormat: type 0x%X", uint32(typ))
		return
	}
	d.attribFormat("VertexArrayAttribIFormat", v, attrib, size, typ, false, relativeOffset, FormatInteger)
}

func (d *Driver) VertexArrayAttribLFormat(v driver.VertexArray, attrib uint32, size int, typ driver.Enum, relativeOffset uint32) {
	d.call("VertexArrayAttribLFormat")
	if typ != driver.DOUBLE {
		d.fail(driver.INVALID_ENUM, "VertexArrayAttribLFormat: type 0x%X", uint32(typ))
		return
	}
	d.attribFormat("VertexArrayAttribLFormat", v, attrib, size, typ, false, relativeOffset, FormatLong)
}
