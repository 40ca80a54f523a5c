// Package glcore implements driver.Functions on top of the go-gl OpenGL 4.6
// core profile bindings.
//
// Importing the package registers the driver under the name "glcore":
//
//	import _ "github.com/gogpu/glkit/driver/glcore"
//
//	fns, err := driver.Get("glcore") // with a GL context current
//
// The entry points are resolved by gl.Init, which needs a current context.
package glcore

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gogpu/glkit/driver"
)

// Name is the registry name of this driver.
const Name = "glcore"

func init() {
	driver.Register(Name, func() (driver.Functions, error) {
		f, err := New()
		if err != nil {
			return nil, err
		}
		return f, nil
	})
}

// Functions calls straight into the loaded GL entry points. It holds no
// state of its own.
type Functions struct{}

var _ driver.Functions = (*Functions)(nil)

// New loads the GL entry points for the current context.
func New() (*Functions, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glcore: failed to load OpenGL: %w", err)
	}
	return &Functions{}, nil
}

func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}

func cstr(s string) *uint8 {
	return gl.Str(s + "\x00")
}

func goStr(buf []byte) string {
	if i := strings.IndexByte(string(buf), 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}

func (f *Functions) GetError() driver.Enum { return driver.Enum(gl.GetError()) }

func (f *Functions) GetString(name driver.Enum) string {
	s := gl.GetString(uint32(name))
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (f *Functions) GetIntegerv(pname driver.Enum) int32 {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return v
}

func (f *Functions) GetInternalformativ(target, internalFormat, pname driver.Enum) int32 {
	var v int32
	gl.GetInternalformativ(uint32(target), uint32(internalFormat), uint32(pname), 1, &v)
	return v
}

// Buffers.

func (f *Functions) CreateBuffer() driver.Buffer {
	var b uint32
	gl.CreateBuffers(1, &b)
	return driver.Buffer(b)
}

func (f *Functions) DeleteBuffer(b driver.Buffer) {
	name := uint32(b)
	gl.DeleteBuffers(1, &name)
}

func (f *Functions) NamedBufferStorage(b driver.Buffer, size int, data []byte, flags driver.Enum) {
	gl.NamedBufferStorage(uint32(b), size, ptr(data), uint32(flags))
}

func (f *Functions) NamedBufferSubData(b driver.Buffer, offset int, data []byte) {
	gl.NamedBufferSubData(uint32(b), offset, len(data), ptr(data))
}

func (f *Functions) GetNamedBufferSubData(b driver.Buffer, offset int, dst []byte) {
	gl.GetNamedBufferSubData(uint32(b), offset, len(dst), ptr(dst))
}

func (f *Functions) MapNamedBufferRange(b driver.Buffer, offset, length int, access driver.Enum) []byte {
	p := gl.MapNamedBufferRange(uint32(b), offset, length, uint32(access))
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), length)
}

func (f *Functions) FlushMappedNamedBufferRange(b driver.Buffer, offset, length int) {
	gl.FlushMappedNamedBufferRange(uint32(b), offset, length)
}

func (f *Functions) UnmapNamedBuffer(b driver.Buffer) bool { return gl.UnmapNamedBuffer(uint32(b)) }

func (f *Functions) BindBuffer(target driver.Enum, b driver.Buffer) {
	gl.BindBuffer(uint32(target), uint32(b))
}

func (f *Functions) BindBufferBase(target driver.Enum, index uint32, b driver.Buffer) {
	gl.BindBufferBase(uint32(target), index, uint32(b))
}

func (f *Functions) BindBufferRange(target driver.Enum, index uint32, b driver.Buffer, offset, size int) {
	gl.BindBufferRange(uint32(target), index, uint32(b), offset, size)
}

// Textures.

func (f *Functions) CreateTexture(target driver.Enum) driver.Texture {
	var t uint32
	gl.CreateTextures(uint32(target), 1, &t)
	return driver.Texture(t)
}

func (f *Functions) DeleteTexture(t driver.Texture) {
	name := uint32(t)
	gl.DeleteTextures(1, &name)
}

func (f *Functions) TextureStorage1D(t driver.Texture, levels int, internalFormat driver.Enum, width int) {
	gl.TextureStorage1D(uint32(t), int32(levels), uint32(internalFormat), int32(width))
}

func (f *Functions) TextureStorage2D(t driver.Texture, levels int, internalFormat driver.Enum, width, height int) {
	gl.TextureStorage2D(uint32(t), int32(levels), uint32(internalFormat), int32(width), int32(height))
}

func (f *Functions) TextureStorage2DMultisample(t driver.Texture, samples int, internalFormat driver.Enum, width, height int, fixedLocations bool) {
	gl.TextureStorage2DMultisample(uint32(t), int32(samples), uint32(internalFormat), int32(width), int32(height), fixedLocations)
}

func (f *Functions) TextureStorage3D(t driver.Texture, levels int, internalFormat driver.Enum, width, height, depth int) {
	gl.TextureStorage3D(uint32(t), int32(levels), uint32(internalFormat), int32(width), int32(height), int32(depth))
}

func (f *Functions) TextureStorage3DMultisample(t driver.Texture, samples int, internalFormat driver.Enum, width, height, depth int, fixedLocations bool) {
	gl.TextureStorage3DMultisample(uint32(t), int32(samples), uint32(internalFormat), int32(width), int32(height), int32(depth), fixedLocations)
}

func (f *Functions) TextureBuffer(t driver.Texture, internalFormat driver.Enum, b driver.Buffer) {
	gl.TextureBuffer(uint32(t), uint32(internalFormat), uint32(b))
}

func (f *Functions) TextureSubImage1D(t driver.Texture, level, x, width int, format, typ driver.Enum, data []byte) {
	gl.TextureSubImage1D(uint32(t), int32(level), int32(x), int32(width), uint32(format), uint32(typ), ptr(data))
}

func (f *Functions) TextureSubImage2D(t driver.Texture, level, x, y, width, height int, format, typ driver.Enum, data []byte) {
	gl.TextureSubImage2D(uint32(t), int32(level), int32(x), int32(y), int32(width), int32(height),
		uint32(format), uint32(typ), ptr(data))
}

func (f *Functions) TextureSubImage3D(t driver.Texture, level, x, y, z, width, height, depth int, format, typ driver.Enum, data []byte) {
	gl.TextureSubImage3D(uint32(t), int32(level), int32(x), int32(y), int32(z), int32(width), int32(height), int32(depth),
		uint32(format), uint32(typ), ptr(data))
}

func (f *Functions) CompressedTextureSubImage1D(t driver.Texture, level, x, width int, format driver.Enum, imageSize int, data []byte) {
	gl.CompressedTextureSubImage1D(uint32(t), int32(level), int32(x), int32(width), uint32(format), int32(imageSize), ptr(data))
}

func (f *Functions) CompressedTextureSubImage2D(t driver.Texture, level, x, y, width, height int, format driver.Enum, imageSize int, data []byte) {
	gl.CompressedTextureSubImage2D(uint32(t), int32(level), int32(x), int32(y), int32(width), int32(height),
		uint32(format), int32(imageSize), ptr(data))
}

func (f *Functions) CompressedTextureSubImage3D(t driver.Texture, level, x, y, z, width, height, depth int, format driver.Enum, imageSize int, data []byte) {
	gl.CompressedTextureSubImage3D(uint32(t), int32(level), int32(x), int32(y), int32(z), int32(width), int32(height), int32(depth),
		uint32(format), int32(imageSize), ptr(data))
}

func (f *Functions) GenerateTextureMipmap(t driver.Texture) { gl.GenerateTextureMipmap(uint32(t)) }

func (f *Functions) TextureParameteri(t driver.Texture, pname driver.Enum, v int32) {
	gl.TextureParameteri(uint32(t), uint32(pname), v)
}

func (f *Functions) TextureParameterf(t driver.Texture, pname driver.Enum, v float32) {
	gl.TextureParameterf(uint32(t), uint32(pname), v)
}

func (f *Functions) GetTextureParameteri(t driver.Texture, pname driver.Enum) int32 {
	var v int32
	gl.GetTextureParameteriv(uint32(t), uint32(pname), &v)
	return v
}

func (f *Functions) GetTextureImage(t driver.Texture, level int, format, typ driver.Enum, dst []byte) {
	gl.GetTextureImage(uint32(t), int32(level), uint32(format), uint32(typ), int32(len(dst)), ptr(dst))
}

func (f *Functions) BindTexture(target driver.Enum, t driver.Texture) {
	gl.BindTexture(uint32(target), uint32(t))
}

func (f *Functions) BindTextureUnit(unit uint32, t driver.Texture) { gl.BindTextureUnit(unit, uint32(t)) }

func (f *Functions) BindTextures(first uint32, textures []driver.Texture) {
	if len(textures) == 0 {
		return
	}
	names := make([]uint32, len(textures))
	for i, t := range textures {
		names[i] = uint32(t)
	}
	gl.BindTextures(first, int32(len(names)), &names[0])
}

func (f *Functions) PixelStorei(pname driver.Enum, v int32) { gl.PixelStorei(uint32(pname), v) }

// Renderbuffers and framebuffers.

func (f *Functions) CreateRenderbuffer() driver.Renderbuffer {
	var r uint32
	gl.CreateRenderbuffers(1, &r)
	return driver.Renderbuffer(r)
}

func (f *Functions) DeleteRenderbuffer(r driver.Renderbuffer) {
	name := uint32(r)
	gl.DeleteRenderbuffers(1, &name)
}

func (f *Functions) NamedRenderbufferStorage(r driver.Renderbuffer, internalFormat driver.Enum, width, height int) {
	gl.NamedRenderbufferStorage(uint32(r), uint32(internalFormat), int32(width), int32(height))
}

func (f *Functions) NamedRenderbufferStorageMultisample(r driver.Renderbuffer, samples int, internalFormat driver.Enum, width, height int) {
	gl.NamedRenderbufferStorageMultisample(uint32(r), int32(samples), uint32(internalFormat), int32(width), int32(height))
}

func (f *Functions) CreateFramebuffer() driver.Framebuffer {
	var fb uint32
	gl.CreateFramebuffers(1, &fb)
	return driver.Framebuffer(fb)
}

func (f *Functions) DeleteFramebuffer(fb driver.Framebuffer) {
	name := uint32(fb)
	gl.DeleteFramebuffers(1, &name)
}

func (f *Functions) NamedFramebufferTexture(fb driver.Framebuffer, attachment driver.Enum, t driver.Texture, level int) {
	gl.NamedFramebufferTexture(uint32(fb), uint32(attachment), uint32(t), int32(level))
}

func (f *Functions) NamedFramebufferRenderbuffer(fb driver.Framebuffer, attachment driver.Enum, r driver.Renderbuffer) {
	gl.NamedFramebufferRenderbuffer(uint32(fb), uint32(attachment), gl.RENDERBUFFER, uint32(r))
}

func (f *Functions) NamedFramebufferDrawBuffer(fb driver.Framebuffer, buf driver.Enum) {
	gl.NamedFramebufferDrawBuffer(uint32(fb), uint32(buf))
}

func (f *Functions) NamedFramebufferDrawBuffers(fb driver.Framebuffer, bufs []driver.Enum) {
	if len(bufs) == 0 {
		gl.NamedFramebufferDrawBuffers(uint32(fb), 0, nil)
		return
	}
	values := make([]uint32, len(bufs))
	for i, b := range bufs {
		values[i] = uint32(b)
	}
	gl.NamedFramebufferDrawBuffers(uint32(fb), int32(len(values)), &values[0])
}

func (f *Functions) CheckNamedFramebufferStatus(fb driver.Framebuffer, target driver.Enum) driver.Enum {
	return driver.Enum(gl.CheckNamedFramebufferStatus(uint32(fb), uint32(target)))
}

func (f *Functions) BindFramebuffer(target driver.Enum, fb driver.Framebuffer) {
	gl.BindFramebuffer(uint32(target), uint32(fb))
}

func (f *Functions) ClearNamedFramebufferfv(fb driver.Framebuffer, buffer driver.Enum, drawBuffer int32, value []float32) {
	gl.ClearNamedFramebufferfv(uint32(fb), uint32(buffer), drawBuffer, &value[0])
}

func (f *Functions) ClearNamedFramebufferiv(fb driver.Framebuffer, buffer driver.Enum, drawBuffer int32, value []int32) {
	gl.ClearNamedFramebufferiv(uint32(fb), uint32(buffer), drawBuffer, &value[0])
}

func (f *Functions) ClearNamedFramebufferuiv(fb driver.Framebuffer, buffer driver.Enum, drawBuffer int32, value []uint32) {
	gl.ClearNamedFramebufferuiv(uint32(fb), uint32(buffer), drawBuffer, &value[0])
}

func (f *Functions) ClearNamedFramebufferfi(fb driver.Framebuffer, buffer driver.Enum, drawBuffer int32, depth float32, stencil int32) {
	gl.ClearNamedFramebufferfi(uint32(fb), uint32(buffer), drawBuffer, depth, stencil)
}

// Shaders and programs.

func (f *Functions) CreateShader(typ driver.Enum) driver.Shader {
	return driver.Shader(gl.CreateShader(uint32(typ)))
}

func (f *Functions) DeleteShader(s driver.Shader) { gl.DeleteShader(uint32(s)) }

func (f *Functions) ShaderSource(s driver.Shader, src string) {
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(s), 1, csrc, nil)
	free()
}

func (f *Functions) CompileShader(s driver.Shader) { gl.CompileShader(uint32(s)) }

func (f *Functions) ShaderBinary(s driver.Shader, format driver.Enum, binary []byte) {
	name := uint32(s)
	gl.ShaderBinary(1, &name, uint32(format), ptr(binary), int32(len(binary)))
}

func (f *Functions) SpecializeShader(s driver.Shader, entryPoint string, indices, values []uint32) {
	var idx, val *uint32
	if len(indices) > 0 {
		idx, val = &indices[0], &values[0]
	}
	gl.SpecializeShader(uint32(s), cstr(entryPoint), uint32(len(indices)), idx, val)
}

func (f *Functions) GetShaderi(s driver.Shader, pname driver.Enum) int32 {
	var v int32
	gl.GetShaderiv(uint32(s), uint32(pname), &v)
	return v
}

func (f *Functions) GetShaderInfoLog(s driver.Shader) string {
	n := f.GetShaderi(s, driver.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n+1)
	gl.GetShaderInfoLog(uint32(s), n, nil, &buf[0])
	return goStr(buf)
}

func (f *Functions) CreateProgram() driver.Program { return driver.Program(gl.CreateProgram()) }

func (f *Functions) DeleteProgram(p driver.Program) { gl.DeleteProgram(uint32(p)) }

func (f *Functions) AttachShader(p driver.Program, s driver.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (f *Functions) DetachShader(p driver.Program, s driver.Shader) {
	gl.DetachShader(uint32(p), uint32(s))
}

func (f *Functions) LinkProgram(p driver.Program) { gl.LinkProgram(uint32(p)) }

func (f *Functions) ValidateProgram(p driver.Program) { gl.ValidateProgram(uint32(p)) }

func (f *Functions) UseProgram(p driver.Program) { gl.UseProgram(uint32(p)) }

func (f *Functions) GetProgrami(p driver.Program, pname driver.Enum) int32 {
	var v int32
	gl.GetProgramiv(uint32(p), uint32(pname), &v)
	return v
}

func (f *Functions) GetProgramInfoLog(p driver.Program) string {
	n := f.GetProgrami(p, driver.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n+1)
	gl.GetProgramInfoLog(uint32(p), n, nil, &buf[0])
	return goStr(buf)
}

func (f *Functions) ProgramBinary(p driver.Program, format driver.Enum, binary []byte) {
	gl.ProgramBinary(uint32(p), uint32(format), ptr(binary), int32(len(binary)))
}

func (f *Functions) GetProgramBinary(p driver.Program) ([]byte, driver.Enum) {
	n := f.GetProgrami(p, driver.PROGRAM_BINARY_LENGTH)
	if n <= 0 {
		return nil, 0
	}
	buf := make([]byte, n)
	var written int32
	var format uint32
	gl.GetProgramBinary(uint32(p), n, &written, &format, ptr(buf))
	return buf[:written], driver.Enum(format)
}

func (f *Functions) GetProgramInterfacei(p driver.Program, iface, pname driver.Enum) int32 {
	var v int32
	gl.GetProgramInterfaceiv(uint32(p), uint32(iface), uint32(pname), &v)
	return v
}

func (f *Functions) GetProgramResourcei(p driver.Program, iface driver.Enum, index uint32, prop driver.Enum) int32 {
	props := uint32(prop)
	var v int32
	gl.GetProgramResourceiv(uint32(p), uint32(iface), index, 1, &props, 1, nil, &v)
	return v
}

func (f *Functions) GetProgramResourceName(p driver.Program, iface driver.Enum, index uint32) string {
	n := f.GetProgramResourcei(p, iface, index, driver.NAME_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n+1)
	gl.GetProgramResourceName(uint32(p), uint32(iface), index, n, nil, &buf[0])
	return goStr(buf)
}

func (f *Functions) GetUniformBlockIndex(p driver.Program, name string) uint32 {
	return gl.GetUniformBlockIndex(uint32(p), cstr(name))
}

func (f *Functions) UniformBlockBinding(p driver.Program, blockIndex, binding uint32) {
	gl.UniformBlockBinding(uint32(p), blockIndex, binding)
}

// Program uniforms.

func (f *Functions) ProgramUniformfv(p driver.Program, location int32, components int, v []float32) {
	if len(v) == 0 {
		return
	}
	count := int32(len(v) / components)
	switch components {
	case 1:
		gl.ProgramUniform1fv(uint32(p), location, count, &v[0])
	case 2:
		gl.ProgramUniform2fv(uint32(p), location, count, &v[0])
	case 3:
		gl.ProgramUniform3fv(uint32(p), location, count, &v[0])
	case 4:
		gl.ProgramUniform4fv(uint32(p), location, count, &v[0])
	}
}

func (f *Functions) ProgramUniformdv(p driver.Program, location int32, components int, v []float64) {
	if len(v) == 0 {
		return
	}
	count := int32(len(v) / components)
	switch components {
	case 1:
		gl.ProgramUniform1dv(uint32(p), location, count, &v[0])
	case 2:
		gl.ProgramUniform2dv(uint32(p), location, count, &v[0])
	case 3:
		gl.ProgramUniform3dv(uint32(p), location, count, &v[0])
	case 4:
		gl.ProgramUniform4dv(uint32(p), location, count, &v[0])
	}
}

func (f *Functions) ProgramUniformiv(p driver.Program, location int32, components int, v []int32) {
	if len(v) == 0 {
		return
	}
	count := int32(len(v) / components)
	switch components {
	case 1:
		gl.ProgramUniform1iv(uint32(p), location, count, &v[0])
	case 2:
		gl.ProgramUniform2iv(uint32(p), location, count, &v[0])
	case 3:
		gl.ProgramUniform3iv(uint32(p), location, count, &v[0])
	case 4:
		gl.ProgramUniform4iv(uint32(p), location, count, &v[0])
	}
}

func (f *Functions) ProgramUniformuiv(p driver.Program, location int32, components int, v []uint32) {
	if len(v) == 0 {
		return
	}
	count := int32(len(v) / components)
	switch components {
	case 1:
		gl.ProgramUniform1uiv(uint32(p), location, count, &v[0])
	case 2:
		gl.ProgramUniform2uiv(uint32(p), location, count, &v[0])
	case 3:
		gl.ProgramUniform3uiv(uint32(p), location, count, &v[0])
	case 4:
		gl.ProgramUniform4uiv(uint32(p), location, count, &v[0])
	}
}

func (f *Functions) ProgramUniformMatrixfv(p driver.Program, location int32, order int, transpose bool, v []float32) {
	if len(v) == 0 {
		return
	}
	count := int32(len(v) / (order * order))
	switch order {
	case 2:
		gl.ProgramUniformMatrix2fv(uint32(p), location, count, transpose, &v[0])
	case 3:
		gl.ProgramUniformMatrix3fv(uint32(p), location, count, transpose, &v[0])
	case 4:
		gl.ProgramUniformMatrix4fv(uint32(p), location, count, transpose, &v[0])
	}
}

func (f *Functions) ProgramUniformMatrixdv(p driver.Program, location int32, order int, transpose bool, v []float64) {
	if len(v) == 0 {
		return
	}
	count := int32(len(v) / (order * order))
	switch order {
	case 2:
		gl.ProgramUniformMatrix2dv(uint32(p), location, count, transpose, &v[0])
	case 3:
		gl.ProgramUniformMatrix3dv(uint32(p), location, count, transpose, &v[0])
	case 4:
		gl.ProgramUniformMatrix4dv(uint32(p), location, count, transpose, &v[0])
	}
}

// Vertex arrays.

func (f *Functions) CreateVertexArray() driver.VertexArray {
	var v uint32
	gl.CreateVertexArrays(1, &v)
	return driver.VertexArray(v)
}

func (f *Functions) DeleteVertexArray(v driver.VertexArray) {
	name := uint32(v)
	gl.DeleteVertexArrays(1, &name)
}

func (f *Functions) BindVertexArray(v driver.VertexArray) { gl.BindVertexArray(uint32(v)) }

func (f *Functions) VertexArrayElementBuffer(v driver.VertexArray, b driver.Buffer) {
	gl.VertexArrayElementBuffer(uint32(v), uint32(b))
}

func (f *Functions) VertexArrayVertexBuffer(v driver.VertexArray, binding uint32, b driver.Buffer, offset, stride int) {
	gl.VertexArrayVertexBuffer(uint32(v), binding, uint32(b), offset, int32(stride))
}

func (f *Functions) VertexArrayBindingDivisor(v driver.VertexArray, binding, divisor uint32) {
	gl.VertexArrayBindingDivisor(uint32(v), binding, divisor)
}

func (f *Functions) EnableVertexArrayAttrib(v driver.VertexArray, attrib uint32) {
	gl.EnableVertexArrayAttrib(uint32(v), attrib)
}

func (f *Functions) VertexArrayAttribBinding(v driver.VertexArray, attrib, binding uint32) {
	gl.VertexArrayAttribBinding(uint32(v), attrib, binding)
}

func (f *Functions) VertexArrayAttribFormat(v driver.VertexArray, attrib uint32, size int, typ driver.Enum, normalized bool, relativeOffset uint32) {
	gl.VertexArrayAttribFormat(uint32(v), attrib, int32(size), uint32(typ), normalized, relativeOffset)
}

func (f *Functions) VertexArrayAttribIFormat(v driver.VertexArray, attrib uint32, size int, typ driver.Enum, relativeOffset uint32) {
	gl.VertexArrayAttribIFormat(uint32(v), attrib, int32(size), uint32(typ), relativeOffset)
}

func (f *Functions) VertexArrayAttribLFormat(v driver.VertexArray, attrib uint32, size int, typ driver.Enum, relativeOffset uint32) {
	gl.VertexArrayAttribLFormat(uint32(v), attrib, int32(size), uint32(typ), relativeOffset)
}

// Sync objects.

func (f *Functions) FenceSync(condition, flags driver.Enum) driver.Sync {
	return driver.Sync(gl.FenceSync(uint32(condition), uint32(flags)))
}

func (f *Functions) DeleteSync(s driver.Sync) { gl.DeleteSync(uintptr(s)) }

func (f *Functions) ClientWaitSync(s driver.Sync, flags driver.Enum, timeoutNs uint64) driver.Enum {
	return driver.Enum(gl.ClientWaitSync(uintptr(s), uint32(flags), timeoutNs))
}

func (f *Functions) GetSynci(s driver.Sync, pname driver.Enum) int32 {
	var v int32
	gl.GetSynciv(uintptr(s), uint32(pname), 1, nil, &v)
	return v
}

// Global state.

func (f *Functions) Enable(capability driver.Enum)  { gl.Enable(uint32(capability)) }
func (f *Functions) Disable(capability driver.Enum) { gl.Disable(uint32(capability)) }

func (f *Functions) BlendFunc(src, dst driver.Enum) { gl.BlendFunc(uint32(src), uint32(dst)) }

func (f *Functions) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha driver.Enum) {
	gl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (f *Functions) BlendEquation(mode driver.Enum) { gl.BlendEquation(uint32(mode)) }

func (f *Functions) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (f *Functions) Clear(mask driver.Enum) { gl.Clear(uint32(mask)) }

func (f *Functions) Scissor(x, y, width, height int32)  { gl.Scissor(x, y, width, height) }
func (f *Functions) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (f *Functions) PolygonMode(face, mode driver.Enum) { gl.PolygonMode(uint32(face), uint32(mode)) }

func (f *Functions) DepthMask(enabled bool) { gl.DepthMask(enabled) }

func (f *Functions) CullFace(mode driver.Enum)  { gl.CullFace(uint32(mode)) }
func (f *Functions) FrontFace(mode driver.Enum) { gl.FrontFace(uint32(mode)) }

func (f *Functions) ColorMask(r, g, b, a bool) { gl.ColorMask(r, g, b, a) }

func (f *Functions) MemoryBarrier(barriers driver.Enum) { gl.MemoryBarrier(uint32(barriers)) }

func (f *Functions) MemoryBarrierByRegion(barriers driver.Enum) {
	gl.MemoryBarrierByRegion(uint32(barriers))
}

func (f *Functions) Flush()  { gl.Flush() }
func (f *Functions) Finish() { gl.Finish() }

// Draw calls.

func (f *Functions) DrawArrays(mode driver.Enum, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (f *Functions) DrawArraysInstanced(mode driver.Enum, first, count, instances int32) {
	gl.DrawArraysInstanced(uint32(mode), first, count, instances)
}

func (f *Functions) DrawArraysInstancedBaseInstance(mode driver.Enum, first, count, instances int32, baseInstance uint32) {
	gl.DrawArraysInstancedBaseInstance(uint32(mode), first, count, instances, baseInstance)
}

func (f *Functions) DrawElements(mode driver.Enum, count int32, typ driver.Enum, offset int) {
	gl.DrawElements(uint32(mode), count, uint32(typ), gl.PtrOffset(offset))
}

func (f *Functions) DrawElementsBaseVertex(mode driver.Enum, count int32, typ driver.Enum, offset int, baseVertex int32) {
	gl.DrawElementsBaseVertex(uint32(mode), count, uint32(typ), gl.PtrOffset(offset), baseVertex)
}

func (f *Functions) DrawElementsInstanced(mode driver.Enum, count int32, typ driver.Enum, offset int, instances int32) {
	gl.DrawElementsInstanced(uint32(mode), count, uint32(typ), gl.PtrOffset(offset), instances)
}

func (f *Functions) DrawElementsInstancedBaseInstance(mode driver.Enum, count int32, typ driver.Enum, offset int, instances int32, baseInstance uint32) {
	gl.DrawElementsInstancedBaseInstance(uint32(mode), count, uint32(typ), gl.PtrOffset(offset), instances, baseInstance)
}

func (f *Functions) DrawElementsInstancedBaseVertex(mode driver.Enum, count int32, typ driver.Enum, offset int, instances, baseVertex int32) {
	gl.DrawElementsInstancedBaseVertex(uint32(mode), count, uint32(typ), gl.PtrOffset(offset), instances, baseVertex)
}

func (f *Functions) DrawElementsInstancedBaseVertexBaseInstance(mode driver.Enum, count int32, typ driver.Enum, offset int, instances, baseVertex int32, baseInstance uint32) {
	gl.DrawElementsInstancedBaseVertexBaseInstance(uint32(mode), count, uint32(typ), gl.PtrOffset(offset),
		instances, baseVertex, baseInstance)
}

func (f *Functions) DrawArraysIndirect(mode driver.Enum, offset int) {
	gl.DrawArraysIndirect(uint32(mode), gl.PtrOffset(offset))
}

func (f *Functions) DrawElementsIndirect(mode, typ driver.Enum, offset int) {
	gl.DrawElementsIndirect(uint32(mode), uint32(typ), gl.PtrOffset(offset))
}

func (f *Functions) MultiDrawArraysIndirect(mode driver.Enum, offset int, drawCount, stride int32) {
	gl.MultiDrawArraysIndirect(uint32(mode), gl.PtrOffset(offset), drawCount, stride)
}

func (f *Functions) MultiDrawElementsIndirect(mode, typ driver.Enum, offset int, drawCount, stride int32) {
	gl.MultiDrawElementsIndirect(uint32(mode), uint32(typ), gl.PtrOffset(offset), drawCount, stride)
}

// Debug output and labels.

func (f *Functions) DebugMessageCallback(cb driver.DebugProc) {
	if cb == nil {
		gl.DebugMessageCallback(nil, nil)
		return
	}
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		cb(driver.Enum(source), driver.Enum(gltype), id, driver.Enum(severity), message)
	}, nil)
}

func (f *Functions) DebugMessageInsert(source, typ driver.Enum, id uint32, severity driver.Enum, message string) {
	gl.DebugMessageInsert(uint32(source), uint32(typ), id, uint32(severity), int32(len(message)), cstr(message))
}

func (f *Functions) ObjectLabel(identifier driver.Enum, name uint32, label string) {
	gl.ObjectLabel(uint32(identifier), name, int32(len(label)), cstr(label))
}

func (f *Functions) ObjectPtrLabel(s driver.Sync, label string) {
	gl.ObjectPtrLabel(unsafe.Pointer(uintptr(s)), int32(len(label)), cstr(label)) //nolint:govet // GLsync is an opaque driver pointer
}
