package driver

import "unsafe"

// Functions is the subset of OpenGL 4.6 used by glkit, expressed with Go
// types. Object creation uses the direct state access entry points
// (glCreate*, glNamed*, glTexture*) so no binding is required to configure
// an object.
//
// Byte slices passed in are only read for the duration of the call. A nil
// data slice is passed to the driver as a null pointer.
type Functions interface {
	// Queries and errors.
	GetError() Enum
	GetString(name Enum) string
	GetIntegerv(pname Enum) int32
	GetInternalformativ(target, internalFormat, pname Enum) int32

	// Buffers.
	CreateBuffer() Buffer
	DeleteBuffer(b Buffer)
	NamedBufferStorage(b Buffer, size int, data []byte, flags Enum)
	NamedBufferSubData(b Buffer, offset int, data []byte)
	GetNamedBufferSubData(b Buffer, offset int, dst []byte)
	// MapNamedBufferRange returns a slice aliasing the mapped range, or nil
	// if the driver failed to map it.
	MapNamedBufferRange(b Buffer, offset, length int, access Enum) []byte
	FlushMappedNamedBufferRange(b Buffer, offset, length int)
	UnmapNamedBuffer(b Buffer) bool
	BindBuffer(target Enum, b Buffer)
	BindBufferBase(target Enum, index uint32, b Buffer)
	BindBufferRange(target Enum, index uint32, b Buffer, offset, size int)

	// Textures.
	CreateTexture(target Enum) Texture
	DeleteTexture(t Texture)
	TextureStorage1D(t Texture, levels int, internalFormat Enum, width int)
	TextureStorage2D(t Texture, levels int, internalFormat Enum, width, height int)
	TextureStorage2DMultisample(t Texture, samples int, internalFormat Enum, width, height int, fixedLocations bool)
	TextureStorage3D(t Texture, levels int, internalFormat Enum, width, height, depth int)
	TextureStorage3DMultisample(t Texture, samples int, internalFormat Enum, width, height, depth int, fixedLocations bool)
	TextureBuffer(t Texture, internalFormat Enum, b Buffer)
	TextureSubImage1D(t Texture, level, x, width int, format, typ Enum, data []byte)
	TextureSubImage2D(t Texture, level, x, y, width, height int, format, typ Enum, data []byte)
	TextureSubImage3D(t Texture, level, x, y, z, width, height, depth int, format, typ Enum, data []byte)
	CompressedTextureSubImage1D(t Texture, level, x, width int, format Enum, imageSize int, data []byte)
	CompressedTextureSubImage2D(t Texture, level, x, y, width, height int, format Enum, imageSize int, data []byte)
	CompressedTextureSubImage3D(t Texture, level, x, y, z, width, height, depth int, format Enum, imageSize int, data []byte)
	GenerateTextureMipmap(t Texture)
	TextureParameteri(t Texture, pname Enum, v int32)
	TextureParameterf(t Texture, pname Enum, v float32)
	GetTextureParameteri(t Texture, pname Enum) int32
	GetTextureImage(t Texture, level int, format, typ Enum, dst []byte)
	BindTexture(target Enum, t Texture)
	BindTextureUnit(unit uint32, t Texture)
	BindTextures(first uint32, textures []Texture)
	PixelStorei(pname Enum, v int32)

	// Renderbuffers and framebuffers.
	CreateRenderbuffer() Renderbuffer
	DeleteRenderbuffer(r Renderbuffer)
	NamedRenderbufferStorage(r Renderbuffer, internalFormat Enum, width, height int)
	NamedRenderbufferStorageMultisample(r Renderbuffer, samples int, internalFormat Enum, width, height int)
	CreateFramebuffer() Framebuffer
	DeleteFramebuffer(f Framebuffer)
	NamedFramebufferTexture(f Framebuffer, attachment Enum, t Texture, level int)
	NamedFramebufferRenderbuffer(f Framebuffer, attachment Enum, r Renderbuffer)
	NamedFramebufferDrawBuffer(f Framebuffer, buf Enum)
	NamedFramebufferDrawBuffers(f Framebuffer, bufs []Enum)
	CheckNamedFramebufferStatus(f Framebuffer, target Enum) Enum
	BindFramebuffer(target Enum, f Framebuffer)
	ClearNamedFramebufferfv(f Framebuffer, buffer Enum, drawBuffer int32, value []float32)
	ClearNamedFramebufferiv(f Framebuffer, buffer Enum, drawBuffer int32, value []int32)
	ClearNamedFramebufferuiv(f Framebuffer, buffer Enum, drawBuffer int32, value []uint32)
	ClearNamedFramebufferfi(f Framebuffer, buffer Enum, drawBuffer int32, depth float32, stencil int32)

	// Shaders and programs.
	CreateShader(typ Enum) Shader
	DeleteShader(s Shader)
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	ShaderBinary(s Shader, format Enum, binary []byte)
	SpecializeShader(s Shader, entryPoint string, indices, values []uint32)
	GetShaderi(s Shader, pname Enum) int32
	GetShaderInfoLog(s Shader) string
	CreateProgram() Program
	DeleteProgram(p Program)
	AttachShader(p Program, s Shader)
	DetachShader(p Program, s Shader)
	LinkProgram(p Program)
	ValidateProgram(p Program)
	UseProgram(p Program)
	GetProgrami(p Program, pname Enum) int32
	GetProgramInfoLog(p Program) string
	ProgramBinary(p Program, format Enum, binary []byte)
	GetProgramBinary(p Program) ([]byte, Enum)
	GetProgramInterfacei(p Program, iface, pname Enum) int32
	GetProgramResourcei(p Program, iface Enum, index uint32, prop Enum) int32
	GetProgramResourceName(p Program, iface Enum, index uint32) string
	GetUniformBlockIndex(p Program, name string) uint32
	UniformBlockBinding(p Program, blockIndex, binding uint32)

	// Program uniforms. components is the vector length (1-4) or the
	// matrix order (2-4); the element count is len(v)/components or
	// len(v)/(order*order).
	ProgramUniformfv(p Program, location int32, components int, v []float32)
	ProgramUniformdv(p Program, location int32, components int, v []float64)
	ProgramUniformiv(p Program, location int32, components int, v []int32)
	ProgramUniformuiv(p Program, location int32, components int, v []uint32)
	ProgramUniformMatrixfv(p Program, location int32, order int, transpose bool, v []float32)
	ProgramUniformMatrixdv(p Program, location int32, order int, transpose bool, v []float64)

	// Vertex arrays.
	CreateVertexArray() VertexArray
	DeleteVertexArray(v VertexArray)
	BindVertexArray(v VertexArray)
	VertexArrayElementBuffer(v VertexArray, b Buffer)
	VertexArrayVertexBuffer(v VertexArray, binding uint32, b Buffer, offset, stride int)
	VertexArrayBindingDivisor(v VertexArray, binding, divisor uint32)
	EnableVertexArrayAttrib(v VertexArray, attrib uint32)
	VertexArrayAttribBinding(v VertexArray, attrib, binding uint32)
	VertexArrayAttribFormat(v VertexArray, attrib uint32, size int, typ Enum, normalized bool, relativeOffset uint32)
	VertexArrayAttribIFormat(v VertexArray, attrib uint32, size int, typ Enum, relativeOffset uint32)
	VertexArrayAttribLFormat(v VertexArray, attrib uint32, size int, typ Enum, relativeOffset uint32)

	// Sync objects.
	FenceSync(condition Enum, flags Enum) Sync
	DeleteSync(s Sync)
	ClientWaitSync(s Sync, flags Enum, timeoutNs uint64) Enum
	GetSynci(s Sync, pname Enum) int32

	// Global state.
	Enable(capability Enum)
	Disable(capability Enum)
	BlendFunc(src, dst Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	BlendEquation(mode Enum)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Scissor(x, y, width, height int32)
	Viewport(x, y, width, height int32)
	PolygonMode(face, mode Enum)
	DepthMask(enabled bool)
	CullFace(mode Enum)
	FrontFace(mode Enum)
	ColorMask(r, g, b, a bool)
	MemoryBarrier(barriers Enum)
	MemoryBarrierByRegion(barriers Enum)
	Flush()
	Finish()

	// Draw calls. Offsets are byte offsets into the bound element or
	// indirect buffer.
	DrawArrays(mode Enum, first, count int32)
	DrawArraysInstanced(mode Enum, first, count, instances int32)
	DrawArraysInstancedBaseInstance(mode Enum, first, count, instances int32, baseInstance uint32)
	DrawElements(mode Enum, count int32, typ Enum, offset int)
	DrawElementsBaseVertex(mode Enum, count int32, typ Enum, offset int, baseVertex int32)
	DrawElementsInstanced(mode Enum, count int32, typ Enum, offset int, instances int32)
	DrawElementsInstancedBaseInstance(mode Enum, count int32, typ Enum, offset int, instances int32, baseInstance uint32)
	DrawElementsInstancedBaseVertex(mode Enum, count int32, typ Enum, offset int, instances, baseVertex int32)
	DrawElementsInstancedBaseVertexBaseInstance(mode Enum, count int32, typ Enum, offset int, instances, baseVertex int32, baseInstance uint32)
	DrawArraysIndirect(mode Enum, offset int)
	DrawElementsIndirect(mode Enum, typ Enum, offset int)
	MultiDrawArraysIndirect(mode Enum, offset int, drawCount, stride int32)
	MultiDrawElementsIndirect(mode Enum, typ Enum, offset int, drawCount, stride int32)

	// Debug output and labels.
	DebugMessageCallback(cb DebugProc)
	DebugMessageInsert(source, typ Enum, id uint32, severity Enum, message string)
	ObjectLabel(identifier Enum, name uint32, label string)
	ObjectPtrLabel(s Sync, label string)
}

// BytesOf reinterprets the memory of a slice of fixed-size values as bytes.
// The returned slice aliases s.
func BytesOf[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}
