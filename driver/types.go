package driver

type (
	// Enum is a GLenum or GLbitfield value.
	Enum uint32

	Buffer       uint32
	Texture      uint32
	Renderbuffer uint32
	Framebuffer  uint32
	Shader       uint32
	Program      uint32
	VertexArray  uint32

	// Sync is an opaque GLsync pointer value.
	Sync uintptr
)

func (b Buffer) Valid() bool       { return b != 0 }
func (t Texture) Valid() bool      { return t != 0 }
func (r Renderbuffer) Valid() bool { return r != 0 }
func (f Framebuffer) Valid() bool  { return f != 0 }
func (s Shader) Valid() bool       { return s != 0 }
func (p Program) Valid() bool      { return p != 0 }
func (v VertexArray) Valid() bool  { return v != 0 }
func (s Sync) Valid() bool         { return s != 0 }

// DebugProc receives messages produced by the driver's debug output.
type DebugProc func(source, typ Enum, id uint32, severity Enum, message string)
