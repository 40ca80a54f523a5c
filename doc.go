// Package glkit provides typed wrappers over OpenGL 4.5+ objects.
//
// # Overview
//
// glkit manages the lifecycle and invariants of GPU resources: buffers with
// immutable storage and CPU-visible mappings, textures, framebuffers,
// vertex arrays, shader programs and fences. It does not render anything on
// its own; composition is left to the caller, which issues explicit ordered
// calls (create, configure, bind, use, destroy).
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glkit"
//	    "github.com/gogpu/glkit/driver"
//	    _ "github.com/gogpu/glkit/driver/glcore"
//	)
//
//	// With an OpenGL 4.6 context current on this thread:
//	fns, err := driver.Default()
//	dev, err := glkit.NewDevice(fns, glkit.WithDebugOutput(true))
//
//	buf, err := dev.CreateBuffer(glkit.BufferDescriptor{
//	    Size:  256,
//	    Flags: glkit.BufferDynamicStorage,
//	})
//	buf.Write(vertices)
//	buf.Transfer()
//
// # Device
//
// A [Device] is the explicit context object. It owns the driver function
// table, the debug-output routing and every global pipeline state call
// (blend, depth, viewport, draw calls, barriers). Every resource is created
// through a Device and keeps a reference to it.
//
// # Threading
//
// OpenGL contexts are bound to a thread. glkit performs no locking: all
// calls on a Device and its resources must come from the thread that owns
// the context. The only blocking primitive is [Sync.Wait].
//
// # Errors
//
// Failures are returned as errors wrapping one of the sentinel values
// ([ErrInvalidArgument], [ErrDriver], ...) and can be tested with
// errors.Is. Driver diagnostics (info logs, status codes) are embedded in
// the error message.
package glkit

// Version information
const (
	// Version is the current version of the library
	Version = "0.4.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 4

	// VersionPatch is the patch version
	VersionPatch = 0
)
