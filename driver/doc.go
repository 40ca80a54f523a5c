// Package driver defines the OpenGL function table used by glkit.
//
// glkit never calls OpenGL directly. Every resource wrapper receives a
// [Functions] implementation when its [github.com/gogpu/glkit.Device] is
// created, which makes the layer usable against any GL 4.5+ loader and lets
// tests run without a GPU.
//
// # Implementations
//
//   - driver/glcore: cgo bindings generated by go-gl for OpenGL 4.6 core.
//     Importing the package registers it under the name "glcore".
//   - internal/glfake: an in-memory software implementation used by tests.
//
// # Handles
//
// GL object names are wrapped in distinct types ([Buffer], [Texture],
// [Framebuffer], ...) so that a texture name cannot be passed where a buffer
// is expected. The zero value of every handle is the GL "no object" name.
//
// # Threading
//
// A Functions value is bound to the GL context that was current when it was
// created. Calls must be made from the thread owning that context; the
// interface itself performs no locking.
package driver
