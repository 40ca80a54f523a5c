package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/glkit"
	"github.com/gogpu/glkit/driver"
	"github.com/gogpu/glkit/shadercache"
)

const probeVertexSource = `#version 460 core
layout(location = 0) in vec3 position;
uniform mat4 mvp;
void main() {
    gl_Position = mvp * vec4(position, 1.0);
}
`

const probeFragmentSource = `#version 460 core
uniform vec4 tint;
out vec4 color;
void main() {
    color = tint;
}
`

var errMismatch = errors.New("read-back mismatch")

// probe carries what the checks share.
type probe struct {
	dev   *glkit.Device
	cfg   Config
	cache *shadercache.Cache
}

// check is one resource round trip. run returns the number of bytes it
// moved between client and driver.
type check struct {
	name string
	run  func(*probe) (int, error)
}

var checks = []check{
	{"buffer", checkBuffer},
	{"texture", checkTexture},
	{"framebuffer", checkFramebuffer},
	{"shader", checkShader},
	{"draw", checkDraw},
	{"sync", checkSync},
}

// checkResult is the outcome of one check.
type checkResult struct {
	Name     string
	Bytes    int
	Duration time.Duration
	Err      error
}

// runChecks runs every check in order. A failing check does not stop the
// others.
func runChecks(p *probe) []checkResult {
	results := make([]checkResult, 0, len(checks))
	for _, c := range checks {
		start := time.Now()
		n, err := c.run(p)
		results = append(results, checkResult{Name: c.name, Bytes: n, Duration: time.Since(start), Err: err})
	}
	return results
}

func newProgram(p *probe) (*glkit.ShaderProgram, error) {
	stages := []*glkit.ShaderStageInfo{
		glkit.StageFromSource(glkit.ShaderVertex, probeVertexSource),
		glkit.StageFromSource(glkit.ShaderFragment, probeFragmentSource),
	}
	if p.cache != nil {
		return p.cache.LoadOrCreate(p.dev, "glprobe", stages, true)
	}
	return p.dev.CreateShaderProgram(stages...)
}

func checkBuffer(p *probe) (int, error) {
	values := make([]float32, 256)
	for i := range values {
		values[i] = float32(i) * 0.5
	}
	size := len(values) * 4

	dynamic, err := p.dev.CreateBuffer(glkit.BufferDescriptor{
		Label: "glprobe dynamic",
		Size:  size,
		Flags: glkit.BufferDynamicStorage,
	})
	if err != nil {
		return 0, err
	}
	defer dynamic.Destroy()

	if err := glkit.WriteValues(dynamic, values...); err != nil {
		return 0, err
	}
	moved := dynamic.Transfer()

	got := make([]byte, size)
	if err := dynamic.Read(got, 0, 0); err != nil {
		return moved, err
	}
	moved += size
	for i, v := range values {
		if f := math.Float32frombits(binary.LittleEndian.Uint32(got[i*4:])); f != v {
			return moved, fmt.Errorf("%w: dynamic buffer value %d = %v, want %v", errMismatch, i, f, v)
		}
	}

	persistent, err := p.dev.CreateBuffer(glkit.BufferDescriptor{
		Label: "glprobe persistent",
		Size:  size,
		Flags: glkit.BufferMapRead | glkit.BufferMapWrite | glkit.BufferMapPersistent | glkit.BufferMapCoherent,
	})
	if err != nil {
		return moved, err
	}
	defer persistent.Destroy()

	if err := persistent.Write(got); err != nil {
		return moved, err
	}
	moved += persistent.Transfer()
	back := make([]byte, size)
	if err := persistent.Read(back, 0, 0); err != nil {
		return moved, err
	}
	if !bytes.Equal(back, got) {
		return moved, fmt.Errorf("%w: persistent buffer", errMismatch)
	}
	return moved, nil
}

func checkTexture(p *probe) (int, error) {
	w, h := p.cfg.Width, p.cfg.Height
	tex, err := p.dev.CreateTexture(glkit.NewTextureSpec(glkit.TextureTarget2D, w, h, glkit.FormatRGBA8), true)
	if err != nil {
		return 0, err
	}
	defer tex.Destroy()
	tex.SetDebugName("glprobe texture")

	pixels := make([]byte, w*h*4)
	for i := range pixels {
		pixels[i] = byte(i * 7)
	}
	upload := glkit.NewTextureUploadInfo(glkit.PixelRGBA, w, h)
	upload.GenerateMipmap = false
	if err := tex.Upload(upload, pixels); err != nil {
		return 0, err
	}

	got := make([]byte, len(pixels))
	if err := tex.Read(0, glkit.PixelRGBA, glkit.TypeUnsignedByte, got); err != nil {
		return len(pixels), err
	}
	if !bytes.Equal(got, pixels) {
		return 2 * len(pixels), fmt.Errorf("%w: texture level 0", errMismatch)
	}
	return 2 * len(pixels), nil
}

func checkFramebuffer(p *probe) (int, error) {
	w, h := p.cfg.Width, p.cfg.Height
	fb, err := p.dev.CreateFramebuffer([]*glkit.FramebufferAttachment{
		glkit.NewFramebufferAttachment(glkit.ColorAttachment(0), glkit.FormatRGBA8),
		glkit.NewFramebufferAttachment(glkit.AttachmentDepthStencil, glkit.FormatDepth24Stencil8),
	}, w, h)
	if err != nil {
		return 0, err
	}
	defer fb.Destroy()
	fb.SetDebugName("glprobe framebuffer")

	fb.ClearColor(glkit.ClearFloat(1, 0, 0, 1), 0)
	fb.ClearDepthStencil(1, 0)

	got := make([]byte, w*h*4)
	if err := fb.ReadColorAttachment(glkit.ColorAttachment(0), glkit.PixelRGBA, glkit.TypeUnsignedByte, got); err != nil {
		return 0, err
	}
	want := []byte{255, 0, 0, 255}
	for i := 0; i < len(got); i += 4 {
		if !bytes.Equal(got[i:i+4], want) {
			return len(got), fmt.Errorf("%w: pixel %d = %v, want %v", errMismatch, i/4, got[i:i+4], want)
		}
	}
	return len(got), nil
}

func checkShader(p *probe) (int, error) {
	prog, err := newProgram(p)
	if err != nil {
		return 0, err
	}
	defer prog.Destroy()

	if err := prog.SetUniform("mvp", glkit.Mat4(mgl32.Ident4())); err != nil {
		return 0, err
	}
	if err := prog.SetUniform("tint", glkit.Vec4(mgl32.Vec4{1, 0.5, 0.25, 1})); err != nil {
		return 0, err
	}
	if _, err := prog.AttributeLocation("position"); err != nil {
		return 0, err
	}

	bin, _, err := prog.Binary()
	if errors.Is(err, glkit.ErrDriver) {
		// Drivers without program binary formats still pass.
		return 0, nil
	}
	return len(bin), err
}

func checkDraw(p *probe) (int, error) {
	vertices := []float32{
		-1, -1, 0,
		3, -1, 0,
		-1, 3, 0,
	}
	vbo, err := p.dev.CreateBuffer(glkit.BufferDescriptor{
		Label: "glprobe vertices",
		Size:  len(vertices) * 4,
		Flags: glkit.BufferDynamicStorage,
	})
	if err != nil {
		return 0, err
	}
	defer vbo.Destroy()
	if err := glkit.WriteValues(vbo, vertices...); err != nil {
		return 0, err
	}
	moved := vbo.Transfer()

	pos := glkit.NewVertexDescriptor(0, glkit.TypeFloat, 3)
	va, err := p.dev.CreateVertexArray([]glkit.VertexInput{{
		Buffer:      vbo,
		Stride:      glkit.VertexStride(pos),
		Descriptors: []glkit.VertexDescriptor{pos},
	}}, nil)
	if err != nil {
		return moved, err
	}
	defer va.Destroy()

	prog, err := newProgram(p)
	if err != nil {
		return moved, err
	}
	defer prog.Destroy()
	if err := prog.SetUniform("mvp", glkit.Mat4(mgl32.Ident4())); err != nil {
		return moved, err
	}

	prog.Use()
	va.Bind()
	p.dev.Viewport(0, 0, p.cfg.Width, p.cfg.Height)
	if err := p.dev.DrawArrays(glkit.DrawTriangles, 0, 3); err != nil {
		return moved, err
	}
	p.dev.UnbindVertexArray()
	p.dev.UnbindProgram()
	if code := p.dev.Functions().GetError(); code != driver.NO_ERROR {
		return moved, fmt.Errorf("%w: draw failed with error 0x%X", glkit.ErrDriver, uint32(code))
	}
	return moved, nil
}

func checkSync(p *probe) (int, error) {
	s := p.dev.NewSync()
	s.SetDebugName("glprobe fence")
	if err := s.Set(); err != nil {
		return 0, err
	}
	if !s.Wait(time.Second) {
		return 0, errors.New("fence not signaled within 1s")
	}
	if s.IsSet() {
		return 0, errors.New("fence still set after Wait")
	}
	return 0, nil
}
