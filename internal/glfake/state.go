package glfake

import "github.com/gogpu/glkit/driver"

// Draw is a recorded draw call. Fields that do not apply to the entry point
// are zero.
type Draw struct {
	Name         string
	Mode         driver.Enum
	First        int32
	Count        int32
	Type         driver.Enum
	Offset       int
	Instances    int32
	BaseVertex   int32
	BaseInstance uint32
	DrawCount    int32
	Stride       int32

	Program     driver.Program
	VertexArray driver.VertexArray
	Framebuffer driver.Framebuffer
}

func (d *Driver) Enable(capability driver.Enum) {
	d.call("Enable")
	d.State.Enabled[capability] = true
}

func (d *Driver) Disable(capability driver.Enum) {
	d.call("Disable")
	delete(d.State.Enabled, capability)
}

func (d *Driver) BlendFunc(src, dst driver.Enum) {
	d.call("BlendFunc")
	d.State.BlendSrcRGB, d.State.BlendDstRGB = src, dst
	d.State.BlendSrcAlpha, d.State.BlendDstAlpha = src, dst
}

func (d *Driver) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha driver.Enum) {
	d.call("BlendFuncSeparate")
	d.State.BlendSrcRGB, d.State.BlendDstRGB = srcRGB, dstRGB
	d.State.BlendSrcAlpha, d.State.BlendDstAlpha = srcAlpha, dstAlpha
}

func (d *Driver) BlendEquation(mode driver.Enum) {
	d.call("BlendEquation")
	switch mode {
	case driver.FUNC_ADD, driver.FUNC_SUBTRACT, driver.FUNC_REVERSE_SUBTRACT, driver.MIN, driver.MAX:
		d.State.BlendEquation = mode
	default:
		d.fail(driver.INVALID_ENUM, "BlendEquation: mode 0x%X", uint32(mode))
	}
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	d.call("ClearColor")
	d.State.ClearColor = [4]float32{r, g, b, a}
}

func (d *Driver) Clear(mask driver.Enum) {
	d.call("Clear")
	if mask&^(driver.COLOR_BUFFER_BIT|driver.DEPTH_BUFFER_BIT|driver.STENCIL_BUFFER_BIT) != 0 {
		d.fail(driver.INVALID_VALUE, "Clear: mask 0x%X", uint32(mask))
		return
	}
	d.State.LastClear = mask
}

func (d *Driver) Scissor(x, y, width, height int32) {
	d.call("Scissor")
	if width < 0 || height < 0 {
		d.fail(driver.INVALID_VALUE, "Scissor: size %dx%d", width, height)
		return
	}
	d.State.Scissor = [4]int32{x, y, width, height}
}

func (d *Driver) Viewport(x, y, width, height int32) {
	d.call("Viewport")
	if width < 0 || height < 0 {
		d.fail(driver.INVALID_VALUE, "Viewport: size %dx%d", width, height)
		return
	}
	d.State.Viewport = [4]int32{x, y, width, height}
}

func (d *Driver) PolygonMode(face, mode driver.Enum) {
	d.call("PolygonMode")
	if face != driver.FRONT_AND_BACK {
		d.fail(driver.INVALID_ENUM, "PolygonMode: face 0x%X", uint32(face))
		return
	}
	d.State.PolygonMode[face] = mode
}

func (d *Driver) DepthMask(enabled bool) {
	d.call("DepthMask")
	d.State.DepthMask = enabled
}

func (d *Driver) CullFace(mode driver.Enum) {
	d.call("CullFace")
	d.State.CullFace = mode
}

func (d *Driver) FrontFace(mode driver.Enum) {
	d.call("FrontFace")
	d.State.FrontFace = mode
}

func (d *Driver) ColorMask(r, g, b, a bool) {
	d.call("ColorMask")
	d.State.ColorMask = [4]bool{r, g, b, a}
}

func (d *Driver) MemoryBarrier(barriers driver.Enum) {
	d.call("MemoryBarrier")
	d.State.Barriers = append(d.State.Barriers, barriers)
}

func (d *Driver) MemoryBarrierByRegion(barriers driver.Enum) {
	d.call("MemoryBarrierByRegion")
	d.State.RegionBarriers = append(d.State.RegionBarriers, barriers)
}

func (d *Driver) Flush() {
	d.call("Flush")
	d.State.Flushes++
}

// Finish signals every pending fence.
func (d *Driver) Finish() {
	d.call("Finish")
	d.State.Finishes++
	for _, f := range d.syncs {
		f.remaining = 0
	}
}

func (d *Driver) draw(dc Draw) {
	d.call(dc.Name)
	if dc.Count < 0 || dc.Instances < 0 || dc.DrawCount < 0 {
		d.fail(driver.INVALID_VALUE, "%s: negative count", dc.Name)
		return
	}
	if d.State.Program == 0 {
		d.fail(driver.INVALID_OPERATION, "%s: no program in use", dc.Name)
		return
	}
	dc.Program = d.State.Program
	dc.VertexArray = d.State.VertexArray
	dc.Framebuffer = d.State.Framebuffers[driver.DRAW_FRAMEBUFFER]
	d.Draws = append(d.Draws, dc)
}

func (d *Driver) DrawArrays(mode driver.Enum, first, count int32) {
	d.draw(Draw{Name: "DrawArrays", Mode: mode, First: first, Count: count, Instances: 1})
}

func (d *Driver) DrawArraysInstanced(mode driver.Enum, first, count, instances int32) {
	d.draw(Draw{Name: "DrawArraysInstanced", Mode: mode, First: first, Count: count, Instances: instances})
}

func (d *Driver) DrawArraysInstancedBaseInstance(mode driver.Enum, first, count, instances int32, baseInstance uint32) {
	d.draw(Draw{Name: "DrawArraysInstancedBaseInstance", Mode: mode, First: first, Count: count,
		Instances: instances, BaseInstance: baseInstance})
}

func (d *Driver) DrawElements(mode driver.Enum, count int32, typ driver.Enum, offset int) {
	d.draw(Draw{Name: "DrawElements", Mode: mode, Count: count, Type: typ, Offset: offset, Instances: 1})
}

func (d *Driver) DrawElementsBaseVertex(mode driver.Enum, count int32, typ driver.Enum, offset int, baseVertex int32) {
	d.draw(Draw{Name: "DrawElementsBaseVertex", Mode: mode, Count: count, Type: typ, Offset: offset,
		Instances: 1, BaseVertex: baseVertex})
}

func (d *Driver) DrawElementsInstanced(mode driver.Enum, count int32, typ driver.Enum, offset int, instances int32) {
	d.draw(Draw{Name: "DrawElementsInstanced", Mode: mode, Count: count, Type: typ, Offset: offset,
		Instances: instances})
}

func (d *Driver) DrawElementsInstancedBaseInstance(mode driver.Enum, count int32, typ driver.Enum, offset int, instances int32, baseInstance uint32) {
	d.draw(Draw{Name: "DrawElementsInstancedBaseInstance", Mode: mode, Count: count, Type: typ, Offset: offset,
		Instances: instances, BaseInstance: baseInstance})
}

func (d *Driver) DrawElementsInstancedBaseVertex(mode driver.Enum, count int32, typ driver.Enum, offset int, instances, baseVertex int32) {
	d.draw(Draw{Name: "DrawElementsInstancedBaseVertex", Mode: mode, Count: count, Type: typ, Offset: offset,
		Instances: instances, BaseVertex: baseVertex})
}

func (d *Driver) DrawElementsInstancedBaseVertexBaseInstance(mode driver.Enum, count int32, typ driver.Enum, offset int, instances, baseVertex int32, baseInstance uint32) {
	d.draw(Draw{Name: "DrawElementsInstancedBaseVertexBaseInstance", Mode: mode, Count: count, Type: typ,
		Offset: offset, Instances: instances, BaseVertex: baseVertex, BaseInstance: baseInstance})
}

func (d *Driver) DrawArraysIndirect(mode driver.Enum, offset int) {
	d.draw(Draw{Name: "DrawArraysIndirect", Mode: mode, Offset: offset, DrawCount: 1})
}

func (d *Driver) DrawElementsIndirect(mode, typ driver.Enum, offset int) {
	d.draw(Draw{Name: "DrawElementsIndirect", Mode: mode, Type: typ, Offset: offset, DrawCount: 1})
}

func (d *Driver) MultiDrawArraysIndirect(mode driver.Enum, offset int, drawCount, stride int32) {
	d.draw(Draw{Name: "MultiDrawArraysIndirect", Mode: mode, Offset: offset, DrawCount: drawCount, Stride: stride})
}

func (d *Driver) MultiDrawElementsIndirect(mode, typ driver.Enum, offset int, drawCount, stride int32) {
	d.draw(Draw{Name: "MultiDrawElementsIndirect", Mode: mode, Type: typ, Offset: offset,
		DrawCount: drawCount, Stride: stride})
}
