package glkit

import (
	"fmt"
	"math"

	"github.com/gogpu/glkit/driver"
)

// Draw calls read vertices from the bound vertex array and run the program
// in use. Offsets are byte offsets into the bound element or indirect
// buffer. Counts are validated before the call reaches the driver.

func checkCounts(op string, counts ...int) error {
	for _, c := range counts {
		if c < 0 {
			return fmt.Errorf("%w: %s: negative count %d", ErrInvalidArgument, op, c)
		}
		if c > math.MaxInt32 {
			return fmt.Errorf("%w: %s: count %d exceeds int32", ErrInvalidArgument, op, c)
		}
	}
	return nil
}

// DrawArrays renders count vertices starting at first.
func (d *Device) DrawArrays(mode DrawMode, first, count int) error {
	if err := checkCounts("DrawArrays", first, count); err != nil {
		return err
	}
	d.fns.DrawArrays(driver.Enum(mode), int32(first), int32(count)) //nolint:gosec // checked by checkCounts
	return nil
}

// DrawArraysInstanced renders instances copies of a vertex range.
func (d *Device) DrawArraysInstanced(mode DrawMode, first, count, instances int) error {
	if err := checkCounts("DrawArraysInstanced", first, count, instances); err != nil {
		return err
	}
	d.fns.DrawArraysInstanced(driver.Enum(mode), int32(first), int32(count), int32(instances)) //nolint:gosec // checked by checkCounts
	return nil
}

// DrawArraysInstancedBaseInstance is DrawArraysInstanced with an offset
// added to the instance index used for instanced attributes.
func (d *Device) DrawArraysInstancedBaseInstance(mode DrawMode, first, count, instances int, baseInstance uint32) error {
	if err := checkCounts("DrawArraysInstancedBaseInstance", first, count, instances); err != nil {
		return err
	}
	d.fns.DrawArraysInstancedBaseInstance(driver.Enum(mode), int32(first), int32(count), int32(instances), baseInstance) //nolint:gosec // checked by checkCounts
	return nil
}

// DrawElements renders count indices read from the bound element buffer.
func (d *Device) DrawElements(mode DrawMode, count int, typ IndexType, offset int) error {
	if err := checkCounts("DrawElements", count, offset); err != nil {
		return err
	}
	d.fns.DrawElements(driver.Enum(mode), int32(count), driver.Enum(typ), offset) //nolint:gosec // checked by checkCounts
	return nil
}

// DrawElementsBaseVertex is DrawElements with baseVertex added to each
// index.
func (d *Device) DrawElementsBaseVertex(mode DrawMode, count int, typ IndexType, offset, baseVertex int) error {
	if err := checkCounts("DrawElementsBaseVertex", count, offset); err != nil {
		return err
	}
	d.fns.DrawElementsBaseVertex(driver.Enum(mode), int32(count), driver.Enum(typ), offset, int32(baseVertex)) //nolint:gosec // checked by checkCounts
	return nil
}

// DrawElementsInstanced renders instances copies of an indexed range.
func (d *Device) DrawElementsInstanced(mode DrawMode, count int, typ IndexType, offset, instances int) error {
	if err := checkCounts("DrawElementsInstanced", count, offset, instances); err != nil {
		return err
	}
	d.fns.DrawElementsInstanced(driver.Enum(mode), int32(count), driver.Enum(typ), offset, int32(instances)) //nolint:gosec // checked by checkCounts
	return nil
}

// DrawElementsInstancedBaseInstance is DrawElementsInstanced with a base
// instance.
func (d *Device) DrawElementsInstancedBaseInstance(mode DrawMode, count int, typ IndexType, offset, instances int, baseInstance uint32) error {
	if err := checkCounts("DrawElementsInstancedBaseInstance", count, offset, instances); err != nil {
		return err
	}
	d.fns.DrawElementsInstancedBaseInstance(driver.Enum(mode), int32(count), driver.Enum(typ), offset, int32(instances), baseInstance) //nolint:gosec // checked by checkCounts
	return nil
}

// DrawElementsInstancedBaseVertex is DrawElementsInstanced with a base
// vertex.
func (d *Device) DrawElementsInstancedBaseVertex(mode DrawMode, count int, typ IndexType, offset, instances, baseVertex int) error {
	if err := checkCounts("DrawElementsInstancedBaseVertex", count, offset, instances); err != nil {
		return err
	}
	d.fns.DrawElementsInstancedBaseVertex(driver.Enum(mode), int32(count), driver.Enum(typ), offset, int32(instances), int32(baseVertex)) //nolint:gosec // checked by checkCounts
	return nil
}

// DrawElementsInstancedBaseVertexBaseInstance combines a base vertex and a
// base instance.
func (d *Device) DrawElementsInstancedBaseVertexBaseInstance(mode DrawMode, count int, typ IndexType, offset, instances, baseVertex int, baseInstance uint32) error {
	if err := checkCounts("DrawElementsInstancedBaseVertexBaseInstance", count, offset, instances); err != nil {
		return err
	}
	d.fns.DrawElementsInstancedBaseVertexBaseInstance(driver.Enum(mode), int32(count), driver.Enum(typ), offset, //nolint:gosec // checked by checkCounts
		int32(instances), int32(baseVertex), baseInstance) //nolint:gosec // checked by checkCounts
	return nil
}

// DrawArraysIndirect reads a DrawArraysIndirectCommand at offset in the
// bound draw indirect buffer.
func (d *Device) DrawArraysIndirect(mode DrawMode, offset int) error {
	if err := checkCounts("DrawArraysIndirect", offset); err != nil {
		return err
	}
	d.fns.DrawArraysIndirect(driver.Enum(mode), offset)
	return nil
}

// DrawElementsIndirect reads a DrawElementsIndirectCommand at offset in the
// bound draw indirect buffer.
func (d *Device) DrawElementsIndirect(mode DrawMode, typ IndexType, offset int) error {
	if err := checkCounts("DrawElementsIndirect", offset); err != nil {
		return err
	}
	d.fns.DrawElementsIndirect(driver.Enum(mode), driver.Enum(typ), offset)
	return nil
}

// MultiDrawArraysIndirect issues drawCount indirect draws. A stride of 0
// means tightly packed commands.
func (d *Device) MultiDrawArraysIndirect(mode DrawMode, offset, drawCount, stride int) error {
	if err := checkCounts("MultiDrawArraysIndirect", offset, drawCount, stride); err != nil {
		return err
	}
	d.fns.MultiDrawArraysIndirect(driver.Enum(mode), offset, int32(drawCount), int32(stride)) //nolint:gosec // checked by checkCounts
	return nil
}

// MultiDrawElementsIndirect issues drawCount indexed indirect draws.
func (d *Device) MultiDrawElementsIndirect(mode DrawMode, typ IndexType, offset, drawCount, stride int) error {
	if err := checkCounts("MultiDrawElementsIndirect", offset, drawCount, stride); err != nil {
		return err
	}
	d.fns.MultiDrawElementsIndirect(driver.Enum(mode), driver.Enum(typ), offset, int32(drawCount), int32(stride)) //nolint:gosec // checked by checkCounts
	return nil
}
