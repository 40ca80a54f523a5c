package glkit

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/glkit/driver"
	"github.com/gogpu/glkit/internal/glfake"
)

func TestDraw_RecordsCalls(t *testing.T) {
	dev, fake := newTestDevice(t)

	p := newTestProgram(t, dev)
	defer p.Destroy()
	va, err := dev.CreateVertexArray(nil, nil)
	if err != nil {
		t.Fatalf("CreateVertexArray() error = %v", err)
	}
	defer va.Destroy()

	p.Use()
	va.Bind()

	tri := driver.Enum(DrawTriangles)
	u16 := driver.Enum(IndexUint16)
	tests := []struct {
		name string
		draw func() error
		want glfake.Draw
	}{
		{"arrays", func() error { return dev.DrawArrays(DrawTriangles, 3, 6) },
			glfake.Draw{Name: "DrawArrays", Mode: tri, First: 3, Count: 6, Instances: 1}},
		{"arrays instanced", func() error { return dev.DrawArraysInstanced(DrawPoints, 0, 4, 10) },
			glfake.Draw{Name: "DrawArraysInstanced", Mode: driver.POINTS, Count: 4, Instances: 10}},
		{"arrays base instance", func() error { return dev.DrawArraysInstancedBaseInstance(DrawTriangles, 0, 3, 2, 5) },
			glfake.Draw{Name: "DrawArraysInstancedBaseInstance", Mode: tri, Count: 3, Instances: 2, BaseInstance: 5}},
		{"elements", func() error { return dev.DrawElements(DrawTriangles, 6, IndexUint16, 12) },
			glfake.Draw{Name: "DrawElements", Mode: tri, Count: 6, Type: u16, Offset: 12, Instances: 1}},
		{"elements base vertex", func() error { return dev.DrawElementsBaseVertex(DrawTriangles, 6, IndexUint16, 0, -4) },
			glfake.Draw{Name: "DrawElementsBaseVertex", Mode: tri, Count: 6, Type: u16, Instances: 1, BaseVertex: -4}},
		{"elements instanced", func() error { return dev.DrawElementsInstanced(DrawLines, 2, IndexUint32, 8, 3) },
			glfake.Draw{Name: "DrawElementsInstanced", Mode: driver.LINES, Count: 2, Type: driver.UNSIGNED_INT, Offset: 8, Instances: 3}},
		{"elements base instance", func() error {
			return dev.DrawElementsInstancedBaseInstance(DrawTriangles, 3, IndexUint8, 0, 4, 1)
		}, glfake.Draw{Name: "DrawElementsInstancedBaseInstance", Mode: tri, Count: 3, Type: driver.UNSIGNED_BYTE, Instances: 4, BaseInstance: 1}},
		{"elements instanced base vertex", func() error {
			return dev.DrawElementsInstancedBaseVertex(DrawTriangles, 3, IndexUint16, 6, 2, 9)
		}, glfake.Draw{Name: "DrawElementsInstancedBaseVertex", Mode: tri, Count: 3, Type: u16, Offset: 6, Instances: 2, BaseVertex: 9}},
		{"elements base vertex base instance", func() error {
			return dev.DrawElementsInstancedBaseVertexBaseInstance(DrawTriangles, 3, IndexUint16, 0, 2, 1, 7)
		}, glfake.Draw{Name: "DrawElementsInstancedBaseVertexBaseInstance", Mode: tri, Count: 3, Type: u16, Instances: 2, BaseVertex: 1, BaseInstance: 7}},
		{"arrays indirect", func() error { return dev.DrawArraysIndirect(DrawTriangles, 16) },
			glfake.Draw{Name: "DrawArraysIndirect", Mode: tri, Offset: 16, DrawCount: 1}},
		{"elements indirect", func() error { return dev.DrawElementsIndirect(DrawTriangles, IndexUint32, 0) },
			glfake.Draw{Name: "DrawElementsIndirect", Mode: tri, Type: driver.UNSIGNED_INT, DrawCount: 1}},
		{"multi arrays indirect", func() error { return dev.MultiDrawArraysIndirect(DrawTriangles, 0, 4, 16) },
			glfake.Draw{Name: "MultiDrawArraysIndirect", Mode: tri, DrawCount: 4, Stride: 16}},
		{"multi elements indirect", func() error { return dev.MultiDrawElementsIndirect(DrawTriangles, IndexUint16, 40, 2, 20) },
			glfake.Draw{Name: "MultiDrawElementsIndirect", Mode: tri, Type: u16, Offset: 40, DrawCount: 2, Stride: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake.Draws = nil
			if err := tt.draw(); err != nil {
				t.Fatalf("draw error = %v", err)
			}
			if len(fake.Draws) != 1 {
				t.Fatalf("recorded %d draws, want 1", len(fake.Draws))
			}
			want := tt.want
			want.Program, want.VertexArray = p.ID(), va.ID()
			if got := fake.Draws[0]; got != want {
				t.Errorf("draw = %+v, want %+v", got, want)
			}
			requireNoGLError(t, fake)
		})
	}
}

func TestDraw_InvalidCounts(t *testing.T) {
	dev, fake := newTestDevice(t)

	p := newTestProgram(t, dev)
	defer p.Destroy()
	p.Use()

	tests := []struct {
		name string
		draw func() error
	}{
		{"negative count", func() error { return dev.DrawArrays(DrawTriangles, 0, -3) }},
		{"negative first", func() error { return dev.DrawArrays(DrawTriangles, -1, 3) }},
		{"count overflow", func() error { return dev.DrawArrays(DrawTriangles, 0, math.MaxInt32+1) }},
		{"negative instances", func() error { return dev.DrawArraysInstanced(DrawTriangles, 0, 3, -1) }},
		{"negative offset", func() error { return dev.DrawElements(DrawTriangles, 3, IndexUint16, -2) }},
		{"negative draw count", func() error { return dev.MultiDrawArraysIndirect(DrawTriangles, 0, -1, 0) }},
		{"negative stride", func() error { return dev.MultiDrawElementsIndirect(DrawTriangles, IndexUint32, 0, 1, -4) }},
		{"negative indirect offset", func() error { return dev.DrawArraysIndirect(DrawTriangles, -16) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.draw(); !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("draw error = %v, want ErrInvalidArgument", err)
			}
		})
	}
	if len(fake.Draws) != 0 {
		t.Errorf("invalid draws reached the driver: %+v", fake.Draws)
	}
}

func TestDraw_WithoutProgram(t *testing.T) {
	dev, fake := newTestDevice(t)

	if err := dev.DrawArrays(DrawTriangles, 0, 3); err != nil {
		t.Fatalf("DrawArrays() error = %v", err)
	}
	if code := fake.GetError(); code != driver.INVALID_OPERATION {
		t.Errorf("GetError() = 0x%X, want INVALID_OPERATION", uint32(code))
	}
}
