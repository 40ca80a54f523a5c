package glfake

import (
	"bytes"
	"testing"

	"github.com/gogpu/glkit/driver"
)

func TestDriver_FirstErrorWins(t *testing.T) {
	d := New()

	d.Viewport(0, 0, -1, 1)
	d.BlendEquation(driver.Enum(0xDEAD))
	if got := d.PendingError(); got != driver.INVALID_VALUE {
		t.Fatalf("PendingError() = 0x%X, want INVALID_VALUE", uint32(got))
	}
	if got := d.GetError(); got != driver.INVALID_VALUE {
		t.Errorf("GetError() = 0x%X, want INVALID_VALUE", uint32(got))
	}
	if got := d.GetError(); got != driver.NO_ERROR {
		t.Errorf("second GetError() = 0x%X, want NO_ERROR", uint32(got))
	}
	if d.Calls["GetError"] != 2 {
		t.Errorf("Calls[GetError] = %d, want 2", d.Calls["GetError"])
	}
}

func TestDriver_BufferStorage(t *testing.T) {
	d := New()

	b := d.CreateBuffer()
	d.NamedBufferStorage(b, 8, []byte{1, 2, 3}, driver.DYNAMIC_STORAGE_BIT)
	d.NamedBufferSubData(b, 4, []byte{9, 9})

	got := make([]byte, 8)
	d.GetNamedBufferSubData(b, 0, got)
	if want := []byte{1, 2, 3, 0, 9, 9, 0, 0}; !bytes.Equal(got, want) {
		t.Errorf("contents = %v, want %v", got, want)
	}
	if d.PendingError() != driver.NO_ERROR {
		t.Fatalf("unexpected error 0x%X", uint32(d.PendingError()))
	}

	d.NamedBufferStorage(b, 8, nil, 0)
	if got := d.GetError(); got != driver.INVALID_OPERATION {
		t.Errorf("respecifying storage error = 0x%X, want INVALID_OPERATION", uint32(got))
	}
	d.NamedBufferSubData(b, 6, []byte{1, 2, 3})
	if got := d.GetError(); got != driver.INVALID_VALUE {
		t.Errorf("out of range write error = 0x%X, want INVALID_VALUE", uint32(got))
	}

	d.DeleteBuffer(b)
	if d.Live().Total() != 0 {
		t.Errorf("Live() = %+v after delete", d.Live())
	}
}

func TestDriver_StorageFlagRules(t *testing.T) {
	tests := []struct {
		name  string
		flags driver.Enum
	}{
		{"persistent without access", driver.MAP_PERSISTENT_BIT},
		{"coherent without persistent", driver.MAP_WRITE_BIT | driver.MAP_COHERENT_BIT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			b := d.CreateBuffer()
			d.NamedBufferStorage(b, 4, nil, tt.flags)
			if got := d.GetError(); got != driver.INVALID_VALUE {
				t.Errorf("error = 0x%X, want INVALID_VALUE", uint32(got))
			}
		})
	}
}

func TestDriver_FenceLatency(t *testing.T) {
	d := New()
	d.FenceLatency = 2

	s := d.FenceSync(driver.SYNC_GPU_COMMANDS_COMPLETE, 0)
	if got := d.ClientWaitSync(s, 0, 0); got != driver.TIMEOUT_EXPIRED {
		t.Errorf("first wait = 0x%X, want TIMEOUT_EXPIRED", uint32(got))
	}
	if got := d.ClientWaitSync(s, 0, 0); got != driver.CONDITION_SATISFIED {
		t.Errorf("second wait = 0x%X, want CONDITION_SATISFIED", uint32(got))
	}
	if got := d.ClientWaitSync(s, 0, 0); got != driver.ALREADY_SIGNALED {
		t.Errorf("third wait = 0x%X, want ALREADY_SIGNALED", uint32(got))
	}

	other := d.FenceSync(driver.SYNC_GPU_COMMANDS_COMPLETE, 0)
	d.Finish()
	if got := d.GetSynci(other, driver.SYNC_STATUS); got != driver.SIGNALED {
		t.Errorf("status after Finish = 0x%X, want SIGNALED", uint32(got))
	}

	d.DeleteSync(s)
	if got := d.ClientWaitSync(s, 0, 0); got != driver.WAIT_FAILED {
		t.Errorf("wait on deleted fence = 0x%X, want WAIT_FAILED", uint32(got))
	}
}

func TestDriver_DebugOutput(t *testing.T) {
	d := New()

	var got []string
	d.DebugMessageCallback(func(_, _ driver.Enum, _ uint32, _ driver.Enum, message string) {
		got = append(got, message)
	})

	d.DebugMessageInsert(driver.DEBUG_SOURCE_APPLICATION, driver.DEBUG_TYPE_MARKER, 1,
		driver.DEBUG_SEVERITY_LOW, "dropped")
	if len(got) != 0 {
		t.Fatal("message delivered with DEBUG_OUTPUT disabled")
	}

	d.Enable(driver.DEBUG_OUTPUT)
	d.DebugMessageInsert(driver.DEBUG_SOURCE_APPLICATION, driver.DEBUG_TYPE_MARKER, 1,
		driver.DEBUG_SEVERITY_LOW, "frame")
	d.Clear(driver.Enum(0x1))
	if len(got) != 2 || got[0] != "frame" {
		t.Fatalf("messages = %q", got)
	}
	if m := d.Messages[1]; m.Source != driver.DEBUG_SOURCE_API || m.Type != driver.DEBUG_TYPE_ERROR ||
		m.Severity != driver.DEBUG_SEVERITY_HIGH || m.ID != uint32(driver.INVALID_VALUE) {
		t.Errorf("error message = %+v", m)
	}
}

func TestDriver_Labels(t *testing.T) {
	d := New()

	v := d.CreateVertexArray()
	d.ObjectLabel(driver.VERTEX_ARRAY, uint32(v), "quad")
	if got := d.Label(driver.VERTEX_ARRAY, uint32(v)); got != "quad" {
		t.Errorf("Label() = %q, want quad", got)
	}

	d.ObjectLabel(driver.BUFFER, 4242, "missing")
	if got := d.GetError(); got != driver.INVALID_VALUE {
		t.Errorf("labeling a missing object error = 0x%X, want INVALID_VALUE", uint32(got))
	}

	s := d.FenceSync(driver.SYNC_GPU_COMMANDS_COMPLETE, 0)
	d.ObjectPtrLabel(s, "frame fence")
	if got := d.SyncLabel(s); got != "frame fence" {
		t.Errorf("SyncLabel() = %q", got)
	}
}
