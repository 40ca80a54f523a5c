package glkit

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gogpu/glkit/driver"
)

// ===== Sync =====

func TestSync_UnsetIsSignaled(t *testing.T) {
	dev, fake := newTestDevice(t)

	s := dev.NewSync()
	if s.IsSet() {
		t.Error("IsSet() = true for a new Sync")
	}
	if !s.IsSignaled() {
		t.Error("IsSignaled() = false without a fence")
	}
	if !s.Wait(0) {
		t.Error("Wait() = false without a fence")
	}
	if fake.Calls["ClientWaitSync"] != 0 {
		t.Error("Wait() without a fence reached the driver")
	}
}

func TestSync_WaitPollsUntilSignaled(t *testing.T) {
	dev, fake := newTestDevice(t)
	fake.FenceLatency = 3

	s := dev.NewSync()
	if err := s.Set(); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if !s.IsSet() {
		t.Fatal("IsSet() = false after Set")
	}
	if s.IsSignaled() {
		t.Error("IsSignaled() = true before the fence latency elapsed")
	}
	if !s.Wait(0) {
		t.Fatal("Wait(0) = false, want true")
	}
	if s.IsSet() {
		t.Error("fence kept after Wait")
	}
	if fake.Live().Syncs != 0 {
		t.Errorf("live fences = %d after Wait, want 0", fake.Live().Syncs)
	}
}

func TestSync_WaitTimeout(t *testing.T) {
	dev, fake := newTestDevice(t)
	fake.FenceLatency = 5

	s := dev.NewSync()
	if err := s.Set(); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if s.Wait(time.Millisecond) {
		t.Error("Wait() = true before the fence signaled")
	}
	if got := fake.Calls["ClientWaitSync"]; got != 1 {
		t.Errorf("ClientWaitSync called %d times, want 1 for a timed wait", got)
	}
	if s.IsSet() {
		t.Error("fence kept after a timed-out Wait")
	}
}

func TestSync_FinishSignals(t *testing.T) {
	dev, fake := newTestDevice(t)
	fake.FenceLatency = 100

	s := dev.NewSync()
	if err := s.Set(); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	dev.Finish()
	if !s.IsSignaled() {
		t.Error("IsSignaled() = false after Finish")
	}
	s.Delete()
	requireNoLeaks(t, fake)
}

func TestSync_SetReplacesFence(t *testing.T) {
	dev, fake := newTestDevice(t)

	s := dev.NewSync()
	for range 3 {
		if err := s.Set(); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
	}
	if fake.Live().Syncs != 1 {
		t.Errorf("live fences = %d, want 1", fake.Live().Syncs)
	}
	s.Delete()
	s.Delete()
	requireNoLeaks(t, fake)
	requireNoGLError(t, fake)
}

func TestSync_DebugNameAppliesToLaterFences(t *testing.T) {
	dev, fake := newTestDevice(t)

	s := dev.NewSync()
	s.SetDebugName("frame")
	if err := s.Set(); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	defer s.Delete()

	if got := fake.SyncLabel(s.fence); got != "frame" {
		t.Errorf("fence label = %q, want %q", got, "frame")
	}
}

// ===== RingBuffer =====

func TestNewRingBuffer_InvalidCount(t *testing.T) {
	dev, _ := newTestDevice(t)

	_, err := NewRingBuffer(dev, 0, BufferDescriptor{Size: 16, Flags: BufferDynamicStorage})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewRingBuffer(0) error = %v, want ErrInvalidArgument", err)
	}
}

func TestNewRingBuffer_CleansUpOnFailure(t *testing.T) {
	dev, fake := newTestDevice(t)
	fake.FailMapping = true

	_, err := NewRingBuffer(dev, 3, BufferDescriptor{Size: 16, Flags: BufferMapWrite | BufferMapPersistent})
	if !errors.Is(err, ErrDriver) {
		t.Fatalf("NewRingBuffer() error = %v, want ErrDriver", err)
	}
	requireNoLeaks(t, fake)
}

func TestRingBuffer_Rotation(t *testing.T) {
	dev, fake := newTestDevice(t)

	ring, err := NewRingBuffer(dev, 3, BufferDescriptor{Label: "ring", Size: 64, Flags: BufferDynamicStorage})
	if err != nil {
		t.Fatalf("NewRingBuffer() error = %v", err)
	}
	defer ring.Destroy()

	if ring.Count() != 3 || ring.BufferSize() != 64 || ring.TotalSize() != 192 {
		t.Errorf("Count/BufferSize/TotalSize = %d/%d/%d, want 3/64/192",
			ring.Count(), ring.BufferSize(), ring.TotalSize())
	}
	buffers := ring.Buffers()
	for i, b := range buffers {
		want := fmt.Sprintf("ring_%d", i)
		if got := fake.Label(driver.BUFFER, uint32(b.ID())); got != want {
			t.Errorf("buffer %d label = %q, want %q", i, got, want)
		}
	}

	for i := range 4 {
		buf, ok := ring.AcquireNext(0)
		if !ok {
			t.Fatalf("AcquireNext() #%d not signaled", i)
		}
		if buf != buffers[i%3] {
			t.Errorf("AcquireNext() #%d returned buffer %d", i, buf.ID())
		}
		if ring.Current() != buf {
			t.Errorf("Current() after AcquireNext() #%d is not the acquired buffer", i)
		}
	}

	ring.Reset()
	if buf, _ := ring.AcquireNext(0); buf != buffers[0] {
		t.Error("AcquireNext() after Reset did not return the first buffer")
	}
}

func TestRingBuffer_LockedBufferWaitsForFence(t *testing.T) {
	dev, fake := newTestDevice(t)
	fake.FenceLatency = 2

	ring, err := NewRingBuffer(dev, 2, BufferDescriptor{Size: 16, Flags: BufferDynamicStorage})
	if err != nil {
		t.Fatalf("NewRingBuffer() error = %v", err)
	}
	defer ring.Destroy()

	for range 2 {
		buf, _ := ring.AcquireNext(0)
		if err := buf.Write([]byte{1, 2, 3, 4}); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		buf.Transfer()
		if err := ring.LockCurrent(); err != nil {
			t.Fatalf("LockCurrent() error = %v", err)
		}
	}

	if ring.IsNextAvailable() {
		t.Error("IsNextAvailable() = true while the first buffer is locked")
	}
	buf, ok := ring.AcquireNext(0)
	if !ok {
		t.Fatal("AcquireNext(0) did not wait for the fence")
	}
	if buf != ring.Buffers()[0] {
		t.Error("AcquireNext() did not wrap around to the first buffer")
	}
	if fake.Live().Syncs != 1 {
		t.Errorf("live fences = %d, want 1 (second buffer still locked)", fake.Live().Syncs)
	}
}

func TestRingBuffer_DestroyReleasesEverything(t *testing.T) {
	dev, fake := newTestDevice(t)

	ring, err := NewRingBuffer(dev, 3, BufferDescriptor{Size: 16, Flags: BufferMapWrite | BufferMapPersistent | BufferMapCoherent})
	if err != nil {
		t.Fatalf("NewRingBuffer() error = %v", err)
	}
	_, _ = ring.AcquireNext(0)
	if err := ring.LockCurrent(); err != nil {
		t.Fatalf("LockCurrent() error = %v", err)
	}
	ring.SetDebugName("uniforms")
	if got := fake.Label(driver.BUFFER, uint32(ring.Buffers()[2].ID())); got != "uniforms_2" {
		t.Errorf("buffer label = %q, want uniforms_2", got)
	}

	ring.Destroy()
	requireNoLeaks(t, fake)
}

// ===== TextureBuffer =====

func TestNewTextureBuffer(t *testing.T) {
	dev, fake := newTestDevice(t)

	tb, err := NewTextureBuffer(dev, 16, FormatRGBA32F, BufferDynamicStorage)
	if err != nil {
		t.Fatalf("NewTextureBuffer() error = %v", err)
	}

	if tb.Width() != 16 || tb.Buffer().Size() != 256 {
		t.Errorf("Width/Buffer().Size = %d/%d, want 16/256", tb.Width(), tb.Buffer().Size())
	}
	info, ok := fake.TextureInfo(tb.Texture().ID())
	if !ok {
		t.Fatal("texture not found in driver")
	}
	if info.Target != driver.TEXTURE_BUFFER || info.Buffer != tb.Buffer().ID() || info.InternalFormat != driver.RGBA32F {
		t.Errorf("texture info = %+v", info)
	}

	if err := tb.Write(countingSeq(32)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n := tb.Transfer(); n != 32 {
		t.Errorf("Transfer() = %d, want 32", n)
	}
	tb.Bind(3)
	if fake.State.TextureUnits[3] != tb.Texture().ID() {
		t.Error("Bind(3) did not bind the texture to unit 3")
	}
	if err := tb.Texture().Upload(NewTextureUploadInfo(PixelRGBA, 1, 1), make([]byte, 4)); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Upload() to buffer texture error = %v, want ErrInvalidState", err)
	}
	if err := tb.Texture().SetParameterInt(ParamMinFilter, int32(FilterLinear)); !errors.Is(err, ErrInvalidState) {
		t.Errorf("SetParameterInt() on buffer texture error = %v, want ErrInvalidState", err)
	}

	tb.Destroy()
	requireNoLeaks(t, fake)
	requireNoGLError(t, fake)
}

func TestNewTextureBuffer_InvalidFormat(t *testing.T) {
	dev, fake := newTestDevice(t)

	tests := []struct {
		name   string
		format InternalFormat
		width  int
	}{
		{"depth", FormatDepth24, 4},
		{"stencil", FormatStencil8, 4},
		{"compressed", FormatBC1RGBA, 4},
		{"unknown", InternalFormat(0x1234), 4},
		{"zero width", FormatR32F, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTextureBuffer(dev, tt.width, tt.format, BufferDynamicStorage)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("NewTextureBuffer() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
	requireNoLeaks(t, fake)
}
