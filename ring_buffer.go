package glkit

import (
	"fmt"
	"time"
)

// RingBuffer rotates through equally sized buffers, each guarded by a
// fence, so the CPU fills one buffer while the GPU reads the others.
//
// A frame acquires the next buffer, writes and transfers it, submits the
// draw calls reading it and then locks it. A locked buffer is handed out
// again only after its fence signals.
type RingBuffer struct {
	buffers []*Buffer
	syncs   []*Sync
	next    int
}

// NewRingBuffer creates count buffers described by desc.
func NewRingBuffer(dev *Device, count int, desc BufferDescriptor) (*RingBuffer, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: ring buffer needs at least one buffer, got %d", ErrInvalidArgument, count)
	}
	r := &RingBuffer{
		buffers: make([]*Buffer, 0, count),
		syncs:   make([]*Sync, count),
	}
	label := desc.Label
	for i := range count {
		if label != "" {
			desc.Label = fmt.Sprintf("%s_%d", label, i)
		}
		buf, err := dev.CreateBuffer(desc)
		if err != nil {
			r.Destroy()
			return nil, err
		}
		r.buffers = append(r.buffers, buf)
		r.syncs[i] = dev.NewSync()
		if label != "" {
			r.syncs[i].SetDebugName(fmt.Sprintf("%s_sync_%d", label, i))
		}
	}
	return r, nil
}

// Count returns the number of buffers.
func (r *RingBuffer) Count() int { return len(r.buffers) }

// BufferSize returns the size of one buffer.
func (r *RingBuffer) BufferSize() int { return r.buffers[0].Size() }

// TotalSize returns the combined size of all buffers.
func (r *RingBuffer) TotalSize() int { return r.BufferSize() * len(r.buffers) }

// Buffers returns the buffers in ring order.
func (r *RingBuffer) Buffers() []*Buffer { return append([]*Buffer(nil), r.buffers...) }

// Current returns the most recently acquired buffer.
func (r *RingBuffer) Current() *Buffer { return r.buffers[r.prev()] }

func (r *RingBuffer) prev() int { return (r.next - 1 + len(r.buffers)) % len(r.buffers) }

// AcquireNext waits for the fence of the next buffer and makes it current.
// A zero timeout polls until the fence signals. It reports whether the
// fence signaled; the buffer becomes current either way.
func (r *RingBuffer) AcquireNext(timeout time.Duration) (*Buffer, bool) {
	ok := r.syncs[r.next].Wait(timeout)
	buf := r.buffers[r.next]
	r.next = (r.next + 1) % len(r.buffers)
	return buf, ok
}

// LockCurrent fences the current buffer after the commands reading it.
func (r *RingBuffer) LockCurrent() error {
	return r.syncs[r.prev()].Set()
}

// IsNextAvailable reports whether the next buffer's fence has signaled.
func (r *RingBuffer) IsNextAvailable() bool { return r.syncs[r.next].IsSignaled() }

// Reset makes the first buffer the next one to be acquired.
func (r *RingBuffer) Reset() { r.next = 0 }

// SetDebugName labels buffer i as name_i and its fence as name_sync_i.
func (r *RingBuffer) SetDebugName(name string) {
	for i, buf := range r.buffers {
		buf.SetDebugName(fmt.Sprintf("%s_%d", name, i))
	}
	for i, s := range r.syncs {
		s.SetDebugName(fmt.Sprintf("%s_sync_%d", name, i))
	}
}

// Destroy deletes every buffer and fence.
func (r *RingBuffer) Destroy() {
	for _, buf := range r.buffers {
		buf.Destroy()
	}
	for _, s := range r.syncs {
		if s != nil {
			s.Delete()
		}
	}
}
