package glkit

import (
	"fmt"
	"time"

	"github.com/gogpu/glkit/driver"
)

// pollQuantum is the client wait timeout of one busy-poll iteration.
const pollQuantum = 100 * time.Nanosecond

// Sync wraps a GPU completion fence. It holds at most one fence at a time:
// Set replaces the fence, Wait and Delete clear it.
//
// The zero state (no fence) counts as signaled.
type Sync struct {
	dev   *Device
	fence driver.Sync
	label string
}

// NewSync returns a Sync with no fence.
func (d *Device) NewSync() *Sync {
	return &Sync{dev: d}
}

// Set deletes any current fence and inserts a new one after the commands
// issued so far.
func (s *Sync) Set() error {
	s.Delete()
	s.fence = s.dev.fns.FenceSync(driver.SYNC_GPU_COMMANDS_COMPLETE, 0)
	if !s.fence.Valid() {
		if err := s.dev.checkError("FenceSync"); err != nil {
			return err
		}
		return fmt.Errorf("%w: FenceSync returned no fence", ErrDriver)
	}
	if s.label != "" {
		s.dev.fns.ObjectPtrLabel(s.fence, s.label)
	}
	return nil
}

// IsSet reports whether a fence is pending.
func (s *Sync) IsSet() bool { return s.fence.Valid() }

// Wait waits for the fence and clears it. It reports whether the fence was
// signaled; a Sync without a fence is signaled.
//
// A zero timeout polls the fence until it signals. A positive timeout
// performs one blocking wait of at most that duration.
func (s *Sync) Wait(timeout time.Duration) bool {
	if !s.fence.Valid() {
		return true
	}
	defer s.Delete()

	if timeout <= 0 {
		for {
			switch s.dev.fns.ClientWaitSync(s.fence, driver.SYNC_FLUSH_COMMANDS_BIT, uint64(pollQuantum)) {
			case driver.ALREADY_SIGNALED, driver.CONDITION_SATISFIED:
				return true
			case driver.WAIT_FAILED:
				s.dev.logger().Warn("glkit: fence wait failed")
				return false
			}
		}
	}

	state := s.dev.fns.ClientWaitSync(s.fence, driver.SYNC_FLUSH_COMMANDS_BIT, uint64(timeout))
	return state == driver.ALREADY_SIGNALED || state == driver.CONDITION_SATISFIED
}

// IsSignaled polls the fence without clearing it.
func (s *Sync) IsSignaled() bool {
	if !s.fence.Valid() {
		return true
	}
	return s.dev.fns.GetSynci(s.fence, driver.SYNC_STATUS) == driver.SIGNALED
}

// Delete clears the fence.
func (s *Sync) Delete() {
	if s.fence.Valid() {
		s.dev.fns.DeleteSync(s.fence)
		s.fence = 0
	}
}

// SetDebugName labels the current fence. The label is kept and applied to
// fences inserted by later calls to Set.
func (s *Sync) SetDebugName(name string) {
	s.label = name
	if s.fence.Valid() {
		s.dev.fns.ObjectPtrLabel(s.fence, name)
	}
}

// objectName is unused for fences; they are labeled by pointer.
func (s *Sync) objectName() (driver.Enum, uint32) { return 0, 0 }
