package glfake

import "github.com/gogpu/glkit/driver"

type fence struct {
	remaining int
}

func (f *fence) poll() bool {
	if f.remaining > 0 {
		f.remaining--
	}
	return f.remaining == 0
}

func (d *Driver) FenceSync(condition, flags driver.Enum) driver.Sync {
	d.call("FenceSync")
	if condition != driver.SYNC_GPU_COMMANDS_COMPLETE || flags != 0 {
		d.fail(driver.INVALID_ENUM, "FenceSync: condition 0x%X flags 0x%X", uint32(condition), uint32(flags))
		return 0
	}
	s := driver.Sync(d.name())
	d.syncs[s] = &fence{remaining: d.FenceLatency}
	return s
}

func (d *Driver) DeleteSync(s driver.Sync) {
	d.call("DeleteSync")
	if !s.Valid() {
		return
	}
	if _, ok := d.syncs[s]; !ok {
		d.fail(driver.INVALID_VALUE, "DeleteSync: not a sync object")
		return
	}
	delete(d.syncs, s)
	delete(d.labels, label{0, uint64(s)})
}

// ClientWaitSync counts as one poll of the fence regardless of the timeout.
func (d *Driver) ClientWaitSync(s driver.Sync, flags driver.Enum, timeoutNs uint64) driver.Enum {
	d.call("ClientWaitSync")
	f, ok := d.syncs[s]
	if !ok {
		d.fail(driver.INVALID_VALUE, "ClientWaitSync: not a sync object")
		return driver.WAIT_FAILED
	}
	if f.remaining == 0 {
		return driver.ALREADY_SIGNALED
	}
	if f.poll() {
		return driver.CONDITION_SATISFIED
	}
	return driver.TIMEOUT_EXPIRED
}

func (d *Driver) GetSynci(s driver.Sync, pname driver.Enum) int32 {
	d.call("GetSynci")
	f, ok := d.syncs[s]
	if !ok {
		d.fail(driver.INVALID_VALUE, "GetSynci: not a sync object")
		return 0
	}
	if pname != driver.SYNC_STATUS {
		d.fail(driver.INVALID_ENUM, "GetSynci: pname 0x%X", uint32(pname))
		return 0
	}
	if f.poll() {
		return driver.SIGNALED
	}
	return driver.UNSIGNALED
}
