package glkit

import (
	"testing"

	"github.com/gogpu/glkit/driver"
	"github.com/gogpu/glkit/internal/glfake"
)

// newTestDevice returns a Device over a fresh in-memory driver.
func newTestDevice(t *testing.T, opts ...DeviceOption) (*Device, *glfake.Driver) {
	t.Helper()
	fake := glfake.New()
	dev, err := NewDevice(fake, opts...)
	if err != nil {
		t.Fatalf("NewDevice() error = %v", err)
	}
	return dev, fake
}

// requireNoGLError fails the test when the fake driver recorded an error.
func requireNoGLError(t *testing.T, fake *glfake.Driver) {
	t.Helper()
	if code := fake.PendingError(); code != driver.NO_ERROR {
		t.Fatalf("driver error %s pending", errorName(code))
	}
}

// requireNoLeaks fails the test when driver objects are still alive.
func requireNoLeaks(t *testing.T, fake *glfake.Driver) {
	t.Helper()
	if live := fake.Live(); live.Total() != 0 {
		t.Fatalf("live driver objects after cleanup: %+v", live)
	}
}

// countingSeq returns n bytes 0, 1, 2, ...
func countingSeq(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
