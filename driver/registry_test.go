package driver_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/glkit/driver"
	"github.com/gogpu/glkit/internal/glfake"
)

// register adds a factory for the duration of the test.
func register(t *testing.T, name string, factory driver.Factory) {
	t.Helper()
	driver.Register(name, factory)
	t.Cleanup(func() { driver.Unregister(name) })
}

func TestRegistryRegisterAndGet(t *testing.T) {
	fake := glfake.New()
	register(t, "test-fake", func() (driver.Functions, error) { return fake, nil })

	if !driver.IsRegistered("test-fake") {
		t.Fatal("test-fake not registered")
	}
	if !slices.Contains(driver.Available(), "test-fake") {
		t.Errorf("Available() = %v, missing test-fake", driver.Available())
	}

	fns, err := driver.Get("test-fake")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if fns != fake {
		t.Error("Get() returned a different function table")
	}

	driver.Unregister("test-fake")
	if driver.IsRegistered("test-fake") {
		t.Error("test-fake still registered after Unregister")
	}
	if _, err := driver.Get("test-fake"); !errors.Is(err, driver.ErrNoDriver) {
		t.Errorf("Get() after Unregister error = %v, want ErrNoDriver", err)
	}
}

func TestRegistryReplace(t *testing.T) {
	first, second := glfake.New(), glfake.New()
	register(t, "test-replace", func() (driver.Functions, error) { return first, nil })
	register(t, "test-replace", func() (driver.Functions, error) { return second, nil })

	fns, err := driver.Get("test-replace")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if fns != second {
		t.Error("second registration did not replace the first")
	}
}

func TestRegistryAvailableSorted(t *testing.T) {
	register(t, "test-b", func() (driver.Functions, error) { return glfake.New(), nil })
	register(t, "test-a", func() (driver.Functions, error) { return glfake.New(), nil })

	names := driver.Available()
	if !slices.IsSorted(names) {
		t.Errorf("Available() = %v, not sorted", names)
	}
}

func TestRegistryDefault(t *testing.T) {
	loadErr := errors.New("no context")
	fake := glfake.New()
	register(t, "test-1-broken", func() (driver.Functions, error) { return nil, loadErr })
	register(t, "test-2-working", func() (driver.Functions, error) { return fake, nil })

	fns, err := driver.Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if fns != fake {
		t.Error("Default() did not fall back to the working driver")
	}
}

func TestRegistryDefaultAllFail(t *testing.T) {
	for _, name := range driver.Available() {
		if !strings.HasPrefix(name, "test-") {
			t.Skipf("driver %q registered outside the test", name)
		}
	}
	loadErr := errors.New("no context")
	register(t, "test-only", func() (driver.Functions, error) { return nil, loadErr })

	_, err := driver.Default()
	if !errors.Is(err, driver.ErrNoDriver) || !errors.Is(err, loadErr) {
		t.Fatalf("Default() error = %v, want ErrNoDriver joined with the load error", err)
	}
	if !strings.Contains(err.Error(), "test-only") {
		t.Errorf("error %q does not name the failed driver", err)
	}
}
