package shadercache_test

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/glkit"
	"github.com/gogpu/glkit/internal/glfake"
	"github.com/gogpu/glkit/shadercache"
)

const vertexSource = `#version 460 core
layout(location = 0) in vec3 position;
uniform mat4 mvp;
void main() {
    gl_Position = mvp * vec4(position, 1.0);
}
`

const fragmentSource = `#version 460 core
uniform vec4 tint;
out vec4 color;
void main() {
    color = tint;
}
`

func stages() []*glkit.ShaderStageInfo {
	return []*glkit.ShaderStageInfo{
		glkit.StageFromSource(glkit.ShaderVertex, vertexSource),
		glkit.StageFromSource(glkit.ShaderFragment, fragmentSource),
	}
}

func newDevice(t *testing.T) (*glkit.Device, *glfake.Driver) {
	t.Helper()
	fake := glfake.New()
	dev, err := glkit.NewDevice(fake)
	if err != nil {
		t.Fatalf("NewDevice() error = %v", err)
	}
	return dev, fake
}

func openCache(t *testing.T, dir string) *shadercache.Cache {
	t.Helper()
	c, err := shadercache.Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return c
}

func storeProgram(t *testing.T, c *shadercache.Cache, dev *glkit.Device, name string) string {
	t.Helper()
	prog, err := dev.CreateShaderProgram(stages()...)
	if err != nil {
		t.Fatalf("CreateShaderProgram() error = %v", err)
	}
	defer prog.Destroy()
	path, err := c.Store(prog, name)
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	return path
}

// ===== Open =====

func TestOpen_CreatesDirectoryAndIndex(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "shaders")

	c := openCache(t, dir)
	if !c.Enabled {
		t.Error("new cache is disabled")
	}
	if c.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", c.Dir(), dir)
	}
	if _, err := os.Stat(filepath.Join(dir, shadercache.IndexFile)); err != nil {
		t.Fatalf("index not created: %v", err)
	}
	if n := len(c.Programs()); n != 0 {
		t.Errorf("Programs() has %d entries, want 0", n)
	}
}

func TestOpen_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := shadercache.Open(path); err == nil {
		t.Fatal("Open() on a regular file succeeded")
	}
}

func TestOpen_CorruptIndex(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, shadercache.IndexFile), []byte("programs = [[["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := shadercache.Open(dir); err == nil {
		t.Fatal("Open() with a corrupt index succeeded")
	}
}

// ===== Store and Load =====

func TestStore(t *testing.T) {
	dev, _ := newDevice(t)
	dir := t.TempDir()
	c := openCache(t, dir)

	path := storeProgram(t, c, dev, "basic")

	wantPath := filepath.Join(dir, fmt.Sprintf("basic_%d.bin", glfake.BinaryFormat))
	if path != wantPath {
		t.Errorf("Store() path = %q, want %q", path, wantPath)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("binary not written: %v", err)
	}
	if !c.IsCached("basic") {
		t.Fatal("IsCached(basic) = false")
	}
	if got, err := c.Path("basic"); err != nil || got != wantPath {
		t.Errorf("Path() = %q, %v", got, err)
	}

	progs := c.Programs()
	if len(progs) != 1 {
		t.Fatalf("Programs() = %+v", progs)
	}
	p := progs[0]
	if p.Name != "basic" || len(p.Hash) != 64 || p.BinaryFormat != uint32(glfake.BinaryFormat) || p.CreatedAt.IsZero() {
		t.Errorf("entry = %+v", p)
	}
}

func TestStore_Reopen(t *testing.T) {
	dev, _ := newDevice(t)
	dir := t.TempDir()
	c := openCache(t, dir)
	storeProgram(t, c, dev, "a")
	storeProgram(t, c, dev, "b")

	reopened := openCache(t, dir)
	got, want := reopened.Programs(), c.Programs()
	if len(got) != 2 {
		t.Fatalf("reopened Programs() = %+v", got)
	}
	for i := range want {
		if got[i].Name != want[i].Name || got[i].Hash != want[i].Hash || got[i].BinaryFormat != want[i].BinaryFormat {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
		if got[i].CreatedAt.Unix() != want[i].CreatedAt.Unix() {
			t.Errorf("entry %d created at %v, want %v", i, got[i].CreatedAt, want[i].CreatedAt)
		}
	}
}

func TestStore_UnchangedNotRewritten(t *testing.T) {
	dev, _ := newDevice(t)
	c := openCache(t, t.TempDir())
	path := storeProgram(t, c, dev, "basic")

	sentinel := []byte("untouched")
	if err := os.WriteFile(path, sentinel, 0o644); err != nil {
		t.Fatal(err)
	}
	storeProgram(t, c, dev, "basic")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(sentinel) {
		t.Error("unchanged program binary was rewritten")
	}
}

func TestStore_InvalidName(t *testing.T) {
	dev, _ := newDevice(t)
	c := openCache(t, t.TempDir())
	prog, err := dev.CreateShaderProgram(stages()...)
	if err != nil {
		t.Fatal(err)
	}
	defer prog.Destroy()

	for _, name := range []string{"", "a/b", `a\b`, ".."} {
		if _, err := c.Store(prog, name); !errors.Is(err, shadercache.ErrInvalidName) {
			t.Errorf("Store(%q) error = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestStore_NoBinaryFormats(t *testing.T) {
	dev, fake := newDevice(t)
	fake.BinaryFormats = 0
	c := openCache(t, t.TempDir())
	prog, err := dev.CreateShaderProgram(stages()...)
	if err != nil {
		t.Fatal(err)
	}
	defer prog.Destroy()

	if _, err := c.Store(prog, "basic"); !errors.Is(err, glkit.ErrDriver) {
		t.Fatalf("Store() error = %v, want ErrDriver", err)
	}
	if c.IsCached("basic") {
		t.Error("failed store left an index entry")
	}
}

func TestLoad(t *testing.T) {
	dev, fake := newDevice(t)
	c := openCache(t, t.TempDir())
	storeProgram(t, c, dev, "basic")

	prog, err := c.Load(dev, "basic", true)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer prog.Destroy()

	if !fake.ProgramLinked(prog.ID()) {
		t.Error("loaded program not linked")
	}
	want := map[string]int32{"mvp": 0, "tint": 1}
	if got := prog.Uniforms(); !maps.Equal(got, want) {
		t.Errorf("Uniforms() = %v, want %v", got, want)
	}
}

func TestLoad_Errors(t *testing.T) {
	dev, _ := newDevice(t)
	c := openCache(t, t.TempDir())
	path := storeProgram(t, c, dev, "basic")
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := c.Load(dev, "missing", true); !errors.Is(err, shadercache.ErrNotCached) {
		t.Errorf("Load(missing) error = %v, want ErrNotCached", err)
	}
	if _, err := c.Load(dev, "basic", true); !errors.Is(err, shadercache.ErrHashMismatch) {
		t.Errorf("Load(validate) error = %v, want ErrHashMismatch", err)
	}
	if _, err := c.Load(dev, "basic", false); !errors.Is(err, glkit.ErrDriver) {
		t.Errorf("Load(no validate) error = %v, want ErrDriver", err)
	}
}

// ===== LoadOrCreate =====

func TestLoadOrCreate(t *testing.T) {
	dev, fake := newDevice(t)
	c := openCache(t, t.TempDir())

	first, err := c.LoadOrCreate(dev, "basic", stages(), true)
	if err != nil {
		t.Fatalf("first LoadOrCreate() error = %v", err)
	}
	first.Destroy()
	compiles := fake.Calls["CompileShader"]
	if compiles != 2 {
		t.Fatalf("CompileShader calls = %d, want 2", compiles)
	}
	if !c.IsCached("basic") {
		t.Fatal("program not cached after LoadOrCreate")
	}

	second, err := c.LoadOrCreate(dev, "basic", stages(), true)
	if err != nil {
		t.Fatalf("second LoadOrCreate() error = %v", err)
	}
	second.Destroy()
	if fake.Calls["CompileShader"] != compiles {
		t.Error("cached program was recompiled")
	}
	if fake.Live().Total() != 0 {
		t.Errorf("live objects: %+v", fake.Live())
	}
}

func TestLoadOrCreate_RebuildsRejectedEntry(t *testing.T) {
	dev, _ := newDevice(t)
	c := openCache(t, t.TempDir())
	path := storeProgram(t, c, dev, "basic")
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	prog, err := c.LoadOrCreate(dev, "basic", stages(), true)
	if err != nil {
		t.Fatalf("LoadOrCreate() error = %v", err)
	}
	prog.Destroy()

	reloaded, err := c.Load(dev, "basic", true)
	if err != nil {
		t.Fatalf("Load() after rebuild error = %v", err)
	}
	reloaded.Destroy()
}

func TestLoadOrCreate_BuildFailure(t *testing.T) {
	dev, fake := newDevice(t)
	c := openCache(t, t.TempDir())

	bad := []*glkit.ShaderStageInfo{glkit.StageFromSource(glkit.ShaderVertex, "#error broken\nvoid main() {}")}
	if _, err := c.LoadOrCreate(dev, "bad", bad, true); !errors.Is(err, glkit.ErrDriver) {
		t.Fatalf("LoadOrCreate() error = %v, want ErrDriver", err)
	}
	if c.IsCached("bad") {
		t.Error("failed build was cached")
	}
	if fake.Live().Total() != 0 {
		t.Errorf("live objects: %+v", fake.Live())
	}
}

// ===== Disabled and Clear =====

func TestDisabled(t *testing.T) {
	dev, _ := newDevice(t)
	c := openCache(t, t.TempDir())
	c.Enabled = false

	prog, err := c.LoadOrCreate(dev, "basic", stages(), true)
	if err != nil {
		t.Fatalf("LoadOrCreate() error = %v", err)
	}
	defer prog.Destroy()
	if c.IsCached("basic") {
		t.Error("disabled cache stored a program")
	}
	if _, err := c.Store(prog, "basic"); !errors.Is(err, shadercache.ErrDisabled) {
		t.Errorf("Store() error = %v, want ErrDisabled", err)
	}
	if _, err := c.Load(dev, "basic", true); !errors.Is(err, shadercache.ErrDisabled) {
		t.Errorf("Load() error = %v, want ErrDisabled", err)
	}
}

func TestClear(t *testing.T) {
	dev, _ := newDevice(t)
	dir := t.TempDir()
	c := openCache(t, dir)
	pathA := storeProgram(t, c, dev, "a")
	pathB := storeProgram(t, c, dev, "b")

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	for _, p := range []string{pathA, pathB} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("%s still exists after Clear", p)
		}
	}
	if c.IsCached("a") || len(c.Programs()) != 0 {
		t.Error("entries remain after Clear")
	}
	if n := len(openCache(t, dir).Programs()); n != 0 {
		t.Errorf("reopened cache has %d entries", n)
	}
}
