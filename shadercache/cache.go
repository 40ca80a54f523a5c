// Package shadercache stores linked program binaries on disk so later runs
// can skip GLSL compilation and linking.
//
// A cache directory holds one binary per program, named
// {name}_{format}.bin, and a TOML index (cache.toml) recording the
// BLAKE2b-256 hash, the driver binary format and the creation time of each
// entry. Program binaries are driver specific: an entry written by one
// driver fails to load on another, and [Cache.LoadOrCreate] then rebuilds it.
//
// A Cache is not safe for concurrent use. Like the programs it creates, use
// it from the goroutine that owns the GL context.
package shadercache

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/gogpu/glkit"
)

// IndexFile is the name of the index inside the cache directory.
const IndexFile = "cache.toml"

var (
	// ErrDisabled is returned by cache operations while the cache is disabled.
	ErrDisabled = errors.New("shadercache: cache is disabled")

	// ErrNotCached is returned when no entry exists for a program name.
	ErrNotCached = errors.New("shadercache: program not cached")

	// ErrHashMismatch is returned when a stored binary does not match the
	// hash recorded in the index.
	ErrHashMismatch = errors.New("shadercache: binary hash mismatch")

	// ErrInvalidName is returned for empty names or names containing a
	// path separator.
	ErrInvalidName = errors.New("shadercache: invalid program name")
)

// Program is one index entry.
type Program struct {
	Name         string    `toml:"name"`
	Hash         string    `toml:"hash"`
	CreatedAt    time.Time `toml:"created_at"`
	BinaryFormat uint32    `toml:"binary_format"`
}

// DataFile returns the file name of the entry's binary, relative to the
// cache directory.
func (p Program) DataFile() string {
	return fmt.Sprintf("%s_%d.bin", p.Name, p.BinaryFormat)
}

type index struct {
	Programs []Program `toml:"programs"`
}

// Cache is an on-disk program binary cache.
type Cache struct {
	// Enabled switches the cache on and off. While disabled, Load and Store
	// fail with ErrDisabled and LoadOrCreate always builds from source.
	Enabled bool

	dir      string
	programs map[string]*Program
}

// Open opens the cache in dir, creating the directory and an empty index
// when they do not exist.
func Open(dir string) (*Cache, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("shadercache: %w", err)
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		glkit.Logger().Info("shadercache: creating cache directory", "dir", abs)
		if err := os.MkdirAll(abs, 0o755); err != nil {
			return nil, fmt.Errorf("shadercache: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("shadercache: %w", err)
	case !info.IsDir():
		return nil, fmt.Errorf("shadercache: %s is not a directory", abs)
	}

	c := &Cache{Enabled: true, dir: abs, programs: make(map[string]*Program)}
	if _, err := os.Stat(c.IndexPath()); errors.Is(err, fs.ErrNotExist) {
		glkit.Logger().Info("shadercache: creating index", "path", c.IndexPath())
		if err := c.saveIndex(); err != nil {
			return nil, err
		}
	}
	if err := c.loadIndex(); err != nil {
		return nil, err
	}
	return c, nil
}

// Dir returns the absolute cache directory.
func (c *Cache) Dir() string { return c.dir }

// IndexPath returns the absolute path of the index file.
func (c *Cache) IndexPath() string { return filepath.Join(c.dir, IndexFile) }

// IsCached reports whether the index has an entry for name.
func (c *Cache) IsCached(name string) bool {
	_, ok := c.programs[name]
	return ok
}

// Path returns the absolute path of the binary cached under name.
func (c *Cache) Path(name string) (string, error) {
	p, ok := c.programs[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotCached, name)
	}
	return c.dataPath(p), nil
}

// Programs returns a copy of the index entries sorted by name.
func (c *Cache) Programs() []Program {
	out := make([]Program, 0, len(c.programs))
	for _, p := range c.programs {
		out = append(out, *p)
	}
	slices.SortFunc(out, func(a, b Program) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Load creates a program from the binary cached under name. With
// validateHash the binary is checked against the index first.
func (c *Cache) Load(dev *glkit.Device, name string, validateHash bool) (*glkit.ShaderProgram, error) {
	if !c.Enabled {
		return nil, ErrDisabled
	}
	p, ok := c.programs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotCached, name)
	}

	binary, err := os.ReadFile(c.dataPath(p))
	if err != nil {
		return nil, fmt.Errorf("shadercache: %w", err)
	}
	if validateHash {
		if got := hashBinary(binary); got != p.Hash {
			return nil, fmt.Errorf("%w: %q has %s, index has %s", ErrHashMismatch, name, got, p.Hash)
		}
	}

	prog, err := dev.ShaderProgramFromBinary(binary, p.BinaryFormat)
	if err != nil {
		return nil, fmt.Errorf("shadercache: load %q: %w", name, err)
	}
	prog.SetDebugName(name)
	return prog, nil
}

// Store writes the binary of prog under name and returns the path of the
// data file. An entry whose hash is unchanged is not rewritten.
func (c *Cache) Store(prog *glkit.ShaderProgram, name string) (string, error) {
	if !c.Enabled {
		return "", ErrDisabled
	}
	if err := checkName(name); err != nil {
		return "", err
	}

	binary, format, err := prog.Binary()
	if err != nil {
		return "", fmt.Errorf("shadercache: store %q: %w", name, err)
	}
	hash := hashBinary(binary)

	p, ok := c.programs[name]
	switch {
	case ok && p.Hash == hash && p.BinaryFormat == format:
		glkit.Logger().Info("shadercache: program already cached", "name", name)
		return c.dataPath(p), nil
	case ok:
		glkit.Logger().Info("shadercache: program binary changed, replacing entry", "name", name)
		if p.BinaryFormat != format {
			c.removeData(p)
		}
		p.Hash, p.BinaryFormat, p.CreatedAt = hash, format, time.Now()
	default:
		p = &Program{Name: name, Hash: hash, BinaryFormat: format, CreatedAt: time.Now()}
		c.programs[name] = p
	}

	path := c.dataPath(p)
	glkit.Logger().Debug("shadercache: writing program binary", "path", path, "bytes", len(binary))
	if err := os.WriteFile(path, binary, 0o644); err != nil {
		return "", fmt.Errorf("shadercache: %w", err)
	}
	if err := c.saveIndex(); err != nil {
		return "", err
	}
	glkit.Logger().Info("shadercache: program cached", "name", name, "format", format)
	return path, nil
}

// LoadOrCreate returns the program cached under name, or builds it from
// stages and caches it. A cached entry that cannot be loaded (missing file,
// hash mismatch, binary rejected by the driver) is rebuilt and replaced.
// With the cache disabled the program is always built from stages.
func (c *Cache) LoadOrCreate(dev *glkit.Device, name string, stages []*glkit.ShaderStageInfo, validateHash bool) (*glkit.ShaderProgram, error) {
	if !c.Enabled {
		return dev.CreateShaderProgram(stages...)
	}

	if c.IsCached(name) {
		prog, err := c.Load(dev, name, validateHash)
		if err == nil {
			glkit.Logger().Info("shadercache: using cached program", "name", name)
			return prog, nil
		}
		glkit.Logger().Warn("shadercache: cache entry rejected", "name", name, "err", err)
	} else {
		glkit.Logger().Info("shadercache: program not cached, building", "name", name)
	}

	prog, err := dev.CreateShaderProgram(stages...)
	if err != nil {
		return nil, err
	}
	if _, err := c.Store(prog, name); err != nil {
		prog.Destroy()
		return nil, err
	}
	prog.SetDebugName(name)
	return prog, nil
}

// Clear removes every cached binary and empties the index.
func (c *Cache) Clear() error {
	glkit.Logger().Info("shadercache: clearing cache", "dir", c.dir)
	for _, p := range c.programs {
		c.removeData(p)
	}
	clear(c.programs)
	return c.saveIndex()
}

func (c *Cache) dataPath(p *Program) string { return filepath.Join(c.dir, p.DataFile()) }

func (c *Cache) removeData(p *Program) {
	path := c.dataPath(p)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		glkit.Logger().Warn("shadercache: failed to remove cached binary", "path", path, "err", err)
		return
	}
	glkit.Logger().Debug("shadercache: removed cached binary", "name", p.Name, "path", path)
}

func (c *Cache) saveIndex() error {
	glkit.Logger().Debug("shadercache: saving index", "path", c.IndexPath())
	data, err := toml.Marshal(index{Programs: c.Programs()})
	if err != nil {
		return fmt.Errorf("shadercache: encode index: %w", err)
	}
	if err := os.WriteFile(c.IndexPath(), data, 0o644); err != nil {
		return fmt.Errorf("shadercache: %w", err)
	}
	return nil
}

func (c *Cache) loadIndex() error {
	glkit.Logger().Debug("shadercache: reading index", "path", c.IndexPath())
	data, err := os.ReadFile(c.IndexPath())
	if err != nil {
		return fmt.Errorf("shadercache: %w", err)
	}
	var idx index
	if err := toml.Unmarshal(data, &idx); err != nil {
		return fmt.Errorf("shadercache: decode %s: %w", c.IndexPath(), err)
	}
	clear(c.programs)
	for _, p := range idx.Programs {
		if checkName(p.Name) != nil {
			glkit.Logger().Warn("shadercache: skipping index entry", "name", p.Name)
			continue
		}
		c.programs[p.Name] = &p
	}
	return nil
}

func checkName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func hashBinary(binary []byte) string {
	sum := blake2b.Sum256(binary)
	return hex.EncodeToString(sum[:])
}
