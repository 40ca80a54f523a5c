// Package shaderwatch rebuilds shader programs when their stage files change.
//
// The fsnotify goroutine only records that a stage file changed. The rebuild
// itself runs in [Watcher.Poll], which must be called from the goroutine that
// owns the GL context, typically once per frame.
package shaderwatch

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/glkit"
)

// ErrNoFiles is returned by Watch when none of the stages is read from a file.
var ErrNoFiles = errors.New("shaderwatch: no file stages to watch")

// ReloadFunc receives the result of each rebuild: the new program, or the
// error that left the previous program in place.
type ReloadFunc func(*glkit.ShaderProgram, error)

// Watcher owns a shader program built from file stages and replaces it when
// any of the files is written.
type Watcher struct {
	dev      *glkit.Device
	stages   []*glkit.ShaderStageInfo
	onReload ReloadFunc

	files   map[string]bool
	fsw     *fsnotify.Watcher
	dirty   atomic.Bool
	wg      sync.WaitGroup
	program *glkit.ShaderProgram
}

// Watch builds the program from stages and starts watching the directories
// of its file stages. onReload may be nil.
func Watch(dev *glkit.Device, stages []*glkit.ShaderStageInfo, onReload ReloadFunc) (*Watcher, error) {
	files := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, s := range stages {
		if s == nil || !s.IsFile() {
			continue
		}
		path, err := filepath.Abs(s.Path)
		if err != nil {
			return nil, fmt.Errorf("shaderwatch: %w", err)
		}
		files[path] = true
		dirs[filepath.Dir(path)] = true
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	program, err := dev.CreateShaderProgram(stages...)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		program.Destroy()
		return nil, fmt.Errorf("shaderwatch: %w", err)
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			program.Destroy()
			return nil, fmt.Errorf("shaderwatch: watch %s: %w", dir, err)
		}
	}

	w := &Watcher{
		dev:      dev,
		stages:   stages,
		onReload: onReload,
		files:    files,
		fsw:      fsw,
		program:  program,
	}
	w.wg.Add(1)
	go w.run()

	glkit.Logger().Debug("shaderwatch: watching shader files", "files", len(files), "dirs", len(dirs))
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if w.files[filepath.Clean(event.Name)] {
				glkit.Logger().Debug("shaderwatch: shader file changed", "file", event.Name, "op", event.Op.String())
				w.dirty.Store(true)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			glkit.Logger().Warn("shaderwatch: watcher error", "err", err)
		}
	}
}

// Program returns the most recently built program.
func (w *Watcher) Program() *glkit.ShaderProgram { return w.program }

// Dirty reports whether a stage file changed since the last rebuild.
func (w *Watcher) Dirty() bool { return w.dirty.Load() }

// Poll rebuilds the program when a stage file changed and reports whether a
// rebuild was attempted. On success the previous program is destroyed; on
// failure it stays current. onReload is called in both cases.
func (w *Watcher) Poll() bool {
	if !w.dirty.Swap(false) {
		return false
	}

	program, err := w.dev.CreateShaderProgram(w.stages...)
	if err != nil {
		glkit.Logger().Warn("shaderwatch: rebuild failed", "err", err)
		if w.onReload != nil {
			w.onReload(nil, err)
		}
		return true
	}

	old := w.program
	w.program = program
	if old != nil {
		old.Destroy()
	}
	glkit.Logger().Info("shaderwatch: program rebuilt", "id", program.ID())
	if w.onReload != nil {
		w.onReload(program, nil)
	}
	return true
}

// Close stops watching. The current program is left to the caller.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}
