package glkit

import (
	"fmt"
	"maps"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/glkit/driver"
)

// ShaderProgram is a linked GPU program with its active uniforms and vertex
// attributes reflected into name to location maps. Array names are stored
// without their [index] suffix.
type ShaderProgram struct {
	dev        *Device
	id         driver.Program
	uniforms   map[string]int32
	attributes map[string]int32
}

// CreateShaderProgram compiles, attaches and links the given stages.
//
// File stages are read concurrently before any driver call. GLSL stages are
// compiled; SPIR-V stages are loaded and specialized. Stage shader objects
// are detached and deleted whatever the outcome, and the program is deleted
// when any step fails.
func (d *Device) CreateShaderProgram(stages ...*ShaderStageInfo) (*ShaderProgram, error) {
	codes, err := loadStages(stages)
	if err != nil {
		return nil, err
	}

	p := &ShaderProgram{dev: d, id: d.fns.CreateProgram()}
	shaders := make([]driver.Shader, 0, len(stages))
	release := func() {
		for _, s := range shaders {
			d.fns.DetachShader(p.id, s)
			d.fns.DeleteShader(s)
		}
	}

	for i, stage := range stages {
		s, err := d.createStage(stage, codes[i])
		if err != nil {
			release()
			d.fns.DeleteProgram(p.id)
			return nil, err
		}
		d.fns.AttachShader(p.id, s)
		shaders = append(shaders, s)
	}

	d.fns.LinkProgram(p.id)
	err = p.checkLinkStatus()
	release()
	if err != nil {
		d.fns.DeleteProgram(p.id)
		return nil, err
	}
	p.reflect()

	d.logger().Debug("glkit: shader program linked", "id", p.id, "stages", len(stages),
		"uniforms", len(p.uniforms), "attributes", len(p.attributes))
	return p, nil
}

// loadStages returns the code of every stage. File reads run concurrently.
func loadStages(stages []*ShaderStageInfo) ([][]byte, error) {
	for i, s := range stages {
		if s == nil {
			return nil, fmt.Errorf("%w: stages[%d] is nil", ErrInvalidType, i)
		}
	}

	codes := make([][]byte, len(stages))
	var g errgroup.Group
	for i, s := range stages {
		if !s.IsFile() {
			code, err := s.code()
			if err != nil {
				return nil, err
			}
			codes[i] = code
			continue
		}
		g.Go(func() error {
			code, err := s.code()
			if err != nil {
				return err
			}
			codes[i] = code
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return codes, nil
}

func (d *Device) createStage(info *ShaderStageInfo, code []byte) (driver.Shader, error) {
	s := d.fns.CreateShader(driver.Enum(info.Type))
	if !s.Valid() {
		if err := d.checkError("CreateShader"); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%w: failed to create %s shader", ErrDriver, info.Type)
	}

	if info.UseBinary {
		spec := info.specializeInfo()
		indices, values := spec.split()
		d.fns.ShaderBinary(s, driver.SHADER_BINARY_FORMAT_SPIR_V, code)
		d.fns.SpecializeShader(s, spec.EntryPoint, indices, values)
	} else {
		d.fns.ShaderSource(s, string(code))
		d.fns.CompileShader(s)
	}

	if d.fns.GetShaderi(s, driver.COMPILE_STATUS) == driver.FALSE {
		log := d.fns.GetShaderInfoLog(s)
		d.fns.DeleteShader(s)
		return 0, fmt.Errorf("%w: failed to compile shader (id: %d, type: %s)\n%s", ErrDriver, s, info.Type, log)
	}
	return s, nil
}

// ShaderProgramFromBinary loads a program binary returned by Binary. The
// binary must link on the current driver.
func (d *Device) ShaderProgramFromBinary(binary []byte, format uint32) (*ShaderProgram, error) {
	p := &ShaderProgram{dev: d, id: d.fns.CreateProgram()}
	d.fns.ProgramBinary(p.id, driver.Enum(format), binary)
	if err := p.checkLinkStatus(); err != nil {
		_ = d.checkError("ProgramBinary")
		d.fns.DeleteProgram(p.id)
		return nil, err
	}
	p.reflect()
	d.logger().Debug("glkit: shader program loaded from binary", "id", p.id, "bytes", len(binary))
	return p, nil
}

func (p *ShaderProgram) checkLinkStatus() error {
	if p.dev.fns.GetProgrami(p.id, driver.LINK_STATUS) == driver.FALSE {
		return fmt.Errorf("%w: shader link failure:\n%s", ErrDriver, p.dev.fns.GetProgramInfoLog(p.id))
	}
	return nil
}

func (p *ShaderProgram) reflect() {
	p.attributes = p.resources(driver.PROGRAM_INPUT)
	p.uniforms = p.resources(driver.UNIFORM)
}

// resources maps the active resources of an interface to their locations,
// skipping resources without one.
func (p *ShaderProgram) resources(iface driver.Enum) map[string]int32 {
	fns := p.dev.fns
	n := fns.GetProgramInterfacei(p.id, iface, driver.ACTIVE_RESOURCES)
	result := make(map[string]int32, n)
	for i := range uint32(max(n, 0)) { //nolint:gosec // non-negative
		location := fns.GetProgramResourcei(p.id, iface, i, driver.LOCATION)
		if location == -1 {
			continue
		}
		name := fns.GetProgramResourceName(p.id, iface, i)
		if idx := strings.IndexByte(name, '['); idx >= 0 {
			name = name[:idx]
		}
		result[name] = location
	}
	return result
}

// ID returns the driver name of the program.
func (p *ShaderProgram) ID() driver.Program { return p.id }

// Use makes the program current.
func (p *ShaderProgram) Use() { p.dev.fns.UseProgram(p.id) }

// Validate checks the program against the current pipeline state.
func (p *ShaderProgram) Validate() error {
	p.dev.fns.ValidateProgram(p.id)
	if p.dev.fns.GetProgrami(p.id, driver.VALIDATE_STATUS) == driver.FALSE {
		return fmt.Errorf("%w: failed to validate shader program (id: %d)\n%s", ErrDriver, p.id,
			p.dev.fns.GetProgramInfoLog(p.id))
	}
	return nil
}

// Binary returns the program binary and its driver-specific format.
func (p *ShaderProgram) Binary() ([]byte, uint32, error) {
	if p.dev.fns.GetIntegerv(driver.NUM_PROGRAM_BINARY_FORMATS) == 0 {
		return nil, 0, fmt.Errorf("%w: the current driver doesn't support binary shader program formats", ErrDriver)
	}
	data, format := p.dev.fns.GetProgramBinary(p.id)
	if err := p.dev.checkError("GetProgramBinary"); err != nil {
		return nil, 0, err
	}
	return data, uint32(format), nil
}

// SetUniformBlockBinding assigns the named uniform block to a binding point.
func (p *ShaderProgram) SetUniformBlockBinding(name string, binding uint32) error {
	index := p.dev.fns.GetUniformBlockIndex(p.id, name)
	if index == driver.INVALID_INDEX {
		return fmt.Errorf("%w: failed to find uniform block named %q", ErrNotFound, name)
	}
	p.dev.fns.UniformBlockBinding(p.id, index, binding)
	return nil
}

// Uniforms returns a copy of the uniform name to location map.
func (p *ShaderProgram) Uniforms() map[string]int32 { return maps.Clone(p.uniforms) }

// Attributes returns a copy of the attribute name to location map.
func (p *ShaderProgram) Attributes() map[string]int32 { return maps.Clone(p.attributes) }

// UniformLocation returns the location of an active uniform.
func (p *ShaderProgram) UniformLocation(name string) (int32, error) {
	loc, ok := p.uniforms[name]
	if !ok {
		return -1, fmt.Errorf("%w: failed to find uniform named %q", ErrNotFound, name)
	}
	return loc, nil
}

// AttributeLocation returns the location of an active vertex attribute.
func (p *ShaderProgram) AttributeLocation(name string) (int32, error) {
	loc, ok := p.attributes[name]
	if !ok {
		return -1, fmt.Errorf("%w: failed to find attribute named %q", ErrNotFound, name)
	}
	return loc, nil
}

// SetUniform writes value to the named uniform.
func (p *ShaderProgram) SetUniform(name string, value UniformValue) error {
	loc, err := p.UniformLocation(name)
	if err != nil {
		return err
	}
	if err := value.validate(); err != nil {
		return fmt.Errorf("uniform %q: %w", name, err)
	}

	fns := p.dev.fns
	switch {
	case value.matrix && value.kind == uniformDouble:
		fns.ProgramUniformMatrixdv(p.id, loc, value.components, value.transpose, value.doubles)
	case value.matrix:
		fns.ProgramUniformMatrixfv(p.id, loc, value.components, value.transpose, value.floats)
	case value.kind == uniformDouble:
		fns.ProgramUniformdv(p.id, loc, value.components, value.doubles)
	case value.kind == uniformInt:
		fns.ProgramUniformiv(p.id, loc, value.components, value.ints)
	case value.kind == uniformUint:
		fns.ProgramUniformuiv(p.id, loc, value.components, value.uints)
	default:
		fns.ProgramUniformfv(p.id, loc, value.components, value.floats)
	}
	return nil
}

// SetDebugName attaches a debug label to the program.
func (p *ShaderProgram) SetDebugName(name string) {
	p.dev.fns.ObjectLabel(driver.PROGRAM, uint32(p.id), name)
}

func (p *ShaderProgram) objectName() (driver.Enum, uint32) { return driver.PROGRAM, uint32(p.id) }

// Destroy deletes the program. It is safe to call more than once.
func (p *ShaderProgram) Destroy() {
	if p.id == 0 {
		return
	}
	p.dev.fns.DeleteProgram(p.id)
	p.dev.logger().Debug("glkit: shader program destroyed", "id", p.id)
	p.id = 0
}

func (p *ShaderProgram) String() string {
	return fmt.Sprintf("ShaderProgram(id: %d, uniforms: %d, attributes: %d)", p.id, len(p.uniforms), len(p.attributes))
}
