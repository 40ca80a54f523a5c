package glfake

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gogpu/glkit/driver"
)

var binaryMagic = []byte("GLFAKEPB")

type resource struct {
	Name     string `json:"name"`
	Location int32  `json:"location"`
}

type programBlock struct {
	Name    string `json:"name"`
	Binding uint32 `json:"binding"`
}

type program struct {
	attached []driver.Shader
	linked   bool
	valid    bool
	log      string

	Inputs   []resource     `json:"inputs"`
	Uniforms []resource     `json:"uniforms"`
	Blocks   []programBlock `json:"blocks"`

	values map[int32]UniformValue
}

// UniformValue is the last value written to a uniform location.
type UniformValue struct {
	Components int
	Matrix     bool
	Transpose  bool
	Floats     []float32
	Doubles    []float64
	Ints       []int32
	Uints      []uint32
}

// Uniform returns the value last written to a program's uniform location.
func (d *Driver) Uniform(p driver.Program, location int32) (UniformValue, bool) {
	prog, ok := d.programs[p]
	if !ok {
		return UniformValue{}, false
	}
	v, ok := prog.values[location]
	return v, ok
}

// UniformBlockBindingOf returns the binding point of a named uniform block.
func (d *Driver) UniformBlockBindingOf(p driver.Program, name string) (uint32, bool) {
	prog, ok := d.programs[p]
	if !ok {
		return 0, false
	}
	for _, b := range prog.Blocks {
		if b.Name == name {
			return b.Binding, true
		}
	}
	return 0, false
}

// ProgramLinked reports whether a program exists and is linked.
func (d *Driver) ProgramLinked(p driver.Program) bool {
	prog, ok := d.programs[p]
	return ok && prog.linked
}

// AttachedShaders returns the shaders currently attached to a program.
func (d *Driver) AttachedShaders(p driver.Program) []driver.Shader {
	if prog, ok := d.programs[p]; ok {
		return prog.attached
	}
	return nil
}

func (d *Driver) lookupProgram(fn string, p driver.Program) *program {
	prog, ok := d.programs[p]
	if !ok {
		d.fail(driver.INVALID_OPERATION, "%s: %d is not a program", fn, p)
		return nil
	}
	return prog
}

func (d *Driver) CreateProgram() driver.Program {
	d.call("CreateProgram")
	p := driver.Program(d.name())
	d.programs[p] = &program{values: make(map[int32]UniformValue)}
	return p
}

func (d *Driver) DeleteProgram(p driver.Program) {
	d.call("DeleteProgram")
	delete(d.programs, p)
	if d.State.Program == p {
		d.State.Program = 0
	}
}

func (d *Driver) AttachShader(p driver.Program, s driver.Shader) {
	d.call("AttachShader")
	prog := d.lookupProgram("AttachShader", p)
	if prog == nil || d.lookupShader("AttachShader", s) == nil {
		return
	}
	for _, a := range prog.attached {
		if a == s {
			d.fail(driver.INVALID_OPERATION, "AttachShader: shader %d already attached", s)
			return
		}
	}
	prog.attached = append(prog.attached, s)
}

func (d *Driver) DetachShader(p driver.Program, s driver.Shader) {
	d.call("DetachShader")
	prog := d.lookupProgram("DetachShader", p)
	if prog == nil {
		return
	}
	for i, a := range prog.attached {
		if a == s {
			prog.attached = append(prog.attached[:i], prog.attached[i+1:]...)
			return
		}
	}
	d.fail(driver.INVALID_OPERATION, "DetachShader: shader %d not attached", s)
}

func (d *Driver) LinkProgram(p driver.Program) {
	d.call("LinkProgram")
	prog := d.lookupProgram("LinkProgram", p)
	if prog == nil {
		return
	}
	prog.linked, prog.valid, prog.log = false, false, ""
	prog.Inputs, prog.Uniforms, prog.Blocks = nil, nil, nil
	prog.values = make(map[int32]UniformValue)

	if len(prog.attached) == 0 {
		prog.log = "error: no shaders attached to the program\n"
		return
	}
	var log bytes.Buffer
	var stages []*shader
	for _, s := range prog.attached {
		sh := d.shaders[s]
		switch {
		case sh == nil:
			fmt.Fprintf(&log, "error: shader %d was deleted\n", s)
		case !sh.compiled:
			fmt.Fprintf(&log, "error: linking with uncompiled shader %d\n", s)
		case !sh.hasMain:
			fmt.Fprintf(&log, "error: %s shader lacks `main'\n", stageName(sh.typ))
		default:
			stages = append(stages, sh)
		}
	}
	if log.Len() > 0 {
		prog.log = log.String()
		return
	}

	used := make(map[int32]bool)
	var pending []declaration
	for _, sh := range stages {
		if sh.typ != driver.VERTEX_SHADER {
			continue
		}
		for _, in := range sh.inputs {
			if in.Location < 0 {
				pending = append(pending, in)
				continue
			}
			prog.Inputs = append(prog.Inputs, resource{Name: in.Name, Location: in.Location})
			for i := int32(0); i < slots(in); i++ {
				used[in.Location+i] = true
			}
		}
	}
	next := int32(0)
	for _, in := range pending {
		for used[next] {
			next++
		}
		prog.Inputs = append(prog.Inputs, resource{Name: in.Name, Location: next})
		for i := int32(0); i < slots(in); i++ {
			used[next+i] = true
		}
	}

	seen := make(map[string]bool)
	location := int32(0)
	for _, sh := range stages {
		for _, u := range sh.uniforms {
			if seen[u.Name] {
				continue
			}
			seen[u.Name] = true
			name := u.Name
			if u.Array > 0 {
				name += "[0]"
			}
			loc := u.Location
			if loc < 0 {
				loc = location
			}
			prog.Uniforms = append(prog.Uniforms, resource{Name: name, Location: loc})
			location = loc + int32(max(u.Array, 1))
		}
		for _, b := range sh.blocks {
			if seen["{"+b.Name] {
				continue
			}
			seen["{"+b.Name] = true
			prog.Blocks = append(prog.Blocks, programBlock{Name: b.Name})
			for _, m := range b.Members {
				prog.Uniforms = append(prog.Uniforms, resource{Name: m, Location: -1})
			}
		}
	}
	prog.linked = true
}

func slots(decl declaration) int32 {
	n := int32(1)
	switch decl.Type {
	case "mat2", "dmat2", "mat2x2", "mat2x3", "mat2x4":
		n = 2
	case "mat3", "dmat3", "mat3x2", "mat3x3", "mat3x4":
		n = 3
	case "mat4", "dmat4", "mat4x2", "mat4x3", "mat4x4":
		n = 4
	}
	if decl.Array > 0 {
		n *= int32(decl.Array)
	}
	return n
}

func stageName(typ driver.Enum) string {
	switch typ {
	case driver.VERTEX_SHADER:
		return "vertex"
	case driver.FRAGMENT_SHADER:
		return "fragment"
	case driver.GEOMETRY_SHADER:
		return "geometry"
	case driver.TESS_CONTROL_SHADER:
		return "tessellation control"
	case driver.TESS_EVALUATION_SHADER:
		return "tessellation evaluation"
	case driver.COMPUTE_SHADER:
		return "compute"
	}
	return "unknown"
}

func (d *Driver) ValidateProgram(p driver.Program) {
	d.call("ValidateProgram")
	prog := d.lookupProgram("ValidateProgram", p)
	if prog == nil {
		return
	}
	switch {
	case !prog.linked:
		prog.valid = false
		prog.log = "error: program is not linked\n"
	case d.FailValidation:
		prog.valid = false
		prog.log = "error: sampler units conflict with the current state\n"
	default:
		prog.valid = true
	}
}

func (d *Driver) UseProgram(p driver.Program) {
	d.call("UseProgram")
	if p.Valid() {
		prog := d.lookupProgram("UseProgram", p)
		if prog == nil {
			return
		}
		if !prog.linked {
			d.fail(driver.INVALID_OPERATION, "UseProgram: program %d is not linked", p)
			return
		}
	}
	d.State.Program = p
}

func (d *Driver) GetProgrami(p driver.Program, pname driver.Enum) int32 {
	d.call("GetProgrami")
	prog := d.lookupProgram("GetProgrami", p)
	if prog == nil {
		return 0
	}
	boolean := func(v bool) int32 {
		if v {
			return driver.TRUE
		}
		return driver.FALSE
	}
	switch pname {
	case driver.LINK_STATUS:
		return boolean(prog.linked)
	case driver.VALIDATE_STATUS:
		return boolean(prog.valid)
	case driver.INFO_LOG_LENGTH:
		if prog.log == "" {
			return 0
		}
		return int32(len(prog.log) + 1)
	case driver.PROGRAM_BINARY_LENGTH:
		if !prog.linked {
			return 0
		}
		return int32(len(d.serialize(prog)))
	}
	d.fail(driver.INVALID_ENUM, "GetProgrami: pname 0x%X", uint32(pname))
	return 0
}

func (d *Driver) GetProgramInfoLog(p driver.Program) string {
	d.call("GetProgramInfoLog")
	if prog := d.lookupProgram("GetProgramInfoLog", p); prog != nil {
		return prog.log
	}
	return ""
}

func (d *Driver) serialize(prog *program) []byte {
	payload, err := json.Marshal(prog)
	if err != nil {
		return nil
	}
	return append(append([]byte(nil), binaryMagic...), payload...)
}

func (d *Driver) GetProgramBinary(p driver.Program) ([]byte, driver.Enum) {
	d.call("GetProgramBinary")
	prog := d.lookupProgram("GetProgramBinary", p)
	if prog == nil {
		return nil, 0
	}
	if !prog.linked {
		d.fail(driver.INVALID_OPERATION, "GetProgramBinary: program %d is not linked", p)
		return nil, 0
	}
	return d.serialize(prog), BinaryFormat
}

func (d *Driver) ProgramBinary(p driver.Program, format driver.Enum, bin []byte) {
	d.call("ProgramBinary")
	prog := d.lookupProgram("ProgramBinary", p)
	if prog == nil {
		return
	}
	prog.linked, prog.valid, prog.log = false, false, ""
	prog.values = make(map[int32]UniformValue)
	if format != BinaryFormat {
		d.fail(driver.INVALID_ENUM, "ProgramBinary: format 0x%X", uint32(format))
		prog.log = "error: unsupported program binary format\n"
		return
	}
	var loaded program
	if !bytes.HasPrefix(bin, binaryMagic) || json.Unmarshal(bin[len(binaryMagic):], &loaded) != nil {
		prog.log = "error: program binary is corrupt\n"
		return
	}
	prog.Inputs, prog.Uniforms, prog.Blocks = loaded.Inputs, loaded.Uniforms, loaded.Blocks
	prog.linked = true
}

func (d *Driver) resources(prog *program, iface driver.Enum) []resource {
	switch iface {
	case driver.PROGRAM_INPUT:
		return prog.Inputs
	case driver.UNIFORM:
		return prog.Uniforms
	}
	return nil
}

func (d *Driver) GetProgramInterfacei(p driver.Program, iface, pname driver.Enum) int32 {
	d.call("GetProgramInterfacei")
	prog := d.lookupProgram("GetProgramInterfacei", p)
	if prog == nil {
		return 0
	}
	if pname != driver.ACTIVE_RESOURCES {
		d.fail(driver.INVALID_ENUM, "GetProgramInterfacei: pname 0x%X", uint32(pname))
		return 0
	}
	if iface == driver.UNIFORM_BLOCK {
		return int32(len(prog.Blocks))
	}
	return int32(len(d.resources(prog, iface)))
}

func (d *Driver) GetProgramResourcei(p driver.Program, iface driver.Enum, index uint32, prop driver.Enum) int32 {
	d.call("GetProgramResourcei")
	prog := d.lookupProgram("GetProgramResourcei", p)
	if prog == nil {
		return 0
	}
	res := d.resources(prog, iface)
	if int(index) >= len(res) {
		d.fail(driver.INVALID_VALUE, "GetProgramResourcei: index %d out of range", index)
		return 0
	}
	switch prop {
	case driver.LOCATION:
		return res[index].Location
	case driver.NAME_LENGTH:
		return int32(len(res[index].Name) + 1)
	}
	d.fail(driver.INVALID_ENUM, "GetProgramResourcei: prop 0x%X", uint32(prop))
	return 0
}

func (d *Driver) GetProgramResourceName(p driver.Program, iface driver.Enum, index uint32) string {
	d.call("GetProgramResourceName")
	prog := d.lookupProgram("GetProgramResourceName", p)
	if prog == nil {
		return ""
	}
	if iface == driver.UNIFORM_BLOCK {
		if int(index) < len(prog.Blocks) {
			return prog.Blocks[index].Name
		}
	} else if res := d.resources(prog, iface); int(index) < len(res) {
		return res[index].Name
	}
	d.fail(driver.INVALID_VALUE, "GetProgramResourceName: index %d out of range", index)
	return ""
}

func (d *Driver) GetUniformBlockIndex(p driver.Program, name string) uint32 {
	d.call("GetUniformBlockIndex")
	prog := d.lookupProgram("GetUniformBlockIndex", p)
	if prog == nil {
		return driver.INVALID_INDEX
	}
	for i, b := range prog.Blocks {
		if b.Name == name {
			return uint32(i)
		}
	}
	return driver.INVALID_INDEX
}

func (d *Driver) UniformBlockBinding(p driver.Program, blockIndex, binding uint32) {
	d.call("UniformBlockBinding")
	prog := d.lookupProgram("UniformBlockBinding", p)
	if prog == nil {
		return
	}
	if int(blockIndex) >= len(prog.Blocks) {
		d.fail(driver.INVALID_VALUE, "UniformBlockBinding: block %d out of range", blockIndex)
		return
	}
	prog.Blocks[blockIndex].Binding = binding
}

// setUniform stores v when location names an active uniform of a linked
// program. Location -1 is silently ignored, as in GL.
func (d *Driver) setUniform(fn string, p driver.Program, location int32, v UniformValue) {
	d.call(fn)
	prog := d.lookupProgram(fn, p)
	if prog == nil || location == -1 {
		return
	}
	if !prog.linked {
		d.fail(driver.INVALID_OPERATION, "%s: program %d is not linked", fn, p)
		return
	}
	if !hasLocation(prog.Uniforms, location) {
		d.fail(driver.INVALID_OPERATION, "%s: no uniform at location %d", fn, location)
		return
	}
	prog.values[location] = v
}

func hasLocation(uniforms []resource, location int32) bool {
	for _, u := range uniforms {
		if u.Location >= 0 && u.Location == location {
			return true
		}
	}
	return false
}

func (d *Driver) ProgramUniformfv(p driver.Program, location int32, components int, v []float32) {
	d.setUniform("ProgramUniformfv", p, location,
		UniformValue{Components: components, Floats: append([]float32(nil), v...)})
}

func (d *Driver) ProgramUniformdv(p driver.Program, location int32, components int, v []float64) {
	d.setUniform("ProgramUniformdv", p, location,
		UniformValue{Components: components, Doubles: append([]float64(nil), v...)})
}

func (d *Driver) ProgramUniformiv(p driver.Program, location int32, components int, v []int32) {
	d.setUniform("ProgramUniformiv", p, location,
		UniformValue{Components: components, Ints: append([]int32(nil), v...)})
}

func (d *Driver) ProgramUniformuiv(p driver.Program, location int32, components int, v []uint32) {
	d.setUniform("ProgramUniformuiv", p, location,
		UniformValue{Components: components, Uints: append([]uint32(nil), v...)})
}

func (d *Driver) ProgramUniformMatrixfv(p driver.Program, location int32, order int, transpose bool, v []float32) {
	d.setUniform("ProgramUniformMatrixfv", p, location,
		UniformValue{Components: order, Matrix: true, Transpose: transpose, Floats: append([]float32(nil), v...)})
}

func (d *Driver) ProgramUniformMatrixdv(p driver.Program, location int32, order int, transpose bool, v []float64) {
	d.setUniform("ProgramUniformMatrixdv", p, location,
		UniformValue{Components: order, Matrix: true, Transpose: transpose, Doubles: append([]float64(nil), v...)})
}
