package glfake

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gogpu/glkit/driver"
)

// SPIRVMagic is the first word of every SPIR-V module.
const SPIRVMagic = 0x07230203

type shader struct {
	typ      driver.Enum
	source   string
	binary   []byte
	compiled bool
	log      string

	hasMain    bool
	inputs     []declaration
	uniforms   []declaration
	blocks     []block
	entryPoint string
}

type declaration struct {
	Name     string
	Type     string
	Location int32
	Array    int
}

type block struct {
	Name    string
	Members []string
}

// Specialization is a recorded SpecializeShader call.
type Specialization struct {
	Shader     driver.Shader
	EntryPoint string
	Indices    []uint32
	Values     []uint32
}

var (
	reLayoutLocation = regexp.MustCompile(`location\s*=\s*(\d+)`)
	reInput          = regexp.MustCompile(`^(?:layout\s*\(([^)]*)\)\s*)?(?:flat\s+|smooth\s+|noperspective\s+)?in\s+(\w+)\s+(\w+)\s*(?:\[\s*(\d+)\s*\])?\s*;`)
	reUniform        = regexp.MustCompile(`^(?:layout\s*\(([^)]*)\)\s*)?uniform\s+(\w+)\s+(\w+)\s*(?:\[\s*(\d+)\s*\])?\s*;`)
	reBlock          = regexp.MustCompile(`^(?:layout\s*\(([^)]*)\)\s*)?uniform\s+(\w+)\s*(\{)?\s*$`)
	reMember         = regexp.MustCompile(`^(\w+)\s+(\w+)\s*(?:\[\s*\d+\s*\])?\s*;`)
	reMain           = regexp.MustCompile(`\bvoid\s+main\s*\(`)
)

// compile scans GLSL declarations. It does not check semantics.
func (s *shader) compile() {
	s.compiled, s.log = false, ""
	s.inputs, s.uniforms, s.blocks = nil, nil, nil
	s.hasMain = reMain.MatchString(s.source)

	var errs []string
	var open *block
	pendingBlock := ""
	for i, raw := range strings.Split(s.source, "\n") {
		line := strings.TrimSpace(raw)
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#error") {
			errs = append(errs, fmt.Sprintf("0:%d(1): error: %s", i+1, strings.TrimSpace(strings.TrimPrefix(line, "#error"))))
			continue
		}
		if open != nil {
			if strings.HasPrefix(line, "}") {
				s.blocks = append(s.blocks, *open)
				open = nil
				continue
			}
			if m := reMember.FindStringSubmatch(line); m != nil {
				open.Members = append(open.Members, m[2])
			}
			continue
		}
		if pendingBlock != "" {
			if strings.HasPrefix(line, "{") {
				open = &block{Name: pendingBlock}
			}
			pendingBlock = ""
			continue
		}
		if m := reBlock.FindStringSubmatch(line); m != nil {
			if m[3] == "{" {
				open = &block{Name: m[2]}
			} else {
				pendingBlock = m[2]
			}
			continue
		}
		if m := reUniform.FindStringSubmatch(line); m != nil {
			s.uniforms = append(s.uniforms, parseDeclaration(m))
			continue
		}
		if s.typ == driver.VERTEX_SHADER {
			if m := reInput.FindStringSubmatch(line); m != nil {
				s.inputs = append(s.inputs, parseDeclaration(m))
			}
		}
	}
	if open != nil {
		errs = append(errs, fmt.Sprintf("0:0(0): error: unterminated uniform block %q", open.Name))
	}
	if len(errs) > 0 {
		s.log = strings.Join(errs, "\n") + "\n"
		return
	}
	s.compiled = true
}

func parseDeclaration(m []string) declaration {
	decl := declaration{Type: m[2], Name: m[3], Location: -1}
	if loc := reLayoutLocation.FindStringSubmatch(m[1]); loc != nil {
		n, _ := strconv.Atoi(loc[1])
		decl.Location = int32(n)
	}
	if m[4] != "" {
		decl.Array, _ = strconv.Atoi(m[4])
	}
	return decl
}

func (d *Driver) lookupShader(fn string, s driver.Shader) *shader {
	sh, ok := d.shaders[s]
	if !ok {
		d.fail(driver.INVALID_OPERATION, "%s: %d is not a shader", fn, s)
		return nil
	}
	return sh
}

func (d *Driver) CreateShader(typ driver.Enum) driver.Shader {
	d.call("CreateShader")
	switch typ {
	case driver.VERTEX_SHADER, driver.FRAGMENT_SHADER, driver.GEOMETRY_SHADER,
		driver.TESS_CONTROL_SHADER, driver.TESS_EVALUATION_SHADER, driver.COMPUTE_SHADER:
	default:
		d.fail(driver.INVALID_ENUM, "CreateShader: type 0x%X", uint32(typ))
		return 0
	}
	s := driver.Shader(d.name())
	d.shaders[s] = &shader{typ: typ}
	return s
}

func (d *Driver) DeleteShader(s driver.Shader) {
	d.call("DeleteShader")
	delete(d.shaders, s)
}

func (d *Driver) ShaderSource(s driver.Shader, src string) {
	d.call("ShaderSource")
	if sh := d.lookupShader("ShaderSource", s); sh != nil {
		sh.source = src
		sh.binary = nil
	}
}

func (d *Driver) CompileShader(s driver.Shader) {
	d.call("CompileShader")
	if sh := d.lookupShader("CompileShader", s); sh != nil {
		sh.compile()
	}
}

func (d *Driver) ShaderBinary(s driver.Shader, format driver.Enum, bin []byte) {
	d.call("ShaderBinary")
	sh := d.lookupShader("ShaderBinary", s)
	if sh == nil {
		return
	}
	if format != driver.SHADER_BINARY_FORMAT_SPIR_V {
		d.fail(driver.INVALID_ENUM, "ShaderBinary: format 0x%X", uint32(format))
		return
	}
	sh.binary = append([]byte(nil), bin...)
	sh.source = ""
	sh.compiled = false
}

func (d *Driver) SpecializeShader(s driver.Shader, entryPoint string, indices, values []uint32) {
	d.call("SpecializeShader")
	sh := d.lookupShader("SpecializeShader", s)
	if sh == nil {
		return
	}
	d.Specializations = append(d.Specializations, Specialization{
		Shader:     s,
		EntryPoint: entryPoint,
		Indices:    append([]uint32(nil), indices...),
		Values:     append([]uint32(nil), values...),
	})
	if len(indices) != len(values) {
		d.fail(driver.INVALID_VALUE, "SpecializeShader: %d indices, %d values", len(indices), len(values))
		return
	}
	if len(sh.binary) < 20 || len(sh.binary)%4 != 0 || binary.LittleEndian.Uint32(sh.binary) != SPIRVMagic {
		sh.compiled = false
		sh.log = "SPIR-V module is not valid\n"
		return
	}
	if entryPoint == "" || !bytes.Contains(sh.binary, []byte(entryPoint)) {
		sh.compiled = false
		sh.log = fmt.Sprintf("entry point %q not found in SPIR-V module\n", entryPoint)
		return
	}
	sh.entryPoint = entryPoint
	sh.hasMain = true
	sh.compiled = true
	sh.log = ""
}

func (d *Driver) GetShaderi(s driver.Shader, pname driver.Enum) int32 {
	d.call("GetShaderi")
	sh := d.lookupShader("GetShaderi", s)
	if sh == nil {
		return 0
	}
	switch pname {
	case driver.COMPILE_STATUS:
		if sh.compiled {
			return driver.TRUE
		}
		return driver.FALSE
	case driver.INFO_LOG_LENGTH:
		if sh.log == "" {
			return 0
		}
		return int32(len(sh.log) + 1)
	}
	d.fail(driver.INVALID_ENUM, "GetShaderi: pname 0x%X", uint32(pname))
	return 0
}

func (d *Driver) GetShaderInfoLog(s driver.Shader) string {
	d.call("GetShaderInfoLog")
	if sh := d.lookupShader("GetShaderInfoLog", s); sh != nil {
		return sh.log
	}
	return ""
}
