package glkit

import (
	"fmt"
	"os"

	"github.com/gogpu/naga"
)

// SpecializationConstant sets the value of one SPIR-V specialization
// constant.
type SpecializationConstant struct {
	Index uint32
	Value uint32
}

// ShaderSpecializeInfo selects the entry point of a SPIR-V stage and the
// values of its specialization constants.
type ShaderSpecializeInfo struct {
	EntryPoint string
	Constants  []SpecializationConstant
}

// NewShaderSpecializeInfo returns specialization info for entryPoint.
func NewShaderSpecializeInfo(entryPoint string, constants ...SpecializationConstant) *ShaderSpecializeInfo {
	return &ShaderSpecializeInfo{EntryPoint: entryPoint, Constants: constants}
}

// split returns the constant indices and values as parallel slices.
func (s *ShaderSpecializeInfo) split() (indices, values []uint32) {
	indices = make([]uint32, len(s.Constants))
	values = make([]uint32, len(s.Constants))
	for i, c := range s.Constants {
		indices[i], values[i] = c.Index, c.Value
	}
	return indices, values
}

// defaultSpecializeInfo is used for binary stages that do not name an
// entry point.
var defaultSpecializeInfo = ShaderSpecializeInfo{EntryPoint: "main"}

// ShaderStageInfo describes where the code of one shader stage comes from:
// GLSL source, a SPIR-V binary, or a file holding either.
type ShaderStageInfo struct {
	Type ShaderType

	// Path is the file to read; empty for inline stages.
	Path string

	// Source is inline GLSL source.
	Source string

	// Binary is an inline SPIR-V module.
	Binary []byte

	// UseBinary marks the stage code as SPIR-V.
	UseBinary bool

	// Specialize applies to SPIR-V stages. Nil uses the "main" entry point.
	Specialize *ShaderSpecializeInfo
}

// StageFromFile returns a stage read from path when the program is built.
// With useBinary the file is a SPIR-V module specialized with specialize.
func StageFromFile(typ ShaderType, path string, useBinary bool, specialize *ShaderSpecializeInfo) *ShaderStageInfo {
	return &ShaderStageInfo{Type: typ, Path: path, UseBinary: useBinary, Specialize: specialize}
}

// StageFromSource returns a stage compiled from GLSL source.
func StageFromSource(typ ShaderType, source string) *ShaderStageInfo {
	return &ShaderStageInfo{Type: typ, Source: source}
}

// StageFromBinary returns a stage loaded from a SPIR-V module.
func StageFromBinary(typ ShaderType, binary []byte, specialize *ShaderSpecializeInfo) *ShaderStageInfo {
	return &ShaderStageInfo{Type: typ, Binary: binary, UseBinary: true, Specialize: specialize}
}

// StageFromWGSL compiles WGSL source to SPIR-V and returns a binary stage
// using entryPoint.
func StageFromWGSL(typ ShaderType, source, entryPoint string) (*ShaderStageInfo, error) {
	spirv, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compile WGSL %s shader: %w", ErrInvalidArgument, typ, err)
	}
	return StageFromBinary(typ, spirv, NewShaderSpecializeInfo(entryPoint)), nil
}

// IsFile reports whether the stage code is read from a file.
func (s *ShaderStageInfo) IsFile() bool { return s.Path != "" }

// specializeInfo returns the stage's specialization info or the default.
func (s *ShaderStageInfo) specializeInfo() *ShaderSpecializeInfo {
	if s.Specialize != nil {
		return s.Specialize
	}
	return &defaultSpecializeInfo
}

// code loads the stage code. File stages hit the filesystem.
func (s *ShaderStageInfo) code() ([]byte, error) {
	if s.IsFile() {
		data, err := os.ReadFile(s.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s shader: %w", ErrInvalidArgument, s.Type, err)
		}
		return data, nil
	}
	if s.UseBinary {
		return s.Binary, nil
	}
	return []byte(s.Source), nil
}

func (s *ShaderStageInfo) String() string {
	switch {
	case s.IsFile():
		return fmt.Sprintf("ShaderStageInfo(type: %s, file: %s, binary: %t)", s.Type, s.Path, s.UseBinary)
	case s.UseBinary:
		return fmt.Sprintf("ShaderStageInfo(type: %s, binary: %d bytes)", s.Type, len(s.Binary))
	default:
		return fmt.Sprintf("ShaderStageInfo(type: %s, source: %d bytes)", s.Type, len(s.Source))
	}
}
