package glkit

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

type uniformKind uint8

const (
	uniformFloat uniformKind = iota
	uniformDouble
	uniformInt
	uniformUint
)

func (k uniformKind) String() string {
	switch k {
	case uniformFloat:
		return "float"
	case uniformDouble:
		return "double"
	case uniformInt:
		return "int"
	case uniformUint:
		return "uint"
	}
	return "unknown"
}

// UniformElement is an element type a uniform can be set from.
type UniformElement interface {
	float32 | float64 | int32 | uint32
}

// UniformValue is a value for ShaderProgram.SetUniform: scalars, vectors of
// 2 to 4 components, arrays of either, or square matrices of order 2 to 4,
// each of float, double, int or uint elements.
type UniformValue struct {
	kind       uniformKind
	components int
	matrix     bool
	transpose  bool

	floats  []float32
	doubles []float64
	ints    []int32
	uints   []uint32
}

func makeUniform[T UniformElement](components int, values []T) UniformValue {
	v := UniformValue{components: components}
	switch s := any(values).(type) {
	case []float32:
		v.kind, v.floats = uniformFloat, s
	case []float64:
		v.kind, v.doubles = uniformDouble, s
	case []int32:
		v.kind, v.ints = uniformInt, s
	case []uint32:
		v.kind, v.uints = uniformUint, s
	}
	return v
}

// Scalar returns a single-value uniform.
func Scalar[T UniformElement](value T) UniformValue {
	return makeUniform(1, []T{value})
}

// Vector returns a vector uniform with one component per value.
func Vector[T UniformElement](values ...T) UniformValue {
	return makeUniform(len(values), values)
}

// Array returns an array of scalars.
func Array[T UniformElement](values []T) UniformValue {
	return makeUniform(1, values)
}

// VectorArray returns an array of vectors with the given component count,
// stored back to back in values.
func VectorArray[T UniformElement](components int, values []T) UniformValue {
	return makeUniform(components, values)
}

// Vec2 returns a vec2 uniform.
func Vec2(v mgl32.Vec2) UniformValue { return makeUniform(2, v[:]) }

// Vec3 returns a vec3 uniform.
func Vec3(v mgl32.Vec3) UniformValue { return makeUniform(3, v[:]) }

// Vec4 returns a vec4 uniform.
func Vec4(v mgl32.Vec4) UniformValue { return makeUniform(4, v[:]) }

// Vec2d returns a dvec2 uniform.
func Vec2d(v mgl64.Vec2) UniformValue { return makeUniform(2, v[:]) }

// Vec3d returns a dvec3 uniform.
func Vec3d(v mgl64.Vec3) UniformValue { return makeUniform(3, v[:]) }

// Vec4d returns a dvec4 uniform.
func Vec4d(v mgl64.Vec4) UniformValue { return makeUniform(4, v[:]) }

func matrixUniform[T float32 | float64](order int, values []T) UniformValue {
	v := makeUniform(order, values)
	v.matrix = true
	return v
}

// Mat2 returns a column-major mat2 uniform.
func Mat2(m mgl32.Mat2) UniformValue { return matrixUniform(2, m[:]) }

// Mat3 returns a column-major mat3 uniform.
func Mat3(m mgl32.Mat3) UniformValue { return matrixUniform(3, m[:]) }

// Mat4 returns a column-major mat4 uniform.
func Mat4(m mgl32.Mat4) UniformValue { return matrixUniform(4, m[:]) }

// Mat2d returns a column-major dmat2 uniform.
func Mat2d(m mgl64.Mat2) UniformValue { return matrixUniform(2, m[:]) }

// Mat3d returns a column-major dmat3 uniform.
func Mat3d(m mgl64.Mat3) UniformValue { return matrixUniform(3, m[:]) }

// Mat4d returns a column-major dmat4 uniform.
func Mat4d(m mgl64.Mat4) UniformValue { return matrixUniform(4, m[:]) }

// MatrixArray returns an array of square matrices of the given order stored
// back to back in values.
func MatrixArray[T float32 | float64](order int, values []T) UniformValue {
	return matrixUniform(order, values)
}

// Transposed returns a copy of a matrix uniform that the driver transposes
// on upload. It has no effect on other values.
func (v UniformValue) Transposed() UniformValue {
	if v.matrix {
		v.transpose = true
	}
	return v
}

// RawUniform returns a uniform decoded from raw native-endian bytes of typ,
// which must be FLOAT, DOUBLE, INT or UNSIGNED_INT. The byte length must be
// a whole number of components-sized items.
func RawUniform(typ DataType, components int, raw []byte) (UniformValue, error) {
	size := uniformTypeSize(typ)
	if size == 0 {
		return UniformValue{}, fmt.Errorf("%w: invalid uniform type %s", ErrInvalidType, typ)
	}
	if components < 1 || components > 4 {
		return UniformValue{}, fmt.Errorf("%w: uniform component count %d outside [1, 4]", ErrInvalidArgument, components)
	}
	if len(raw) == 0 || len(raw)%(size*components) != 0 {
		return UniformValue{}, fmt.Errorf("%w: buffer of %d bytes does not hold whole items of %d x %s",
			ErrInvalidArgument, len(raw), components, typ)
	}

	ne := binary.NativeEndian
	n := len(raw) / size
	switch typ {
	case TypeFloat:
		s := make([]float32, n)
		for i := range s {
			s[i] = math.Float32frombits(ne.Uint32(raw[i*4:]))
		}
		return makeUniform(components, s), nil
	case TypeDouble:
		s := make([]float64, n)
		for i := range s {
			s[i] = math.Float64frombits(ne.Uint64(raw[i*8:]))
		}
		return makeUniform(components, s), nil
	case TypeInt:
		s := make([]int32, n)
		for i := range s {
			s[i] = int32(ne.Uint32(raw[i*4:])) //nolint:gosec // reinterpret bits
		}
		return makeUniform(components, s), nil
	default:
		s := make([]uint32, n)
		for i := range s {
			s[i] = ne.Uint32(raw[i*4:])
		}
		return makeUniform(components, s), nil
	}
}

func uniformTypeSize(typ DataType) int {
	switch typ {
	case TypeFloat, TypeInt, TypeUnsignedInt:
		return 4
	case TypeDouble:
		return 8
	}
	return 0
}

// Len returns the number of elements in the value.
func (v UniformValue) Len() int {
	switch v.kind {
	case uniformDouble:
		return len(v.doubles)
	case uniformInt:
		return len(v.ints)
	case uniformUint:
		return len(v.uints)
	}
	return len(v.floats)
}

// Count returns the number of scalars, vectors or matrices in the value.
func (v UniformValue) Count() int {
	if v.components == 0 {
		return 0
	}
	if v.matrix {
		return v.Len() / (v.components * v.components)
	}
	return v.Len() / v.components
}

func (v UniformValue) validate() error {
	n := v.Len()
	if n == 0 {
		return fmt.Errorf("%w: empty uniform value", ErrInvalidArgument)
	}
	if v.matrix {
		if v.components < 2 || v.components > 4 {
			return fmt.Errorf("%w: matrix order %d outside [2, 4]", ErrInvalidArgument, v.components)
		}
		if v.kind != uniformFloat && v.kind != uniformDouble {
			return fmt.Errorf("%w: %s matrices are not supported", ErrInvalidType, v.kind)
		}
		if n%(v.components*v.components) != 0 {
			return fmt.Errorf("%w: %d values do not form whole %dx%d matrices", ErrInvalidArgument,
				n, v.components, v.components)
		}
		return nil
	}
	if v.components < 1 || v.components > 4 {
		return fmt.Errorf("%w: vector length %d outside [1, 4]", ErrInvalidArgument, v.components)
	}
	if n%v.components != 0 {
		return fmt.Errorf("%w: %d values do not form whole vectors of %d", ErrInvalidArgument, n, v.components)
	}
	return nil
}

func (v UniformValue) String() string {
	shape := fmt.Sprintf("vec%d", v.components)
	switch {
	case v.matrix:
		shape = fmt.Sprintf("mat%d", v.components)
	case v.components == 1:
		shape = "scalar"
	}
	return fmt.Sprintf("UniformValue(%s %s, count: %d)", v.kind, shape, v.Count())
}
