// Package matrix provides a small stack-based 4x4 transform builder.
//
// Matrices are mgl64.Mat4 values: 16 float64 in column-major order, the
// layout glLoadMatrixd expects. The same memory read row-major is the
// row-vector (v' = v·M) form of the matrix, and multiplication orders are
// named after that product:
//
//	OldTimesNew  the new transform acts on vertices after the existing ones
//	NewTimesOld  the new transform acts on vertices before the existing ones
//
// A Stack is not safe for concurrent use. Keep it on the render thread.
package matrix

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrStackUnderflow is the panic value of Pop on a stack holding only its
// base frame.
var ErrStackUnderflow = errors.New("matrix: pop would remove the base frame")

// MultiplicationOrder selects which side of the top frame a new transform
// is multiplied onto.
type MultiplicationOrder int

const (
	// OldTimesNew applies the new transform after the existing ones.
	OldTimesNew MultiplicationOrder = iota
	// NewTimesOld applies the new transform before the existing ones.
	NewTimesOld
)

// String returns the order name.
func (o MultiplicationOrder) String() string {
	switch o {
	case OldTimesNew:
		return "OLDxNEW"
	case NewTimesOld:
		return "NEWxOLD"
	default:
		return "unknown"
	}
}

// Stack is a LIFO of 4x4 frames. The zero value is not usable; call New.
type Stack struct {
	frames []mgl64.Mat4
}

// New returns a stack holding a single identity frame.
func New() *Stack {
	return NewWithCapacity(4)
}

// NewWithCapacity returns a stack with room for n frames before growing.
func NewWithCapacity(n int) *Stack {
	if n < 1 {
		n = 1
	}
	s := &Stack{frames: make([]mgl64.Mat4, 1, n)}
	s.frames[0] = mgl64.Ident4()
	return s
}

// Depth returns the number of frames, including the base frame.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Push duplicates the top frame.
func (s *Stack) Push() *Stack {
	s.frames = append(s.frames, s.frames[len(s.frames)-1])
	return s
}

// Pop discards the top frame. Popping the base frame is a programming error
// and panics with ErrStackUnderflow.
func (s *Stack) Pop() *Stack {
	if len(s.frames) <= 1 {
		panic(ErrStackUnderflow)
	}
	s.frames = s.frames[:len(s.frames)-1]
	return s
}

// Peek returns a copy of the top frame.
func (s *Stack) Peek() mgl64.Mat4 {
	return s.frames[len(s.frames)-1]
}

// Peekf returns a single-precision copy of the top frame.
func (s *Stack) Peekf() mgl32.Mat4 {
	top := s.frames[len(s.frames)-1]
	var out mgl32.Mat4
	for i, v := range top {
		out[i] = float32(v)
	}
	return out
}

// LoadIdentity replaces the top frame with the identity matrix.
func (s *Stack) LoadIdentity() *Stack {
	s.frames[len(s.frames)-1] = mgl64.Ident4()
	return s
}

// Load replaces the top frame with m.
func (s *Stack) Load(m mgl64.Mat4) *Stack {
	s.frames[len(s.frames)-1] = m
	return s
}

// Mult multiplies m into the top frame.
func (s *Stack) Mult(m mgl64.Mat4, order MultiplicationOrder) *Stack {
	i := len(s.frames) - 1
	if order == NewTimesOld {
		s.frames[i] = s.frames[i].Mul4(m)
	} else {
		s.frames[i] = m.Mul4(s.frames[i])
	}
	return s
}

// Translate multiplies a translation into the top frame. The order defaults
// to OldTimesNew; only the first order argument is used.
func (s *Stack) Translate(x, y, z float64, order ...MultiplicationOrder) *Stack {
	return s.Mult(mgl64.Translate3D(x, y, z), orderOrDefault(order))
}

// Scale multiplies a scale into the top frame. The order defaults to
// OldTimesNew.
func (s *Stack) Scale(x, y, z float64, order ...MultiplicationOrder) *Stack {
	return s.Mult(mgl64.Scale3D(x, y, z), orderOrDefault(order))
}

// Rotate multiplies the rotation built by Rotation into the top frame.
func (s *Stack) Rotate(yaw, pitch, roll float64, axes RotationOrder, order MultiplicationOrder) *Stack {
	return s.Mult(Rotation(yaw, pitch, roll, axes), order)
}

func orderOrDefault(order []MultiplicationOrder) MultiplicationOrder {
	if len(order) == 0 {
		return OldTimesNew
	}
	return order[0]
}
