package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/freecam/pkg/math"
	"github.com/Faultbox/freecam/pkg/matrix"
)

// upsideDownDecimals is the precision the up-basis cell is cut to before
// its sign is tested, so values like -1e-17 at pitch 90 read as level.
const upsideDownDecimals = 4

// Pose is the camera placement. Angles are degrees in [0, 360).
type Pose struct {
	X, Y, Z float64

	// Distance pulls the eye back along the view axis (orbit offset).
	Distance float64

	Yaw, Pitch, Roll float64
}

// View composes the view matrix for p on s. The stack depth is unchanged
// on return.
func (p Pose) View(s *matrix.Stack) mgl64.Mat4 {
	s.Push()
	defer s.Pop()

	s.LoadIdentity().
		Translate(0, 0, -p.Distance).
		Rotate(-p.Yaw, -p.Pitch, -p.Roll, matrix.ZXY, matrix.NewTimesOld).
		Translate(-p.X, -p.Y, -p.Z, matrix.NewTimesOld)
	return s.Peek()
}

// Basis returns the world-space axes of the camera as stored in the rows of
// a column-major view matrix.
func Basis(view mgl64.Mat4) (right, up, back mgl64.Vec3) {
	right = mgl64.Vec3{view[0], view[4], view[8]}
	up = mgl64.Vec3{view[1], view[5], view[9]}
	back = mgl64.Vec3{view[2], view[6], view[10]}
	return right, up, back
}

// UpsideDown reports whether the camera's up axis points below the horizon
// in the given view matrix.
func UpsideDown(view mgl64.Mat4) bool {
	return math.TruncateDecimals(view[5], upsideDownDecimals) < 0
}

// RolledOver reports whether roll has turned the camera past its side.
func (p Pose) RolledOver() bool {
	return p.Roll > 90 && p.Roll < 270
}
