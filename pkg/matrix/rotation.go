package matrix

import "github.com/go-gl/mathgl/mgl64"

// RotationOrder lists the axes in the order their single-axis matrices are
// multiplied (column-vector product). For ZXY the combined rotation is
// Rz·Rx·Ry, so a vertex is turned about Y first and about Z last.
type RotationOrder int

const (
	// ZXY is the default order: yaw, then pitch, then roll.
	ZXY RotationOrder = iota
	XYZ
	XZY
	YXZ
	YZX
	ZYX
)

var rotationOrderNames = [...]string{
	ZXY: "ZXY",
	XYZ: "XYZ",
	XZY: "XZY",
	YXZ: "YXZ",
	YZX: "YZX",
	ZYX: "ZYX",
}

// String returns the axis letters of the order.
func (o RotationOrder) String() string {
	if o < 0 || int(o) >= len(rotationOrderNames) {
		return "unknown"
	}
	return rotationOrderNames[o]
}

// Reverse returns the order that undoes o when used with negated angles.
func (o RotationOrder) Reverse() RotationOrder {
	switch o {
	case XYZ:
		return ZYX
	case XZY:
		return YZX
	case YXZ:
		return ZXY
	case YZX:
		return XZY
	case ZYX:
		return XYZ
	default:
		return YXZ
	}
}

// Rotation combines rotations about Y (yaw), X (pitch) and Z (roll), given
// in degrees, in the requested axis order.
func Rotation(yaw, pitch, roll float64, order RotationOrder) mgl64.Mat4 {
	rx := mgl64.HomogRotate3DX(mgl64.DegToRad(pitch))
	ry := mgl64.HomogRotate3DY(mgl64.DegToRad(yaw))
	rz := mgl64.HomogRotate3DZ(mgl64.DegToRad(roll))

	switch order {
	case XYZ:
		return rx.Mul4(ry).Mul4(rz)
	case XZY:
		return rx.Mul4(rz).Mul4(ry)
	case YXZ:
		return ry.Mul4(rx).Mul4(rz)
	case YZX:
		return ry.Mul4(rz).Mul4(rx)
	case ZYX:
		return rz.Mul4(ry).Mul4(rx)
	default:
		return rz.Mul4(rx).Mul4(ry)
	}
}
