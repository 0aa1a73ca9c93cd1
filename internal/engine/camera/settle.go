package camera

import (
	gomath "math"

	"github.com/Faultbox/freecam/pkg/math"
)

// settle wraps the angles to [0, 360). Without free-look pitch is kept out
// of the band past vertical and roll decays back to level.
func (c *Controller) settle(p *Pose) {
	p.Yaw = math.Wrap360(p.Yaw)
	p.Pitch = math.Wrap360(p.Pitch)
	p.Roll = math.Wrap360(p.Roll)
	if c.freeLook {
		return
	}
	p.Pitch = ClampPitch(p.Pitch)
	p.Roll = DampRoll(p.Roll)
}

// ClampPitch pulls a wrapped pitch in (90, 270) back to 90 or 270,
// whichever side of 180 it is on.
func ClampPitch(pitch float64) float64 {
	switch {
	case pitch > 90 && pitch <= 180:
		return 90
	case pitch > 180 && pitch < 270:
		return 270
	default:
		return pitch
	}
}

// DampRoll moves a wrapped roll one damping step toward level, going the
// short way around, and snaps it to 0 once it is within RollSnap.
func DampRoll(roll float64) float64 {
	if roll > 180 {
		roll = (roll-math.FullTurn)*RollDamping + math.FullTurn
	} else {
		roll *= RollDamping
	}
	roll = math.Wrap360(roll)
	if gomath.Abs(roll) < RollSnap || gomath.Abs(roll) > math.FullTurn-RollSnap {
		return 0
	}
	return roll
}
