package camera

import "github.com/go-gl/mathgl/mgl64"

type direction int

const (
	dirForward direction = iota
	dirBackward
	dirLeft
	dirRight
	dirUp
	dirDown
)

var heldDirections = [...]struct {
	action Action
	dir    direction
}{
	{Forward, dirForward},
	{Backward, dirBackward},
	{Left, dirLeft},
	{Right, dirRight},
	{Up, dirUp},
	{Down, dirDown},
}

// move integrates held movement actions and the left stick.
func (c *Controller) move(p *Pose, in Input, dt float64, view mgl64.Mat4) {
	amount := c.movementSpeed * dt
	for _, h := range heldDirections {
		if in.Held.Has(h.action) {
			c.step(p, view, h.dir, amount)
		}
	}
	for _, a := range in.Axes {
		switch a.Axis {
		case AxisLeftX:
			c.step(p, view, dirRight, amount*a.Value)
		case AxisLeftY:
			c.step(p, view, dirBackward, amount*a.Value)
		}
	}
}

// step moves p by amount in dir. With free-move the view basis is used as
// is; otherwise forward/backward stay on the ground plane and up/down move
// along world Y.
func (c *Controller) step(p *Pose, view mgl64.Mat4, dir direction, amount float64) {
	if c.freeMove {
		right, up, back := Basis(view)
		var d mgl64.Vec3
		switch dir {
		case dirForward:
			d = back.Mul(-amount)
		case dirBackward:
			d = back.Mul(amount)
		case dirLeft:
			d = right.Mul(-amount)
		case dirRight:
			d = right.Mul(amount)
		case dirUp:
			d = up.Mul(amount)
		case dirDown:
			d = up.Mul(-amount)
		}
		p.X += d[0]
		p.Y += d[1]
		p.Z += d[2]
		return
	}

	switch dir {
	case dirForward, dirBackward:
		a := amount * sign(c.upsideDown && c.invertForward)
		if dir == dirBackward {
			a = -a
		}
		p.X += view[8] * a
		p.Z -= view[0] * a
	case dirLeft:
		p.X -= view[0] * amount
		p.Z -= view[8] * amount
	case dirRight:
		p.X += view[0] * amount
		p.Z += view[8] * amount
	case dirUp:
		p.Y += amount * sign(c.upsideDown && c.invertVertical)
	case dirDown:
		p.Y -= amount * sign(c.upsideDown && c.invertVertical)
	}
}

// turn integrates pointer, right stick and roll input.
func (c *Controller) turn(p *Pose, in Input, dt float64) {
	k := c.mouseSensitivity * c.lens.SensitivityScale()
	yawSign := sign(c.upsideDown && c.invertYaw)
	pitchSign := sign(p.RolledOver() && c.invertPitch)

	p.Yaw += in.PointerDX * k * yawSign
	p.Pitch += in.PointerDY * k * pitchSign

	for _, a := range in.Axes {
		switch a.Axis {
		case AxisRightX:
			p.Yaw += a.Value * k * yawSign * AxisRate * dt
		case AxisRightY:
			p.Pitch += a.Value * k * pitchSign * AxisRate * dt
		}
	}

	if in.Held.Has(RollLeft) {
		p.Roll -= dt * k * RollRate
	}
	if in.Held.Has(RollRight) {
		p.Roll += dt * k * RollRate
	}
}

// adjust handles zoom, orbit distance and reset inputs.
func (c *Controller) adjust(p *Pose, in Input) {
	if in.Pressed.Has(Zoom) {
		c.lens.FovY = c.lens.ZoomFovY
	}
	if in.Released.Has(Zoom) {
		c.lens.FovY = c.lens.BaseFovY
	}

	p.Distance -= in.Scroll / ScrollStep
	if in.Held.Has(ResetDistance) {
		p.Distance = 0
	}

	if in.Held.Has(ResetPose) {
		*p = Pose{}
		def := DefaultLens()
		c.lens.ZNear = def.ZNear
		c.lens.ZFar = def.ZFar
		if !c.lens.Zoomed() {
			c.lens.FovY = c.lens.BaseFovY
		}
	}
}
