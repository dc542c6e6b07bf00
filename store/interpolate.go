package store

import (
	"math"

	"github.com/signalsfoundry/simstore/model"
)

// Interpolator computes synthetic entity updates between two bracketing
// samples. Register one with SetInterpolator and enable it with
// EnableInterpolation; per-entity preference toggles still apply.
type Interpolator interface {
	InterpolatePlatform(a, b model.PlatformUpdate, time float64) model.PlatformUpdate
	InterpolateBeam(a, b model.BeamUpdate, time float64) model.BeamUpdate
	InterpolateGate(a, b model.GateUpdate, time float64) model.GateUpdate
	InterpolateLaser(a, b model.LaserUpdate, time float64) model.LaserUpdate
	InterpolateProjector(a, b model.ProjectorUpdate, time float64) model.ProjectorUpdate
}

// LinearInterpolator interpolates linearly between samples, taking the
// shortest path for angular fields.
type LinearInterpolator struct{}

func fraction(aTime, bTime, t float64) float64 {
	if bTime == aTime {
		return 0
	}
	return (t - aTime) / (bTime - aTime)
}

func lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}

// lerpAngle interpolates radians along the shorter arc.
func lerpAngle(a, b, f float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return a + d*f
}

func (LinearInterpolator) InterpolatePlatform(a, b model.PlatformUpdate, t float64) model.PlatformUpdate {
	f := fraction(a.Time, b.Time, t)
	return model.PlatformUpdate{
		Time: t,
		Position: model.Position{
			X: lerp(a.Position.X, b.Position.X, f),
			Y: lerp(a.Position.Y, b.Position.Y, f),
			Z: lerp(a.Position.Z, b.Position.Z, f),
		},
		HasPosition: a.HasPosition && b.HasPosition,
		Velocity: model.Velocity{
			VX: lerp(a.Velocity.VX, b.Velocity.VX, f),
			VY: lerp(a.Velocity.VY, b.Velocity.VY, f),
			VZ: lerp(a.Velocity.VZ, b.Velocity.VZ, f),
		},
		Orientation: model.Orientation{
			Psi:   lerpAngle(a.Orientation.Psi, b.Orientation.Psi, f),
			Theta: lerpAngle(a.Orientation.Theta, b.Orientation.Theta, f),
			Phi:   lerpAngle(a.Orientation.Phi, b.Orientation.Phi, f),
		},
	}
}

func (LinearInterpolator) InterpolateBeam(a, b model.BeamUpdate, t float64) model.BeamUpdate {
	f := fraction(a.Time, b.Time, t)
	return model.BeamUpdate{
		Time:      t,
		Azimuth:   lerpAngle(a.Azimuth, b.Azimuth, f),
		Elevation: lerpAngle(a.Elevation, b.Elevation, f),
		Range:     lerp(a.Range, b.Range, f),
	}
}

func (LinearInterpolator) InterpolateGate(a, b model.GateUpdate, t float64) model.GateUpdate {
	f := fraction(a.Time, b.Time, t)
	return model.GateUpdate{
		Time:        t,
		Azimuth:     lerpAngle(a.Azimuth, b.Azimuth, f),
		Elevation:   lerpAngle(a.Elevation, b.Elevation, f),
		MinRange:    lerp(a.MinRange, b.MinRange, f),
		MaxRange:    lerp(a.MaxRange, b.MaxRange, f),
		Centroid:    lerp(a.Centroid, b.Centroid, f),
		HasCentroid: a.HasCentroid && b.HasCentroid,
		Height:      lerp(a.Height, b.Height, f),
		Width:       lerp(a.Width, b.Width, f),
	}
}

func (LinearInterpolator) InterpolateLaser(a, b model.LaserUpdate, t float64) model.LaserUpdate {
	f := fraction(a.Time, b.Time, t)
	return model.LaserUpdate{
		Time:      t,
		Azimuth:   lerpAngle(a.Azimuth, b.Azimuth, f),
		Elevation: lerpAngle(a.Elevation, b.Elevation, f),
	}
}

func (LinearInterpolator) InterpolateProjector(a, b model.ProjectorUpdate, t float64) model.ProjectorUpdate {
	f := fraction(a.Time, b.Time, t)
	return model.ProjectorUpdate{
		Time: t,
		Fov:  lerp(a.Fov, b.Fov, f),
	}
}

// Adapters from the per-kind Interpolator methods to the slice-level
// single-type interface.

type platformInterp struct{ i Interpolator }

func (p platformInterp) Interpolate(a, b model.PlatformUpdate, t float64) model.PlatformUpdate {
	return p.i.InterpolatePlatform(a, b, t)
}

type beamInterp struct{ i Interpolator }

func (p beamInterp) Interpolate(a, b model.BeamUpdate, t float64) model.BeamUpdate {
	return p.i.InterpolateBeam(a, b, t)
}

type gateInterp struct{ i Interpolator }

func (p gateInterp) Interpolate(a, b model.GateUpdate, t float64) model.GateUpdate {
	return p.i.InterpolateGate(a, b, t)
}

type laserInterp struct{ i Interpolator }

func (p laserInterp) Interpolate(a, b model.LaserUpdate, t float64) model.LaserUpdate {
	return p.i.InterpolateLaser(a, b, t)
}

type projectorInterp struct{ i Interpolator }

func (p projectorInterp) Interpolate(a, b model.ProjectorUpdate, t float64) model.ProjectorUpdate {
	return p.i.InterpolateProjector(a, b, t)
}
