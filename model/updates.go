package model

// Update records are time-stamped samples appended to an entity's history.
// Times are seconds within the scenario's reference year. A static platform
// is represented by a single update at time -1.

// StaticTime marks a static (non-moving, never-expiring) platform update.
const StaticTime = -1.0

// Position is a point in the scenario frame, metres.
type Position struct {
	X, Y, Z float64
}

// Velocity is a velocity vector in the scenario frame, metres/second.
type Velocity struct {
	VX, VY, VZ float64
}

// Orientation is a body orientation, radians.
type Orientation struct {
	Psi, Theta, Phi float64
}

// PlatformUpdate is one platform state sample.
type PlatformUpdate struct {
	Time        float64
	Position    Position
	HasPosition bool
	Velocity    Velocity
	Orientation Orientation
}

func (u PlatformUpdate) RecordTime() float64 { return u.Time }

// BeamUpdate is one beam orientation sample. For target beams the advancer
// synthesises these; stored history is never consulted.
type BeamUpdate struct {
	Time      float64
	Azimuth   float64
	Elevation float64
	Range     float64
}

func (u BeamUpdate) RecordTime() float64 { return u.Time }

// GateUpdate is one gate geometry sample. Height or Width <= 0 means the
// dimension derives from the host beam's beamwidth.
type GateUpdate struct {
	Time        float64
	Azimuth     float64
	Elevation   float64
	MinRange    float64
	MaxRange    float64
	Centroid    float64
	HasCentroid bool
	Height      float64
	Width       float64
}

func (u GateUpdate) RecordTime() float64 { return u.Time }

// LaserUpdate is one laser orientation sample.
type LaserUpdate struct {
	Time      float64
	Azimuth   float64
	Elevation float64
}

func (u LaserUpdate) RecordTime() float64 { return u.Time }

// ProjectorUpdate is one projector field-of-view sample.
type ProjectorUpdate struct {
	Time float64
	Fov  float64
}

func (u ProjectorUpdate) RecordTime() float64 { return u.Time }

// LobGroupUpdate is one line-of-bearing sample.
type LobGroupUpdate struct {
	Time      float64
	Azimuth   float64
	Elevation float64
	Range     float64
}

func (u LobGroupUpdate) RecordTime() float64 { return u.Time }

// CustomRenderingUpdate marks a rendering-content change at a point in time.
type CustomRenderingUpdate struct {
	Time float64
}

func (u CustomRenderingUpdate) RecordTime() float64 { return u.Time }

// GenericData is one sparse tagged scalar sample, attached to an entity or to
// the scenario under id 0.
type GenericData struct {
	Time  float64
	Tag   string
	Value string
}

func (u GenericData) RecordTime() float64 { return u.Time }

// CategoryData is one category sample. Name and Value are interned ints from
// the category registry.
type CategoryData struct {
	Time  float64
	Name  int
	Value int
}

func (u CategoryData) RecordTime() float64 { return u.Time }
