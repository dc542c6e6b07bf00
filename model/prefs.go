package model

// Preferences are the mutable, versioned configuration of an entity. They are
// plain comparable structs: the transaction layer clones them by value and
// detects changes with ==, skipping notification when nothing changed.

// CommonPrefs is embedded in every per-kind preferences struct.
type CommonPrefs struct {
	Name     string
	Alias    string
	UseAlias bool

	// DataDraw gates whether the entity's current state is published at all;
	// when false the time-cursor advancer sets current to none.
	DataDraw bool

	// Retention thresholds for this entity's history. Zero means unbounded
	// for that dimension.
	DataLimitPoints  uint32
	DataLimitSeconds float64
}

// DisplayName returns the name shown to the user: the alias when alias use is
// enabled and non-empty, otherwise the name.
func (c CommonPrefs) DisplayName() string {
	if c.UseAlias && c.Alias != "" {
		return c.Alias
	}
	return c.Name
}

// PlatformPrefs configures a platform.
type PlatformPrefs struct {
	CommonPrefs
	InterpolatePos bool
	Icon           string
	DynamicScale   bool
}

// BeamPrefs configures a beam. TargetId selects the tracked platform for
// target beams; it lives in preferences (not properties) because the target
// can be retasked at runtime.
type BeamPrefs struct {
	CommonPrefs
	InterpolateBeamPos bool
	TargetId           ObjectId
	VerticalWidth      float64
	HorizontalWidth    float64
}

// GatePrefs configures a gate.
type GatePrefs struct {
	CommonPrefs
	InterpolateGatePos bool
	FillPattern        uint8
}

// LaserPrefs configures a laser. Lasers always interpolate when an
// interpolator is registered; there is no per-entity toggle.
type LaserPrefs struct {
	CommonPrefs
	LaserXyzOffset float64
}

// ProjectorPrefs configures a projector.
type ProjectorPrefs struct {
	CommonPrefs
	InterpolateProjectorFov bool
}

// LobGroupPrefs configures a line-of-bearing group. MaxDataPoints and
// MaxDataSeconds tune the LOB slice live on every advance, independent of the
// common data-limit thresholds.
type LobGroupPrefs struct {
	CommonPrefs
	MaxDataPoints  uint32
	MaxDataSeconds float64
}

// CustomRenderingPrefs configures a custom rendering.
type CustomRenderingPrefs struct {
	CommonPrefs
	Persistence float64
}
