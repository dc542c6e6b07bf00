package model

// Command records are piecewise-constant preference overrides keyed by time.
// The advancer applies every command at or before the cursor, oldest first,
// by merging the command's patch into the entity's live preferences. Patch
// fields are pointers: nil leaves the preference untouched.

// CommonPrefsPatch overrides fields shared by every entity kind.
type CommonPrefsPatch struct {
	DataDraw         *bool
	UseAlias         *bool
	Alias            *string
	DataLimitPoints  *uint32
	DataLimitSeconds *float64
}

// ApplyTo merges the patch into prefs, reporting whether anything changed.
func (p CommonPrefsPatch) ApplyTo(prefs *CommonPrefs) bool {
	changed := false
	if p.DataDraw != nil && prefs.DataDraw != *p.DataDraw {
		prefs.DataDraw = *p.DataDraw
		changed = true
	}
	if p.UseAlias != nil && prefs.UseAlias != *p.UseAlias {
		prefs.UseAlias = *p.UseAlias
		changed = true
	}
	if p.Alias != nil && prefs.Alias != *p.Alias {
		prefs.Alias = *p.Alias
		changed = true
	}
	if p.DataLimitPoints != nil && prefs.DataLimitPoints != *p.DataLimitPoints {
		prefs.DataLimitPoints = *p.DataLimitPoints
		changed = true
	}
	if p.DataLimitSeconds != nil && prefs.DataLimitSeconds != *p.DataLimitSeconds {
		prefs.DataLimitSeconds = *p.DataLimitSeconds
		changed = true
	}
	return changed
}

// PlatformCommand overrides platform preferences from a point in time onward.
type PlatformCommand struct {
	Time        float64
	Common      CommonPrefsPatch
	Icon        *string
	Interpolate *bool
}

func (c PlatformCommand) RecordTime() float64 { return c.Time }

// ApplyTo merges the command into prefs, reporting whether anything changed.
func (c PlatformCommand) ApplyTo(prefs *PlatformPrefs) bool {
	changed := c.Common.ApplyTo(&prefs.CommonPrefs)
	if c.Icon != nil && prefs.Icon != *c.Icon {
		prefs.Icon = *c.Icon
		changed = true
	}
	if c.Interpolate != nil && prefs.InterpolatePos != *c.Interpolate {
		prefs.InterpolatePos = *c.Interpolate
		changed = true
	}
	return changed
}

// BeamCommand overrides beam preferences. TargetId retasks a target beam.
type BeamCommand struct {
	Time            float64
	Common          CommonPrefsPatch
	TargetId        *ObjectId
	HorizontalWidth *float64
	VerticalWidth   *float64
}

func (c BeamCommand) RecordTime() float64 { return c.Time }

func (c BeamCommand) ApplyTo(prefs *BeamPrefs) bool {
	changed := c.Common.ApplyTo(&prefs.CommonPrefs)
	if c.TargetId != nil && prefs.TargetId != *c.TargetId {
		prefs.TargetId = *c.TargetId
		changed = true
	}
	if c.HorizontalWidth != nil && prefs.HorizontalWidth != *c.HorizontalWidth {
		prefs.HorizontalWidth = *c.HorizontalWidth
		changed = true
	}
	if c.VerticalWidth != nil && prefs.VerticalWidth != *c.VerticalWidth {
		prefs.VerticalWidth = *c.VerticalWidth
		changed = true
	}
	return changed
}

// GateCommand overrides gate preferences.
type GateCommand struct {
	Time   float64
	Common CommonPrefsPatch
}

func (c GateCommand) RecordTime() float64 { return c.Time }

func (c GateCommand) ApplyTo(prefs *GatePrefs) bool {
	return c.Common.ApplyTo(&prefs.CommonPrefs)
}

// LaserCommand overrides laser preferences.
type LaserCommand struct {
	Time   float64
	Common CommonPrefsPatch
}

func (c LaserCommand) RecordTime() float64 { return c.Time }

func (c LaserCommand) ApplyTo(prefs *LaserPrefs) bool {
	return c.Common.ApplyTo(&prefs.CommonPrefs)
}

// ProjectorCommand overrides projector preferences.
type ProjectorCommand struct {
	Time   float64
	Common CommonPrefsPatch
}

func (c ProjectorCommand) RecordTime() float64 { return c.Time }

func (c ProjectorCommand) ApplyTo(prefs *ProjectorPrefs) bool {
	return c.Common.ApplyTo(&prefs.CommonPrefs)
}

// LobGroupCommand overrides line-of-bearing group preferences.
type LobGroupCommand struct {
	Time           float64
	Common         CommonPrefsPatch
	MaxDataPoints  *uint32
	MaxDataSeconds *float64
}

func (c LobGroupCommand) RecordTime() float64 { return c.Time }

func (c LobGroupCommand) ApplyTo(prefs *LobGroupPrefs) bool {
	changed := c.Common.ApplyTo(&prefs.CommonPrefs)
	if c.MaxDataPoints != nil && prefs.MaxDataPoints != *c.MaxDataPoints {
		prefs.MaxDataPoints = *c.MaxDataPoints
		changed = true
	}
	if c.MaxDataSeconds != nil && prefs.MaxDataSeconds != *c.MaxDataSeconds {
		prefs.MaxDataSeconds = *c.MaxDataSeconds
		changed = true
	}
	return changed
}

// CustomRenderingCommand overrides custom rendering preferences.
type CustomRenderingCommand struct {
	Time        float64
	Common      CommonPrefsPatch
	Persistence *float64
}

func (c CustomRenderingCommand) RecordTime() float64 { return c.Time }

func (c CustomRenderingCommand) ApplyTo(prefs *CustomRenderingPrefs) bool {
	changed := c.Common.ApplyTo(&prefs.CommonPrefs)
	if c.Persistence != nil && prefs.Persistence != *c.Persistence {
		prefs.Persistence = *c.Persistence
		changed = true
	}
	return changed
}
