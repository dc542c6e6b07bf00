package model

// Properties blocks hold the immutable-after-creation identity data of an
// entity. The store assigns Id internally; OriginalId is for caller-supplied
// external identifiers. All properties structs are plain comparable values so
// transactions can detect changes with full-value equality.

// ScenarioProperties is the single global configuration record under id 0.
type ScenarioProperties struct {
	ReferenceYear int
	Description   string

	// IgnoreDuplicateGenericData suppresses back-to-back duplicate values on
	// generic-data insert while live data limiting is active.
	IgnoreDuplicateGenericData bool

	// Default retention thresholds for scenario-global data (id 0).
	DataLimitPoints  uint32
	DataLimitSeconds float64
}

// PlatformProperties identifies a platform. Platforms are top-level; they
// have no host.
type PlatformProperties struct {
	Id         ObjectId
	OriginalId uint64
}

// BeamKind distinguishes body beams from target-tracking beams.
type BeamKind uint8

const (
	BeamAbsolute BeamKind = iota
	BeamBody
	BeamTarget
)

// BeamProperties identifies a beam hosted on a platform.
type BeamProperties struct {
	Id         ObjectId
	OriginalId uint64
	HostId     ObjectId
	Kind       BeamKind
}

// GateKind distinguishes body gates from target gates.
type GateKind uint8

const (
	GateAbsolute GateKind = iota
	GateBody
	GateTarget
)

// GateProperties identifies a gate hosted on a beam.
type GateProperties struct {
	Id         ObjectId
	OriginalId uint64
	HostId     ObjectId
	Kind       GateKind
}

// LaserProperties identifies a laser hosted on a platform.
type LaserProperties struct {
	Id         ObjectId
	OriginalId uint64
	HostId     ObjectId
	// AzElRelativeToHostHeading orients the laser against the host body frame.
	AzElRelativeToHostHeading bool
}

// ProjectorProperties identifies a projector hosted on a platform or beam.
type ProjectorProperties struct {
	Id         ObjectId
	OriginalId uint64
	HostId     ObjectId
}

// LobGroupProperties identifies a line-of-bearing group hosted on a platform.
type LobGroupProperties struct {
	Id         ObjectId
	OriginalId uint64
	HostId     ObjectId
}

// CustomRenderingProperties identifies a custom rendering hosted on a platform.
type CustomRenderingProperties struct {
	Id         ObjectId
	OriginalId uint64
	HostId     ObjectId
	Renderer   string
}
