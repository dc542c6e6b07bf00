package model

// ObjectId uniquely identifies one entity within a store instance. Ids are
// generated monotonically, never reused, and never change once assigned.
// Id 0 is reserved for the scenario itself.
type ObjectId uint64

// ScenarioId is the reserved id of the scenario record.
const ScenarioId ObjectId = 0

// ObjectType is a bitmask identifying one or more entity kinds. Single-kind
// values classify an entity; combined values filter id listings.
type ObjectType uint16

// NoneType classifies an unknown id.
const NoneType ObjectType = 0

const (
	PlatformType ObjectType = 1 << iota
	BeamType
	GateType
	LaserType
	ProjectorType
	LobGroupType
	CustomRenderingType

	AllTypes = PlatformType | BeamType | GateType | LaserType |
		ProjectorType | LobGroupType | CustomRenderingType
)

// kindOrder fixes the enumeration order used by IDList and friends.
var kindOrder = []ObjectType{
	PlatformType, BeamType, GateType, LaserType,
	ProjectorType, LobGroupType, CustomRenderingType,
}

// KindOrder returns the fixed per-kind enumeration order.
func KindOrder() []ObjectType {
	out := make([]ObjectType, len(kindOrder))
	copy(out, kindOrder)
	return out
}

func (t ObjectType) String() string {
	switch t {
	case PlatformType:
		return "platform"
	case BeamType:
		return "beam"
	case GateType:
		return "gate"
	case LaserType:
		return "laser"
	case ProjectorType:
		return "projector"
	case LobGroupType:
		return "lobgroup"
	case CustomRenderingType:
		return "customrendering"
	case NoneType:
		return "none"
	case AllTypes:
		return "all"
	}
	return "mixed"
}

// Has reports whether mask includes the given single-kind type.
func (t ObjectType) Has(kind ObjectType) bool {
	return t&kind != 0
}
