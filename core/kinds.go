package core

// TaskKind classifies a task into one of the closed set of city-service
// categories. The zero value is KindOther, which is also the fallback
// for any unknown or invalid input.
type TaskKind int

const (
	KindOther TaskKind = iota
	KindStreetCleaning
	KindRepairs
	KindMaintenance
	KindSensorMonitoring
	KindDataAnalytics
	KindTransport
	KindSafety
	KindUtilities
)

// taskKindTokens maps each kind to its canonical wire token.
// Tokens are stable: they round-trip through MarshalText/UnmarshalText
// and through the JSON and HCL loaders unchanged.
var taskKindTokens = map[TaskKind]string{
	KindOther:            "OTHER",
	KindStreetCleaning:   "STREET_CLEANING",
	KindRepairs:          "REPAIRS",
	KindMaintenance:      "MAINTENANCE",
	KindSensorMonitoring: "SENSOR_MONITORING",
	KindDataAnalytics:    "DATA_ANALYTICS",
	KindTransport:        "TRANSPORT",
	KindSafety:           "SAFETY",
	KindUtilities:        "UTILITIES",
}

// taskKindNames maps each kind to its human-readable display name.
var taskKindNames = map[TaskKind]string{
	KindOther:            "Other",
	KindStreetCleaning:   "Street Cleaning",
	KindRepairs:          "Repairs",
	KindMaintenance:      "Maintenance",
	KindSensorMonitoring: "Sensor Monitoring",
	KindDataAnalytics:    "Data Analytics",
	KindTransport:        "Transport",
	KindSafety:           "Safety",
	KindUtilities:        "Utilities",
}

// String returns the canonical token for k ("STREET_CLEANING", ...).
// Unknown values collapse to the KindOther token.
func (k TaskKind) String() string {
	if s, ok := taskKindTokens[k]; ok {
		return s
	}

	return taskKindTokens[KindOther]
}

// DisplayName returns the human-readable name for k ("Street Cleaning", ...).
func (k TaskKind) DisplayName() string {
	if s, ok := taskKindNames[k]; ok {
		return s
	}

	return taskKindNames[KindOther]
}

// Valid reports whether k is one of the declared kinds.
func (k TaskKind) Valid() bool {
	_, ok := taskKindTokens[k]

	return ok
}

// MarshalText implements encoding.TextMarshaler using the canonical token.
func (k TaskKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Unknown tokens decode to KindOther rather than failing: graph files
// written by newer revisions must still load.
func (k *TaskKind) UnmarshalText(text []byte) error {
	*k = ParseTaskKind(string(text))

	return nil
}

// ParseTaskKind resolves a canonical token to its TaskKind.
// Any unrecognized token yields KindOther.
func ParseTaskKind(token string) TaskKind {
	for kind, t := range taskKindTokens {
		if t == token {
			return kind
		}
	}

	return KindOther
}

// DependencyKind classifies the relationship an edge models between two
// tasks. The zero value is DepOther, the fallback for unknown input.
type DependencyKind int

const (
	DepOther DependencyKind = iota
	DepTaskDependency
	DepResourceSharing
	DepTemporalConstraint
	DepDataFlow
	DepPhysicalConstraint
)

// dependencyKindTokens maps each dependency kind to its canonical token.
var dependencyKindTokens = map[DependencyKind]string{
	DepOther:              "OTHER",
	DepTaskDependency:     "TASK_DEPENDENCY",
	DepResourceSharing:    "RESOURCE_SHARING",
	DepTemporalConstraint: "TEMPORAL_CONSTRAINT",
	DepDataFlow:           "DATA_FLOW",
	DepPhysicalConstraint: "PHYSICAL_CONSTRAINT",
}

// String returns the canonical token for d.
func (d DependencyKind) String() string {
	if s, ok := dependencyKindTokens[d]; ok {
		return s
	}

	return dependencyKindTokens[DepOther]
}

// Valid reports whether d is one of the declared dependency kinds.
func (d DependencyKind) Valid() bool {
	_, ok := dependencyKindTokens[d]

	return ok
}

// MarshalText implements encoding.TextMarshaler using the canonical token.
func (d DependencyKind) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; unknown tokens
// decode to DepOther.
func (d *DependencyKind) UnmarshalText(text []byte) error {
	*d = ParseDependencyKind(string(text))

	return nil
}

// ParseDependencyKind resolves a canonical token to its DependencyKind.
// Any unrecognized token yields DepOther.
func ParseDependencyKind(token string) DependencyKind {
	for kind, t := range dependencyKindTokens {
		if t == token {
			return kind
		}
	}

	return DepOther
}
