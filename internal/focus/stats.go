package focus

import (
	"fmt"

	"github.com/focusly/todo/internal/asana"
)

// StatKind identifies one of the seven daily stats.
type StatKind string

const (
	StatSleep        StatKind = "sleep"
	StatEnergy       StatKind = "energy"
	StatFlow         StatKind = "flow"
	StatHydration    StatKind = "hydration"
	StatHealth       StatKind = "health"
	StatSatisfaction StatKind = "satisfaction"
	StatStress       StatKind = "stress"
)

// StatKinds lists all stats in display order.
var StatKinds = []StatKind{
	StatSleep, StatEnergy, StatFlow, StatHydration,
	StatHealth, StatSatisfaction, StatStress,
}

// MorningKinds are the stats filled at the start of the day; the rest
// belong to the evening routine.
var MorningKinds = []StatKind{StatSleep, StatEnergy}

// IsMorning reports whether the stat belongs to the morning routine.
func (k StatKind) IsMorning() bool {
	return k == StatSleep || k == StatEnergy
}

// StatFields maps each stat kind to the GID of the Asana custom field it
// is stored in.
type StatFields map[StatKind]string

// DefaultStatFields are the historical field GIDs of the focus project.
var DefaultStatFields = StatFields{
	StatSleep:        "1204172638538713",
	StatEnergy:       "1204172638540767",
	StatFlow:         "1204172638540769",
	StatHydration:    "1204172638540771",
	StatHealth:       "1204172638540773",
	StatSatisfaction: "1204172638540775",
	StatStress:       "1204172638540777",
}

// Validate checks that every stat kind has a distinct, non-empty GID.
func (f StatFields) Validate() error {
	seen := make(map[string]StatKind, len(f))
	for _, kind := range StatKinds {
		gid, ok := f[kind]
		if !ok || gid == "" {
			return fmt.Errorf("no custom field GID for stat %q", kind)
		}
		if prev, dup := seen[gid]; dup {
			return fmt.Errorf("stats %q and %q share custom field GID %s", prev, kind, gid)
		}
		seen[gid] = kind
	}
	return nil
}

// kindFor resolves a custom field GID back to its stat kind.
func (f StatFields) kindFor(gid string) (StatKind, bool) {
	for kind, g := range f {
		if g == gid {
			return kind, true
		}
	}
	return "", false
}

// UnknownStatError means a focus task carries a custom field that no
// configured stat maps to. Proceeding would silently drop data, so
// decoding aborts instead.
type UnknownStatError struct {
	GID string
}

func (e *UnknownStatError) Error() string {
	return "unknown focus stat custom field GID: " + e.GID
}

// Stats holds the seven daily stat values. A nil entry is unfilled.
// Values range 0 through 9.
type Stats struct {
	Sleep        *int
	Energy       *int
	Flow         *int
	Hydration    *int
	Health       *int
	Satisfaction *int
	Stress       *int
}

func (s *Stats) slot(kind StatKind) **int {
	switch kind {
	case StatSleep:
		return &s.Sleep
	case StatEnergy:
		return &s.Energy
	case StatFlow:
		return &s.Flow
	case StatHydration:
		return &s.Hydration
	case StatHealth:
		return &s.Health
	case StatSatisfaction:
		return &s.Satisfaction
	case StatStress:
		return &s.Stress
	}
	panic("unknown stat kind: " + kind)
}

// Get returns the value for kind, or nil when unfilled.
func (s Stats) Get(kind StatKind) *int {
	return *s.slot(kind)
}

// Set fills the value for kind.
func (s *Stats) Set(kind StatKind, value int) {
	v := value
	*s.slot(kind) = &v
}

// Equal reports whether both stats hold the same values.
func (s Stats) Equal(other Stats) bool {
	for _, kind := range StatKinds {
		a, b := s.Get(kind), other.Get(kind)
		if (a == nil) != (b == nil) {
			return false
		}
		if a != nil && *a != *b {
			return false
		}
	}
	return true
}

// DecodeStats reads stat values out of a task's custom fields. Every
// field must map to a configured stat; an unrecognized GID is a hard
// error rather than silent data loss.
func DecodeStats(fields []asana.TaskCustomField, statFields StatFields) (Stats, error) {
	var stats Stats
	for _, field := range fields {
		kind, ok := statFields.kindFor(field.GID)
		if !ok {
			return Stats{}, &UnknownStatError{GID: field.GID}
		}
		if field.NumberValue != nil {
			stats.Set(kind, *field.NumberValue)
		}
	}
	return stats, nil
}

// EncodeCustomFields renders the filled stats as the custom_fields
// payload of a task update. Unfilled stats are omitted entirely.
func EncodeCustomFields(stats Stats, statFields StatFields) map[string]int {
	out := make(map[string]int)
	for _, kind := range StatKinds {
		if v := stats.Get(kind); v != nil {
			out[statFields[kind]] = *v
		}
	}
	return out
}
