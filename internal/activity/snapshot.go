package activity

import (
	"encoding/json"
	"errors"
	"fmt"
)

// StatKind tags a summary statistic with its classification family. The
// set is closed; unknown tags are rejected when snapshot data is decoded
// so downstream dispatch never sees an unhandled kind.
type StatKind string

const (
	KindStreak     StatKind = "streak"
	KindPercentage StatKind = "percentage"
	KindCards      StatKind = "cards"
)

// ParseStatKind validates a kind tag from snapshot data.
func ParseStatKind(tag string) (StatKind, error) {
	switch kind := StatKind(tag); kind {
	case KindStreak, KindPercentage, KindCards:
		return kind, nil
	}
	return "", fmt.Errorf("unknown stat kind %q", tag)
}

// Well-known stat names. StatDailyAvg is mandatory on non-empty
// snapshots; the dynamic legend derives from it.
const (
	StatStreakMax  = "streak_max"
	StatStreakCur  = "streak_cur"
	StatDaysActive = "pct_days_active"
	StatDailyAvg   = "activity_daily_avg"
)

// Stat is one summary statistic attached to a snapshot.
type Stat struct {
	Kind  StatKind
	Value float64
}

type statWire struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// UnmarshalJSON decodes the wire form and validates the kind tag.
func (s *Stat) UnmarshalJSON(data []byte) error {
	var raw statWire
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	kind, err := ParseStatKind(raw.Type)
	if err != nil {
		return err
	}
	s.Kind = kind
	s.Value = raw.Value
	return nil
}

// MarshalJSON emits the wire form.
func (s Stat) MarshalJSON() ([]byte, error) {
	return json.Marshal(statWire{Type: string(s.Kind), Value: s.Value})
}

// Snapshot is a pre-computed view of per-day activity. Counts for future
// days are stored negated; the sign carries the past/future distinction
// through classification and rendering.
type Snapshot struct {
	Activity map[int64]float64 `json:"activity"`
	Start    int64             `json:"start"`
	Stop     int64             `json:"stop"`
	Today    int64             `json:"today"`
	Offset   int               `json:"offset"`
	Stats    map[string]Stat   `json:"stats"`
}

// ErrNoSnapshot reports a missing snapshot source.
var ErrNoSnapshot = errors.New("no activity snapshot")

// Decode parses snapshot JSON and validates it.
func Decode(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if err := snap.validate(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *Snapshot) validate() error {
	if len(s.Activity) == 0 {
		// Empty snapshots render the no-data state, no stats needed.
		return nil
	}
	if _, ok := s.Stats[StatDailyAvg]; !ok {
		return fmt.Errorf("snapshot missing required stat %q", StatDailyAvg)
	}
	return nil
}

// Empty reports whether the snapshot has no recorded activity.
func (s *Snapshot) Empty() bool {
	return s == nil || len(s.Activity) == 0
}

// Clone returns a deep copy safe to window and hand out while the
// original stays cached.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := *s
	out.Activity = make(map[int64]float64, len(s.Activity))
	for day, count := range s.Activity {
		out.Activity[day] = count
	}
	out.Stats = make(map[string]Stat, len(s.Stats))
	for name, stat := range s.Stats {
		out.Stats[name] = stat
	}
	return &out
}
