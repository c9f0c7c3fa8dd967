package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SourceKind distinguishes where a draft action takes tiles from.
type SourceKind int

const (
	SourceFactory SourceKind = iota
	SourceCenter
)

// ActionSource is a tagged union: either a specific factory index or the
// center. It serializes as {"Factory": i} or the bare string "Center",
// matching the discriminated-union shape the host's JSON boundary expects.
type ActionSource struct {
	Kind         SourceKind
	FactoryIndex int
}

// FactorySource returns a source naming factory i.
func FactorySource(i int) ActionSource {
	return ActionSource{Kind: SourceFactory, FactoryIndex: i}
}

// CenterSource returns the center source.
func CenterSource() ActionSource {
	return ActionSource{Kind: SourceCenter}
}

func (s ActionSource) String() string {
	if s.Kind == SourceCenter {
		return "Center"
	}
	return fmt.Sprintf("Factory(%d)", s.FactoryIndex)
}

// MarshalJSON renders Center as "Center" and Factory(i) as {"Factory": i}.
func (s ActionSource) MarshalJSON() ([]byte, error) {
	if s.Kind == SourceCenter {
		return []byte(`"Center"`), nil
	}
	return json.Marshal(struct {
		Factory int `json:"Factory"`
	}{s.FactoryIndex})
}

// UnmarshalJSON accepts either the bare string "Center" or an object
// {"Factory": i}.
func (s *ActionSource) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var str string
		if err := json.Unmarshal(trimmed, &str); err != nil {
			return fmt.Errorf("model: invalid action source: %w", err)
		}
		if str != "Center" {
			return fmt.Errorf("model: invalid action source string %q", str)
		}
		*s = CenterSource()
		return nil
	}
	var obj struct {
		Factory *int `json:"Factory"`
	}
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return fmt.Errorf("model: invalid action source: %w", err)
	}
	if obj.Factory == nil {
		return fmt.Errorf("model: action source object missing \"Factory\" key")
	}
	*s = FactorySource(*obj.Factory)
	return nil
}

// DestinationKind distinguishes where drafted tiles are placed.
type DestinationKind int

const (
	DestPatternLine DestinationKind = iota
	DestFloor
)

// Destination is a tagged union: either a pattern-line row or the floor.
// It serializes as {"PatternLine": row} or the bare string "Floor".
type Destination struct {
	Kind DestinationKind
	Row  int
}

// PatternLineDestination returns a destination naming pattern-line row.
func PatternLineDestination(row int) Destination {
	return Destination{Kind: DestPatternLine, Row: row}
}

// FloorDestination returns the floor destination.
func FloorDestination() Destination {
	return Destination{Kind: DestFloor}
}

func (d Destination) String() string {
	if d.Kind == DestFloor {
		return "Floor"
	}
	return fmt.Sprintf("PatternLine(%d)", d.Row)
}

// MarshalJSON renders Floor as "Floor" and PatternLine(row) as
// {"PatternLine": row}.
func (d Destination) MarshalJSON() ([]byte, error) {
	if d.Kind == DestFloor {
		return []byte(`"Floor"`), nil
	}
	return json.Marshal(struct {
		PatternLine int `json:"PatternLine"`
	}{d.Row})
}

// UnmarshalJSON accepts either the bare string "Floor" or an object
// {"PatternLine": row}.
func (d *Destination) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var str string
		if err := json.Unmarshal(trimmed, &str); err != nil {
			return fmt.Errorf("model: invalid destination: %w", err)
		}
		if str != "Floor" {
			return fmt.Errorf("model: invalid destination string %q", str)
		}
		*d = FloorDestination()
		return nil
	}
	var obj struct {
		PatternLine *int `json:"PatternLine"`
	}
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return fmt.Errorf("model: invalid destination: %w", err)
	}
	if obj.PatternLine == nil {
		return fmt.Errorf("model: destination object missing \"PatternLine\" key")
	}
	*d = PatternLineDestination(*obj.PatternLine)
	return nil
}

// DraftAction is a complete player action: take every tile of Color from
// Source, send it to Destination.
type DraftAction struct {
	Source      ActionSource `json:"source"`
	Color       TileColor    `json:"color"`
	Destination Destination  `json:"destination"`
}

func (a DraftAction) String() string {
	return fmt.Sprintf("%s/%s/%s", a.Source, a.Color, a.Destination)
}

// Equal reports whether a and other describe the identical action.
func (a DraftAction) Equal(other DraftAction) bool {
	return a.Source == other.Source && a.Color == other.Color && a.Destination == other.Destination
}
