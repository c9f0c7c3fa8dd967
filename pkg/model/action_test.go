package model

import (
	"encoding/json"
	"testing"
)

func TestActionSource_JSONShape(t *testing.T) {
	data, err := json.Marshal(CenterSource())
	if err != nil {
		t.Fatalf("Marshal(Center): %v", err)
	}
	if string(data) != `"Center"` {
		t.Errorf("Center marshaled as %s, want \"Center\"", data)
	}

	data, err = json.Marshal(FactorySource(2))
	if err != nil {
		t.Fatalf("Marshal(Factory(2)): %v", err)
	}
	if string(data) != `{"Factory":2}` {
		t.Errorf("Factory(2) marshaled as %s, want {\"Factory\":2}", data)
	}
}

func TestActionSource_JSONRoundTrip(t *testing.T) {
	for _, src := range []ActionSource{CenterSource(), FactorySource(0), FactorySource(4)} {
		data, err := json.Marshal(src)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", src, err)
		}
		var got ActionSource
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if got != src {
			t.Errorf("round trip: got %v, want %v", got, src)
		}
	}
}

func TestDestination_JSONShape(t *testing.T) {
	data, err := json.Marshal(FloorDestination())
	if err != nil {
		t.Fatalf("Marshal(Floor): %v", err)
	}
	if string(data) != `"Floor"` {
		t.Errorf("Floor marshaled as %s, want \"Floor\"", data)
	}

	data, err = json.Marshal(PatternLineDestination(3))
	if err != nil {
		t.Fatalf("Marshal(PatternLine(3)): %v", err)
	}
	if string(data) != `{"PatternLine":3}` {
		t.Errorf("PatternLine(3) marshaled as %s, want {\"PatternLine\":3}", data)
	}
}

func TestDraftAction_JSONRoundTrip(t *testing.T) {
	action := DraftAction{
		Source:      FactorySource(0),
		Color:       Blue,
		Destination: PatternLineDestination(2),
	}
	data, err := json.Marshal(action)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	want := `{"source":{"Factory":0},"color":"Blue","destination":{"PatternLine":2}}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var got DraftAction
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got.Equal(action) {
		t.Errorf("round trip: got %v, want %v", got, action)
	}
}

func TestActionSource_UnmarshalRejectsUnknownString(t *testing.T) {
	var s ActionSource
	if err := json.Unmarshal([]byte(`"Bag"`), &s); err == nil {
		t.Error("expected error for unknown source string")
	}
}

func TestDestination_UnmarshalRejectsUnknownString(t *testing.T) {
	var d Destination
	if err := json.Unmarshal([]byte(`"Ceiling"`), &d); err == nil {
		t.Error("expected error for unknown destination string")
	}
}
