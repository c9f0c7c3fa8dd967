package export_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/azulpractice/engine/pkg/export"
	"github.com/azulpractice/engine/pkg/model"
)

func sampleState() model.State {
	state := model.NewState()
	state.Factories[0].Add(model.Blue, 2)
	state.Factories[0].Add(model.Red, 2)
	state.Players[0].Score = 5
	return state
}

func TestExportJSON_RoundTrips(t *testing.T) {
	state := sampleState()
	data, err := export.ExportJSON(state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded model.State
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error decoding: %v", err)
	}
	if decoded.Players[0].Score != 5 {
		t.Errorf("score = %d, want 5", decoded.Players[0].Score)
	}
	if decoded.Factories[0].Count(model.Blue) != 2 {
		t.Errorf("factory blue count = %d, want 2", decoded.Factories[0].Count(model.Blue))
	}
}

func TestExportJSON_IsIndented(t *testing.T) {
	data, err := export.ExportJSON(sampleState())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	compact, err := export.ExportJSONCompact(sampleState())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) <= len(compact) {
		t.Error("expected indented JSON to be longer than compact JSON")
	}
}

func TestSaveJSONToFile_WritesReadableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")

	if err := export.SaveJSONToFile(sampleState(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error reading file: %v", err)
	}
	var decoded model.State
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error decoding file: %v", err)
	}
}

func TestSaveJSONCompactToFile_WritesReadableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state_compact.json")

	if err := export.SaveJSONCompactToFile(sampleState(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error reading file: %v", err)
	}
	var decoded model.State
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error decoding file: %v", err)
	}
}
