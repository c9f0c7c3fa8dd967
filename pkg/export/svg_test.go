package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/azulpractice/engine/pkg/export"
	"github.com/azulpractice/engine/pkg/model"
)

func TestExportSVG_ProducesWellFormedDocument(t *testing.T) {
	data, err := export.ExportSVG(sampleState(), export.DefaultSVGOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("expected output to contain an <svg> tag")
	}
	if !bytes.Contains(data, []byte("</svg>")) {
		t.Error("expected output to be closed with </svg>")
	}
}

func TestExportSVG_AppliesZeroValueDefaults(t *testing.T) {
	data, err := export.ExportSVG(sampleState(), export.SVGOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty output even with zero-value options")
	}
}

func TestExportSVG_RendersFilledWallCellColor(t *testing.T) {
	state := model.NewState()
	state.Players[0].Wall[0][0] = true

	opts := export.DefaultSVGOptions()
	opts.ShowLegend = false
	data, err := export.ExportSVG(state, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Row 0, col 0 is Blue under the canonical wall permutation. Empty
	// wall cells use the same hex at low opacity, so match the solid
	// filled-cell style rather than the bare color.
	if !bytes.Contains(data, []byte("fill:#3b82f6;stroke:#0f172a")) {
		t.Error("expected the filled wall cell's color to appear in the output")
	}
}

func TestExportSVG_IncludesTitleAndScore(t *testing.T) {
	state := sampleState()
	opts := export.DefaultSVGOptions()
	opts.Title = "My Board"

	data, err := export.ExportSVG(state, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(data, []byte("My Board")) {
		t.Error("expected the title to appear in the output")
	}
	if !bytes.Contains(data, []byte("score 5")) {
		t.Error("expected player 0's score to appear in the output")
	}
}

func TestSaveSVGToFile_WritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.svg")

	if err := export.SaveSVGToFile(sampleState(), path, export.DefaultSVGOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error reading file: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("expected the saved file to contain an <svg> tag")
	}
}
