package export

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/azulpractice/engine/pkg/model"
	"github.com/azulpractice/engine/pkg/wall"
)

// SVGOptions configures board visualization export.
type SVGOptions struct {
	Width      int    // Canvas width in pixels
	Height     int    // Canvas height in pixels
	Margin     int    // Canvas margin in pixels (default: 40)
	TileSize   int    // Side length of one wall/pattern-line cell (default: 28)
	ShowLegend bool   // Show the tile-color legend
	ShowStats  bool   // Show round/phase/seed header line
	Title      string // Optional title for the visualization
}

// DefaultSVGOptions returns sensible default SVG export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:      900,
		Height:     700,
		Margin:     40,
		TileSize:   28,
		ShowLegend: true,
		ShowStats:  true,
		Title:      "Board Snapshot",
	}
}

// tileHex maps each canonical tile color to a fixed display color.
var tileHex = map[model.TileColor]string{
	model.Blue:   "#3b82f6",
	model.Yellow: "#f5c518",
	model.Red:    "#ef4444",
	model.Black:  "#1f2937",
	model.White:  "#f4f1e8",
}

func colorHex(c model.TileColor) string {
	if hex, ok := tileHex[c]; ok {
		return hex
	}
	return "#888888"
}

// ExportSVG renders a full board snapshot: the five factories and center
// area across the top, then each player's wall, pattern lines, floor
// line, and score stacked below.
func ExportSVG(state model.State, opts SVGOptions) ([]byte, error) {
	if opts.Width <= 0 {
		opts.Width = 900
	}
	if opts.Height <= 0 {
		opts.Height = 700
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}
	if opts.TileSize <= 0 {
		opts.TileSize = 28
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#0f172a")

	y := opts.Margin
	if opts.Title != "" {
		canvas.Text(opts.Width/2, y, opts.Title,
			"text-anchor:middle;font-size:20px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
		y += 28
	}
	if opts.ShowStats {
		stats := fmt.Sprintf("Round %d | Active player %d | %s",
			state.RoundNumber, state.ActivePlayer, state.DraftPhase)
		if state.ScenarioSeed != nil {
			stats += fmt.Sprintf(" | seed %s", *state.ScenarioSeed)
		}
		canvas.Text(opts.Width/2, y, stats,
			"text-anchor:middle;font-size:12px;fill:#94a3b8;font-family:monospace")
		y += 24
	}

	y = drawFactories(canvas, state, opts, y)
	y += 20
	for seat := 0; seat < 2; seat++ {
		y = drawPlayerBoard(canvas, state.Players[seat], seat, opts, y)
		y += 16
	}

	if opts.ShowLegend {
		drawColorLegend(canvas, opts, opts.Height-26)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders state's snapshot and saves it to a file.
// The file is created with 0644 permissions (readable by all, writable by owner).
func SaveSVGToFile(state model.State, filepath string, opts SVGOptions) error {
	data, err := ExportSVG(state, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// drawFactories renders the five factory displays and the center area as
// a row of small tile grids, returning the y coordinate just past them.
func drawFactories(canvas *svg.SVG, state model.State, opts SVGOptions, y int) int {
	cell := opts.TileSize / 2
	boxWidth := cell*2 + 10
	totalWidth := boxWidth*(model.FactoryCount+1) + 10*model.FactoryCount
	x := (opts.Width - totalWidth) / 2

	for i, factory := range state.Factories {
		drawTileBox(canvas, x, y, boxWidth, boxWidth, factory, cell, fmt.Sprintf("F%d", i+1))
		x += boxWidth + 10
	}
	label := "Center"
	if state.Center.HasFirstPlayerToken {
		label = "Center *"
	}
	drawTileBox(canvas, x, y, boxWidth, boxWidth, state.Center.Tiles, cell, label)

	return y + boxWidth + 16
}

// drawTileBox renders one supply location (a factory or the center) as a
// bordered box with its tiles laid out in a small grid and a caption
// beneath it.
func drawTileBox(canvas *svg.SVG, x, y, w, h int, tiles model.TileMultiset, cell int, caption string) {
	canvas.Rect(x, y, w, h, "fill:#1e293b;stroke:#475569;stroke-width:1;rx:4")

	tx, ty := x+4, y+4
	col := 0
	for _, c := range model.Colors {
		n := tiles.Count(c)
		for i := 0; i < n; i++ {
			cx := tx + (col%2)*cell
			cy := ty + (col/2)*cell
			canvas.Rect(cx, cy, cell-2, cell-2, fmt.Sprintf("fill:%s;stroke:#0f172a;stroke-width:1", colorHex(c)))
			col++
		}
	}
	canvas.Text(x+w/2, y+h+14, caption, "text-anchor:middle;font-size:11px;fill:#94a3b8;font-family:monospace")
}

// drawPlayerBoard renders one seat's pattern lines, wall, floor line, and
// score, returning the y coordinate just past the board.
func drawPlayerBoard(canvas *svg.SVG, player model.PlayerBoard, seat int, opts SVGOptions, y int) int {
	cell := opts.TileSize
	leftX := opts.Margin
	wallX := leftX + cell*6

	canvas.Text(leftX, y, fmt.Sprintf("Player %d — score %d", seat, player.Score),
		"font-size:14px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
	y += 12

	// Pattern lines: row r has r+1 slots, right-aligned toward the wall.
	for row := 0; row < model.PatternLineCount; row++ {
		line := player.PatternLines[row]
		rowY := y + row*cell
		for slot := 0; slot < line.Capacity; slot++ {
			slotX := wallX - (slot+1)*cell
			fill := "fill:none;stroke:#475569;stroke-width:1"
			if slot < line.CountFilled && line.Color != nil {
				fill = fmt.Sprintf("fill:%s;stroke:#0f172a;stroke-width:1", colorHex(*line.Color))
			}
			canvas.Rect(slotX, rowY, cell-2, cell-2, fill)
		}
	}

	// Wall: fixed color permutation, filled cells colored solid, empty
	// cells show a faint hint of the color that belongs there.
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			cx := wallX + col*cell
			cy := y + row*cell
			c := wall.ColorAt(row, col)
			if player.Wall[row][col] {
				canvas.Rect(cx, cy, cell-2, cell-2, fmt.Sprintf("fill:%s;stroke:#0f172a;stroke-width:1", colorHex(c)))
			} else {
				canvas.Rect(cx, cy, cell-2, cell-2, fmt.Sprintf("fill:%s;opacity:0.15;stroke:#475569;stroke-width:1", colorHex(c)))
			}
		}
	}

	floorY := y + 5*cell + 10
	canvas.Text(leftX, floorY+cell-8, "Floor:", "font-size:11px;fill:#94a3b8;font-family:monospace")
	floorX := leftX + 50
	slotsShown := len(player.FloorLine.Tiles)
	if player.FloorLine.HasFirstPlayerToken {
		canvas.Circle(floorX+cell/2, floorY+cell/2, cell/2-3, "fill:#f5c518;stroke:#0f172a;stroke-width:1")
		floorX += cell
	}
	for i := 0; i < slotsShown; i++ {
		c := player.FloorLine.Tiles[i]
		canvas.Rect(floorX, floorY, cell-2, cell-2, fmt.Sprintf("fill:%s;stroke:#0f172a;stroke-width:1", colorHex(c)))
		floorX += cell
	}

	return floorY + cell
}

// drawColorLegend renders a small horizontal key of the five tile colors.
func drawColorLegend(canvas *svg.SVG, opts SVGOptions, y int) {
	x := opts.Margin
	for _, c := range model.Colors {
		canvas.Rect(x, y, 14, 14, fmt.Sprintf("fill:%s;stroke:#0f172a;stroke-width:1", colorHex(c)))
		canvas.Text(x+20, y+12, string(c), "font-size:11px;fill:#cbd5e0;font-family:monospace")
		x += 90
	}
}
