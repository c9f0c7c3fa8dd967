package model

import "fmt"

// PatternLineCount is the number of pattern lines on a player board, one
// per wall row.
const PatternLineCount = 5

// FloorLineSlots is the number of floor-line slots that incur a penalty;
// a floor line may hold more tiles than this, but only the first
// FloorLineSlots count toward the penalty sum.
const FloorLineSlots = 7

// FloorPenalties are the per-slot penalty values, slot 0 first.
var FloorPenalties = [FloorLineSlots]int{-1, -1, -2, -2, -2, -3, -3}

// PatternLine is a staging row of fixed capacity that accepts tiles of a
// single color. Invariant: CountFilled == 0 iff Color == nil.
type PatternLine struct {
	Capacity    int        `json:"capacity"`
	Color       *TileColor `json:"color"`
	CountFilled int        `json:"count_filled"`
}

// NewPatternLine returns an empty pattern line for the given row index
// (0-4), whose capacity is row+1.
func NewPatternLine(row int) PatternLine {
	return PatternLine{Capacity: row + 1}
}

// IsComplete reports whether the line is filled to capacity.
func (p PatternLine) IsComplete() bool {
	return p.CountFilled == p.Capacity
}

// Validate checks the pattern line's internal invariant.
func (p PatternLine) Validate() error {
	if p.CountFilled < 0 || p.CountFilled > p.Capacity {
		return fmt.Errorf("model: pattern line count_filled %d out of range [0, %d]", p.CountFilled, p.Capacity)
	}
	if p.CountFilled == 0 && p.Color != nil {
		return fmt.Errorf("model: empty pattern line must not have a color")
	}
	if p.CountFilled > 0 && p.Color == nil {
		return fmt.Errorf("model: non-empty pattern line must have a color")
	}
	return nil
}

// FloorLine holds overflow tiles and the first-player token. Tiles are
// tracked in arrival order; only the first FloorLineSlots count toward the
// penalty, but the line is never truncated.
type FloorLine struct {
	Tiles                []TileColor `json:"tiles"`
	HasFirstPlayerToken  bool        `json:"has_first_player_token"`
}

// Clone returns an independent copy.
func (f FloorLine) Clone() FloorLine {
	tiles := make([]TileColor, len(f.Tiles))
	copy(tiles, f.Tiles)
	return FloorLine{Tiles: tiles, HasFirstPlayerToken: f.HasFirstPlayerToken}
}

// Wall is the 5x5 grid of filled/empty positions. See pkg/wall for the
// fixed row/column/color permutation.
type Wall [5][5]bool

// FullRow reports whether row r is entirely filled, the game-end
// condition.
func (w Wall) FullRow(r int) bool {
	for c := 0; c < 5; c++ {
		if !w[r][c] {
			return false
		}
	}
	return true
}

// Count returns the number of filled wall positions.
func (w Wall) Count() int {
	n := 0
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			if w[r][c] {
				n++
			}
		}
	}
	return n
}

// RowCount returns the number of filled positions in row r.
func (w Wall) RowCount(r int) int {
	n := 0
	for c := 0; c < 5; c++ {
		if w[r][c] {
			n++
		}
	}
	return n
}

// PlayerBoard is one seat's board: score, pattern lines, wall, floor line.
type PlayerBoard struct {
	Score        int                          `json:"score"`
	PatternLines [PatternLineCount]PatternLine `json:"pattern_lines"`
	Wall         Wall                         `json:"wall"`
	FloorLine    FloorLine                    `json:"floor_line"`
}

// NewPlayerBoard returns an empty board with pattern lines of capacities
// 1..5 and no tiles on the wall or floor.
func NewPlayerBoard() PlayerBoard {
	var pb PlayerBoard
	for i := 0; i < PatternLineCount; i++ {
		pb.PatternLines[i] = NewPatternLine(i)
	}
	return pb
}

// Clone returns an independent deep copy.
func (pb PlayerBoard) Clone() PlayerBoard {
	out := pb
	out.FloorLine = pb.FloorLine.Clone()
	for i := range pb.PatternLines {
		pl := pb.PatternLines[i]
		if pl.Color != nil {
			c := *pl.Color
			pl.Color = &c
		}
		out.PatternLines[i] = pl
	}
	return out
}

// CenterArea accumulates factory spill and holds the first-player token at
// the start of each round.
type CenterArea struct {
	Tiles               TileMultiset `json:"tiles"`
	HasFirstPlayerToken bool         `json:"has_first_player_token"`
}

// Clone returns an independent copy.
func (c CenterArea) Clone() CenterArea {
	return CenterArea{Tiles: c.Tiles.Clone(), HasFirstPlayerToken: c.HasFirstPlayerToken}
}

// FactoryCount is the number of factory displays in the 2-player ruleset.
const FactoryCount = 5

// TilesPerFactory is how many tiles each factory is filled with on refill.
const TilesPerFactory = 4

// State is the entire observable game state during the draft phase.
type State struct {
	StateVersion  uint32  `json:"state_version"`
	RulesetID     string  `json:"ruleset_id"`
	ScenarioSeed  *string `json:"scenario_seed,omitempty"`
	ActivePlayer  uint8   `json:"active_player_id"`
	RoundNumber   uint32  `json:"round_number"`
	DraftPhase    RoundStage `json:"draft_phase_progress"`
	ScenarioStage *GameStage `json:"scenario_game_stage,omitempty"`

	Bag TileMultiset `json:"bag"`
	Lid TileMultiset `json:"lid"`

	Factories [FactoryCount]TileMultiset `json:"factories"`
	Center    CenterArea                 `json:"center"`

	Players [2]PlayerBoard `json:"players"`
}

// RulesetID is the ruleset identifier this engine implements.
const RulesetID = "azul_v1_2p"

// NewState returns a minimal valid state: version 1, the canonical ruleset
// id, round 1, active player 0, empty supply, five empty factories, an
// empty center holding the first-player token, and two empty boards. It is
// useful as a starting point for tests and for the generator's initial
// state.
func NewState() State {
	var factories [FactoryCount]TileMultiset
	for i := range factories {
		factories[i] = NewTileMultiset()
	}
	return State{
		StateVersion: 1,
		RulesetID:    RulesetID,
		ActivePlayer: 0,
		RoundNumber:  1,
		DraftPhase:   RoundStart,
		Bag:          NewTileMultiset(),
		Lid:          NewTileMultiset(),
		Factories:    factories,
		Center: CenterArea{
			Tiles:               NewTileMultiset(),
			HasFirstPlayerToken: true,
		},
		Players: [2]PlayerBoard{NewPlayerBoard(), NewPlayerBoard()},
	}
}

// Clone returns an independent deep copy. Every mutator in pkg/rules
// begins by cloning its input state and only ever mutates the clone.
func (s State) Clone() State {
	out := s
	if s.ScenarioSeed != nil {
		v := *s.ScenarioSeed
		out.ScenarioSeed = &v
	}
	if s.ScenarioStage != nil {
		v := *s.ScenarioStage
		out.ScenarioStage = &v
	}
	out.Bag = s.Bag.Clone()
	out.Lid = s.Lid.Clone()
	for i := range s.Factories {
		out.Factories[i] = s.Factories[i].Clone()
	}
	out.Center = s.Center.Clone()
	out.Players[0] = s.Players[0].Clone()
	out.Players[1] = s.Players[1].Clone()
	return out
}

// TableTileCount returns the number of tiles remaining on the table
// (factories plus center), used to classify RoundStage.
func (s State) TableTileCount() int {
	n := s.Center.Tiles.Total()
	for _, f := range s.Factories {
		n += f.Total()
	}
	return n
}

// TotalTileCount sums every tile location in the state: bag, lid,
// factories, center, pattern lines, wall, and floor lines. A valid state
// always has TotalTileCount() == TotalTiles.
func (s State) TotalTileCount() int {
	n := s.Bag.Total() + s.Lid.Total() + s.Center.Tiles.Total()
	for _, f := range s.Factories {
		n += f.Total()
	}
	for _, p := range s.Players {
		for _, pl := range p.PatternLines {
			n += pl.CountFilled
		}
		n += p.Wall.Count()
		n += len(p.FloorLine.Tiles)
	}
	return n
}

// Opponent returns the seat index of the player not identified by seat.
func Opponent(seat uint8) uint8 {
	return 1 - seat
}
