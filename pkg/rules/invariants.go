package rules

import (
	"fmt"

	"github.com/azulpractice/engine/pkg/model"
)

// CheckTileConservation verifies that every one of the 100 tiles is
// accounted for somewhere in state: the bag, the lid, a factory, the
// center, a pattern line, the wall, or a floor line. It is the debug-only
// recheck Apply and ResolveEndOfRound run when Debug is true.
func CheckTileConservation(state model.State) error {
	total := state.TotalTileCount()
	if total != model.TotalTiles {
		return invariantViolation(fmt.Sprintf("tile conservation violated: counted %d of %d tiles", total, model.TotalTiles))
	}
	return nil
}
