// Package wall implements the fixed row/column/color permutation of the
// Azul wall: the two pure, mutually-inverse lookup functions every other
// package (legality, apply, scoring) builds on.
package wall

import "github.com/azulpractice/engine/pkg/model"

// colorIndex maps a canonical color to its position in model.Colors.
var colorIndex = func() map[model.TileColor]int {
	m := make(map[model.TileColor]int, len(model.Colors))
	for i, c := range model.Colors {
		m[c] = i
	}
	return m
}()

// ColorAt returns the color fixed at wall position (row, col). Row 0 is
// the canonical color order; each subsequent row is that order rotated
// right by one position, reproducing the standard Azul wall layout. It
// panics if row or col is outside 0..4.
func ColorAt(row, col int) model.TileColor {
	if row < 0 || row > 4 || col < 0 || col > 4 {
		panic("wall: row and col must be in 0..4")
	}
	idx := mod5(col - row)
	return model.Colors[idx]
}

// ColumnOf returns the column where color belongs on the given row. It is
// the exact inverse of ColorAt: ColumnOf(row, ColorAt(row, col)) == col for
// every (row, col) in 0..4. It panics if row is outside 0..4 or color is
// not one of the five canonical colors.
func ColumnOf(row int, color model.TileColor) int {
	if row < 0 || row > 4 {
		panic("wall: row must be in 0..4")
	}
	ci, ok := colorIndex[color]
	if !ok {
		panic("wall: invalid color")
	}
	return mod5(ci + row)
}

// mod5 returns n mod 5 in 0..4, for n possibly negative.
func mod5(n int) int {
	n %= 5
	if n < 0 {
		n += 5
	}
	return n
}
