// Package model defines the value types shared by every other package in
// this engine: tile colors, the wall, pattern lines, the floor line, a
// player's board, the table (factories and center), the draft action, the
// full game State, and the ruleset Config.
//
// All of it is value-typed by convention: nothing here exposes a pointer
// receiver that mutates shared state, and every mutator in pkg/rules
// operates on a cloned copy. See pkg/rules for the operations that produce
// one State from another.
package model
