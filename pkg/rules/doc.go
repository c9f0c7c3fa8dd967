// Package rules implements the rules core: legal-action enumeration,
// action application, end-of-round resolution (wall tiling, scoring,
// floor penalties, lid/bag cycling, factory refill, game-end detection),
// and the tile conservation invariant.
//
// Every mutator here takes a model.State by value (or clones one it was
// handed) and returns a new model.State; none of them mutate a caller's
// state in place. Debug is a package-level escape hatch for the
// debug-only invariant recheck described in the package's Apply and
// ResolveEndOfRound.
package rules

// Debug enables the debug-only invariant recheck inside Apply and
// ResolveEndOfRound. It defaults to true so tests catch conservation bugs
// immediately; a release host should set it to false once it trusts its
// build. This is the idiomatic substitute for the source's
// #[cfg(debug_assertions)] guard, which Go has no equivalent of.
var Debug = true
