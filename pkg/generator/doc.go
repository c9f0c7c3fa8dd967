// Package generator builds practice scenarios by playing a seeded game
// forward with policy bots and sampling snapshots that match a target
// game stage and, optionally, a target round stage. GenerateScenario
// produces one stage-matching state or fails; GenerateScenarioWithFilters
// retries across seeds until a state also passes the quality filters in
// this package, falling back to the last stage-matching state it saw.
package generator
