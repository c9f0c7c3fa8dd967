// Package rollout simulates a drafting round to completion using a pair
// of policies (one per seat), then resolves end of round, producing both
// seats' final scores. It is the Monte Carlo primitive pkg/evaluator
// builds on.
package rollout

// DefaultMaxActions bounds a single rollout as a safety cutoff against a
// policy/legality contract violation turning into an infinite loop.
const DefaultMaxActions = 100
