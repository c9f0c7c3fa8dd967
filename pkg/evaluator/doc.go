// Package evaluator implements Monte Carlo move evaluation and user-move
// grading: EvaluateBestMove ranks legal actions by rollout-sampled
// expected value, and GradeUserAction compares a player's chosen action
// against that ranking, producing a letter grade and feedback bullets.
package evaluator
