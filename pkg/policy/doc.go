// Package policy implements the draft-action selectors used to play
// states forward during scenario generation and rollout simulation:
// Random (uniform), Greedy (heuristic scoring), and Mixed (a probabilistic
// blend of the two). All three implement the Policy interface so
// pkg/rollout and pkg/generator can accept any of them interchangeably.
package policy
