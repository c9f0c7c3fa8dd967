package model

import (
	"crypto/sha256"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries the ruleset identifier and the default parameters a host
// uses to drive the generator and evaluator when it does not override them
// per call. It is the one YAML/JSON-loadable settings object for the whole
// engine.
type Config struct {
	// Seed is the master seed used when a caller does not supply its own.
	// Zero means "generate one from the current time".
	Seed uint64 `yaml:"seed" json:"seed"`

	// RulesetID identifies the physical ruleset this engine implements.
	RulesetID string `yaml:"rulesetId" json:"rulesetId"`

	// Evaluator holds the evaluator's default parameters.
	Evaluator EvaluatorDefaults `yaml:"evaluator" json:"evaluator"`

	// Filters holds the generator's default quality-filter thresholds.
	Filters FilterDefaults `yaml:"filters" json:"filters"`

	// PolicyMix is the generator's default play-forward policy.
	PolicyMix PolicyMixConfig `yaml:"policyMix" json:"policyMix"`
}

// EvaluatorDefaults are the evaluator parameters a host may omit per call.
type EvaluatorDefaults struct {
	// TimeBudgetMs bounds wall-clock time spent across candidates.
	TimeBudgetMs int `yaml:"timeBudgetMs" json:"timeBudgetMs"`

	// RolloutsPerAction is how many Monte Carlo rollouts each candidate runs.
	RolloutsPerAction int `yaml:"rolloutsPerAction" json:"rolloutsPerAction"`

	// ShortlistSize caps the number of candidates rolled out; 0 disables
	// shortlisting and evaluates every legal action.
	ShortlistSize int `yaml:"shortlistSize" json:"shortlistSize"`
}

// DefaultEvaluatorDefaults mirrors the original engine's EvaluatorParams
// defaults.
func DefaultEvaluatorDefaults() EvaluatorDefaults {
	return EvaluatorDefaults{
		TimeBudgetMs:      250,
		RolloutsPerAction: 10,
		ShortlistSize:     20,
	}
}

// Validate checks EvaluatorDefaults constraints.
func (e EvaluatorDefaults) Validate() error {
	if e.TimeBudgetMs < 0 {
		return fmt.Errorf("timeBudgetMs must be >= 0, got %d", e.TimeBudgetMs)
	}
	if e.RolloutsPerAction < 1 {
		return fmt.Errorf("rolloutsPerAction must be >= 1, got %d", e.RolloutsPerAction)
	}
	if e.ShortlistSize < 0 {
		return fmt.Errorf("shortlistSize must be >= 0, got %d", e.ShortlistSize)
	}
	return nil
}

// FilterDefaults are the generator's quality-filter thresholds. MinEVGap
// and MaxEVGap are accepted here but never enforced by pkg/generator
// itself — the filter does not run rollouts, so EV-gap checks are the
// caller's responsibility after an evaluation pass (spec §4.L, §9).
type FilterDefaults struct {
	MinLegalActions       int      `yaml:"minLegalActions" json:"minLegalActions"`
	MinUniqueDestinations int      `yaml:"minUniqueDestinations" json:"minUniqueDestinations"`
	RequireNonFloorOption bool     `yaml:"requireNonFloorOption" json:"requireNonFloorOption"`
	MaxFloorRatio         float64  `yaml:"maxFloorRatio" json:"maxFloorRatio"`
	MinEVGap              *float64 `yaml:"minEvGap,omitempty" json:"minEvGap,omitempty"`
	MaxEVGap              *float64 `yaml:"maxEvGap,omitempty" json:"maxEvGap,omitempty"`
}

// DefaultFilterDefaults mirrors spec §4.L's defaults.
func DefaultFilterDefaults() FilterDefaults {
	return FilterDefaults{
		MinLegalActions:       6,
		MinUniqueDestinations: 2,
		RequireNonFloorOption: false,
		MaxFloorRatio:         0.5,
	}
}

// Validate checks FilterDefaults constraints.
func (f FilterDefaults) Validate() error {
	if f.MinLegalActions < 0 {
		return fmt.Errorf("minLegalActions must be >= 0, got %d", f.MinLegalActions)
	}
	if f.MinUniqueDestinations < 0 {
		return fmt.Errorf("minUniqueDestinations must be >= 0, got %d", f.MinUniqueDestinations)
	}
	if f.MaxFloorRatio < 0.0 || f.MaxFloorRatio > 1.0 {
		return fmt.Errorf("maxFloorRatio must be in range [0.0, 1.0], got %f", f.MaxFloorRatio)
	}
	return nil
}

// PolicyMixKind selects which policy a generator play-forward uses.
type PolicyMixKind string

const (
	PolicyMixRandom PolicyMixKind = "random"
	PolicyMixGreedy PolicyMixKind = "greedy"
	PolicyMixMixed  PolicyMixKind = "mixed"
)

// PolicyMixConfig is the JSON/YAML surface of the generator's policy mix.
// GreedyRatio is only meaningful when Kind is PolicyMixMixed.
type PolicyMixConfig struct {
	Kind        PolicyMixKind `yaml:"kind" json:"kind"`
	GreedyRatio float64       `yaml:"greedyRatio" json:"greedyRatio"`
}

// DefaultPolicyMixConfig mirrors the original generator's Mixed{0.7} default.
func DefaultPolicyMixConfig() PolicyMixConfig {
	return PolicyMixConfig{Kind: PolicyMixMixed, GreedyRatio: 0.7}
}

// Validate checks PolicyMixConfig constraints.
func (p PolicyMixConfig) Validate() error {
	switch p.Kind {
	case PolicyMixRandom, PolicyMixGreedy, PolicyMixMixed:
	default:
		return fmt.Errorf("invalid policy mix kind %q", p.Kind)
	}
	if p.Kind == PolicyMixMixed && (p.GreedyRatio < 0.0 || p.GreedyRatio > 1.0) {
		return fmt.Errorf("greedyRatio must be in range [0.0, 1.0], got %f", p.GreedyRatio)
	}
	return nil
}

// DefaultConfig returns a Config with every field at its spec default and
// a zero (auto-generate) seed.
func DefaultConfig() Config {
	return Config{
		RulesetID: RulesetID,
		Evaluator: DefaultEvaluatorDefaults(),
		Filters:   DefaultFilterDefaults(),
		PolicyMix: DefaultPolicyMixConfig(),
	}
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = generateSeed()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if c.RulesetID == "" {
		return fmt.Errorf("rulesetId must not be empty")
	}
	if err := c.Evaluator.Validate(); err != nil {
		return fmt.Errorf("evaluator: %w", err)
	}
	if err := c.Filters.Validate(); err != nil {
		return fmt.Errorf("filters: %w", err)
	}
	if err := c.PolicyMix.Validate(); err != nil {
		return fmt.Errorf("policyMix: %w", err)
	}
	return nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic hash of the configuration, usable as extra
// entropy when deriving a seed from config contents.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.Sum256([]byte(fmt.Sprintf("%d", c.Seed)))
		return h[:]
	}
	h := sha256.Sum256(data)
	return h[:]
}

// generateSeed derives a seed from the current time, mirroring the
// teacher's time-based fallback.
func generateSeed() uint64 {
	now := time.Now().UnixNano()
	if now < 0 {
		now = -now
	}
	seed := uint64(now)
	if seed == 0 {
		seed = 1
	}
	return seed
}
