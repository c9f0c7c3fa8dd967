package model

import "testing"

func TestLoadConfigFromBytes_Defaults(t *testing.T) {
	cfg, err := LoadConfigFromBytes([]byte(`seed: 42`))
	if err != nil {
		t.Fatalf("LoadConfigFromBytes: %v", err)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.RulesetID != RulesetID {
		t.Errorf("RulesetID = %q, want %q", cfg.RulesetID, RulesetID)
	}
	if cfg.Evaluator.TimeBudgetMs != 250 {
		t.Errorf("Evaluator.TimeBudgetMs = %d, want 250", cfg.Evaluator.TimeBudgetMs)
	}
	if cfg.Filters.MaxFloorRatio != 0.5 {
		t.Errorf("Filters.MaxFloorRatio = %f, want 0.5", cfg.Filters.MaxFloorRatio)
	}
	if cfg.PolicyMix.Kind != PolicyMixMixed {
		t.Errorf("PolicyMix.Kind = %q, want mixed", cfg.PolicyMix.Kind)
	}
}

func TestLoadConfigFromBytes_ZeroSeedAutogenerates(t *testing.T) {
	cfg, err := LoadConfigFromBytes([]byte(`rulesetId: azul_v1_2p`))
	if err != nil {
		t.Fatalf("LoadConfigFromBytes: %v", err)
	}
	if cfg.Seed == 0 {
		t.Error("zero seed should have been auto-generated")
	}
}

func TestConfig_Validate_RejectsEmptyRulesetID(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RulesetID = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty rulesetId")
	}
}

func TestConfig_Validate_RejectsBadPolicyMix(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PolicyMix.Kind = "chaotic"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid policy mix kind")
	}
}

func TestConfig_Validate_RejectsBadFloorRatio(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Filters.MaxFloorRatio = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for out-of-range maxFloorRatio")
	}
}

func TestConfig_ToYAML_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 777
	data, err := cfg.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	got, err := LoadConfigFromBytes(data)
	if err != nil {
		t.Fatalf("LoadConfigFromBytes: %v", err)
	}
	if got.Seed != cfg.Seed {
		t.Errorf("round trip seed mismatch: got %d, want %d", got.Seed, cfg.Seed)
	}
}

func TestConfig_Hash_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 123
	h1 := cfg.Hash()
	h2 := cfg.Hash()
	if string(h1) != string(h2) {
		t.Error("Hash() should be deterministic for identical config contents")
	}
}
