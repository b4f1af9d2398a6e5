package branding

import "testing"

func TestEmbeddedDefaults(t *testing.T) {
	if got := CLIName(); got != "marketplace" {
		t.Errorf("CLIName() = %q, want %q", got, "marketplace")
	}
	if got := IndexName(); got != "@nothing/marketplace" {
		t.Errorf("IndexName() = %q, want %q", got, "@nothing/marketplace")
	}
	if got := IndexVersion(); got != "1.0.0" {
		t.Errorf("IndexVersion() = %q, want %q", got, "1.0.0")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("src"); got != "MARKETPLACE_SRC" {
		t.Errorf("EnvVar(src) = %q, want %q", got, "MARKETPLACE_SRC")
	}
}
