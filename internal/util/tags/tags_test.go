package tags

import "testing"

func TestForEnvironment(t *testing.T) {
	got := ForEnvironment("demo", nil)

	if got[KeyEnvironment] != "demo" {
		t.Errorf("expected environment tag 'demo', got %q", got[KeyEnvironment])
	}
	if got[KeyManagedBy] != ManagedByWebfleet {
		t.Errorf("expected managed-by tag %q, got %q", ManagedByWebfleet, got[KeyManagedBy])
	}
}

func TestForEnvironment_MergesExtra(t *testing.T) {
	got := ForEnvironment("demo", map[string]string{"team": "platform"})

	if got["team"] != "platform" {
		t.Errorf("expected extra tag to survive merge, got %q", got["team"])
	}
	if len(got) != 3 {
		t.Errorf("expected 3 tags, got %d", len(got))
	}
}

func TestForEnvironment_StandardKeysWin(t *testing.T) {
	got := ForEnvironment("demo", map[string]string{KeyEnvironment: "other"})

	if got[KeyEnvironment] != "demo" {
		t.Errorf("standard key should win on conflict, got %q", got[KeyEnvironment])
	}
}
