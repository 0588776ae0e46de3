package naming

import (
	"strings"
	"testing"
)

func TestRandomName_PrefixAndLength(t *testing.T) {
	name := RandomName("demo-", 20)
	if !strings.HasPrefix(name, "demo-") {
		t.Errorf("expected prefix 'demo-', got %q", name)
	}
	if len(name) != 20 {
		t.Errorf("expected length 20, got %d (%q)", len(name), name)
	}
}

func TestRandomName_NoTruncation(t *testing.T) {
	name := RandomName("x-", 0)
	if !strings.HasPrefix(name, "x-") {
		t.Errorf("expected prefix 'x-', got %q", name)
	}
	// 32 hex chars from the UUID plus the prefix.
	if len(name) != 34 {
		t.Errorf("expected length 34, got %d (%q)", len(name), name)
	}
}

func TestRandomName_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := RandomName("p-", 0)
		if seen[name] {
			t.Fatalf("duplicate name generated: %q", name)
		}
		seen[name] = true
	}
}

func TestNamingFunctions(t *testing.T) {
	env := "demo"

	tests := []struct {
		name   string
		got    string
		prefix string
	}{
		{"Group", Group(env), "demo-rg-"},
		{"Domain", Domain(env), "demo-"},
		{"Plan", Plan(env, 0), "demo-plan1-"},
		{"PlanThird", Plan(env, 2), "demo-plan3-"},
		{"App", App(env, 0), "demo-app1-"},
		{"AppFifth", App(env, 4), "demo-app5-"},
		{"TrafficProfile", TrafficProfile(env), "demo-tm-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.HasPrefix(tt.got, tt.prefix) {
				t.Errorf("expected prefix %q, got %q", tt.prefix, tt.got)
			}
		})
	}
}

func TestDomain_HasTLD(t *testing.T) {
	if !strings.HasSuffix(Domain("demo"), ".com") {
		t.Errorf("expected .com suffix, got %q", Domain("demo"))
	}
}

func TestCertificateFile(t *testing.T) {
	got := CertificateFile("demo-abc.com")
	if got != "demo-abc-com" {
		t.Errorf("expected 'demo-abc-com', got %q", got)
	}
}
