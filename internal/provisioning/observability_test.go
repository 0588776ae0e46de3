package provisioning

import (
	"strings"
	"testing"
)

func TestFormatEvent(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  []string
	}{
		{
			name:  "phase event",
			event: Event{Type: EventPhaseStarted, Phase: "plans", Message: "starting"},
			want:  []string{"phase.started", "[plans]", "starting"},
		},
		{
			name:  "resource event",
			event: Event{Type: EventResourceCreated, Phase: "apps", Resource: "demo-app1", Message: "created"},
			want:  []string{"resource.created", "[apps]", "resource=demo-app1", "created"},
		},
		{
			name:  "cleanup skipped",
			event: Event{Type: EventCleanupSkipped, Message: "no cleanup necessary"},
			want:  []string{"cleanup.skipped", "no cleanup necessary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatEvent(tt.event)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("formatEvent() = %q, missing %q", got, want)
				}
			}
		})
	}
}

func TestNames_CoversEveryResource(t *testing.T) {
	n := NewNames("demo")

	if n.Group == "" || n.Domain == "" || n.Profile == "" {
		t.Fatal("expected all names to be generated")
	}
	for i, p := range n.Plans {
		if p == "" {
			t.Errorf("plan name %d is empty", i)
		}
	}
	for i, a := range n.Apps {
		if a == "" {
			t.Errorf("app name %d is empty", i)
		}
	}
}
