package stage

import "testing"

func TestNewRegistry(t *testing.T) {
	tests := []struct {
		name      string
		stages    []Stage
		wantLen   int
		wantFirst string
	}{
		{
			name: "preserves order",
			stages: []Stage{
				{ID: "lead", Name: "Lead"},
				{ID: "qualified", Name: "Qualified"},
			},
			wantLen:   2,
			wantFirst: "lead",
		},
		{
			name: "drops duplicate ids keeping first definition",
			stages: []Stage{
				{ID: "lead", Name: "Lead", Probability: 10},
				{ID: "lead", Name: "Lead Again", Probability: 99},
				{ID: "qualified", Name: "Qualified"},
			},
			wantLen:   2,
			wantFirst: "lead",
		},
		{
			name:    "empty registry",
			stages:  nil,
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(tt.stages)
			if r.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", r.Len(), tt.wantLen)
			}
			if tt.wantFirst != "" {
				first, ok := r.First()
				if !ok {
					t.Fatal("First() returned no stage")
				}
				if first.ID != tt.wantFirst {
					t.Errorf("First().ID = %q, want %q", first.ID, tt.wantFirst)
				}
			}
		})
	}
}

func TestRegistryDuplicateKeepsFirstProbability(t *testing.T) {
	r := NewRegistry([]Stage{
		{ID: "lead", Probability: 10},
		{ID: "lead", Probability: 99},
	})
	s, ok := r.Get("lead")
	if !ok {
		t.Fatal("expected lead stage")
	}
	if s.Probability != 10 {
		t.Errorf("Probability = %d, want 10 (first definition wins)", s.Probability)
	}
}

func TestRegistryContains(t *testing.T) {
	r := NewRegistry(DefaultStages())

	if !r.Contains("negotiation") {
		t.Error("expected registry to contain negotiation")
	}
	if r.Contains("does-not-exist") {
		t.Error("did not expect registry to contain does-not-exist")
	}
}

func TestRegistryStagesReturnsCopy(t *testing.T) {
	r := NewRegistry(DefaultStages())

	stages := r.Stages()
	stages[0].ID = "mutated"

	again := r.Stages()
	if again[0].ID != "lead" {
		t.Errorf("registry mutated through Stages() result: first id = %q", again[0].ID)
	}
}

func TestDefaultStages(t *testing.T) {
	stages := DefaultStages()

	if len(stages) != 6 {
		t.Fatalf("expected 6 default stages, got %d", len(stages))
	}

	wantProbabilities := map[string]int{
		"lead":        10,
		"qualified":   25,
		"proposal":    50,
		"negotiation": 75,
		"closed-won":  100,
		"closed-lost": 0,
	}
	for _, s := range stages {
		want, ok := wantProbabilities[s.ID]
		if !ok {
			t.Errorf("unexpected default stage %q", s.ID)
			continue
		}
		if s.Probability != want {
			t.Errorf("stage %q probability = %d, want %d", s.ID, s.Probability, want)
		}
	}

	if stages[0].ID != "lead" {
		t.Errorf("first default stage = %q, want lead", stages[0].ID)
	}
	if stages[len(stages)-1].ID != "closed-lost" {
		t.Errorf("last default stage = %q, want closed-lost", stages[len(stages)-1].ID)
	}
}
