// Package stage contains the pipeline stage registry: the ordered,
// session-immutable list of stages a pipeline's deals move through.
package stage

// Stage identifies one step of a sales pipeline. The ID is the stable token
// deals reference; Name and Color are display attributes.
type Stage struct {
	ID          string
	Name        string
	Probability int // default win-likelihood (0-100) assigned on entry
	Color       string
}

// Registry holds the stages of one pipeline in board order.
// It is read-only after construction.
type Registry struct {
	stages []Stage
	byID   map[string]Stage
}

// NewRegistry builds a registry from an ordered stage list.
// Later duplicates of a stage ID are dropped (first definition wins).
func NewRegistry(stages []Stage) *Registry {
	r := &Registry{
		byID: make(map[string]Stage, len(stages)),
	}
	for _, s := range stages {
		if _, exists := r.byID[s.ID]; exists {
			continue
		}
		r.byID[s.ID] = s
		r.stages = append(r.stages, s)
	}
	return r
}

// Stages returns the stages in board order. The returned slice is a copy.
func (r *Registry) Stages() []Stage {
	out := make([]Stage, len(r.stages))
	copy(out, r.stages)
	return out
}

// Get returns the stage with the given ID.
func (r *Registry) Get(id string) (Stage, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// Contains reports whether the registry knows the given stage ID.
func (r *Registry) Contains(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// First returns the entry stage of the pipeline (the default for new deals).
func (r *Registry) First() (Stage, bool) {
	if len(r.stages) == 0 {
		return Stage{}, false
	}
	return r.stages[0], true
}

// Len returns the number of stages.
func (r *Registry) Len() int {
	return len(r.stages)
}

// DefaultStages is the bootstrap template used when a tenant has no pipeline
// yet. IDs and probabilities are load-bearing; colors are display-only.
func DefaultStages() []Stage {
	return []Stage{
		{ID: "lead", Name: "Lead", Probability: 10, Color: "#6b7280"},
		{ID: "qualified", Name: "Qualified", Probability: 25, Color: "#3b82f6"},
		{ID: "proposal", Name: "Proposal", Probability: 50, Color: "#f59e0b"},
		{ID: "negotiation", Name: "Negotiation", Probability: 75, Color: "#f97316"},
		{ID: "closed-won", Name: "Closed Won", Probability: 100, Color: "#10b981"},
		{ID: "closed-lost", Name: "Closed Lost", Probability: 0, Color: "#ef4444"},
	}
}
