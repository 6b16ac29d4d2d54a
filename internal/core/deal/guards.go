// Package deal contains the pure business logic for deal operations.
// Guards are pure functions that evaluate preconditions without side effects.
package deal

import "fmt"

// Statuses a deal can carry. Status is orthogonal to stage: a deal may be
// marked won while its stage still lags behind, and nothing here couples the
// two dimensions.
const (
	StatusActive = "active"
	StatusWon    = "won"
	StatusLost   = "lost"
	StatusOnHold = "on-hold"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
	Kind    error // sentinel classifying the refusal, nil when allowed
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	if r.Kind != nil {
		return fmt.Errorf("%s: %w", r.Reason, r.Kind)
	}
	return fmt.Errorf("%s", r.Reason)
}

// MoveDealContext provides context for stage-transition guards.
type MoveDealContext struct {
	DealID        string
	DealExists    bool
	CurrentStage  string
	TargetStageID string
	StageKnown    bool // target stage is a member of the pipeline's registry
}

// MoveOutcome classifies what a validated move should do.
type MoveOutcome int

const (
	// MoveRejected means the guard refused the transition.
	MoveRejected MoveOutcome = iota
	// MoveNoOp means the deal already sits in the target stage; no
	// persistence call is issued.
	MoveNoOp
	// MoveCommit means the transition should be persisted.
	MoveCommit
)

// CanMoveDeal evaluates whether a deal can transition to the target stage.
// Rules:
// - Deal must be known locally
// - Target stage must be a member of the stage registry
// Dropping a deal onto its own column is allowed and classified as a no-op.
func CanMoveDeal(ctx MoveDealContext) (MoveOutcome, GuardResult) {
	if !ctx.DealExists {
		return MoveRejected, GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("deal %s not found", ctx.DealID),
			Kind:    ErrNotFound,
		}
	}

	if !ctx.StageKnown {
		return MoveRejected, GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("stage %q is not part of the active pipeline", ctx.TargetStageID),
			Kind:    ErrUnknownStage,
		}
	}

	if ctx.CurrentStage == ctx.TargetStageID {
		return MoveNoOp, GuardResult{Allowed: true}
	}

	return MoveCommit, GuardResult{Allowed: true}
}

// CreateDealContext provides context for deal creation guards.
type CreateDealContext struct {
	Title      string
	Value      float64
	HasValue   bool
	StageID    string // empty means "use the pipeline's first stage"
	StageKnown bool   // only checked when StageID != ""
}

// CanCreateDeal evaluates whether a deal can be created.
// Rules:
// - Title is required
// - Value, when present, must be non-negative
// - Stage, when specified, must be a member of the stage registry
func CanCreateDeal(ctx CreateDealContext) GuardResult {
	if ctx.Title == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "deal title is required",
			Kind:    ErrInvalid,
		}
	}

	if ctx.HasValue && ctx.Value < 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("deal value must be non-negative (got %v)", ctx.Value),
			Kind:    ErrInvalid,
		}
	}

	if ctx.StageID != "" && !ctx.StageKnown {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("stage %q is not part of the active pipeline", ctx.StageID),
			Kind:    ErrUnknownStage,
		}
	}

	return GuardResult{Allowed: true}
}

// ValidStatus reports whether s is one of the recognized deal statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusWon, StatusLost, StatusOnHold:
		return true
	}
	return false
}
