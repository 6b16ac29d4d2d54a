package deal

import (
	"errors"
	"testing"
)

func TestCanMoveDeal(t *testing.T) {
	tests := []struct {
		name        string
		ctx         MoveDealContext
		wantOutcome MoveOutcome
		wantKind    error
		wantReason  string
	}{
		{
			name: "commit when deal exists and stage known",
			ctx: MoveDealContext{
				DealID:        "d1",
				DealExists:    true,
				CurrentStage:  "lead",
				TargetStageID: "qualified",
				StageKnown:    true,
			},
			wantOutcome: MoveCommit,
		},
		{
			name: "no-op when dropped onto own column",
			ctx: MoveDealContext{
				DealID:        "d1",
				DealExists:    true,
				CurrentStage:  "lead",
				TargetStageID: "lead",
				StageKnown:    true,
			},
			wantOutcome: MoveNoOp,
		},
		{
			name: "rejected when deal unknown",
			ctx: MoveDealContext{
				DealID:        "d9",
				DealExists:    false,
				TargetStageID: "qualified",
				StageKnown:    true,
			},
			wantOutcome: MoveRejected,
			wantKind:    ErrNotFound,
			wantReason:  "deal d9 not found",
		},
		{
			name: "rejected when target stage unknown",
			ctx: MoveDealContext{
				DealID:        "d1",
				DealExists:    true,
				CurrentStage:  "lead",
				TargetStageID: "bogus",
				StageKnown:    false,
			},
			wantOutcome: MoveRejected,
			wantKind:    ErrUnknownStage,
			wantReason:  `stage "bogus" is not part of the active pipeline`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, result := CanMoveDeal(tt.ctx)
			if outcome != tt.wantOutcome {
				t.Errorf("outcome = %v, want %v", outcome, tt.wantOutcome)
			}
			if tt.wantOutcome == MoveRejected {
				if result.Allowed {
					t.Error("expected guard to refuse")
				}
				if result.Reason != tt.wantReason {
					t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
				}
				if !errors.Is(result.Error(), tt.wantKind) {
					t.Errorf("Error() = %v, want errors.Is %v", result.Error(), tt.wantKind)
				}
			} else if !result.Allowed {
				t.Errorf("expected guard to allow, got reason %q", result.Reason)
			}
		})
	}
}

func TestCanCreateDeal(t *testing.T) {
	tests := []struct {
		name        string
		ctx         CreateDealContext
		wantAllowed bool
		wantKind    error
	}{
		{
			name:        "minimal valid deal",
			ctx:         CreateDealContext{Title: "Acme renewal"},
			wantAllowed: true,
		},
		{
			name: "valid deal with value and known stage",
			ctx: CreateDealContext{
				Title:      "Acme renewal",
				Value:      12500,
				HasValue:   true,
				StageID:    "proposal",
				StageKnown: true,
			},
			wantAllowed: true,
		},
		{
			name:        "missing title",
			ctx:         CreateDealContext{},
			wantAllowed: false,
			wantKind:    ErrInvalid,
		},
		{
			name: "negative value",
			ctx: CreateDealContext{
				Title:    "Acme renewal",
				Value:    -1,
				HasValue: true,
			},
			wantAllowed: false,
			wantKind:    ErrInvalid,
		},
		{
			name: "unknown stage",
			ctx: CreateDealContext{
				Title:      "Acme renewal",
				StageID:    "bogus",
				StageKnown: false,
			},
			wantAllowed: false,
			wantKind:    ErrUnknownStage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanCreateDeal(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && !errors.Is(result.Error(), tt.wantKind) {
				t.Errorf("Error() = %v, want errors.Is %v", result.Error(), tt.wantKind)
			}
		})
	}
}

func TestGuardResult_Error(t *testing.T) {
	t.Run("allowed result returns nil error", func(t *testing.T) {
		result := GuardResult{Allowed: true}
		if err := result.Error(); err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
	})

	t.Run("refusal without kind still errors", func(t *testing.T) {
		result := GuardResult{Allowed: false, Reason: "test reason"}
		err := result.Error()
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if err.Error() != "test reason" {
			t.Errorf("error = %q, want %q", err.Error(), "test reason")
		}
	})
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusActive, StatusWon, StatusLost, StatusOnHold} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	if ValidStatus("archived") {
		t.Error(`ValidStatus("archived") = true, want false`)
	}
}
