package primary

import (
	"context"

	"github.com/example/dealboard/internal/core/scoring"
)

// ScoringService defines the primary port for lead scoring.
type ScoringService interface {
	// ScoreContacts scores every contact and returns the results sorted by
	// score, highest first.
	ScoreContacts(ctx context.Context) ([]*ContactScore, error)
}

// ContactScore pairs a contact with its scoring result.
type ContactScore struct {
	Contact *Contact
	Result  scoring.Result
	Label   string
}
