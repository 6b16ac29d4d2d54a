package app

import (
	"context"
	"sort"
	"time"

	"github.com/example/dealboard/internal/core/scoring"
	"github.com/example/dealboard/internal/ports/primary"
	"github.com/example/dealboard/internal/ports/secondary"
)

// ScoringServiceImpl implements the ScoringService interface, feeding stored
// contact and company facts into the pure scorer.
type ScoringServiceImpl struct {
	contactRepo secondary.ContactRepository
	companyRepo secondary.CompanyRepository
	now         func() time.Time
}

// NewScoringService creates a new ScoringService with injected dependencies.
func NewScoringService(contactRepo secondary.ContactRepository, companyRepo secondary.CompanyRepository) *ScoringServiceImpl {
	return &ScoringServiceImpl{
		contactRepo: contactRepo,
		companyRepo: companyRepo,
		now:         time.Now,
	}
}

// ScoreContacts scores every contact and returns the results sorted by
// score, highest first.
func (s *ScoringServiceImpl) ScoreContacts(ctx context.Context) ([]*primary.ContactScore, error) {
	contacts, err := s.contactRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	companies := make(map[string]*secondary.CompanyRecord)

	scores := make([]*primary.ContactScore, 0, len(contacts))
	for _, c := range contacts {
		var company *secondary.CompanyRecord
		if c.CompanyID != "" {
			if cached, ok := companies[c.CompanyID]; ok {
				company = cached
			} else if fetched, err := s.companyRepo.GetByID(ctx, c.CompanyID); err == nil {
				companies[c.CompanyID] = fetched
				company = fetched
			}
		}

		result := scoring.Score(scoringInput(c, company), now)
		scores = append(scores, &primary.ContactScore{
			Contact: contactRecordToDTO(c),
			Result:  result,
			Label:   scoring.Label(result.Score),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Result.Score > scores[j].Result.Score
	})

	return scores, nil
}

// scoringInput maps stored records to scorer input. A contact without a
// company scores the company dimension on zero values.
func scoringInput(c *secondary.ContactRecord, company *secondary.CompanyRecord) scoring.Input {
	in := scoring.Input{
		Demographic: scoring.Demographic{
			JobTitle: c.Title,
			Industry: c.Industry,
			Location: c.Location,
		},
		Behavioral: scoring.Behavioral{
			EmailOpens: c.EmailOpens,
			LinkClicks: c.LinkClicks,
			PageViews:  c.PageViews,
			TimeOnSite: c.TimeOnSiteSeconds,
		},
		Engagement: scoring.Engagement{
			ResponseRate:      c.ResponseRate,
			MeetingsScheduled: c.MeetingsScheduled,
			EmailsSent:        c.EmailsSent,
		},
	}

	if c.LastActivityAt != "" {
		if t, err := time.Parse(time.RFC3339, c.LastActivityAt); err == nil {
			in.Engagement.LastActivity = t
		}
	}

	if company != nil {
		in.Demographic.Company = company.Name
		in.Company = scoring.Company{
			Size:       company.Size,
			Revenue:    company.Revenue,
			Growth:     company.Growth,
			Technology: company.Technology,
		}
	}

	return in
}

// Ensure ScoringServiceImpl implements the interface
var _ primary.ScoringService = (*ScoringServiceImpl)(nil)
