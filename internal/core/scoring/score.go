// Package scoring implements the lead-scoring heuristic: a deterministic
// weighted sum over demographic, behavioral, engagement, and company factors.
// Each factor is scored 0-100; the total weighs them 25/30/25/20.
package scoring

import (
	"math"
	"strings"
	"time"
)

// Factor weights. They sum to 1.
const (
	weightDemographic = 0.25
	weightBehavioral  = 0.30
	weightEngagement  = 0.25
	weightCompany     = 0.20
)

// Input carries everything the scorer looks at for one lead.
type Input struct {
	Demographic Demographic
	Behavioral  Behavioral
	Engagement  Engagement
	Company     Company
}

// Demographic describes who the lead is.
type Demographic struct {
	JobTitle string
	Company  string
	Industry string
	Location string
}

// Behavioral describes what the lead has done with our content.
type Behavioral struct {
	EmailOpens int
	LinkClicks int
	PageViews  int
	TimeOnSite float64 // seconds
}

// Engagement describes the two-way relationship.
type Engagement struct {
	LastActivity      time.Time
	ResponseRate      float64 // 0-1
	MeetingsScheduled int
	EmailsSent        int
}

// Company describes the lead's organization.
type Company struct {
	Size       int
	Revenue    float64
	Growth     float64 // fractional, 0.2 = 20% growth
	Technology []string
}

// Factors are the per-dimension scores (each 0-100).
type Factors struct {
	Demographic int
	Behavioral  int
	Engagement  int
	Company     int
}

// Result is the scored lead.
type Result struct {
	Score           int     // 0-100 weighted total
	Confidence      float64 // 0.60-0.95
	Factors         Factors
	Recommendations []string
	RiskFactors     []string
}

// Score labels, used by presentation and tests alike.
const (
	LabelHot  = "Hot"
	LabelWarm = "Warm"
	LabelCold = "Cold"
)

// Label buckets a total score the way the board colors it.
func Label(score int) string {
	switch {
	case score >= 80:
		return LabelHot
	case score >= 60:
		return LabelWarm
	default:
		return LabelCold
	}
}

// Score computes the lead score as of now. Recency bonuses and risk windows
// are measured against now, so callers pin it for reproducible output.
func Score(in Input, now time.Time) Result {
	f := Factors{
		Demographic: demographicScore(in.Demographic),
		Behavioral:  behavioralScore(in.Behavioral),
		Engagement:  engagementScore(in.Engagement, now),
		Company:     companyScore(in.Company),
	}

	total := int(math.Round(
		float64(f.Demographic)*weightDemographic +
			float64(f.Behavioral)*weightBehavioral +
			float64(f.Engagement)*weightEngagement +
			float64(f.Company)*weightCompany,
	))

	sum := float64(f.Demographic + f.Behavioral + f.Engagement + f.Company)
	confidence := math.Min(0.95, math.Max(0.60, sum/400))

	return Result{
		Score:           total,
		Confidence:      confidence,
		Factors:         f,
		Recommendations: recommendations(total, in),
		RiskFactors:     riskFactors(in, now),
	}
}

var seniorTitles = []string{"VP", "Director", "Manager", "Head", "Chief"}

var highValueIndustries = map[string]bool{
	"Technology":    true,
	"Finance":       true,
	"Healthcare":    true,
	"Manufacturing": true,
}

func demographicScore(d Demographic) int {
	score := 50

	for _, title := range seniorTitles {
		if strings.Contains(d.JobTitle, title) {
			score += 20
			break
		}
	}

	if highValueIndustries[d.Industry] {
		score += 15
	}

	if len(d.Company) > 10 {
		score += 10
	}

	return clamp(score)
}

func behavioralScore(b Behavioral) int {
	score := 0.0

	score += math.Min(30, float64(b.EmailOpens)*3)
	score += math.Min(20, float64(b.LinkClicks)*4)
	score += math.Min(25, float64(b.PageViews)*1.25)
	score += math.Min(25, b.TimeOnSite/12) // 300 seconds saturates at 25

	return clamp(int(math.Round(score)))
}

func engagementScore(e Engagement, now time.Time) int {
	score := e.ResponseRate * 40
	score += math.Min(30, float64(e.MeetingsScheduled)*10)
	score += math.Min(20, float64(e.EmailsSent)*2)

	switch days := daysSince(e.LastActivity, now); {
	case days <= 7:
		score += 10
	case days <= 30:
		score += 5
	}

	return clamp(int(math.Round(score)))
}

var relevantTech = []string{"CRM", "Sales Tools", "Marketing Automation"}

func companyScore(c Company) int {
	score := 0.0

	switch {
	case c.Size > 500:
		score += 25
	case c.Size > 100:
		score += 20
	case c.Size > 50:
		score += 15
	default:
		score += 10
	}

	switch {
	case c.Revenue > 10_000_000:
		score += 25
	case c.Revenue > 1_000_000:
		score += 20
	case c.Revenue > 100_000:
		score += 15
	default:
		score += 10
	}

	score += math.Min(25, c.Growth*50)

	matches := 0
	for _, tech := range c.Technology {
		for _, relevant := range relevantTech {
			if strings.Contains(tech, relevant) {
				matches++
				break
			}
		}
	}
	score += math.Min(25, float64(matches)*8)

	return clamp(int(math.Round(score)))
}

func recommendations(score int, in Input) []string {
	var recs []string

	switch {
	case score >= 80:
		recs = append(recs,
			"Schedule immediate follow-up call",
			"Send personalized proposal",
			"Prioritize in daily activities",
		)
	case score >= 60:
		recs = append(recs,
			"Send targeted content",
			"Schedule discovery call",
			"Add to nurture sequence",
		)
	default:
		recs = append(recs,
			"Continue nurturing with valuable content",
			"Monitor engagement patterns",
			"Qualify further before investing time",
		)
	}

	if in.Behavioral.EmailOpens < 2 {
		recs = append(recs, "Improve email subject lines")
	}
	if in.Engagement.ResponseRate < 0.3 {
		recs = append(recs, "Try different communication channels")
	}

	return recs
}

func riskFactors(in Input, now time.Time) []string {
	var risks []string

	if in.Behavioral.EmailOpens == 0 {
		risks = append(risks, "No email engagement")
	}
	if in.Engagement.ResponseRate < 0.1 {
		risks = append(risks, "Very low response rate")
	}
	if in.Company.Growth < 0 {
		risks = append(risks, "Company in decline")
	}
	if daysSince(in.Engagement.LastActivity, now) > 30 {
		risks = append(risks, "Long period of inactivity")
	}

	return risks
}

func daysSince(t, now time.Time) int {
	if t.IsZero() {
		return math.MaxInt32
	}
	return int(now.Sub(t).Hours() / 24)
}

func clamp(score int) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
