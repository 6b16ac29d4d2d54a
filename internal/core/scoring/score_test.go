package scoring

import (
	"reflect"
	"testing"
	"time"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func hotInput() Input {
	return Input{
		Demographic: Demographic{
			JobTitle: "VP of Engineering",
			Company:  "Globex Corporation",
			Industry: "Technology",
		},
		Behavioral: Behavioral{
			EmailOpens: 10,
			LinkClicks: 5,
			PageViews:  20,
			TimeOnSite: 300,
		},
		Engagement: Engagement{
			LastActivity:      now.AddDate(0, 0, -2),
			ResponseRate:      0.9,
			MeetingsScheduled: 3,
			EmailsSent:        10,
		},
		Company: Company{
			Size:       800,
			Revenue:    20_000_000,
			Growth:     0.5,
			Technology: []string{"CRM", "Sales Tools", "Marketing Automation"},
		},
	}
}

func TestScoreDeterminism(t *testing.T) {
	in := hotInput()

	first := Score(in, now)
	second := Score(in, now)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated scoring differs: %+v vs %+v", first, second)
	}
}

func TestScoreHotLead(t *testing.T) {
	result := Score(hotInput(), now)

	if result.Factors.Demographic != 95 {
		t.Errorf("demographic factor = %d, want 95", result.Factors.Demographic)
	}
	if result.Factors.Behavioral != 100 {
		t.Errorf("behavioral factor = %d, want 100", result.Factors.Behavioral)
	}
	if result.Factors.Engagement != 96 {
		t.Errorf("engagement factor = %d, want 96", result.Factors.Engagement)
	}
	if result.Factors.Company != 99 {
		t.Errorf("company factor = %d, want 99", result.Factors.Company)
	}

	// 95*0.25 + 100*0.30 + 96*0.25 + 99*0.20 = 97.55 -> 98
	if result.Score != 98 {
		t.Errorf("total score = %d, want 98", result.Score)
	}
	if Label(result.Score) != LabelHot {
		t.Errorf("label = %q, want %q", Label(result.Score), LabelHot)
	}
	if result.Confidence != 0.95 {
		t.Errorf("confidence = %v, want clamp at 0.95", result.Confidence)
	}
	if len(result.RiskFactors) != 0 {
		t.Errorf("unexpected risk factors: %v", result.RiskFactors)
	}
}

func TestScoreColdLead(t *testing.T) {
	in := Input{
		Demographic: Demographic{JobTitle: "Intern", Company: "Acme", Industry: "Retail"},
		Engagement:  Engagement{LastActivity: now.AddDate(0, 0, -90)},
		Company:     Company{Size: 5, Revenue: 50_000, Growth: -0.1},
	}

	result := Score(in, now)

	// demographic base 50; company 10 (size) + 10 (revenue) - 5 (negative growth) = 15.
	if result.Factors.Demographic != 50 {
		t.Errorf("demographic factor = %d, want 50", result.Factors.Demographic)
	}
	if result.Factors.Behavioral != 0 {
		t.Errorf("behavioral factor = %d, want 0", result.Factors.Behavioral)
	}
	if result.Factors.Engagement != 0 {
		t.Errorf("engagement factor = %d, want 0", result.Factors.Engagement)
	}
	if result.Factors.Company != 15 {
		t.Errorf("company factor = %d, want 15", result.Factors.Company)
	}

	// 50*0.25 + 0 + 0 + 15*0.20 = 15.5 -> 16 (rounded)
	if result.Score != 16 {
		t.Errorf("total score = %d, want 16", result.Score)
	}
	if Label(result.Score) != LabelCold {
		t.Errorf("label = %q, want %q", Label(result.Score), LabelCold)
	}
	if result.Confidence != 0.60 {
		t.Errorf("confidence = %v, want clamp at 0.60", result.Confidence)
	}

	wantRisks := []string{
		"No email engagement",
		"Very low response rate",
		"Company in decline",
		"Long period of inactivity",
	}
	if !reflect.DeepEqual(result.RiskFactors, wantRisks) {
		t.Errorf("risk factors = %v, want %v", result.RiskFactors, wantRisks)
	}
}

func TestRecencyBonus(t *testing.T) {
	tests := []struct {
		name         string
		lastActivity time.Time
		want         int
	}{
		{"within a week", now.AddDate(0, 0, -3), 10},
		{"within a month", now.AddDate(0, 0, -20), 5},
		{"stale", now.AddDate(0, 0, -60), 0},
		{"never active", time.Time{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engagementScore(Engagement{LastActivity: tt.lastActivity}, now)
			if got != tt.want {
				t.Errorf("engagementScore = %d, want %d (recency bonus only)", got, tt.want)
			}
		})
	}
}

func TestBehavioralCaps(t *testing.T) {
	// Each channel saturates independently; huge numbers cannot exceed 100.
	got := behavioralScore(Behavioral{
		EmailOpens: 1000,
		LinkClicks: 1000,
		PageViews:  1000,
		TimeOnSite: 1e6,
	})
	if got != 100 {
		t.Errorf("behavioralScore = %d, want 100", got)
	}
}

func TestRecommendationTiers(t *testing.T) {
	tests := []struct {
		name      string
		score     int
		wantFirst string
	}{
		{"hot", 85, "Schedule immediate follow-up call"},
		{"warm", 65, "Send targeted content"},
		{"cold", 30, "Continue nurturing with valuable content"},
	}

	in := hotInput() // engaged input so no channel-specific extras fire

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := recommendations(tt.score, in)
			if len(recs) == 0 || recs[0] != tt.wantFirst {
				t.Errorf("recommendations(%d)[0] = %v, want %q", tt.score, recs, tt.wantFirst)
			}
		})
	}
}

func TestLowEngagementRecommendations(t *testing.T) {
	in := Input{
		Behavioral: Behavioral{EmailOpens: 1},
		Engagement: Engagement{ResponseRate: 0.1},
	}

	recs := recommendations(90, in)

	var gotSubject, gotChannels bool
	for _, r := range recs {
		if r == "Improve email subject lines" {
			gotSubject = true
		}
		if r == "Try different communication channels" {
			gotChannels = true
		}
	}
	if !gotSubject {
		t.Error("expected subject-line recommendation for low email opens")
	}
	if !gotChannels {
		t.Error("expected channel recommendation for low response rate")
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{80, LabelHot},
		{79, LabelWarm},
		{60, LabelWarm},
		{59, LabelCold},
		{0, LabelCold},
	}
	for _, tt := range tests {
		if got := Label(tt.score); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
