package board

import (
	"math"
	"testing"

	"github.com/example/dealboard/internal/core/deal"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeDealStats(t *testing.T) {
	tests := []struct {
		name  string
		deals []Deal
		want  DealStats
	}{
		{
			name:  "empty pipeline",
			deals: nil,
			want:  DealStats{},
		},
		{
			name: "won and lost deals drive win rate",
			deals: []Deal{
				{ID: "1", Status: deal.StatusWon, Value: 1000},
				{ID: "2", Status: deal.StatusWon, Value: 2000},
				{ID: "3", Status: deal.StatusLost, Value: 500},
			},
			want: DealStats{
				TotalDeals:      3,
				TotalValue:      3500,
				WonDeals:        2,
				LostDeals:       1,
				AverageDealSize: 3500.0 / 3.0,
				WinRate:         2.0 / 3.0 * 100,
			},
		},
		{
			name: "forecast weighs undecided deals by probability",
			deals: []Deal{
				{ID: "1", Status: deal.StatusActive, Value: 1000, Probability: 50},
				{ID: "2", Status: deal.StatusOnHold, Value: 400, Probability: 25},
				{ID: "3", Status: deal.StatusWon, Value: 9000, Probability: 100},
			},
			want: DealStats{
				TotalDeals:      3,
				TotalValue:      10400,
				WonDeals:        1,
				AverageDealSize: 10400.0 / 3.0,
				WinRate:         100,
				ForecastValue:   1000*0.5 + 400*0.25,
			},
		},
		{
			name: "missing value and probability count as zero",
			deals: []Deal{
				{ID: "1", Status: deal.StatusActive},
			},
			want: DealStats{TotalDeals: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDealStats(tt.deals)
			if got.TotalDeals != tt.want.TotalDeals {
				t.Errorf("TotalDeals = %d, want %d", got.TotalDeals, tt.want.TotalDeals)
			}
			if !almostEqual(got.TotalValue, tt.want.TotalValue) {
				t.Errorf("TotalValue = %v, want %v", got.TotalValue, tt.want.TotalValue)
			}
			if got.WonDeals != tt.want.WonDeals {
				t.Errorf("WonDeals = %d, want %d", got.WonDeals, tt.want.WonDeals)
			}
			if got.LostDeals != tt.want.LostDeals {
				t.Errorf("LostDeals = %d, want %d", got.LostDeals, tt.want.LostDeals)
			}
			if !almostEqual(got.AverageDealSize, tt.want.AverageDealSize) {
				t.Errorf("AverageDealSize = %v, want %v", got.AverageDealSize, tt.want.AverageDealSize)
			}
			if !almostEqual(got.WinRate, tt.want.WinRate) {
				t.Errorf("WinRate = %v, want %v", got.WinRate, tt.want.WinRate)
			}
			if !almostEqual(got.ForecastValue, tt.want.ForecastValue) {
				t.Errorf("ForecastValue = %v, want %v", got.ForecastValue, tt.want.ForecastValue)
			}
		})
	}
}
