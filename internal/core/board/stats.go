package board

import "github.com/example/dealboard/internal/core/deal"

// DealStats are pipeline-level statistics across every deal of a pipeline.
type DealStats struct {
	TotalDeals      int
	TotalValue      float64
	WonDeals        int
	LostDeals       int
	AverageDealSize float64
	WinRate         float64 // percent of decided deals that were won
	ForecastValue   float64 // probability-weighted value of undecided deals
}

// ComputeDealStats derives pipeline-level statistics. Win rate is defined
// over decided deals only (won + lost); the forecast weighs each undecided
// deal's value by its probability.
func ComputeDealStats(deals []Deal) DealStats {
	stats := DealStats{TotalDeals: len(deals)}

	for _, d := range deals {
		stats.TotalValue += d.Value

		switch d.Status {
		case deal.StatusWon:
			stats.WonDeals++
		case deal.StatusLost:
			stats.LostDeals++
		default:
			stats.ForecastValue += d.Value * float64(d.Probability) / 100
		}
	}

	if stats.TotalDeals > 0 {
		stats.AverageDealSize = stats.TotalValue / float64(stats.TotalDeals)
	}
	if decided := stats.WonDeals + stats.LostDeals; decided > 0 {
		stats.WinRate = float64(stats.WonDeals) / float64(decided) * 100
	}

	return stats
}
