// Package board computes derived statistics for a pipeline board. Everything
// here is pure: output depends only on the inputs, nothing is mutated or
// cached.
package board

import "github.com/example/dealboard/internal/core/stage"

// UnassignedStageID is the synthetic bucket for deals whose stage field does
// not resolve to any stage of the active pipeline. Orphaned deals surface
// there instead of silently vanishing from every column and total.
const UnassignedStageID = "unassigned"

// Deal carries the facts aggregation needs about one deal. Value and
// Probability are zero when the underlying record has none set.
type Deal struct {
	ID          string
	StageID     string
	Status      string
	Value       float64
	Probability int
}

// StageStats are the per-column derived statistics.
type StageStats struct {
	Count              int
	TotalValue         float64
	AverageProbability float64
}

// Aggregate computes per-stage statistics over the current deal set. Every
// stage of the registry gets an entry, plus UnassignedStageID when at least
// one deal references a stage the registry does not know.
func Aggregate(deals []Deal, reg *stage.Registry) map[string]StageStats {
	counts := make(map[string]int)
	values := make(map[string]float64)
	probSums := make(map[string]int)

	for _, d := range deals {
		key := d.StageID
		if !reg.Contains(key) {
			key = UnassignedStageID
		}
		counts[key]++
		values[key] += d.Value
		probSums[key] += d.Probability
	}

	out := make(map[string]StageStats, reg.Len()+1)
	for _, s := range reg.Stages() {
		out[s.ID] = statsFor(counts[s.ID], values[s.ID], probSums[s.ID])
	}
	if counts[UnassignedStageID] > 0 {
		out[UnassignedStageID] = statsFor(
			counts[UnassignedStageID],
			values[UnassignedStageID],
			probSums[UnassignedStageID],
		)
	}
	return out
}

func statsFor(count int, totalValue float64, probSum int) StageStats {
	stats := StageStats{Count: count, TotalValue: totalValue}
	if count > 0 {
		stats.AverageProbability = float64(probSum) / float64(count)
	}
	return stats
}
