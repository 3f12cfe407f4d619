package procurement

import "coalplan/internal/model"

// Planner schedules bulk coal purchases that keep total port stock at
// or above the safety threshold.
type Planner struct {
	SafetyStock float64
	BulkSize    float64
}

// Plan inspects post-blend port stock and returns the additional bulk
// purchases per coal type. Type B gets a single bulk only when its
// stock is exactly depleted. C and D each run their own replenishment
// loop seeded from the same starting total, so a shortfall below the
// safety threshold is replenished once per type; the B bulk feeds
// neither loop.
func (p Planner) Plan(port map[model.CoalType]float64) model.ProcurementDecision {
	dec := model.ProcurementDecision{
		model.CoalB: 0,
		model.CoalC: 0,
		model.CoalD: 0,
	}
	if port[model.CoalB] == 0 {
		dec[model.CoalB] = p.BulkSize
	}

	var total float64
	for _, t := range model.CoalTypes {
		total += port[t]
	}
	for _, t := range []model.CoalType{model.CoalC, model.CoalD} {
		running := total
		for running < p.SafetyStock {
			dec[t] += p.BulkSize
			running += p.BulkSize
		}
	}
	return dec
}
