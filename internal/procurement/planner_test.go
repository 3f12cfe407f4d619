package procurement

import (
	"testing"

	"coalplan/internal/model"
)

var defaultPlanner = Planner{SafetyStock: 550_000, BulkSize: 160_000}

func TestPlan_StockAtThreshold(t *testing.T) {
	port := map[model.CoalType]float64{
		model.CoalA: 200_000,
		model.CoalB: 150_000,
		model.CoalC: 100_000,
		model.CoalD: 50_000,
		model.CoalE: 50_000,
	}
	dec := defaultPlanner.Plan(port)
	for _, c := range []model.CoalType{model.CoalB, model.CoalC, model.CoalD} {
		if dec[c] != 0 {
			t.Errorf("stock at threshold: expected no purchase of %s, got %.0f", c, dec[c])
		}
	}
}

func TestPlan_DoubleReplenishment(t *testing.T) {
	tests := []struct {
		name   string
		total  float64
		wantCD float64
	}{
		{"one bulk each", 400_000, 160_000},
		{"two bulks each", 230_000, 320_000},
		{"exact multiple shortfall", 390_000, 160_000},
		{"just below threshold", 549_999, 160_000},
	}
	for _, tt := range tests {
		port := map[model.CoalType]float64{
			model.CoalB: tt.total / 2,
			model.CoalE: tt.total / 2,
		}
		dec := defaultPlanner.Plan(port)
		// C and D each replenish the same shortfall independently.
		if dec[model.CoalC] != tt.wantCD {
			t.Errorf("%s: expected C purchase %.0f, got %.0f", tt.name, tt.wantCD, dec[model.CoalC])
		}
		if dec[model.CoalD] != tt.wantCD {
			t.Errorf("%s: expected D purchase %.0f, got %.0f", tt.name, tt.wantCD, dec[model.CoalD])
		}
		if dec[model.CoalB] != 0 {
			t.Errorf("%s: B stock is positive, expected no B purchase, got %.0f", tt.name, dec[model.CoalB])
		}
	}
}

func TestPlan_DepletedBGetsOneBulk(t *testing.T) {
	port := map[model.CoalType]float64{
		model.CoalA: 600_000,
		model.CoalB: 0,
	}
	dec := defaultPlanner.Plan(port)
	if dec[model.CoalB] != 160_000 {
		t.Errorf("expected one bulk of B, got %.0f", dec[model.CoalB])
	}
	// The B bulk does not count toward the safety total; stock already
	// clears the threshold, so C and D stay untouched.
	if dec[model.CoalC] != 0 || dec[model.CoalD] != 0 {
		t.Errorf("expected no C/D purchases, got C=%.0f D=%.0f", dec[model.CoalC], dec[model.CoalD])
	}
}

func TestPlan_DepletedBDoesNotOffsetShortfall(t *testing.T) {
	// B is empty and the total is short: B gets its bulk and C and D
	// still replenish the full shortfall each.
	port := map[model.CoalType]float64{
		model.CoalA: 500_000,
		model.CoalB: 0,
	}
	dec := defaultPlanner.Plan(port)
	if dec[model.CoalB] != 160_000 {
		t.Errorf("expected one bulk of B, got %.0f", dec[model.CoalB])
	}
	if dec[model.CoalC] != 160_000 || dec[model.CoalD] != 160_000 {
		t.Errorf("expected one bulk each of C and D, got C=%.0f D=%.0f", dec[model.CoalC], dec[model.CoalD])
	}
}
