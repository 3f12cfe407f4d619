package simulator

import (
	"fmt"
	"log"
	"sort"

	"coalplan/internal/blend"
	"coalplan/internal/calculator"
	"coalplan/internal/ledger"
	"coalplan/internal/model"
	"coalplan/internal/procurement"
	"coalplan/internal/recorder"
)

// Params are the planning constants for one run.
type Params struct {
	Phase1GCV        float64
	OtherGCV         float64
	SafetyStock      float64
	BulkSize         float64
	SiteContribution float64
}

// Report collects the full output of one horizon run.
type Report struct {
	Blends []model.BlendResult
	Days   []model.DailyRecord
}

// Simulator runs the day-by-day blending and procurement pass. It owns
// the stock ledger for the duration of the run; a Simulator is a single
// forward pass and must not be reused.
type Simulator struct {
	ledger  *ledger.StockLedger
	params  Params
	planner procurement.Planner
	rec     recorder.Recorder
}

// New builds a Simulator around an initialized ledger.
func New(l *ledger.StockLedger, params Params, rec recorder.Recorder) *Simulator {
	return &Simulator{
		ledger: l,
		params: params,
		planner: procurement.Planner{
			SafetyStock: params.SafetyStock,
			BulkSize:    params.BulkSize,
		},
		rec: rec,
	}
}

// Run simulates the whole horizon in chronological order. The plan is
// sorted by date first; input row order is not trusted. Any blend or
// ledger failure aborts the run with the failing date and phase in the
// error.
func (s *Simulator) Run(plan []model.GenerationDay) (*Report, error) {
	days := make([]model.GenerationDay, len(plan))
	copy(days, plan)
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })

	report := &Report{
		Blends: make([]model.BlendResult, 0, len(days)*len(model.Phases)),
		Days:   make([]model.DailyRecord, 0, len(days)),
	}
	for _, day := range days {
		if err := s.runDay(day, report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func (s *Simulator) runDay(day model.GenerationDay, report *Report) error {
	date := day.Date.Format("2006-01-02")

	// Phases are solved in fixed order: each blend debits port stock
	// seen by the next phase's solve.
	for _, phase := range model.Phases {
		required := s.params.OtherGCV
		if phase == model.Phase1 {
			required = s.params.Phase1GCV
		}

		res, err := blend.Solve(required, s.ledger.PortSnapshot())
		if err != nil {
			return fmt.Errorf("%s %s: %w", date, phase, err)
		}
		for _, t := range model.CoalTypes {
			q := res.Blend[t]
			if q == 0 {
				continue
			}
			if err := s.ledger.DebitPort(t, q); err != nil {
				return fmt.Errorf("%s %s: apply blend: %w", date, phase, err)
			}
		}

		br := model.BlendResult{
			Date:        day.Date,
			Phase:       phase,
			Blend:       res.Blend,
			AchievedGCV: res.AchievedGCV,
			Deviation:   res.Deviation,
		}
		report.Blends = append(report.Blends, br)
		if err := s.rec.RecordBlend(br); err != nil {
			log.Printf("[WARN] record blend %s %s: %v", date, phase, err)
		}
	}

	// End-of-day adjustments.
	consumption := make(map[model.Phase]float64, len(model.Phases))
	supply := make(map[model.Phase]float64, len(model.Phases))
	for _, phase := range model.Phases {
		c := calculator.Consumption(phase, day.Output[phase])
		consumption[phase] = c
		supply[phase] = calculator.Allocate(phase, c, s.params.SiteContribution).Port
	}

	decision := s.planner.Plan(s.ledger.PortSnapshot())
	for _, t := range []model.CoalType{model.CoalB, model.CoalC, model.CoalD} {
		if decision[t] > 0 {
			s.ledger.CreditPort(t, decision[t])
		}
	}
	s.ledger.DebitSite(model.Phase3, s.params.SiteContribution)
	s.ledger.DebitSite(model.Phase4, s.params.SiteContribution)

	record := model.DailyRecord{
		Date:        day.Date,
		Consumption: consumption,
		PortStock:   s.ledger.PortSnapshot(),
		SiteStock:   s.ledger.SiteSnapshot(),
		PortSupply:  supply,
		Procurement: decision,
	}
	report.Days = append(report.Days, record)
	if err := s.rec.RecordDay(record); err != nil {
		log.Printf("[WARN] record day %s: %v", date, err)
	}
	return nil
}
