package model

import "time"

// BlendResult is the outcome of one phase's blend solve.
type BlendResult struct {
	Date        time.Time
	Phase       Phase
	Blend       map[CoalType]float64
	AchievedGCV float64
	Deviation   float64
}

// ProcurementDecision lists additional bulk purchases scheduled for one
// day, keyed by coal type. Only B, C and D are ever purchased.
type ProcurementDecision map[CoalType]float64

// DailyRecord is the full audit trail for one simulated day, captured
// after all end-of-day adjustments have been applied.
type DailyRecord struct {
	Date        time.Time
	Consumption map[Phase]float64
	PortStock   map[CoalType]float64
	SiteStock   map[Phase]float64
	PortSupply  map[Phase]float64
	Procurement ProcurementDecision
}
