package model

import "time"

// GenerationDay is one row of the generation plan: the scheduled
// generation value for each phase on one date.
type GenerationDay struct {
	Date   time.Time
	Output map[Phase]float64
}
