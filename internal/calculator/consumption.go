package calculator

import "coalplan/internal/model"

// consumptionRatios convert a phase's generation plan value into coal
// mass. Fixed plant characteristics, constant for a run.
var consumptionRatios = map[model.Phase]float64{
	model.Phase1: 84.24,
	model.Phase2: 84.24,
	model.Phase3: 177.2571,
	model.Phase4: 263.6229,
}

// Consumption returns the coal mass a phase consumes for the given
// generation value.
func Consumption(phase model.Phase, generation float64) float64 {
	return generation * consumptionRatios[phase]
}
