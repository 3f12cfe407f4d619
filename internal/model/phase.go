package model

import "fmt"

// Phase is one of the four generation phases of the plant.
type Phase int

const (
	Phase1 Phase = 1
	Phase2 Phase = 2
	Phase3 Phase = 3
	Phase4 Phase = 4
)

// Phases lists all phases in processing order.
var Phases = []Phase{Phase1, Phase2, Phase3, Phase4}

func (p Phase) String() string {
	return fmt.Sprintf("Phase %d", int(p))
}

// ParsePhase converts an input label (1..4) to a Phase.
func ParsePhase(s string) (Phase, bool) {
	switch s {
	case "1":
		return Phase1, true
	case "2":
		return Phase2, true
	case "3":
		return Phase3, true
	case "4":
		return Phase4, true
	}
	return 0, false
}
