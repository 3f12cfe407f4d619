package calculator

import "coalplan/internal/model"

// Allocation splits one phase's consumption between port-sourced and
// site-sourced supply. The figures are aggregate mass per phase, not a
// per-coal-type breakdown.
type Allocation struct {
	Port float64
	Site float64
}

// Allocate applies the fixed site-contribution policy: phases 1 and 2
// draw entirely from port stock; phases 3 and 4 each draw a fixed
// siteContribution from site stock and the remainder from port. Port
// supply never goes negative when consumption falls below the site
// contribution.
func Allocate(phase model.Phase, consumption, siteContribution float64) Allocation {
	switch phase {
	case model.Phase3, model.Phase4:
		port := consumption - siteContribution
		if port < 0 {
			port = 0
		}
		return Allocation{Port: port, Site: siteContribution}
	default:
		return Allocation{Port: consumption}
	}
}
