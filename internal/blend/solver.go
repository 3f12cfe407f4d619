package blend

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"coalplan/internal/model"
)

// ErrInfeasibleBlend is returned when available stock cannot cover the
// minimum blend mass, so no blend exists at all.
var ErrInfeasibleBlend = errors.New("infeasible blend")

// MinBlendMass is the floor on total blended mass that rules out the
// degenerate zero-mass solution.
const MinBlendMass = 1e-3

// simplexTol is the feasibility tolerance handed to the simplex solver.
const simplexTol = 1e-10

// Result holds one phase's blend: quantities per coal type, the
// mass-weighted GCV actually achieved, and how far it misses the target.
type Result struct {
	Blend       map[model.CoalType]float64
	AchievedGCV float64
	Deviation   float64
}

// Solve picks blend quantities from the given stock minimizing the
// deviation of the blend's weighted GCV from requiredGCV. Each call
// builds and solves a fresh linear program; the solver carries no state
// between calls.
//
// Decision variables are one quantity per coal type plus two slack
// variables devAbove/devBelow that linearize the absolute deviation:
//
//	minimize devAbove + devBelow
//	s.t.  Σ x[c]·gcv[c] − required·Σ x[c] ≤ devAbove
//	      required·Σ x[c] − Σ x[c]·gcv[c] ≤ devBelow
//	      x[c] ≤ stock[c]
//	      Σ x[c] ≥ MinBlendMass
//	      all variables ≥ 0
func Solve(requiredGCV float64, stock map[model.CoalType]float64) (Result, error) {
	n := len(model.CoalTypes)
	nv := n + 2 // blend quantities, devAbove, devBelow
	devAbove, devBelow := n, n+1

	var g []float64
	var h []float64
	addRow := func(row []float64, bound float64) {
		g = append(g, row...)
		h = append(h, bound)
	}

	above := make([]float64, nv)
	below := make([]float64, nv)
	floor := make([]float64, nv)
	for i, t := range model.CoalTypes {
		above[i] = model.GCV[t] - requiredGCV
		below[i] = requiredGCV - model.GCV[t]
		floor[i] = -1
	}
	above[devAbove] = -1
	below[devBelow] = -1
	addRow(above, 0)
	addRow(below, 0)

	// Stock caps enter the matrix clamped at 1.0. Raw caps run to
	// hundreds of thousands against the 1e-3 mass floor, and that spread
	// makes the simplex mis-report feasible problems as infeasible. The
	// clamp keeps the optimum: any composition scales down to the mass
	// floor, where no clamped cap binds; caps below the floor are
	// unchanged, so true infeasibility is detected as before.
	for i, t := range model.CoalTypes {
		row := make([]float64, nv)
		row[i] = 1
		cap := stock[t]
		if cap > 1 {
			cap = 1
		}
		addRow(row, cap)
	}
	addRow(floor, -MinBlendMass)

	for i := 0; i < nv; i++ {
		row := make([]float64, nv)
		row[i] = -1
		addRow(row, 0)
	}

	c := make([]float64, nv)
	c[devAbove] = 1
	c[devBelow] = 1

	cStd, aStd, bStd := lp.Convert(c, mat.NewDense(len(h), nv, g), h, nil, nil)
	_, xStd, err := lp.Simplex(cStd, aStd, bStd, simplexTol, nil)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return Result{}, fmt.Errorf("%w: total available stock below %g", ErrInfeasibleBlend, MinBlendMass)
		}
		return Result{}, fmt.Errorf("lp solve: %w", err)
	}

	// Convert splits each free variable into a positive and a negative
	// part: x[i] = xStd[i] - xStd[nv+i].
	res := Result{Blend: make(map[model.CoalType]float64, n)}
	var mass, weighted float64
	for i, t := range model.CoalTypes {
		q := xStd[i] - xStd[nv+i]
		if q < 0 {
			q = 0
		}
		if q > stock[t] {
			q = stock[t]
		}
		res.Blend[t] = q
		mass += q
		weighted += q * model.GCV[t]
	}
	if mass > 0 {
		res.AchievedGCV = weighted / mass
		res.Deviation = math.Abs(res.AchievedGCV - requiredGCV)
	}
	return res, nil
}
