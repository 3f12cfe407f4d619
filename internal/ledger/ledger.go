package ledger

import (
	"errors"
	"fmt"

	"coalplan/internal/model"
)

// ErrInsufficientStock is returned when a port debit exceeds the
// available quantity for that coal type.
var ErrInsufficientStock = errors.New("insufficient port stock")

// debitTolerance absorbs solver float slack when a blend debit lands a
// hair above the available quantity; within it the debit is capped at
// the available stock.
const debitTolerance = 1e-6

// StockLedger owns the mutable port stock (by coal type) and site stock
// (by phase) for one simulation run. Callers only ever see copies.
type StockLedger struct {
	port map[model.CoalType]float64
	site map[model.Phase]float64
}

// New builds a ledger from initial stock tables. The input maps are
// copied; absent keys start at zero.
func New(port map[model.CoalType]float64, site map[model.Phase]float64) *StockLedger {
	l := &StockLedger{
		port: make(map[model.CoalType]float64, len(model.CoalTypes)),
		site: make(map[model.Phase]float64, len(model.Phases)),
	}
	for _, t := range model.CoalTypes {
		l.port[t] = port[t]
	}
	for _, p := range model.Phases {
		l.site[p] = site[p]
	}
	return l
}

// DebitPort removes amount of one coal type from port stock. A debit
// that exceeds the available quantity fails without changing the ledger.
func (l *StockLedger) DebitPort(t model.CoalType, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("negative debit %.4f for coal %s", amount, t)
	}
	cur := l.port[t]
	if amount > cur+debitTolerance {
		return fmt.Errorf("%w: coal %s has %.4f, debit %.4f", ErrInsufficientStock, t, cur, amount)
	}
	if amount > cur {
		amount = cur
	}
	l.port[t] = cur - amount
	return nil
}

// CreditPort adds amount of one coal type to port stock.
func (l *StockLedger) CreditPort(t model.CoalType, amount float64) {
	l.port[t] += amount
}

// DebitSite removes amount from a phase's site stock, clamping at zero.
// Over-draw is absorbed, never reported.
func (l *StockLedger) DebitSite(p model.Phase, amount float64) {
	rem := l.site[p] - amount
	if rem < 0 {
		rem = 0
	}
	l.site[p] = rem
}

// PortStock returns the current quantity of one coal type.
func (l *StockLedger) PortStock(t model.CoalType) float64 {
	return l.port[t]
}

// PortTotal returns the summed port stock across all coal types.
// Summation follows the canonical type order so the float result is
// stable across runs.
func (l *StockLedger) PortTotal() float64 {
	var total float64
	for _, t := range model.CoalTypes {
		total += l.port[t]
	}
	return total
}

// PortSnapshot returns a copy of the port stock table.
func (l *StockLedger) PortSnapshot() map[model.CoalType]float64 {
	snap := make(map[model.CoalType]float64, len(l.port))
	for t, q := range l.port {
		snap[t] = q
	}
	return snap
}

// SiteSnapshot returns a copy of the site stock table.
func (l *StockLedger) SiteSnapshot() map[model.Phase]float64 {
	snap := make(map[model.Phase]float64, len(l.site))
	for p, q := range l.site {
		snap[p] = q
	}
	return snap
}
