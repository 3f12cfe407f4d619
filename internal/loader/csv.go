package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"coalplan/internal/model"
)

// ErrMalformedInput is returned for unknown keys, duplicate rows, or
// non-numeric values in any input table.
var ErrMalformedInput = errors.New("malformed input")

const dateLayout = "2006-01-02"

func readTable(path string, wantHeader []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		// Ragged rows and quoting errors are malformed input, same as
		// bad values.
		return nil, fmt.Errorf("%w: read %s: %v", ErrMalformedInput, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrMalformedInput, path)
	}
	header := rows[0]
	if len(header) != len(wantHeader) {
		return nil, fmt.Errorf("%w: %s: expected columns %v", ErrMalformedInput, path, wantHeader)
	}
	for i, col := range wantHeader {
		if strings.TrimSpace(strings.ToLower(header[i])) != col {
			return nil, fmt.Errorf("%w: %s: expected column %q, got %q", ErrMalformedInput, path, col, header[i])
		}
	}
	return rows[1:], nil
}

func parseQuantity(path, field string) (float64, error) {
	q, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: non-numeric quantity %q", ErrMalformedInput, path, field)
	}
	if q < 0 {
		return 0, fmt.Errorf("%w: %s: negative quantity %q", ErrMalformedInput, path, field)
	}
	return q, nil
}

// PortStock reads the initial port stock table (coal_type,quantity).
// Rows must be unique by type; absent types start at zero stock.
func PortStock(path string) (map[model.CoalType]float64, error) {
	rows, err := readTable(path, []string{"coal_type", "quantity"})
	if err != nil {
		return nil, err
	}
	stock := make(map[model.CoalType]float64, len(model.CoalTypes))
	for _, row := range rows {
		t, ok := model.ParseCoalType(strings.TrimSpace(row[0]))
		if !ok {
			return nil, fmt.Errorf("%w: %s: unknown coal type %q", ErrMalformedInput, path, row[0])
		}
		if _, dup := stock[t]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate coal type %q", ErrMalformedInput, path, row[0])
		}
		q, err := parseQuantity(path, row[1])
		if err != nil {
			return nil, err
		}
		stock[t] = q
	}
	return stock, nil
}

// SiteStock reads the initial site stock table (phase,quantity). Rows
// must be unique by phase; absent phases start at zero stock.
func SiteStock(path string) (map[model.Phase]float64, error) {
	rows, err := readTable(path, []string{"phase", "quantity"})
	if err != nil {
		return nil, err
	}
	stock := make(map[model.Phase]float64, len(model.Phases))
	for _, row := range rows {
		p, ok := model.ParsePhase(strings.TrimSpace(row[0]))
		if !ok {
			return nil, fmt.Errorf("%w: %s: unknown phase %q", ErrMalformedInput, path, row[0])
		}
		if _, dup := stock[p]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate phase %q", ErrMalformedInput, path, row[0])
		}
		q, err := parseQuantity(path, row[1])
		if err != nil {
			return nil, err
		}
		stock[p] = q
	}
	return stock, nil
}

// GenerationPlan reads the generation schedule
// (date,phase1,phase2,phase3,phase4), one row per date.
func GenerationPlan(path string) ([]model.GenerationDay, error) {
	rows, err := readTable(path, []string{"date", "phase1", "phase2", "phase3", "phase4"})
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(rows))
	plan := make([]model.GenerationDay, 0, len(rows))
	for _, row := range rows {
		ds := strings.TrimSpace(row[0])
		date, err := time.Parse(dateLayout, ds)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: bad date %q", ErrMalformedInput, path, row[0])
		}
		if seen[ds] {
			return nil, fmt.Errorf("%w: %s: duplicate date %q", ErrMalformedInput, path, ds)
		}
		seen[ds] = true

		day := model.GenerationDay{Date: date, Output: make(map[model.Phase]float64, len(model.Phases))}
		for i, p := range model.Phases {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[i+1]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: non-numeric value %q for %s on %s", ErrMalformedInput, path, row[i+1], p, ds)
			}
			day.Output[p] = v
		}
		plan = append(plan, day)
	}
	return plan, nil
}
