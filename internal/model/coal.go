package model

// CoalType identifies one of the five coal grades held at port.
type CoalType string

const (
	CoalA CoalType = "A"
	CoalB CoalType = "B"
	CoalC CoalType = "C"
	CoalD CoalType = "D"
	CoalE CoalType = "E"
)

// CoalTypes lists all grades in canonical order.
var CoalTypes = []CoalType{CoalA, CoalB, CoalC, CoalD, CoalE}

// GCV holds the gross calorific value of each grade (kcal/kg).
var GCV = map[CoalType]float64{
	CoalA: 3700,
	CoalB: 2800,
	CoalC: 4600,
	CoalD: 3950,
	CoalE: 4300,
}

// ParseCoalType converts an input label to a CoalType.
func ParseCoalType(s string) (CoalType, bool) {
	switch CoalType(s) {
	case CoalA, CoalB, CoalC, CoalD, CoalE:
		return CoalType(s), true
	}
	return "", false
}
