// Package footprint computes a household's yearly carbon footprint from
// self-reported usage numbers. The calculation is pure: no I/O, no state,
// and it never fails — bad input degrades to a zero contribution.
package footprint

import (
	"math"
	"strconv"
)

// Diet is a self-reported dietary choice. Unknown values contribute zero.
type Diet string

const (
	DietVegan       Diet = "Vegan"
	DietVegetarian  Diet = "Vegetarian"
	DietPescatarian Diet = "Pescatarian"
	DietOmnivore    Diet = "Omnivore"
)

// Input is the caller-supplied monthly/daily usage profile.
type Input struct {
	ElectricityUsageKWh  float64
	KmDrivenPerMonth     float64
	NaturalGasGJPerMonth float64
	CaloriesPerDay       float64
	DietaryChoice        Diet
}

// Component is one labeled slice of the breakdown.
type Component struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Breakdown is the annualized result. Total is always the exact sum of the
// four pathways.
type Breakdown struct {
	Electricity    Component `json:"electricity"`
	Transportation Component `json:"transportation"`
	NaturalGas     Component `json:"naturalGas"`
	Dietary        Component `json:"dietary"`
	Total          Component `json:"total"`
}

// Unit is the fixed unit string carried by every component.
const Unit = "kgCO2e/year"

// Emission factors. Electricity, transport and gas are monthly readings
// annualized by 12; diet is a daily rate annualized by 365.
const (
	electricityKgPerKWh = 0.49
	transportKgPerKm    = 0.143
	naturalGasKgPerGJ   = 50
	monthsPerYear       = 12
	daysPerYear         = 365
)

// kg CO2e per 1000 kcal per day
var dietFactors = map[Diet]float64{
	DietVegan:       0.69,
	DietVegetarian:  1.16,
	DietPescatarian: 1.66,
	DietOmnivore:    2.23,
}

// Calculate maps an input profile to its annualized emissions breakdown.
// The four pathways are independent and additive, so each input's effect on
// the total is local and linear.
func Calculate(in Input) Breakdown {
	electricity := clean(in.ElectricityUsageKWh) * electricityKgPerKWh * monthsPerYear
	transportation := clean(in.KmDrivenPerMonth) * transportKgPerKm * monthsPerYear
	naturalGas := clean(in.NaturalGasGJPerMonth) * naturalGasKgPerGJ * monthsPerYear
	dietary := dietFactors[in.DietaryChoice] * (clean(in.CaloriesPerDay) / 1000) * daysPerYear

	return Breakdown{
		Electricity:    Component{Value: electricity, Unit: Unit},
		Transportation: Component{Value: transportation, Unit: Unit},
		NaturalGas:     Component{Value: naturalGas, Unit: Unit},
		Dietary:        Component{Value: dietary, Unit: Unit},
		Total:          Component{Value: electricity + transportation + naturalGas + dietary, Unit: Unit},
	}
}

// clean is the validation-with-default step: negative, NaN and infinite
// readings collapse to 0 rather than erroring.
func clean(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// NumberOrZero coerces an arbitrary decoded JSON value to a usable number.
// Anything that is not a number (or a numeric string) counts as 0, mirroring
// the loose parsing the calculator's web callers have always relied on.
func NumberOrZero(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}
	return 0
}
