package api

import (
	"encoding/json"
	"net/http"

	"github.com/carbonwakeup/server/internal/footprint"
)

// CalculatorHandler exposes the footprint calculator. The endpoint is open:
// the calculation is pure and touches no stored state.
type CalculatorHandler struct{}

func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	// Field-level garbage coerces to zero contributions rather than erroring,
	// so sliders and hand-written clients get a number back for any shape of
	// record. Only an unparseable body is rejected.
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	diet, _ := raw["dietaryChoice"].(string)
	in := footprint.Input{
		ElectricityUsageKWh:  footprint.NumberOrZero(raw["electricityUsageKWh"]),
		KmDrivenPerMonth:     footprint.NumberOrZero(raw["kmDrivenPerMonth"]),
		NaturalGasGJPerMonth: footprint.NumberOrZero(raw["naturalGasGJPerMonth"]),
		CaloriesPerDay:       footprint.NumberOrZero(raw["caloriesPerDay"]),
		DietaryChoice:        footprint.Diet(diet),
	}

	writeJSON(w, footprint.Calculate(in), http.StatusOK)
}
