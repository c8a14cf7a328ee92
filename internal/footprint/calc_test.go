package footprint_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbonwakeup/server/internal/footprint"
)

func TestCalculate_AllZero(t *testing.T) {
	b := footprint.Calculate(footprint.Input{})

	assert.Zero(t, b.Electricity.Value)
	assert.Zero(t, b.Transportation.Value)
	assert.Zero(t, b.NaturalGas.Value)
	assert.Zero(t, b.Dietary.Value)
	assert.Zero(t, b.Total.Value)
}

func TestCalculate_ElectricityOnly(t *testing.T) {
	b := footprint.Calculate(footprint.Input{
		ElectricityUsageKWh: 100,
		DietaryChoice:       footprint.DietVegan,
	})

	// 100 kWh * 0.49 kg/kWh * 12 months
	assert.InDelta(t, 588.0, b.Electricity.Value, 1e-9)
	assert.Zero(t, b.Transportation.Value)
	assert.Zero(t, b.NaturalGas.Value)
	assert.Zero(t, b.Dietary.Value)
	assert.InDelta(t, 588.0, b.Total.Value, 1e-9)
}

func TestCalculate_Breakdown(t *testing.T) {
	in := footprint.Input{
		ElectricityUsageKWh:  250,
		KmDrivenPerMonth:     1200,
		NaturalGasGJPerMonth: 3,
		CaloriesPerDay:       2400,
		DietaryChoice:        footprint.DietOmnivore,
	}
	b := footprint.Calculate(in)

	assert.InDelta(t, 250*0.49*12, b.Electricity.Value, 1e-9)
	assert.InDelta(t, 1200*0.143*12, b.Transportation.Value, 1e-9)
	assert.InDelta(t, 3*50*12, b.NaturalGas.Value, 1e-9)
	assert.InDelta(t, 2.23*2.4*365, b.Dietary.Value, 1e-9)
}

func TestCalculate_TotalIsSumOfComponents(t *testing.T) {
	inputs := []footprint.Input{
		{},
		{ElectricityUsageKWh: 1, KmDrivenPerMonth: 1, NaturalGasGJPerMonth: 1, CaloriesPerDay: 1, DietaryChoice: footprint.DietVegetarian},
		{ElectricityUsageKWh: 987.5, KmDrivenPerMonth: 432.1, NaturalGasGJPerMonth: 7.7, CaloriesPerDay: 1899, DietaryChoice: footprint.DietPescatarian},
		{ElectricityUsageKWh: -5, KmDrivenPerMonth: math.NaN(), CaloriesPerDay: 2000, DietaryChoice: footprint.DietVegan},
	}

	for _, in := range inputs {
		b := footprint.Calculate(in)
		sum := b.Electricity.Value + b.Transportation.Value + b.NaturalGas.Value + b.Dietary.Value
		assert.InDelta(t, sum, b.Total.Value, 1e-9)
	}
}

func TestCalculate_Pure(t *testing.T) {
	in := footprint.Input{
		ElectricityUsageKWh:  321,
		KmDrivenPerMonth:     654,
		NaturalGasGJPerMonth: 9,
		CaloriesPerDay:       1750,
		DietaryChoice:        footprint.DietVegetarian,
	}

	first := footprint.Calculate(in)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, footprint.Calculate(in))
	}
}

func TestCalculate_UnknownDietContributesZero(t *testing.T) {
	b := footprint.Calculate(footprint.Input{
		CaloriesPerDay: 2500,
		DietaryChoice:  footprint.Diet("Carnivore"),
	})

	assert.Zero(t, b.Dietary.Value)
	assert.Zero(t, b.Total.Value)
}

func TestCalculate_DietFactors(t *testing.T) {
	cases := []struct {
		diet   footprint.Diet
		factor float64
	}{
		{footprint.DietVegan, 0.69},
		{footprint.DietVegetarian, 1.16},
		{footprint.DietPescatarian, 1.66},
		{footprint.DietOmnivore, 2.23},
	}

	for _, c := range cases {
		t.Run(string(c.diet), func(t *testing.T) {
			b := footprint.Calculate(footprint.Input{CaloriesPerDay: 1000, DietaryChoice: c.diet})
			assert.InDelta(t, c.factor*365, b.Dietary.Value, 1e-9)
		})
	}
}

func TestCalculate_BadNumbersCoerceToZero(t *testing.T) {
	b := footprint.Calculate(footprint.Input{
		ElectricityUsageKWh:  -100,
		KmDrivenPerMonth:     math.NaN(),
		NaturalGasGJPerMonth: math.Inf(1),
		CaloriesPerDay:       math.Inf(-1),
		DietaryChoice:        footprint.DietOmnivore,
	})

	assert.Zero(t, b.Total.Value)
}

func TestCalculate_UnitOnEveryComponent(t *testing.T) {
	b := footprint.Calculate(footprint.Input{ElectricityUsageKWh: 10})
	for _, c := range []footprint.Component{b.Electricity, b.Transportation, b.NaturalGas, b.Dietary, b.Total} {
		assert.Equal(t, "kgCO2e/year", c.Unit)
	}
}

func TestNumberOrZero(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"Float", 12.5, 12.5},
		{"Int", 7, 7},
		{"NumericString", "42.5", 42.5},
		{"GarbageString", "lots", 0},
		{"Nil", nil, 0},
		{"Bool", true, 0},
		{"Object", map[string]any{"v": 1}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, footprint.NumberOrZero(c.in))
		})
	}
}
