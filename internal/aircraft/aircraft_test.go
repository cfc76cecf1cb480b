package aircraft

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSpec() Aircraft {
	return Aircraft{
		Width:                    1.0,
		Length:                   1.5,
		Mass:                     4.0,
		FrictionCoefficient:      0.6,
		CoefficientOfRestitution: 0.7,
		FuelType:                 FuelLiPo,
		FuelQuantity:             0.5,
	}
}

func TestNew_Valid(t *testing.T) {
	a, err := New(validSpec())
	require.NoError(t, err)
	assert.Equal(t, 1.0, a.Width)
	assert.Equal(t, FuelLiPo, a.FuelType)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Aircraft)
	}{
		{"zero width", func(a *Aircraft) { a.Width = 0 }},
		{"negative width", func(a *Aircraft) { a.Width = -1 }},
		{"negative length", func(a *Aircraft) { a.Length = -0.1 }},
		{"zero mass", func(a *Aircraft) { a.Mass = 0 }},
		{"zero friction", func(a *Aircraft) { a.FrictionCoefficient = 0 }},
		{"negative restitution", func(a *Aircraft) { a.CoefficientOfRestitution = -0.2 }},
		{"negative fuel", func(a *Aircraft) { a.FuelQuantity = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(&spec)
			_, err := New(spec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidAircraft), "error should wrap ErrInvalidAircraft, got %v", err)
		})
	}
}

func TestParseFuelType(t *testing.T) {
	ft, err := ParseFuelType("jet_a1")
	require.NoError(t, err)
	assert.Equal(t, FuelJetA1, ft)

	_, err = ParseFuelType("antimatter")
	assert.Error(t, err)
}

func TestFuelTypeString(t *testing.T) {
	assert.Equal(t, "lipo", FuelLiPo.String())
	assert.Equal(t, "none", FuelNone.String())
}
