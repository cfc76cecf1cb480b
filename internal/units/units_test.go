package units

import (
	"math"
	"testing"
)

func TestMassRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		kg   float64
	}{
		{"zero", 0},
		{"one kg", 1},
		{"typical UAS", 4.2},
		{"large aircraft", 25000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LbsToKg(KgToLbs(tt.kg))
			if math.Abs(got-tt.kg) > 1e-12*math.Max(1, tt.kg) {
				t.Errorf("LbsToKg(KgToLbs(%v)) = %v, want %v", tt.kg, got, tt.kg)
			}
		})
	}
}

func TestLengthConversions(t *testing.T) {
	if got := FtToM(1); got != 0.3048 {
		t.Errorf("FtToM(1) = %v, want 0.3048", got)
	}
	if got := MToFt(0.3048); math.Abs(got-1) > 1e-12 {
		t.Errorf("MToFt(0.3048) = %v, want 1", got)
	}
}

func TestFtLbToJ(t *testing.T) {
	// 54 ft-lb is the NAWCAD default lethality threshold.
	got := FtLbToJ(54)
	want := 73.214172
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("FtLbToJ(54) = %v, want %v", got, want)
	}
}
