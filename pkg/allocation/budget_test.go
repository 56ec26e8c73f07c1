package allocation

import "testing"

func TestAvailable(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		ceiling  float64
		payments []float64
		want     float64
	}{
		{
			name:     "reference case",
			fraction: 0.70,
			ceiling:  1000,
			payments: []float64{300, 200},
			want:     200.00,
		},
		{
			name:     "no contracts",
			fraction: 0.70,
			ceiling:  1000,
			payments: nil,
			want:     700.00,
		},
		{
			name:     "over-committed goes negative",
			fraction: 0.70,
			ceiling:  500,
			payments: []float64{400},
			want:     -50.00,
		},
		{
			name:     "rounding to two decimals",
			fraction: 0.70,
			ceiling:  333.33,
			payments: []float64{100.004},
			want:     133.33, // 233.331 - 100.004 = 133.327, rounds to 133.33
		},
		{
			name:     "custom fraction",
			fraction: 0.50,
			ceiling:  1000,
			payments: []float64{100},
			want:     400.00,
		},
		{
			name:     "invalid fraction falls back to default",
			fraction: 0,
			ceiling:  1000,
			payments: []float64{500},
			want:     200.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := NewCalculator(tt.fraction)
			got := calc.Available(tt.ceiling, tt.payments)
			if got != tt.want {
				t.Errorf("Available(%v, %v) = %v, want %v", tt.ceiling, tt.payments, got, tt.want)
			}
		})
	}
}

func TestAvailableAvoidsFloatDrift(t *testing.T) {
	// 0.70*0.1 style products must not leak binary float noise into a
	// 2-decimal monetary figure.
	calc := NewCalculator(0.70)
	got := calc.Available(0.1, nil)
	if got != 0.07 {
		t.Errorf("Available(0.1, nil) = %v, want 0.07", got)
	}
}
