package service

import (
	"testing"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"
)

func TestNormalizePaymentPeriod(t *testing.T) {
	tests := []struct {
		name    string
		raw     interface{}
		want    int
		wantErr bool
	}{
		{name: "numeric", raw: float64(24), want: 24},
		{name: "display string", raw: "24 months", want: 24},
		{name: "singular month", raw: "1 month", want: 1},
		{name: "bare number string", raw: "12", want: 12},
		{name: "padded string", raw: "  36 months ", want: 36},
		{name: "zero", raw: float64(0), wantErr: true},
		{name: "negative", raw: float64(-6), wantErr: true},
		{name: "garbage string", raw: "soon", wantErr: true},
		{name: "nil", raw: nil, wantErr: true},
		{name: "bool", raw: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizePaymentPeriod(tt.raw)
			if tt.wantErr {
				if !apperror.IsKind(err, apperror.KindValidation) {
					t.Fatalf("normalizePaymentPeriod(%v) error = %v, want validation error", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizePaymentPeriod(%v) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("normalizePaymentPeriod(%v) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}
