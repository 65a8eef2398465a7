package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVND(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{amount: 0, want: "0 ₫"},
		{amount: 150000, want: "150.000 ₫"},
		{amount: 2500000, want: "2.500.000 ₫"},
		{amount: 12500000, want: "12.500.000 ₫"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatVND(tt.amount))
		})
	}
}
