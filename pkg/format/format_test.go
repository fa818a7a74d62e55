package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		value decimal.Decimal
		want  string
	}{
		{decimal.NewFromFloat(250.0), "R$ 250,00"},
		{decimal.NewFromFloat(120.5), "R$ 120,50"},
		{decimal.NewFromFloat(1250.0), "R$ 1.250,00"},
		{decimal.Zero, "R$ 0,00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.value))
		})
	}
}

func TestLongDate(t *testing.T) {
	tests := []struct {
		isoDate string
		want    string
	}{
		{"2024-01-15", "segunda-feira, 15 de janeiro de 2024"},
		{"2024-03-01", "sexta-feira, 1 de março de 2024"},
		{"2024-12-25", "quarta-feira, 25 de dezembro de 2024"},
	}
	for _, tt := range tests {
		t.Run(tt.isoDate, func(t *testing.T) {
			assert.Equal(t, tt.want, LongDate(tt.isoDate))
		})
	}
}

func TestLongDate_UnparseableInputPassesThrough(t *testing.T) {
	assert.Equal(t, "amanhã", LongDate("amanhã"))
	assert.Equal(t, "", LongDate(""))
}
