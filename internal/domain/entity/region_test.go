package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRegion(t *testing.T) {
	tests := []struct {
		label string
		want  Region
	}{
		{"São Paulo - SP", Region{City: "São Paulo", State: "SP"}},
		{"Copacabana - Rio de Janeiro, RJ", Region{City: "Rio de Janeiro", State: "RJ"}},
		{"São Paulo, SP", Region{City: "São Paulo", State: "SP"}},
		{"Av. Paulista, 1000 - São Paulo, SP", Region{City: "São Paulo", State: "SP"}},
		{"curitiba - pr", Region{City: "curitiba", State: "PR"}},
		{"  Belo Horizonte - MG  ", Region{City: "Belo Horizonte", State: "MG"}},
		{"", Region{}},
		{"Brasil", Region{}},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRegion(tt.label))
		})
	}
}

func TestRegionIsZero(t *testing.T) {
	assert.True(t, Region{}.IsZero())
	assert.False(t, Region{City: "Recife"}.IsZero())
	assert.False(t, Region{State: "PE"}.IsZero())
}
