package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Bamboo Toothbrush", "bamboo-toothbrush"},
		{"Orgánic Cotton Tote", "organic-cotton-tote"},
		{"100% Recycled Paper!!", "100-recycled-paper"},
		{"  Solar   Charger  ", "solar-charger"},
		{"Éco-Responsable", "eco-responsable"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}
