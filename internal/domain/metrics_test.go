package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricMath(t *testing.T) {
	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{name: "CTR com impressões", got: CTR(50, 1000), expected: 5.0},
		{name: "CTR sem impressões retorna zero", got: CTR(50, 0), expected: 0},
		{name: "ConversionRate com cliques", got: ConversionRate(10, 200), expected: 5.0},
		{name: "ConversionRate sem cliques retorna zero", got: ConversionRate(10, 0), expected: 0},
		{name: "CPC com cliques", got: CPC(100, 50), expected: 2.0},
		{name: "CPC sem cliques retorna zero", got: CPC(100, 0), expected: 0},
		{name: "CPA com conversões", got: CPA(100, 4), expected: 25.0},
		{name: "CPA sem conversões retorna zero", got: CPA(100, 0), expected: 0},
		{name: "ROAS com investimento", got: ROAS(300, 100), expected: 3.0},
		{name: "ROAS sem investimento retorna zero", got: ROAS(300, 0), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.got, 1e-9)
		})
	}
}
