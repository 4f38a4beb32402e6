package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildBars_LinearScale(t *testing.T) {
	entries := []BarEntry{
		{Label: "Mobile", Value: 100},
		{Label: "Desktop", Value: 50},
		{Label: "Tablet", Value: 0},
	}

	bars := BuildBars(entries, BarConfig{MaxLength: 200})

	assert.Len(t, bars, 3)
	assert.InDelta(t, 200, bars[0].Length, 1e-9)
	assert.InDelta(t, 100, bars[1].Length, 1e-9)
	// Valor zero gera barra de comprimento zero, não erro
	assert.InDelta(t, 0, bars[2].Length, 1e-9)
}

func TestBuildBars_AllZeroValues(t *testing.T) {
	entries := []BarEntry{{Label: "a", Value: 0}, {Label: "b", Value: 0}}

	bars := BuildBars(entries, BarConfig{MaxLength: 100})

	for _, b := range bars {
		assert.Zero(t, b.Length)
	}
}

func TestBuildBars_DefaultFormatGroupsThousands(t *testing.T) {
	bars := BuildBars([]BarEntry{{Label: "a", Value: 1234567}}, BarConfig{MaxLength: 100})
	assert.Equal(t, "1,234,567", bars[0].FormattedValue)
}

func TestBuildLineChart_SharedDomainAcrossSeries(t *testing.T) {
	series := []Series{
		{Name: "spend", Values: []float64{10, 20, 30}},
		{Name: "revenue", Values: []float64{5, 50, 40}},
	}

	lc := BuildLineChart(series, LineConfig{Width: 100, Height: 100, Labels: []string{"w1", "w2", "w3"}})

	// Domínio compartilhado: min=5, max=50, padding=4.5 em cada extremidade
	assert.InDelta(t, 0.5, lc.DomainMin, 1e-9)
	assert.InDelta(t, 54.5, lc.DomainMax, 1e-9)

	// O maior valor global mapeia mais próximo do topo (y menor)
	yMax := lc.Series[1].Points[1].Y // valor 50
	yMin := lc.Series[1].Points[0].Y // valor 5
	assert.Less(t, yMax, yMin)
}

func TestBuildLineChart_XSpreadAndInvertedY(t *testing.T) {
	series := []Series{{Name: "s", Values: []float64{0, 100}}}

	lc := BuildLineChart(series, LineConfig{Width: 100, Height: 100})

	pts := lc.Series[0].Points
	assert.InDelta(t, 0, pts[0].X, 1e-9)
	assert.InDelta(t, 100, pts[1].X, 1e-9)
	// y invertido: valor máximo no topo
	assert.Less(t, pts[1].Y, pts[0].Y)
}

func TestBuildLineChart_SinglePointCentersAtMidpoint(t *testing.T) {
	series := []Series{{Name: "s", Values: []float64{42}}}

	lc := BuildLineChart(series, LineConfig{Width: 100, Height: 100})

	assert.InDelta(t, 50, lc.Series[0].Points[0].X, 1e-9)
}

func TestBuildLineChart_DegenerateDomainCenters(t *testing.T) {
	series := []Series{{Name: "s", Values: []float64{7, 7, 7}}}

	lc := BuildLineChart(series, LineConfig{Width: 100, Height: 100})

	for _, p := range lc.Series[0].Points {
		assert.InDelta(t, 50, p.Y, 1e-9)
	}
}

func TestBuildLineChart_AllEmptySeriesIsNoData(t *testing.T) {
	series := []Series{{Name: "a"}, {Name: "b"}}

	lc := BuildLineChart(series, LineConfig{Width: 100, Height: 100})

	assert.True(t, lc.NoData)
	assert.Empty(t, lc.Series)
}
