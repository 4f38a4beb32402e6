package geomap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeocode_KnownAndFallback(t *testing.T) {
	europe := Geocode("Europe")
	assert.Equal(t, Coordinate{X: 0.50, Y: 0.28}, europe)

	// Região desconhecida cai na coordenada padrão, nunca em erro
	unknown := Geocode("Atlantis")
	assert.Equal(t, fallbackCoordinate, unknown)
}

func TestBuildMap_SqrtScaling(t *testing.T) {
	points := []PointInput{
		{Region: "Europe", Value: 10},
		{Region: "Asia", Value: 40},
		{Region: "Africa", Value: 90},
	}
	cfg := Config{MinRadius: 10, SizeSpan: 30}

	m := BuildMap(points, cfg)

	byRegion := map[string]Bubble{}
	for _, b := range m.Ranked {
		byRegion[b.Region] = b
	}

	// Raio do valor 40 deve seguir sqrt((40-10)/(90-10)) na faixa de raios
	expected := 10 + math.Sqrt(30.0/80.0)*30
	assert.InDelta(t, expected, byRegion["Asia"].Radius, 1e-9)

	// Sub-linear no valor bruto: a fração linear daria raio maior
	linear := 10 + (30.0/80.0)*30
	assert.Greater(t, byRegion["Asia"].Radius, linear)
}

func TestBuildMap_DegenerateBatchGetsMidpointRadius(t *testing.T) {
	cfg := Config{MinRadius: 10, SizeSpan: 30}
	midpoint := 10 + math.Sqrt(0.5)*30

	single := BuildMap([]PointInput{{Region: "Europe", Value: 42}}, cfg)
	assert.InDelta(t, midpoint, single.Bubbles[0].Radius, 1e-9)

	equal := BuildMap([]PointInput{
		{Region: "Europe", Value: 5},
		{Region: "Asia", Value: 5},
	}, cfg)
	for _, b := range equal.Bubbles {
		assert.InDelta(t, midpoint, b.Radius, 1e-9)
	}
}

func TestBuildMap_DrawOrderLargestFirst(t *testing.T) {
	points := []PointInput{
		{Region: "Europe", Value: 1},
		{Region: "Asia", Value: 100},
		{Region: "Africa", Value: 50},
	}

	m := BuildMap(points, Config{MinRadius: 5, SizeSpan: 20})

	for i := 1; i < len(m.Bubbles); i++ {
		assert.GreaterOrEqual(t, m.Bubbles[i-1].Radius, m.Bubbles[i].Radius)
	}
}

func TestBuildMap_RankedDescendingByValue(t *testing.T) {
	points := []PointInput{
		{Region: "Europe", Value: 10},
		{Region: "Asia", Value: 30},
		{Region: "Africa", Value: 20},
	}

	m := BuildMap(points, Config{MinRadius: 5, SizeSpan: 20})

	assert.Equal(t, "Asia", m.Ranked[0].Region)
	assert.Equal(t, "Africa", m.Ranked[1].Region)
	assert.Equal(t, "Europe", m.Ranked[2].Region)
}

func TestBuildMap_OpacityScalesWithFraction(t *testing.T) {
	points := []PointInput{
		{Region: "Europe", Value: 0},
		{Region: "Asia", Value: 100},
	}

	m := BuildMap(points, Config{MinRadius: 5, SizeSpan: 20, MinOpacity: 0.4})

	byRegion := map[string]Bubble{}
	for _, b := range m.Bubbles {
		byRegion[b.Region] = b
	}

	assert.InDelta(t, 0.4, byRegion["Europe"].Opacity, 1e-9)
	assert.InDelta(t, 1.0, byRegion["Asia"].Opacity, 1e-9)
}

func TestBuildMap_EmptyInput(t *testing.T) {
	m := BuildMap(nil, Config{MinRadius: 5, SizeSpan: 20})
	assert.Empty(t, m.Bubbles)
	assert.Empty(t, m.Ranked)
}
