package geomap

import (
	"math"
	"sort"
)

// PointInput é um ponto a plotar no mapa.
type PointInput struct {
	Region         string
	Country        string
	Value          float64
	SecondaryValue float64
}

// Bubble é um ponto posicionado e dimensionado, pronto para desenhar.
type Bubble struct {
	Region         string     `json:"region"`
	Country        string     `json:"country"`
	Value          float64    `json:"value"`
	SecondaryValue float64    `json:"secondary_value,omitempty"`
	Coordinate     Coordinate `json:"coordinate"`
	Radius         float64    `json:"radius"`
	Opacity        float64    `json:"opacity"`
}

// Map é a saída completa: bolhas em ordem de desenho (maiores primeiro,
// para que as menores fiquem visíveis por cima em coordenadas sobrepostas)
// e a tabela de ranking ordenada por valor decrescente.
type Map struct {
	Bubbles []Bubble `json:"bubbles"`
	Ranked  []Bubble `json:"ranked"`
}

// Config parametriza a faixa de raios e de opacidade das bolhas.
type Config struct {
	MinRadius  float64
	SizeSpan   float64
	MinOpacity float64
}

// BuildMap posiciona cada ponto pela tabela de geocódigos e escala o raio
// pela raiz quadrada da fração normalizada do valor em [min,max] do lote —
// assim a área, e não o raio, cresce linearmente com o valor. Lotes
// degenerados (max==min, inclusive ponto único) recebem o raio do ponto
// médio da faixa.
func BuildMap(points []PointInput, cfg Config) Map {
	if len(points) == 0 {
		return Map{}
	}

	if cfg.MinOpacity == 0 {
		cfg.MinOpacity = 0.4
	}

	min, max := points[0].Value, points[0].Value
	for _, p := range points {
		if p.Value < min {
			min = p.Value
		}
		if p.Value > max {
			max = p.Value
		}
	}
	span := max - min

	bubbles := make([]Bubble, 0, len(points))
	for _, p := range points {
		fraction := 0.5
		if span > 0 {
			fraction = (p.Value - min) / span
		}

		radius := cfg.MinRadius + math.Sqrt(fraction)*cfg.SizeSpan
		opacity := cfg.MinOpacity + fraction*(1-cfg.MinOpacity)

		bubbles = append(bubbles, Bubble{
			Region:         p.Region,
			Country:        p.Country,
			Value:          p.Value,
			SecondaryValue: p.SecondaryValue,
			Coordinate:     Geocode(p.Region),
			Radius:         radius,
			Opacity:        opacity,
		})
	}

	ranked := make([]Bubble, len(bubbles))
	copy(ranked, bubbles)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	// Ordem de desenho: maiores primeiro
	drawOrder := make([]Bubble, len(bubbles))
	copy(drawOrder, bubbles)
	sort.SliceStable(drawOrder, func(i, j int) bool {
		return drawOrder[i].Radius > drawOrder[j].Radius
	})

	return Map{Bubbles: drawOrder, Ranked: ranked}
}
