package chart

import (
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

// Series é uma série de valores compartilhando o eixo de rótulos do gráfico.
type Series struct {
	Name   string
	Color  string
	Values []float64
}

// Point é um ponto já mapeado para o plano do gráfico. Formatted carrega o
// valor exato exibido ao passar o mouse sobre o marcador.
type Point struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Value     float64 `json:"value"`
	Label     string  `json:"label"`
	Formatted string  `json:"formatted"`
}

// SeriesPath é a polilinha de uma série com seus marcadores.
type SeriesPath struct {
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Points []Point `json:"points"`
}

// LineChart é a geometria completa do gráfico. Todas as séries compartilham
// o mesmo domínio de valores para serem visualmente comparáveis. NoData
// indica que todas as séries estavam vazias.
type LineChart struct {
	Series    []SeriesPath `json:"series"`
	Labels    []string     `json:"labels"`
	DomainMin float64      `json:"domain_min"`
	DomainMax float64      `json:"domain_max"`
	NoData    bool         `json:"no_data"`
}

// LineConfig parametriza a área de plotagem.
type LineConfig struct {
	Width       float64
	Height      float64
	Labels      []string
	FormatValue func(float64) string
}

// BuildLineChart mapeia N séries para coordenadas do plano. O domínio é o
// min/max de todos os valores de todas as séries, com preenchimento
// simétrico de 10% do intervalo em cada extremidade. O eixo y é invertido:
// o maior valor fica no topo.
func BuildLineChart(series []Series, cfg LineConfig) LineChart {
	format := cfg.FormatValue
	if format == nil {
		format = utils.FormatFloat
	}

	empty := true
	for _, s := range series {
		if len(s.Values) > 0 {
			empty = false
			break
		}
	}
	if empty {
		return LineChart{NoData: true}
	}

	min, max := sharedDomain(series)
	padding := (max - min) * 0.1
	paddedMin := min - padding
	paddedMax := max + padding
	span := paddedMax - paddedMin

	chart := LineChart{
		Labels:    cfg.Labels,
		DomainMin: paddedMin,
		DomainMax: paddedMax,
	}

	for _, s := range series {
		path := SeriesPath{
			Name:   s.Name,
			Color:  s.Color,
			Points: make([]Point, 0, len(s.Values)),
		}

		count := len(s.Values)
		for i, v := range s.Values {
			// Série de um ponto só centraliza no meio da largura, já que
			// a divisão por (count-1) não está definida
			x := cfg.Width / 2
			if count > 1 {
				x = float64(i) / float64(count-1) * cfg.Width
			}

			// Domínio degenerado (todos os valores iguais) centraliza
			// verticalmente em vez de dividir por zero
			y := cfg.Height / 2
			if span > 0 {
				y = cfg.Height - (v-paddedMin)/span*cfg.Height
			}

			label := ""
			if i < len(cfg.Labels) {
				label = cfg.Labels[i]
			}

			path.Points = append(path.Points, Point{
				X:         x,
				Y:         y,
				Value:     v,
				Label:     label,
				Formatted: format(v),
			})
		}

		chart.Series = append(chart.Series, path)
	}

	return chart
}

// sharedDomain encontra o min/max de todos os valores de todas as séries.
func sharedDomain(series []Series) (float64, float64) {
	first := true
	var min, max float64

	for _, s := range series {
		for _, v := range s.Values {
			if first {
				min, max = v, v
				first = false
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}

	return min, max
}
