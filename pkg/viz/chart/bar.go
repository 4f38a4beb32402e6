// Package chart calcula a geometria de gráficos de barra e linha a partir
// de valores brutos. A saída são coordenadas prontas para renderização; o
// pacote não desenha nada.
package chart

import (
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

// BarEntry é uma barra a renderizar.
type BarEntry struct {
	Label string
	Value float64
	Color string
}

// Bar é uma barra com o comprimento já escalado linearmente em relação ao
// maior valor do lote.
type Bar struct {
	Label          string  `json:"label"`
	Value          float64 `json:"value"`
	Length         float64 `json:"length"`
	Color          string  `json:"color"`
	FormattedValue string  `json:"formatted_value"`
}

// BarConfig parametriza a escala das barras. FormatValue controla o rótulo;
// o padrão é inteiro com separador de milhar.
type BarConfig struct {
	MaxLength   float64
	FormatValue func(float64) string
}

// BuildBars escala cada entrada linearmente contra o maior valor da
// sequência. Valores zero geram barras de comprimento zero, não erro.
func BuildBars(entries []BarEntry, cfg BarConfig) []Bar {
	format := cfg.FormatValue
	if format == nil {
		format = func(v float64) string { return utils.FormatInt(int(v)) }
	}

	max := 0.0
	for _, e := range entries {
		if e.Value > max {
			max = e.Value
		}
	}

	bars := make([]Bar, 0, len(entries))
	for _, e := range entries {
		length := 0.0
		if max > 0 {
			length = e.Value / max * cfg.MaxLength
		}

		bars = append(bars, Bar{
			Label:          e.Label,
			Value:          e.Value,
			Length:         length,
			Color:          e.Color,
			FormattedValue: format(e.Value),
		})
	}

	return bars
}
