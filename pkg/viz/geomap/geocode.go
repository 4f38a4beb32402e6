// Package geomap posiciona e dimensiona bolhas em um mapa a partir de nomes
// de região, com escala de área proporcional ao valor.
package geomap

// Coordinate é uma posição normalizada no plano do mapa (0–1 em cada eixo).
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// geocodeTable mapeia regiões conhecidas para coordenadas fixas
// normalizadas. O conjunto é pequeno e enumerado de propósito; não há
// geocodificação dinâmica.
var geocodeTable = map[string]Coordinate{
	"North America":  {X: 0.22, Y: 0.32},
	"South America":  {X: 0.30, Y: 0.68},
	"Europe":         {X: 0.50, Y: 0.28},
	"Africa":         {X: 0.52, Y: 0.55},
	"Middle East":    {X: 0.58, Y: 0.42},
	"Asia":           {X: 0.72, Y: 0.38},
	"Southeast Asia": {X: 0.76, Y: 0.52},
	"Oceania":        {X: 0.85, Y: 0.72},
}

// fallbackCoordinate é usada para regiões fora da tabela; a ausência de uma
// região nunca é erro.
var fallbackCoordinate = Coordinate{X: 0.50, Y: 0.50}

// Geocode resolve o nome de uma região para sua coordenada fixa, caindo na
// coordenada padrão quando a região é desconhecida.
func Geocode(region string) Coordinate {
	if coord, ok := geocodeTable[region]; ok {
		return coord
	}
	return fallbackCoordinate
}

// KnownRegions retorna os nomes de região presentes na tabela de geocódigos.
func KnownRegions() []string {
	regions := make([]string, 0, len(geocodeTable))
	for region := range geocodeTable {
		regions = append(regions, region)
	}
	return regions
}
