package aggregating

import (
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// GenderBucket acumula cliques e os valores alocados de investimento e
// receita de todos os slices de um gênero, em todas as campanhas.
type GenderBucket struct {
	Clicks  int     `json:"clicks"`
	Spend   float64 `json:"spend"`
	Revenue float64 `json:"revenue"`
}

// SpendRevenue acumula os valores alocados para uma faixa etária.
type SpendRevenue struct {
	Spend   float64 `json:"spend"`
	Revenue float64 `json:"revenue"`
}

// DemographicSliceRow é um registro bruto por (campanha, faixa etária),
// preservando as taxas pré-calculadas do próprio slice. Alimenta a tabela
// de detalhe, não o rollup.
type DemographicSliceRow struct {
	Campaign       string  `json:"campaign"`
	AgeGroup       string  `json:"age_group"`
	Impressions    int     `json:"impressions"`
	Clicks         int     `json:"clicks"`
	Conversions    int     `json:"conversions"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
}

// DemographicView é o agregado demográfico entre campanhas.
type DemographicView struct {
	Male         GenderBucket            `json:"male"`
	Female       GenderBucket            `json:"female"`
	AgeGroups    map[string]SpendRevenue `json:"age_groups"`
	MaleSlices   []DemographicSliceRow   `json:"male_slices"`
	FemaleSlices []DemographicSliceRow   `json:"female_slices"`
}

// DeviceBucket é o acumulador de um dispositivo com as taxas recalculadas
// a partir das somas brutas.
type DeviceBucket struct {
	Device              string  `json:"device"`
	Impressions         int     `json:"impressions"`
	Clicks              int     `json:"clicks"`
	Conversions         int     `json:"conversions"`
	Spend               float64 `json:"spend"`
	Revenue             float64 `json:"revenue"`
	CTR                 float64 `json:"ctr"`
	ConversionRate      float64 `json:"conversion_rate"`
	PercentageOfTraffic float64 `json:"percentage_of_traffic"`
}

// DeviceDetailRow é um registro bruto por (campanha, dispositivo) com ROAS
// calculado por registro; independe dos buckets do rollup.
type DeviceDetailRow struct {
	Campaign    string  `json:"campaign"`
	Device      string  `json:"device"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	ROAS        float64 `json:"roas"`
}

// DeviceView é o agregado por dispositivo entre campanhas.
type DeviceView struct {
	Mobile  DeviceBucket      `json:"mobile"`
	Desktop DeviceBucket      `json:"desktop"`
	Details []DeviceDetailRow `json:"details"`
}

// WeeklyAggregate é o acumulado de uma semana entre campanhas. Nenhuma taxa
// é armazenada aqui; taxas semanais são derivadas na renderização.
type WeeklyAggregate struct {
	WeekStart   string  `json:"week_start"`
	WeekEnd     string  `json:"week_end"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
}

// RegionalAggregate é o acumulado de uma região com todas as taxas
// derivadas recalculadas a partir das somas correntes a cada merge.
type RegionalAggregate struct {
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Impressions    int     `json:"impressions"`
	Clicks         int     `json:"clicks"`
	Conversions    int     `json:"conversions"`
	Spend          float64 `json:"spend"`
	Revenue        float64 `json:"revenue"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
	CPC            float64 `json:"cpc"`
	CPA            float64 `json:"cpa"`
	ROAS           float64 `json:"roas"`
}

// Aggregates reúne as quatro visões derivadas de um snapshot.
type Aggregates struct {
	Demographic *DemographicView    `json:"demographic"`
	Device      *DeviceView         `json:"device"`
	Weekly      []WeeklyAggregate   `json:"weekly"`
	Regional    []RegionalAggregate `json:"regional"`
}

// recompute recalcula as taxas derivadas do bucket a partir das somas.
func (b *DeviceBucket) recompute() {
	b.CTR = domain.CTR(b.Clicks, b.Impressions)
	b.ConversionRate = domain.ConversionRate(b.Conversions, b.Clicks)
}

// recompute recalcula todas as taxas derivadas da região a partir das somas
// correntes, cada uma protegida contra denominador zero.
func (r *RegionalAggregate) recompute() {
	r.CTR = domain.CTR(r.Clicks, r.Impressions)
	r.ConversionRate = domain.ConversionRate(r.Conversions, r.Clicks)
	r.CPC = domain.CPC(r.Spend, r.Clicks)
	r.CPA = domain.CPA(r.Spend, r.Conversions)
	r.ROAS = domain.ROAS(r.Revenue, r.Spend)
}
