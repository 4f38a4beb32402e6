package domain

// Gender são os valores de gênero reconhecidos pela agregação demográfica.
// Valores fora desta lista são ignorados nos totais por gênero.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Device são os valores de dispositivo reconhecidos pela agregação.
const (
	DeviceMobile  = "Mobile"
	DeviceDesktop = "Desktop"
)

// MarketingData é o snapshot completo retornado pela fonte de insights.
// Imutável depois de buscado; um novo fetch substitui o snapshot inteiro.
type MarketingData struct {
	Campaigns []Campaign `json:"campaigns"`
}

// Campaign representa uma campanha com seus totais e breakdowns opcionais.
// Um breakdown ausente significa que a campanha não contribui para aquela
// visão, não que contribui com zero.
type Campaign struct {
	Name                 string                 `json:"name"`
	Spend                float64                `json:"spend"`
	Revenue              float64                `json:"revenue"`
	DemographicBreakdown []DemographicBreakdown `json:"demographic_breakdown,omitempty"`
	DevicePerformance    []DevicePerformance    `json:"device_performance,omitempty"`
	WeeklyPerformance    []WeeklyPerformance    `json:"weekly_performance,omitempty"`
	RegionalPerformance  []RegionalPerformance  `json:"regional_performance,omitempty"`
}

// SlicePerformance são as métricas brutas de um slice demográfico, com as
// taxas pré-calculadas no nível do slice. Essas taxas valem apenas para o
// registro individual; rollups recalculam a partir das somas.
type SlicePerformance struct {
	Impressions    int     `json:"impressions"`
	Clicks         int     `json:"clicks"`
	Conversions    int     `json:"conversions"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
}

// DemographicBreakdown é um slice gênero×faixa etária de uma campanha.
type DemographicBreakdown struct {
	Gender               string           `json:"gender"`
	AgeGroup             string           `json:"age_group"`
	PercentageOfAudience float64          `json:"percentage_of_audience"`
	Performance          SlicePerformance `json:"performance"`
}

// DevicePerformance são métricas absolutas por dispositivo de uma campanha.
type DevicePerformance struct {
	Device         string  `json:"device"`
	Impressions    int     `json:"impressions"`
	Clicks         int     `json:"clicks"`
	Conversions    int     `json:"conversions"`
	Spend          float64 `json:"spend"`
	Revenue        float64 `json:"revenue"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
}

// WeeklyPerformance são métricas de uma campanha para uma semana.
// WeekStart é a chave de merge entre campanhas, comparada como string exata.
type WeeklyPerformance struct {
	WeekStart   string  `json:"week_start"`
	WeekEnd     string  `json:"week_end"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
}

// RegionalPerformance são métricas de uma campanha para uma região.
type RegionalPerformance struct {
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
