package aggregating

import (
	"sort"
	"time"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

// aggregateWeekly deriva o rollup semanal. A chave de merge é a string
// week_start exata, sem normalização de fuso ou formato. A primeira
// ocorrência de uma semana semeia o acumulador com uma cópia completa do
// registro; ocorrências seguintes somam os contadores brutos.
func aggregateWeekly(data *domain.MarketingData) []WeeklyAggregate {
	byWeek := make(map[string]*WeeklyAggregate)
	order := make([]string, 0)

	for _, campaign := range data.Campaigns {
		if len(campaign.WeeklyPerformance) == 0 {
			continue
		}

		for _, week := range campaign.WeeklyPerformance {
			existing, ok := byWeek[week.WeekStart]
			if !ok {
				byWeek[week.WeekStart] = &WeeklyAggregate{
					WeekStart:   week.WeekStart,
					WeekEnd:     week.WeekEnd,
					Impressions: week.Impressions,
					Clicks:      week.Clicks,
					Conversions: week.Conversions,
					Spend:       week.Spend,
					Revenue:     week.Revenue,
				}
				order = append(order, week.WeekStart)
				continue
			}

			existing.Impressions += week.Impressions
			existing.Clicks += week.Clicks
			existing.Conversions += week.Conversions
			existing.Spend += week.Spend
			existing.Revenue += week.Revenue
		}
	}

	// Nenhuma taxa é armazenada no agregado semanal; taxas como ROAS são
	// derivadas na renderização

	weeks := make([]WeeklyAggregate, 0, len(order))
	for _, key := range order {
		weeks = append(weeks, *byWeek[key])
	}

	// Ordenação cronológica ascendente, estável: empates preservam a ordem
	// de primeira ocorrência
	sort.SliceStable(weeks, func(i, j int) bool {
		return weekStartValue(weeks[i].WeekStart).Before(weekStartValue(weeks[j].WeekStart))
	})

	return weeks
}

// weekStartValue converte week_start para um valor cronológico. Strings não
// interpretáveis valem a data mínima e ficam no início da ordenação.
func weekStartValue(weekStart string) time.Time {
	t, err := utils.ParseDate(weekStart)
	if err != nil {
		return time.Time{}
	}
	return *t
}
