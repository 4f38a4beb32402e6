package domain

// Funções puras de métricas derivadas. Todas protegem contra divisão por
// zero retornando 0 quando o denominador é 0 — nunca um erro.

// CTR calcula a taxa de cliques (clicks/impressions) em porcentagem.
func CTR(clicks, impressions int) float64 {
	if impressions == 0 {
		return 0
	}
	return float64(clicks) / float64(impressions) * 100
}

// ConversionRate calcula a taxa de conversão (conversions/clicks) em porcentagem.
func ConversionRate(conversions, clicks int) float64 {
	if clicks == 0 {
		return 0
	}
	return float64(conversions) / float64(clicks) * 100
}

// CPC calcula o custo por clique.
func CPC(spend float64, clicks int) float64 {
	if clicks == 0 {
		return 0
	}
	return spend / float64(clicks)
}

// CPA calcula o custo por conversão.
func CPA(spend float64, conversions int) float64 {
	if conversions == 0 {
		return 0
	}
	return spend / float64(conversions)
}

// ROAS calcula o retorno sobre o investimento em anúncios (revenue/spend).
func ROAS(revenue, spend float64) float64 {
	if spend == 0 {
		return 0
	}
	return revenue / spend
}
