package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatInt formata um inteiro com separador de milhar (ex: 1,234,567).
func FormatInt(v int) string {
	return printer.Sprintf("%d", v)
}

// FormatFloat formata um float com separador de milhar e duas casas decimais.
func FormatFloat(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// FormatCurrency formata um valor monetário em dólar com duas casas decimais.
func FormatCurrency(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// FormatPercent formata uma porcentagem com uma casa decimal.
func FormatPercent(v float64) string {
	return printer.Sprintf("%.1f%%", v)
}
