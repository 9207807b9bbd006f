package platform

import (
	"strings"

	"github.com/shopspring/decimal"
)

var microsPerUnit = decimal.NewFromInt(1_000_000)

// MicrosToCurrency converte valores em micros (1/1.000.000 da moeda) para unidades da moeda
func MicrosToCurrency(micros decimal.Decimal) float64 {
	return micros.Div(microsPerUnit).Round(2).InexactFloat64()
}

// ParseDecimal lê números que os fornecedores mandam como string; vazio ou inválido vira zero
func ParseDecimal(value string) decimal.Decimal {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}

	return d
}

// Ratio divide sem estourar em zero e arredonda em duas casas
func Ratio(numerator, denominator decimal.Decimal) float64 {
	if denominator.IsZero() {
		return 0
	}

	return numerator.Div(denominator).Round(2).InexactFloat64()
}

// MicrosToDecimal mantém a precisão para cálculos derivados (custo por conversão)
func MicrosToDecimal(micros decimal.Decimal) decimal.Decimal {
	return micros.Div(microsPerUnit)
}
