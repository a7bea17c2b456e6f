package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatValue renders a BRL amount the pt-BR way: R$ 1.234,50
func FormatValue(v decimal.Decimal) string {
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Neg()
	}

	intPart, frac, _ := strings.Cut(v.StringFixed(2), ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return sign + "R$ " + b.String() + "," + frac
}
