package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"AUD": "A$",
	"CAD": "C$",
	"CHF": "CHF",
	"SGD": "S$",
	"INR": "₹",
	"THB": "฿",
	"MXN": "MX$",
	"IDR": "Rp",
	"KRW": "₩",
	"VND": "₫",
}

// zeroDecimal lists currencies without minor units; amounts round to whole
// units when formatted.
var zeroDecimal = map[string]bool{
	"JPY": true,
	"KRW": true,
	"VND": true,
	"IDR": true,
}

// Symbol returns the display symbol for a currency, or the code itself when
// unrecognized.
func Symbol(code string) string {
	if s, ok := symbols[strings.ToUpper(code)]; ok {
		return s
	}
	return code
}

// Format renders an amount with its currency symbol, comma-grouped
// thousands, and the currency's fractional-digit rule. Rounding is half
// away from zero.
func Format(amount float64, code string) string {
	code = strings.ToUpper(code)

	places := int32(2)
	if zeroDecimal[code] {
		places = 0
	}

	d := decimal.NewFromFloat(amount)
	negative := d.IsNegative()
	if negative {
		d = d.Neg()
	}

	fixed := d.StringFixed(places)
	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i:]
	}

	result := Symbol(code) + addThousandsSeparator(intPart, ",") + fracPart
	if negative {
		result = "-" + result
	}

	return result
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
