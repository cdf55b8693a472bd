package currency

import (
	"fmt"
	"math"
	"strings"
)

// zeroDecimal lists ISO 4217 currencies that are quoted without minor units.
var zeroDecimal = map[string]bool{
	"IDR": true,
	"JPY": true,
	"KRW": true,
	"VND": true,
	"CLP": true,
	"ISK": true,
}

// Format renders an amount as "EUR 1,234.50". Zero-decimal currencies
// drop the fraction and IDR keeps its "." thousands separator.
func Format(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "IDR" {
		return FormatIDR(amount)
	}

	decimals := 2
	if zeroDecimal[code] {
		decimals = 0
	}

	scale := math.Pow10(decimals)
	rounded := math.Round(amount*scale) / scale

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	str := fmt.Sprintf("%.*f", decimals, rounded)
	intPart, fracPart, _ := strings.Cut(str, ".")

	result := addThousandsSeparator(intPart, ",")
	if fracPart != "" {
		result += "." + fracPart
	}
	if code != "" {
		result = code + " " + result
	}
	if negative {
		result = "-" + result
	}

	return result
}

func FormatIDR(amount float64) string {
	rounded := math.Round(amount)

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	intStr := fmt.Sprintf("%.0f", rounded)
	formatted := addThousandsSeparator(intStr, ".")

	result := "IDR " + formatted
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
