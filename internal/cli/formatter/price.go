package formatter

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Prices are grouped by the conventions of the currency's home locale:
// "$120,000" and "Rp 1.920.000.000". Fractions are rounded away.
var (
	usdPrinter = message.NewPrinter(language.AmericanEnglish)
	idrPrinter = message.NewPrinter(language.Indonesian)
)

// FormatUSD renders a USD price, or a dash when it is missing or zero.
func FormatUSD(v *float64) string {
	if v == nil || *v == 0 {
		return Dash
	}
	return "$" + usdPrinter.Sprintf("%v", number.Decimal(*v, number.MaxFractionDigits(0)))
}

// FormatIDR renders a rupiah price, or a dash when it is missing or zero.
func FormatIDR(v *float64) string {
	if v == nil || *v == 0 {
		return Dash
	}
	return "Rp " + idrPrinter.Sprintf("%v", number.Decimal(*v, number.MaxFractionDigits(0)))
}

// FormatRate renders the USD to IDR exchange rate.
func FormatRate(rate float64) string {
	return "1 USD = " + FormatIDR(&rate)
}

// FormatArea renders an area in square meters.
func FormatArea(v *float64) string {
	if v == nil || *v == 0 {
		return Dash
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + " m²"
}
