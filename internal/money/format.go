// Package money renders integer-cent amounts for display. It has no part
// in any total computation, which always happens in exact cents.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var enUS = message.NewPrinter(language.AmericanEnglish)

// FormatCents renders an amount of US-dollar cents the way the storefront
// shows prices, with en-US digit grouping: 650 -> "$6.50", 123450 -> "$1,234.50".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return enUS.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
