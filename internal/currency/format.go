package currency

import (
	"fmt"

	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format renders an amount as a locale-appropriate currency string. Unknown
// currency codes fall back to a plain "12.34 XYZ" rendering; an unparseable
// locale falls back to English.
func Format(amount float64, code, locale string) string {
	unit, err := xcurrency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%.2f %s", amount, code)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	p := message.NewPrinter(tag)
	return p.Sprintf("%v", xcurrency.Symbol(unit.Amount(amount)))
}
