// Package format renders amounts and durations for display.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/abrezinsky/arena/internal/status"
)

// Placeholder is rendered for values that cannot be displayed
const Placeholder = "-"

// Digits stay Latin in every locale, so grouping always uses the English printer.
var grouping = message.NewPrinter(language.English)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// Money rounds value to the nearest whole unit (halves round up), groups
// thousands with commas and appends the currency code when one is given.
// NaN and infinities render as Placeholder.
func Money(value float64, currency string) string {
	if !finite(value) {
		return Placeholder
	}
	grouped := grouping.Sprintf("%.0f", roundHalfUp(value))
	if currency == "" {
		return grouped
	}
	return grouped + " " + currency
}

// Currency formats a whole-unit amount the way a currency-style locale
// formatter would: known symbols are prefixed for English, everything else
// falls back to Money with the code appended.
func Currency(amount float64, lang string, code string) string {
	if !finite(amount) {
		return Placeholder
	}
	sym, ok := currencySymbols[strings.ToUpper(code)]
	if !ok || lang != "en" {
		return Money(amount, strings.ToUpper(code))
	}
	rounded := roundHalfUp(amount)
	if rounded < 0 {
		return "-" + sym + grouping.Sprintf("%.0f", -rounded)
	}
	return sym + grouping.Sprintf("%.0f", rounded)
}

// Fixed renders value with exactly two decimals and no grouping
func Fixed(value float64) string {
	if !finite(value) {
		return Placeholder
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// Percent renders v followed by a percent sign
func Percent(v float64) string {
	if !finite(v) {
		return Placeholder
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// Pad2 zero-pads n to at least two digits
func Pad2(n int64) string {
	if n < 0 {
		return "-" + Pad2(-n)
	}
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

// Countdown renders parts as "DDd:HHh:MMm:SSs"
func Countdown(p status.Parts) string {
	return fmt.Sprintf("%sd:%sh:%sm:%ss", Pad2(p.Days), Pad2(p.Hours), Pad2(p.Minutes), Pad2(p.Seconds))
}

// CompactCountdown renders a short timer: "5h 12m" while hours remain,
// "12m 3s" under an hour, "3s" under a minute and startedLabel once the
// duration has run out. Hours are not folded into days.
func CompactCountdown(d time.Duration, startedLabel string) string {
	if d <= 0 {
		return startedLabel
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	switch {
	case hours == 0 && minutes == 0:
		return fmt.Sprintf("%ds", seconds)
	case hours == 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
}

// Relative renders t relative to now ("2 days ago", "3 hours from now")
func Relative(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v+0.5) + 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
