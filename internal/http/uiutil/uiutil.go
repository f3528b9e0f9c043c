// Package uiutil holds locale-aware formatting shared by templates and handlers.
package uiutil

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DateTimeLayout is the display format for transaction timestamps.
const DateTimeLayout = "02 Jan 2006 15:04"

// CurrencySymbol prefixes every money amount.
const CurrencySymbol = "₺"

//nolint:gochecknoglobals // printers are safe for concurrent use and costly to build
var trPrinter = message.NewPrinter(language.Turkish)

// FormatMoney renders v in the tr-TR locale with two fraction digits,
// e.g. 1234.5 becomes "₺1.234,50".
func FormatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return CurrencySymbol + "0,00"
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + CurrencySymbol + trPrinter.Sprint(number.Decimal(v, number.Scale(2)))
}

// FormatCount renders an integer with tr-TR thousands separators.
func FormatCount(n int) string {
	return trPrinter.Sprint(number.Decimal(n))
}

// FormatDateTime renders t in local time using DateTimeLayout.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(DateTimeLayout)
}

// Average divides total by count, returning 0 when count is not positive.
func Average(total float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	return total / float64(count)
}

// BarWidth returns v as a percentage of maxVal in [0, 100], used for CSS bar charts.
func BarWidth(v, maxVal float64) float64 {
	if maxVal <= 0 || v <= 0 {
		return 0
	}
	w := v / maxVal * 100
	if w > 100 {
		return 100
	}
	return math.Round(w*10) / 10
}

// SharePercent returns part/whole rounded to a whole percent, 0 when whole is not positive.
func SharePercent(part, whole float64) int {
	if whole <= 0 || part <= 0 {
		return 0
	}
	return int(math.Round(part / whole * 100))
}

// DashIfEmpty returns "-" for blank strings.
func DashIfEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
