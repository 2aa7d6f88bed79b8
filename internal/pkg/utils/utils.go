package utils

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DateLayout = "2006-01-02"

var printer = message.NewPrinter(language.English)

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {
	if durationInMinutes <= 0 {
		return "unknown"
	}

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatPrice formats a whole currency amount with digit grouping.
// Example: (1234.4, "USD") -> "USD 1,234"
func FormatPrice(amount float64, currencyCode string) string {
	if amount <= 0 {
		return "price not available"
	}

	return printer.Sprintf("%s %d", strings.ToUpper(currencyCode), int64(math.Round(amount)))
}

// IsCurrencyCode reports whether code is a recognised ISO 4217 currency.
func IsCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}

	_, err := currency.ParseISO(code)

	return err == nil
}
