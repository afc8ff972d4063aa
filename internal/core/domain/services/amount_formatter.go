package services

import (
	"dispatchdesk/internal/core/domain/model/kernel"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrencySuffix is appended to the big total and the PDF total line.
const DefaultCurrencySuffix = " сум"

// AmountFormatter renders manifest amounts with the thousands grouping of a
// locale.
type AmountFormatter struct {
	printer *message.Printer
	suffix  string
}

// NewAmountFormatter creates a formatter for the given locale and currency suffix.
func NewAmountFormatter(locale language.Tag, suffix string) AmountFormatter {
	return AmountFormatter{
		printer: message.NewPrinter(locale),
		suffix:  suffix,
	}
}

// DefaultAmountFormatter groups digits the Russian way and uses DefaultCurrencySuffix.
func DefaultAmountFormatter() AmountFormatter {
	return NewAmountFormatter(language.Russian, DefaultCurrencySuffix)
}

// Format returns the grouped amount, e.g. "15,000" for English.
func (f AmountFormatter) Format(a kernel.Amount) string {
	if f.printer == nil {
		return a.String()
	}
	return f.printer.Sprintf("%d", a.Int())
}

// FormatBig returns the grouped amount followed by the currency suffix.
func (f AmountFormatter) FormatBig(a kernel.Amount) string {
	return f.Format(a) + f.suffix
}
