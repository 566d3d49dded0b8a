// Package money formats exact decimal amounts as localized currency strings.
package money

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alnah/go-quotepdf/internal/locale"
	"github.com/shopspring/decimal"
)

// ErrUnsupportedCurrency indicates a currency code with no formatting entry.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// Currency describes how a supported ISO 4217 code is printed.
type Currency struct {
	Code        string
	Symbol      string
	SymbolSpace bool // print a space between symbol and amount
}

var currencies = map[string]Currency{
	"USD": {Code: "USD", Symbol: "$"},
	"BRL": {Code: "BRL", Symbol: "R$", SymbolSpace: true},
	"EUR": {Code: "EUR", Symbol: "€", SymbolSpace: true},
	"GBP": {Code: "GBP", Symbol: "£"},
}

// Lookup resolves an ISO 4217 code, case-insensitively.
func Lookup(code string) (Currency, error) {
	cur, ok := currencies[strings.ToUpper(code)]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}
	return cur, nil
}

// Codes returns the supported currency codes sorted alphabetically, for help
// text and shell completion.
func Codes() []string {
	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Format renders amount with two fraction digits, the currency symbol, and
// the locale's separators. Negative amounts carry the minus sign before the
// symbol. Digits come straight from decimal arithmetic; no float rounding is
// involved.
func Format(amount decimal.Decimal, cur Currency, loc locale.Locale) string {
	s := amount.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString(cur.Symbol)
	if cur.SymbolSpace {
		b.WriteString(" ")
	}
	b.WriteString(group(intPart, loc.GroupSep))
	b.WriteString(loc.DecimalSep)
	b.WriteString(fracPart)
	return b.String()
}

// group inserts sep between thousands groups of digits.
func group(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
