package money

import (
	"errors"
	"testing"

	"github.com/alnah/go-quotepdf/internal/locale"
	"github.com/shopspring/decimal"
)

func mustLocale(t *testing.T, tag string) locale.Locale {
	t.Helper()
	loc, err := locale.Match(tag)
	if err != nil {
		t.Fatalf("locale.Match(%q): %v", tag, err)
	}
	return loc
}

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     string
		wantCode string
		wantErr  error
	}{
		{name: "USD", code: "USD", wantCode: "USD"},
		{name: "lowercase code is accepted", code: "brl", wantCode: "BRL"},
		{name: "mixed case code is accepted", code: "Eur", wantCode: "EUR"},
		{name: "unknown code errors", code: "XYZ", wantErr: ErrUnsupportedCurrency},
		{name: "empty code errors", code: "", wantErr: ErrUnsupportedCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Lookup(tt.code)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Lookup(%q) error = %v, want %v", tt.code, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) unexpected error: %v", tt.code, err)
			}
			if got.Code != tt.wantCode {
				t.Errorf("Lookup(%q).Code = %q, want %q", tt.code, got.Code, tt.wantCode)
			}
			if got.Symbol == "" {
				t.Errorf("Lookup(%q) returned empty symbol", tt.code)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   decimal.Decimal
		currency string
		locale   string
		want     string
	}{
		// US dollar, en-US conventions
		{
			name:     "small USD amount",
			amount:   decimal.NewFromFloat(8.5),
			currency: "USD",
			locale:   "en-US",
			want:     "$8.50",
		},
		{
			name:     "USD with thousands grouping",
			amount:   decimal.NewFromFloat(1234.5),
			currency: "USD",
			locale:   "en-US",
			want:     "$1,234.50",
		},
		{
			name:     "USD in the millions",
			amount:   decimal.NewFromInt(1234567),
			currency: "USD",
			locale:   "en-US",
			want:     "$1,234,567.00",
		},
		{
			name:     "zero USD",
			amount:   decimal.Zero,
			currency: "USD",
			locale:   "en-US",
			want:     "$0.00",
		},
		{
			name:     "negative USD carries minus before symbol",
			amount:   decimal.NewFromFloat(-42.1),
			currency: "USD",
			locale:   "en-US",
			want:     "-$42.10",
		},

		// Brazilian real, pt-BR conventions
		{
			name:     "BRL swaps separators and spaces the symbol",
			amount:   decimal.NewFromFloat(1234.56),
			currency: "BRL",
			locale:   "pt-BR",
			want:     "R$ 1.234,56",
		},
		{
			name:     "small BRL amount has no grouping",
			amount:   decimal.NewFromFloat(999.99),
			currency: "BRL",
			locale:   "pt-BR",
			want:     "R$ 999,99",
		},

		// Euro and pound
		{
			name:     "EUR with de-DE separators",
			amount:   decimal.NewFromFloat(10000),
			currency: "EUR",
			locale:   "de-DE",
			want:     "€ 10.000,00",
		},
		{
			name:     "GBP with en-GB separators",
			amount:   decimal.NewFromFloat(2500.25),
			currency: "GBP",
			locale:   "en-GB",
			want:     "£2,500.25",
		},

		// Exactness: amounts that round badly in binary floats
		{
			name:     "tenths stay exact",
			amount:   decimal.NewFromFloat(0.1).Add(decimal.NewFromFloat(0.2)),
			currency: "USD",
			locale:   "en-US",
			want:     "$0.30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cur, err := Lookup(tt.currency)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.currency, err)
			}
			loc := mustLocale(t, tt.locale)

			got := Format(tt.amount, cur, loc)
			if got != tt.want {
				t.Errorf("Format(%s, %s, %s) = %q, want %q",
					tt.amount, tt.currency, tt.locale, got, tt.want)
			}
		})
	}
}

func TestGroup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		digits string
		sep    string
		want   string
	}{
		{name: "one digit", digits: "1", sep: ",", want: "1"},
		{name: "three digits", digits: "123", sep: ",", want: "123"},
		{name: "four digits", digits: "1234", sep: ",", want: "1,234"},
		{name: "six digits", digits: "123456", sep: ",", want: "123,456"},
		{name: "seven digits", digits: "1234567", sep: ",", want: "1,234,567"},
		{name: "empty separator disables grouping", digits: "1234567", sep: "", want: "1234567"},
		{name: "dot separator", digits: "1234567", sep: ".", want: "1.234.567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := group(tt.digits, tt.sep); got != tt.want {
				t.Errorf("group(%q, %q) = %q, want %q", tt.digits, tt.sep, got, tt.want)
			}
		})
	}
}

func TestCodes(t *testing.T) {
	t.Parallel()

	codes := Codes()
	if len(codes) != len(currencies) {
		t.Fatalf("Codes() returned %d entries, want %d", len(codes), len(currencies))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Errorf("Codes() not sorted: %q before %q", codes[i-1], codes[i])
		}
	}
	for _, code := range codes {
		if _, err := Lookup(code); err != nil {
			t.Errorf("Lookup(%q) failed for a supported code: %v", code, err)
		}
	}
}
