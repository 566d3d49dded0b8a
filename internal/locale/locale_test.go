package locale

import (
	"errors"
	"testing"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tag     string
		wantTag string
		wantErr error
	}{
		// Exact matches
		{
			name:    "en-US exact",
			tag:     "en-US",
			wantTag: "en-US",
		},
		{
			name:    "pt-BR exact",
			tag:     "pt-BR",
			wantTag: "pt-BR",
		},
		{
			name:    "de-DE exact",
			tag:     "de-DE",
			wantTag: "de-DE",
		},

		// Inexact matches snap to the closest supported locale
		{
			name:    "bare language pt snaps to pt-BR",
			tag:     "pt",
			wantTag: "pt-BR",
		},
		{
			name:    "bare language de snaps to de-DE",
			tag:     "de",
			wantTag: "de-DE",
		},
		{
			name:    "lowercase region is canonicalized",
			tag:     "pt-br",
			wantTag: "pt-BR",
		},

		// Fallback and errors
		{
			name:    "empty tag resolves to default",
			tag:     "",
			wantTag: "en-US",
		},
		{
			name:    "unsupported language errors",
			tag:     "ja-JP",
			wantErr: ErrUnsupportedLocale,
		},
		{
			name:    "malformed tag errors",
			tag:     "not a tag!!!",
			wantErr: ErrUnsupportedLocale,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Match(tt.tag)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Match(%q) error = %v, want %v", tt.tag, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Match(%q) unexpected error: %v", tt.tag, err)
			}
			if got.Tag.String() != tt.wantTag {
				t.Errorf("Match(%q) = %v, want %v", tt.tag, got.Tag, tt.wantTag)
			}
			if got.DateLayout == "" {
				t.Errorf("Match(%q) returned empty date layout", tt.tag)
			}
			if got.DecimalSep == "" {
				t.Errorf("Match(%q) returned empty decimal separator", tt.tag)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	def := Default()
	if def.Tag.String() != "en-US" {
		t.Errorf("Default() = %v, want en-US", def.Tag)
	}
	if def.DateLayout != "1/2/2006" {
		t.Errorf("Default() date layout = %q, want %q", def.DateLayout, "1/2/2006")
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	names := Names()
	if len(names) != len(supported) {
		t.Fatalf("Names() returned %d entries, want %d", len(names), len(supported))
	}
	if names[0] != "en-US" {
		t.Errorf("Names()[0] = %q, want %q", names[0], "en-US")
	}
	for _, name := range names {
		if _, err := Match(name); err != nil {
			t.Errorf("Match(%q) failed for a supported locale: %v", name, err)
		}
	}
}
