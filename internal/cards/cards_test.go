package cards

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		card1 string
		card2 string
		want  string
	}{
		{"suited", "Ah", "Kh", "AKs"},
		{"offsuit", "Ah", "Ks", "AKo"},
		{"pair", "Ah", "Ad", "AA"},
		{"order independent", "Kh", "Ah", "AKs"},
		{"low ranks", "2c", "7d", "72o"},
		{"ten notation", "Th", "9h", "T9s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.card1, tt.card2)
			if err != nil {
				t.Fatalf("Classify(%q, %q) error: %v", tt.card1, tt.card2, err)
			}
			if got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.card1, tt.card2, got, tt.want)
			}
		})
	}
}

func TestClassifyInvalidCard(t *testing.T) {
	t.Parallel()
	for _, bad := range []string{"", "A", "Ahh", "Xh", "Az", "1h"} {
		_, err := Classify(bad, "Kh")
		var invalid *InvalidCardError
		if !errors.As(err, &invalid) {
			t.Errorf("Classify(%q, Kh) error = %v, want InvalidCardError", bad, err)
		}
	}
}

func TestSymbol(t *testing.T) {
	t.Parallel()
	tests := []struct {
		card string
		want string
	}{
		{"Ah", "A♥"},
		{"Ks", "K♠"},
		{"Td", "T♦"},
		{"2c", "2♣"},
	}
	for _, tt := range tests {
		got, err := Symbol(tt.card)
		if err != nil {
			t.Fatalf("Symbol(%q) error: %v", tt.card, err)
		}
		if got != tt.want {
			t.Errorf("Symbol(%q) = %q, want %q", tt.card, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()
	got, err := Format([]string{"Ah", "Ks"})
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if got != "A♥ K♠" {
		t.Errorf("Format = %q, want %q", got, "A♥ K♠")
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()
	got, err := Split("AcKs")
	if err != nil {
		t.Fatalf("Split error: %v", err)
	}
	if len(got) != 2 || got[0] != "Ac" || got[1] != "Ks" {
		t.Errorf("Split = %v, want [Ac Ks]", got)
	}

	if _, err := Split("AcK"); err == nil {
		t.Error("Split on odd-length string should fail")
	}
}

func TestClassesCovers169(t *testing.T) {
	t.Parallel()
	classes := Classes()
	if len(classes) != 169 {
		t.Fatalf("expected 169 classes, got %d", len(classes))
	}
	seen := make(map[string]bool, len(classes))
	pairs, suited, offsuit := 0, 0, 0
	for _, class := range classes {
		if seen[class] {
			t.Fatalf("duplicate class %q", class)
		}
		seen[class] = true
		switch {
		case len(class) == 2:
			pairs++
		case class[2] == 's':
			suited++
		default:
			offsuit++
		}
	}
	if pairs != 13 || suited != 78 || offsuit != 78 {
		t.Errorf("got %d pairs, %d suited, %d offsuit; want 13/78/78", pairs, suited, offsuit)
	}
}
