// Package cards provides card-token validation, display formatting and
// the 169-class starting-hand classifier.
package cards

import (
	"fmt"
	"strings"
)

// RankOrder lists ranks from weakest to strongest. Classifier output puts
// the stronger rank first.
const RankOrder = "23456789TJQKA"

var suitSymbols = map[byte]string{
	'h': "♥",
	's': "♠",
	'd': "♦",
	'c': "♣",
}

// Placeholder is shown for hole cards that were never revealed.
const Placeholder = "? ?"

// InvalidCardError reports a malformed card token. It is fatal for the
// specific call only; batch callers skip the offending hand and proceed.
type InvalidCardError struct {
	Card string
}

func (e *InvalidCardError) Error() string {
	return fmt.Sprintf("cards: invalid card %q", e.Card)
}

// Validate checks a two-byte rank+suit token such as "Ah".
func Validate(card string) error {
	if len(card) != 2 {
		return &InvalidCardError{Card: card}
	}
	if !strings.ContainsRune(RankOrder, rune(card[0])) {
		return &InvalidCardError{Card: card}
	}
	if _, ok := suitSymbols[card[1]]; !ok {
		return &InvalidCardError{Card: card}
	}
	return nil
}

// Symbol renders a card token with its suit symbol, e.g. "Ah" -> "A♥".
func Symbol(card string) (string, error) {
	if err := Validate(card); err != nil {
		return "", err
	}
	return string(card[0]) + suitSymbols[card[1]], nil
}

// Format renders a card list for display, e.g. ["Ah","Ks"] -> "A♥ K♠".
func Format(cardList []string) (string, error) {
	parts := make([]string, len(cardList))
	for i, c := range cardList {
		s, err := Symbol(c)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, " "), nil
}

// Split breaks a concatenated card string such as "AcKs" into tokens.
func Split(s string) ([]string, error) {
	if len(s)%2 != 0 {
		return nil, &InvalidCardError{Card: s}
	}
	out := make([]string, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		out = append(out, s[i:i+2])
	}
	return out, nil
}

// Classify canonicalizes two hole cards into their 169-class label:
// ranks in descending order, "s" suffix when suited, "o" when offsuit,
// no suffix for pocket pairs. Order of the inputs does not matter.
func Classify(card1, card2 string) (string, error) {
	if err := Validate(card1); err != nil {
		return "", err
	}
	if err := Validate(card2); err != nil {
		return "", err
	}

	r1, r2 := card1[0], card2[0]
	if strings.IndexByte(RankOrder, r1) < strings.IndexByte(RankOrder, r2) {
		r1, r2 = r2, r1
	}
	class := string(r1) + string(r2)

	switch {
	case card1[1] == card2[1]:
		class += "s"
	case card1[0] != card2[0]:
		class += "o"
	}
	return class, nil
}

// Classes returns all 169 starting-hand labels, pairs down the diagonal,
// suited above and offsuit below, strongest first.
func Classes() []string {
	out := make([]string, 0, 169)
	for i := len(RankOrder) - 1; i >= 0; i-- {
		for j := len(RankOrder) - 1; j >= 0; j-- {
			hi, lo := RankOrder[i], RankOrder[j]
			switch {
			case i == j:
				out = append(out, string(hi)+string(lo))
			case i > j:
				out = append(out, string(hi)+string(lo)+"s")
			default:
				out = append(out, string(lo)+string(hi)+"o")
			}
		}
	}
	return out
}
