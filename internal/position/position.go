// Package position maps seat numbers to dealer-relative table positions.
package position

import (
	"fmt"
	"sort"
)

// MaxParticipants bounds the label tables. Wider tables fail loudly
// instead of guessing a label.
const MaxParticipants = 6

// labelsByCount maps participant counts to position labels, indexed by
// relative position (0 = first to act after the button).
var labelsByCount = map[int][]string{
	2: {"SB", "BB"},
	3: {"SB", "BB", "BU"},
	4: {"SB", "BB", "MP", "BU"},
	5: {"SB", "BB", "MP", "CO", "BU"},
	6: {"SB", "BB", "MP", "HJ", "CO", "BU"},
}

// Position is one participating seat's resolved table position.
type Position struct {
	Seat  int
	Index int // 0 = small blind, increasing clockwise to the button
	Label string
}

// Resolve assigns each participating seat a dense relative position given
// the dealer seat. Seats are ranked by (seat-dealer-1) mod tableSize, which
// compresses positions correctly when some seats are empty.
func Resolve(dealerSeat, tableSize int, seats []int) ([]Position, error) {
	n := len(seats)
	if n < 2 {
		return nil, fmt.Errorf("position: need at least 2 participants, got %d", n)
	}
	if n > MaxParticipants {
		return nil, fmt.Errorf("position: %d participants exceeds supported maximum of %d", n, MaxParticipants)
	}
	if tableSize < n {
		return nil, fmt.Errorf("position: table size %d smaller than %d participants", tableSize, n)
	}

	ranked := make([]int, n)
	copy(ranked, seats)
	sort.Slice(ranked, func(i, j int) bool {
		return clockwiseDistance(ranked[i], dealerSeat, tableSize) < clockwiseDistance(ranked[j], dealerSeat, tableSize)
	})
	// Heads up the dealer posts the small blind.
	if n == 2 {
		ranked[0], ranked[1] = ranked[1], ranked[0]
	}

	labels := labelsByCount[n]
	out := make([]Position, n)
	for i, seat := range ranked {
		out[i] = Position{Seat: seat, Index: i, Label: labels[i]}
	}
	return out, nil
}

// BySeat resolves positions and indexes them by seat number.
func BySeat(dealerSeat, tableSize int, seats []int) (map[int]Position, error) {
	positions, err := Resolve(dealerSeat, tableSize, seats)
	if err != nil {
		return nil, err
	}
	out := make(map[int]Position, len(positions))
	for _, p := range positions {
		out[p.Seat] = p
	}
	return out, nil
}

// Label returns the canonical label for a relative position among n
// participants.
func Label(index, n int) (string, error) {
	labels, ok := labelsByCount[n]
	if !ok {
		return "", fmt.Errorf("position: no label table for %d participants", n)
	}
	if index < 0 || index >= n {
		return "", fmt.Errorf("position: index %d out of range for %d participants", index, n)
	}
	return labels[index], nil
}

// IsSteal reports whether the position is one a first-in raise counts as
// a steal attempt from: cutoff or button.
func (p Position) IsSteal() bool {
	return p.Label == "CO" || p.Label == "BU"
}

// clockwiseDistance is the number of seats between the dealer and the
// given seat going clockwise, with the small blind at distance 0.
func clockwiseDistance(seat, dealerSeat, tableSize int) int {
	return ((seat - dealerSeat - 1) % tableSize + tableSize) % tableSize
}
