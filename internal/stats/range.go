package stats

import "github.com/Andres-Briones/OpenPokerTracker/internal/cards"

// classCount tracks one starting-hand class for one player.
type classCount struct {
	Seen int
	VPIP int
}

// RangeMatrix accumulates per-class VPIP observations for a single
// player, for heat-map style range reporting.
type RangeMatrix struct {
	player  string
	classes map[string]*classCount
}

// NewRangeMatrix creates a matrix tracking the named player.
func NewRangeMatrix(player string) *RangeMatrix {
	return &RangeMatrix{player: player, classes: make(map[string]*classCount)}
}

// Player returns the tracked player's name.
func (m *RangeMatrix) Player() string { return m.player }

// Add records the tracked player's hand when their hole cards are known.
// Hands without revealed cards contribute nothing.
func (m *RangeMatrix) Add(hs *HandStats) {
	if hs == nil {
		return
	}
	ps, ok := hs.Players[m.player]
	if !ok || ps.Class == "" || !ps.Participated {
		return
	}
	cc := m.classes[ps.Class]
	if cc == nil {
		cc = &classCount{}
		m.classes[ps.Class] = cc
	}
	cc.Seen++
	if ps.VPIP {
		cc.VPIP++
	}
}

// Merge folds another matrix for the same player into this one.
func (m *RangeMatrix) Merge(other *RangeMatrix) {
	for class, o := range other.classes {
		cc := m.classes[class]
		if cc == nil {
			cc = &classCount{}
			m.classes[class] = cc
		}
		cc.Seen += o.Seen
		cc.VPIP += o.VPIP
	}
}

// VPIPByClass returns the observed VPIP rate for every one of the 169
// starting-hand classes. Unobserved classes report 0.
func (m *RangeMatrix) VPIPByClass() map[string]float64 {
	out := make(map[string]float64, 169)
	for _, class := range cards.Classes() {
		out[class] = 0
		if cc := m.classes[class]; cc != nil && cc.Seen > 0 {
			out[class] = float64(cc.VPIP) / float64(cc.Seen) * 100
		}
	}
	return out
}

// Observed returns how many hands were seen for a class.
func (m *RangeMatrix) Observed(class string) int {
	if cc := m.classes[class]; cc != nil {
		return cc.Seen
	}
	return 0
}
