// Package stats extracts per-player statistics from normalized hands and
// folds them into per-player rate aggregates.
package stats

import (
	"errors"
	"time"

	"github.com/Andres-Briones/OpenPokerTracker/internal/cards"
	"github.com/Andres-Briones/OpenPokerTracker/internal/ohh"
	"github.com/Andres-Briones/OpenPokerTracker/internal/position"
)

// ErrAnonymousHand signals a hand whose per-player financial detail is
// unusable. It is a skip signal, not a failure: batch callers exclude the
// hand from aggregates instead of partially counting it.
var ErrAnonymousHand = errors.New("stats: anonymous hand carries no usable statistics")

// PlayerHandStats is one player's statistics for a single hand.
type PlayerHandStats struct {
	Seat          int
	Position      int
	PositionLabel string

	Cards string // formatted hole cards if revealed, else empty
	Class string // 169-class label if exactly two cards were revealed

	Profit float64 // final stack minus starting stack; 0 when final stack is unrecorded

	Participated bool
	VPIP         bool
	PFR          bool
	Limp         bool

	TwoBet              bool
	ThreeBet            bool
	TwoBetOpportunity   bool
	ThreeBetOpportunity bool

	FoldToRaise bool
	CallToRaise bool

	AttemptedSteal   bool
	StealOpportunity bool

	Aggressive int // postflop bets and raises
	Passive    int // postflop calls
}

// HandStats is the statistics output for one hand, keyed by player name.
type HandStats struct {
	GameID        string
	Timestamp     time.Time
	TableName     string
	BigBlind      float64
	NumberPlayers int
	Players       map[string]*PlayerHandStats
}

// Compute derives per-player statistics for a single hand in one pass
// over its rounds. Anonymous hands yield ErrAnonymousHand.
func Compute(h *ohh.Hand) (*HandStats, error) {
	if h.Anonymous() {
		return nil, ErrAnonymousHand
	}

	positions, err := position.BySeat(h.DealerSeat, h.TableSize, h.Seats())
	if err != nil {
		return nil, err
	}

	// One zeroed record per seated player, created up front so a player
	// who never acts postflop still has a complete all-zero record.
	byID := make(map[int]*PlayerHandStats, len(h.Players))
	out := &HandStats{
		GameID:        h.GameNumber,
		Timestamp:     h.StartDateUTC,
		TableName:     h.TableName,
		BigBlind:      h.BigBlind,
		NumberPlayers: len(h.Players),
		Players:       make(map[string]*PlayerHandStats, len(h.Players)),
	}
	for _, p := range h.Players {
		pos := positions[p.Seat]
		ps := &PlayerHandStats{
			Seat:          p.Seat,
			Position:      pos.Index,
			PositionLabel: pos.Label,
		}
		if p.FinalStack != nil {
			ps.Profit = *p.FinalStack - p.StartingStack
		}
		byID[p.ID] = ps
		out.Players[p.Name] = ps
	}

	holeCards := make(map[int][]string)
	raises := 0
	entered := false

	for _, round := range h.Rounds {
		for _, action := range round.Actions {
			ps, ok := byID[action.PlayerID]
			if !ok {
				return nil, &ohh.UnknownPlayerError{GameID: h.GameNumber, PlayerID: action.PlayerID}
			}
			ps.Participated = true

			if action.Kind.RevealsCards() && len(action.Cards) > 0 {
				holeCards[action.PlayerID] = action.Cards
			}

			switch {
			case round.Street == ohh.StreetPreflop:
				applyPreflop(ps, positions[ps.Seat], action.Kind, &raises, &entered)
			case round.Street.Postflop():
				switch action.Kind {
				case ohh.ActionBet, ohh.ActionRaise:
					ps.Aggressive++
				case ohh.ActionCall:
					ps.Passive++
				}
			}
		}
	}

	for id, cc := range holeCards {
		ps := byID[id]
		formatted, err := cards.Format(cc)
		if err != nil {
			return nil, err
		}
		ps.Cards = formatted
		if len(cc) == 2 {
			class, err := cards.Classify(cc[0], cc[1])
			if err != nil {
				return nil, err
			}
			ps.Class = class
		}
	}

	clearWalkedBigBlind(out)
	return out, nil
}

// applyPreflop updates voluntary-action flags for one preflop action,
// threading the running raise count and whether anyone has voluntarily
// entered the pot. The opening raise is the 2-bet; the raise after it is
// the 3-bet. Steal flags require the seat to be first in: a raise over a
// limper is an isolation raise, not a steal.
func applyPreflop(ps *PlayerHandStats, pos position.Position, kind ohh.ActionKind, raises *int, entered *bool) {
	switch kind {
	case ohh.ActionCall, ohh.ActionRaise, ohh.ActionFold, ohh.ActionCheck:
	default:
		return // blind posts and card events are not decisions
	}

	switch *raises {
	case 0:
		ps.TwoBetOpportunity = true
		if kind == ohh.ActionRaise {
			ps.TwoBet = true
		}
		if kind == ohh.ActionCall {
			ps.Limp = true
		}
		if pos.IsSteal() && !*entered {
			ps.StealOpportunity = true
			if kind == ohh.ActionRaise {
				ps.AttemptedSteal = true
			}
		}
	case 1:
		ps.ThreeBetOpportunity = true
		if kind == ohh.ActionRaise {
			ps.ThreeBet = true
		}
	}

	if *raises >= 1 {
		switch kind {
		case ohh.ActionCall:
			ps.CallToRaise = true
		case ohh.ActionFold:
			ps.FoldToRaise = true
		}
	}

	switch kind {
	case ohh.ActionCall:
		ps.VPIP = true
		*entered = true
	case ohh.ActionRaise:
		ps.VPIP = true
		ps.PFR = true
		*raises++
		*entered = true
	}
}

// clearWalkedBigBlind drops the big blind's participation when nobody
// voluntarily entered the pot: the blind made no decision, so the hand
// must not count toward their hands-played denominator.
func clearWalkedBigBlind(hs *HandStats) {
	for _, ps := range hs.Players {
		if ps.VPIP {
			return
		}
	}
	for _, ps := range hs.Players {
		if ps.PositionLabel == "BB" {
			ps.Participated = false
		}
	}
}
