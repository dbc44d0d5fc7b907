// Package phh exports normalized hands as Poker Hand History (PHH) TOML
// records so tracked hands interoperate with PHH tooling.
package phh

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Andres-Briones/OpenPokerTracker/internal/ohh"
)

const defaultVariant = "NT"

// HandHistory is one hand in PHH form.
type HandHistory struct {
	Variant           string   `toml:"variant"`
	Table             string   `toml:"table,omitempty"`
	SeatCount         int      `toml:"seat_count,omitempty"`
	Seats             []int    `toml:"seats,omitempty"`
	Antes             []int    `toml:"antes"`
	BlindsOrStraddles []int    `toml:"blinds_or_straddles"`
	MinBet            int      `toml:"min_bet"`
	StartingStacks    []int    `toml:"starting_stacks"`
	FinishingStacks   []int    `toml:"finishing_stacks,omitempty"`
	Winnings          []int    `toml:"winnings,omitempty"`
	Actions           []string `toml:"actions"`
	Players           []string `toml:"players,omitempty"`
	HandID            string   `toml:"hand"`
	Time              string   `toml:"time,omitempty"`
	Day               int      `toml:"day,omitempty"`
	Month             int      `toml:"month,omitempty"`
	Year              int      `toml:"year,omitempty"`
}

// Convert translates a normalized hand into PHH form. PHH indexes players
// in seat order as p1..pN and records bets as cumulative street totals.
// Monetary values are integers; fractional-stake hands are scaled to
// cents so 0.5/1 blinds export as 50/100 instead of truncating to zero.
func Convert(h *ohh.Hand) (*HandHistory, error) {
	players := make([]ohh.Player, len(h.Players))
	copy(players, h.Players)
	sort.Slice(players, func(i, j int) bool { return players[i].Seat < players[j].Seat })

	idxByID := make(map[int]int, len(players))
	for i, p := range players {
		idxByID[p.ID] = i
	}

	scale := monetaryScale(h)
	out := &HandHistory{
		Variant:   defaultVariant,
		Table:     h.TableName,
		SeatCount: h.TableSize,
		HandID:    h.GameNumber,
		MinBet:    scaled(h.BigBlind, scale),
	}
	if !h.StartDateUTC.IsZero() {
		out.Time = h.StartDateUTC.Format("15:04:05")
		out.Year = h.StartDateUTC.Year()
		out.Month = int(h.StartDateUTC.Month())
		out.Day = h.StartDateUTC.Day()
	}

	out.Antes = make([]int, len(players))
	out.BlindsOrStraddles = make([]int, len(players))
	out.StartingStacks = make([]int, len(players))
	out.Players = make([]string, len(players))
	out.Seats = make([]int, len(players))
	finishing := make([]int, len(players))
	haveFinishing := true
	for i, p := range players {
		out.StartingStacks[i] = scaled(p.StartingStack, scale)
		out.Players[i] = p.Name
		out.Seats[i] = p.Seat
		if p.FinalStack != nil {
			finishing[i] = scaled(*p.FinalStack, scale)
		} else {
			haveFinishing = false
		}
	}
	if haveFinishing {
		out.FinishingStacks = finishing
	}

	if len(h.Pots) > 0 {
		out.Winnings = make([]int, len(players))
		for _, pot := range h.Pots {
			for _, win := range pot.Wins {
				idx, ok := idxByID[win.PlayerID]
				if !ok {
					return nil, &ohh.UnknownPlayerError{GameID: h.GameNumber, PlayerID: win.PlayerID}
				}
				out.Winnings[idx] += scaled(win.Amount, scale)
			}
		}
	}

	streetBets := make([]int, len(players))
	for _, round := range h.Rounds {
		if round.Street != ohh.StreetPreflop && len(round.Cards) > 0 {
			out.Actions = append(out.Actions, "d db "+strings.Join(round.Cards, ""))
			for i := range streetBets {
				streetBets[i] = 0
			}
		}
		for _, action := range round.Actions {
			idx, ok := idxByID[action.PlayerID]
			if !ok {
				return nil, &ohh.UnknownPlayerError{GameID: h.GameNumber, PlayerID: action.PlayerID}
			}
			switch action.Kind {
			case ohh.ActionPostAnte:
				out.Antes[idx] += scaled(action.Amount, scale)
			case ohh.ActionPostSB, ohh.ActionPostBB, ohh.ActionStraddle,
				ohh.ActionPostDead, ohh.ActionPostExtraBlind:
				out.BlindsOrStraddles[idx] += scaled(action.Amount, scale)
				streetBets[idx] += scaled(action.Amount, scale)
			default:
				if line, emit := formatAction(idx, action, scaled(action.Amount, scale), streetBets); emit {
					out.Actions = append(out.Actions, line)
				}
			}
		}
	}

	return out, nil
}

// formatAction converts one OHH action to a PHH action string, tracking
// cumulative street totals for the cbr notation. amount is already scaled.
func formatAction(idx int, action ohh.Action, amount int, streetBets []int) (string, bool) {
	player := fmt.Sprintf("p%d", idx+1)
	switch action.Kind {
	case ohh.ActionFold:
		return player + " f", true
	case ohh.ActionCheck, ohh.ActionCall:
		streetBets[idx] += amount
		return player + " cc", true
	case ohh.ActionBet, ohh.ActionRaise:
		streetBets[idx] += amount
		return fmt.Sprintf("%s cbr %d", player, streetBets[idx]), true
	case ohh.ActionDealtCards:
		return fmt.Sprintf("d dh %s %s", player, strings.Join(action.Cards, "")), true
	case ohh.ActionShowsCards:
		return fmt.Sprintf("%s sm %s", player, strings.Join(action.Cards, "")), true
	case ohh.ActionMucksCards:
		return player + " sm", true
	default:
		return "", false
	}
}

// monetaryScale returns 100 when any monetary value in the hand is
// fractional, 1 otherwise.
func monetaryScale(h *ohh.Hand) int {
	if !whole(h.SmallBlind) || !whole(h.BigBlind) || !whole(h.Ante) {
		return 100
	}
	for _, p := range h.Players {
		if !whole(p.StartingStack) {
			return 100
		}
		if p.FinalStack != nil && !whole(*p.FinalStack) {
			return 100
		}
	}
	for _, round := range h.Rounds {
		for _, a := range round.Actions {
			if !whole(a.Amount) {
				return 100
			}
		}
	}
	for _, pot := range h.Pots {
		if !whole(pot.Amount) || !whole(pot.Rake) {
			return 100
		}
		for _, w := range pot.Wins {
			if !whole(w.Amount) {
				return 100
			}
		}
	}
	return 1
}

func whole(v float64) bool {
	return v == math.Trunc(v)
}

func scaled(v float64, scale int) int {
	return int(math.Round(v * float64(scale)))
}

// Encode writes hands as a sectioned PHH session file ([1], [2], ...).
func Encode(w io.Writer, hands []*HandHistory) error {
	for i, hand := range hands {
		if _, err := fmt.Fprintf(w, "[%d]\n", i+1); err != nil {
			return err
		}
		enc := toml.NewEncoder(w)
		enc.Indent = "\t"
		if err := enc.Encode(hand); err != nil {
			return fmt.Errorf("phh: encoding hand %s: %w", hand.HandID, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
