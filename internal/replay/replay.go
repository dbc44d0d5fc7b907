// Package replay deterministically reconstructs table state from a
// normalized hand, one snapshot per recorded action.
package replay

import (
	"strconv"

	"github.com/Andres-Briones/OpenPokerTracker/internal/cards"
	"github.com/Andres-Briones/OpenPokerTracker/internal/ohh"
)

// Player statuses beyond the action-kind strings.
const (
	StatusActive  = "Active"
	StatusWaiting = "Waiting"
	StatusFolded  = "Folded"
)

// PlayerState is one player's state within a frame.
type PlayerState struct {
	Name   string
	Seat   int
	Status string
	Bet    float64 // chips committed this street
	Chips  float64 // remaining stack
	Cards  string  // formatted hole cards, or the "? ?" placeholder
}

// Frame is a complete snapshot of the table after one action.
type Frame struct {
	Street      ohh.Street
	Pot         float64
	Board       []string
	Players     []PlayerState
	Description string
}

// tableState is the mutable accumulator threaded through the replay loop.
type tableState struct {
	hand    *ohh.Hand
	pot     float64
	board   []string
	street  ohh.Street
	players []PlayerState
	byID    map[int]*PlayerState
	folded  map[int]bool
}

// Frames replays the hand's actions in order and returns one frame per
// action. The final frame reflects the last recorded action; no
// artificial end-of-hand frame is appended.
func Frames(h *ohh.Hand) ([]Frame, error) {
	st := &tableState{
		hand:    h,
		players: make([]PlayerState, len(h.Players)),
		byID:    make(map[int]*PlayerState, len(h.Players)),
		folded:  make(map[int]bool),
	}
	for i, p := range h.Players {
		st.players[i] = PlayerState{
			Name:   p.Name,
			Seat:   p.Seat,
			Status: StatusActive,
			Chips:  p.StartingStack,
			Cards:  cards.Placeholder,
		}
		st.byID[p.ID] = &st.players[i]
	}

	frames := make([]Frame, 0, h.ActionCount())
	for _, round := range h.Rounds {
		st.enterStreet(round)
		for _, action := range round.Actions {
			frame, err := st.apply(action)
			if err != nil {
				return nil, err
			}
			frames = append(frames, frame)
		}
	}
	return frames, nil
}

// enterStreet resets per-street bets, moves non-folded players back to
// Waiting and appends the street's community cards to the board.
func (st *tableState) enterStreet(round ohh.Round) {
	st.street = round.Street
	for i := range st.players {
		st.players[i].Bet = 0
		if st.folded[st.hand.Players[i].ID] {
			st.players[i].Status = StatusFolded
		} else {
			st.players[i].Status = StatusWaiting
		}
	}
	st.board = append(st.board, round.Cards...)
}

func (st *tableState) apply(action ohh.Action) (Frame, error) {
	actor, ok := st.byID[action.PlayerID]
	if !ok {
		return Frame{}, &ohh.UnknownPlayerError{GameID: st.hand.GameNumber, PlayerID: action.PlayerID}
	}

	switch action.Kind {
	case ohh.ActionFold:
		actor.Status = StatusFolded
		st.folded[action.PlayerID] = true
	case ohh.ActionDealtCards, ohh.ActionShowsCards:
		formatted, err := cards.Format(action.Cards)
		if err != nil {
			return Frame{}, err
		}
		actor.Cards = formatted
		actor.Status = string(action.Kind)
	default:
		actor.Bet += action.Amount
		actor.Chips -= action.Amount
		st.pot += action.Amount
		actor.Status = string(action.Kind)
	}

	return st.snapshot(describe(actor.Name, action)), nil
}

func (st *tableState) snapshot(description string) Frame {
	frame := Frame{
		Street:      st.street,
		Pot:         st.pot,
		Board:       append([]string(nil), st.board...),
		Players:     append([]PlayerState(nil), st.players...),
		Description: description,
	}
	return frame
}

// describe renders "{player}: {action}" with the amount appended when
// nonzero.
func describe(name string, action ohh.Action) string {
	if action.Amount == 0 {
		return name + ": " + string(action.Kind)
	}
	return name + ": " + string(action.Kind) + " for " + formatAmount(action.Amount)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
