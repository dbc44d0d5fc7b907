// Package ohh parses Open Hand History JSON records into an immutable
// in-memory hand model shared by the replay and statistics engines.
package ohh

import "time"

// Street identifies one betting round.
type Street string

const (
	StreetPreflop  Street = "Preflop"
	StreetFlop     Street = "Flop"
	StreetTurn     Street = "Turn"
	StreetRiver    Street = "River"
	StreetShowdown Street = "Showdown"
)

// streetOrder gives the required relative ordering of rounds within a hand.
var streetOrder = map[Street]int{
	StreetPreflop:  0,
	StreetFlop:     1,
	StreetTurn:     2,
	StreetRiver:    3,
	StreetShowdown: 4,
}

// Valid reports whether the street is one of the enumerated values.
func (s Street) Valid() bool {
	_, ok := streetOrder[s]
	return ok
}

// Postflop reports whether the street is Flop, Turn or River.
func (s Street) Postflop() bool {
	return s == StreetFlop || s == StreetTurn || s == StreetRiver
}

// ActionKind identifies one discrete event within a round.
type ActionKind string

const (
	ActionDealtCards     ActionKind = "Dealt Cards"
	ActionMucksCards     ActionKind = "Mucks Cards"
	ActionShowsCards     ActionKind = "Shows Cards"
	ActionPostAnte       ActionKind = "Post Ante"
	ActionPostSB         ActionKind = "Post SB"
	ActionPostBB         ActionKind = "Post BB"
	ActionStraddle       ActionKind = "Straddle"
	ActionPostDead       ActionKind = "Post Dead"
	ActionPostExtraBlind ActionKind = "Post Extra Blind"
	ActionFold           ActionKind = "Fold"
	ActionCheck          ActionKind = "Check"
	ActionBet            ActionKind = "Bet"
	ActionRaise          ActionKind = "Raise"
	ActionCall           ActionKind = "Call"
	ActionAddedChips     ActionKind = "Added Chips"
	ActionSitsDown       ActionKind = "Sits Down"
	ActionStandsUp       ActionKind = "Stands Up"
	ActionAddToPot       ActionKind = "Add to Pot"
)

var validActions = map[ActionKind]struct{}{
	ActionDealtCards:     {},
	ActionMucksCards:     {},
	ActionShowsCards:     {},
	ActionPostAnte:       {},
	ActionPostSB:         {},
	ActionPostBB:         {},
	ActionStraddle:       {},
	ActionPostDead:       {},
	ActionPostExtraBlind: {},
	ActionFold:           {},
	ActionCheck:          {},
	ActionBet:            {},
	ActionRaise:          {},
	ActionCall:           {},
	ActionAddedChips:     {},
	ActionSitsDown:       {},
	ActionStandsUp:       {},
	ActionAddToPot:       {},
}

// Valid reports whether the action kind is one of the enumerated values.
func (k ActionKind) Valid() bool {
	_, ok := validActions[k]
	return ok
}

// RevealsCards reports whether the kind carries a cards payload.
func (k ActionKind) RevealsCards() bool {
	return k == ActionDealtCards || k == ActionShowsCards || k == ActionMucksCards
}

// FlagAnonymous marks hands with no usable per-player financial detail.
// Such hands can be replayed but must be excluded from statistics.
const FlagAnonymous = "Anonymous"

// Action is one discrete event within a round.
type Action struct {
	Number   int
	PlayerID int
	Kind     ActionKind
	Amount   float64
	AllIn    bool
	Cards    []string
}

// Round is one betting street with its revealed community cards.
type Round struct {
	ID      int
	Street  Street
	Cards   []string
	Actions []Action
}

// Player is one seat occupant for the hand. FinalStack is nil when the
// source did not record it.
type Player struct {
	ID            int
	Name          string
	Seat          int
	StartingStack float64
	FinalStack    *float64
}

// Win is one winner entry within a pot.
type Win struct {
	PlayerID      int
	Amount        float64
	CashoutAmount float64
	CashoutFee    float64
}

// Pot is one awarded pot (main or side).
type Pot struct {
	Number  int
	Amount  float64
	Rake    float64
	Jackpot float64
	Wins    []Win
}

// Hand is one fully normalized played hand. Values are immutable once
// parsed; both engines treat them as read-only.
type Hand struct {
	GameNumber   string
	StartDateUTC time.Time
	SiteName     string
	NetworkName  string
	TableName    string
	TableSize    int
	GameType     string
	DealerSeat   int
	HeroPlayerID *int
	SmallBlind   float64
	BigBlind     float64
	Ante         float64
	Flags        []string
	Players      []Player
	Rounds       []Round
	Pots         []Pot
}

// Anonymous reports whether the hand carries the Anonymous flag.
func (h *Hand) Anonymous() bool {
	for _, f := range h.Flags {
		if f == FlagAnonymous {
			return true
		}
	}
	return false
}

// PlayerByID returns the player with the given id.
func (h *Hand) PlayerByID(id int) (*Player, bool) {
	for i := range h.Players {
		if h.Players[i].ID == id {
			return &h.Players[i], true
		}
	}
	return nil, false
}

// Hero returns the hero player, if the hand records one.
func (h *Hand) Hero() (*Player, bool) {
	if h.HeroPlayerID == nil {
		return nil, false
	}
	return h.PlayerByID(*h.HeroPlayerID)
}

// ActionCount returns the total number of actions across all rounds.
func (h *Hand) ActionCount() int {
	n := 0
	for _, r := range h.Rounds {
		n += len(r.Actions)
	}
	return n
}

// Seats returns the seat number of every player in the hand.
func (h *Hand) Seats() []int {
	seats := make([]int, len(h.Players))
	for i, p := range h.Players {
		seats[i] = p.Seat
	}
	return seats
}
