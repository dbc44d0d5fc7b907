package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andres-Briones/OpenPokerTracker/internal/ohh"
)

func fpt(v float64) *float64 { return &v }

// raisedPotHand is a 4-handed hand where the button open-raises, the
// small blind cold-calls, the big blind 3-bets and everyone folds.
func raisedPotHand() *ohh.Hand {
	return &ohh.Hand{
		GameNumber: "g100",
		TableName:  "Rio",
		TableSize:  4,
		DealerSeat: 4,
		SmallBlind: 0.5,
		BigBlind:   1,
		Players: []ohh.Player{
			{ID: 1, Name: "sb", Seat: 1, StartingStack: 100, FinalStack: fpt(97)},
			{ID: 2, Name: "bb", Seat: 2, StartingStack: 100, FinalStack: fpt(104.5)},
			{ID: 3, Name: "mp", Seat: 3, StartingStack: 100, FinalStack: fpt(100)},
			{ID: 4, Name: "bu", Seat: 4, StartingStack: 100},
		},
		Rounds: []ohh.Round{
			{
				Street: ohh.StreetPreflop,
				Actions: []ohh.Action{
					{Number: 0, PlayerID: 1, Kind: ohh.ActionPostSB, Amount: 0.5},
					{Number: 1, PlayerID: 2, Kind: ohh.ActionPostBB, Amount: 1},
					{Number: 2, PlayerID: 4, Kind: ohh.ActionDealtCards, Cards: []string{"As", "Ks"}},
					{Number: 3, PlayerID: 3, Kind: ohh.ActionFold},
					{Number: 4, PlayerID: 4, Kind: ohh.ActionRaise, Amount: 3},
					{Number: 5, PlayerID: 1, Kind: ohh.ActionCall, Amount: 2.5},
					{Number: 6, PlayerID: 2, Kind: ohh.ActionRaise, Amount: 9},
					{Number: 7, PlayerID: 4, Kind: ohh.ActionFold},
					{Number: 8, PlayerID: 1, Kind: ohh.ActionFold},
				},
			},
		},
	}
}

func TestComputePreflopFlags(t *testing.T) {
	t.Parallel()
	hs, err := Compute(raisedPotHand())
	require.NoError(t, err)
	require.Len(t, hs.Players, 4)

	bu := hs.Players["bu"]
	assert.True(t, bu.VPIP)
	assert.True(t, bu.PFR)
	assert.True(t, bu.TwoBet)
	assert.True(t, bu.TwoBetOpportunity)
	assert.True(t, bu.StealOpportunity)
	assert.True(t, bu.AttemptedSteal)
	assert.False(t, bu.Limp)
	assert.True(t, bu.FoldToRaise, "folding to the 3-bet")

	sb := hs.Players["sb"]
	assert.True(t, sb.VPIP)
	assert.False(t, sb.PFR)
	assert.False(t, sb.Limp, "a cold call of a raise is not a limp")
	assert.False(t, sb.TwoBetOpportunity)
	assert.True(t, sb.ThreeBetOpportunity)
	assert.True(t, sb.CallToRaise)
	assert.True(t, sb.FoldToRaise)

	bb := hs.Players["bb"]
	assert.True(t, bb.ThreeBet)
	assert.True(t, bb.ThreeBetOpportunity)
	assert.True(t, bb.PFR)
	assert.False(t, bb.StealOpportunity, "big blind is never in steal position")

	mp := hs.Players["mp"]
	assert.True(t, mp.Participated)
	assert.True(t, mp.TwoBetOpportunity)
	assert.False(t, mp.FoldToRaise, "folded before any raise")
	assert.False(t, mp.StealOpportunity)
}

func TestComputePositionsAndProfit(t *testing.T) {
	t.Parallel()
	hs, err := Compute(raisedPotHand())
	require.NoError(t, err)

	assert.Equal(t, "SB", hs.Players["sb"].PositionLabel)
	assert.Equal(t, "BB", hs.Players["bb"].PositionLabel)
	assert.Equal(t, "MP", hs.Players["mp"].PositionLabel)
	assert.Equal(t, "BU", hs.Players["bu"].PositionLabel)

	assert.Equal(t, -3.0, hs.Players["sb"].Profit)
	assert.Equal(t, 4.5, hs.Players["bb"].Profit)
	assert.Equal(t, 0.0, hs.Players["bu"].Profit, "missing final stack yields zero profit")
}

func TestComputeHoleCardClass(t *testing.T) {
	t.Parallel()
	hs, err := Compute(raisedPotHand())
	require.NoError(t, err)

	bu := hs.Players["bu"]
	assert.Equal(t, "A♠ K♠", bu.Cards)
	assert.Equal(t, "AKs", bu.Class)
	assert.Empty(t, hs.Players["sb"].Class, "unrevealed cards stay unclassified")
}

func TestComputeLimp(t *testing.T) {
	t.Parallel()
	hand := raisedPotHand()
	hand.Rounds[0].Actions = []ohh.Action{
		{PlayerID: 1, Kind: ohh.ActionPostSB, Amount: 0.5},
		{PlayerID: 2, Kind: ohh.ActionPostBB, Amount: 1},
		{PlayerID: 3, Kind: ohh.ActionCall, Amount: 1},
		{PlayerID: 4, Kind: ohh.ActionFold},
		{PlayerID: 1, Kind: ohh.ActionFold},
		{PlayerID: 2, Kind: ohh.ActionCheck},
	}

	hs, err := Compute(hand)
	require.NoError(t, err)

	mp := hs.Players["mp"]
	assert.True(t, mp.Limp)
	assert.True(t, mp.VPIP)
	assert.False(t, mp.PFR)
	assert.True(t, hs.Players["bb"].Participated, "checking behind a limp is still a played hand")
}

func TestComputeStealRequiresFirstIn(t *testing.T) {
	t.Parallel()
	hand := raisedPotHand()
	hand.Rounds[0].Actions = []ohh.Action{
		{PlayerID: 1, Kind: ohh.ActionPostSB, Amount: 0.5},
		{PlayerID: 2, Kind: ohh.ActionPostBB, Amount: 1},
		{PlayerID: 3, Kind: ohh.ActionCall, Amount: 1},
		{PlayerID: 4, Kind: ohh.ActionRaise, Amount: 5},
		{PlayerID: 1, Kind: ohh.ActionFold},
		{PlayerID: 2, Kind: ohh.ActionFold},
		{PlayerID: 3, Kind: ohh.ActionFold},
	}

	hs, err := Compute(hand)
	require.NoError(t, err)

	bu := hs.Players["bu"]
	assert.False(t, bu.StealOpportunity, "a raise over a limper is an isolation raise, not a steal")
	assert.False(t, bu.AttemptedSteal)
	assert.True(t, bu.TwoBet, "still the opening raise")
	assert.True(t, bu.PFR)
}

func TestComputeWalkedBigBlind(t *testing.T) {
	t.Parallel()
	hand := raisedPotHand()
	hand.Rounds[0].Actions = []ohh.Action{
		{PlayerID: 1, Kind: ohh.ActionPostSB, Amount: 0.5},
		{PlayerID: 2, Kind: ohh.ActionPostBB, Amount: 1},
		{PlayerID: 3, Kind: ohh.ActionFold},
		{PlayerID: 4, Kind: ohh.ActionFold},
		{PlayerID: 1, Kind: ohh.ActionFold},
	}

	hs, err := Compute(hand)
	require.NoError(t, err)

	assert.False(t, hs.Players["bb"].Participated, "a walk is not a played hand for the big blind")
	assert.True(t, hs.Players["sb"].Participated)
	assert.True(t, hs.Players["mp"].Participated)
}

func TestComputePostflopAggression(t *testing.T) {
	t.Parallel()
	hand := raisedPotHand()
	hand.Rounds[0].Actions = []ohh.Action{
		{PlayerID: 1, Kind: ohh.ActionPostSB, Amount: 0.5},
		{PlayerID: 2, Kind: ohh.ActionPostBB, Amount: 1},
		{PlayerID: 3, Kind: ohh.ActionFold},
		{PlayerID: 4, Kind: ohh.ActionCall, Amount: 1},
		{PlayerID: 1, Kind: ohh.ActionFold},
		{PlayerID: 2, Kind: ohh.ActionCheck},
	}
	hand.Rounds = append(hand.Rounds,
		ohh.Round{
			Street: ohh.StreetFlop,
			Cards:  []string{"Qh", "7d", "2c"},
			Actions: []ohh.Action{
				{PlayerID: 2, Kind: ohh.ActionBet, Amount: 2},
				{PlayerID: 4, Kind: ohh.ActionCall, Amount: 2},
			},
		},
		ohh.Round{
			Street: ohh.StreetTurn,
			Cards:  []string{"9s"},
			Actions: []ohh.Action{
				{PlayerID: 2, Kind: ohh.ActionCheck},
				{PlayerID: 4, Kind: ohh.ActionBet, Amount: 4},
				{PlayerID: 2, Kind: ohh.ActionRaise, Amount: 12},
				{PlayerID: 4, Kind: ohh.ActionFold},
			},
		},
	)

	hs, err := Compute(hand)
	require.NoError(t, err)

	bb := hs.Players["bb"]
	assert.Equal(t, 2, bb.Aggressive, "flop bet plus turn check-raise")
	assert.Equal(t, 0, bb.Passive)

	bu := hs.Players["bu"]
	assert.Equal(t, 1, bu.Aggressive)
	assert.Equal(t, 1, bu.Passive)

	sb := hs.Players["sb"]
	assert.Equal(t, 0, sb.Aggressive, "an early folder keeps an all-zero postflop record")
	assert.Equal(t, 0, sb.Passive)
}

func TestComputeAnonymousHand(t *testing.T) {
	t.Parallel()
	hand := raisedPotHand()
	hand.Flags = []string{ohh.FlagAnonymous}

	_, err := Compute(hand)
	require.ErrorIs(t, err, ErrAnonymousHand)
}

func TestComputeUnknownPlayer(t *testing.T) {
	t.Parallel()
	hand := raisedPotHand()
	hand.Rounds[0].Actions[3].PlayerID = 99

	_, err := Compute(hand)
	var unknown *ohh.UnknownPlayerError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, 99, unknown.PlayerID)
}

func TestComputeIsDeterministic(t *testing.T) {
	t.Parallel()
	hand := raisedPotHand()

	first, err := Compute(hand)
	require.NoError(t, err)
	second, err := Compute(hand)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
