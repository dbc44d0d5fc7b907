package phh

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andres-Briones/OpenPokerTracker/internal/ohh"
)

func fpt(v float64) *float64 { return &v }

func sampleHand() *ohh.Hand {
	return &ohh.Hand{
		GameNumber:   "4242",
		TableName:    "Mercury",
		TableSize:    6,
		DealerSeat:   3,
		SmallBlind:   1,
		BigBlind:     2,
		StartDateUTC: time.Date(2024, 3, 15, 20, 30, 5, 0, time.UTC),
		Players: []ohh.Player{
			{ID: 10, Name: "ana", Seat: 1, StartingStack: 200, FinalStack: fpt(197)},
			{ID: 11, Name: "bo", Seat: 2, StartingStack: 200, FinalStack: fpt(191)},
			{ID: 12, Name: "cyd", Seat: 3, StartingStack: 200, FinalStack: fpt(212)},
		},
		Rounds: []ohh.Round{
			{
				Street: ohh.StreetPreflop,
				Actions: []ohh.Action{
					{PlayerID: 10, Kind: ohh.ActionPostSB, Amount: 1},
					{PlayerID: 11, Kind: ohh.ActionPostBB, Amount: 2},
					{PlayerID: 12, Kind: ohh.ActionDealtCards, Cards: []string{"Ah", "Ad"}},
					{PlayerID: 12, Kind: ohh.ActionRaise, Amount: 5},
					{PlayerID: 10, Kind: ohh.ActionFold},
					{PlayerID: 11, Kind: ohh.ActionCall, Amount: 3},
				},
			},
			{
				Street: ohh.StreetFlop,
				Cards:  []string{"Kh", "7s", "2d"},
				Actions: []ohh.Action{
					{PlayerID: 11, Kind: ohh.ActionCheck},
					{PlayerID: 12, Kind: ohh.ActionBet, Amount: 4},
					{PlayerID: 11, Kind: ohh.ActionRaise, Amount: 14},
					{PlayerID: 12, Kind: ohh.ActionRaise, Amount: 24},
					{PlayerID: 11, Kind: ohh.ActionFold},
				},
			},
		},
		Pots: []ohh.Pot{
			{Amount: 39, Wins: []ohh.Win{{PlayerID: 12, Amount: 39}}},
		},
	}
}

func TestConvert(t *testing.T) {
	t.Parallel()
	out, err := Convert(sampleHand())
	require.NoError(t, err)

	assert.Equal(t, "NT", out.Variant)
	assert.Equal(t, "4242", out.HandID)
	assert.Equal(t, "Mercury", out.Table)
	assert.Equal(t, 2, out.MinBet)
	assert.Equal(t, []int{0, 0, 0}, out.Antes)
	assert.Equal(t, []int{1, 2, 0}, out.BlindsOrStraddles)
	assert.Equal(t, []int{200, 200, 200}, out.StartingStacks)
	assert.Equal(t, []int{197, 191, 212}, out.FinishingStacks)
	assert.Equal(t, []int{0, 0, 39}, out.Winnings)
	assert.Equal(t, []string{"ana", "bo", "cyd"}, out.Players)
	assert.Equal(t, []int{1, 2, 3}, out.Seats)
	assert.Equal(t, "20:30:05", out.Time)
	assert.Equal(t, 2024, out.Year)
	assert.Equal(t, 3, out.Month)
	assert.Equal(t, 15, out.Day)
}

func TestConvertActions(t *testing.T) {
	t.Parallel()
	out, err := Convert(sampleHand())
	require.NoError(t, err)

	// Bets use cumulative street totals: bo's flop check-raise to 14 is
	// "cbr 14", cyd's reraise on top of the earlier 4 is "cbr 28".
	assert.Equal(t, []string{
		"d dh p3 AhAd",
		"p3 cbr 5",
		"p1 f",
		"p2 cc",
		"d db Kh7s2d",
		"p2 cc",
		"p3 cbr 4",
		"p2 cbr 14",
		"p3 cbr 28",
		"p2 f",
	}, out.Actions)
}

func TestConvertFractionalStakesScaleToCents(t *testing.T) {
	t.Parallel()
	hand := sampleHand()
	hand.SmallBlind = 0.5
	hand.BigBlind = 1
	hand.Rounds[0].Actions[0].Amount = 0.5
	hand.Rounds[0].Actions[1].Amount = 1
	hand.Rounds[0].Actions[3].Amount = 2.5
	hand.Rounds[0].Actions[5].Amount = 1.5

	out, err := Convert(hand)
	require.NoError(t, err)

	assert.Equal(t, 100, out.MinBet)
	assert.Equal(t, []int{50, 100, 0}, out.BlindsOrStraddles)
	assert.Equal(t, []int{20000, 20000, 20000}, out.StartingStacks)
	assert.Equal(t, []int{19700, 19100, 21200}, out.FinishingStacks)
	assert.Equal(t, []int{0, 0, 3900}, out.Winnings)
	assert.Contains(t, out.Actions, "p3 cbr 250")
}

func TestConvertMissingFinalStacks(t *testing.T) {
	t.Parallel()
	hand := sampleHand()
	hand.Players[1].FinalStack = nil

	out, err := Convert(hand)
	require.NoError(t, err)
	assert.Nil(t, out.FinishingStacks)
}

func TestConvertUnknownWinner(t *testing.T) {
	t.Parallel()
	hand := sampleHand()
	hand.Pots[0].Wins[0].PlayerID = 99

	_, err := Convert(hand)
	var unknown *ohh.UnknownPlayerError
	require.ErrorAs(t, err, &unknown)
}

func TestEncodeSections(t *testing.T) {
	t.Parallel()
	first, err := Convert(sampleHand())
	require.NoError(t, err)
	second, err := Convert(sampleHand())
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, Encode(&buf, []*HandHistory{first, second}))

	text := buf.String()
	assert.True(t, strings.HasPrefix(text, "[1]\n"))
	assert.Contains(t, text, "\n[2]\n")
	assert.Contains(t, text, `variant = "NT"`)
	assert.Contains(t, text, `hand = "4242"`)
}
