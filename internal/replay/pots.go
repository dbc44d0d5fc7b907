package replay

import "github.com/Andres-Briones/OpenPokerTracker/internal/ohh"

// PotWinner is one winner's payout within an awarded pot.
type PotWinner struct {
	Name          string
	WinAmount     float64
	CashoutAmount float64
	CashoutFee    float64
}

// PotSummary describes one awarded pot (main or side).
type PotSummary struct {
	Number  int
	Amount  float64
	Rake    float64
	Jackpot float64
	Winners []PotWinner
}

// Pots builds the pot/winnings summary for a hand. It returns nil when
// the hand records no pots.
func Pots(h *ohh.Hand) ([]PotSummary, error) {
	if len(h.Pots) == 0 {
		return nil, nil
	}
	out := make([]PotSummary, 0, len(h.Pots))
	for _, pot := range h.Pots {
		summary := PotSummary{
			Number:  pot.Number,
			Amount:  pot.Amount,
			Rake:    pot.Rake,
			Jackpot: pot.Jackpot,
		}
		for _, win := range pot.Wins {
			player, ok := h.PlayerByID(win.PlayerID)
			if !ok {
				return nil, &ohh.UnknownPlayerError{GameID: h.GameNumber, PlayerID: win.PlayerID}
			}
			summary.Winners = append(summary.Winners, PotWinner{
				Name:          player.Name,
				WinAmount:     win.Amount,
				CashoutAmount: win.CashoutAmount,
				CashoutFee:    win.CashoutFee,
			})
		}
		out = append(out, summary)
	}
	return out, nil
}
