package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Andres-Briones/OpenPokerTracker/cmd/pokertracker/shared"
	"github.com/Andres-Briones/OpenPokerTracker/internal/batch"
	"github.com/Andres-Briones/OpenPokerTracker/internal/cards"
)

var rangeShades = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

// RangesCmd renders a player's observed starting-hand range as a 13x13
// grid of VPIP rates.
type RangesCmd struct {
	Player string   `arg:"" help:"Player name to build the range for"`
	Paths  []string `arg:"" help:"Session files or directories containing .ohh files"`
	Debug  bool     `help:"Enable debug logging"`
}

func (c *RangesCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	hands, err := loadSessions(logger, c.Paths)
	if err != nil {
		return err
	}

	result, err := batch.Process(context.Background(), hands, batch.Options{
		RangePlayers: []string{c.Player},
	})
	if err != nil {
		return err
	}
	for _, failure := range result.Failures {
		logger.Warn().Str("hand", failure.GameID).Err(failure.Err).Msg("hand excluded")
	}

	matrix := result.Ranges[c.Player]
	vpip := matrix.VPIPByClass()

	fmt.Println(headerStyle.Render(fmt.Sprintf("VPIP by starting hand — %s", c.Player)))
	ranks := cards.RankOrder
	for i := len(ranks) - 1; i >= 0; i-- {
		for j := len(ranks) - 1; j >= 0; j-- {
			class := classAt(ranks, i, j)
			fmt.Printf("%s ", shadeFor(vpip[class], matrix.Observed(class)).Render(fmt.Sprintf("%4s", class)))
		}
		fmt.Println()
	}
	return nil
}

// classAt maps grid coordinates to a class label: pairs on the diagonal,
// suited above, offsuit below.
func classAt(ranks string, i, j int) string {
	hi, lo := ranks[i], ranks[j]
	switch {
	case i == j:
		return string(hi) + string(lo)
	case i > j:
		return string(hi) + string(lo) + "s"
	default:
		return string(lo) + string(hi) + "o"
	}
}

func shadeFor(rate float64, observed int) lipgloss.Style {
	if observed == 0 {
		return rangeShades[0]
	}
	switch {
	case rate >= 75:
		return rangeShades[3]
	case rate >= 25:
		return rangeShades[2]
	default:
		return rangeShades[1]
	}
}
