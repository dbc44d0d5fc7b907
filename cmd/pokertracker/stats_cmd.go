package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Andres-Briones/OpenPokerTracker/cmd/pokertracker/shared"
	"github.com/Andres-Briones/OpenPokerTracker/internal/batch"
	"github.com/Andres-Briones/OpenPokerTracker/internal/stats"
)

// StatsCmd aggregates player rate statistics over a corpus of session files.
type StatsCmd struct {
	Paths      []string `arg:"" help:"Session files or directories containing .ohh files"`
	MinPlayers int      `help:"Only count hands with at least this many players"`
	MaxPlayers int      `help:"Only count hands with at most this many players"`
	Workers    int      `help:"Parallel workers (0 = auto)"`
	Debug      bool     `help:"Enable debug logging"`
}

func (c *StatsCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	hands, err := loadSessions(logger, c.Paths)
	if err != nil {
		return err
	}

	opts := batch.Options{Workers: c.Workers}
	if c.MinPlayers > 0 || c.MaxPlayers > 0 {
		opts.Aggregator = append(opts.Aggregator, stats.WithPlayerRange(c.MinPlayers, c.MaxPlayers))
	}

	result, err := batch.Process(context.Background(), hands, opts)
	if err != nil {
		return err
	}
	for _, failure := range result.Failures {
		logger.Warn().Str("hand", failure.GameID).Err(failure.Err).Msg("hand excluded from statistics")
	}
	logger.Info().
		Int("processed", result.Processed).
		Int("skipped", result.Skipped).
		Int("failed", len(result.Failures)).
		Msg("corpus processed")

	rates := result.Aggregate.Rates()
	if len(rates) == 0 {
		fmt.Println("no statistics to report")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	columns := []string{"Player", "Hands", "VPIP%", "PFR%", "Limp%", "3Bet%", "Steal%", "AF", "bb/100"}
	for i, col := range columns {
		columns[i] = headerStyle.Render(col)
	}
	fmt.Fprintln(w, strings.Join(columns, "\t"))
	for _, r := range rates {
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\n",
			r.Name, r.Hands, r.VPIP, r.PFR, r.Limp, r.ThreeBet, r.Steal, r.AF, r.BB100)
	}
	return w.Flush()
}
