package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/Andres-Briones/OpenPokerTracker/cmd/pokertracker/shared"
	"github.com/Andres-Briones/OpenPokerTracker/internal/ohh"
	"github.com/Andres-Briones/OpenPokerTracker/internal/replay"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	streetStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))

	potStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	foldedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)
)

// ReplayCmd renders the per-action frames of one hand from a session file.
type ReplayCmd struct {
	File  string `arg:"" help:"Path to an .ohh session file"`
	Hand  int    `help:"Hand number within the file (1-based)" default:"1"`
	Frame int    `help:"Render only this frame (1-based, 0 = all)"`
	Debug bool   `help:"Enable debug logging"`
}

func (c *ReplayCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	hands, errs := ohh.ReadSession(f)
	for _, err := range errs {
		logger.Warn().Err(err).Msg("skipping malformed hand")
	}
	if c.Hand < 1 || c.Hand > len(hands) {
		return fmt.Errorf("hand %d out of range: file has %d hands", c.Hand, len(hands))
	}
	hand := hands[c.Hand-1]

	frames, err := replay.Frames(hand)
	if err != nil {
		return fmt.Errorf("replaying hand %s: %w", hand.GameNumber, err)
	}

	title := fmt.Sprintf("Hand %s, %s (%d-max)", hand.GameNumber, hand.TableName, hand.TableSize)
	if hero, ok := hand.Hero(); ok {
		title += ", hero: " + hero.Name
	}
	fmt.Println(headerStyle.Render(title))

	first, last := 0, len(frames)
	if c.Frame > 0 {
		if c.Frame > len(frames) {
			return fmt.Errorf("frame %d out of range: hand has %d frames", c.Frame, len(frames))
		}
		first, last = c.Frame-1, c.Frame
	}
	for i := first; i < last; i++ {
		renderFrame(i, frames[i])
	}

	pots, err := replay.Pots(hand)
	if err != nil {
		return err
	}
	for _, pot := range pots {
		fmt.Println()
		fmt.Printf("%s %.2f (rake %.2f)\n", winnerStyle.Render(fmt.Sprintf("Pot %d:", pot.Number+1)), pot.Amount, pot.Rake)
		for _, w := range pot.Winners {
			fmt.Printf("  %s wins %.2f\n", w.Name, w.WinAmount)
		}
	}
	return nil
}

func renderFrame(i int, frame replay.Frame) {
	fmt.Println()
	board := strings.Join(frame.Board, " ")
	if board == "" {
		board = "-"
	}
	fmt.Printf("%s %s  %s  %s\n",
		streetStyle.Render(fmt.Sprintf("[%d] %s", i+1, frame.Street)),
		potStyle.Render(fmt.Sprintf("pot %.2f", frame.Pot)),
		"board: "+board,
		frame.Description,
	)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, p := range frame.Players {
		line := fmt.Sprintf("  %s\t%s\t%s\tbet %.2f\tstack %.2f", p.Name, p.Cards, p.Status, p.Bet, p.Chips)
		if p.Status == replay.StatusFolded {
			line = foldedStyle.Render(line)
		}
		fmt.Fprintln(w, line)
	}
	w.Flush()
}
