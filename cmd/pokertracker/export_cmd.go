package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/Andres-Briones/OpenPokerTracker/cmd/pokertracker/shared"
	"github.com/Andres-Briones/OpenPokerTracker/internal/fileutil"
	"github.com/Andres-Briones/OpenPokerTracker/internal/ohh"
	"github.com/Andres-Briones/OpenPokerTracker/internal/phh"
)

// ExportCmd converts an OHH session file into a PHH session file.
type ExportCmd struct {
	File   string `arg:"" help:"Path to an .ohh session file"`
	Output string `short:"o" help:"Output path (defaults to the input with a .phhs extension)"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *ExportCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	hands, errs := ohh.ReadSession(f)
	f.Close()
	for _, err := range errs {
		logger.Warn().Err(err).Msg("skipping malformed hand")
	}
	if len(hands) == 0 {
		return fmt.Errorf("no parseable hands in %s", c.File)
	}

	converted := make([]*phh.HandHistory, 0, len(hands))
	for _, hand := range hands {
		ph, err := phh.Convert(hand)
		if err != nil {
			logger.Warn().Str("hand", hand.GameNumber).Err(err).Msg("skipping unconvertible hand")
			continue
		}
		converted = append(converted, ph)
	}

	var buf bytes.Buffer
	if err := phh.Encode(&buf, converted); err != nil {
		return err
	}

	output := c.Output
	if output == "" {
		output = strings.TrimSuffix(c.File, ".ohh")
		output = strings.TrimSuffix(output, ".OHH") + ".phhs"
	}
	if err := fileutil.WriteFileAtomic(output, buf.Bytes(), 0o644); err != nil {
		return err
	}
	logger.Info().Str("output", output).Int("hands", len(converted)).Msg("exported session")
	return nil
}
