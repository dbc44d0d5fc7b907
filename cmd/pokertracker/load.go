package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Andres-Briones/OpenPokerTracker/internal/ohh"
)

// loadSessions reads hands from the given paths. Directories are scanned
// for .ohh files. Malformed hands are logged and skipped; a path that
// yields nothing at all is an error.
func loadSessions(logger zerolog.Logger, paths []string) ([]*ohh.Hand, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(entry.Name()), ".ohh") {
				files = append(files, filepath.Join(path, entry.Name()))
			}
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no session files found in %s", strings.Join(paths, ", "))
	}

	var hands []*ohh.Hand
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		parsed, errs := ohh.ReadSession(f)
		f.Close()
		for _, err := range errs {
			logger.Warn().Str("file", file).Err(err).Msg("skipping malformed hand")
		}
		hands = append(hands, parsed...)
		logger.Debug().Str("file", file).Int("hands", len(parsed)).Msg("loaded session file")
	}
	if len(hands) == 0 {
		return nil, fmt.Errorf("no parseable hands in %d file(s)", len(files))
	}
	return hands, nil
}
