package ohh

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Raw wire shapes. Optional numeric fields use pointers so documented
// defaults can be applied when the key is absent.
type rawFile struct {
	OHH *rawHand `json:"ohh"`
}

type rawHand struct {
	SpecVersion  string      `json:"spec_version"`
	SiteName     string      `json:"site_name"`
	NetworkName  string      `json:"network_name"`
	Tournament   bool        `json:"tournament"`
	GameNumber   string      `json:"game_number"`
	StartDateUTC string      `json:"start_date_utc"`
	TableName    string      `json:"table_name"`
	TableSize    int         `json:"table_size"`
	GameType     string      `json:"game_type"`
	DealerSeat   int         `json:"dealer_seat"`
	HeroPlayerID *int        `json:"hero_player_id"`
	SmallBlind   float64     `json:"small_blind_amount"`
	BigBlind     float64     `json:"big_blind_amount"`
	Ante         float64     `json:"ante_amount"`
	Flags        []string    `json:"flags"`
	Players      []rawPlayer `json:"players"`
	Rounds       []rawRound  `json:"rounds"`
	Pots         []rawPot    `json:"pots"`
}

type rawPlayer struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Seat          int      `json:"seat"`
	StartingStack float64  `json:"starting_stack"`
	FinalStack    *float64 `json:"final_stack"`
}

type rawRound struct {
	ID      int         `json:"id"`
	Street  string      `json:"street"`
	Cards   []string    `json:"cards"`
	Actions []rawAction `json:"actions"`
}

type rawAction struct {
	ActionNumber *int     `json:"action_number"`
	ActionID     *int     `json:"action_id"`
	PlayerID     int      `json:"player_id"`
	Action       string   `json:"action"`
	Amount       float64  `json:"amount"`
	IsAllIn      bool     `json:"is_allin"`
	Cards        []string `json:"cards"`
}

type rawPot struct {
	Number  int      `json:"number"`
	Amount  float64  `json:"amount"`
	Rake    float64  `json:"rake"`
	Jackpot float64  `json:"jackpot"`
	Wins    []rawWin `json:"player_wins"`
}

type rawWin struct {
	PlayerID      int      `json:"player_id"`
	WinAmount     float64  `json:"win_amount"`
	CashoutAmount *float64 `json:"cashout_amount"`
	CashoutFee    float64  `json:"cashout_fee"`
}

// ParseHand normalizes a single raw OHH JSON object. The top-level object
// must carry the "ohh" wrapper key.
func ParseHand(data []byte) (*Hand, error) {
	var raw rawFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedHandError{Field: "ohh", Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if raw.OHH == nil {
		return nil, &MalformedHandError{Field: "ohh", Reason: "missing top-level wrapper key"}
	}
	return normalize(raw.OHH)
}

func normalize(raw *rawHand) (*Hand, error) {
	gameID := raw.GameNumber
	if gameID == "" {
		return nil, &MalformedHandError{Field: "game_number", Reason: "missing required field"}
	}
	if raw.TableSize <= 0 {
		return nil, &MalformedHandError{GameID: gameID, Field: "table_size", Reason: "must be positive"}
	}
	if raw.DealerSeat <= 0 {
		return nil, &MalformedHandError{GameID: gameID, Field: "dealer_seat", Reason: "must be positive"}
	}
	if len(raw.Players) == 0 {
		return nil, &MalformedHandError{GameID: gameID, Field: "players", Reason: "missing required field"}
	}

	var started time.Time
	if raw.StartDateUTC != "" {
		t, err := time.Parse(time.RFC3339, raw.StartDateUTC)
		if err != nil {
			return nil, &MalformedHandError{GameID: gameID, Field: "start_date_utc", Reason: err.Error()}
		}
		started = t.UTC()
	}

	h := &Hand{
		GameNumber:   gameID,
		StartDateUTC: started,
		SiteName:     raw.SiteName,
		NetworkName:  raw.NetworkName,
		TableName:    raw.TableName,
		TableSize:    raw.TableSize,
		GameType:     raw.GameType,
		DealerSeat:   raw.DealerSeat,
		HeroPlayerID: raw.HeroPlayerID,
		SmallBlind:   raw.SmallBlind,
		BigBlind:     raw.BigBlind,
		Ante:         raw.Ante,
		Flags:        raw.Flags,
	}

	seen := make(map[int]bool, len(raw.Players))
	seenNames := make(map[string]bool, len(raw.Players))
	for _, p := range raw.Players {
		if p.Name == "" {
			return nil, &MalformedHandError{GameID: gameID, Field: "players.name", Reason: fmt.Sprintf("player %d has no name", p.ID)}
		}
		if p.Seat < 1 || p.Seat > raw.TableSize {
			return nil, &MalformedHandError{GameID: gameID, Field: "players.seat",
				Reason: fmt.Sprintf("seat %d outside 1..%d", p.Seat, raw.TableSize)}
		}
		if seen[p.ID] {
			return nil, &MalformedHandError{GameID: gameID, Field: "players.id", Reason: fmt.Sprintf("duplicate player id %d", p.ID)}
		}
		seen[p.ID] = true
		// Statistics key players by name, so two same-named players would
		// silently merge into one record downstream.
		if seenNames[p.Name] {
			return nil, &MalformedHandError{GameID: gameID, Field: "players.name", Reason: fmt.Sprintf("duplicate player name %q", p.Name)}
		}
		seenNames[p.Name] = true
		h.Players = append(h.Players, Player{
			ID:            p.ID,
			Name:          p.Name,
			Seat:          p.Seat,
			StartingStack: p.StartingStack,
			FinalStack:    p.FinalStack,
		})
	}

	prevStreet := -1
	for _, r := range raw.Rounds {
		street := Street(r.Street)
		if !street.Valid() {
			return nil, &MalformedHandError{GameID: gameID, Field: "rounds.street", Reason: fmt.Sprintf("unknown street %q", r.Street)}
		}
		// Rounds must appear in Preflop -> Flop -> Turn -> River -> Showdown
		// relative order, any subset.
		if streetOrder[street] <= prevStreet {
			return nil, &MalformedHandError{GameID: gameID, Field: "rounds.street",
				Reason: fmt.Sprintf("street %s out of order", street)}
		}
		prevStreet = streetOrder[street]

		round := Round{ID: r.ID, Street: street, Cards: r.Cards}
		for _, a := range r.Actions {
			kind := ActionKind(a.Action)
			if !kind.Valid() {
				return nil, &MalformedHandError{GameID: gameID, Field: "actions.action", Reason: fmt.Sprintf("unknown action %q", a.Action)}
			}
			if !seen[a.PlayerID] {
				return nil, &UnknownPlayerError{GameID: gameID, PlayerID: a.PlayerID}
			}
			number := len(round.Actions)
			// Some writers emit "action_id" instead of "action_number";
			// accept either.
			if a.ActionNumber != nil {
				number = *a.ActionNumber
			} else if a.ActionID != nil {
				number = *a.ActionID
			}
			round.Actions = append(round.Actions, Action{
				Number:   number,
				PlayerID: a.PlayerID,
				Kind:     kind,
				Amount:   a.Amount,
				AllIn:    a.IsAllIn,
				Cards:    a.Cards,
			})
		}
		h.Rounds = append(h.Rounds, round)
	}

	for _, p := range raw.Pots {
		pot := Pot{Number: p.Number, Amount: p.Amount, Rake: p.Rake, Jackpot: p.Jackpot}
		for _, w := range p.Wins {
			if !seen[w.PlayerID] {
				return nil, &UnknownPlayerError{GameID: gameID, PlayerID: w.PlayerID}
			}
			cashout := w.WinAmount // cashout_amount defaults to the win amount
			if w.CashoutAmount != nil {
				cashout = *w.CashoutAmount
			}
			pot.Wins = append(pot.Wins, Win{
				PlayerID:      w.PlayerID,
				Amount:        w.WinAmount,
				CashoutAmount: cashout,
				CashoutFee:    w.CashoutFee,
			})
		}
		h.Pots = append(h.Pots, pot)
	}

	return h, nil
}

// ReadSession reads an .ohh session file: JSON hand objects separated by
// blank lines. Malformed hands are reported individually so one bad
// record does not discard the rest of the file.
func ReadSession(r io.Reader) ([]*Hand, []error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, []error{err}
	}

	var hands []*Hand
	var errs []error
	for i, chunk := range splitSession(data) {
		hand, err := ParseHand(chunk)
		if err != nil {
			errs = append(errs, fmt.Errorf("hand %d: %w", i+1, err))
			continue
		}
		hands = append(hands, hand)
	}
	return hands, errs
}

// splitSession splits file contents on blank lines. Indented JSON never
// contains an empty line, so this matches the writer's framing.
func splitSession(data []byte) [][]byte {
	var chunks [][]byte
	var current []string
	flush := func() {
		if len(current) == 0 {
			return
		}
		chunk := strings.TrimSpace(strings.Join(current, "\n"))
		if chunk != "" {
			chunks = append(chunks, []byte(chunk))
		}
		current = current[:0]
	}

	for _, line := range strings.Split(string(bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))), "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return chunks
}
