package ohh

import "fmt"

// MalformedHandError reports a missing or invalid field in a raw hand
// record. It is always fatal for that hand.
type MalformedHandError struct {
	GameID string
	Field  string
	Reason string
}

func (e *MalformedHandError) Error() string {
	if e.GameID == "" {
		return fmt.Sprintf("ohh: malformed hand: field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("ohh: malformed hand %s: field %q: %s", e.GameID, e.Field, e.Reason)
}

// UnknownPlayerError reports an action referencing a player id absent
// from the hand's players list.
type UnknownPlayerError struct {
	GameID   string
	PlayerID int
}

func (e *UnknownPlayerError) Error() string {
	return fmt.Sprintf("ohh: hand %s references unknown player id %d", e.GameID, e.PlayerID)
}
