// Package versus runs a human game and a computer game side by side.
// The two sessions never share state and every call touches exactly one of
// them; deciding turns or a winner is left to the caller.
package versus

import "errors"

// Label names one side of a versus match.
type Label string

const (
	LabelHuman Label = "human"
	LabelAI    Label = "ai"
)

// ErrUnknownLabel is returned when a call names neither side.
var ErrUnknownLabel = errors.New("versus: unknown session label")

// ParseLabel maps "human" or "ai" to a Label.
func ParseLabel(s string) (Label, error) {
	switch Label(s) {
	case LabelHuman, LabelAI:
		return Label(s), nil
	default:
		return "", ErrUnknownLabel
	}
}

// MatchID uniquely identifies a versus match.
type MatchID string

// MatchResultSaver is an interface for saving match results.
// This allows callers to persist results without depending on the storage package.
type MatchResultSaver interface {
	SaveMatchResult(result MatchResultData) error
}

// MatchResultData contains match result data for persistence.
type MatchResultData struct {
	MatchID      string
	GridSize     int
	Difficulty   string
	HumanScore   int
	AIScore      int
	Winner       string // "human", "ai", or empty for a draw
	DurationSecs int
}
