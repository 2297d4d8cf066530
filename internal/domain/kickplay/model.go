package kickplay

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPlay = errors.New("invalid kick play")

// PlayType is the kind of kicking attempt.
type PlayType string

const (
	PlayTypeFieldGoal  PlayType = "field_goal"
	PlayTypeExtraPoint PlayType = "extra_point"
)

var AllPlayTypes = map[PlayType]struct{}{
	PlayTypeFieldGoal:  {},
	PlayTypeExtraPoint: {},
}

// Result is the outcome of a kicking attempt.
type Result string

const (
	ResultMade   Result = "made"
	ResultMissed Result = "missed"
)

var AllResults = map[Result]struct{}{
	ResultMade:   {},
	ResultMissed: {},
}

// Play is one real kicking attempt credited to the possession team.
type Play struct {
	Season     int
	Week       int
	GameID     string
	Possession string
	PlayType   PlayType
	Result     Result
	Distance   *int
	Blocked    bool
}

func (p Play) Validate() error {
	if strings.TrimSpace(p.GameID) == "" {
		return fmt.Errorf("%w: game id is required", ErrInvalidPlay)
	}
	if strings.TrimSpace(p.Possession) == "" {
		return fmt.Errorf("%w: possession team is required", ErrInvalidPlay)
	}
	if _, ok := AllPlayTypes[p.PlayType]; !ok {
		return fmt.Errorf("%w: unknown play type %q", ErrInvalidPlay, p.PlayType)
	}
	if _, ok := AllResults[p.Result]; !ok {
		return fmt.Errorf("%w: unknown result %q", ErrInvalidPlay, p.Result)
	}
	if p.Distance != nil && *p.Distance < 0 {
		return fmt.Errorf("%w: distance must be >= 0", ErrInvalidPlay)
	}

	return nil
}
