package kickplay

import (
	"strconv"
	"strings"
)

const (
	shortMissMaxDistance = 29
	longMakeMinDistance  = 50
)

// Points returns the fantasy point delta a single play contributes to the
// kicker's team. Invalid plays score 0.
func Points(p Play) int {
	switch p.PlayType {
	case PlayTypeFieldGoal:
		return fieldGoalPoints(p)
	case PlayTypeExtraPoint:
		if p.Result == ResultMissed || p.Blocked {
			return 3
		}
	}
	return 0
}

func fieldGoalPoints(p Play) int {
	switch p.Result {
	case ResultMissed:
		// Unknown distance counts as a short miss.
		if p.Distance == nil || *p.Distance <= shortMissMaxDistance {
			return 2
		}
		return 1
	case ResultMade:
		if p.Distance != nil && *p.Distance >= longMakeMinDistance {
			return -1
		}
	}
	return 0
}

// Describe renders the breakdown label for a play, e.g. "MADE FG 51y" or
// "MISSED XP (blocked)".
func Describe(p Play) string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(string(p.Result)))
	if p.PlayType == PlayTypeFieldGoal {
		b.WriteString(" FG ")
		if p.Distance != nil {
			b.WriteString(strconv.Itoa(*p.Distance))
		} else {
			b.WriteString("?")
		}
		b.WriteString("y")
		return b.String()
	}

	b.WriteString(" XP")
	if p.Blocked {
		b.WriteString(" (blocked)")
	}
	return b.String()
}
