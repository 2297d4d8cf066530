package score

// Entry is one play's contribution to a weekly score.
type Entry struct {
	Description string `json:"desc"`
	Points      int    `json:"pts"`
}

// Score is the computed weekly result for one league team.
type Score struct {
	LeagueID     string
	LeagueTeamID string
	Season       int
	Week         int
	Points       int
	Breakdown    []Entry
}

// Total is a league team's points summed across a season.
type Total struct {
	LeagueTeamID string
	Points       int
}

// SumBreakdown adds up the points of every entry.
func SumBreakdown(entries []Entry) int {
	total := 0
	for _, entry := range entries {
		total += entry.Points
	}
	return total
}
