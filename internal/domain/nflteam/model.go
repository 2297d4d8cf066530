package nflteam

// Team is an NFL franchise identified by its abbreviation.
type Team struct {
	Abbr string
	Name string
}
