package nflteam

// Catalog lists the 32 NFL franchises ordered by abbreviation.
func Catalog() []Team {
	return []Team{
		{Abbr: "ARI", Name: "Arizona Cardinals"},
		{Abbr: "ATL", Name: "Atlanta Falcons"},
		{Abbr: "BAL", Name: "Baltimore Ravens"},
		{Abbr: "BUF", Name: "Buffalo Bills"},
		{Abbr: "CAR", Name: "Carolina Panthers"},
		{Abbr: "CHI", Name: "Chicago Bears"},
		{Abbr: "CIN", Name: "Cincinnati Bengals"},
		{Abbr: "CLE", Name: "Cleveland Browns"},
		{Abbr: "DAL", Name: "Dallas Cowboys"},
		{Abbr: "DEN", Name: "Denver Broncos"},
		{Abbr: "DET", Name: "Detroit Lions"},
		{Abbr: "GB", Name: "Green Bay Packers"},
		{Abbr: "HOU", Name: "Houston Texans"},
		{Abbr: "IND", Name: "Indianapolis Colts"},
		{Abbr: "JAX", Name: "Jacksonville Jaguars"},
		{Abbr: "KC", Name: "Kansas City Chiefs"},
		{Abbr: "LAC", Name: "Los Angeles Chargers"},
		{Abbr: "LAR", Name: "Los Angeles Rams"},
		{Abbr: "LV", Name: "Las Vegas Raiders"},
		{Abbr: "MIA", Name: "Miami Dolphins"},
		{Abbr: "MIN", Name: "Minnesota Vikings"},
		{Abbr: "NE", Name: "New England Patriots"},
		{Abbr: "NO", Name: "New Orleans Saints"},
		{Abbr: "NYG", Name: "New York Giants"},
		{Abbr: "NYJ", Name: "New York Jets"},
		{Abbr: "PHI", Name: "Philadelphia Eagles"},
		{Abbr: "PIT", Name: "Pittsburgh Steelers"},
		{Abbr: "SEA", Name: "Seattle Seahawks"},
		{Abbr: "SF", Name: "San Francisco 49ers"},
		{Abbr: "TB", Name: "Tampa Bay Buccaneers"},
		{Abbr: "TEN", Name: "Tennessee Titans"},
		{Abbr: "WAS", Name: "Washington Commanders"},
	}
}
