package model

// LeaderboardEntry is one row of a regional ranking
type LeaderboardEntry struct {
	Rank   int
	Name   string
	Points int
}

// PassEntry is one row of the Booyah Pass ranking
type PassEntry struct {
	Rank  int
	Name  string
	Level int
}
