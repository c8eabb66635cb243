package domain

import (
	"fmt"
	"strconv"
)

// RankChange is the rendered week-over-week chart movement of a movie.
type RankChange string

const (
	RankChangeNew     RankChange = "🆕 NEW"
	RankChangeSteady  RankChange = "-"
	RankChangeUnknown RankChange = ""
)

// RankUp returns the marker for a movie that climbed n places.
func RankUp(n int) RankChange {
	return RankChange("▲" + strconv.Itoa(n))
}

// RankDown returns the marker for a movie that dropped n places.
func RankDown(n int) RankChange {
	return RankChange("▼" + strconv.Itoa(n))
}

// BoxOfficeEntry represents one movie of the weekly top list
type BoxOfficeEntry struct {
	Rank                int
	RankChange          RankChange
	Title               string
	ReleaseDate         string // YYYYMMDD, as reported upstream
	AudienceAccumulated string // thousands separated
	SalesShare          string // percent sign appended
}

// WeeklyReport represents a complete weekly box-office listing
type WeeklyReport struct {
	ShowRange     string
	BoxOfficeType string
	TargetDate    string
	Entries       []BoxOfficeEntry
}

func (r WeeklyReport) String() string {
	return fmt.Sprintf("%s (%s): %d entries", r.BoxOfficeType, r.ShowRange, len(r.Entries))
}
