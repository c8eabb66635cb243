package api

type BoxOfficeEntry struct {
	Rank                int    `json:"rank"`
	RankChange          string `json:"rank_change"`
	Title               string `json:"title"`
	ReleaseDate         string `json:"release_date"`
	AudienceAccumulated string `json:"audience_accumulated"`
	SalesShare          string `json:"sales_share"`
}

type WeeklyReport struct {
	ShowRange     string           `json:"show_range"`
	BoxOfficeType string           `json:"boxoffice_type"`
	TargetDate    string           `json:"target_date"`
	Entries       []BoxOfficeEntry `json:"entries"`
}

type Error struct {
	Message string `json:"message"`
}
