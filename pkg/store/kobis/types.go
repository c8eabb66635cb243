package kobis

import "encoding/json"

// weeklyResponse mirrors searchWeeklyBoxOfficeList.json. Pointer fields
// distinguish a missing key from an empty value.
type weeklyResponse struct {
	BoxOfficeResult *boxOfficeResult `json:"boxOfficeResult" validate:"required"`
	FaultInfo       *faultInfo       `json:"faultInfo,omitempty"`
}

type boxOfficeResult struct {
	BoxofficeType       *string       `json:"boxofficeType" validate:"required"`
	ShowRange           *string       `json:"showRange" validate:"required"`
	YearWeekTime        string        `json:"yearWeekTime"`
	WeeklyBoxOfficeList []weeklyEntry `json:"weeklyBoxOfficeList" validate:"required,dive"`
}

type weeklyEntry struct {
	Rank          *string         `json:"rank" validate:"required"`
	RankInten     json.RawMessage `json:"rankInten" validate:"required"`
	RankOldAndNew *string         `json:"rankOldAndNew" validate:"required"`
	MovieCd       string          `json:"movieCd"`
	MovieNm       *string         `json:"movieNm" validate:"required"`
	OpenDt        *string         `json:"openDt" validate:"required"`
	AudiAcc       *string         `json:"audiAcc" validate:"required"`
	SalesShare    *string         `json:"salesShare" validate:"required"`
}

// faultInfo is returned with a 200 status when KOBIS rejects a request.
type faultInfo struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}
