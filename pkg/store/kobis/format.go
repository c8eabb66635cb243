package kobis

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/de-tools/boxoffice-atlas/pkg/models/domain"
	"github.com/dustin/go-humanize"
)

const newEntryFlag = "NEW"

// FormatRankChange maps the rankInten/rankOldAndNew pair to a chart marker.
// A delta that is not an integer yields an empty marker.
func FormatRankChange(inten, oldAndNew string) domain.RankChange {
	if oldAndNew == newEntryFlag {
		return domain.RankChangeNew
	}

	delta, err := strconv.Atoi(strings.TrimSpace(inten))
	if err != nil {
		return domain.RankChangeUnknown
	}

	switch {
	case delta > 0:
		return domain.RankUp(delta)
	case delta < 0:
		return domain.RankDown(-delta)
	default:
		return domain.RankChangeSteady
	}
}

// FormatAudience renders a head count with thousands separators.
func FormatAudience(n int64) string {
	return humanize.Comma(n)
}

// FormatSalesShare appends a percent sign without re-validating the value.
func FormatSalesShare(share string) string {
	return share + "%"
}

// rawText accepts a JSON string or a bare JSON literal such as a number.
// Whole numbers written with a fraction (3.0) come back as integers; null
// comes back empty.
func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil && f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strings.TrimSpace(string(raw))
}
