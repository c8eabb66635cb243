package adapters

import (
	"github.com/de-tools/boxoffice-atlas/pkg/models/api"
	"github.com/de-tools/boxoffice-atlas/pkg/models/domain"
)

func MapDomainEntryToAPIEntry(entry domain.BoxOfficeEntry) api.BoxOfficeEntry {
	return api.BoxOfficeEntry{
		Rank:                entry.Rank,
		RankChange:          string(entry.RankChange),
		Title:               entry.Title,
		ReleaseDate:         entry.ReleaseDate,
		AudienceAccumulated: entry.AudienceAccumulated,
		SalesShare:          entry.SalesShare,
	}
}

func MapDomainReportToAPIReport(report domain.WeeklyReport) api.WeeklyReport {
	entries := make([]api.BoxOfficeEntry, 0, len(report.Entries))
	for _, entry := range report.Entries {
		entries = append(entries, MapDomainEntryToAPIEntry(entry))
	}

	return api.WeeklyReport{
		ShowRange:     report.ShowRange,
		BoxOfficeType: report.BoxOfficeType,
		TargetDate:    report.TargetDate,
		Entries:       entries,
	}
}
