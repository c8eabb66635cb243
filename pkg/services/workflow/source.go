package workflow

import (
	"context"
	"errors"

	"github.com/de-tools/boxoffice-atlas/pkg/models/domain"
	"github.com/de-tools/boxoffice-atlas/pkg/store/kobis"
	"github.com/rs/zerolog"
)

type Fetcher interface {
	GetWeeklyBoxOffice(ctx context.Context, targetDate string) (*domain.WeeklyReport, error)
}

type DateResolver interface {
	Resolve(override string) string
}

// Source resolves the target date and retrieves the weekly listing.
// It is all the read-only paths (show, preview server) need.
type Source struct {
	fetcher    Fetcher
	dates      DateResolver
	targetDate string
}

func NewSource(fetcher Fetcher, dates DateResolver, targetDate string) *Source {
	return &Source{
		fetcher:    fetcher,
		dates:      dates,
		targetDate: targetDate,
	}
}

// Fetch retrieves the listing for override, or for the configured date
// when override is empty.
func (s *Source) Fetch(ctx context.Context, override string) (*domain.WeeklyReport, error) {
	if override == "" {
		override = s.targetDate
	}
	targetDate := s.dates.Resolve(override)
	logger := zerolog.Ctx(ctx).With().Str("target_date", targetDate).Logger()

	logger.Debug().Msg("requesting weekly box office")
	report, err := s.fetcher.GetWeeklyBoxOffice(ctx, targetDate)
	if err != nil {
		event := logger.Error().Err(err)
		var upstreamErr *kobis.UpstreamError
		if errors.As(err, &upstreamErr) {
			event = event.Int("status_code", upstreamErr.StatusCode)
		}
		event.Msg("api request failed")
		return nil, err
	}

	logger.Info().
		Str("show_range", report.ShowRange).
		Int("entries", len(report.Entries)).
		Msg("weekly box office received")
	return report, nil
}
