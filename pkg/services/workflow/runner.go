package workflow

import (
	"context"
	"fmt"

	"github.com/de-tools/boxoffice-atlas/pkg/models/domain"
	"github.com/de-tools/boxoffice-atlas/pkg/store/sink"
	"github.com/rs/zerolog"
)

type Renderer interface {
	Render(report *domain.WeeklyReport) ([]byte, error)
}

// Runner executes the fetch, render and write pipeline once per Run.
type Runner struct {
	source   *Source
	renderer Renderer
	sink     sink.Sink
}

func NewRunner(source *Source, renderer Renderer, out sink.Sink) *Runner {
	return &Runner{
		source:   source,
		renderer: renderer,
		sink:     out,
	}
}

// Run performs one complete update. Nothing is written unless every
// earlier stage succeeded.
func (r *Runner) Run(ctx context.Context) error {
	report, err := r.source.Fetch(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to fetch weekly box office: %w", err)
	}

	doc, err := r.renderer.Render(report)
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	if err := r.sink.Write(ctx, doc); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("destination", r.sink.String()).
		Int("bytes", len(doc)).
		Msg("report written")
	return nil
}
