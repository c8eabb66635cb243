package sink

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/de-tools/boxoffice-atlas/pkg/models/domain"
	"github.com/spf13/afero"
)

var ErrUnknownDestination = errors.New("sink: unknown destination")

// Sink stores a rendered document, replacing whatever was there before.
type Sink interface {
	Write(ctx context.Context, doc []byte) error
	String() string
}

// New selects a sink for the configured destination. stdout receives the
// document when the destination is stdout.
func New(ctx context.Context, cfg domain.OutputConfig, stdout io.Writer) (Sink, error) {
	switch cfg.Destination {
	case domain.DestinationFile:
		return NewFileSink(afero.NewOsFs(), cfg.Path), nil
	case domain.DestinationStdout:
		return NewStdoutSink(stdout), nil
	case domain.DestinationS3:
		return NewS3SinkFromConfig(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDestination, cfg.Destination)
	}
}
