package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/de-tools/boxoffice-atlas/pkg/models/domain"
	"github.com/de-tools/boxoffice-atlas/pkg/runtime/logging"
	"github.com/de-tools/boxoffice-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/boxoffice-atlas/pkg/services/config"
	"github.com/de-tools/boxoffice-atlas/pkg/services/dates"
	"github.com/de-tools/boxoffice-atlas/pkg/services/workflow"
	"github.com/de-tools/boxoffice-atlas/pkg/store/kobis"
	"github.com/de-tools/boxoffice-atlas/pkg/store/sink"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Globals holds state shared by every command.
type Globals struct {
	ConfigPath string
	Clock      clockwork.Clock
}

// AddPipelineFlags registers the flags that shape a single report run.
func AddPipelineFlags(fs *pflag.FlagSet) {
	fs.String("target-date", "", "Request the week containing this date (YYYYMMDD) instead of seven days ago")
	fs.String("output", config.DefaultOutput, "Path of the generated document when destination is file")
	fs.String("destination", string(domain.DestinationFile), "Where to write the document: file, stdout or s3")
	fs.Bool("include-rank-change", true, "Include the week-over-week rank change column")
	fs.Duration("timeout", config.DefaultTimeout, "Deadline for the KOBIS request (0 disables it)")
}

// session is everything a command needs after configuration is resolved.
type session struct {
	cfg    *domain.Config
	ctx    context.Context
	client *kobis.Client
	dates  *dates.Selector
	closer io.Closer
}

func openSession(cmd *cobra.Command, globals *Globals) (*session, error) {
	cfg, err := config.Load(globals.ConfigPath, cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger, closer := logging.New(cfg.Log, cmd.ErrOrStderr())

	client, err := kobis.NewClient(cfg.BaseURL, cfg.APIKey, kobis.WithTimeout(cfg.Timeout))
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("failed to create KOBIS client: %w", err)
	}

	if cfg.APIKey == "" {
		logger.Warn().Msg("no API key configured, the request will most likely be rejected")
	}

	return &session{
		cfg:    cfg,
		ctx:    logger.WithContext(cmd.Context()),
		client: client,
		dates:  dates.NewSelector(globals.Clock),
		closer: closer,
	}, nil
}

func (s *session) formatter() *export.Formatter {
	return export.NewFormatter(export.Options{IncludeRankChange: s.cfg.IncludeRankChange})
}

func (s *session) source() *workflow.Source {
	return workflow.NewSource(s.client, s.dates, s.cfg.TargetDate)
}

func (s *session) runner(stdout io.Writer) (*workflow.Runner, error) {
	out, err := sink.New(s.ctx, s.cfg.Output, stdout)
	if err != nil {
		return nil, fmt.Errorf("failed to create sink: %w", err)
	}
	return workflow.NewRunner(s.source(), s.formatter(), out), nil
}

func (s *session) Close() error {
	return s.closer.Close()
}
