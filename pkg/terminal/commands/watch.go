package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/de-tools/boxoffice-atlas/pkg/services/config"
	"github.com/de-tools/boxoffice-atlas/pkg/services/workflow"
	"github.com/spf13/cobra"
)

type WatchCmd struct {
	globals *Globals
	now     bool
}

func NewWatchCmd(globals *Globals) *cobra.Command {
	wc := &WatchCmd{globals: globals}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep running and update the document on a cron schedule",
		Args:  cobra.NoArgs,
		RunE:  wc.run,
	}

	AddPipelineFlags(cmd.Flags())
	cmd.Flags().String("schedule", config.DefaultSchedule, "Cron expression (local time) for scheduled updates")
	cmd.Flags().BoolVar(&wc.now, "now", false, "Run once immediately before waiting for the schedule")

	return cmd
}

func (wc *WatchCmd) run(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, wc.globals)
	if err != nil {
		return err
	}
	defer s.Close()

	runner, err := s.runner(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(s.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := workflow.NewScheduler(runner, workflow.SchedulerConfig{
		Schedule:   s.cfg.Schedule,
		RunOnStart: wc.now,
		Clock:      wc.globals.Clock,
	})
	return scheduler.Start(ctx)
}
