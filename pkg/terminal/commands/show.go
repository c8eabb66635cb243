package commands

import (
	"fmt"

	"github.com/de-tools/boxoffice-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/boxoffice-atlas/pkg/services/config"
	"github.com/spf13/cobra"
)

type ShowCmd struct {
	globals *Globals
}

func NewShowCmd(globals *Globals) *cobra.Command {
	sc := &ShowCmd{globals: globals}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print last week's box office as a table without writing anything",
		Args:  cobra.NoArgs,
		RunE:  sc.run,
	}

	cmd.Flags().String("target-date", "", "Request the week containing this date (YYYYMMDD) instead of seven days ago")
	cmd.Flags().Bool("include-rank-change", true, "Include the week-over-week rank change column")
	cmd.Flags().Duration("timeout", config.DefaultTimeout, "Deadline for the KOBIS request (0 disables it)")

	return cmd
}

func (sc *ShowCmd) run(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, sc.globals)
	if err != nil {
		return err
	}
	defer s.Close()

	report, err := s.source().Fetch(s.ctx, "")
	if err != nil {
		return fmt.Errorf("failed to fetch weekly box office: %w", err)
	}

	return export.NewTableReporter(cmd.OutOrStdout(), s.formatter()).Handle(report)
}
