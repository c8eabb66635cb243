package commands

import (
	"github.com/spf13/cobra"
)

type UpdateCmd struct {
	globals *Globals
}

func NewUpdateCmd(globals *Globals) *cobra.Command {
	uc := &UpdateCmd{globals: globals}
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Fetch last week's box office and write the document once",
		Args:  cobra.NoArgs,
		RunE:  uc.Run,
	}

	AddPipelineFlags(cmd.Flags())

	return cmd
}

// NewUpdateRunE lets the root command behave like update.
func NewUpdateRunE(globals *Globals) func(cmd *cobra.Command, args []string) error {
	return (&UpdateCmd{globals: globals}).Run
}

func (uc *UpdateCmd) Run(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, uc.globals)
	if err != nil {
		return err
	}
	defer s.Close()

	runner, err := s.runner(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	return runner.Run(s.ctx)
}
