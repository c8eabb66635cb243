package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/boxoffice-atlas/pkg/terminal/commands"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	globals *commands.Globals
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output      io.Writer
	ErrorOutput io.Writer
	Clock       clockwork.Clock
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrorOutput == nil {
		opts.ErrorOutput = os.Stderr
	}

	cli := &CLI{
		globals: &commands.Globals{Clock: opts.Clock},
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.ErrorOutput)
	return cli
}

// Execute runs the command line in args; nil args means os.Args.
func (cli *CLI) Execute(ctx context.Context, args []string) error {
	if args != nil {
		cli.rootCmd.SetArgs(args)
	}
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boxoffice",
		Short: "Weekly KOBIS box office README generator",
		Long: "Fetches last week's KOBIS weekly box office top list and renders it as a markdown document.\n" +
			"Running without a subcommand is the same as `boxoffice update`.",
		Args:          cobra.NoArgs,
		RunE:          commands.NewUpdateRunE(cli.globals),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&cli.globals.ConfigPath, "config", "c", "",
		"Path to a config file (yaml, json, toml, env)")
	cmd.PersistentFlags().String("log-level", "info", "Log level: trace, debug, info, warn or error")
	commands.AddPipelineFlags(cmd.Flags())

	cmd.AddCommand(commands.NewUpdateCmd(cli.globals))
	cmd.AddCommand(commands.NewShowCmd(cli.globals))
	cmd.AddCommand(commands.NewWatchCmd(cli.globals))

	return cmd
}
