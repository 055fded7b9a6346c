package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lazyseq/internal/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "validate <pipeline.yaml>",
		Short:         "Check a pipeline description without evaluating it",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.Load(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid pipeline", err)
			}
			if _, err := p.Build(); err != nil {
				return WrapExitError(ExitCommandError, "invalid pipeline", err)
			}
			newLogger(rootOpts, cmd.ErrOrStderr()).Debug("pipeline validated", "file", args[0])
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "pipeline %s is valid (%d steps)\n", p.Name, len(p.Steps))
			return err
		},
	}
}
