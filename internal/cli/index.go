package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/ivrprompts/internal/wire"
)

// IndexCmd returns the index command
func IndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Index the prompts of every flow for cross-flow analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.PromptAdapterWithOutput(cmd.OutOrStdout()).Index(cmd.Context())
			return err
		},
	}
}

// DuplicatesCmd returns the duplicates command
func DuplicatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicates",
		Short: "List prompts cited from more than one flow or module",
		Long:  `Report prompts that appear in more than one flow/module location. Run "ivrprompts index" first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.PromptAdapterWithOutput(cmd.OutOrStdout()).Duplicates(cmd.Context())
			return err
		},
	}
}
