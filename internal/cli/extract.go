package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/ivrprompts/internal/adapters/cli"
	"github.com/example/ivrprompts/internal/wire"
)

// ExtractCmd returns the extract command
func ExtractCmd() *cobra.Command {
	var (
		campaign    string
		all         bool
		missingOnly bool
	)

	cmd := &cobra.Command{
		Use:   "extract [flow.xml]",
		Short: "List the prompts of a flow or campaign",
		Long: `Extract every prompt cited by an IVR flow file and report its type, status
and audio file. With --campaign, every flow associated with the campaign is extracted.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if campaign == "" && len(args) != 1 {
				return fmt.Errorf("requires a flow file or --campaign")
			}
			if campaign != "" && len(args) != 0 {
				return fmt.Errorf("cannot combine a flow file with --campaign")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cliadapter.ExtractOptions{All: all, MissingOnly: missingOnly}
			adapter := wire.PromptAdapterWithOutput(cmd.OutOrStdout())

			if campaign != "" {
				_, err := adapter.ExtractCampaign(cmd.Context(), campaign, opts)
				return err
			}
			_, err := adapter.Extract(cmd.Context(), args[0], opts)
			return err
		},
	}

	cmd.Flags().StringVarP(&campaign, "campaign", "c", "", "Extract every flow of this campaign")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Print every citation instead of one row per prompt")
	cmd.Flags().BoolVar(&missingOnly, "missing-only", false, "Print only prompts whose audio file is missing")

	return cmd
}
