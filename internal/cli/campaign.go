package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/ivrprompts/internal/wire"
)

// CampaignCmd returns the campaign command
func CampaignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaign",
		Short: "Manage campaign to flow associations",
	}

	cmd.AddCommand(campaignImportCmd())
	cmd.AddCommand(campaignListCmd())
	cmd.AddCommand(campaignShowCmd())

	return cmd
}

func campaignImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [csv]",
		Short: "Import campaign associations from a CSV file",
		Long: `Replace the stored campaign associations with the rows of a CSV file that has
"Campaign(s)" and "IVR Associated with Campaign(s)" columns. Defaults to campaign_csv from the config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := wire.Config().CampaignCSV
			if len(args) == 1 {
				path = args[0]
			}
			_, err := wire.CampaignAdapterWithOutput(cmd.OutOrStdout()).Import(cmd.Context(), path)
			return err
		},
	}
}

func campaignListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List campaigns with at least one available flow",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.CampaignAdapterWithOutput(cmd.OutOrStdout()).List(cmd.Context())
			return err
		},
	}
}

func campaignShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [campaign]",
		Short: "Show the flows of a campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.CampaignAdapterWithOutput(cmd.OutOrStdout()).Show(cmd.Context(), args[0])
			return err
		},
	}
}
