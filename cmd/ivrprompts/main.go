package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/ivrprompts/internal/cli"
	"github.com/example/ivrprompts/internal/version"
	"github.com/example/ivrprompts/internal/wire"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "ivrprompts",
		Short:   "ivrprompts - prompt inventory for IVR flow exports",
		Version: version.String(),
		Long: `ivrprompts extracts the audio prompts cited by IVR flow XML exports,
classifies them as in use, unused, enabled or disabled, and checks them against the
recorded audio files.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			wire.SetVerbose(verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ExtractCmd())
	rootCmd.AddCommand(cli.CampaignCmd())
	rootCmd.AddCommand(cli.IndexCmd())
	rootCmd.AddCommand(cli.DuplicatesCmd())

	err := rootCmd.Execute()
	wire.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
