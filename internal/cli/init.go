package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/ivrprompts/internal/config"
	"github.com/example/ivrprompts/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the ivrprompts config and database",
		Long: `Write .ivrprompts/config.yaml in the current directory (if missing) and
initialize the prompt database with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(os.Getwd, cmd.OutOrStdout())
		},
	}
}

func runInit(getwd func() (string, error), out io.Writer) error {
	dir, err := getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if _, err := os.Stat(config.Path(dir)); errors.Is(err, fs.ErrNotExist) {
		if err := config.SaveConfig(dir, cfg); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Fprintf(out, "✓ Config written to %s\n", config.Path(dir))
	} else {
		fmt.Fprintf(out, "✓ Using existing config at %s\n", config.Path(dir))
	}

	fmt.Fprintf(out, "Initializing database at %s\n", cfg.DBPath)
	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer conn.Close()

	fmt.Fprintln(out, "✓ Database initialized successfully")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintf(out, "  ivrprompts campaign import %s\n", cfg.CampaignCSV)
	fmt.Fprintln(out, "  ivrprompts extract <flow.xml>")

	return nil
}
