package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/haste-cli/internal/adapters/clipboard"
	"github.com/kamal-hamza/haste-cli/internal/core/domain"
	"github.com/kamal-hamza/haste-cli/pkg/ui"
)

var configInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the haste configuration",
	Long: `Display the effective configuration and where it is loaded from.

Use --init to write a config file with default values if none exists.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configInit, "init", false, "Write a default config file if none exists")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if configInit {
		if appConfigPath == "" {
			return domain.NewUsageError("Could not determine a config path; pass --config.")
		}
		if _, err := os.Stat(appConfigPath); err == nil {
			fmt.Fprintln(out, ui.FormatInfo("Config already exists: "+appConfigPath))
		} else if os.IsNotExist(err) {
			if err := appConfig.Save(appConfigPath); err != nil {
				return domain.Wrap(domain.KindLocalIO, "failed to write config", err)
			}
			fmt.Fprintln(out, ui.FormatSuccess("Config written: "+appConfigPath))
		} else {
			return domain.Wrap(domain.KindLocalIO, "failed to check config", err)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, ui.RenderKeyValue("Path", appConfigPath))
	fmt.Fprintln(out, ui.RenderKeyValue("Default Server", appConfig.DefaultServer))
	fmt.Fprintln(out, ui.RenderKeyValue("Color Theme", appConfig.ColorTheme))
	fmt.Fprintln(out, ui.RenderKeyValue("Highlight Style", appConfig.HighlightStyle))
	fmt.Fprintln(out, ui.RenderKeyValue("Copy URL", strconv.FormatBool(appConfig.CopyURL)))
	if !clipboard.Available() {
		fmt.Fprintln(out, ui.FormatWarning("No clipboard backend found; --copy will not work"))
	}
	return nil
}
