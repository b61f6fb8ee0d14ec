package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/haste-cli/internal/core/services"
	"github.com/kamal-hamza/haste-cli/pkg/ui"
)

const (
	appName        = "haste"
	appDescription = "A command-line client for the hastebin paste-sharing service."
	appRepository  = "https://github.com/kamal-hamza/haste-cli"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Display project metadata and README",
	Args:  cobra.ArbitraryArgs,
	RunE:  runAbout,
}

func runAbout(cmd *cobra.Command, args []string) error {
	about, err := aboutService.Execute(getContext(), services.About{
		Name:        appName,
		Description: appDescription,
		Version:     Version,
		Repository:  appRepository,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.FormatTitle(about.Name))
	fmt.Fprintln(out, about.Description)
	fmt.Fprintln(out, ui.RenderKeyValue("Version", about.Version))
	fmt.Fprintln(out, ui.RenderKeyValue("Repository", about.Repository))
	fmt.Fprintln(out, about.Readme)
	return nil
}
