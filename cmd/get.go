package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/haste-cli/internal/core/services"
	"github.com/kamal-hamza/haste-cli/pkg/ui"
)

var (
	getHighlight bool
	getLanguage  string
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <key-or-url> [server] [output-path]",
	Short: "Retrieve a document and optionally write it to a file",
	Long: `Retrieve a hastebin document by key, document URL or raw URL.

When <key-or-url> is a URL its server is used and the [server] slot is
skipped, so the next argument is the output path.

Examples:
  haste get https://hasteb.in/raw/abc123
  haste get https://hasteb.in/abc123 notes.txt
  haste get abc123 https://hasteb.in notes.txt
  haste get https://hasteb.in/abc123.go --highlight`,
	Args: cobra.ArbitraryArgs,
	RunE: runGet,
}

func init() {
	getCmd.Flags().BoolVarP(&getHighlight, "highlight", "H", false, "Syntax-highlight the document in the terminal")
	getCmd.Flags().StringVarP(&getLanguage, "lang", "l", "", "Language or filename for --highlight (defaults to the key)")
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	out := cmd.OutOrStdout()

	resp, err := getService.Execute(ctx, services.GetRequest{Args: args})
	if err != nil {
		return err
	}

	if !resp.Found {
		fmt.Fprintln(out, "Document not found.")
		return nil
	}

	body := resp.Content
	if getHighlight {
		hint := getLanguage
		if hint == "" {
			hint = resp.Key
		}
		body = ui.Highlight(body, hint, appConfig.HighlightStyle)
	}
	fmt.Fprintln(out, body)

	if resp.OutputPath == "" {
		return nil
	}

	if err := getService.Export(ctx, resp.OutputPath, resp.Content); err != nil {
		return err
	}
	fmt.Fprintln(out, ui.FormatSuccess("Successfully outputted content into "+resp.OutputPath))

	return nil
}
