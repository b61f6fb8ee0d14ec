package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/haste-cli/internal/core/services"
	"github.com/kamal-hamza/haste-cli/pkg/ui"
)

var (
	postRaw  bool
	postCopy bool
)

// postCmd represents the post command
var postCmd = &cobra.Command{
	Use:   "post <input-path> [server] [raw]",
	Short: "Create a document from a file's contents",
	Long: `Create a hastebin document from a local file and print its URL.

Any third argument, whatever its text, selects the raw URL form.

Examples:
  haste post notes.txt
  haste post notes.txt https://hasteb.in raw
  haste post main.go --raw --copy`,
	Args: cobra.ArbitraryArgs,
	RunE: runPost,
}

func init() {
	postCmd.Flags().BoolVarP(&postRaw, "raw", "r", false, "Output a raw URL")
	postCmd.Flags().BoolVarP(&postCopy, "copy", "c", false, "Copy the URL to the clipboard")
}

func runPost(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	out := cmd.OutOrStdout()

	resp, err := postService.Execute(ctx, services.PostRequest{Args: args, Raw: postRaw})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, resp.URL)

	if postCopy || appConfig.CopyURL {
		// Clipboard failures never fail the post
		if err := appClipboard.WriteAll(resp.URL); err != nil {
			logger.Printf("clipboard: %v", err)
			fmt.Fprintln(cmd.ErrOrStderr(), ui.FormatMuted("(Clipboard access failed, please copy manually)"))
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.FormatMuted("(Copied to clipboard)"))
		}
	}

	return nil
}
