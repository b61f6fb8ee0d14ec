package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// helpCmd replaces cobra's default help command with the plain usage text
var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Display the list of commands",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printHelp(cmd.OutOrStdout())
	},
}

const helpText = `haste Commands
<required>, [optional]

help
Display this message.

about
Display project metadata and README.

get <key> [server] [output-path]
Retrieve a hastebin document's content, and optionally write it to a file.
<key> - The document's URL or key.
[server] - The hastebin server to retrieve data from. Required when <key> is not a URL; skipped when it is.
[output-path] - The output file's path.
--highlight, -H - Syntax-highlight the document in the terminal.
--lang, -l - Language or filename used to pick the highlighter.

post <input-path> [server] [raw]
Create a hastebin document from a specified file's contents.
<input-path> - The input file's path.
[server] - The hastebin server to post to. Defaults to %s
[raw] - Whether to output a raw URL. If the argument is specified, it's interpreted as positive. Defaults to negative.
--raw, -r - Output a raw URL.
--copy, -c - Copy the URL to the clipboard.

version
Display version and build information.

config
Display the configuration. Use --init to write a default config file.

Global flags: --config <path>, --verbose
Default server: %s
`

func printHelp(w io.Writer) {
	fmt.Fprintf(w, helpText, defaultServer(), defaultServer())
}
