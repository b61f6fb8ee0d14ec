package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kamal-hamza/haste-cli/internal/adapters/clipboard"
	"github.com/kamal-hamza/haste-cli/internal/adapters/repository"
	"github.com/kamal-hamza/haste-cli/internal/adapters/transport"
	"github.com/kamal-hamza/haste-cli/internal/core/domain"
	"github.com/kamal-hamza/haste-cli/internal/core/ports"
	"github.com/kamal-hamza/haste-cli/internal/core/services"
	"github.com/kamal-hamza/haste-cli/pkg/config"
	"github.com/kamal-hamza/haste-cli/pkg/ui"
)

var (
	// Configuration
	appConfig      *config.Config
	appConfigPath  string
	configPathFlag string
	verbose        bool
	logger         = log.New(io.Discard, "haste: ", 0)

	// Services
	getService   *services.GetService
	postService  *services.PostService
	aboutService *services.AboutService

	// Adapters that tests may replace
	httpClient   *http.Client
	appClipboard ports.Clipboard = clipboard.System{}
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "haste",
	Short: "haste - a command-line client for hastebin",
	Long: ui.StyleTitle.Render("haste") + " - hastebin client\n\n" +
		"Retrieve hastebin documents by key or URL, and create new ones from local files.",
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: initializeApp,
	RunE:              runRoot,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

// Execute runs the command line and exits with a code matching the error kind.
func Execute() {
	if code := run(os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
}

func init() {
	cobra.EnableCaseInsensitive = true

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(aboutCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.InitDefaultHelpCmd()
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		if c == rootCmd {
			printHelp(c.OutOrStdout())
			return
		}
		defaultHelp(c, args)
	})
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return domain.NewUsageError(err.Error())
	})

	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "Path to the config file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log requests to stderr")
}

// run executes args against the command tree and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	reportError(stdout, stderr, err)
	return exitCode(err)
}

// initializeApp loads configuration and wires adapters into services
func initializeApp(cmd *cobra.Command, args []string) error {
	logger.SetOutput(io.Discard)
	if verbose {
		logger.SetOutput(cmd.ErrOrStderr())
	}

	appConfigPath = configPathFlag
	if appConfigPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			logger.Printf("using default config: %v", err)
		}
		appConfigPath = p
	}

	cfg := config.DefaultConfig()
	if appConfigPath != "" {
		loaded, err := config.Load(appConfigPath)
		if err != nil {
			return domain.Wrap(domain.KindLocalIO, "failed to load config", err)
		}
		cfg = loaded
		logger.Printf("config: %s", appConfigPath)
	}
	appConfig = cfg
	ui.SetTheme(cfg.ColorTheme)

	// Initialize adapters
	requester := transport.NewClient(httpClient, logger)
	store := repository.NewFileRepository("")

	// Initialize services
	getService = services.NewGetService(requester, store)
	postService = services.NewPostService(requester, store, cfg.DefaultServer)
	aboutService = services.NewAboutService(store)

	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) > 0 {
		fmt.Fprintf(out, "Unknown command %s.\n", strings.ToLower(args[0]))
	}
	printHelp(out)
	return nil
}

// reportError prints err the way its kind calls for. Usage and resolution
// messages are printed verbatim on stdout.
func reportError(stdout, stderr io.Writer, err error) {
	switch domain.KindOf(err) {
	case domain.KindUsage, domain.KindResolution:
		fmt.Fprintln(stdout, err.Error())
	default:
		fmt.Fprintln(stderr, ui.FormatError(err.Error()))
	}
}

func exitCode(err error) int {
	switch domain.KindOf(err) {
	case domain.KindUsage, domain.KindResolution:
		return 2
	default:
		return 1
	}
}

// resetFlags restores every flag to its default so repeated runs start clean
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// defaultServer returns the configured post server
func defaultServer() string {
	if appConfig != nil && appConfig.DefaultServer != "" {
		return appConfig.DefaultServer
	}
	return domain.DefaultServer
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
