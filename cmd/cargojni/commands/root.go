// Package commands implements the CLI commands for cargojni.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"go.trai.ch/cargojni/internal/app"
	"go.trai.ch/cargojni/internal/build"
	"go.trai.ch/cargojni/internal/core/domain"
)

// CLI represents the command line interface for cargojni.
type CLI struct {
	app        Application
	logger     LevelSetter
	rootCmd    *cobra.Command
	configPath string
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, configPath string, targets []string) error
	Targets(standalone bool) []domain.Toolchain
	GenerateToolchains(ctx context.Context, configPath string) (int, error)
	GenerateLinkerWrapper(configPath string) ([]string, error)
	Status(configPath string) ([]app.TargetStatus, error)
	Clean(configPath string, opts app.CleanOptions) error
}

// LevelSetter configures log output from the global flags.
type LevelSetter interface {
	SetLevel(level slog.Level)
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application, logger LevelSetter) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cargojni",
		Short:         "Cross-compile Rust libraries for Android and the desktop",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "",
		"Path to "+domain.ConfigFileName+" or a directory to search from (default: current directory)")
	flags.Bool("info", false, "Log informational messages")
	flags.Bool("debug", false, "Log debug messages")
	flags.Bool("json", false, "Log as JSON")
	rootCmd.MarkFlagsMutuallyExclusive("info", "debug")
	rootCmd.PersistentPreRun = c.configureLogging

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newTargetsCmd())
	rootCmd.AddCommand(c.newToolchainsCmd())
	rootCmd.AddCommand(c.newLinkerWrapperCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) configureLogging(cmd *cobra.Command, _ []string) {
	info, _ := cmd.Flags().GetBool("info")
	debug, _ := cmd.Flags().GetBool("debug")
	jsonOut, _ := cmd.Flags().GetBool("json")

	switch {
	case debug:
		c.logger.SetLevel(slog.LevelDebug)
	case info:
		c.logger.SetLevel(slog.LevelInfo)
	}
	if jsonOut {
		c.logger.SetJSON(true)
	}
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
