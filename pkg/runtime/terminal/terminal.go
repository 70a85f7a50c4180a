package terminal

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/de-tools/itinerary-diff/pkg/runtime/terminal/commands"
	"github.com/de-tools/itinerary-diff/pkg/services/config"
	"github.com/de-tools/itinerary-diff/pkg/services/itinerary"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CLI represents the command-line interface
type CLI struct {
	extractor  *itinerary.Extractor
	viper      *viper.Viper
	cfg        *config.Config
	configPath string
	errOutput  io.Writer
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output    io.Writer
	ErrOutput io.Writer
	Args      []string
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}

	cli := &CLI{
		extractor: itinerary.NewExtractor(),
		viper:     config.New(),
		cfg:       &config.Config{},
		errOutput: opts.ErrOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.ErrOutput)
	if opts.Args != nil {
		cli.rootCmd.SetArgs(opts.Args)
	}
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "itinerary-diff",
		Short:             "Compare itineraries of two flight search responses",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.setup,
	}

	cmd.PersistentFlags().StringVarP(&cli.configPath, "config", "c", "", "Path to a configuration file")
	cmd.PersistentFlags().String("log-level", "warn", "Log level (trace, debug, info, warn, error)")
	_ = cli.viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(commands.NewCompareCmd(cli.viper, cli.cfg, cli.extractor))
	cmd.AddCommand(commands.NewInspectCmd(cli.cfg, cli.extractor))

	return cmd
}

// setup loads the configuration and attaches a logger to the command context.
func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	envErr := godotenv.Load()

	cfg, err := config.Load(cli.viper, cli.configPath)
	if err != nil {
		return err
	}
	*cli.cfg = *cfg

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := zerolog.New(cli.errOutput).With().Timestamp().Logger().Level(level)
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Warn().Err(envErr).Msg("failed to load .env file")
	}

	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}
