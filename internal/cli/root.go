package cli

import (
	"fmt"
	"os"
	"regexp"

	"github.com/narigama/gen-features/internal/branding"
	"github.com/narigama/gen-features/internal/buildinfo"
	"github.com/narigama/gen-features/internal/config"
	"github.com/narigama/gen-features/internal/features"
	"github.com/narigama/gen-features/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	build  buildinfo.Info
	logger = zap.NewNop()

	// negativeNumber matches tokens argparse would take as positionals.
	negativeNumber = regexp.MustCompile(`^-\d+$|^-\d*\.\d+$`)
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <year>",
	Short: branding.Description(),
	Long: `Print the Cargo [features] boilerplate for one puzzle year: a "default"
list enabling every day y<year>d01..y<year>d25, followed by one empty
feature per day. Paste the output into Cargo.toml.

The year is used verbatim; it is not checked to be a number. Negative
numbers are taken as years. Put any other token starting with "-", or one
that names a subcommand, after "--":

  ` + branding.CLIName() + ` -- version`,
	Example:       "  " + branding.CLIName() + " 2022 >> Cargo.toml",
	Args:          yearArg,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runFeatures,
}

// yearArg requires exactly one positional year token. On failure the usage
// goes to stderr so stdout stays empty.
func yearArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		cmd.PrintErrln(cmd.UsageString())
		return err
	}
	return nil
}

func runFeatures(cmd *cobra.Command, args []string) error {
	year := args[0]
	logger.Debug("rendering features",
		zap.String("year", year),
		zap.Int("days", features.LastDay-features.FirstDay+1))
	return features.Write(cmd.OutOrStdout(), year)
}

// setupLogger loads user settings and builds the logger. Bad settings are
// reported and replaced by defaults; they never stop generation.
func setupLogger(cmd *cobra.Command) error {
	config.Load()

	level, levelOK := config.Effective(config.KeyLogLevel)
	format, formatOK := config.Effective(config.KeyLogFormat)

	l, err := logging.New(logging.Options{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	logger = l

	if !levelOK {
		logger.Warn("ignoring invalid setting", zap.String("key", config.KeyLogLevel), zap.String("value", config.Get(config.KeyLogLevel)))
	}
	if !formatOK {
		logger.Warn("ignoring invalid setting", zap.String("key", config.KeyLogFormat), zap.String("value", config.Get(config.KeyLogFormat)))
	}

	if _, err := os.Stat(config.FilePath()); err == nil {
		res, err := config.ValidateFile(config.FilePath())
		switch {
		case err != nil:
			logger.Warn("could not validate config file", zap.String("path", config.FilePath()), zap.Error(err))
		case !res.Valid:
			for _, issue := range res.Issues {
				logger.Warn("config file issue", zap.String("path", config.FilePath()), zap.Stringer("issue", issue))
			}
		}
	}
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	build = buildinfo.New(version, commit, date)
	return run(os.Args[1:])
}

func run(args []string) error {
	rootCmd.SetArgs(positionalYear(args))
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		return err
	}
	return nil
}

// positionalYear stops a lone negative number from being parsed as a
// shorthand flag.
func positionalYear(args []string) []string {
	if len(args) == 1 && negativeNumber.MatchString(args[0]) {
		return []string{"--", args[0]}
	}
	return args
}
