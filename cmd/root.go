package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/siren-grabber/internal/app"
	"github.com/oshokin/siren-grabber/internal/config"
	"github.com/oshokin/siren-grabber/internal/errkind"
	"github.com/oshokin/siren-grabber/internal/logger"
	siren_service "github.com/oshokin/siren-grabber/internal/service/siren"
	"github.com/oshokin/siren-grabber/internal/version"
)

const (
	flagConfig          = "config"
	flagAll             = "all"
	flagAlbumID         = "album-id"
	flagSongID          = "song-id"
	flagPath            = "path"
	flagSpeedLimit      = "speed-limit"
	flagContinueOnError = "continue-on-error"
)

// errUnexpectedArguments indicates positional arguments, which the grabber does not take.
var errUnexpectedArguments = errors.New("unexpected arguments")

// rootOptions holds the state shared by the root command and its subcommands.
type rootOptions struct {
	// configFilename is the value of --config.
	configFilename string
	// cfg is loaded before any command runs.
	cfg *config.Config
}

// Execute runs the CLI and exits with a code derived from the failure kind.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	err := newRootCmd().ExecuteContext(ctx)
	code := exitCode(ctx, err)

	stop()

	if err != nil {
		logger.Errorf(ctx, "%v", err)

		if errkind.Is(err, errkind.KindUsage) {
			logger.Info(ctx, "Run 'siren-grabber --help' for usage.")
		}
	}

	_ = logger.Logger().Sync()

	os.Exit(code) //nolint:gocritic // Deferred calls are done by now.
}

// exitCode maps the command result to a process exit code.
// A canceled context wins: a transcoder killed by a signal reports a transcode failure.
func exitCode(ctx context.Context, err error) int {
	if err == nil {
		return errkind.ExitCodeOK
	}

	if ctx.Err() != nil {
		return errkind.ExitCodeInterrupted
	}

	return errkind.ExitCode(err)
}

func newRootCmd() *cobra.Command {
	opts := new(rootOptions)

	rootCmd := &cobra.Command{
		Use:   "siren-grabber {--all | --album-id ID | --song-id ID} [flags]",
		Short: "Download the Monster Siren catalog as tagged FLAC files.",
		Long: `Siren Grabber mirrors the Monster Siren music catalog to disk.
It can resolve:
- The whole catalog (--all)
- A single album (--album-id)
- A single song (--song-id)

Every song becomes '<path>/<Album Name>/<Song Name>.flac' with its title, album, artists,
lyrics and front cover embedded. Finished files are skipped on the next run.
Requires ffmpeg.`,
		Version:           version.Short(),
		Args:              noArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: opts.initConfig,
		RunE:              opts.runRoot,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errkind.Usage("parse flags", err)
	})

	rootCmd.PersistentFlags().StringVarP(
		&opts.configFilename,
		flagConfig,
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmdFlags := rootCmd.Flags()

	rootCmdFlags.Bool(
		flagAll,
		false,
		"resolve every album of the catalog, ignoring --album-id and --song-id.")

	rootCmdFlags.Uint64P(
		flagAlbumID,
		"a",
		0,
		"resolve a single album by its id.")

	rootCmdFlags.Uint64P(
		flagSongID,
		"s",
		0,
		"resolve a single song by its id.")

	rootCmdFlags.StringP(
		flagPath,
		"p",
		config.DefaultOutputPath,
		"directory to save albums to (the path will be created if it doesn’t exist).")

	rootCmdFlags.String(
		flagSpeedLimit,
		"",
		"set download speed limit, for example: 500KB, 1MB, 1.5MB.")

	rootCmdFlags.Bool(
		flagContinueOnError,
		false,
		"keep resolving the remaining albums after one of them fails.")

	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML.",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.ValidateConfig(opts.cfg); err != nil {
				return errkind.Usage("validate configuration", err)
			}

			data, err := config.MarshalYAML(opts.cfg)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errkind.Usage(cmd.Name(), fmt.Errorf("%w: %v", errUnexpectedArguments, args))
	}

	return nil
}

func (o *rootOptions) initConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(o.configFilename)
	if err != nil {
		return errkind.Usage("load configuration", err)
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	o.cfg = cfg

	return nil
}

// runRoot validates the selectors before anything touches the network.
func (o *rootOptions) runRoot(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	scope, err := scopeFromFlags(flags)
	if err != nil {
		return err
	}

	if err = bindFlagsToConfig(flags, o.cfg); err != nil {
		return errkind.Usage("parse flags", err)
	}

	logger.SetLevel(o.cfg.ParsedLogLevel)

	return app.ExecuteRootCommand(cmd.Context(), o.cfg, scope)
}

func scopeFromFlags(flags *pflag.FlagSet) (siren_service.Scope, error) {
	all, _ := flags.GetBool(flagAll)
	albumID, _ := flags.GetUint64(flagAlbumID)
	songID, _ := flags.GetUint64(flagSongID)

	return siren_service.ParseScope(all, albumID, songID)
}

// bindFlagsToConfig overrides configuration values with explicitly set flags and validates the result.
// The --path default applies only when the configuration file leaves output_path empty.
func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup(flagPath); flag != nil && (flag.Changed || cfg.OutputPath == "") {
		cfg.OutputPath, _ = flags.GetString(flagPath)
	}

	if flag := flags.Lookup(flagSpeedLimit); flag != nil && flag.Changed {
		cfg.DownloadSpeedLimit, _ = flags.GetString(flagSpeedLimit)
	}

	if flag := flags.Lookup(flagContinueOnError); flag != nil && flag.Changed {
		cfg.ContinueOnError, _ = flags.GetBool(flagContinueOnError)
	}

	return config.ValidateConfig(cfg)
}
