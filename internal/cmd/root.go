package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Iron-Ham/factors/internal/config"
	"github.com/Iron-Ham/factors/internal/errors"
	"github.com/Iron-Ham/factors/internal/factor"
	"github.com/Iron-Ham/factors/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "factors",
	Short: "Print the in-list factors of a fixed list of integers",
	Long: `factors prints, for every member of the list [10, 5, 2, 20], the other
members that divide it exactly:

  {10: [5, 2], 5: [], 2: [], 20: [10, 5, 2]}

Configuration only controls how the program runs (zero divisor policy and
debug logging); the list itself is fixed.`,
	Args:          usageArgs(cobra.NoArgs),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFactors,
}

// configReadErr holds a failure from reading the config file during
// initConfig, which cannot return errors itself.
var configReadErr error

// Execute runs the root command against the process arguments
func Execute() error {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the command tree for args, writing command output to stdout
// and cobra diagnostics to stderr.
func Run(args []string, stdout, stderr io.Writer) error {
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.NewUsageError(err)
	})

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/factors/config.yaml)")
}

// usageArgs marks positional argument failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return errors.NewUsageError(err)
		}
		return nil
	}
}

// configFlag returns the value of --config, or "" when unset.
func configFlag() string {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	return cfgFile
}

// referenceTerms is the subject list the command factors.
func referenceTerms() []int {
	return []int{10, 5, 2, 20}
}

func initConfig() {
	configReadErr = nil

	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	cfgFile := configFlag()
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("FACTORS")
	// e.g. FACTORS_FACTOR_ZERO_POLICY for factor.zero_policy
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing default config file is fine; a broken or missing explicit one is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configReadErr = errors.NewConfigError("failed to read config",
				fmt.Errorf("%w: %w", errors.ErrConfigUnreadable, err)).WithPath(cfgFile)
		}
	}
}

// loadConfig returns the validated configuration or the reason it is unusable.
func loadConfig() (*config.Config, error) {
	if configReadErr != nil {
		return nil, configReadErr
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.NewConfigError("invalid configuration", err).WithPath(viper.ConfigFileUsed())
	}
	return cfg, nil
}

func runFactors(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	policy, err := factor.ParseZeroPolicy(cfg.Factor.ZeroPolicy)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	finder := factor.New(referenceTerms(),
		factor.WithZeroPolicy(policy),
		factor.WithLogger(logger),
	)
	return finder.Render(cmd.OutOrStdout())
}

// newLogger builds the debug logger, or a no-op logger when logging is disabled.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}

	logger, err := logging.NewLogger(
		cfg.Logging.ResolveDir(),
		logging.ParseLevel(cfg.Logging.Level),
		cfg.Logging.Rotation(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to set up logging")
	}
	return logger, nil
}
