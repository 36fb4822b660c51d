package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Iron-Ham/factors/internal/config"
	"github.com/Iron-Ham/factors/internal/errors"
	"github.com/Iron-Ham/factors/internal/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or create the factors configuration",
	Long: `View or create the factors configuration.

Without arguments, displays the current configuration.`,
	Args: usageArgs(cobra.NoArgs),
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration as YAML",
	Args:  usageArgs(cobra.NoArgs),
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long: `Create a default config file with all available options.

The file is written to the --config path when given, otherwise to
~/.config/factors/config.yaml. An existing file is never overwritten.`,
	Args:  usageArgs(cobra.NoArgs),
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	Args:  usageArgs(cobra.NoArgs),
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintln(out, styles.Muted.Render("# config file: "+used))
	} else {
		fmt.Fprintln(out, styles.Muted.Render("# config file: (none - using defaults)"))
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to encode configuration")
	}
	_, err = out.Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configFile := configFlag()
	if configFile == "" {
		configFile = config.ConfigFile()
	}

	if _, err := os.Stat(configFile); err == nil {
		return errors.NewConfigError("refusing to overwrite", errors.ErrConfigExists).WithPath(configFile)
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return errors.Wrapf(err, "failed to create config directory %s", filepath.Dir(configFile))
	}

	data, err := yaml.Marshal(config.Default())
	if err != nil {
		return errors.Wrap(err, "failed to encode default configuration")
	}

	header := "# factors configuration\n" +
		"# factor.zero_policy: error | skip\n" +
		"# logging.level: debug | info | warn | error\n"
	if err := os.WriteFile(configFile, append([]byte(header), data...), 0644); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", configFile)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "Active config: %s\n", used)
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", config.ConfigFile())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Heading.Render("Search paths:"))
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. ./config.yaml (current directory)\n")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Environment variables: FACTORS_* (e.g., FACTORS_FACTOR_ZERO_POLICY)")

	return nil
}
