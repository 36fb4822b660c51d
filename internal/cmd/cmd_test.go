package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Iron-Ham/factors/internal/config"
	"github.com/Iron-Ham/factors/internal/errors"
	"github.com/spf13/viper"
)

// executeCommand runs the root command with args against a clean viper
// registry and an empty config directory, returning captured output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := rootCmd.PersistentFlags().Set("config", ""); err != nil {
		t.Fatalf("failed to reset --config: %v", err)
	}

	buf := new(bytes.Buffer)
	err := Run(args, buf, buf)
	return buf.String(), err
}

// writeConfig writes a YAML config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "factors" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "factors")
	}

	expectedCmds := []string{"config"}
	cmdMap := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		cmdMap[c.Name()] = true
	}
	for _, expected := range expectedCmds {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}
}

func TestRunFactors(t *testing.T) {
	output, err := executeCommand(t)
	if err != nil {
		t.Fatalf("factors failed: %v", err)
	}

	want := "{10: [5, 2], 5: [], 2: [], 20: [10, 5, 2]}"
	if output != want {
		t.Errorf("output = %q, want %q", output, want)
	}
}

func TestRunFactors_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"positional arguments", []string{"1", "2"}},
		{"unknown flag", []string{"--verbose"}},
		{"config subcommand argument", []string{"config", "shw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			if err == nil {
				t.Fatal("expected a usage error")
			}
			if !errors.Is(err, &errors.UsageError{}) {
				t.Errorf("error type = %T (%v), want *UsageError", err, err)
			}
			if !errors.IsUserFacing(err) {
				t.Errorf("usage error should be user facing: %v", err)
			}
		})
	}
}

func TestRunFactors_SkipPolicyFromEnv(t *testing.T) {
	t.Setenv("FACTORS_FACTOR_ZERO_POLICY", "skip")

	output, err := executeCommand(t)
	if err != nil {
		t.Fatalf("factors failed: %v", err)
	}
	if output != "{10: [5, 2], 5: [], 2: [], 20: [10, 5, 2]}" {
		t.Errorf("output = %q", output)
	}
}

func TestRunFactors_InvalidConfig(t *testing.T) {
	t.Run("invalid zero policy from env", func(t *testing.T) {
		t.Setenv("FACTORS_FACTOR_ZERO_POLICY", "ignore")

		output, err := executeCommand(t)
		if err == nil {
			t.Fatal("expected error for invalid zero policy")
		}
		if !errors.Is(err, &errors.ConfigError{}) {
			t.Errorf("error type = %T, want *ConfigError", err)
		}
		if !strings.Contains(err.Error(), "factor.zero_policy") {
			t.Errorf("error should name the field: %v", err)
		}
		if output != "" {
			t.Errorf("nothing should be printed on error, got %q", output)
		}
	})

	t.Run("unparseable config file", func(t *testing.T) {
		path := writeConfig(t, "factor: [unterminated\n")

		_, err := executeCommand(t, "--config", path)
		if err == nil {
			t.Fatal("expected error for malformed config")
		}
		var cfgErr *errors.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("error type = %T, want *ConfigError", err)
		}
		if cfgErr.Path != path {
			t.Errorf("Path = %q, want %q", cfgErr.Path, path)
		}
		if !errors.Is(err, errors.ErrConfigUnreadable) {
			t.Errorf("error should wrap ErrConfigUnreadable: %v", err)
		}
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.yaml")

		if _, err := executeCommand(t, "--config", path); err == nil {
			t.Fatal("expected error for missing explicit config file")
		}
	})
}

func TestRunFactors_Logging(t *testing.T) {
	logDir := t.TempDir()
	path := writeConfig(t, fmt.Sprintf("logging:\n  enabled: true\n  level: debug\n  dir: %q\n", logDir))

	output, err := executeCommand(t, "--config", path)
	if err != nil {
		t.Fatalf("factors failed: %v", err)
	}
	if output != "{10: [5, 2], 5: [], 2: [], 20: [10, 5, 2]}" {
		t.Errorf("logging must not change stdout, got %q", output)
	}

	content, err := os.ReadFile(filepath.Join(logDir, "factors.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	for _, want := range []string{`"msg":"factor found"`, `"phase":"compute"`, `"phase":"render"`} {
		if !strings.Contains(string(content), want) {
			t.Errorf("log file missing %s:\n%s", want, content)
		}
	}
}

func TestConfigShow(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		output, err := executeCommand(t, "config", "show")
		if err != nil {
			t.Fatalf("config show failed: %v", err)
		}
		for _, want := range []string{"(none - using defaults)", "zero_policy: error", "max_size_mb: 10"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q:\n%s", want, output)
			}
		}
	})

	t.Run("from file", func(t *testing.T) {
		path := writeConfig(t, "factor:\n  zero_policy: skip\n")

		output, err := executeCommand(t, "config", "--config", path)
		if err != nil {
			t.Fatalf("config failed: %v", err)
		}
		if !strings.Contains(output, path) {
			t.Errorf("output should name the config file:\n%s", output)
		}
		if !strings.Contains(output, "zero_policy: skip") {
			t.Errorf("output should show the file's zero policy:\n%s", output)
		}
	})
}

func TestConfigInit(t *testing.T) {
	output, err := executeCommand(t, "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	configFile := config.ConfigFile()
	if !strings.Contains(output, configFile) {
		t.Errorf("output should mention %s: %q", configFile, output)
	}

	// The generated file must load cleanly and match the defaults.
	viper.Reset()
	config.SetDefaults()
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("generated config is not readable: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("generated config does not validate: %v", err)
	}
	if *cfg != *config.Default() {
		t.Errorf("generated config = %+v, want defaults", cfg)
	}

	// A second init must refuse to overwrite. executeCommand would switch
	// to a fresh config dir, so run the command directly.
	viper.Reset()
	err = Run([]string{"config", "init"}, new(bytes.Buffer), new(bytes.Buffer))
	if !errors.Is(err, errors.ErrConfigExists) {
		t.Errorf("second init error = %v, want ErrConfigExists", err)
	}
}

func TestConfigInit_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "factors.yaml")

	output, err := executeCommand(t, "config", "init", "--config", path)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(output, path) {
		t.Errorf("output should mention %s: %q", path, output)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not written to --config path: %v", err)
	}
	if _, err := os.Stat(config.ConfigFile()); !os.IsNotExist(err) {
		t.Errorf("default config file should not be written, stat err = %v", err)
	}

	_, err = executeCommand(t, "config", "init", "--config", path)
	if !errors.Is(err, errors.ErrConfigExists) {
		t.Errorf("second init error = %v, want ErrConfigExists", err)
	}
}

func TestConfigPath(t *testing.T) {
	output, err := executeCommand(t, "config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	for _, want := range []string{"not created", "Search paths:", "FACTORS_"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestReferenceTerms(t *testing.T) {
	terms := referenceTerms()
	terms[0] = 0
	if referenceTerms()[0] != 10 {
		t.Error("referenceTerms should return a fresh slice")
	}
}
