package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AI2HU/mongoping/internal/config"
	"github.com/AI2HU/mongoping/internal/logger"
)

// ErrCheckFailed is returned when --fail-exit-code is set and the check fails.
// The failure line has already been printed.
var ErrCheckFailed = errors.New("connection check failed")

var (
	cfgFile      string
	envFile      string
	logLevel     string
	timeout      time.Duration
	failExitCode bool
	cfg          *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mongoping",
	Short: "MongoDB connectivity smoke test",
	Long: `Mongoping reads a connection string from MONGODB_URI (or a .env file),
opens a client and runs a single isMaster command against the admin database.

It prints "MongoDB connection successful!" or "MongoDB connection failed: <error>".
A failed check still exits 0 unless --fail-exit-code is given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logLevel
		if level == "" {
			level = os.Getenv(config.EnvLogLevel)
		}
		logger.Init(logger.ParseLogLevel(level), cmd.ErrOrStderr())

		if err := config.LoadDotEnv(envFile, envFile != ""); err != nil {
			return err
		}

		// The wizard collects its own settings
		if cmd.Name() == "init" {
			return nil
		}

		var err error
		cfg, err = loadConfig(cmd)
		return err
	},
	RunE: runCheck,
}

// ExecuteContext runs the root command with ctx
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mongoping/config.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default is ./.env if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warning, error (default from "+config.EnvLogLevel+" or info)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "server selection timeout (default 5s)")
	rootCmd.Flags().BoolVar(&failExitCode, "fail-exit-code", false, "exit with status 1 when the check fails")

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig layers defaults, the optional config file, the environment
// (already including the dotenv file) and finally flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c := config.DefaultConfig()

	path := cfgFile
	if path == "" {
		path = config.GetConfigPath()
	}
	switch {
	case config.Exists(path):
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		c = loaded
		logger.Debug("loaded config from %s", path)
	case cfgFile != "":
		return nil, fmt.Errorf("configuration file not found: %s", cfgFile)
	}

	if err := config.FromEnv(c); err != nil {
		return nil, fmt.Errorf("failed to derive connection string: %w", err)
	}

	if cmd.Flags().Changed("timeout") {
		if err := config.ValidateTimeout(timeout); err != nil {
			return nil, fmt.Errorf("invalid --timeout: %w", err)
		}
		c.ServerSelectionTimeout = timeout
	}

	// The driver reports malformed URIs itself, so this is advisory
	if err := c.Validate(); err != nil {
		logger.Warning("%v", err)
	}

	return c, nil
}
