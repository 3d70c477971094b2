package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AI2HU/mongoping/internal/config"
	"github.com/AI2HU/mongoping/internal/db/mongodb"
	"github.com/AI2HU/mongoping/internal/probe"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize mongoping configuration",
	Long:  `Interactive wizard to set up the connection string and timeout, test them and save the configuration.`,
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, FormatHeader("🚀 Welcome to mongoping setup"))
	fmt.Fprintln(out, FormatDim("============================="))
	fmt.Fprintln(out)

	configPath := cfgFile
	if configPath == "" {
		configPath = config.GetConfigPath()
	}
	if config.Exists(configPath) {
		fmt.Fprintf(out, "Configuration file already exists at: %s\n", configPath)
		confirmed, err := promptYesNo(reader, out, "Do you want to overwrite it? (y/N): ")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(out, "Setup cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	defaultURI := os.Getenv(config.EnvURI)
	if defaultURI == "" {
		defaultURI = "mongodb://localhost:27017"
	}
	uri, err := promptWithRetry(reader, out, fmt.Sprintf("Connection URI [%s]: ", probe.Redact(defaultURI)), func(input string) (string, error) {
		if input == "" {
			return defaultURI, nil
		}
		return validateMongoURI(input)
	})
	if err != nil {
		return err
	}
	cfg.URI = uri

	selectionTimeout := cfg.ServerSelectionTimeout
	_, err = promptWithRetry(reader, out, fmt.Sprintf("Server selection timeout [%s]: ", selectionTimeout), func(input string) (string, error) {
		if input == "" {
			return input, nil
		}
		d, err := validateTimeout(input)
		if err != nil {
			return "", err
		}
		selectionTimeout = d
		return input, nil
	})
	if err != nil {
		return err
	}
	cfg.ServerSelectionTimeout = selectionTimeout

	fmt.Fprintln(out, "\n🔌 Testing database connection...")
	res := probe.Run(cmd.Context(), mongodb.New(cfg), cfg.URI, out)
	if !res.OK {
		saveAnyway, err := promptYesNo(reader, out, "Save the configuration anyway? (y/N): ")
		if err != nil {
			return err
		}
		if !saveAnyway {
			fmt.Fprintln(out, "Setup cancelled.")
			return nil
		}
	} else {
		fmt.Fprintln(out, FormatLabelValue("Server role:", res.Hello.Role()))
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintln(out, FormatSuccess("✅ Configuration saved to: "+configPath))
	fmt.Fprintln(out)
	fmt.Fprintln(out, FormatTitle("📋 Configuration Summary"))
	fmt.Fprintln(out, FormatLabelValue("Target:", probe.Redact(cfg.URI)))
	fmt.Fprintln(out, FormatLabelValue("Timeout:", formatDuration(cfg.ServerSelectionTimeout)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Check connectivity: mongoping")
	fmt.Fprintln(out, "  2. Serve health checks: mongoping serve")

	return nil
}
