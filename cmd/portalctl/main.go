package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"scholarportal/internal/adminclient"
	"scholarportal/internal/portalctl"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var configPath string

// newClient reads the config and creates an admin API client.
func newClient() (*adminclient.Client, *portalctl.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := portalctl.Load(path, os.Getenv)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return adminclient.New(cfg.APIURL, cfg.Token), cfg, nil
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return portalctl.DefaultPath()
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

var rootCmd = &cobra.Command{
	Use:           "portalctl",
	Short:         "Administer the scholar portal from the command line",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		apiURL, _ := cmd.Flags().GetString("api-url")
		token, _ := cmd.Flags().GetString("token")

		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if err := portalctl.Init(path, &portalctl.Config{APIURL: apiURL, Token: token}); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		fmt.Printf("Configuration initialized at %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		cfg, err := portalctl.Load(path, os.Getenv)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
		token := "(unset)"
		if cfg.Token != "" {
			token = "(set)"
		}
		fmt.Printf("Configuration from %s:\n\n", path)
		fmt.Printf("API URL: %s\n", orDash(cfg.APIURL))
		fmt.Printf("Token:   %s\n", token)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/portalctl/config.toml)")

	configInitCmd.Flags().String("api-url", "http://localhost:8080", "portal API base URL")
	configInitCmd.Flags().String("token", "", "admin bearer token")
	configCmd.AddCommand(configInitCmd, configShowCmd)

	rootCmd.AddCommand(configCmd, collectionsCmd, resourcesCmd, questionsCmd, settingsCmd, uploadCmd)
}
