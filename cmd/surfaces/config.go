package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/surfaces/internal/config"
	"github.com/thatcatcamp/surfaces/internal/logging"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage surfaces configuration",
	Long:  "View and modify surfaces configuration values",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		value := config.GetString(args[0])
		fmt.Println(value)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := config.Set(args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Set %s = %s\n", args[0], args[1])
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		all := flattenSettings("", config.GetAll())
		keys := lo.Keys(all)
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("%s: %v\n", key, all[key])
		}
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig initializes the configuration system
func initConfig() error {
	configPath := configFlag
	if configPath == "" {
		configPath = os.Getenv("SURFACES_CONFIG")
	}
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, ".surfaces", "config.yaml")
	}

	return config.InitConfig(appFs, configPath)
}

// loadSettings initializes config and logging, then applies the palette flags
func loadSettings() (*config.Settings, error) {
	if err := initConfig(); err != nil {
		return nil, err
	}

	s, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Setup(s.Log.Level, s.Log.JSON)

	applyPaletteFlags(s)
	return s, nil
}

func applyPaletteFlags(s *config.Settings) {
	if paletteFlag != "" {
		s.Palette.File = paletteFlag
	}
	if presetFlag != "" {
		s.Palette.File = ""
		s.Palette.Preset = presetFlag
	}
	if darkFlag {
		s.Palette.Dark = true
	}
}

// flattenSettings turns viper's nested map into dotted keys
func flattenSettings(prefix string, m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{})
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]interface{}); ok {
			for nk, nv := range flattenSettings(key, nested) {
				out[nk] = nv
			}
			continue
		}
		out[key] = v
	}
	return out
}
