package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eddiman/mariposa/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config.toml with defaults",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config with value provenance",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one config field (e.g. mariposa.url)",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists; edit it or use 'config set'", path)
	}
	if err := config.Save(config.Default()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Println("Wrote", path)
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s := newStyles(os.Stdout)
	fmt.Println(s.sectionHeader("Effective configuration"))
	for _, fi := range config.EffectiveFields(cfg) {
		fmt.Printf("%s %s\n", s.kv(fi.Key, fi.Value), s.dim("("+string(fi.Source)+")"))
	}
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if config.EnvVarForField(key) == "" {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := config.ValidateField(key, value); err != nil {
		return err
	}

	cfg := config.Default()
	if loaded, err := config.Load(); err == nil {
		cfg = loaded
	}
	config.ApplyField(&cfg, key, value)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}
