package cmd

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"

	"github.com/asamuj/nicks/app"
)

func PatchConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patch-config [override-file]",
		Short: "Merge a TOML file into the config file, with its values overriding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := cmd.Flags().GetString(flagHome)
			if err != nil {
				return err
			}
			cfg := app.DefaultConfig()
			cfg.Home = home

			baseContent, err := os.ReadFile(cfg.ConfigFile())
			if err != nil {
				return fmt.Errorf("error reading config file %s: %w", cfg.ConfigFile(), err)
			}
			overrideContent, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("error reading override file %s: %w", args[0], err)
			}

			result, err := MergeToml(string(baseContent), string(overrideContent))
			if err != nil {
				return fmt.Errorf("error merging TOML files: %w", err)
			}

			// the merged file must still load
			if _, err := toml.Load(result); err != nil {
				return err
			}
			if err := os.WriteFile(cfg.ConfigFile(), []byte(result), 0o644); err != nil {
				return fmt.Errorf("error writing merged content to %s: %w", cfg.ConfigFile(), err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Merged %s into %s\n", args[0], cfg.ConfigFile())
			return err
		},
	}
}

// MergeToml overrides every leaf of base with the matching leaf of override.
// Tables missing from base are created; arrays of tables are replaced whole.
func MergeToml(base, override string) (string, error) {
	baseTree, err := toml.Load(base)
	if err != nil {
		return "", fmt.Errorf("failed to parse base: %w", err)
	}
	overrideTree, err := toml.Load(override)
	if err != nil {
		return "", fmt.Errorf("failed to parse override: %w", err)
	}

	mergeTree(baseTree, overrideTree, nil)
	return baseTree.ToTomlString()
}

func mergeTree(dst, src *toml.Tree, path []string) {
	for _, key := range src.Keys() {
		keyPath := append(append([]string{}, path...), key)
		if sub, ok := src.GetPath([]string{key}).(*toml.Tree); ok {
			mergeTree(dst, sub, keyPath)
			continue
		}
		dst.SetPath(keyPath, src.GetPath([]string{key}))
	}
}
