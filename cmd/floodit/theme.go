package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-floodit/internal/config"
)

var flagThemeDefault bool

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Print the theme in use as YAML",
	Long: `Prints the theme resolved from --config and the search path
(~/.floodit/theme.yaml, ./configs/theme.yaml, built-in default).
Use --default to print the built-in theme file as a starting point.

Examples:
  floodit theme
  floodit theme --default > ~/.floodit/theme.yaml`,
	Args: cobra.NoArgs,
	RunE: runTheme,
}

func init() {
	themeCmd.Flags().BoolVar(&flagThemeDefault, "default", false, "Print the built-in theme file")
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagThemeDefault {
		_, err := out.Write(config.DefaultThemeYAML())
		return err
	}

	theme, err := config.LoadTheme(flagConfig)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	data, err := yaml.Marshal(theme)
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	_, err = out.Write(data)
	return err
}
