// Package main provides the CLI interface for the gocalc calculator.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sivchari/gocalc/internal/config"
	"github.com/sivchari/gocalc/pkg/gocalc"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gocalc",
	Short: "An interactive four-function calculator",
	Long: `gocalc is an interactive command-line calculator.
It shows a menu, reads two numbers and prints the result of the chosen
operation until you pick Exit.

Operations:
- Addition
- Subtraction
- Multiplication
- Division`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCalculator,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gocalc version %s\n", version)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gocalc configuration",
	Long:  "Commands for managing gocalc configuration files",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new gocalc configuration file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		filename := configFile
		if filename == "" {
			filename = config.DefaultFile
		}

		// Check if file already exists
		if _, err := os.Stat(filename); err == nil && !force {
			return fmt.Errorf("configuration file %s already exists (use --force to overwrite)", filename)
		}

		if err := config.Default().Save(filename); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Created %s\n", filename)

		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [config-file]",
	Short: "Validate configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := configFile
		if len(args) > 0 {
			filename = args[0]
		}

		if _, err := config.Load(filename); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "❌ Configuration validation failed: %v\n", err)

			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✅ Configuration is valid")

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .gocalc.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write diagnostic logs to stderr")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)

	// Config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().Bool("force", false, "overwrite existing config file")
}

func runCalculator(cmd *cobra.Command, _ []string) error {
	engine, err := gocalc.NewEngine(&gocalc.RunOptions{
		In:         cmd.InOrStdin(),
		Out:        cmd.OutOrStdout(),
		ConfigFile: configFile,
		Verbose:    verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	return engine.Run(cmd.Context())
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
