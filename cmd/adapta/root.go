package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/automkit/adapta/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "adapta",
	Short: "Adapta is an adaptive finite-automaton engine",
	Long: `Adapta runs automata whose transition sets can change while they execute.
Machines are walked over symbol sequences and each run is classified as
accepted, rejected or stuck.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadApp resolves configuration and wires the engine for a command.
func loadApp(cmd *cobra.Command) (*cli.App, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := cli.LoadConfig(cmd.Context(), path)
	if err != nil {
		return nil, err
	}
	return cli.NewApp(cfg)
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
}
