package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/automkit/adapta/internal/cli"
)

var runCmd = &cobra.Command{
	Use:   "run <machine> [symbol...]",
	Short: "Execute a machine over an input sequence",
	Long: `Runs the named machine over the given symbols and prints the trace.
When --id is set the trace is also persisted to the configured store.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := loadApp(cmd)
		if err != nil {
			fmt.Printf("Error initializing adapta: %v\n", err)
			os.Exit(1)
		}
		defer app.Close()

		machine := args[0]
		input := args[1:]

		runID, _ := cmd.Flags().GetString("id")
		ctx := cmd.Context()

		if runID != "" {
			res, err := app.Manager.Execute(ctx, runID, machine, input)
			if err != nil {
				fmt.Printf("Run failed: %v\n", err)
				os.Exit(1)
			}
			cli.RenderResult(os.Stdout, res)
			return
		}

		res, err := app.Engine.Run(ctx, machine, input)
		if err != nil {
			fmt.Printf("Run failed: %v\n", err)
			os.Exit(1)
		}
		cli.RenderResult(os.Stdout, res)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("id", "", "Run ID; when set the trace is persisted")
}
