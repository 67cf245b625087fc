package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var machinesCmd = &cobra.Command{
	Use:   "machines",
	Short: "List the registered machines",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := loadApp(cmd)
		if err != nil {
			fmt.Printf("Error initializing adapta: %v\n", err)
			os.Exit(1)
		}
		defer app.Close()

		for _, name := range app.Engine.Registry().Names() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(machinesCmd)
}
