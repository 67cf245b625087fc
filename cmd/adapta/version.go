package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/automkit/adapta"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of adapta",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("adapta version %s\n", adapta.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
