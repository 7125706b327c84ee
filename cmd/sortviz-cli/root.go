package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "sortviz-cli",
	Short: "Headless runner for the sorting visualizer engine",
	Long:  `Runs one of the visualizer's sorting algorithms over a random sequence without the GUI, printing progress and a final summary.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
