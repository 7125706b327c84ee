package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amitbaghel07/SortingVisualizer/internal/domain/algorithm"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the available sorting algorithms",
	Run: func(cmd *cobra.Command, args []string) {
		for _, a := range algorithm.All() {
			fmt.Printf("%-12s %s\n", a.ID(), a.Name())
		}
	},
}

func init() {
	rootCmd.AddCommand(algorithmsCmd)
}
