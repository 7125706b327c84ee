package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/amitbaghel07/SortingVisualizer/internal/app/usecase"
	"github.com/amitbaghel07/SortingVisualizer/internal/domain/execution"
	"github.com/amitbaghel07/SortingVisualizer/internal/infra/logging"
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run [algorithm]",
	Short: "Run one sorting algorithm over a random sequence",
	Long:  `Runs the chosen algorithm (default bubble) to completion, printing step progress. Ctrl-C requests a cooperative stop; the partial sequence is kept as-is.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algorithmID, _ := cmd.Flags().GetString("algorithm")
		if len(args) > 0 {
			algorithmID = args[0]
		}
		size, _ := cmd.Flags().GetInt("size")
		delayMs, _ := cmd.Flags().GetInt("delay")
		quiet, _ := cmd.Flags().GetBool("quiet")

		return runHeadless(algorithmID, size, delayMs, quiet)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("algorithm", "a", "bubble", "Algorithm ID (see 'sortviz-cli algorithms')")
	runCmd.Flags().IntP("size", "n", 80, "Sequence length [10, 300]")
	runCmd.Flags().IntP("delay", "d", 1, "Step delay in milliseconds [1, 201]")
	runCmd.Flags().BoolP("quiet", "q", false, "Suppress per-step progress output")
}

func runHeadless(algorithmID string, size, delayMs int, quiet bool) error {
	slog.SetDefault(logging.Nop())

	uc := usecase.NewVisualizerUseCase(size, delayMs)

	done := make(chan usecase.Frame, 1)
	var once sync.Once
	uc.SetFrameCallback(func(f usecase.Frame) {
		if !quiet && f.State == execution.StateRunning && f.Steps%100 == 0 && f.Steps > 0 {
			fmt.Printf("\r%d steps", f.Steps)
		}
		if f.State.IsTerminal() {
			once.Do(func() { done <- f })
		}
	})

	// Ctrl-C maps to a cooperative stop request; the run winds down within
	// one pending pause.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	go func() {
		<-sig
		fmt.Println("\nStop requested...")
		uc.RequestStop()
	}()

	input := uc.Snapshot()
	run, err := uc.Start(algorithmID)
	if err != nil {
		return err
	}
	fmt.Printf("Running %s over %d items (delay %dms), run %s\n",
		run.Algorithm, len(input), uc.DelayMs(), run.ID)

	final := <-done

	fmt.Printf("\rState: %s  Steps: %d", final.State, final.Steps)
	if run.Duration != nil {
		fmt.Printf("  Duration: %s", run.Duration.Round(time.Millisecond))
	}
	fmt.Println()

	if final.State == execution.StateCompleted && !sort.IntsAreSorted(final.Sequence) {
		return fmt.Errorf("run completed but sequence is not sorted")
	}
	return nil
}
