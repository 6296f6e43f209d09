package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	runtimepprof "runtime/pprof"
	"time"

	"fibseq/cmd/util"
	"fibseq/fib"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Short:   "Record a CPU profile of the recursive Fibonacci function and summarise it",
	Aliases: []string{"p"},
	Args:    cobra.NoArgs,
	RunE:    runProfile,
}

// ProfileSettings configures a single profiling run
type ProfileSettings struct {
	Index  int
	Rounds int
	Top    int
	Output string
	Id     string
}

var profileSettings ProfileSettings

func init() {
	profileCmd.Flags().IntVarP(&profileSettings.Index, "index", "i", 30, "The Fibonacci index to compute")
	profileCmd.Flags().IntVarP(&profileSettings.Rounds, "rounds", "r", 20, "How many times to compute it")
	profileCmd.Flags().IntVarP(&profileSettings.Top, "top", "t", 10, "How many functions to list")
	profileCmd.Flags().StringVarP(&profileSettings.Output, "output", "o", "_data", "The path to the output folder")
	profileCmd.Flags().StringVarP(&profileSettings.Id, "name", "n", "", "The id/name of the run (default: random UUID)")
	RootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	ps := profileSettings
	if ps.Id == "" {
		ps.Id = uuid.New().String()
	}
	return Profile(ps, cmd.OutOrStdout())
}

// Profile computes fib.Fibonacci(ps.Index) ps.Rounds times under the CPU profiler,
// writes the profile to <Output>/<Id>/cpu.pprof and prints where the time went
func Profile(ps ProfileSettings, out io.Writer) error {
	if ps.Index < 0 {
		return fmt.Errorf("index must not be negative, got %d", ps.Index)
	}
	if ps.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", ps.Rounds)
	}
	if ps.Id == "" {
		return errors.New("missing run id")
	}

	runPath := filepath.Join(ps.Output, ps.Id)
	if err := util.CleanOrCreateFolder(runPath); err != nil {
		return err
	}
	profilePath := filepath.Join(runPath, "cpu.pprof")
	result, err := recordProfile(profilePath, ps.Index, ps.Rounds)
	if err != nil {
		return err
	}

	prof, err := util.GetProfileDataFromFile(profilePath)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Profile written to %s\n", profilePath)
	_, _ = fmt.Fprintf(out, "fib(%d) = %d, computed %d times\n", ps.Index, result, ps.Rounds)
	_, _ = fmt.Fprintf(out, "Duration: %s\n", time.Duration(prof.DurationNanos))

	times := util.GetFunctionTimes(prof)
	if len(times) == 0 {
		_, _ = fmt.Fprintln(out, "No CPU samples recorded, try a larger index or more rounds")
		return nil
	}
	for i, ft := range times {
		if ps.Top > 0 && i >= ps.Top {
			break
		}
		_, _ = fmt.Fprintf(out, "%v - %s : flat %v, cum %v\n", i+1, ft.Name, time.Duration(ft.Flat), time.Duration(ft.Cum))
	}
	return nil
}

func recordProfile(path string, index int, rounds int) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating profile file: %w", err)
	}
	defer file.Close()
	if err := runtimepprof.StartCPUProfile(file); err != nil {
		return 0, fmt.Errorf("starting CPU profile: %w", err)
	}
	var result int
	for i := 0; i < rounds; i++ {
		result = fib.Fibonacci(index)
	}
	runtimepprof.StopCPUProfile()
	return result, nil
}
