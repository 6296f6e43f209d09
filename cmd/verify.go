package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fibseq/fib"

	"github.com/owenrumney/go-sarif/sarif"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:     "verify",
	Short:   "Check the Fibonacci function and the printed sequence, writing a SARIF report",
	Aliases: []string{"v"},
	Args:    cobra.NoArgs,
	RunE:    runVerify,
}

var sarifOutput string

func init() {
	verifyCmd.Flags().StringVarP(&sarifOutput, "output", "o", "fibseq.sarif", "The path of the SARIF report")
	RootCmd.AddCommand(verifyCmd)
}

// Rule ids used in the SARIF report
const (
	RuleValue      = "FIBSEQ_VALUE"
	RuleBaseCase   = "FIBSEQ_BASE_CASE"
	RuleRecurrence = "FIBSEQ_RECURRENCE"
	RuleOutput     = "FIBSEQ_OUTPUT"
)

var referenceValues = []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}

type Result struct {
	Correct   int
	Incorrect int
}

func runVerify(cmd *cobra.Command, args []string) error {
	run := sarif.NewRun("fibseq", "https://en.wikipedia.org/wiki/Fibonacci_sequence")
	res := Verify(fib.Fibonacci, fib.PrintSequence, run)
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Correct: %d\n", res.Correct)
	_, _ = fmt.Fprintf(out, "Incorrect: %d\n", res.Incorrect)
	if err := WriteSarifFile(run, sarifOutput); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "SARIF file written to %s\n", sarifOutput)
	if res.Incorrect > 0 {
		return fmt.Errorf("%d checks failed", res.Incorrect)
	}
	return nil
}

// Verify checks fn against the reference values, the base cases and the recurrence law,
// and checks that printSequence writes the header followed by the reference values.
// Every failed check is added to run.
func Verify(fn func(int) int, printSequence func(io.Writer) error, run *sarif.Run) Result {
	var res Result
	check := func(ok bool, ruleID string, message string) {
		if ok {
			res.Correct++
			return
		}
		res.Incorrect++
		run.AddResult(ruleID).WithMessage(sarif.NewMessage().WithText(message))
	}

	for n, want := range referenceValues {
		got := fn(n)
		check(got == want, RuleValue, fmt.Sprintf("fib(%d) = %d, expected %d", n, got, want))
	}
	for n := 0; n <= 1; n++ {
		got := fn(n)
		check(got == n, RuleBaseCase, fmt.Sprintf("base case fib(%d) = %d, expected %d", n, got, n))
	}
	for n := 2; n < len(referenceValues); n++ {
		got, sum := fn(n), fn(n-1)+fn(n-2)
		check(got == sum, RuleRecurrence, fmt.Sprintf("fib(%d) = %d but fib(%d) + fib(%d) = %d", n, got, n-1, n-2, sum))
	}

	var buffer bytes.Buffer
	if err := printSequence(&buffer); err != nil {
		check(false, RuleOutput, "printing the sequence failed: "+err.Error())
		return res
	}
	want := make([]string, 0, len(referenceValues)+1)
	want = append(want, fib.Header)
	for _, v := range referenceValues {
		want = append(want, strconv.Itoa(v))
	}
	expected := strings.Join(want, "\n") + "\n"
	check(buffer.String() == expected, RuleOutput, fmt.Sprintf("printed output %q, expected %q", buffer.String(), expected))
	return res
}

// WriteSarifFile wraps run in a SARIF 2.1.0 report and writes it to path
func WriteSarifFile(run *sarif.Run, path string) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("creating SARIF report: %w", err)
	}
	report.AddRun(run)
	buffer := bytes.NewBufferString("")
	if err := report.Write(buffer); err != nil {
		return fmt.Errorf("writing SARIF report: %w", err)
	}
	if err := os.WriteFile(path, buffer.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing SARIF file: %w", err)
	}
	return nil
}
