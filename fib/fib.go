package fib

import (
	"fmt"
	"io"
)

// Header is the first line written by PrintSequence
const Header = "Fibonacci sequence:"

// Count is the number of values written by PrintSequence, starting at index 0
const Count = 10

// Fibonacci returns the n-th Fibonacci number using plain recursion.
// Negative n is not rejected: it hits the base case and is returned as-is.
func Fibonacci(n int) int {
	if n <= 1 {
		return n
	}
	return Fibonacci(n-1) + Fibonacci(n-2)
}

// Sequence returns Fibonacci(0) through Fibonacci(Count-1)
func Sequence() []int {
	values := make([]int, Count)
	for i := 0; i < Count; i++ {
		values[i] = Fibonacci(i)
	}
	return values
}

// PrintSequence writes the header followed by one value per line
func PrintSequence(out io.Writer) error {
	if _, err := fmt.Fprintln(out, Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i := 0; i < Count; i++ {
		if _, err := fmt.Fprintln(out, Fibonacci(i)); err != nil {
			return fmt.Errorf("writing value %d: %w", i, err)
		}
	}
	return nil
}
