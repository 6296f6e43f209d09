/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"fibseq/fib"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "fibseq",
	Short: "Print the first ten Fibonacci numbers",
	Long: `Without a subcommand, fibseq prints a header followed by the Fibonacci
numbers for the indices 0 through 9, one per line.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return fib.PrintSequence(cmd.OutOrStdout())
	},
}

// Execute adds all child commands to the root command and sets Flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		println("Failed to execute command: " + err.Error())
		os.Exit(1)
	}
}
