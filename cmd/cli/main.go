package main

import (
	"fmt"
	"github.com/joho/godotenv"
	"github.com/lkarjala/vaelor/cmd/cli/casecheck"
	"github.com/spf13/cobra"
	"os"
)

func init() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.AddGroup(casecheck.Group)
	rootCmd.AddCommand(casecheck.Audit)
	rootCmd.AddCommand(casecheck.Matrix)
}

var rootCmd = &cobra.Command{
	Use:  "vaelor-cli",
	Long: `Command line utilities for Vaelor https://github.com/lkarjala/vaelor`,
	Run: func(cmd *cobra.Command, args []string) {
		// Do Stuff Here
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
