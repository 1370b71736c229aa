// Package cmd implements the vdfproof demonstration CLI: a thin cobra
// wrapper around internal/vdf, internal/calibrate and internal/peer,
// with one subcommand registered per file via init().
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vdfproof",
	Short: "Verifiable delay function proof-of-latency demonstration",
	Long: `vdfproof computes and verifies Wesolowski verifiable delay
function proofs: one party squares a group element modulo an RSA
modulus in a tight sequential loop, and a verifier checks the result in
time logarithmic in the number of squarings.`,
}

// Execute runs the CLI, exiting the process non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
