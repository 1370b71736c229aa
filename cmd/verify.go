package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vdfproof/internal/vdf"
)

var verifyCheckGCD bool

var verifyCmd = &cobra.Command{
	Use:   "verify [proof.json]",
	Short: "Verify a VDF proof",
	Long: `Reads a VDFProof as JSON (as printed by "vdfproof prove") and
checks the Wesolowski verification equation, exiting non-zero on
rejection.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Error reading proof file: %v\n", err)
			os.Exit(1)
		}

		proof := &vdf.Proof{}
		if err := json.Unmarshal(data, proof); err != nil {
			fmt.Printf("Error parsing proof: %v\n", err)
			os.Exit(1)
		}

		if verifyCheckGCD && !proof.Validate() {
			fmt.Println("REJECTED: proof fails the gcd structural predicate")
			os.Exit(1)
		}

		if err := vdf.Verify(proof); err != nil {
			fmt.Printf("REJECTED: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("ACCEPTED (iterations=%d)\n", proof.Output.Iterations)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().BoolVar(&verifyCheckGCD, "check-gcd", false, "also run the (more expensive) gcd structural predicate")
}
