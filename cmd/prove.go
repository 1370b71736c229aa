package cmd

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/spf13/cobra"

	"vdfproof/internal/hashgroup"
	"vdfproof/internal/primes"
	"vdfproof/internal/vdf"
)

var (
	proveModulusBits int
	proveTMax        uint64
	proveCapStr      string
	proveSeed        string
)

var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "Run a VDF session to completion and print the resulting proof",
	Long: `Generates an RSA modulus and a deterministic base from --seed,
runs the sequential-squaring worker to T_max, and prints the resulting
VDFProof as JSON. The proof uses --cap as its cap when given, otherwise
a freshly generated safe prime.`,
	Run: func(cmd *cobra.Command, args []string) {
		n, err := generateTestModulus(proveModulusBits)
		if err != nil {
			fmt.Printf("Error generating modulus: %v\n", err)
			os.Exit(1)
		}
		g := hashgroup.HashToGroup([]byte(proveSeed), n)

		session := vdf.NewSession(n, g, proveTMax)
		if proveCapStr != "" {
			l, ok := new(big.Int).SetString(proveCapStr, 10)
			if !ok {
				fmt.Printf("Error: --cap is not a valid decimal integer\n")
				os.Exit(1)
			}
			if !primes.IsSafePrime(l) {
				fmt.Printf("Error: --cap is not a safe prime\n")
				os.Exit(1)
			}
			session = session.WithCap(l)
		}

		start := time.Now()
		_, proofOut := session.Run()
		result := <-proofOut
		elapsed := time.Since(start)

		if result.Err != nil {
			fmt.Printf("Session failed: %v\n", result.Err)
			os.Exit(1)
		}

		encoded, _ := json.MarshalIndent(result.Proof, "", "  ")
		fmt.Println(string(encoded))
		fmt.Fprintf(os.Stderr, "computed in %v (%d iterations)\n", elapsed, result.Proof.Output.Iterations)
	},
}

func init() {
	rootCmd.AddCommand(proveCmd)

	proveCmd.Flags().IntVar(&proveModulusBits, "bits", 256, "RSA modulus bit length")
	proveCmd.Flags().Uint64Var(&proveTMax, "tmax", 10_000, "maximum number of squarings")
	proveCmd.Flags().StringVar(&proveCapStr, "cap", "", "pre-installed safe-prime cap (decimal)")
	proveCmd.Flags().StringVar(&proveSeed, "seed", "vdfproof-demo-seed", "input to the hash-to-group base derivation")
}

// generateTestModulus produces a fresh RSA modulus for demonstration
// purposes. A production deployment needs a trusted-setup ceremony to
// produce a modulus of genuinely unknown factorization; this CLI is a
// demonstration entry point, not that ceremony.
func generateTestModulus(bits int) (*big.Int, error) {
	p, err := rand.Prime(rand.Reader, bits/2)
	if err != nil {
		return nil, err
	}
	q, err := rand.Prime(rand.Reader, bits/2)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Mul(p, q), nil
}
