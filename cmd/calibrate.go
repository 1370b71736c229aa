package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"vdfproof/internal/calibrate"
	"vdfproof/internal/hashgroup"
)

var (
	calibrateModulusBits int
	calibrateMillis      int
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Measure this host's squarings-per-second and print a T_max",
	Long: `Measures how many squarings this host can perform within a
wall-clock budget and prints the resulting T_max, suitable for
converting a target proof duration into an iteration count.`,
	Run: func(cmd *cobra.Command, args []string) {
		n, err := generateTestModulus(calibrateModulusBits)
		if err != nil {
			fmt.Printf("Error generating modulus: %v\n", err)
			os.Exit(1)
		}
		g := hashgroup.HashToGroup([]byte("vdfproof-calibration"), n)

		budget := time.Duration(calibrateMillis) * time.Millisecond
		tMax, err := calibrate.EstimateUpperBound(n, g, budget)
		if err != nil {
			fmt.Printf("Calibration failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("T_max = %d squarings per %v on this host\n", tMax, budget)
	},
}

func init() {
	rootCmd.AddCommand(calibrateCmd)
	calibrateCmd.Flags().IntVar(&calibrateModulusBits, "bits", 256, "RSA modulus bit length")
	calibrateCmd.Flags().IntVar(&calibrateMillis, "ms", 1000, "wall-clock calibration budget in milliseconds")
}
