package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vdfproof/internal/keyagreement"
)

var handshakeCmd = &cobra.Command{
	Use:   "handshake",
	Short: "Demonstrate the X25519 key agreement that seeds a VDF base",
	Long: `Runs a local two-party X25519 handshake and prints the shared
secret both sides derive. In a real deployment each party runs this on
its own machine and exchanges only public keys; the shared secret
becomes the input to hash-to-group, which is how the VDF base stays
unpredictable before the session starts but reproducible by both
peers.`,
	Run: func(cmd *cobra.Command, args []string) {
		alice, err := keyagreement.Generate()
		if err != nil {
			fmt.Printf("Error generating alice's key pair: %v\n", err)
			os.Exit(1)
		}
		bob, err := keyagreement.Generate()
		if err != nil {
			fmt.Printf("Error generating bob's key pair: %v\n", err)
			os.Exit(1)
		}

		aliceSecret, err := keyagreement.SharedSecret(alice, bob.Public)
		if err != nil {
			fmt.Printf("Error deriving alice's shared secret: %v\n", err)
			os.Exit(1)
		}
		bobSecret, err := keyagreement.SharedSecret(bob, alice.Public)
		if err != nil {
			fmt.Printf("Error deriving bob's shared secret: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("alice public: %s\n", hex.EncodeToString(alice.Public[:]))
		fmt.Printf("bob public:   %s\n", hex.EncodeToString(bob.Public[:]))
		fmt.Printf("alice derived secret: %s\n", hex.EncodeToString(aliceSecret))
		fmt.Printf("bob derived secret:   %s\n", hex.EncodeToString(bobSecret))
	},
}

func init() {
	rootCmd.AddCommand(handshakeCmd)
}
