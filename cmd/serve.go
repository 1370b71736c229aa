package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"vdfproof/internal/hashgroup"
	"vdfproof/internal/peer/grpcpeer"
	"vdfproof/internal/peer/httppeer"
	"vdfproof/internal/vdf"
)

var (
	serveModulusBits int
	serveTMax        uint64
	serveListen      string
	serveTransport   string
	serveSeed        string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Stand up a prover behind an HTTP or gRPC demonstration transport",
	Long: `Starts a VDF session and hands its cap-in/proof-out channels to
the chosen demonstration transport (internal/peer). Over HTTP a peer can
submit a cap and retrieve the resulting proof. The gRPC transport starts
a server with no service registered, so it answers every call as
unimplemented.`,
	Run: func(cmd *cobra.Command, args []string) {
		n, err := generateTestModulus(serveModulusBits)
		if err != nil {
			fmt.Printf("Error generating modulus: %v\n", err)
			os.Exit(1)
		}
		g := hashgroup.HashToGroup([]byte(serveSeed), n)

		session := vdf.NewSession(n, g, serveTMax)
		capIn, proofOut := session.Run()

		log.Printf("vdfproof serve: listening on %s (%s transport)", serveListen, serveTransport)

		switch serveTransport {
		case "http":
			server := httppeer.NewServer(capIn, proofOut)
			if err := http.ListenAndServe(serveListen, server.Handler()); err != nil {
				fmt.Printf("HTTP server error: %v\n", err)
				os.Exit(1)
			}
		case "grpc":
			svc := grpcpeer.NewService(capIn, proofOut)
			server := grpcpeer.NewServer(svc)
			if err := grpcpeer.Serve(serveListen, server); err != nil {
				fmt.Printf("gRPC server error: %v\n", err)
				os.Exit(1)
			}
		default:
			fmt.Printf("Error: unknown transport %q (want http or grpc)\n", serveTransport)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&serveModulusBits, "bits", 256, "RSA modulus bit length")
	serveCmd.Flags().Uint64Var(&serveTMax, "tmax", 100_000_000, "maximum number of squarings if no cap arrives")
	serveCmd.Flags().StringVar(&serveListen, "listen", "127.0.0.1:8420", "address to listen on")
	serveCmd.Flags().StringVar(&serveTransport, "transport", "http", "transport to use: http or grpc")
	serveCmd.Flags().StringVar(&serveSeed, "seed", "vdfproof-demo-seed", "input to the hash-to-group base derivation")
}
