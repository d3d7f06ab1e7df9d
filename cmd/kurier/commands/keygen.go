package commands

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"kurier/internal/crypto"
)

// keygen: generate a P-256 key pair for the secure channel. The server
// never holds private keys; this exists for client setup and for
// exercising the channel primitives from the command line.
func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a P-256 key pair for the secure channel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := crypto.GenerateKeyPair()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "public: ", base64.StdEncoding.EncodeToString(kp.PublicKey))
			fmt.Fprintln(cmd.OutOrStdout(), "private:", base64.StdEncoding.EncodeToString(kp.PrivateKey))
			return nil
		},
	}
}
