package keystore

import (
	"github.com/spf13/cobra"
	"github/chapool/signer-pool/internal/util/command"
)

const (
	lightFlag string = "scrypt-light"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("keystore",
		newCreate(),
		newVerify(),
	)
}
