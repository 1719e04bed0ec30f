package keys

import (
	"github.com/spf13/cobra"
	"github/chapool/signer-pool/internal/util/command"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("keys",
		newDerive(),
	)
}
