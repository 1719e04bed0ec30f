package probe

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/signer-pool/internal/config"
	"github/chapool/signer-pool/internal/util/command"
	"github/chapool/signer-pool/internal/wallet/signing"
)

func newReadiness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs readiness probes",
		Long:  `Checks that the configured chain RPC answers "status" for the configured chain id.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				return errors.Wrap(err, "failed to read verbose flag")
			}

			cfg := config.DefaultServiceConfigFromEnv()
			command.SetupLogger(cfg.Logger)

			return runReadiness(cmd.Context(), cmd, cfg, verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func runReadiness(ctx context.Context, cmd *cobra.Command, cfg config.Server, verbose bool) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.Management.ProbeReadinessTimeout)
	defer cancel()

	chainCfg, err := cfg.Chain.LoadChainConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load chain config")
	}

	status, err := signing.ProbeNode(ctx, chainCfg)
	if err != nil {
		log.Warn().Err(err).Str("chain_id", chainCfg.ChainID).Msg("Readiness probe failed")
		return err
	}

	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Chain %s: node %q, height %s, catching up %t\n",
			chainCfg.ChainID, status.NodeInfo.Moniker, status.SyncInfo.LatestBlockHeight, status.SyncInfo.CatchingUp)
	}

	return nil
}
