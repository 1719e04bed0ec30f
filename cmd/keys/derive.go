package keys

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github/chapool/signer-pool/internal/chain"
	"github/chapool/signer-pool/internal/config"
	"github/chapool/signer-pool/internal/util/command"
	"github/chapool/signer-pool/internal/wallet"
	"github/chapool/signer-pool/internal/wallet/address"
	"github/chapool/signer-pool/internal/wallet/keystore"
	"github/chapool/signer-pool/internal/wallet/seed"
	"github/chapool/signer-pool/internal/wallet/signer"
)

const (
	countFlag string = "count"
	startFlag string = "start"
	kindFlag  string = "kind"
)

// DerivedKey is one account of the seed phrase.
type DerivedKey struct {
	Index   uint32
	Path    string
	Address string
}

func newDerive() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SERVER_KEYS")
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Prints the accounts the signer pool hands out",
		Long: `Prints the derived accounts for a range of derivation indices.

Index i is the account of the i-th signing client created by the pool.
The seed phrase is read from SERVER_WALLET_MNEMONIC or unlocked from the keystore.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.DefaultServiceConfigFromEnv()
			command.SetupLogger(cfg.Logger)

			kind, err := kindFromFlags(v, cfg.Chain)
			if err != nil {
				return err
			}

			ks, err := keystore.NewService(cfg.Wallet.KeystorePath)
			if err != nil {
				return errors.Wrap(err, "failed to create keystore service")
			}

			mnemonic, err := wallet.UnlockMnemonic(cmd.Context(), cfg.Wallet, ks, wallet.TerminalPrompt)
			if err != nil {
				return err
			}

			keys, err := Derive(mnemonic, kind, v.GetUint32(startFlag), v.GetUint32(countFlag))
			if err != nil {
				return err
			}

			return printKeys(cmd.OutOrStdout(), kind, keys)
		},
	}

	cmd.Flags().Uint32(countFlag, 10, "Number of accounts to derive")
	cmd.Flags().Uint32(startFlag, 0, "First derivation index")
	cmd.Flags().String(kindFlag, "", "Address kind (cosmos|eth), defaults to SERVER_CHAIN_ADDRESS_KIND")

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		log.Fatal().Err(err).Msg("Failed to bind keys derive flags")
	}

	return cmd
}

func kindFromFlags(v *viper.Viper, cfg config.ChainServer) (chain.AddressKind, error) {
	kind := cfg.AddressKind
	if k := v.GetString(kindFlag); k != "" {
		kind = k
	}

	return chain.ParseAddressKind(kind, cfg.Bech32Prefix)
}

// Derive renders the accounts at indices start..start+count-1.
// Cosmos accounts use m/44'/118'/0'/0/i, Eth accounts m/44'/60'/0'/0/i.
func Derive(mnemonic string, kind chain.AddressKind, start uint32, count uint32) ([]DerivedKey, error) {
	seedManager := seed.NewManager()
	if err := seedManager.Initialize(mnemonic, ""); err != nil {
		return nil, err
	}
	defer seedManager.Clear()

	pathFor := address.CosmosHubPath
	if _, ok := kind.(chain.EthKind); ok {
		pathFor = address.EVMPath
	}

	seedBytes := seedManager.GetSeed()
	keys := make([]DerivedKey, 0, count)

	for i := range count {
		index := start + i
		if index < start {
			return nil, errors.Wrapf(address.ErrIndexOutOfRange, "start %d + count %d", start, count)
		}

		path, err := pathFor(index)
		if err != nil {
			return nil, err
		}

		key, err := signer.NewSeed(seedBytes, path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive key at index %d", index)
		}

		addr, err := key.Address(kind)
		if err != nil {
			return nil, err
		}

		keys = append(keys, DerivedKey{Index: index, Path: path, Address: addr})
	}

	return keys, nil
}

func printKeys(w io.Writer, kind chain.AddressKind, keys []DerivedKey) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd

	fmt.Fprintf(tw, "INDEX\tPATH\tADDRESS (%s)\n", kind)
	for _, k := range keys {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", k.Index, k.Path, k.Address)
	}

	return errors.Wrap(tw.Flush(), "failed to print keys")
}
