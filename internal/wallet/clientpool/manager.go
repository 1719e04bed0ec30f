package clientpool

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github/chapool/signer-pool/internal/chain"
	"github/chapool/signer-pool/internal/pool"
	"github/chapool/signer-pool/internal/util"
	"github/chapool/signer-pool/internal/wallet/address"
	"github/chapool/signer-pool/internal/wallet/signer"
	"github/chapool/signer-pool/internal/wallet/signing"
)

var errIndicesExhausted = errors.New("derivation indices exhausted")

// KeyDeriver derives the key material at a BIP44 path of a mnemonic.
type KeyDeriver func(mnemonic string, path string) (*signer.KeySigner, error)

// ClientConstructor builds a signing client for derived key material. It may perform network I/O.
type ClientConstructor func(ctx context.Context, cfg chain.Config, key *signer.KeySigner) (*signing.Client, error)

// Observer receives factory events, e.g. for metrics.
type Observer interface {
	ObserveCreate(outcome string, took time.Duration)
	ObserveRecycle()
}

// Manager creates signing clients for a pool, each bound to its own account
// derived from one seed phrase. It is safe for concurrent use.
type Manager struct {
	mnemonic string
	cfg      chain.Config

	// next is the derivation index handed to the next creation attempt
	next atomic.Uint32

	derive    KeyDeriver
	construct ClientConstructor
	observer  Observer
}

var _ pool.Manager[*signing.Client] = (*Manager)(nil)

// Option configures a Manager.
type Option func(*Manager)

// WithKeyDeriver replaces the mnemonic based key derivation.
func WithKeyDeriver(derive KeyDeriver) Option {
	return func(m *Manager) {
		m.derive = derive
	}
}

// WithClientConstructor replaces signing.NewClient.
func WithClientConstructor(construct ClientConstructor) Option {
	return func(m *Manager) {
		m.construct = construct
	}
}

// WithObserver reports creations and recycles to o.
func WithObserver(o Observer) Option {
	return func(m *Manager) {
		m.observer = o
	}
}

// NewFromSeed creates a Manager owning seedPhrase. Derivation indices start at 0.
func NewFromSeed(seedPhrase string, cfg chain.Config, opts ...Option) *Manager {
	m := &Manager{
		mnemonic:  seedPhrase,
		cfg:       cfg,
		derive:    signer.NewMnemonic,
		construct: signing.NewClient,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Create derives the account at the next derivation index and connects a signing client for it.
// An allocated index is never handed out again, even if derivation or construction fail.
func (m *Manager) Create(ctx context.Context) (*signing.Client, error) {
	start := time.Now()

	client, err := m.create(ctx)
	if m.observer != nil {
		m.observer.ObserveCreate(outcome(err), time.Since(start))
	}

	return client, err
}

func (m *Manager) create(ctx context.Context) (*signing.Client, error) {
	log := util.LogFromContext(ctx).With().Str("component", "client_pool").Str("chain_id", m.cfg.ChainID).Logger()

	var (
		index uint32
		key   *signer.KeySigner
	)

	switch kind := m.cfg.AddressKind.(type) {
	case chain.CosmosKind:
		var ok bool
		index, ok = m.allocate()
		if !ok {
			return nil, &CreateError{Kind: ErrKeyDerivation, Err: errIndicesExhausted}
		}

		path, err := address.CosmosHubPath(index)
		if err != nil {
			return nil, newIndexedError(ErrKeyDerivation, index, err)
		}

		key, err = m.derive(m.mnemonic, path)
		if err != nil {
			log.Debug().Uint32("derivation_index", index).Err(err).Msg("Failed to derive signing key")
			return nil, newIndexedError(ErrKeyDerivation, index, err)
		}
	case chain.EthKind:
		return nil, &CreateError{Kind: ErrUnsupportedAddressKind, Err: errors.Errorf("%v address kind is not supported (yet)", kind)}
	default:
		return nil, &CreateError{Kind: ErrUnsupportedAddressKind, Err: errors.Errorf("unknown address kind %v", kind)}
	}

	client, err := m.construct(ctx, m.cfg, key)
	if err != nil {
		log.Debug().Uint32("derivation_index", index).Err(err).Msg("Failed to construct signing client")
		return nil, newIndexedError(ErrClientInit, index, err)
	}

	log.Debug().
		Uint32("derivation_index", index).
		Str("address", client.Address()).
		Msg("Created signing client")

	return client, nil
}

// allocate reserves the next derivation index. It never wraps around.
func (m *Manager) allocate() (uint32, bool) {
	for {
		current := m.next.Load()
		if current == math.MaxUint32 {
			return 0, false
		}

		if m.next.CompareAndSwap(current, current+1) {
			return current, true
		}
	}
}

// Recycle accepts every returned client for reuse. Clients keep no chain state between uses.
func (m *Manager) Recycle(ctx context.Context, client *signing.Client, metrics pool.Metrics) error {
	util.LogFromContext(ctx).Debug().
		Str("address", client.Address()).
		Uint64("use_count", metrics.UseCount).
		Dur("age", metrics.Age(time.Now())).
		Msg("Recycling signing client")

	if m.observer != nil {
		m.observer.ObserveRecycle()
	}

	return nil
}

// Allocated returns the number of derivation indices consumed so far.
func (m *Manager) Allocated() uint32 {
	return m.next.Load()
}

// ChainConfig returns the chain the created clients are bound to.
func (m *Manager) ChainConfig() chain.Config {
	return m.cfg
}

// String describes the manager without revealing the seed phrase.
func (m *Manager) String() string {
	return fmt.Sprintf("clientpool.Manager{chain_id: %s, address_kind: %v, allocated: %d}", m.cfg.ChainID, m.cfg.AddressKind, m.Allocated())
}

// GoString keeps the seed phrase out of %#v output.
func (m *Manager) GoString() string {
	return m.String()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrUnsupportedAddressKind):
		return "unsupported_address_kind"
	case errors.Is(err, ErrKeyDerivation):
		return "key_derivation"
	case errors.Is(err, ErrClientInit):
		return "client_init"
	default:
		return "error"
	}
}
