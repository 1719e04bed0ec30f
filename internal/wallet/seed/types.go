package seed

// Manager keeps a BIP39 seed in memory for the lifetime of the process.
type Manager interface {
	// Initialize validates the mnemonic and stores the derived seed
	Initialize(mnemonic string, passphrase string) error

	// GetSeed returns a copy of the seed, nil if not initialized
	GetSeed() []byte

	// IsInitialized checks if seed is initialized
	IsInitialized() bool

	// Clear zeroes the seed
	Clear()
}
