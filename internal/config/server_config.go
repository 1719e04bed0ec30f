package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github/chapool/signer-pool/internal/chain"
	"github/chapool/signer-pool/internal/pool"
	"github/chapool/signer-pool/internal/util"
)

type EchoServer struct {
	Debug                     bool
	ListenAddress             string
	EnableRecoverMiddleware   bool
	EnableRequestIDMiddleware bool
	EnableLoggerMiddleware    bool
}

type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	PrettyPrintConsole bool
}

type ManagementServer struct {
	ProbeReadinessTimeout time.Duration
	EnableMetrics         bool
}

// ChainServer selects the chain, either through a TOML file or inline ENV values.
type ChainServer struct {
	ConfigFile   string
	ChainID      string
	RPCEndpoint  string
	GasPrice     float64
	GasDenom     string
	AddressKind  string
	Bech32Prefix string
}

type PoolServer struct {
	MaxSize           int32
	MinIdle           int32
	MaxIdleTime       time.Duration
	HealthCheckPeriod time.Duration
	AcquireTimeout    time.Duration
	WarmupOnStart     bool
}

// WalletServer points to the seed phrase. Secrets are never serialized.
type WalletServer struct {
	Mnemonic         string `json:"-"`
	KeystorePath     string
	KeystorePassword string `json:"-"`
}

type Server struct {
	Echo       EchoServer
	Logger     LoggerServer
	Management ManagementServer
	Chain      ChainServer
	Pool       PoolServer
	Wallet     WalletServer
}

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults defined below.
// We don't expect that ENV_VARs change while we are running our application or our tests
// (and it would be a bad thing to do anyways with parallel testing).
// Do NOT use os.Setenv / os.Unsetenv in tests utilizing DefaultServiceConfigFromEnv()!
func DefaultServiceConfigFromEnv() Server {
	// An `.env.local` file in the working directory can override the currently set ENV variables.
	//
	// We never automatically apply `.env.local` when running "go test" as these ENV variables
	// may be sensitive (e.g. secrets to external APIs) and applying them modifies the process
	// global "os.Env" state (it should be applied via t.Setenv instead).
	if !RunningInTest() {
		DotEnvTryLoad(util.GetEnv("SERVER_DOTENV_FILE", ".env.local"), os.Setenv)
	}

	return Server{
		Echo: EchoServer{
			Debug:                     util.GetEnvAsBool("SERVER_ECHO_DEBUG", false),
			ListenAddress:             util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":8080"),
			EnableRecoverMiddleware:   util.GetEnvAsBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
			EnableRequestIDMiddleware: util.GetEnvAsBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true),
			EnableLoggerMiddleware:    util.GetEnvAsBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
		},
		Logger: LoggerServer{
			Level:              util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_LEVEL", zerolog.DebugLevel.String())),
			RequestLevel:       util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel.String())),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
		Management: ManagementServer{
			ProbeReadinessTimeout: util.GetEnvAsDuration("SERVER_MANAGEMENT_PROBE_READINESS_TIMEOUT", 4*time.Second),
			EnableMetrics:         util.GetEnvAsBool("SERVER_MANAGEMENT_ENABLE_METRICS", true),
		},
		Chain: ChainServer{
			ConfigFile:   util.GetEnv("SERVER_CHAIN_CONFIG_FILE", ""),
			ChainID:      util.GetEnv("SERVER_CHAIN_ID", ""),
			RPCEndpoint:  util.GetEnv("SERVER_CHAIN_RPC_ENDPOINT", "http://127.0.0.1:26657"),
			GasPrice:     util.GetEnvAsFloat("SERVER_CHAIN_GAS_PRICE", 0.025),
			GasDenom:     util.GetEnv("SERVER_CHAIN_GAS_DENOM", ""),
			AddressKind:  util.GetEnv("SERVER_CHAIN_ADDRESS_KIND", "cosmos"),
			Bech32Prefix: util.GetEnv("SERVER_CHAIN_BECH32_PREFIX", "cosmos"),
		},
		Pool: PoolServer{
			MaxSize:           int32(util.GetEnvAsInt("SERVER_POOL_MAX_SIZE", 16)), //nolint:gosec // small configured value
			MinIdle:           int32(util.GetEnvAsInt("SERVER_POOL_MIN_IDLE", 2)),  //nolint:gosec // small configured value
			MaxIdleTime:       util.GetEnvAsDuration("SERVER_POOL_MAX_IDLE_TIME", 30*time.Minute),
			HealthCheckPeriod: util.GetEnvAsDuration("SERVER_POOL_HEALTH_CHECK_PERIOD", time.Minute),
			AcquireTimeout:    util.GetEnvAsDuration("SERVER_POOL_ACQUIRE_TIMEOUT", 30*time.Second),
			WarmupOnStart:     util.GetEnvAsBool("SERVER_POOL_WARMUP_ON_START", true),
		},
		Wallet: WalletServer{
			Mnemonic:         util.GetEnv("SERVER_WALLET_MNEMONIC", ""),
			KeystorePath:     util.GetEnv("SERVER_WALLET_KEYSTORE_PATH", "keystore.json"),
			KeystorePassword: util.GetEnv("SERVER_WALLET_KEYSTORE_PASSWORD", ""),
		},
	}
}

// LoadChainConfig reads the chain config file if set, otherwise builds the config from the inline values.
func (c ChainServer) LoadChainConfig() (chain.Config, error) {
	if c.ConfigFile != "" {
		return chain.LoadFile(c.ConfigFile)
	}

	if c.ChainID == "" {
		return chain.Config{}, errors.Wrap(chain.ErrMissingChainID, "set SERVER_CHAIN_ID or SERVER_CHAIN_CONFIG_FILE")
	}

	kind, err := chain.ParseAddressKind(c.AddressKind, c.Bech32Prefix)
	if err != nil {
		return chain.Config{}, err
	}

	return chain.Config{
		ChainID:     c.ChainID,
		RPCEndpoint: c.RPCEndpoint,
		GasPrice:    c.GasPrice,
		GasDenom:    c.GasDenom,
		AddressKind: kind,
	}, nil
}

// PoolConfig converts the pool settings.
func (p PoolServer) PoolConfig() pool.Config {
	return pool.Config{
		MaxSize:           p.MaxSize,
		MinIdle:           p.MinIdle,
		MaxIdleTime:       p.MaxIdleTime,
		HealthCheckPeriod: p.HealthCheckPeriod,
	}
}
