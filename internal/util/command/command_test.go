package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/signer-pool/internal/api"
	"github/chapool/signer-pool/internal/test"
	"github/chapool/signer-pool/internal/util/command"
	"github/chapool/signer-pool/internal/wallet/keystore"
)

func TestWithServer(t *testing.T) {
	rpc := test.NewRPCServer(t, test.ChainID)
	cfg := test.NewTestConfig(t, rpc)

	testError := errors.New("test error")

	resultErr := command.WithServer(t.Context(), cfg, func(ctx context.Context, s *api.Server) error {
		assert.True(t, s.Ready())

		obj, err := s.Pool.Acquire(ctx)
		require.NoError(t, err)
		defer obj.Release(ctx)

		height, err := obj.Value().LatestBlockHeight(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), height)

		return testError
	})

	assert.Equal(t, testError, resultErr)
}

func TestWithServerPromptUnlocksKeystore(t *testing.T) {
	rpc := test.NewRPCServer(t, test.ChainID)
	cfg := test.NewTestConfig(t, rpc)
	cfg.Wallet.Mnemonic = ""

	ks, err := keystore.NewService(cfg.Wallet.KeystorePath, keystore.WithScryptParams(keystore.LightScryptParams()))
	require.NoError(t, err)
	_, err = ks.CreateKeystore(t.Context(), test.Mnemonic, "password123")
	require.NoError(t, err)

	prompted := 0
	prompt := func(string) (string, error) {
		prompted++
		return "password123", nil
	}

	called := false
	err = command.WithServerPrompt(t.Context(), cfg, prompt, func(_ context.Context, s *api.Server) error {
		called = true
		assert.True(t, s.Ready())
		return nil
	})
	require.NoError(t, err)

	assert.True(t, called)
	assert.Equal(t, 1, prompted)
}

func TestWithServerMissingKeystore(t *testing.T) {
	rpc := test.NewRPCServer(t, test.ChainID)
	cfg := test.NewTestConfig(t, rpc)
	cfg.Wallet.Mnemonic = ""

	err := command.WithServer(t.Context(), cfg, func(context.Context, *api.Server) error {
		t.Fatal("must not be called without a seed phrase")
		return nil
	})
	require.ErrorIs(t, err, keystore.ErrKeystoreNotFound)
}

func TestNewSubcommandGroup(t *testing.T) {
	sub := &cobra.Command{Use: "child", Run: func(*cobra.Command, []string) {}}
	group := command.NewSubcommandGroup("parent", sub)

	assert.Equal(t, "parent", group.Use)
	require.Len(t, group.Commands(), 1)
	assert.Equal(t, "child", group.Commands()[0].Use)
}
