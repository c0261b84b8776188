package chain

import (
	"context"
	"math/big"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/require"
)

// Init code that deploys a runtime returning 42.
const answerBytecode = "0x600a600c600039600a6000f3602a60005260206000f3"

const answerArtifact = `{
  "_format": "hh-sol-artifact-1",
  "contractName": "Answer",
  "abi": [],
  "bytecode": "` + answerBytecode + `"
}`

func TestParseArtifact(t *testing.T) {
	t.Parallel()

	art, err := ParseArtifact([]byte(answerArtifact))
	require.NoError(t, err)
	require.Equal(t, "Answer", art.ContractName)
	require.Len(t, art.Bytecode, 22)
}

func TestParseArtifactErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseArtifact([]byte(`{"contractName":"SafeDriverSBT","abi":[],"bytecode":"0x"}`))
	require.ErrorIs(t, err, ErrEmptyBytecode)

	_, err = ParseArtifact([]byte(`{"contractName":"X","abi":"nope","bytecode":"0x00"}`))
	require.Error(t, err)

	_, err = ParseArtifact([]byte(`not json`))
	require.Error(t, err)
}

func TestLoadArtifact(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "Answer.json")
	require.NoError(t, os.WriteFile(path, []byte(answerArtifact), 0o644))

	art, err := LoadArtifact(path)
	require.NoError(t, err)
	require.Equal(t, "Answer", art.ContractName)

	_, err = LoadArtifact(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestFormatEther(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0.0000", FormatEther(nil))
	require.Equal(t, "1.0000", FormatEther(big.NewInt(1e18)))
	require.Equal(t, "0.2500", FormatEther(big.NewInt(25e16)))
	require.Equal(t, "https://avalanche.testnet.routescan.io/address/0xabc",
		ExplorerAddressURL("https://avalanche.testnet.routescan.io/", "0xabc"))
}

func TestParsePrivateKey(t *testing.T) {
	t.Parallel()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	hex := "0x" + common.Bytes2Hex(crypto.FromECDSA(key))

	parsed, err := ParsePrivateKey(hex)
	require.NoError(t, err)
	require.Equal(t, crypto.PubkeyToAddress(key.PublicKey), crypto.PubkeyToAddress(parsed.PublicKey))

	_, err = ParsePrivateKey("0x1234")
	require.Error(t, err)
}

func TestClientAgainstSimulatedChain(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey)

	sim := simulated.NewBackend(types.GenesisAlloc{addr: {Balance: big.NewInt(1e18)}})
	defer sim.Close()
	c := NewClient(sim.Client())
	ctx := context.Background()

	id, err := c.ChainID(ctx)
	require.NoError(t, err)
	require.NoError(t, c.ExpectChainID(ctx, id))
	require.ErrorIs(t, c.ExpectChainID(ctx, 43113), ErrChainMismatch)

	bal, err := c.Balance(ctx, addr.Hex())
	require.NoError(t, err)
	require.Equal(t, "1.0000", FormatEther(bal))

	_, err = c.Balance(ctx, "nope")
	require.Error(t, err)

	art, err := ParseArtifact([]byte(answerArtifact))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// mine blocks while the deployment waits for its receipt
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sim.Commit()
			}
		}
	}()

	dep, err := c.Deploy(ctx, key, art)
	cancel()
	wg.Wait()
	require.NoError(t, err)
	require.Equal(t, addr.Hex(), dep.Deployer)
	require.NotEmpty(t, dep.TxHash)
	require.Len(t, dep.Address, 42)
}
