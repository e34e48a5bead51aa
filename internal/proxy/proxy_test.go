package proxy

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

const messageProxyAbi = `[
	{
		"inputs": [{"internalType": "string", "name": "schainName", "type": "string"}],
		"name": "isConnectedChain",
		"outputs": [{"internalType": "bool", "name": "", "type": "bool"}],
		"stateMutability": "view",
		"type": "function"
	}
]`

func writeProxyFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "proxyMainnet.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestRequiredKeys(t *testing.T) {
	assert.Equal(t,
		[]string{"linker_abi", "linker_address", "community_pool_abi", "community_pool_address"},
		RequiredKeys([]string{"linker", "community_pool"}))
	assert.Len(t, RequiredKeys(MainnetContracts), 2*len(MainnetContracts))
	assert.Empty(t, RequiredKeys(nil))
}

func TestFile_CheckKeys(t *testing.T) {
	f, err := Load(writeProxyFile(t, `{"linker_abi": [], "linker_address": "0x0"}`))
	require.NoError(t, err)

	assert.NoError(t, f.CheckKeys("linker_abi", "linker_address"))

	err = f.CheckKeys("linker_abi", "community_pool_abi", "community_pool_address")
	require.ErrorIs(t, err, ErrMissingEntry)
	assert.Contains(t, err.Error(), "community_pool_abi, community_pool_address")
	assert.NotContains(t, err.Error(), "linker_abi")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)

	_, err = Load(writeProxyFile(t, `[1, 2]`))
	assert.Error(t, err)
}

func TestFile_Contract(t *testing.T) {
	addr := "0x656fb12abab353FB1875a4e3Dc4D70179CB85BA4"
	f, err := Load(writeProxyFile(t, `{
		"message_proxy_mainnet_abi": `+messageProxyAbi+`,
		"message_proxy_mainnet_address": "`+addr+`"
	}`))
	require.NoError(t, err)

	c, err := f.Contract("message_proxy_mainnet")
	require.NoError(t, err)
	assert.Equal(t, "message_proxy_mainnet", c.Name)
	assert.Equal(t, common.HexToAddress(addr), c.Address)
	require.Contains(t, c.ABI.Methods, "isConnectedChain")

	input, err := c.Pack("isConnectedChain", "d2")
	require.NoError(t, err)
	// selector, offset, length, padded string
	assert.Len(t, input, 4+3*32)
	assert.Equal(t, crypto.Keccak256([]byte("isConnectedChain(string)"))[:4], input[:4])

	_, err = c.Pack("isConnectedChain", 42)
	assert.Error(t, err)
}

func TestFile_ContractErrors(t *testing.T) {
	f, err := Load(writeProxyFile(t, `{
		"linker_abi": `+messageProxyAbi+`,
		"linker_address": "not-an-address",
		"community_pool_abi": {"broken": true},
		"community_pool_address": "0x656fb12abab353FB1875a4e3Dc4D70179CB85BA4"
	}`))
	require.NoError(t, err)

	_, err = f.Contract("deposit_box_eth")
	assert.ErrorIs(t, err, ErrMissingEntry)

	_, err = f.Contract("linker")
	assert.ErrorContains(t, err, "not a hex address")

	_, err = f.Contract("community_pool")
	assert.ErrorContains(t, err, "parse community_pool abi")
}
