package chain

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/skalenetwork/ima-testconf/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

const (
	testPrivHex = "289c2857d4598e37fb9647507e47a309d6133539bf21a8b9cb6df88fd5232032"
	testAddrHex = "0x970E8128AB834E8EAC17Ab8E3812F010678CF791"
)

func TestEndpoints(t *testing.T) {
	cfg, err := config.New(".", map[string]string{
		config.KeyMainnetKey:       "0x01",
		config.KeySchainKey:        "0x02",
		config.KeySchainRPCURL:     "http://schain:15000",
		config.KeyNetworkForSchain: "local",
	})
	require.NoError(t, err)

	eps := Endpoints(cfg)
	require.Len(t, eps, 2)
	assert.Equal(t, Endpoint{Name: Mainnet, Network: "mainnet", URL: "http://127.0.0.1:8545", Key: "0x01"}, eps[0])
	assert.Equal(t, Endpoint{Name: Schain, Network: "local", URL: "http://schain:15000", Key: "0x02"}, eps[1])
}

func TestAddressFromHex(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "bare", key: testPrivHex},
		{name: "prefixed", key: "0x" + testPrivHex},
		{name: "upper prefix", key: "0X" + testPrivHex},
		{name: "too short", key: "0xabc", wantErr: true},
		{name: "not hex", key: "zz" + testPrivHex[2:], wantErr: true},
		{name: "empty", key: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := AddressFromHex(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, common.HexToAddress(testAddrHex), addr)
		})
	}
}
