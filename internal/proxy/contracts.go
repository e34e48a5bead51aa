package proxy

// Contracts the IMA agent expects in the main-net proxy file.
var MainnetContracts = []string{
	"deposit_box_eth",
	"message_proxy_mainnet",
	"linker",
	"deposit_box_erc20",
	"deposit_box_erc721",
	"deposit_box_erc1155",
	"deposit_box_erc721_with_metadata",
	"community_pool",
}

// Contracts the IMA agent expects in an s-chain proxy file.
var SchainContracts = []string{
	"token_manager_eth",
	"token_manager_erc20",
	"token_manager_erc721",
	"token_manager_erc1155",
	"token_manager_erc721_with_metadata",
	"message_proxy_chain",
	"token_manager_linker",
	"community_locker",
}

const (
	abiSuffix     = "_abi"
	addressSuffix = "_address"
)

// RequiredKeys expands contract names into their "_abi" and "_address" entries.
func RequiredKeys(contracts []string) []string {
	keys := make([]string, 0, len(contracts)*2)
	for _, c := range contracts {
		keys = append(keys, c+abiSuffix, c+addressSuffix)
	}
	return keys
}
