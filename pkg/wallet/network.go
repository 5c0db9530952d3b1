package wallet

import "github.com/nspcc-dev/neo-wallet/pkg/config"

// Network names accepted by Config.Network.
const (
	MainNetName = "mainnet"
	TestNetName = "testnet"
)

// Resolved network identifiers.
const (
	MainNet = config.MainNet
	TestNet = config.TestNet
)

// ResolveNetworkID returns the network identifier for the network name.
// Unknown names resolve to an empty identifier.
func ResolveNetworkID(network string) string {
	switch network {
	case MainNetName:
		return MainNet
	case TestNetName:
		return TestNet
	default:
		return ""
	}
}
