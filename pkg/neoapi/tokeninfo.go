package neoapi

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/neo"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/neptoken"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

var natives = map[util.Uint160]TokenInfo{
	neo.Hash: {Hash: neo.Hash, Symbol: NEOSymbol, Decimals: NEODecimals},
	gas.Hash: {Hash: gas.Hash, Symbol: GASSymbol, Decimals: GASDecimals},
}

// TokenInfo returns the symbol and decimals of the NEP-17 token. Results are
// cached per namespace (a network id or an endpoint), native tokens are
// never requested from the node.
func (c *Client) TokenInfo(namespace string, rpc RPC, hash util.Uint160) (TokenInfo, error) {
	if info, ok := natives[hash]; ok {
		return info, nil
	}
	key := namespace + ":" + hash.StringLE()
	if v, ok := c.tokens.Get(key); ok {
		return v.(TokenInfo), nil
	}

	r := nep17.NewReader(invoker.New(rpc, nil), hash)
	sym, err := r.Symbol()
	if err != nil {
		return TokenInfo{}, fmt.Errorf("failed to get symbol of %s: %w", hash.StringLE(), err)
	}
	dec, err := r.Decimals()
	if err != nil {
		return TokenInfo{}, fmt.Errorf("failed to get decimals of %s: %w", hash.StringLE(), err)
	}
	if dec < 0 || dec > neptoken.MaxValidDecimals {
		return TokenInfo{}, fmt.Errorf("%w: %s reports %d decimals", ErrInvalidToken, hash.StringLE(), dec)
	}
	info := TokenInfo{Hash: hash, Symbol: sym, Decimals: dec}
	c.tokens.Add(key, info)
	return info, nil
}
