/*
Package tokens implements NEP-17 (formerly NEP-5) token balance queries and
transfers on top of neoapi.
*/
package tokens

import (
	"context"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-wallet/pkg/neoapi"
	"github.com/nspcc-dev/neo-wallet/pkg/scripthash"
	"github.com/shopspring/decimal"
)

// Client performs NEP-17 token operations.
type Client struct {
	api *neoapi.Client
}

// New creates a token Client using the given network client.
func New(api *neoapi.Client) *Client {
	return &Client{api: api}
}

// GetTokenBalance returns the token balance of the address as known by the
// RPC node at endpoint.
func (c *Client) GetTokenBalance(ctx context.Context, endpoint string, scriptHash string, addr string) (decimal.Decimal, error) {
	token, err := scripthash.Parse(scriptHash)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid script hash %q: %w", scriptHash, err)
	}
	acc, err := neoapi.ParseAddress(addr)
	if err != nil {
		return decimal.Decimal{}, err
	}
	rpc, err := c.api.Dial(ctx, endpoint)
	if err != nil {
		return decimal.Decimal{}, err
	}
	defer rpc.Close()

	info, err := c.api.TokenInfo(endpoint, rpc, token)
	if err != nil {
		return decimal.Decimal{}, err
	}
	bal, err := nep17.NewReader(invoker.New(rpc, nil), token).BalanceOf(acc)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to get %s balance: %w", info.Symbol, err)
	}
	return decimal.NewFromBigInt(bal, -int32(info.Decimals)), nil
}

// TransferToken transfers amount of tokens from the fromWIF account to the
// address. gasCost is added to the network fee.
func (c *Client) TransferToken(ctx context.Context, net string, scriptHash string, fromWIF string, to string, amount decimal.Decimal, gasCost decimal.Decimal, sign neoapi.SigningFunc) (*neoapi.Response, error) {
	token, err := scripthash.Parse(scriptHash)
	if err != nil {
		return nil, fmt.Errorf("invalid script hash %q: %w", scriptHash, err)
	}
	toAcc, err := neoapi.ParseAddress(to)
	if err != nil {
		return nil, err
	}
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %s is not positive", neoapi.ErrInvalidAmount, amount)
	}
	return c.api.Submit(ctx, net, fromWIF, gasCost, sign, func(rpc neoapi.RPC, sender util.Uint160) ([]byte, error) {
		info, err := c.api.TokenInfo(net, rpc, token)
		if err != nil {
			return nil, err
		}
		v := amount.Shift(int32(info.Decimals))
		if !v.IsInteger() {
			return nil, fmt.Errorf("%w: %s has more than %d decimal places", neoapi.ErrInvalidAmount, amount, info.Decimals)
		}
		return neoapi.TransferScript(token, sender, toAcc, v.BigInt())
	})
}
