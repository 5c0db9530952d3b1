package neoapi

import (
	"context"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/neo"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-wallet/pkg/scripthash"
	"github.com/shopspring/decimal"
)

// SendAsset transfers NEO and/or GAS to the address in a single transaction.
func (c *Client) SendAsset(ctx context.Context, net string, to string, from string, amounts AssetAmounts, sign SigningFunc) (*Response, error) {
	toAcc, err := ParseAddress(to)
	if err != nil {
		return nil, err
	}
	type transfer struct {
		token  util.Uint160
		amount *big.Int
	}
	var transfers []transfer
	for _, a := range []struct {
		token    util.Uint160
		amount   decimal.Decimal
		decimals int
		symbol   string
	}{
		{neo.Hash, amounts.NEO, NEODecimals, NEOSymbol},
		{gas.Hash, amounts.GAS, GASDecimals, GASSymbol},
	} {
		v, err := toInteger(a.amount, a.decimals)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.symbol, err)
		}
		if v.Sign() > 0 {
			transfers = append(transfers, transfer{a.token, v})
		}
	}
	if len(transfers) == 0 {
		return nil, ErrNothingToSend
	}

	return c.Submit(ctx, net, from, decimal.Zero, sign, func(_ RPC, sender util.Uint160) ([]byte, error) {
		var script []byte
		for _, t := range transfers {
			s, err := TransferScript(t.token, sender, toAcc, t.amount)
			if err != nil {
				return nil, err
			}
			script = append(script, s...)
		}
		return script, nil
	})
}

// ClaimAllGas claims all unclaimed GAS of the account. NEO contract
// distributes GAS on every NEO transfer, so the whole NEO balance is
// transferred to the account itself.
func (c *Client) ClaimAllGas(ctx context.Context, net string, privateKey string, sign SigningFunc) (*Response, error) {
	return c.Submit(ctx, net, privateKey, decimal.Zero, sign, func(rpc RPC, sender util.Uint160) ([]byte, error) {
		uc, err := rpc.GetUnclaimedGas(address.Uint160ToString(sender))
		if err != nil {
			return nil, fmt.Errorf("failed to get unclaimed GAS: %w", err)
		}
		if uc.Unclaimed.Sign() <= 0 {
			return nil, ErrNothingToClaim
		}
		bal, err := nep17.NewReader(invoker.New(rpc, nil), neo.Hash).BalanceOf(sender)
		if err != nil {
			return nil, fmt.Errorf("failed to get NEO balance: %w", err)
		}
		return TransferScript(neo.Hash, sender, sender, bal)
	})
}

// MintTokens sends NEO to the token contract which mints tokens for the
// sender on payment. gasCost is added to the network fee.
func (c *Client) MintTokens(ctx context.Context, net string, scriptHash string, fromWIF string, neoAmount decimal.Decimal, gasCost decimal.Decimal, sign SigningFunc) (*Response, error) {
	contract, err := scripthash.Parse(scriptHash)
	if err != nil {
		return nil, fmt.Errorf("invalid script hash %q: %w", scriptHash, err)
	}
	v, err := toInteger(neoAmount, NEODecimals)
	if err != nil {
		return nil, fmt.Errorf("NEO: %w", err)
	}
	if v.Sign() == 0 {
		return nil, ErrNothingToSend
	}
	return c.Submit(ctx, net, fromWIF, gasCost, sign, func(_ RPC, sender util.Uint160) ([]byte, error) {
		return TransferScript(neo.Hash, sender, contract, v)
	})
}
