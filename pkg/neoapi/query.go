package neoapi

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/shopspring/decimal"
)

// ParseAddress decodes a Neo address.
func ParseAddress(addr string) (util.Uint160, error) {
	u, err := address.StringToUint160(addr)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("%w %q: %v", ErrInvalidAddress, addr, err)
	}
	return u, nil
}

// GetBalance returns NEP-17 balances of the address.
func (c *Client) GetBalance(ctx context.Context, net string, addr string) (*Balance, error) {
	acc, err := ParseAddress(addr)
	if err != nil {
		return nil, err
	}
	rpc, err := c.connect(ctx, net)
	if err != nil {
		return nil, err
	}
	defer rpc.Close()

	bs, err := rpc.GetNEP17Balances(acc)
	if err != nil {
		return nil, fmt.Errorf("failed to get NEP-17 balances: %w", err)
	}

	res := &Balance{
		Address: addr,
		Net:     net,
		Assets:  make(map[string]AssetBalance, len(bs.Balances)+2),
	}
	for _, info := range natives {
		res.Assets[info.Symbol] = AssetBalance{
			Hash:     info.Hash,
			Symbol:   info.Symbol,
			Decimals: info.Decimals,
			Amount:   decimal.Zero,
		}
	}
	for _, b := range bs.Balances {
		info, err := c.TokenInfo(net, rpc, b.Asset)
		if err != nil {
			return nil, err
		}
		amount, err := parseInteger(b.Amount, info.Decimals)
		if err != nil {
			return nil, fmt.Errorf("balance of %s: %w", info.Symbol, err)
		}
		key := info.Symbol
		if prev, ok := res.Assets[key]; ok && !prev.Hash.Equals(info.Hash) {
			key = info.Hash.StringLE()
		}
		res.Assets[key] = AssetBalance{
			Hash:        info.Hash,
			Symbol:      info.Symbol,
			Decimals:    info.Decimals,
			Amount:      amount,
			LastUpdated: b.LastUpdated,
		}
	}
	return res, nil
}

// GetClaims returns the amount of GAS the address can claim.
func (c *Client) GetClaims(ctx context.Context, net string, addr string) (*Claims, error) {
	if _, err := ParseAddress(addr); err != nil {
		return nil, err
	}
	rpc, err := c.connect(ctx, net)
	if err != nil {
		return nil, err
	}
	defer rpc.Close()

	uc, err := rpc.GetUnclaimedGas(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to get unclaimed GAS: %w", err)
	}
	return &Claims{
		Address:   addr,
		Net:       net,
		Unclaimed: fromInteger(&uc.Unclaimed, GASDecimals),
	}, nil
}

// GetTransactionHistory returns NEP-17 transfers of the address (as tracked
// by the node), newest first.
func (c *Client) GetTransactionHistory(ctx context.Context, net string, addr string) (*History, error) {
	acc, err := ParseAddress(addr)
	if err != nil {
		return nil, err
	}
	rpc, err := c.connect(ctx, net)
	if err != nil {
		return nil, err
	}
	defer rpc.Close()

	ts, err := rpc.GetNEP17Transfers(acc, nil, nil, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get NEP-17 transfers: %w", err)
	}

	res := &History{
		Address: addr,
		Net:     net,
		Entries: make([]HistoryEntry, 0, len(ts.Sent)+len(ts.Received)),
	}
	add := func(list []result.NEP17Transfer, dir Direction) error {
		for _, t := range list {
			info, err := c.TokenInfo(net, rpc, t.Asset)
			if err != nil {
				return err
			}
			amount, err := parseInteger(t.Amount, info.Decimals)
			if err != nil {
				return fmt.Errorf("transfer %s: %w", t.TxHash.StringLE(), err)
			}
			res.Entries = append(res.Entries, HistoryEntry{
				TxHash:       t.TxHash,
				Asset:        t.Asset,
				Symbol:       info.Symbol,
				Direction:    dir,
				Counterparty: t.Address,
				Amount:       amount,
				Block:        t.Index,
				Timestamp:    time.UnixMilli(int64(t.Timestamp)).UTC(),
			})
		}
		return nil
	}
	if err := add(ts.Sent, Sent); err != nil {
		return nil, err
	}
	if err := add(ts.Received, Received); err != nil {
		return nil, err
	}
	sort.SliceStable(res.Entries, func(i, j int) bool {
		if res.Entries[i].Block != res.Entries[j].Block {
			return res.Entries[i].Block > res.Entries[j].Block
		}
		return res.Entries[i].Timestamp.After(res.Entries[j].Timestamp)
	})
	return res, nil
}
