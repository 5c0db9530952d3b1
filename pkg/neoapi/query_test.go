package neoapi

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/neo"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-wallet/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	testAccount = util.Uint160{0xaa, 0xbb, 0xcc}
	testAddress = address.Uint160ToString(testAccount)
	testToken   = util.Uint160{1, 2, 3, 4, 5}
)

func TestParseAddress(t *testing.T) {
	_, err := ParseAddress(testAddress)
	require.NoError(t, err)

	_, err = ParseAddress("not an address")
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestGetBalance(t *testing.T) {
	c, r := newSingleClient(t)
	r.tokens[testToken] = fakeToken{symbol: "TKN", decimals: 2}
	r.balances = &result.NEP17Balances{
		Address: testAddress,
		Balances: []result.NEP17Balance{
			{Asset: gas.Hash, Amount: "150000000", LastUpdated: 10},
			{Asset: testToken, Amount: "12345", LastUpdated: 11},
		},
	}

	b, err := c.GetBalance(context.Background(), config.TestNet, testAddress)
	require.NoError(t, err)
	require.Equal(t, testAddress, b.Address)
	require.Equal(t, config.TestNet, b.Net)
	require.Len(t, b.Assets, 3)
	require.True(t, b.NEO().IsZero())
	require.Equal(t, neo.Hash, b.Assets[NEOSymbol].Hash)
	require.True(t, decimal.RequireFromString("1.5").Equal(b.GAS()))
	require.Equal(t, uint32(10), b.Assets[GASSymbol].LastUpdated)
	tkn := b.Assets["TKN"]
	require.Equal(t, testToken, tkn.Hash)
	require.Equal(t, 2, tkn.Decimals)
	require.True(t, decimal.RequireFromString("123.45").Equal(tkn.Amount))
	require.Equal(t, 1, r.closed)

	// Token metadata is cached.
	_, err = c.GetBalance(context.Background(), config.TestNet, testAddress)
	require.NoError(t, err)
	require.Equal(t, 1, r.invokes["symbol"])
	require.Equal(t, 1, r.invokes["decimals"])

	t.Run("invalid address", func(t *testing.T) {
		_, err := c.GetBalance(context.Background(), config.TestNet, "bad")
		require.ErrorIs(t, err, ErrInvalidAddress)
	})
	t.Run("unknown network", func(t *testing.T) {
		_, err := c.GetBalance(context.Background(), "", testAddress)
		require.ErrorIs(t, err, ErrUnknownNetwork)
	})
	t.Run("bad amount", func(t *testing.T) {
		r.balances.Balances = []result.NEP17Balance{{Asset: gas.Hash, Amount: "1.5"}}
		_, err := c.GetBalance(context.Background(), config.TestNet, testAddress)
		require.ErrorIs(t, err, ErrInvalidAmount)
	})
	t.Run("rpc error", func(t *testing.T) {
		r.balances = nil
		_, err := c.GetBalance(context.Background(), config.TestNet, testAddress)
		require.Error(t, err)
	})
}

func TestGetBalanceSymbolClash(t *testing.T) {
	c, r := newSingleClient(t)
	r.tokens[testToken] = fakeToken{symbol: "GAS", decimals: 0}
	r.balances = &result.NEP17Balances{
		Balances: []result.NEP17Balance{
			{Asset: gas.Hash, Amount: "100000000"},
			{Asset: testToken, Amount: "7"},
		},
	}
	b, err := c.GetBalance(context.Background(), config.TestNet, testAddress)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(1).Equal(b.GAS()))
	require.True(t, decimal.NewFromInt(7).Equal(b.Assets[testToken.StringLE()].Amount))
}

func TestGetClaims(t *testing.T) {
	c, r := newSingleClient(t)
	r.unclaimed = big.NewInt(123456789)

	cl, err := c.GetClaims(context.Background(), config.TestNet, testAddress)
	require.NoError(t, err)
	require.Equal(t, testAddress, cl.Address)
	require.True(t, decimal.RequireFromString("1.23456789").Equal(cl.Unclaimed))

	_, err = c.GetClaims(context.Background(), config.TestNet, "bad")
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestGetTransactionHistory(t *testing.T) {
	c, r := newSingleClient(t)
	r.tokens[testToken] = fakeToken{symbol: "TKN", decimals: 3}
	r.transfers = &result.NEP17Transfers{
		Address: testAddress,
		Sent: []result.NEP17Transfer{
			{Timestamp: 1000, Asset: gas.Hash, Address: "NfgHwwTi3wHAS8aFAN243C5vGbkYDpqLHP", Amount: "100000000", Index: 5, TxHash: util.Uint256{1}},
		},
		Received: []result.NEP17Transfer{
			{Timestamp: 3000, Asset: neo.Hash, Amount: "3", Index: 9, TxHash: util.Uint256{2}},
			{Timestamp: 2000, Asset: testToken, Amount: "1500", Index: 7, TxHash: util.Uint256{3}},
		},
	}

	h, err := c.GetTransactionHistory(context.Background(), config.TestNet, testAddress)
	require.NoError(t, err)
	require.Len(t, h.Entries, 3)

	require.Equal(t, util.Uint256{2}, h.Entries[0].TxHash)
	require.Equal(t, Received, h.Entries[0].Direction)
	require.Equal(t, NEOSymbol, h.Entries[0].Symbol)
	require.True(t, decimal.NewFromInt(3).Equal(h.Entries[0].Amount))
	require.Equal(t, time.UnixMilli(3000).UTC(), h.Entries[0].Timestamp)

	require.Equal(t, "TKN", h.Entries[1].Symbol)
	require.True(t, decimal.RequireFromString("1.5").Equal(h.Entries[1].Amount))

	require.Equal(t, Sent, h.Entries[2].Direction)
	require.Equal(t, "NfgHwwTi3wHAS8aFAN243C5vGbkYDpqLHP", h.Entries[2].Counterparty)
	require.True(t, decimal.NewFromInt(1).Equal(h.Entries[2].Amount))
	require.Equal(t, uint32(5), h.Entries[2].Block)
}

func TestTokenInfo(t *testing.T) {
	c, r := newSingleClient(t)

	info, err := c.TokenInfo(config.TestNet, r, gas.Hash)
	require.NoError(t, err)
	require.Equal(t, GASDecimals, info.Decimals)
	require.Equal(t, 0, r.invokes["symbol"])

	_, err = c.TokenInfo(config.TestNet, r, testToken)
	require.Error(t, err)

	r.tokens[testToken] = fakeToken{symbol: "TKN", decimals: 4}
	info, err = c.TokenInfo(config.TestNet, r, testToken)
	require.NoError(t, err)
	require.Equal(t, TokenInfo{Hash: testToken, Symbol: "TKN", Decimals: 4}, info)

	_, err = c.TokenInfo(config.TestNet, r, testToken)
	require.NoError(t, err)
	_, err = c.TokenInfo(config.MainNet, r, testToken)
	require.NoError(t, err)
	require.Equal(t, 3, r.invokes["symbol"]) // failed, cached TestNet, MainNet
}

func TestTokenInfoBadDecimals(t *testing.T) {
	c, r := newSingleClient(t)
	for _, dec := range []int{-1, 78, 1000} {
		r.tokens[testToken] = fakeToken{symbol: "TKN", decimals: dec}
		_, err := c.TokenInfo(config.TestNet, r, testToken)
		require.Error(t, err, dec)
	}
	r.tokens[testToken] = fakeToken{symbol: "TKN", decimals: 77}
	info, err := c.TokenInfo(config.TestNet, r, testToken)
	require.NoError(t, err)
	require.Equal(t, 77, info.Decimals)
	require.Equal(t, 4, r.invokes["decimals"])
}
