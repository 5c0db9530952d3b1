/*
Package neoapi binds the neo-go RPC client to the wallet operations: balance,
claimable GAS and transfer history queries, RPC node selection and NEO/GAS
transfers (including GAS claiming and token minting). Transactions are built,
priced and signed by neo-go's actor package.
*/
package neoapi

import (
	"context"
	"fmt"
	"math/big"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-wallet/pkg/config"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Native token parameters.
const (
	NEOSymbol   = "NEO"
	NEODecimals = 0
	GASSymbol   = "GAS"
	GASDecimals = 8
)

// RPC is the subset of the neo-go RPC client used by the package.
type RPC interface {
	actor.RPCActor

	GetNEP17Balances(address util.Uint160) (*result.NEP17Balances, error)
	GetNEP17Transfers(address util.Uint160, start, stop *uint64, limit, page *int) (*result.NEP17Transfers, error)
	GetUnclaimedGas(address string) (result.UnclaimedGas, error)
	Close()
}

// DialFunc creates an RPC client bound to the given context.
type DialFunc func(ctx context.Context, endpoint string) (RPC, error)

// Client performs wallet operations on the configured networks.
type Client struct {
	log            *zap.Logger
	networks       map[string][]string
	dialTimeout    time.Duration
	requestTimeout time.Duration
	tokens         *lru.Cache
	dial           DialFunc
}

// New creates a Client for the networks described by cfg.
func New(cfg config.Config, log *zap.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	size := cfg.TokenCacheSize
	if size == 0 {
		size = config.DefaultTokenCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create token cache: %w", err)
	}
	nets := make(map[string][]string, len(cfg.Networks))
	for name, n := range cfg.Networks {
		nets[name] = append([]string(nil), n.RPCEndpoints...)
	}
	c := &Client{
		log:            log,
		networks:       nets,
		dialTimeout:    cfg.DialTimeout,
		requestTimeout: cfg.RequestTimeout,
		tokens:         cache,
	}
	c.dial = c.dialRPC
	return c, nil
}

// SetDialer replaces the function used to create RPC clients.
func (c *Client) SetDialer(d DialFunc) {
	if d != nil {
		c.dial = d
	}
}

// Dial creates an initialized RPC client for the given endpoint. The client
// is bound to ctx and must be closed by the caller.
func (c *Client) Dial(ctx context.Context, endpoint string) (RPC, error) {
	return c.dial(ctx, endpoint)
}

func (c *Client) dialRPC(ctx context.Context, endpoint string) (RPC, error) {
	cl, err := rpcclient.New(ctx, endpoint, rpcclient.Options{
		DialTimeout:    c.dialTimeout,
		RequestTimeout: c.requestTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create RPC client for %s: %w", endpoint, err)
	}
	err = cl.Init()
	if err != nil {
		cl.Close()
		return nil, fmt.Errorf("failed to init RPC client for %s: %w", endpoint, err)
	}
	return cl, nil
}

func toInteger(amount decimal.Decimal, decimals int) (*big.Int, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, amount)
	}
	v := amount.Shift(int32(decimals))
	if !v.IsInteger() {
		return nil, fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, amount, decimals)
	}
	return v.BigInt(), nil
}

func fromInteger(v *big.Int, decimals int) decimal.Decimal {
	return decimal.NewFromBigInt(v, -int32(decimals))
}

func parseInteger(s string, decimals int) (decimal.Decimal, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: bad integer %q", ErrInvalidAmount, s)
	}
	return fromInteger(v, decimals), nil
}
