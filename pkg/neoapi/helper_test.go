package neoapi

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/config/netmode"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-wallet/pkg/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const (
	testNetworkFee = 12345
	testSystemFee  = 100000
)

type fakeToken struct {
	symbol   string
	decimals int
	balances map[util.Uint160]*big.Int
}

// fakeRPC implements the RPC methods used by the package, any other method
// panics on the nil embedded interface.
type fakeRPC struct {
	RPC

	mtx       sync.Mutex
	height    uint32
	heightErr error
	balances  *result.NEP17Balances
	transfers *result.NEP17Transfers
	unclaimed *big.Int
	tokens    map[util.Uint160]fakeToken
	invokes   map[string]int
	sent      []*transaction.Transaction
	sendErr   error
	closed    int
	dials     int
}

func newFakeRPC() *fakeRPC {
	return &fakeRPC{
		height:    100,
		unclaimed: big.NewInt(0),
		tokens:    make(map[util.Uint160]fakeToken),
		invokes:   make(map[string]int),
	}
}

func (f *fakeRPC) GetBlockCount() (uint32, error) {
	return f.height, f.heightErr
}

func (f *fakeRPC) GetVersion() (*result.Version, error) {
	return &result.Version{
		Protocol: result.Protocol{
			Network:         netmode.TestNet,
			ValidatorsCount: 7,
		},
	}, nil
}

func (f *fakeRPC) GetNEP17Balances(util.Uint160) (*result.NEP17Balances, error) {
	if f.balances == nil {
		return nil, errors.New("no balances")
	}
	return f.balances, nil
}

func (f *fakeRPC) GetNEP17Transfers(util.Uint160, *uint64, *uint64, *int, *int) (*result.NEP17Transfers, error) {
	if f.transfers == nil {
		return nil, errors.New("no transfers")
	}
	return f.transfers, nil
}

func (f *fakeRPC) GetUnclaimedGas(string) (result.UnclaimedGas, error) {
	return result.UnclaimedGas{Unclaimed: *f.unclaimed}, nil
}

func (f *fakeRPC) InvokeFunction(contract util.Uint160, operation string, params []smartcontract.Parameter, _ []transaction.Signer) (*result.Invoke, error) {
	f.mtx.Lock()
	f.invokes[operation]++
	f.mtx.Unlock()

	tok, ok := f.tokens[contract]
	if !ok {
		return &result.Invoke{State: "FAULT", FaultException: "unknown contract"}, nil
	}
	var item stackitem.Item
	switch operation {
	case "symbol":
		item = stackitem.Make(tok.symbol)
	case "decimals":
		item = stackitem.Make(tok.decimals)
	case "balanceOf":
		acc := params[0].Value.(util.Uint160)
		bal, ok := tok.balances[acc]
		if !ok {
			bal = big.NewInt(0)
		}
		item = stackitem.Make(bal)
	default:
		return &result.Invoke{State: "FAULT", FaultException: "unknown method"}, nil
	}
	return &result.Invoke{State: "HALT", Stack: []stackitem.Item{item}}, nil
}

func (f *fakeRPC) InvokeScript(script []byte, _ []transaction.Signer) (*result.Invoke, error) {
	return &result.Invoke{State: "HALT", GasConsumed: testSystemFee, Script: script}, nil
}

func (f *fakeRPC) CalculateNetworkFee(*transaction.Transaction) (int64, error) {
	return testNetworkFee, nil
}

func (f *fakeRPC) SendRawTransaction(tx *transaction.Transaction) (util.Uint256, error) {
	if f.sendErr != nil {
		return util.Uint256{}, f.sendErr
	}
	f.sent = append(f.sent, tx)
	return tx.Hash(), nil
}

func (f *fakeRPC) Close() {
	f.mtx.Lock()
	f.closed++
	f.mtx.Unlock()
}

func newTestClient(t *testing.T, nets map[string][]string, rpcs map[string]*fakeRPC) *Client {
	cfg := config.Default()
	cfg.Networks = make(map[string]config.Network)
	for name, eps := range nets {
		cfg.Networks[name] = config.Network{RPCEndpoints: eps}
	}
	c, err := New(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	c.SetDialer(func(_ context.Context, endpoint string) (RPC, error) {
		r, ok := rpcs[endpoint]
		if !ok {
			return nil, errors.New("connection refused")
		}
		r.mtx.Lock()
		r.dials++
		r.mtx.Unlock()
		return r, nil
	})
	return c
}

// newSingleClient returns a Client with a single TestNet node.
func newSingleClient(t *testing.T) (*Client, *fakeRPC) {
	r := newFakeRPC()
	c := newTestClient(t,
		map[string][]string{config.TestNet: {"http://node"}},
		map[string]*fakeRPC{"http://node": r})
	return c, r
}
