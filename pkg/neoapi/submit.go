package neoapi

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ScriptBuilder creates the script of a transaction sent by sender. It can
// use rpc to fetch the data it needs.
type ScriptBuilder func(rpc RPC, sender util.Uint160) ([]byte, error)

// ParseSender creates the account of a transaction sender. from is a WIF or
// a hex-encoded private key. When the transaction is signed externally from
// is a hex-encoded public key instead and the account can't sign.
func ParseSender(from string, external bool) (*wallet.Account, error) {
	if external {
		pub, err := keys.NewPublicKeyFromString(from)
		if err != nil {
			return nil, fmt.Errorf("%w: external signing requires a public key: %v", ErrInvalidKey, err)
		}
		return &wallet.Account{
			Address: pub.Address(),
			Contract: &wallet.Contract{
				Script: pub.GetVerificationScript(),
				Parameters: []wallet.ContractParam{{
					Name: "parameter0",
					Type: smartcontract.SignatureType,
				}},
			},
		}, nil
	}
	if acc, err := wallet.NewAccountFromWIF(from); err == nil {
		return acc, nil
	}
	pk, err := keys.NewPrivateKeyFromHex(from)
	if err != nil {
		return nil, fmt.Errorf("%w: neither WIF nor hex private key", ErrInvalidKey)
	}
	return wallet.NewAccountFromPrivateKey(pk), nil
}

// GASFee converts an additional network fee given in GAS.
func GASFee(gasCost decimal.Decimal) (int64, error) {
	v, err := toInteger(gasCost, GASDecimals)
	if err != nil {
		return 0, fmt.Errorf("gas cost: %w", err)
	}
	if !v.IsInt64() {
		return 0, fmt.Errorf("%w: gas cost %s is too big", ErrInvalidAmount, gasCost)
	}
	return v.Int64(), nil
}

// Submit creates a transaction with the script made by build, adds gasCost
// to its network fee, signs it (with the sender key or sign if it's not nil)
// and relays it to the best RPC node of the network.
func (c *Client) Submit(ctx context.Context, net string, from string, gasCost decimal.Decimal, sign SigningFunc, build ScriptBuilder) (*Response, error) {
	extraFee, err := GASFee(gasCost)
	if err != nil {
		return nil, err
	}
	acc, err := ParseSender(from, sign != nil)
	if err != nil {
		return nil, err
	}
	rpc, err := c.connect(ctx, net)
	if err != nil {
		return nil, err
	}
	defer rpc.Close()

	a, err := actor.NewSimple(rpc, acc)
	if err != nil {
		return nil, fmt.Errorf("failed to create actor: %w", err)
	}
	script, err := build(rpc, acc.Contract.ScriptHash())
	if err != nil {
		return nil, err
	}
	if len(script) == 0 {
		return nil, errors.New("empty transaction script")
	}
	tx, err := a.MakeUnsignedRun(script, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	tx.NetworkFee += extraFee

	if sign != nil {
		err = sign(ctx, tx, a.GetNetwork())
	} else {
		err = a.Sign(tx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	h, vub, err := a.Send(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to relay transaction: %w", err)
	}
	c.log.Info("transaction relayed",
		zap.String("network", net),
		zap.String("sender", acc.Address),
		zap.String("hash", h.StringLE()),
		zap.Uint32("vub", vub),
		zap.Int64("sysfee", tx.SystemFee),
		zap.Int64("netfee", tx.NetworkFee))
	return &Response{TxHash: h, ValidUntilBlock: vub, Network: a.GetNetwork()}, nil
}

// TransferScript creates an asserted NEP-17 transfer script without data.
func TransferScript(token, from, to util.Uint160, amount *big.Int) ([]byte, error) {
	script, err := smartcontract.CreateCallWithAssertScript(token, "transfer", from, to, amount, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create transfer script: %w", err)
	}
	return script, nil
}
