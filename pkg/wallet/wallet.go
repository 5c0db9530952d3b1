/*
Package wallet provides Wallet, a light wallet over a Neo network API. It
resolves the network once, forwards every operation to the API with the
resolved network identifier and logs failures with the operation tag.
*/
package wallet

import (
	"context"
	"fmt"

	"github.com/nspcc-dev/neo-wallet/pkg/neoapi"
	"github.com/nspcc-dev/neo-wallet/pkg/scripthash"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Operation names.
const (
	opGetBalance            = "get_balance"
	opGetClaims             = "get_claims"
	opGetTransactionHistory = "get_transaction_history"
	opGetTokenBalance       = "get_token_balance"
	opSendAsset             = "send_asset"
	opClaimAllGas           = "claim_all_gas"
	opMintTokens            = "mint_tokens"
	opTransferToken         = "transfer_token"
)

// Log messages of failed operations.
const (
	TagGetBalance            = "getBalance err:"
	TagGetClaims             = "getClaims err:"
	TagGetTransactionHistory = "transactionHistory err:"
	TagGetTokenBalance       = "getTokenBalance err:"
	TagSendAsset             = "sendAsset err:"
	TagClaimAllGas           = "claimAllGas err:"
	TagMintTokens            = "mintTokens err:"
	TagTransferToken         = "doTransferToken err:"
)

type (
	// API is the network API used by Wallet. net is the resolved network
	// identifier.
	API interface {
		GetBalance(ctx context.Context, net string, address string) (*neoapi.Balance, error)
		GetClaims(ctx context.Context, net string, address string) (*neoapi.Claims, error)
		GetTransactionHistory(ctx context.Context, net string, address string) (*neoapi.History, error)
		GetRPCEndpoint(ctx context.Context, net string) (string, error)
		SendAsset(ctx context.Context, net string, to string, from string, amounts neoapi.AssetAmounts, sign neoapi.SigningFunc) (*neoapi.Response, error)
		ClaimAllGas(ctx context.Context, net string, privateKey string, sign neoapi.SigningFunc) (*neoapi.Response, error)
		MintTokens(ctx context.Context, net string, scriptHash string, fromWIF string, neo decimal.Decimal, gasCost decimal.Decimal, sign neoapi.SigningFunc) (*neoapi.Response, error)
	}

	// TokenAPI is the token API used by Wallet.
	TokenAPI interface {
		GetTokenBalance(ctx context.Context, endpoint string, scriptHash string, address string) (decimal.Decimal, error)
		TransferToken(ctx context.Context, net string, scriptHash string, fromWIF string, to string, amount decimal.Decimal, gasCost decimal.Decimal, sign neoapi.SigningFunc) (*neoapi.Response, error)
	}

	// Config is the Wallet configuration.
	Config struct {
		// Network is the network name (MainNetName, TestNetName), it's
		// only used when NetworkID is empty.
		Network string
		// NetworkID is the resolved network identifier passed to the API.
		NetworkID string
		// Logger is used for error reporting, no logging is done if nil.
		Logger *zap.Logger
	}

	// Wallet is a light wallet bound to a single network. It's safe for
	// concurrent use if the APIs are.
	Wallet struct {
		network   string
		networkID string
		log       *zap.Logger
		api       API
		tokens    TokenAPI
	}
)

// New creates a Wallet. The network identifier is resolved here and never
// changes, an unknown Network leaves it empty.
func New(cfg Config, api API, tokens TokenAPI) *Wallet {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	id := cfg.NetworkID
	if id == "" {
		id = ResolveNetworkID(cfg.Network)
	}
	return &Wallet{
		network:   cfg.Network,
		networkID: id,
		log:       log,
		api:       api,
		tokens:    tokens,
	}
}

// Network returns the configured network name.
func (w *Wallet) Network() string {
	return w.network
}

// NetworkID returns the resolved network identifier.
func (w *Wallet) NetworkID() string {
	return w.networkID
}

func (w *Wallet) fail(op string, tag string, err error) error {
	incFailed(op)
	w.log.Error(tag, zap.String("network", w.networkID), zap.Error(err))
	return fmt.Errorf("%s: %w", op, err)
}

// GetBalance returns NEO, GAS and token balances of the address.
func (w *Wallet) GetBalance(ctx context.Context, address string) (*neoapi.Balance, error) {
	incCalled(opGetBalance)
	res, err := w.api.GetBalance(ctx, w.networkID, address)
	if err != nil {
		return nil, w.fail(opGetBalance, TagGetBalance, err)
	}
	return res, nil
}

// GetClaims returns the amount of GAS the address can claim.
func (w *Wallet) GetClaims(ctx context.Context, address string) (*neoapi.Claims, error) {
	incCalled(opGetClaims)
	res, err := w.api.GetClaims(ctx, w.networkID, address)
	if err != nil {
		return nil, w.fail(opGetClaims, TagGetClaims, err)
	}
	return res, nil
}

// GetTransactionHistory returns the transfer history of the address.
func (w *Wallet) GetTransactionHistory(ctx context.Context, address string) (*neoapi.History, error) {
	incCalled(opGetTransactionHistory)
	res, err := w.api.GetTransactionHistory(ctx, w.networkID, address)
	if err != nil {
		return nil, w.fail(opGetTransactionHistory, TagGetTransactionHistory, err)
	}
	return res, nil
}

// GetTokenBalance returns the balance of the token contract for the
// address. It's requested from the best RPC node of the network.
func (w *Wallet) GetTokenBalance(ctx context.Context, scriptHash string, address string) (decimal.Decimal, error) {
	incCalled(opGetTokenBalance)
	endpoint, err := w.api.GetRPCEndpoint(ctx, w.networkID)
	if err != nil {
		return decimal.Decimal{}, w.fail(opGetTokenBalance, TagGetTokenBalance, err)
	}
	res, err := w.tokens.GetTokenBalance(ctx, endpoint, scripthash.Denormalize(scriptHash), address)
	if err != nil {
		return decimal.Decimal{}, w.fail(opGetTokenBalance, TagGetTokenBalance, err)
	}
	return res, nil
}

// SendAsset sends NEO and GAS to the address. from is a WIF or a private
// key, or a public key when sign is given.
func (w *Wallet) SendAsset(ctx context.Context, toAddress string, from string, amounts neoapi.AssetAmounts, sign neoapi.SigningFunc) (*neoapi.Response, error) {
	incCalled(opSendAsset)
	res, err := w.api.SendAsset(ctx, w.networkID, toAddress, from, amounts, sign)
	if err != nil {
		return nil, w.fail(opSendAsset, TagSendAsset, err)
	}
	return res, nil
}

// ClaimAllGas claims all available GAS of the account.
func (w *Wallet) ClaimAllGas(ctx context.Context, privateKey string, sign neoapi.SigningFunc) (*neoapi.Response, error) {
	incCalled(opClaimAllGas)
	res, err := w.api.ClaimAllGas(ctx, w.networkID, privateKey, sign)
	if err != nil {
		return nil, w.fail(opClaimAllGas, TagClaimAllGas, err)
	}
	return res, nil
}

// MintTokens pays neo to the token contract to mint tokens, gasCost is
// the additional fee.
func (w *Wallet) MintTokens(ctx context.Context, scriptHash string, fromWIF string, neo decimal.Decimal, gasCost decimal.Decimal, sign neoapi.SigningFunc) (*neoapi.Response, error) {
	incCalled(opMintTokens)
	res, err := w.api.MintTokens(ctx, w.networkID, scripthash.Denormalize(scriptHash), fromWIF, neo, gasCost, sign)
	if err != nil {
		return nil, w.fail(opMintTokens, TagMintTokens, err)
	}
	return res, nil
}

// TransferToken transfers tokens to the address. Zero gasCost means no
// additional fee.
func (w *Wallet) TransferToken(ctx context.Context, scriptHash string, fromWIF string, toAddress string, amount decimal.Decimal, gasCost decimal.Decimal, sign neoapi.SigningFunc) (*neoapi.Response, error) {
	incCalled(opTransferToken)
	res, err := w.tokens.TransferToken(ctx, w.networkID, scripthash.Denormalize(scriptHash), fromWIF, toAddress, amount, gasCost, sign)
	if err != nil {
		return nil, w.fail(opTransferToken, TagTransferToken, err)
	}
	return res, nil
}
