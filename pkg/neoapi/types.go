package neoapi

import (
	"context"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/config/netmode"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/shopspring/decimal"
)

type (
	// Balance is the set of NEP-17 balances of an address, keyed by token
	// symbol. NEO and GAS are always present.
	Balance struct {
		Address string                  `json:"address"`
		Net     string                  `json:"net"`
		Assets  map[string]AssetBalance `json:"assets"`
	}

	// AssetBalance is a balance of a single token.
	AssetBalance struct {
		Hash        util.Uint160    `json:"hash"`
		Symbol      string          `json:"symbol"`
		Decimals    int             `json:"decimals"`
		Amount      decimal.Decimal `json:"amount"`
		LastUpdated uint32          `json:"lastupdated"`
	}

	// Claims is the amount of GAS an address can claim.
	Claims struct {
		Address   string          `json:"address"`
		Net       string          `json:"net"`
		Unclaimed decimal.Decimal `json:"unclaimed"`
	}

	// History is a list of token transfers of an address, newest first.
	History struct {
		Address string         `json:"address"`
		Net     string         `json:"net"`
		Entries []HistoryEntry `json:"entries"`
	}

	// HistoryEntry is a single token transfer.
	HistoryEntry struct {
		TxHash       util.Uint256    `json:"txid"`
		Asset        util.Uint160    `json:"asset"`
		Symbol       string          `json:"symbol"`
		Direction    Direction       `json:"direction"`
		Counterparty string          `json:"counterparty,omitempty"`
		Amount       decimal.Decimal `json:"amount"`
		Block        uint32          `json:"block"`
		Timestamp    time.Time       `json:"timestamp"`
	}

	// Direction of a transfer relative to the history owner.
	Direction string

	// Response describes a transaction relayed to the network.
	Response struct {
		TxHash          util.Uint256  `json:"txid"`
		ValidUntilBlock uint32        `json:"validuntilblock"`
		Network         netmode.Magic `json:"network"`
	}

	// AssetAmounts is the amount of each native asset to send, zero amounts
	// are not sent.
	AssetAmounts struct {
		NEO decimal.Decimal `json:"NEO"`
		GAS decimal.Decimal `json:"GAS"`
	}

	// SigningFunc adds witnesses to a fully built transaction before it's
	// relayed. It's used for external signers (hardware wallets, remote
	// signing services) and must fill invocation scripts of tx.Scripts for
	// the given network.
	SigningFunc func(ctx context.Context, tx *transaction.Transaction, net netmode.Magic) error

	// TokenInfo is cached token metadata.
	TokenInfo struct {
		Hash     util.Uint160
		Symbol   string
		Decimals int
	}
)

// Transfer directions.
const (
	Sent     Direction = "sent"
	Received Direction = "received"
)

// NEO returns the NEO balance.
func (b *Balance) NEO() decimal.Decimal {
	return b.Assets[NEOSymbol].Amount
}

// GAS returns the GAS balance.
func (b *Balance) GAS() decimal.Decimal {
	return b.Assets[GASSymbol].Amount
}
