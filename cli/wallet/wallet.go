package wallet

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nspcc-dev/neo-wallet/cli/flags"
	"github.com/nspcc-dev/neo-wallet/cli/options"
	"github.com/nspcc-dev/neo-wallet/pkg/neoapi"
	neowallet "github.com/nspcc-dev/neo-wallet/pkg/wallet"
	"github.com/urfave/cli"
)

var (
	addressFlag = flags.AddressFlag{
		Name:  "address, a",
		Usage: "Address to use",
	}
	toFlag = flags.AddressFlag{
		Name:  "to",
		Usage: "Address to send to",
	}
	tokenFlag = cli.StringFlag{
		Name:  "token",
		Usage: "Token contract script hash (LE, with or without 0x)",
	}
	gasCostFlag = flags.DecimalFlag{
		Name:  "gas-cost, g",
		Usage: "Additional network fee (priority fee) in GAS",
	}
)

// getWallet creates the wallet for the Context, it's replaced in tests.
var getWallet = options.GetWallet

// NewCommands returns wallet operation commands.
func NewCommands() []cli.Command {
	return []cli.Command{
		{
			Name:      "balance",
			Usage:     "get NEO, GAS and other NEP-17 token balances of an address",
			UsageText: "balance --address <addr> [--mainnet | --testnet | --network-id <id>] [--config-file <file>]",
			Action:    getBalance,
			Flags:     flags.MarkRequired(append([]cli.Flag{addressFlag}, options.Common...), addressFlag.Name),
		},
		{
			Name:      "claims",
			Usage:     "get the amount of GAS an address can claim",
			UsageText: "claims --address <addr>",
			Action:    getClaims,
			Flags:     flags.MarkRequired(append([]cli.Flag{addressFlag}, options.Common...), addressFlag.Name),
		},
		{
			Name:      "history",
			Usage:     "get NEP-17 transfers of an address, newest first",
			UsageText: "history --address <addr>",
			Action:    getHistory,
			Flags:     flags.MarkRequired(append([]cli.Flag{addressFlag}, options.Common...), addressFlag.Name),
		},
		{
			Name:      "token-balance",
			Usage:     "get NEP-17 token balance of an address",
			UsageText: "token-balance --token <hash> --address <addr>",
			Action:    getTokenBalance,
			Flags:     flags.MarkRequired(append([]cli.Flag{tokenFlag, addressFlag}, options.Common...), tokenFlag.Name, addressFlag.Name),
		},
		{
			Name:      "send",
			Usage:     "send NEO and/or GAS in a single transaction",
			UsageText: "send --to <addr> [--neo <amount>] [--gas <amount>] [--wif <key>]",
			Action:    sendAsset,
			Flags: flags.MarkRequired(append(append([]cli.Flag{
				toFlag,
				flags.DecimalFlag{Name: "neo", Usage: "Amount of NEO to send"},
				flags.DecimalFlag{Name: "gas", Usage: "Amount of GAS to send"},
			}, options.Signing...), options.Common...), toFlag.Name),
		},
		{
			Name:      "claim-gas",
			Usage:     "claim all unclaimed GAS of the account",
			UsageText: "claim-gas [--wif <key>]",
			Action:    claimGas,
			Flags:     append(append([]cli.Flag{}, options.Signing...), options.Common...),
		},
		{
			Name:      "mint",
			Usage:     "mint tokens by sending NEO to the token contract",
			UsageText: "mint --token <hash> --neo <amount> [--gas-cost <amount>] [--wif <key>]",
			Action:    mintTokens,
			Flags: flags.MarkRequired(append(append([]cli.Flag{
				tokenFlag,
				flags.DecimalFlag{Name: "neo", Usage: "Amount of NEO to send to the contract"},
				gasCostFlag,
			}, options.Signing...), options.Common...), tokenFlag.Name, "neo"),
		},
		{
			Name:      "transfer",
			Usage:     "transfer NEP-17 tokens",
			UsageText: "transfer --token <hash> --to <addr> --amount <amount> [--gas-cost <amount>] [--wif <key>]",
			Action:    transferToken,
			Flags: flags.MarkRequired(append(append([]cli.Flag{
				tokenFlag,
				toFlag,
				flags.DecimalFlag{Name: "amount", Usage: "Amount of tokens to transfer"},
				gasCostFlag,
			}, options.Signing...), options.Common...), tokenFlag.Name, toFlag.Name, "amount"),
		},
	}
}

func getBalance(ctx *cli.Context) error {
	addr := flags.AddressFromContext(ctx, "address")
	return run(ctx, func(gctx context.Context, w *neowallet.Wallet) (any, error) {
		return w.GetBalance(gctx, addr.String())
	})
}

func getClaims(ctx *cli.Context) error {
	addr := flags.AddressFromContext(ctx, "address")
	return run(ctx, func(gctx context.Context, w *neowallet.Wallet) (any, error) {
		return w.GetClaims(gctx, addr.String())
	})
}

func getHistory(ctx *cli.Context) error {
	addr := flags.AddressFromContext(ctx, "address")
	return run(ctx, func(gctx context.Context, w *neowallet.Wallet) (any, error) {
		return w.GetTransactionHistory(gctx, addr.String())
	})
}

func getTokenBalance(ctx *cli.Context) error {
	token := ctx.String("token")
	addr := flags.AddressFromContext(ctx, "address")
	return run(ctx, func(gctx context.Context, w *neowallet.Wallet) (any, error) {
		bal, err := w.GetTokenBalance(gctx, token, addr.String())
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"address": addr.String(),
			"token":   token,
			"balance": bal,
		}, nil
	})
}

func sendAsset(ctx *cli.Context) error {
	to := flags.AddressFromContext(ctx, "to")
	amounts := neoapi.AssetAmounts{
		NEO: flags.DecimalFromContext(ctx, "neo"),
		GAS: flags.DecimalFromContext(ctx, "gas"),
	}
	wif, err := options.GetWIF(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return run(ctx, func(gctx context.Context, w *neowallet.Wallet) (any, error) {
		return w.SendAsset(gctx, to.String(), wif, amounts, nil)
	})
}

func claimGas(ctx *cli.Context) error {
	wif, err := options.GetWIF(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return run(ctx, func(gctx context.Context, w *neowallet.Wallet) (any, error) {
		return w.ClaimAllGas(gctx, wif, nil)
	})
}

func mintTokens(ctx *cli.Context) error {
	token := ctx.String("token")
	neo := flags.DecimalFromContext(ctx, "neo")
	gasCost := flags.DecimalFromContext(ctx, "gas-cost")
	wif, err := options.GetWIF(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return run(ctx, func(gctx context.Context, w *neowallet.Wallet) (any, error) {
		return w.MintTokens(gctx, token, wif, neo, gasCost, nil)
	})
}

func transferToken(ctx *cli.Context) error {
	token := ctx.String("token")
	to := flags.AddressFromContext(ctx, "to")
	amount := flags.DecimalFromContext(ctx, "amount")
	gasCost := flags.DecimalFromContext(ctx, "gas-cost")
	wif, err := options.GetWIF(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return run(ctx, func(gctx context.Context, w *neowallet.Wallet) (any, error) {
		return w.TransferToken(gctx, token, wif, to.String(), amount, gasCost, nil)
	})
}

// run performs the wallet operation and prints its result as JSON.
func run(ctx *cli.Context, op func(context.Context, *neowallet.Wallet) (any, error)) error {
	w, closer, err := getWallet(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer closer()

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	res, err := op(gctx, w)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return cli.NewExitError(fmt.Errorf("failed to marshal result: %w", err), 1)
	}
	fmt.Fprintln(ctx.App.Writer, string(data))
	return nil
}
