/*
Package options contains a set of common CLI options and helper functions to use them.
*/
package options

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-wallet/cli/input"
	"github.com/nspcc-dev/neo-wallet/pkg/config"
	"github.com/nspcc-dev/neo-wallet/pkg/neoapi"
	"github.com/nspcc-dev/neo-wallet/pkg/tokens"
	"github.com/nspcc-dev/neo-wallet/pkg/wallet"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultTimeout is the default timeout of a single wallet operation
	// including RPC node selection.
	DefaultTimeout = 30 * time.Second

	// WIFEnv is the environment variable holding the sender key.
	WIFEnv = "NEO_WALLET_WIF"
)

// Network is a set of flags for choosing the network to operate on
// (mainnet/testnet or any network from the configuration file).
var Network = []cli.Flag{
	cli.BoolFlag{Name: "mainnet, m", Usage: "use mainnet network"},
	cli.BoolFlag{Name: "testnet, t", Usage: "use testnet network (default)"},
	cli.StringFlag{Name: "network-id", Usage: "network name from the configuration file (overrides --mainnet and --testnet)"},
}

// Timeout is a flag for the operation timeout.
var Timeout = cli.DurationFlag{
	Name:  "timeout, s",
	Value: DefaultTimeout,
	Usage: "Timeout for the operation",
}

// ConfigFile is a flag for the wallet configuration file.
var ConfigFile = cli.StringFlag{
	Name:  "config-file",
	Usage: "path to the wallet configuration file (built-in MainNet and TestNet nodes are used if not specified)",
}

// Debug is a flag for debug logging.
var Debug = cli.BoolFlag{
	Name:  "debug, d",
	Usage: "enable debug logging (overrides configuration)",
}

// EnvFile is a flag for the .env file to load the key from.
var EnvFile = cli.StringFlag{
	Name:  "env-file",
	Usage: "load environment variables (" + WIFEnv + ") from the given file",
}

// WIF is a flag for the sender key.
var WIF = cli.StringFlag{
	Name:  "wif",
	Usage: "sender key in WIF or hex; taken from " + WIFEnv + " or prompted for if not specified",
}

// Common is a set of flags used by every wallet command.
var Common = append([]cli.Flag{ConfigFile, Debug, Timeout}, Network...)

// Signing is a set of flags used by commands creating transactions.
var Signing = []cli.Flag{WIF, EnvFile}

var errNoKey = errors.New("no sender key specified, use '--wif' or " + WIFEnv)

// GetNetwork examines Context's flags and returns the appropriate network
// name. It defaults to testnet if no flags are given.
func GetNetwork(ctx *cli.Context) string {
	var net = wallet.TestNetName
	if ctx.Bool("mainnet") {
		net = wallet.MainNetName
	}
	return net
}

// GetTimeoutContext returns a context.Context with the default or a user-set timeout.
func GetTimeoutContext(ctx *cli.Context) (context.Context, func()) {
	dur := ctx.Duration("timeout")
	if dur == 0 {
		dur = DefaultTimeout
	}
	return context.WithTimeout(context.Background(), dur)
}

// GetConfigFromContext returns the configuration from the file given with
// the --config-file flag or the default one.
func GetConfigFromContext(ctx *cli.Context) (config.Config, error) {
	if configFile := ctx.String("config-file"); len(configFile) != 0 {
		return config.LoadFile(configFile)
	}
	return config.Default(), nil
}

// HandleLoggingParams creates a logger from the configuration. If a user
// selected debug level, it's enabled. If LogPath is configured, the log file
// (and its directory) is created, stderr is used otherwise.
func HandleLoggingParams(debug bool, cfg config.Logger) (*zap.Logger, error) {
	var (
		level = zapcore.InfoLevel
		err   error
	)
	if len(cfg.LogLevel) > 0 {
		level, err = zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	if cfg.LogEncoding != "" {
		cc.Encoding = cfg.LogEncoding
	}
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil

	if logPath := cfg.LogPath; logPath != "" {
		if err := io.MakeDirForFile(logPath, "logger"); err != nil {
			return nil, err
		}
		cc.OutputPaths = []string{logPath}
	}
	return cc.Build()
}

// LoadEnv loads the file given with the --env-file flag into the process
// environment. Variables that are already set are not overridden.
func LoadEnv(ctx *cli.Context) error {
	path := ctx.String("env-file")
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// GetWIF returns the sender key. It's taken from the --wif flag, the
// environment (possibly loaded from --env-file) or the terminal.
func GetWIF(ctx *cli.Context) (string, error) {
	if wif := ctx.String("wif"); wif != "" {
		return wif, nil
	}
	if err := LoadEnv(ctx); err != nil {
		return "", err
	}
	if wif := os.Getenv(WIFEnv); wif != "" {
		return wif, nil
	}
	wif, err := input.ReadPassword("Enter WIF > ")
	if err != nil {
		return "", fmt.Errorf("error reading key: %w", err)
	}
	wif = strings.TrimSpace(wif)
	if wif == "" {
		return "", errNoKey
	}
	return wif, nil
}

// GetWallet creates a wallet for the network chosen with the Context's
// flags. The returned function flushes the wallet logger.
func GetWallet(ctx *cli.Context) (*wallet.Wallet, func(), error) {
	cfg, err := GetConfigFromContext(ctx)
	if err != nil {
		return nil, nil, err
	}
	log, err := HandleLoggingParams(ctx.Bool("debug"), cfg.Logger)
	if err != nil {
		return nil, nil, err
	}
	api, err := neoapi.New(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}
	w := wallet.New(wallet.Config{
		Network:   GetNetwork(ctx),
		NetworkID: ctx.String("network-id"),
		Logger:    log,
	}, api, tokens.New(api))
	return w, func() { _ = log.Sync() }, nil
}
