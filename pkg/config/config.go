package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// MainNet is the network identifier of the Neo main network.
	MainNet = "MainNet"
	// TestNet is the network identifier of the Neo test network.
	TestNet = "TestNet"

	// DefaultDialTimeout is used when DialTimeout is not set.
	DefaultDialTimeout = 5 * time.Second
	// DefaultRequestTimeout is used when RequestTimeout is not set.
	DefaultRequestTimeout = 10 * time.Second
	// DefaultTokenCacheSize is used when TokenCacheSize is not set.
	DefaultTokenCacheSize = 128
)

// Version is the version of the wallet, set at build time.
var Version string

type (
	// Config is the top-level wallet configuration.
	Config struct {
		Networks       map[string]Network `yaml:"Networks"`
		Logger         Logger             `yaml:"Logger"`
		DialTimeout    time.Duration      `yaml:"DialTimeout"`
		RequestTimeout time.Duration      `yaml:"RequestTimeout"`
		TokenCacheSize int                `yaml:"TokenCacheSize"`
	}

	// Network holds the RPC nodes of a single network.
	Network struct {
		RPCEndpoints []string `yaml:"RPCEndpoints"`
	}

	// Logger contains logging settings.
	Logger struct {
		LogEncoding string `yaml:"LogEncoding"`
		LogLevel    string `yaml:"LogLevel"`
		LogPath     string `yaml:"LogPath"`
	}
)

// Default returns the configuration with public MainNet and TestNet seed nodes.
func Default() Config {
	return Config{
		Networks: map[string]Network{
			MainNet: {RPCEndpoints: []string{
				"https://mainnet1.neo.coz.io:443",
				"https://mainnet2.neo.coz.io:443",
				"http://seed1.neo.org:10332",
				"http://seed2.neo.org:10332",
			}},
			TestNet: {RPCEndpoints: []string{
				"https://testnet1.neo.coz.io:443",
				"https://testnet2.neo.coz.io:443",
				"http://seed1t5.neo.org:20332",
			}},
		},
		Logger: Logger{
			LogEncoding: "console",
			LogLevel:    "info",
		},
		DialTimeout:    DefaultDialTimeout,
		RequestTimeout: DefaultRequestTimeout,
		TokenCacheSize: DefaultTokenCacheSize,
	}
}

// LoadFile loads the configuration from the given YAML file. Values missing
// from the file are taken from Default, networks listed in the file replace
// the default ones with the same name.
func LoadFile(configPath string) (Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config '%s' doesn't exist", configPath)
	}

	configData, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}

	var fileCfg Config
	err = yaml.Unmarshal(configData, &fileCfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	cfg := Default()
	for name, n := range fileCfg.Networks {
		cfg.Networks[name] = n
	}
	if fileCfg.Logger.LogEncoding != "" {
		cfg.Logger.LogEncoding = fileCfg.Logger.LogEncoding
	}
	if fileCfg.Logger.LogLevel != "" {
		cfg.Logger.LogLevel = fileCfg.Logger.LogLevel
	}
	cfg.Logger.LogPath = fileCfg.Logger.LogPath
	if fileCfg.DialTimeout != 0 {
		cfg.DialTimeout = fileCfg.DialTimeout
	}
	if fileCfg.RequestTimeout != 0 {
		cfg.RequestTimeout = fileCfg.RequestTimeout
	}
	if fileCfg.TokenCacheSize != 0 {
		cfg.TokenCacheSize = fileCfg.TokenCacheSize
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if len(c.Networks) == 0 {
		return errors.New("no networks configured")
	}
	for name, n := range c.Networks {
		if name == "" {
			return errors.New("empty network name")
		}
		if len(n.RPCEndpoints) == 0 {
			return fmt.Errorf("network %s: no RPC endpoints", name)
		}
		for _, e := range n.RPCEndpoints {
			if e == "" {
				return fmt.Errorf("network %s: empty RPC endpoint", name)
			}
		}
	}
	if c.DialTimeout < 0 || c.RequestTimeout < 0 {
		return errors.New("negative timeout")
	}
	if c.TokenCacheSize < 0 {
		return fmt.Errorf("invalid TokenCacheSize: %d", c.TokenCacheSize)
	}
	switch c.Logger.LogEncoding {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid LogEncoding: %s", c.Logger.LogEncoding)
	}
	return nil
}
