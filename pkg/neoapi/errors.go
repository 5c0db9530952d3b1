package neoapi

import "errors"

var (
	// ErrUnknownNetwork is returned for network ids that have no RPC endpoints configured.
	ErrUnknownNetwork = errors.New("unknown network")
	// ErrNoEndpoint is returned when none of the network RPC nodes is available.
	ErrNoEndpoint = errors.New("no RPC endpoint available")
	// ErrInvalidAddress is returned for malformed addresses.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrInvalidKey is returned for malformed sender keys.
	ErrInvalidKey = errors.New("invalid key")
	// ErrInvalidAmount is returned for negative amounts or amounts that
	// can't be represented with the token precision.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidToken is returned for tokens reporting unusable decimals.
	ErrInvalidToken = errors.New("invalid token")
	// ErrNothingToSend is returned when all transfer amounts are zero.
	ErrNothingToSend = errors.New("nothing to send")
	// ErrNothingToClaim is returned when there is no unclaimed GAS.
	ErrNothingToClaim = errors.New("nothing to claim")
)
