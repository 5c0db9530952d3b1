/*
Package scripthash converts contract script hashes between the prefixed
("0x...") form used by explorers and users and the bare form expected by
token-related SDK calls.
*/
package scripthash

import (
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Prefix is the prefix of a normalized script hash.
const Prefix = "0x"

// Normalize returns the script hash with the Prefix. Hashes that already
// have it (in any letter case) are returned with a lowercase prefix.
func Normalize(h string) string {
	return Prefix + Denormalize(h)
}

// Denormalize strips all leading Prefixes (if any) from the script hash.
func Denormalize(h string) string {
	for len(h) >= len(Prefix) && strings.EqualFold(h[:len(Prefix)], Prefix) {
		h = h[len(Prefix):]
	}
	return h
}

// Parse decodes a script hash given in either form. Hashes are written
// little-endian, the way Neo tools and explorers show them (GAS is
// 0xd2a4cff31913016155e38e474a2c06d08be276cf).
func Parse(h string) (util.Uint160, error) {
	return util.Uint160DecodeStringLE(Denormalize(h))
}
