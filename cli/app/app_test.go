package app

import (
	"bytes"
	"testing"

	"github.com/nspcc-dev/neo-wallet/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	ctl := New()
	names := make([]string, 0, len(ctl.Commands))
	for _, c := range ctl.Commands {
		names = append(names, c.Name)
	}
	require.Equal(t, []string{"balance", "claims", "history", "token-balance", "send", "claim-gas", "mint", "transfer"}, names)
}

func TestVersion(t *testing.T) {
	config.Version = "0.1.0-test"
	t.Cleanup(func() { config.Version = "" })

	ctl := New()
	out := new(bytes.Buffer)
	ctl.Writer = out
	require.NoError(t, ctl.Run([]string{"neo-wallet", "--version"}))
	require.Contains(t, out.String(), "NeoWallet\nVersion: 0.1.0-test\n")
}
