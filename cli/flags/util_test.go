package flags

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func TestMarkRequired(t *testing.T) {
	fs := []cli.Flag{
		cli.StringFlag{Name: "wif"},
		cli.StringFlag{Name: "token"},
		AddressFlag{Name: "to"},
		AddressFlag{Name: "address, a"},
		DecimalFlag{Name: "amount"},
		cli.BoolFlag{Name: "debug, d"},
	}
	fs = MarkRequired(fs, "token", "to", "address, a", "amount", "debug, d")
	require.Len(t, fs, 6)
	require.False(t, fs[0].(cli.StringFlag).Required)
	require.True(t, fs[1].(cli.StringFlag).Required)
	require.True(t, fs[2].(AddressFlag).IsRequired())
	require.True(t, fs[3].(AddressFlag).IsRequired())
	require.True(t, fs[4].(DecimalFlag).IsRequired())
	require.Equal(t, cli.BoolFlag{Name: "debug, d"}, fs[5])
}

func TestMarkRequiredCommand(t *testing.T) {
	var called bool
	app := cli.NewApp()
	app.Writer = io.Discard
	app.ErrWriter = io.Discard
	app.Commands = []cli.Command{{
		Name:   "transfer",
		Action: func(*cli.Context) error { called = true; return nil },
		Flags: MarkRequired([]cli.Flag{
			AddressFlag{Name: "to"},
			DecimalFlag{Name: "amount"},
		}, "to", "amount"),
	}}

	err := app.Run([]string{"app", "transfer", "--amount", "1"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "to")
	require.False(t, called)

	require.NoError(t, app.Run([]string{"app", "transfer", "--amount", "1", "--to", "NRHkiY2hLy5ypD32CKZtL6pNwhbFMqDEhR"}))
	require.True(t, called)
}
