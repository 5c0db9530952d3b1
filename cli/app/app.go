package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/nspcc-dev/neo-wallet/cli/wallet"
	"github.com/nspcc-dev/neo-wallet/pkg/config"
	"github.com/urfave/cli"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "NeoWallet\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// New creates a neo-wallet instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "neo-wallet"
	ctl.Version = config.Version
	ctl.Usage = "Light wallet for the Neo network"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, wallet.NewCommands()...)
	return ctl
}
