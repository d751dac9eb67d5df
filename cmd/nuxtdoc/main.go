package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/nuxtdoc/cmd/nuxtdoc/commands"
	"git.home.luguber.info/inful/nuxtdoc/internal/errors"
	"git.home.luguber.info/inful/nuxtdoc/internal/version"
)

func main() {
	var cli commands.CLI

	ctx := kong.Parse(&cli,
		kong.Name("nuxtdoc"),
		kong.Description("Render API documentation trees into Nuxt Content pages"),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	global := &commands.Global{Logger: slog.Default()}

	if err := ctx.Run(global, &cli); err != nil {
		adapter := errors.NewCLIErrorAdapter(cli.Verbose)
		fmt.Fprintln(os.Stderr, adapter.FormatError(err))
		os.Exit(adapter.ExitCodeFor(err))
	}
}
