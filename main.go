package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/MovieCatalog/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Movie Catalog"), kong.Description("MovieCatalog serves movies, reviews, picks and favorites."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
