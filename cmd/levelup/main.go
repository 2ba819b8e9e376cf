package main

import (
	"fmt"
	"os"

	"github.com/sandeepkv93/levelup/internal/cli"
	"github.com/sandeepkv93/levelup/internal/views"
)

func main() {
	if err := cli.NewRootCmd(cli.NewApp()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, views.Bad.Render("levelup: "+err.Error()))
		os.Exit(1)
	}
}
