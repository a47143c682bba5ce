package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/tarantool/go-kvns/internal/commands"
)

// Build information. Populated at build-time via -ldflags flag.
var version = "dev"

func build() string {
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				return mv
			}
		}
	}

	return version
}

func main() {
	app := commands.NewApp(&commands.Flags{}, build())

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
