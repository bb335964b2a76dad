package main

import (
	"context"
	"os"

	"github.com/msto63/mCLI/cmd/mcli/cmd"
)

func main() {
	os.Exit(cmd.Execute(context.Background(), os.Args[1:]))
}
