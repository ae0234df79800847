package main

import (
	"context"

	"github.com/elseano/nspin/cmd/nspin/cmd"
	"github.com/elseano/nspin/pkg/lifecycle"
)

var GitCommit string
var Version string

func main() {
	ctx := context.Background()
	lifecycle.Notify(ctx)

	lifecycle.Exit(ctx, cmd.ExitCode(cmd.Execute(ctx, Version, GitCommit)))
}
