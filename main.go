package main

import (
	"context"
	"os"

	"github.com/elseano/nspin/cmd/nspin/cmd"
	"github.com/elseano/nspin/pkg/lifecycle"
	"github.com/elseano/nspin/pkg/util"
)

func main() {
	devNull, _ := os.Create(os.DevNull)
	util.RedirectLogger(devNull)

	ctx := context.Background()
	lifecycle.Notify(ctx)

	lifecycle.Exit(ctx, cmd.ExitCode(cmd.Execute(ctx, "dev", "")))
}
