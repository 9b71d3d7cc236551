// Command churchctl runs operator tasks against a ChurchConnect database:
// migrations, demo seeding, admin bootstrap and printing the role policy.
//
// Usage:
//
//	churchctl migrate [--status]
//	churchctl seed [--file fixture.yaml]
//	churchctl promote --church=<id> --email=user@example.com
//	churchctl policy
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Joseph-Edoh/Church-connect/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
