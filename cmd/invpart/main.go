// Command invpart prints the number of integer partitions of N.
//
//	$ echo 5 | invpart
//	Enter the partition number: The inverse of partitions for 5 is 7
//
// See internal/cli for the table, encode and decode commands.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusvoltaire/invpart/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
