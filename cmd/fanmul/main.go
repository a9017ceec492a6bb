// Package main runs the fanmul demo: a concurrent 3×3 matrix product.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	fanmulcmd "github.com/katalvlaran/fanmul/internal/cmd/fanmul"
)

func main() {
	cfg, err := fanmulcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[FANMUL] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fanmulcmd.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("run: %v", err)
	}
}
