// Package main starts the goals dashboard.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/questboard/internal/cmd/questboard"
)

func main() {
	cfg, err := questboard.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[QUESTBOARD] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := questboard.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
