package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ONSdigital/dp-tm1-tools/config"
	"github.com/ONSdigital/log.go/v2/log"
)

const serviceName = "dp-tm1-tools"

func main() {
	log.Namespace = serviceName
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Get()
	if err != nil {
		log.Fatal(ctx, "error getting config", err)
		os.Exit(1)
	}

	cmd := newRootCommand(cfg, newPrompter(os.Stdin, os.Stdout))
	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Fatal(ctx, "command failed", err, log.Data{"command": os.Args[1:]})
		stop()
		os.Exit(1)
	}
}
