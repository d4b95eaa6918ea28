// Command api runs the GatherHub backend: the GraphQL API, the resolution
// read path, and (unless disabled) the background materialization worker.
//
// Usage:
//
//	api
//
// Configuration comes from config.yml and environment variables; see
// internal/config. Requires DATABASE_DSN and AUTH_JWT_SECRET.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gatherhub/gatherhub-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
