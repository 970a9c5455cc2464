package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"knowex-be/internal/bootstrap"
	"knowex-be/internal/config"
	"knowex-be/internal/server"
	"knowex-be/internal/tracer"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(tracer.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
	})

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// 4. Start Background Services
	g.Go(func() error {
		container.WebSocketHub.Run(ctx)
		return nil
	})
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Fatalf("Unable to start consumer service: %v", err)
	}
	if err := container.NotificationService.Start(ctx); err != nil {
		log.Printf("Notification stream unavailable, delivering in-process: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)
	g.Go(srv.Run)

	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		container.ConsumerService.Wait()
		if terr := shutdownTracer(shutdownCtx); terr != nil {
			log.Printf("Tracer shutdown: %v", terr)
		}
		return err
	})

	if err := g.Wait(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
