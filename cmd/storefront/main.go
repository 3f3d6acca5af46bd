package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	"google.golang.org/grpc"

	"github.com/dwikikusuma/bakery-shop/internal/storefront"
	"github.com/dwikikusuma/bakery-shop/pkg/config"
	"github.com/dwikikusuma/bakery-shop/pkg/logger"
	"github.com/dwikikusuma/bakery-shop/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "storefront", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	store, err := storefront.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Error("store open failed", slog.Any("err", err), slog.String("driver", cfg.StoreDriver))
		os.Exit(1)
	}
	defer store.Close()

	app := storefront.New(store, storefront.Options{
		DeductionRetries:     cfg.DeductionRetries,
		DeductionConcurrency: cfg.DeductionConcurrency,
	}, log)
	if err := app.Start(ctx); err != nil {
		log.Error("catalog start failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer app.Stop()

	addr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error("listen failed", slog.Any("err", err), slog.String("addr", addr))
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()
	app.Register(grpcServer)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("grpc starting", slog.String("addr", addr), slog.String("store", cfg.StoreDriver))
		if err := grpcServer.Serve(lis); err != nil {
			log.Error("grpc serve error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	if !shutdown.Graceful(10*time.Second, grpcServer.GracefulStop, grpcServer.Stop) {
		log.Warn("graceful stop timeout, forcing stop")
	}

	wg.Wait()
	log.Info("bye")
}
