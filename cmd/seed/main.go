package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dwikikusuma/bakery-shop/internal/storefront"
	"github.com/dwikikusuma/bakery-shop/pkg/auth"
	"github.com/dwikikusuma/bakery-shop/pkg/config"
	"github.com/dwikikusuma/bakery-shop/pkg/logger"
)

func main() {
	cfg := config.Load()
	file := flag.String("file", cfg.SeedFile, "seed YAML file")
	adminToken := flag.String("admin-token", "", "print an admin bearer token for this user id and exit")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "lifetime of the printed admin token")
	flag.Parse()

	log := logger.New(logger.Options{Service: "seed", Env: cfg.AppEnv, Level: cfg.LogLevel})

	if *adminToken != "" {
		tok, err := auth.Issue([]byte(cfg.JWTSecret), *adminToken, auth.RoleAdmin, *ttl)
		if err != nil {
			log.Error("issue token failed", slog.Any("err", err))
			os.Exit(1)
		}
		fmt.Println(tok)
		return
	}

	f, err := loadSeed(*file)
	if err != nil {
		log.Error("load seed failed", slog.Any("err", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := storefront.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Error("store open failed", slog.Any("err", err), slog.String("driver", cfg.StoreDriver))
		os.Exit(1)
	}
	defer store.Close()

	app := storefront.New(store, storefront.Options{}, log)
	c, err := apply(ctx, app, f)
	if err != nil {
		log.Error("seed failed", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("seed applied",
		slog.String("file", *file),
		slog.String("store", cfg.StoreDriver),
		slog.Int("items", c.Items),
		slog.Int("recipes", c.Recipes),
	)
}
