package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	cart "github.com/dwikikusuma/bakery-shop/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/bakery-shop/internal/catalog/app"
	"github.com/dwikikusuma/bakery-shop/internal/inventory/domain"
	"github.com/dwikikusuma/bakery-shop/pkg/logger"
)

type Options struct {
	Attempts    int
	Concurrency int
	Backoff     time.Duration
}

// Result reports what a deduction did. Skipped lists items that vanished
// between planning and applying.
type Result struct {
	Applied []domain.Adjustment
	Skipped []string
}

type Deductor struct {
	stock   Stock
	catalog Catalog
	opts    Options
	log     *slog.Logger
}

func NewDeductor(stock Stock, catalog Catalog, opts Options, log *slog.Logger) *Deductor {
	if opts.Attempts <= 0 {
		opts.Attempts = 3
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.Backoff <= 0 {
		opts.Backoff = 50 * time.Millisecond
	}
	return &Deductor{stock: stock, catalog: catalog, opts: opts, log: logger.Component(log, "inventory")}
}

// Deduct removes the stock consumed by lines. Each item is adjusted
// independently; failures do not undo the others and are joined into the
// returned error.
func (d *Deductor) Deduct(ctx context.Context, orderID string, lines []cart.Line) (Result, error) {
	plan := domain.Plan(lines, d.catalog.Snapshot())
	if len(plan) == 0 {
		return Result{}, nil
	}

	var (
		mu   sync.Mutex
		res  Result
		errs []error
	)

	g, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
	g.SetLimit(d.opts.Concurrency)
	for _, adj := range plan {
		g.Go(func() error {
			err := d.apply(gctx, adj)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				res.Applied = append(res.Applied, adj)
			case errors.Is(err, catalogapp.ErrNotFound):
				res.Skipped = append(res.Skipped, adj.IngredientID)
			default:
				errs = append(errs, fmt.Errorf("deduct %s: %w", adj.IngredientID, err))
			}
			return nil
		})
	}
	_ = g.Wait()

	err := errors.Join(errs...)
	if err != nil {
		d.log.Error("inventory deduction incomplete",
			slog.String("order_id", orderID),
			slog.Int("applied", len(res.Applied)),
			slog.Int("failed", len(errs)),
			slog.Any("err", err),
		)
	} else {
		d.log.Info("inventory deducted",
			slog.String("order_id", orderID),
			slog.Int("applied", len(res.Applied)),
			slog.Int("skipped", len(res.Skipped)),
		)
	}
	return res, err
}

func (d *Deductor) apply(ctx context.Context, adj domain.Adjustment) error {
	var err error
	for attempt := 1; attempt <= d.opts.Attempts; attempt++ {
		_, err = d.stock.AdjustStock(ctx, adj.IngredientID, -adj.Amount)
		if err == nil || errors.Is(err, catalogapp.ErrNotFound) || errors.Is(err, catalogapp.ErrInvalidInput) {
			return err
		}
		if attempt == d.opts.Attempts {
			break
		}

		d.log.Warn("retrying stock adjustment",
			slog.String("item_id", adj.IngredientID),
			slog.Int("attempt", attempt),
			slog.Any("err", err),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * d.opts.Backoff):
		}
	}
	return err
}
