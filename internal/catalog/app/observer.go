package app

import (
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/dwikikusuma/bakery-shop/internal/catalog/domain"
	"github.com/dwikikusuma/bakery-shop/pkg/logger"
)

// LowStockAlert logs a warning the first time an item drops to its low stock
// threshold, and again only after it has been restocked above it.
type LowStockAlert struct {
	log *slog.Logger

	mu  sync.Mutex
	low map[string]bool
}

func NewLowStockAlert(log *slog.Logger) *LowStockAlert {
	return &LowStockAlert{log: logger.Component(log, "catalog.lowstock"), low: make(map[string]bool)}
}

func (a *LowStockAlert) CatalogChanged(s *domain.Snapshot) {
	a.mu.Lock()
	defer a.mu.Unlock()

	seen := make(map[string]bool)
	for _, it := range s.LowStock() {
		seen[it.ID] = true
		if a.low[it.ID] {
			continue
		}
		a.log.Warn("low stock",
			slog.String("item_id", it.ID),
			slog.String("name", it.Name),
			slog.Float64("quantity", it.QuantityOnHand),
			slog.Float64("threshold", it.LowStockThreshold),
		)
	}
	a.low = seen
}

// Low lists the ids currently flagged.
func (a *LowStockAlert) Low() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Sorted(maps.Keys(a.low))
}
