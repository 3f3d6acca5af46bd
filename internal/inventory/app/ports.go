package app

import (
	"context"

	catalog "github.com/dwikikusuma/bakery-shop/internal/catalog/domain"
)

type Stock interface {
	// AdjustStock adds delta to one item atomically, clamping at zero.
	AdjustStock(ctx context.Context, id string, delta float64) (catalog.InventoryItem, error)
}

type Catalog interface {
	Snapshot() *catalog.Snapshot
}
