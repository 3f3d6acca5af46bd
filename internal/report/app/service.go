package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	catalog "github.com/dwikikusuma/bakery-shop/internal/catalog/domain"
	order "github.com/dwikikusuma/bakery-shop/internal/order/domain"
	"github.com/dwikikusuma/bakery-shop/internal/report/domain"
)

type Orders interface {
	ListOrders(ctx context.Context, userID string) ([]order.Order, error)
}

type Inventory interface {
	ListInventory(ctx context.Context) ([]catalog.InventoryItem, error)
	LowStock(ctx context.Context) ([]catalog.InventoryItem, error)
}

type Service struct {
	orders    Orders
	inventory Inventory
}

func NewService(orders Orders, inventory Inventory) *Service {
	return &Service{orders: orders, inventory: inventory}
}

func (s *Service) Financials(ctx context.Context) (domain.Financials, error) {
	var (
		orders []order.Order
		items  []catalog.InventoryItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.orders.ListOrders(gctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.inventory.ListInventory(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Financials{}, err
	}
	return domain.Compute(orders, items), nil
}

func (s *Service) LowStock(ctx context.Context) ([]catalog.InventoryItem, error) {
	return s.inventory.LowStock(ctx)
}
