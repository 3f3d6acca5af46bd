package storefront_test

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	cartv1 "github.com/dwikikusuma/bakery-shop/api/cart/v1"
	orderv1 "github.com/dwikikusuma/bakery-shop/api/order/v1"
	cartapp "github.com/dwikikusuma/bakery-shop/internal/cart/app"
	cart "github.com/dwikikusuma/bakery-shop/internal/cart/domain"
	catalog "github.com/dwikikusuma/bakery-shop/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/bakery-shop/internal/checkout/app"
	checkout "github.com/dwikikusuma/bakery-shop/internal/checkout/domain"
	orderapp "github.com/dwikikusuma/bakery-shop/internal/order/app"
	order "github.com/dwikikusuma/bakery-shop/internal/order/domain"
	"github.com/dwikikusuma/bakery-shop/internal/storefront"
	"github.com/dwikikusuma/bakery-shop/pkg/docstore/memory"
	"github.com/dwikikusuma/bakery-shop/pkg/grpcjson"
	"github.com/dwikikusuma/bakery-shop/pkg/logger"
)

type recordingNotifier struct {
	mu    sync.Mutex
	ready []string
}

func (n *recordingNotifier) OrderReady(_ context.Context, o order.Order) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.ready = append(n.ready, o.ID)
	return nil
}

func (n *recordingNotifier) notified() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.ready...)
}

func newApp(t *testing.T, notifier orderapp.Notifier) *storefront.App {
	t.Helper()
	store := memory.New()
	a := storefront.New(store, storefront.Options{DeductionBackoff: time.Millisecond, Notifier: notifier}, logger.Discard())
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(a.Stop)
	return a
}

func item(id string, cat catalog.Category, price int64, qty float64) catalog.InventoryItem {
	return catalog.InventoryItem{
		Ingredient:     catalog.Ingredient{ID: id, Name: id, Category: cat, UnitPrice: decimal.NewFromInt(price)},
		QuantityOnHand: qty,
	}
}

func seed(t *testing.T, a *storefront.App) {
	t.Helper()
	ctx := context.Background()
	for _, it := range []catalog.InventoryItem{
		item("b1", catalog.CategoryBase, 50, 10),
		item("f1", catalog.CategoryFilling, 20, 10),
		item("r1", catalog.CategoryRawMaterial, 0, 1000),
	} {
		if _, err := a.Catalog.UpsertItem(ctx, it); err != nil {
			t.Fatalf("seed item %s: %v", it.ID, err)
		}
	}
	_, err := a.Catalog.UpsertRecipe(ctx, catalog.ProductRecipe{
		ID:              "rec-1",
		Name:            "Brownies",
		IngredientLines: []catalog.RecipeLine{{IngredientID: "r1", Amount: 120}},
		RecipeYield:     12,
		SellingPrice:    decimal.NewFromInt(35),
	})
	if err != nil {
		t.Fatalf("seed recipe: %v", err)
	}
}

func TestPlaceOrderFlow(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	a := newApp(t, notifier)
	seed(t, a)

	if _, err := a.Cart.AddItem(ctx, "u1", cartapp.ItemRequest{Kind: cart.KindCustom, Quantity: 2, BaseID: "b1", FillingID: "f1"}); err != nil {
		t.Fatalf("add custom: %v", err)
	}
	if _, err := a.Cart.AddItem(ctx, "u1", cartapp.ItemRequest{Kind: cart.KindBasic, ProductID: "prod-rec-1", Quantity: 6}); err != nil {
		t.Fatalf("add basic: %v", err)
	}

	placed, err := a.Orders.PlaceOrder(ctx, orderapp.PlaceOrderRequest{
		UserID:         "u1",
		DeliveryMethod: checkout.DeliveryDelivery,
		PaymentMethod:  checkout.PaymentCash,
		Contact:        order.Contact{Name: "Ana", Phone: "555", Address: "Calle 1"},
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	t.Run("priced with delivery fee", func(t *testing.T) {
		if !placed.Subtotal.Equal(decimal.NewFromInt(350)) || !placed.Total.Equal(decimal.NewFromInt(375)) {
			t.Fatalf("subtotal=%s total=%s", placed.Subtotal, placed.Total)
		}
		if placed.Status != order.StatusPending {
			t.Fatalf("status = %s", placed.Status)
		}
	})

	t.Run("inventory deducted", func(t *testing.T) {
		snap := a.Catalog.Snapshot()
		want := map[string]float64{"b1": 8, "f1": 8, "r1": 940}
		for id, qty := range want {
			it, ok := snap.Item(id)
			if !ok || it.QuantityOnHand != qty {
				t.Fatalf("%s: got %+v, want %v", id, it, qty)
			}
		}
	})

	t.Run("cart cleared", func(t *testing.T) {
		c, err := a.Cart.GetCart(ctx, "u1")
		if err != nil || !c.Empty() {
			t.Fatalf("cart: %+v, %v", c, err)
		}
	})

	t.Run("empty cart -> ErrEmptyCart", func(t *testing.T) {
		_, err := a.Orders.PlaceOrder(ctx, orderapp.PlaceOrderRequest{
			UserID: "u1", DeliveryMethod: checkout.DeliveryPickup, PaymentMethod: checkout.PaymentTransfer,
		})
		if !errors.Is(err, checkoutapp.ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("status flow notifies on ready", func(t *testing.T) {
		if _, err := a.Orders.UpdateStatus(ctx, placed.ID, order.StatusConfirmed, ""); !errors.Is(err, order.ErrETARequired) {
			t.Fatalf("expected ErrETARequired, got %v", err)
		}
		if _, err := a.Orders.UpdateStatus(ctx, placed.ID, order.StatusConfirmed, "45 min"); err != nil {
			t.Fatalf("confirm: %v", err)
		}
		got, err := a.Orders.UpdateStatus(ctx, placed.ID, order.StatusReady, "")
		if err != nil {
			t.Fatalf("ready: %v", err)
		}
		if eta, ok := got.ETA(); !ok || eta != "45 min" {
			t.Fatalf("eta = %q, %v", eta, ok)
		}
		if n := notifier.notified(); len(n) != 1 || n[0] != placed.ID {
			t.Fatalf("notified = %v", n)
		}
	})

	t.Run("reorder refills cart", func(t *testing.T) {
		c, err := a.Orders.Reorder(ctx, "u1", placed.ID)
		if err != nil {
			t.Fatalf("reorder: %v", err)
		}
		if len(c.Lines) != 2 || !c.Subtotal().Equal(decimal.NewFromInt(350)) {
			t.Fatalf("cart = %+v", c)
		}
		if _, err := a.Orders.Reorder(ctx, "someone-else", placed.ID); !errors.Is(err, orderapp.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("financials count the order", func(t *testing.T) {
		f, err := a.Reports.Financials(ctx)
		if err != nil {
			t.Fatalf("financials: %v", err)
		}
		if f.OrderCount != 1 || !f.Revenue.Equal(decimal.NewFromInt(375)) {
			t.Fatalf("financials = %+v", f)
		}
	})
}

func TestStockNeverNegative(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, nil)
	if _, err := a.Catalog.UpsertItem(ctx, item("b1", catalog.CategoryBase, 50, 1)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := a.Cart.AddItem(ctx, "u2", cartapp.ItemRequest{Kind: cart.KindCustom, Quantity: 3, BaseID: "b1"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := a.Orders.PlaceOrder(ctx, orderapp.PlaceOrderRequest{
		UserID: "u2", DeliveryMethod: checkout.DeliveryPickup, PaymentMethod: checkout.PaymentTransfer,
	}); err != nil {
		t.Fatalf("place: %v", err)
	}
	it, _ := a.Catalog.Snapshot().Item("b1")
	if it.QuantityOnHand != 0 {
		t.Fatalf("expected clamp at 0, got %v", it.QuantityOnHand)
	}
	if low := a.LowStock.Low(); len(low) != 1 || low[0] != "b1" {
		t.Fatalf("low stock alerts = %v", low)
	}
}

func TestRegisterOverGRPC(t *testing.T) {
	a := newApp(t, nil)
	seed(t, a)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	a.Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpcjson.DialOption(),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	ctx := context.Background()
	orders := orderv1.NewOrderServiceClient(conn)
	carts := cartv1.NewCartServiceClient(conn)

	t.Run("empty cart -> FailedPrecondition", func(t *testing.T) {
		_, err := orders.PlaceOrder(ctx, &orderv1.PlaceOrderRequest{
			UserID: "u9", DeliveryMethod: string(checkout.DeliveryPickup), PaymentMethod: string(checkout.PaymentCash),
		})
		if status.Code(err) != codes.FailedPrecondition {
			t.Fatalf("expected FailedPrecondition, got %v", err)
		}
	})

	t.Run("bad payment -> InvalidArgument", func(t *testing.T) {
		_, err := orders.PlaceOrder(ctx, &orderv1.PlaceOrderRequest{
			UserID: "u9", DeliveryMethod: string(checkout.DeliveryPickup), PaymentMethod: "barter",
		})
		if status.Code(err) != codes.InvalidArgument {
			t.Fatalf("expected InvalidArgument, got %v", err)
		}
	})

	t.Run("place then skip a state -> FailedPrecondition", func(t *testing.T) {
		if _, err := carts.AddItem(ctx, &cartv1.AddItemRequest{UserID: "u9", Item: cartv1.Item{
			Kind: string(cart.KindBasic), ProductID: "prod-rec-1", Quantity: 1,
		}}); err != nil {
			t.Fatalf("add: %v", err)
		}
		placed, err := orders.PlaceOrder(ctx, &orderv1.PlaceOrderRequest{
			UserID: "u9", DeliveryMethod: string(checkout.DeliveryPickup), PaymentMethod: string(checkout.PaymentCash),
		})
		if err != nil {
			t.Fatalf("place: %v", err)
		}
		if !placed.Order.Total.Equal(decimal.NewFromInt(35)) {
			t.Fatalf("total = %s", placed.Order.Total)
		}
		_, err = orders.UpdateStatus(ctx, &orderv1.UpdateStatusRequest{OrderID: placed.Order.ID, Status: string(order.StatusReady)})
		if status.Code(err) != codes.FailedPrecondition {
			t.Fatalf("expected FailedPrecondition, got %v", err)
		}
	})
}
