// Package storefront wires every bounded context over one document store.
package storefront

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"

	cartv1 "github.com/dwikikusuma/bakery-shop/api/cart/v1"
	catalogv1 "github.com/dwikikusuma/bakery-shop/api/catalog/v1"
	checkoutv1 "github.com/dwikikusuma/bakery-shop/api/checkout/v1"
	galleryv1 "github.com/dwikikusuma/bakery-shop/api/gallery/v1"
	offerv1 "github.com/dwikikusuma/bakery-shop/api/offer/v1"
	orderv1 "github.com/dwikikusuma/bakery-shop/api/order/v1"
	reportv1 "github.com/dwikikusuma/bakery-shop/api/report/v1"
	settingsv1 "github.com/dwikikusuma/bakery-shop/api/settings/v1"

	cartapp "github.com/dwikikusuma/bakery-shop/internal/cart/app"
	cartgrpc "github.com/dwikikusuma/bakery-shop/internal/cart/grpc"
	cartrepo "github.com/dwikikusuma/bakery-shop/internal/cart/infra/docrepo"

	catalogapp "github.com/dwikikusuma/bakery-shop/internal/catalog/app"
	cgrpc "github.com/dwikikusuma/bakery-shop/internal/catalog/grpc"
	catalogrepo "github.com/dwikikusuma/bakery-shop/internal/catalog/infra/docrepo"

	checkoutapp "github.com/dwikikusuma/bakery-shop/internal/checkout/app"
	checkoutgrpc "github.com/dwikikusuma/bakery-shop/internal/checkout/grpc"
	checkoutadapter "github.com/dwikikusuma/bakery-shop/internal/checkout/infra/adapter"

	galleryapp "github.com/dwikikusuma/bakery-shop/internal/gallery/app"
	gallerygrpc "github.com/dwikikusuma/bakery-shop/internal/gallery/grpc"
	galleryrepo "github.com/dwikikusuma/bakery-shop/internal/gallery/infra/docrepo"

	inventoryapp "github.com/dwikikusuma/bakery-shop/internal/inventory/app"

	offerapp "github.com/dwikikusuma/bakery-shop/internal/offer/app"
	offergrpc "github.com/dwikikusuma/bakery-shop/internal/offer/grpc"
	offerrepo "github.com/dwikikusuma/bakery-shop/internal/offer/infra/docrepo"

	orderapp "github.com/dwikikusuma/bakery-shop/internal/order/app"
	ordergrpc "github.com/dwikikusuma/bakery-shop/internal/order/grpc"
	orderrepo "github.com/dwikikusuma/bakery-shop/internal/order/infra/docrepo"

	reportapp "github.com/dwikikusuma/bakery-shop/internal/report/app"
	reportgrpc "github.com/dwikikusuma/bakery-shop/internal/report/grpc"

	settingsapp "github.com/dwikikusuma/bakery-shop/internal/settings/app"
	settingsgrpc "github.com/dwikikusuma/bakery-shop/internal/settings/grpc"
	settingsrepo "github.com/dwikikusuma/bakery-shop/internal/settings/infra/docrepo"

	"github.com/dwikikusuma/bakery-shop/pkg/docstore"
)

type Options struct {
	DeductionRetries     int
	DeductionConcurrency int
	DeductionBackoff     time.Duration
	// Notifier defaults to logging when nil.
	Notifier orderapp.Notifier
}

type App struct {
	Catalog   *catalogapp.Service
	LowStock  *catalogapp.LowStockAlert
	Cart      *cartapp.Service
	Settings  *settingsapp.Service
	Checkout  *checkoutapp.Service
	Inventory *inventoryapp.Deductor
	Orders    *orderapp.Service
	Offers    *offerapp.Service
	Gallery   *galleryapp.Service
	Reports   *reportapp.Service
}

func New(store docstore.Store, opts Options, log *slog.Logger) *App {
	a := &App{LowStock: catalogapp.NewLowStockAlert(log)}

	// Catalog
	a.Catalog = catalogapp.NewService(
		catalogrepo.NewInventoryRepo(store, log),
		catalogrepo.NewRecipeRepo(store, log),
		log,
		a.LowStock,
	)

	// Cart
	a.Cart = cartapp.NewService(cartrepo.NewCartRepo(store), a.Catalog, log)

	// Settings
	a.Settings = settingsapp.NewService(settingsrepo.NewSettingsRepo(store), log)

	// Checkout (adapters)
	a.Checkout = checkoutapp.NewService(
		checkoutadapter.NewCartServiceReader(a.Cart),
		checkoutadapter.NewSettingsFeeReader(a.Settings),
	)

	// Inventory
	a.Inventory = inventoryapp.NewDeductor(a.Catalog, a.Catalog, inventoryapp.Options{
		Attempts:    opts.DeductionRetries,
		Concurrency: opts.DeductionConcurrency,
		Backoff:     opts.DeductionBackoff,
	}, log)

	// Orders
	a.Orders = orderapp.NewService(orderrepo.NewOrderRepo(store), a.Checkout, a.Cart, a.Inventory, opts.Notifier, log)

	a.Offers = offerapp.NewService(offerrepo.NewOfferRepo(store))
	a.Gallery = galleryapp.NewService(galleryrepo.NewImageRepo(store), galleryrepo.NewLikeRepo(store), log)
	a.Reports = reportapp.NewService(a.Orders, a.Catalog)
	return a
}

// Start begins watching the catalog; the cart and order flows read from the
// snapshot it maintains.
func (a *App) Start(ctx context.Context) error {
	return a.Catalog.Start(ctx)
}

func (a *App) Stop() {
	a.Catalog.Stop()
}

func (a *App) Register(s grpc.ServiceRegistrar) {
	catalogv1.RegisterCatalogServiceServer(s, cgrpc.NewServer(a.Catalog))
	cartv1.RegisterCartServiceServer(s, cartgrpc.NewServer(a.Cart))
	checkoutv1.RegisterCheckoutServiceServer(s, checkoutgrpc.NewServer(a.Checkout))
	settingsv1.RegisterSettingsServiceServer(s, settingsgrpc.NewServer(a.Settings))
	orderv1.RegisterOrderServiceServer(s, ordergrpc.NewServer(a.Orders))
	offerv1.RegisterOfferServiceServer(s, offergrpc.NewServer(a.Offers))
	galleryv1.RegisterGalleryServiceServer(s, gallerygrpc.NewServer(a.Gallery))
	reportv1.RegisterReportServiceServer(s, reportgrpc.NewServer(a.Reports))
}
