package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"google.golang.org/grpc"

	cartv1 "github.com/dwikikusuma/bakery-shop/api/cart/v1"
	catalogv1 "github.com/dwikikusuma/bakery-shop/api/catalog/v1"
	checkoutv1 "github.com/dwikikusuma/bakery-shop/api/checkout/v1"
	galleryv1 "github.com/dwikikusuma/bakery-shop/api/gallery/v1"
	offerv1 "github.com/dwikikusuma/bakery-shop/api/offer/v1"
	orderv1 "github.com/dwikikusuma/bakery-shop/api/order/v1"
	reportv1 "github.com/dwikikusuma/bakery-shop/api/report/v1"
	settingsv1 "github.com/dwikikusuma/bakery-shop/api/settings/v1"
)

type api struct {
	catalog  *catalogv1.CatalogServiceClient
	cart     *cartv1.CartServiceClient
	checkout *checkoutv1.CheckoutServiceClient
	orders   *orderv1.OrderServiceClient
	settings *settingsv1.SettingsServiceClient
	offers   *offerv1.OfferServiceClient
	gallery  *galleryv1.GalleryServiceClient
	reports  *reportv1.ReportServiceClient
	secret   []byte
	log      *slog.Logger
}

func newAPI(cc grpc.ClientConnInterface, secret []byte, log *slog.Logger) *api {
	return &api{
		catalog:  catalogv1.NewCatalogServiceClient(cc),
		cart:     cartv1.NewCartServiceClient(cc),
		checkout: checkoutv1.NewCheckoutServiceClient(cc),
		orders:   orderv1.NewOrderServiceClient(cc),
		settings: settingsv1.NewSettingsServiceClient(cc),
		offers:   offerv1.NewOfferServiceClient(cc),
		gallery:  galleryv1.NewGalleryServiceClient(cc),
		reports:  reportv1.NewReportServiceClient(cc),
		secret:   secret,
		log:      log,
	}
}

func newRouter(a *api, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(a.log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", a.ready)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(15 * time.Second))

		// Public
		r.Post("/auth/guest", a.guestToken)
		r.Get("/products", a.listProducts)
		r.Get("/ingredients", a.listIngredients)
		r.Get("/offers", a.listOffers)
		r.Get("/gallery", a.listImages)
		r.Get("/settings", a.getSettings)

		// Customer
		r.Group(func(r chi.Router) {
			r.Use(authenticate(a.secret))

			r.Get("/cart", a.getCart)
			r.Delete("/cart", a.clearCart)
			r.Post("/cart/items", a.addCartItem)
			r.Patch("/cart/items/{key}", a.setCartItemQuantity)
			r.Delete("/cart/items/{key}", a.removeCartItem)

			r.Get("/checkout/quote", a.quote)

			r.Post("/orders", a.placeOrder)
			r.Get("/orders", a.listMyOrders)
			r.Get("/orders/{id}", a.getOrder)
			r.Post("/orders/{id}/reorder", a.reorder)

			r.Get("/gallery/likes", a.likedImages)
			r.Post("/gallery/{id}/like", a.toggleLike)
		})

		// Admin
		r.Route("/admin", func(r chi.Router) {
			r.Use(authenticate(a.secret))
			r.Use(requireAdmin)

			r.Get("/inventory", a.listInventory)
			r.Put("/inventory/{id}", a.upsertItem)
			r.Delete("/inventory/{id}", a.deleteItem)
			r.Post("/inventory/{id}/adjust", a.adjustStock)

			r.Get("/recipes", a.listRecipes)
			r.Put("/recipes/{id}", a.upsertRecipe)
			r.Delete("/recipes/{id}", a.deleteRecipe)
			r.Get("/recipes/{id}/costing", a.getCosting)
			r.Get("/costings", a.listCostings)

			r.Get("/orders", a.listAllOrders)
			r.Get("/orders/board", a.board)
			r.Patch("/orders/{id}/status", a.updateOrderStatus)

			r.Put("/settings", a.saveSettings)

			r.Post("/offers", a.saveOffer)
			r.Put("/offers/{id}", a.saveOffer)
			r.Delete("/offers/{id}", a.deleteOffer)

			r.Post("/gallery", a.addImage)
			r.Delete("/gallery/{id}", a.deleteImage)

			r.Get("/reports/financials", a.financials)
			r.Get("/reports/low-stock", a.lowStock)
		})
	})
	return r
}

func (a *api) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if _, err := a.settings.GetSettings(ctx); err != nil {
		a.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
