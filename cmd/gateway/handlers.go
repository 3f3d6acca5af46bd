package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	cartv1 "github.com/dwikikusuma/bakery-shop/api/cart/v1"
	catalogv1 "github.com/dwikikusuma/bakery-shop/api/catalog/v1"
	checkoutv1 "github.com/dwikikusuma/bakery-shop/api/checkout/v1"
	galleryv1 "github.com/dwikikusuma/bakery-shop/api/gallery/v1"
	offerv1 "github.com/dwikikusuma/bakery-shop/api/offer/v1"
	orderv1 "github.com/dwikikusuma/bakery-shop/api/order/v1"
	settingsv1 "github.com/dwikikusuma/bakery-shop/api/settings/v1"
	"github.com/dwikikusuma/bakery-shop/pkg/auth"
)

const guestTokenTTL = 24 * time.Hour

func (a *api) fail(w http.ResponseWriter, err error) {
	code, errCode, msg := httpStatusFromGRPC(err)
	if code >= http.StatusInternalServerError {
		a.log.Error("storefront call failed", slog.Any("err", err))
	}
	writeError(w, code, errCode, msg)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "malformed JSON body")
		return false
	}
	return true
}

// cartKey reads the {key} segment. chi matches on the escaped path when the
// request carries one, so the segment is unescaped here in that case.
func cartKey(r *http.Request) string {
	k := chi.URLParam(r, "key")
	if r.URL.RawPath == "" {
		return k
	}
	if u, err := url.PathUnescape(k); err == nil {
		return u
	}
	return k
}

func principal(r *http.Request) auth.Principal {
	p, _ := auth.PrincipalFrom(r.Context())
	return p
}

// Public

func (a *api) guestToken(w http.ResponseWriter, _ *http.Request) {
	id := "guest_" + uuid.NewString()
	token, err := auth.Issue(a.secret, id, auth.RoleCustomer, guestTokenTTL)
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"userId":    id,
		"token":     token,
		"expiresAt": time.Now().Add(guestTokenTTL).UTC(),
	})
}

func (a *api) listProducts(w http.ResponseWriter, r *http.Request) {
	resp, err := a.catalog.ListProducts(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) listIngredients(w http.ResponseWriter, r *http.Request) {
	resp, err := a.catalog.ListIngredients(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) listOffers(w http.ResponseWriter, r *http.Request) {
	resp, err := a.offers.ListOffers(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) listImages(w http.ResponseWriter, r *http.Request) {
	resp, err := a.gallery.ListImages(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) getSettings(w http.ResponseWriter, r *http.Request) {
	resp, err := a.settings.GetSettings(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Customer

func (a *api) getCart(w http.ResponseWriter, r *http.Request) {
	resp, err := a.cart.GetCart(r.Context(), &cartv1.UserID{UserID: principal(r).UserID})
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) clearCart(w http.ResponseWriter, r *http.Request) {
	if _, err := a.cart.ClearCart(r.Context(), &cartv1.UserID{UserID: principal(r).UserID}); err != nil {
		a.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) addCartItem(w http.ResponseWriter, r *http.Request) {
	var item cartv1.Item
	if !decode(w, r, &item) {
		return
	}
	resp, err := a.cart.AddItem(r.Context(), &cartv1.AddItemRequest{UserID: principal(r).UserID, Item: item})
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) setCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if !decode(w, r, &body) {
		return
	}
	resp, err := a.cart.SetItemQuantity(r.Context(), &cartv1.SetItemQuantityRequest{
		UserID:   principal(r).UserID,
		Key:      cartKey(r),
		Quantity: body.Quantity,
	})
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) removeCartItem(w http.ResponseWriter, r *http.Request) {
	resp, err := a.cart.RemoveItem(r.Context(), &cartv1.RemoveItemRequest{
		UserID: principal(r).UserID,
		Key:    cartKey(r),
	})
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) quote(w http.ResponseWriter, r *http.Request) {
	method := r.URL.Query().Get("deliveryMethod")
	if method == "" {
		method = "pickup"
	}
	resp, err := a.checkout.Quote(r.Context(), &checkoutv1.QuoteRequest{UserID: principal(r).UserID, DeliveryMethod: method})
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req orderv1.PlaceOrderRequest
	if !decode(w, r, &req) {
		return
	}
	req.UserID = principal(r).UserID
	resp, err := a.orders.PlaceOrder(r.Context(), &req)
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (a *api) listMyOrders(w http.ResponseWriter, r *http.Request) {
	resp, err := a.orders.ListOrders(r.Context(), &orderv1.ListOrdersRequest{UserID: principal(r).UserID})
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// getOrder hides other customers' orders behind a 404.
func (a *api) getOrder(w http.ResponseWriter, r *http.Request) {
	resp, err := a.orders.GetOrder(r.Context(), &orderv1.GetOrderRequest{OrderID: chi.URLParam(r, "id")})
	if err != nil {
		a.fail(w, err)
		return
	}
	p := principal(r)
	if !p.IsAdmin() && resp.Order.UserID != p.UserID {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "not found")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) reorder(w http.ResponseWriter, r *http.Request) {
	resp, err := a.orders.Reorder(r.Context(), &orderv1.ReorderRequest{
		UserID:  principal(r).UserID,
		OrderID: chi.URLParam(r, "id"),
	})
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) likedImages(w http.ResponseWriter, r *http.Request) {
	resp, err := a.gallery.LikedImages(r.Context(), &galleryv1.UserRequest{UserID: principal(r).UserID})
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) toggleLike(w http.ResponseWriter, r *http.Request) {
	resp, err := a.gallery.ToggleLike(r.Context(), &galleryv1.ToggleLikeRequest{
		UserID:  principal(r).UserID,
		ImageID: chi.URLParam(r, "id"),
	})
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Admin

func (a *api) listInventory(w http.ResponseWriter, r *http.Request) {
	resp, err := a.catalog.ListInventory(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) upsertItem(w http.ResponseWriter, r *http.Request) {
	var item catalogv1.InventoryItem
	if !decode(w, r, &item) {
		return
	}
	item.ID = chi.URLParam(r, "id")
	resp, err := a.catalog.UpsertItem(r.Context(), &catalogv1.UpsertItemRequest{Item: item})
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) deleteItem(w http.ResponseWriter, r *http.Request) {
	if _, err := a.catalog.DeleteItem(r.Context(), &catalogv1.IDRequest{ID: chi.URLParam(r, "id")}); err != nil {
		a.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) adjustStock(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Delta float64 `json:"delta"`
	}
	if !decode(w, r, &body) {
		return
	}
	resp, err := a.catalog.AdjustStock(r.Context(), &catalogv1.AdjustStockRequest{ID: chi.URLParam(r, "id"), Delta: body.Delta})
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) listRecipes(w http.ResponseWriter, r *http.Request) {
	resp, err := a.catalog.ListRecipes(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) upsertRecipe(w http.ResponseWriter, r *http.Request) {
	var recipe catalogv1.Recipe
	if !decode(w, r, &recipe) {
		return
	}
	recipe.ID = chi.URLParam(r, "id")
	resp, err := a.catalog.UpsertRecipe(r.Context(), &catalogv1.UpsertRecipeRequest{Recipe: recipe})
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	if _, err := a.catalog.DeleteRecipe(r.Context(), &catalogv1.IDRequest{ID: chi.URLParam(r, "id")}); err != nil {
		a.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) getCosting(w http.ResponseWriter, r *http.Request) {
	resp, err := a.catalog.GetCosting(r.Context(), &catalogv1.IDRequest{ID: chi.URLParam(r, "id")})
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) listCostings(w http.ResponseWriter, r *http.Request) {
	resp, err := a.catalog.ListCostings(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) listAllOrders(w http.ResponseWriter, r *http.Request) {
	resp, err := a.orders.ListOrders(r.Context(), &orderv1.ListOrdersRequest{})
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) board(w http.ResponseWriter, r *http.Request) {
	resp, err := a.orders.Board(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status        string `json:"status"`
		EstimatedTime string `json:"estimatedTime"`
	}
	if !decode(w, r, &body) {
		return
	}
	resp, err := a.orders.UpdateStatus(r.Context(), &orderv1.UpdateStatusRequest{
		OrderID:       chi.URLParam(r, "id"),
		Status:        body.Status,
		EstimatedTime: body.EstimatedTime,
	})
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) saveSettings(w http.ResponseWriter, r *http.Request) {
	var st settingsv1.Settings
	if !decode(w, r, &st) {
		return
	}
	resp, err := a.settings.SaveSettings(r.Context(), &settingsv1.SettingsMessage{Settings: st})
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) saveOffer(w http.ResponseWriter, r *http.Request) {
	var o offerv1.Offer
	if !decode(w, r, &o) {
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		o.ID = id
	}
	resp, err := a.offers.SaveOffer(r.Context(), &offerv1.OfferMessage{Offer: o})
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) deleteOffer(w http.ResponseWriter, r *http.Request) {
	if _, err := a.offers.DeleteOffer(r.Context(), &offerv1.IDRequest{ID: chi.URLParam(r, "id")}); err != nil {
		a.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) addImage(w http.ResponseWriter, r *http.Request) {
	var img galleryv1.Image
	if !decode(w, r, &img) {
		return
	}
	resp, err := a.gallery.AddImage(r.Context(), &galleryv1.ImageMessage{Image: img})
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (a *api) deleteImage(w http.ResponseWriter, r *http.Request) {
	if _, err := a.gallery.DeleteImage(r.Context(), &galleryv1.IDRequest{ID: chi.URLParam(r, "id")}); err != nil {
		a.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) financials(w http.ResponseWriter, r *http.Request) {
	resp, err := a.reports.Financials(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) lowStock(w http.ResponseWriter, r *http.Request) {
	resp, err := a.reports.LowStock(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

