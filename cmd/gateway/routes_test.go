package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	cartv1 "github.com/dwikikusuma/bakery-shop/api/cart/v1"
	catalogv1 "github.com/dwikikusuma/bakery-shop/api/catalog/v1"
	catalog "github.com/dwikikusuma/bakery-shop/internal/catalog/domain"
	"github.com/dwikikusuma/bakery-shop/internal/storefront"
	"github.com/dwikikusuma/bakery-shop/pkg/auth"
	"github.com/dwikikusuma/bakery-shop/pkg/docstore/memory"
	"github.com/dwikikusuma/bakery-shop/pkg/grpcjson"
	"github.com/dwikikusuma/bakery-shop/pkg/logger"
)

var testSecret = []byte("gateway-test")

func newTestGateway(t *testing.T) http.Handler {
	t.Helper()
	log := logger.Discard()
	app := storefront.New(memory.New(), storefront.Options{DeductionBackoff: time.Millisecond}, log)
	if err := app.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(app.Stop)

	ctx := context.Background()
	if _, err := app.Catalog.UpsertItem(ctx, catalog.InventoryItem{
		Ingredient:     catalog.Ingredient{ID: "b1", Name: "Vainilla", Category: catalog.CategoryBase, UnitPrice: decimal.NewFromInt(50)},
		QuantityOnHand: 10,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	app.Register(srv)
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

	return newRouter(newAPI(conn, testSecret, log), []string{"*"})
}

func token(t *testing.T, user string, role auth.Role) string {
	t.Helper()
	tok, err := auth.Issue(testSecret, user, role, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return tok
}

func do(t *testing.T, h http.Handler, method, path, tok string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGatewayRoutes(t *testing.T) {
	h := newTestGateway(t)
	customer := token(t, "u1", auth.RoleCustomer)
	admin := token(t, "boss", auth.RoleAdmin)

	t.Run("healthz -> 200", func(t *testing.T) {
		if rec := do(t, h, "GET", "/healthz", "", nil); rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("readyz -> 200", func(t *testing.T) {
		if rec := do(t, h, "GET", "/readyz", "", nil); rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("cart without token -> 401", func(t *testing.T) {
		if rec := do(t, h, "GET", "/api/cart", "", nil); rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("admin route as customer -> 403", func(t *testing.T) {
		if rec := do(t, h, "GET", "/api/admin/inventory", customer, nil); rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("public ingredients hide raw materials", func(t *testing.T) {
		rec := do(t, h, "GET", "/api/ingredients", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var body struct {
			Ingredients []catalogv1.Ingredient `json:"ingredients"`
		}
		_ = json.NewDecoder(rec.Body).Decode(&body)
		if len(body.Ingredients) != 1 || body.Ingredients[0].ID != "b1" {
			t.Fatalf("ingredients = %+v", body.Ingredients)
		}
	})

	t.Run("empty cart checkout -> 409", func(t *testing.T) {
		rec := do(t, h, "POST", "/api/orders", customer, map[string]any{"deliveryMethod": "pickup", "paymentMethod": "cash"})
		if rec.Code != http.StatusConflict {
			t.Fatalf("status = %d body=%s", rec.Code, rec.Body)
		}
	})

	var orderID string
	t.Run("add then order -> 201", func(t *testing.T) {
		rec := do(t, h, "POST", "/api/cart/items", customer, map[string]any{"kind": "custom", "quantity": 2, "baseId": "b1"})
		if rec.Code != http.StatusOK {
			t.Fatalf("add status = %d body=%s", rec.Code, rec.Body)
		}
		rec = do(t, h, "POST", "/api/orders", customer, map[string]any{"deliveryMethod": "delivery", "paymentMethod": "transfer"})
		if rec.Code != http.StatusCreated {
			t.Fatalf("order status = %d body=%s", rec.Code, rec.Body)
		}
		var body struct {
			Order struct {
				ID    string          `json:"id"`
				Total decimal.Decimal `json:"total"`
			} `json:"order"`
		}
		_ = json.NewDecoder(rec.Body).Decode(&body)
		if !body.Order.Total.Equal(decimal.NewFromInt(125)) {
			t.Fatalf("total = %s", body.Order.Total)
		}
		orderID = body.Order.ID
	})

	t.Run("another customer cannot read the order", func(t *testing.T) {
		other := token(t, "u2", auth.RoleCustomer)
		if rec := do(t, h, "GET", "/api/orders/"+orderID, other, nil); rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("admin confirm without eta -> 409", func(t *testing.T) {
		rec := do(t, h, "PATCH", "/api/admin/orders/"+orderID+"/status", admin, map[string]any{"status": "confirmed"})
		if rec.Code != http.StatusConflict {
			t.Fatalf("status = %d body=%s", rec.Code, rec.Body)
		}
	})

	t.Run("admin confirm with eta -> 200", func(t *testing.T) {
		rec := do(t, h, "PATCH", "/api/admin/orders/"+orderID+"/status", admin, map[string]any{"status": "confirmed", "estimatedTime": "1h"})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d body=%s", rec.Code, rec.Body)
		}
	})

	t.Run("escaped cart key -> line updated", func(t *testing.T) {
		rec := do(t, h, "POST", "/api/cart/items", customer, map[string]any{"kind": "custom", "quantity": 1, "baseId": "b1"})
		if rec.Code != http.StatusOK {
			t.Fatalf("add status = %d body=%s", rec.Code, rec.Body)
		}
		rec = do(t, h, "PATCH", "/api/cart/items/custom%3Ab1", customer, map[string]any{"quantity": 3})
		if rec.Code != http.StatusOK {
			t.Fatalf("patch status = %d body=%s", rec.Code, rec.Body)
		}
		var body cartv1.CartResponse
		_ = json.NewDecoder(rec.Body).Decode(&body)
		if len(body.Cart.Lines) != 1 || body.Cart.Lines[0].Quantity != 3 {
			t.Fatalf("cart = %+v", body.Cart)
		}
	})

	t.Run("malformed body -> 400", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/cart/items", bytes.NewBufferString("{"))
		req.Header.Set("Authorization", "Bearer "+customer)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}

func TestCartKey(t *testing.T) {
	var got string
	r := chi.NewRouter()
	r.Get("/items/{key}", func(_ http.ResponseWriter, r *http.Request) { got = cartKey(r) })

	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain -> as is", "/items/custom:b1,f1", "custom:b1,f1"},
		{"escaped colon -> unescaped", "/items/custom%3Ab1%2Cf1", "custom:b1,f1"},
		{"escaped id inside key -> one level removed", "/items/custom%3Ab%252F2", "custom:b%2F2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = ""
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", tt.path, nil))
			if got != tt.want {
				t.Fatalf("cartKey = %q, want %q", got, tt.want)
			}
		})
	}
}
