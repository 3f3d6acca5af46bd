package domain

import (
	"testing"

	"github.com/shopspring/decimal"

	catalog "github.com/dwikikusuma/bakery-shop/internal/catalog/domain"
)

func ing(id string, cat catalog.Category, price int64) catalog.Ingredient {
	return catalog.Ingredient{ID: id, Name: id, Category: cat, UnitPrice: decimal.NewFromInt(price)}
}

func ptr[T any](v T) *T { return &v }

func custom(qty int, toppings ...string) Line {
	d := CustomDessert{
		Base:     ing("b1", catalog.CategoryBase, 50),
		Filling:  ptr(ing("f1", catalog.CategoryFilling, 20)),
		Frosting: ptr(ing("fr1", catalog.CategoryFrosting, 15)),
	}
	for _, id := range toppings {
		d.Toppings = append(d.Toppings, ing(id, catalog.CategoryTopping, 10))
	}
	return Line{Kind: KindCustom, Custom: &d, UnitPrice: d.Price(), Quantity: qty}
}

func basic(productID string, qty int) Line {
	return Line{Kind: KindBasic, Basic: &BasicProduct{ProductID: productID}, UnitPrice: decimal.NewFromInt(35), Quantity: qty}
}

func TestAddToCart(t *testing.T) {
	t.Run("same composition merges in place", func(t *testing.T) {
		lines := AddToCart(nil, basic("prod-r1", 1))
		lines = AddToCart(lines, custom(2, "t1", "t2"))
		lines = AddToCart(lines, basic("prod-r2", 1))
		lines = AddToCart(lines, custom(3, "t2", "t1"))

		if len(lines) != 3 {
			t.Fatalf("expected 3 lines, got %d", len(lines))
		}
		if lines[1].Kind != KindCustom || lines[1].Quantity != 5 {
			t.Fatalf("expected merged custom line at index 1 with qty 5, got %+v", lines[1])
		}
	})

	t.Run("one topping differs -> distinct", func(t *testing.T) {
		lines := AddToCart(nil, custom(1, "t1"))
		lines = AddToCart(lines, custom(1, "t2"))
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
	})

	t.Run("absent optional component is part of identity", func(t *testing.T) {
		withFilling := custom(1)
		noFilling := custom(1)
		d := *noFilling.Custom
		d.Filling = nil
		noFilling.Custom = &d

		lines := AddToCart(nil, withFilling)
		lines = AddToCart(lines, noFilling)
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		if KeyOf(noFilling).ID != "b1-fr1" {
			t.Fatalf("unexpected key %q", KeyOf(noFilling).ID)
		}
	})

	t.Run("bare base still keyed", func(t *testing.T) {
		l := Line{Kind: KindCustom, Custom: &CustomDessert{Base: ing("b2", catalog.CategoryBase, 40)}, Quantity: 1}
		if k := KeyOf(l); k.ID != "b2" {
			t.Fatalf("unexpected key %+v", k)
		}
	})

	t.Run("hyphenated ids that concatenate alike -> distinct", func(t *testing.T) {
		a := CustomDessert{
			Base:     ing("fresa", catalog.CategoryBase, 50),
			Toppings: []catalog.Ingredient{ing("glaseado-mora", catalog.CategoryTopping, 10)},
		}
		b := CustomDessert{
			Base:     ing("fresa-glaseado", catalog.CategoryBase, 80),
			Toppings: []catalog.Ingredient{ing("mora", catalog.CategoryTopping, 10)},
		}
		la := Line{Kind: KindCustom, Custom: &a, UnitPrice: a.Price(), Quantity: 1}
		lb := Line{Kind: KindCustom, Custom: &b, UnitPrice: b.Price(), Quantity: 1}

		if KeyOf(la) == KeyOf(lb) {
			t.Fatalf("keys collide: %+v", KeyOf(la))
		}
		lines := AddToCart(AddToCart(nil, la), lb)
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		if lines[1].Custom.Base.ID != "fresa-glaseado" || !lines[1].UnitPrice.Equal(decimal.NewFromInt(90)) {
			t.Fatalf("second line lost its composition: %+v", lines[1])
		}
	})

	t.Run("separator inside an id -> distinct", func(t *testing.T) {
		a := Line{Kind: KindCustom, Custom: &CustomDessert{
			Base:     ing("a,b", catalog.CategoryBase, 1),
			Toppings: []catalog.Ingredient{ing("c", catalog.CategoryTopping, 1)},
		}, Quantity: 1}
		b := Line{Kind: KindCustom, Custom: &CustomDessert{
			Base:     ing("a", catalog.CategoryBase, 1),
			Toppings: []catalog.Ingredient{ing("b,c", catalog.CategoryTopping, 1)},
		}, Quantity: 1}
		if KeyOf(a) == KeyOf(b) {
			t.Fatalf("keys collide: %+v", KeyOf(a))
		}
	})

	t.Run("custom and basic never merge", func(t *testing.T) {
		c := Line{Kind: KindCustom, Custom: &CustomDessert{Base: ing("x", catalog.CategoryBase, 1)}, Quantity: 1}
		b := basic("x", 1)
		lines := AddToCart(AddToCart(nil, c), b)
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
	})

	t.Run("input slice untouched", func(t *testing.T) {
		orig := AddToCart(nil, basic("prod-r1", 1))
		_ = AddToCart(orig, basic("prod-r1", 4))
		if orig[0].Quantity != 1 {
			t.Fatalf("input mutated: %+v", orig[0])
		}
	})

	t.Run("key recorded on line", func(t *testing.T) {
		lines := AddToCart(nil, basic("prod-r1", 1))
		if lines[0].Key != "basic:prod-r1" {
			t.Fatalf("unexpected key %q", lines[0].Key)
		}
	})
}

func TestLineOps(t *testing.T) {
	lines := AddToCart(AddToCart(nil, basic("prod-r1", 2)), custom(1, "t1"))

	t.Run("subtotal", func(t *testing.T) {
		// 35*2 + (50+20+15+10)*1
		if got := Subtotal(lines); !got.Equal(decimal.NewFromInt(165)) {
			t.Fatalf("expected 165, got %s", got)
		}
	})

	t.Run("set quantity", func(t *testing.T) {
		out, ok := SetQuantity(lines, Key{Kind: KindBasic, ID: "prod-r1"}, 7)
		if !ok || out[0].Quantity != 7 || lines[0].Quantity != 2 {
			t.Fatalf("unexpected: %+v ok=%v", out, ok)
		}
	})

	t.Run("set quantity zero removes", func(t *testing.T) {
		out, ok := SetQuantity(lines, Key{Kind: KindBasic, ID: "prod-r1"}, 0)
		if !ok || len(out) != 1 || out[0].Kind != KindCustom {
			t.Fatalf("unexpected: %+v", out)
		}
	})

	t.Run("set quantity unknown key", func(t *testing.T) {
		if _, ok := SetQuantity(lines, Key{Kind: KindBasic, ID: "nope"}, 1); ok {
			t.Fatal("expected miss")
		}
	})

	t.Run("remove", func(t *testing.T) {
		key, ok := ParseKey(lines[1].Key)
		if !ok {
			t.Fatalf("parse %q", lines[1].Key)
		}
		out := RemoveLine(lines, key)
		if len(out) != 1 || out[0].Kind != KindBasic {
			t.Fatalf("unexpected: %+v", out)
		}
	})

	t.Run("subtract ordered lines -> later additions stay", func(t *testing.T) {
		taken := AddToCart(nil, basic("prod-r1", 2))
		current := AddToCart(AddToCart(lines, basic("prod-r1", 1)), custom(1, "t2"))

		out := Subtract(current, taken)
		if len(out) != 3 || out[0].Quantity != 1 {
			t.Fatalf("unexpected: %+v", out)
		}
		if current[0].Quantity != 3 {
			t.Fatal("input modified")
		}
	})

	t.Run("subtract everything -> empty", func(t *testing.T) {
		if out := Subtract(lines, lines); len(out) != 0 {
			t.Fatalf("unexpected: %+v", out)
		}
	})

	t.Run("subtract unknown line -> no change", func(t *testing.T) {
		out := Subtract(lines, []Line{basic("prod-r9", 4)})
		if len(out) != 2 || out[0].Quantity != 2 {
			t.Fatalf("unexpected: %+v", out)
		}
	})
}

func TestLineValidate(t *testing.T) {
	cases := map[string]Line{
		"zero quantity":   basic("prod-r1", 0),
		"no base":         {Kind: KindCustom, Custom: &CustomDessert{}, Quantity: 1},
		"missing payload": {Kind: KindBasic, Quantity: 1},
		"both payloads":   {Kind: KindBasic, Basic: &BasicProduct{ProductID: "p"}, Custom: &CustomDessert{}, Quantity: 1},
		"unknown kind":    {Kind: "combo", Quantity: 1},
	}
	for name, l := range cases {
		t.Run(name, func(t *testing.T) {
			if err := l.Validate(); err == nil {
				t.Fatal("expected error")
			}
		})
	}

	t.Run("valid", func(t *testing.T) {
		if err := custom(1).Validate(); err != nil {
			t.Fatalf("unexpected: %v", err)
		}
	})
}

func TestParseKey(t *testing.T) {
	for _, s := range []string{"", "basic", "basic:", "combo:x"} {
		if _, ok := ParseKey(s); ok {
			t.Errorf("expected %q to be rejected", s)
		}
	}
	k, ok := ParseKey("custom:b1,f1")
	if !ok || k.Kind != KindCustom || k.ID != "b1,f1" {
		t.Fatalf("unexpected %+v", k)
	}
}
