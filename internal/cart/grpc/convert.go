package grpc

import (
	cartv1 "github.com/dwikikusuma/bakery-shop/api/cart/v1"
	catalogv1 "github.com/dwikikusuma/bakery-shop/api/catalog/v1"
	"github.com/dwikikusuma/bakery-shop/internal/cart/app"
	"github.com/dwikikusuma/bakery-shop/internal/cart/domain"
	catalog "github.com/dwikikusuma/bakery-shop/internal/catalog/domain"
	catalogrpc "github.com/dwikikusuma/bakery-shop/internal/catalog/grpc"
)

func LineToProto(l domain.Line) cartv1.Line {
	m := cartv1.Line{
		Key:       l.Key,
		Kind:      string(l.Kind),
		UnitPrice: l.UnitPrice,
		Quantity:  l.Quantity,
	}
	if l.Basic != nil {
		b := cartv1.BasicProduct(*l.Basic)
		m.Basic = &b
	}
	if d := l.Custom; d != nil {
		m.Custom = &cartv1.CustomDessert{
			Name:        d.Name,
			Base:        catalogrpc.IngredientToProto(d.Base),
			Filling:     optIngredientToProto(d.Filling),
			Frosting:    optIngredientToProto(d.Frosting),
			Toppings:    ingredientsToProto(d.Toppings),
			Decorations: ingredientsToProto(d.Decorations),
		}
	}
	return m
}

func LineFromProto(m cartv1.Line) domain.Line {
	l := domain.Line{
		Key:       m.Key,
		Kind:      domain.Kind(m.Kind),
		UnitPrice: m.UnitPrice,
		Quantity:  m.Quantity,
	}
	if m.Basic != nil {
		b := domain.BasicProduct(*m.Basic)
		l.Basic = &b
	}
	if d := m.Custom; d != nil {
		l.Custom = &domain.CustomDessert{
			Name:        d.Name,
			Base:        catalogrpc.IngredientFromProto(d.Base),
			Filling:     optIngredientFromProto(d.Filling),
			Frosting:    optIngredientFromProto(d.Frosting),
			Toppings:    ingredientsFromProto(d.Toppings),
			Decorations: ingredientsFromProto(d.Decorations),
		}
	}
	return l
}

// LinesToProto never returns nil so empty carts encode as [].
func LinesToProto(lines []domain.Line) []cartv1.Line {
	out := make([]cartv1.Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, LineToProto(l))
	}
	return out
}

func LinesFromProto(lines []cartv1.Line) []domain.Line {
	if lines == nil {
		return nil
	}
	out := make([]domain.Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, LineFromProto(l))
	}
	return out
}

func CartToProto(c domain.Cart) cartv1.Cart {
	return cartv1.Cart{UserID: c.UserID, Lines: LinesToProto(c.Lines), UpdatedAt: c.UpdatedAt}
}

func cartResponse(c domain.Cart) *cartv1.CartResponse {
	return &cartv1.CartResponse{Cart: CartToProto(c), Subtotal: c.Subtotal()}
}

func itemFromProto(m cartv1.Item) app.ItemRequest {
	return app.ItemRequest{
		Kind:          domain.Kind(m.Kind),
		Quantity:      m.Quantity,
		ProductID:     m.ProductID,
		Name:          m.Name,
		BaseID:        m.BaseID,
		FillingID:     m.FillingID,
		FrostingID:    m.FrostingID,
		ToppingIDs:    m.ToppingIDs,
		DecorationIDs: m.DecorationIDs,
	}
}

func optIngredientToProto(i *catalog.Ingredient) *catalogv1.Ingredient {
	if i == nil {
		return nil
	}
	m := catalogrpc.IngredientToProto(*i)
	return &m
}

func optIngredientFromProto(m *catalogv1.Ingredient) *catalog.Ingredient {
	if m == nil {
		return nil
	}
	i := catalogrpc.IngredientFromProto(*m)
	return &i
}

func ingredientsToProto(is []catalog.Ingredient) []catalogv1.Ingredient {
	if len(is) == 0 {
		return nil
	}
	out := make([]catalogv1.Ingredient, len(is))
	for n, i := range is {
		out[n] = catalogrpc.IngredientToProto(i)
	}
	return out
}

func ingredientsFromProto(ms []catalogv1.Ingredient) []catalog.Ingredient {
	if len(ms) == 0 {
		return nil
	}
	out := make([]catalog.Ingredient, len(ms))
	for n, m := range ms {
		out[n] = catalogrpc.IngredientFromProto(m)
	}
	return out
}
