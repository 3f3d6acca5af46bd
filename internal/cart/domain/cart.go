package domain

import (
	"errors"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	catalog "github.com/dwikikusuma/bakery-shop/internal/catalog/domain"
)

var ErrInvalidLine = errors.New("invalid cart line")

type Kind string

const (
	KindCustom Kind = "custom"
	KindBasic  Kind = "basic"
)

// CustomDessert is assembled directly from inventory components. Filling and
// frosting are optional.
type CustomDessert struct {
	Name        string               `json:"name,omitempty"`
	Base        catalog.Ingredient   `json:"base"`
	Filling     *catalog.Ingredient  `json:"filling,omitempty"`
	Frosting    *catalog.Ingredient  `json:"frosting,omitempty"`
	Toppings    []catalog.Ingredient `json:"toppings,omitempty"`
	Decorations []catalog.Ingredient `json:"decorations,omitempty"`
}

// Components lists every present component, base first.
func (d CustomDessert) Components() []catalog.Ingredient {
	out := []catalog.Ingredient{d.Base}
	if d.Filling != nil {
		out = append(out, *d.Filling)
	}
	if d.Frosting != nil {
		out = append(out, *d.Frosting)
	}
	out = append(out, d.Toppings...)
	return append(out, d.Decorations...)
}

func (d CustomDessert) Price() decimal.Decimal {
	total := decimal.Zero
	for _, c := range d.Components() {
		total = total.Add(c.UnitPrice)
	}
	return total
}

type BasicProduct struct {
	ProductID string `json:"productId"`
	RecipeID  string `json:"recipeId,omitempty"`
	Name      string `json:"name,omitempty"`
}

// Line is either a custom dessert or a basic product, selected by Kind.
type Line struct {
	Key       string          `json:"key,omitempty"`
	Kind      Kind            `json:"kind"`
	Custom    *CustomDessert  `json:"custom,omitempty"`
	Basic     *BasicProduct   `json:"basic,omitempty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

func (l Line) Validate() error {
	switch {
	case l.Quantity < 1:
		return errors.Join(ErrInvalidLine, errors.New("quantity must be at least 1"))
	case l.UnitPrice.IsNegative():
		return errors.Join(ErrInvalidLine, errors.New("unit price must not be negative"))
	case l.Kind == KindCustom && (l.Custom == nil || l.Basic != nil):
		return errors.Join(ErrInvalidLine, errors.New("custom line needs only a custom dessert"))
	case l.Kind == KindCustom && strings.TrimSpace(l.Custom.Base.ID) == "":
		return errors.Join(ErrInvalidLine, errors.New("custom dessert needs a base"))
	case l.Kind == KindBasic && (l.Basic == nil || l.Custom != nil):
		return errors.Join(ErrInvalidLine, errors.New("basic line needs only a product"))
	case l.Kind == KindBasic && strings.TrimSpace(l.Basic.ProductID) == "":
		return errors.Join(ErrInvalidLine, errors.New("basic line needs a product id"))
	case l.Kind != KindCustom && l.Kind != KindBasic:
		return errors.Join(ErrInvalidLine, errors.New("unknown kind "+string(l.Kind)))
	}
	return nil
}

func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Key identifies lines that merge. Lines of different kinds never share a key.
type Key struct {
	Kind Kind
	ID   string
}

func (k Key) String() string { return string(k.Kind) + ":" + k.ID }

func ParseKey(s string) (Key, bool) {
	kind, id, ok := strings.Cut(s, ":")
	if !ok || id == "" || (Kind(kind) != KindCustom && Kind(kind) != KindBasic) {
		return Key{}, false
	}
	return Key{Kind: Kind(kind), ID: id}, true
}

// KeyOf derives the merge key. For custom desserts it is the sorted ids of
// the present components, each query-escaped and joined by commas, so no two
// distinct id tuples share a key. Absent optional components add nothing.
func KeyOf(l Line) Key {
	switch l.Kind {
	case KindCustom:
		if l.Custom == nil {
			return Key{Kind: KindCustom}
		}
		comps := l.Custom.Components()
		ids := make([]string, 0, len(comps))
		for _, c := range comps {
			ids = append(ids, url.QueryEscape(c.ID))
		}
		slices.Sort(ids)
		return Key{Kind: KindCustom, ID: strings.Join(ids, ",")}
	default:
		if l.Basic == nil {
			return Key{Kind: l.Kind}
		}
		return Key{Kind: l.Kind, ID: l.Basic.ProductID}
	}
}

// AddToCart merges l into lines. A line with the same key has its quantity
// increased in place; otherwise l is appended. lines is not modified.
func AddToCart(lines []Line, l Line) []Line {
	key := KeyOf(l)
	l.Key = key.String()

	out := slices.Clone(lines)
	for i := range out {
		if KeyOf(out[i]) == key {
			out[i].Quantity += l.Quantity
			return out
		}
	}
	return append(out, l)
}

func RemoveLine(lines []Line, key Key) []Line {
	return slices.DeleteFunc(slices.Clone(lines), func(l Line) bool { return KeyOf(l) == key })
}

// SetQuantity replaces the quantity of the keyed line; qty <= 0 removes it.
// ok is false when no line has the key.
func SetQuantity(lines []Line, key Key, qty int) (out []Line, ok bool) {
	out = slices.Clone(lines)
	for i := range out {
		if KeyOf(out[i]) != key {
			continue
		}
		if qty <= 0 {
			return slices.Delete(out, i, i+1), true
		}
		out[i].Quantity = qty
		return out, true
	}
	return out, false
}

// Subtract takes the quantities of taken out of lines, matching by key.
// Lines that reach zero are dropped; lines added since taken was read stay.
func Subtract(lines, taken []Line) []Line {
	out := slices.Clone(lines)
	for _, t := range taken {
		key := KeyOf(t)
		for i := range out {
			if KeyOf(out[i]) == key {
				out[i].Quantity -= t.Quantity
				break
			}
		}
	}
	return slices.DeleteFunc(out, func(l Line) bool { return l.Quantity <= 0 })
}

func Subtotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Total())
	}
	return total
}

type Cart struct {
	UserID    string    `json:"userId"`
	Lines     []Line    `json:"lines"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c Cart) Subtotal() decimal.Decimal { return Subtotal(c.Lines) }

func (c Cart) Empty() bool { return len(c.Lines) == 0 }

func (c Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}
