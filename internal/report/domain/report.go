package domain

import (
	"github.com/shopspring/decimal"

	catalog "github.com/dwikikusuma/bakery-shop/internal/catalog/domain"
	order "github.com/dwikikusuma/bakery-shop/internal/order/domain"
)

// Financials summarises money in (orders) against money tied up in stock.
type Financials struct {
	Revenue    decimal.Decimal `json:"revenue"`
	Investment decimal.Decimal `json:"investment"`
	Profit     decimal.Decimal `json:"profit"`
	OrderCount int             `json:"orderCount"`
}

// Investment values stock on hand at purchase cost; a package size of zero
// counts as one unit per package.
func Investment(items []catalog.InventoryItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		size := it.PackageSize
		if size <= 0 {
			size = 1
		}
		total = total.Add(it.UnitCost.Mul(decimal.NewFromFloat(it.QuantityOnHand)).Div(decimal.NewFromFloat(size)))
	}
	return total.Round(2)
}

func Revenue(orders []order.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Total)
	}
	return total
}

func Compute(orders []order.Order, items []catalog.InventoryItem) Financials {
	rev := Revenue(orders)
	inv := Investment(items)
	return Financials{
		Revenue:    rev,
		Investment: inv,
		Profit:     rev.Sub(inv),
		OrderCount: len(orders),
	}
}
