package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	settingsapp "github.com/dwikikusuma/bakery-shop/internal/settings/app"
)

type SettingsFeeReader struct {
	svc *settingsapp.Service
}

func NewSettingsFeeReader(svc *settingsapp.Service) *SettingsFeeReader {
	return &SettingsFeeReader{svc: svc}
}

func (r *SettingsFeeReader) DeliveryFee(ctx context.Context) (decimal.Decimal, error) {
	return r.svc.DeliveryFee(ctx)
}
