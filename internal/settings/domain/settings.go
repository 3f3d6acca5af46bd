package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidSettings = errors.New("invalid settings")

type BirthdayOffer struct {
	Description string `json:"description"`
}

// Settings is the single store-wide configuration document.
type Settings struct {
	AdminPhoneNumber string          `json:"adminPhoneNumber"`
	AdminCardNumber  string          `json:"adminCardNumber"`
	BirthdayOffer    BirthdayOffer   `json:"birthdayOffer"`
	DeliveryFee      decimal.Decimal `json:"deliveryFee"`
}

func Defaults() Settings {
	return Settings{
		AdminPhoneNumber: "5216361317125",
		AdminCardNumber:  "1234-5678-9012-3456",
		BirthdayOffer:    BirthdayOffer{Description: "¡Postre gratis en tu día!"},
		DeliveryFee:      decimal.NewFromInt(25),
	}
}

func (s Settings) Validate() error {
	if s.DeliveryFee.IsNegative() {
		return errors.Join(ErrInvalidSettings, errors.New("delivery fee must not be negative"))
	}
	return nil
}
