package domain

import (
	"errors"
	"strings"
)

var ErrInvalidOffer = errors.New("invalid offer")

type Offer struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

func (o Offer) Validate() error {
	if strings.TrimSpace(o.Title) == "" {
		return errors.Join(ErrInvalidOffer, errors.New("title is required"))
	}
	return nil
}
