package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	settingsv1 "github.com/dwikikusuma/bakery-shop/api/settings/v1"
	"github.com/dwikikusuma/bakery-shop/internal/settings/app"
	"github.com/dwikikusuma/bakery-shop/internal/settings/domain"
)

type Server struct {
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) GetSettings(ctx context.Context, _ *settingsv1.Empty) (*settingsv1.SettingsMessage, error) {
	st, err := s.svc.Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return &settingsv1.SettingsMessage{Settings: toProto(st)}, nil
}

func (s *Server) SaveSettings(ctx context.Context, req *settingsv1.SettingsMessage) (*settingsv1.SettingsMessage, error) {
	st, err := s.svc.Save(ctx, fromProto(req.Settings))
	if err != nil {
		return nil, mapErr(err)
	}
	return &settingsv1.SettingsMessage{Settings: toProto(st)}, nil
}

func toProto(st domain.Settings) settingsv1.Settings {
	return settingsv1.Settings{
		AdminPhoneNumber: st.AdminPhoneNumber,
		AdminCardNumber:  st.AdminCardNumber,
		BirthdayOffer:    settingsv1.BirthdayOffer(st.BirthdayOffer),
		DeliveryFee:      st.DeliveryFee,
	}
}

func fromProto(m settingsv1.Settings) domain.Settings {
	return domain.Settings{
		AdminPhoneNumber: m.AdminPhoneNumber,
		AdminCardNumber:  m.AdminCardNumber,
		BirthdayOffer:    domain.BirthdayOffer(m.BirthdayOffer),
		DeliveryFee:      m.DeliveryFee,
	}
}

func mapErr(err error) error {
	if errors.Is(err, app.ErrInvalidInput) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
