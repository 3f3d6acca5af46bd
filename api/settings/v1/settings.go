// Package settingsv1 describes the SettingsService wire contract.
package settingsv1

import (
	"context"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc"

	"github.com/dwikikusuma/bakery-shop/pkg/grpcjson"
)

const ServiceName = "bakery.settings.v1.SettingsService"

type Empty struct{}

type BirthdayOffer struct {
	Description string `json:"description"`
}

type Settings struct {
	AdminPhoneNumber string          `json:"adminPhoneNumber"`
	AdminCardNumber  string          `json:"adminCardNumber"`
	BirthdayOffer    BirthdayOffer   `json:"birthdayOffer"`
	DeliveryFee      decimal.Decimal `json:"deliveryFee"`
}

type SettingsMessage struct {
	Settings Settings `json:"settings"`
}

type SettingsServiceServer interface {
	GetSettings(context.Context, *Empty) (*SettingsMessage, error)
	SaveSettings(context.Context, *SettingsMessage) (*SettingsMessage, error)
}

var SettingsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SettingsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		grpcjson.Unary(ServiceName, "GetSettings", SettingsServiceServer.GetSettings),
		grpcjson.Unary(ServiceName, "SaveSettings", SettingsServiceServer.SaveSettings),
	},
	Metadata: "settings/v1/settings",
}

func RegisterSettingsServiceServer(s grpc.ServiceRegistrar, srv SettingsServiceServer) {
	s.RegisterService(&SettingsService_ServiceDesc, srv)
}

type SettingsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSettingsServiceClient(cc grpc.ClientConnInterface) *SettingsServiceClient {
	return &SettingsServiceClient{cc: cc}
}

func (c *SettingsServiceClient) GetSettings(ctx context.Context) (*SettingsMessage, error) {
	return grpcjson.Invoke[SettingsMessage](ctx, c.cc, ServiceName, "GetSettings", &Empty{})
}

func (c *SettingsServiceClient) SaveSettings(ctx context.Context, req *SettingsMessage) (*SettingsMessage, error) {
	return grpcjson.Invoke[SettingsMessage](ctx, c.cc, ServiceName, "SaveSettings", req)
}
