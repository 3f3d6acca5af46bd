// Package offerv1 describes the OfferService wire contract.
package offerv1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/dwikikusuma/bakery-shop/pkg/grpcjson"
)

const ServiceName = "bakery.offer.v1.OfferService"

type Empty struct{}

type IDRequest struct {
	ID string `json:"id"`
}

type Offer struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type OfferMessage struct {
	Offer Offer `json:"offer"`
}

type ListOffersResponse struct {
	Offers []Offer `json:"offers"`
}

type OfferServiceServer interface {
	ListOffers(context.Context, *Empty) (*ListOffersResponse, error)
	SaveOffer(context.Context, *OfferMessage) (*OfferMessage, error)
	DeleteOffer(context.Context, *IDRequest) (*Empty, error)
}

var OfferService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*OfferServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		grpcjson.Unary(ServiceName, "ListOffers", OfferServiceServer.ListOffers),
		grpcjson.Unary(ServiceName, "SaveOffer", OfferServiceServer.SaveOffer),
		grpcjson.Unary(ServiceName, "DeleteOffer", OfferServiceServer.DeleteOffer),
	},
	Metadata: "offer/v1/offer",
}

func RegisterOfferServiceServer(s grpc.ServiceRegistrar, srv OfferServiceServer) {
	s.RegisterService(&OfferService_ServiceDesc, srv)
}

type OfferServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOfferServiceClient(cc grpc.ClientConnInterface) *OfferServiceClient {
	return &OfferServiceClient{cc: cc}
}

func (c *OfferServiceClient) ListOffers(ctx context.Context) (*ListOffersResponse, error) {
	return grpcjson.Invoke[ListOffersResponse](ctx, c.cc, ServiceName, "ListOffers", &Empty{})
}

func (c *OfferServiceClient) SaveOffer(ctx context.Context, req *OfferMessage) (*OfferMessage, error) {
	return grpcjson.Invoke[OfferMessage](ctx, c.cc, ServiceName, "SaveOffer", req)
}

func (c *OfferServiceClient) DeleteOffer(ctx context.Context, req *IDRequest) (*Empty, error) {
	return grpcjson.Invoke[Empty](ctx, c.cc, ServiceName, "DeleteOffer", req)
}
