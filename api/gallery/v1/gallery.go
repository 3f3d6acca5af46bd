// Package galleryv1 describes the GalleryService wire contract.
package galleryv1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/dwikikusuma/bakery-shop/pkg/grpcjson"
)

const ServiceName = "bakery.gallery.v1.GalleryService"

type Empty struct{}

type IDRequest struct {
	ID string `json:"id"`
}

type UserRequest struct {
	UserID string `json:"userId"`
}

type Image struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption,omitempty"`
	Likes    int    `json:"likes"`
}

type ImageMessage struct {
	Image Image `json:"image"`
}

type ListImagesResponse struct {
	Images []Image `json:"images"`
}

type ToggleLikeRequest struct {
	UserID  string `json:"userId"`
	ImageID string `json:"imageId"`
}

type ToggleLikeResponse struct {
	Image Image `json:"image"`
	Liked bool  `json:"liked"`
}

type LikedImagesResponse struct {
	ImageIDs []string `json:"imageIds"`
}

type GalleryServiceServer interface {
	ListImages(context.Context, *Empty) (*ListImagesResponse, error)
	AddImage(context.Context, *ImageMessage) (*ImageMessage, error)
	DeleteImage(context.Context, *IDRequest) (*Empty, error)
	ToggleLike(context.Context, *ToggleLikeRequest) (*ToggleLikeResponse, error)
	LikedImages(context.Context, *UserRequest) (*LikedImagesResponse, error)
}

var GalleryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GalleryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		grpcjson.Unary(ServiceName, "ListImages", GalleryServiceServer.ListImages),
		grpcjson.Unary(ServiceName, "AddImage", GalleryServiceServer.AddImage),
		grpcjson.Unary(ServiceName, "DeleteImage", GalleryServiceServer.DeleteImage),
		grpcjson.Unary(ServiceName, "ToggleLike", GalleryServiceServer.ToggleLike),
		grpcjson.Unary(ServiceName, "LikedImages", GalleryServiceServer.LikedImages),
	},
	Metadata: "gallery/v1/gallery",
}

func RegisterGalleryServiceServer(s grpc.ServiceRegistrar, srv GalleryServiceServer) {
	s.RegisterService(&GalleryService_ServiceDesc, srv)
}

type GalleryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewGalleryServiceClient(cc grpc.ClientConnInterface) *GalleryServiceClient {
	return &GalleryServiceClient{cc: cc}
}

func (c *GalleryServiceClient) ListImages(ctx context.Context) (*ListImagesResponse, error) {
	return grpcjson.Invoke[ListImagesResponse](ctx, c.cc, ServiceName, "ListImages", &Empty{})
}

func (c *GalleryServiceClient) AddImage(ctx context.Context, req *ImageMessage) (*ImageMessage, error) {
	return grpcjson.Invoke[ImageMessage](ctx, c.cc, ServiceName, "AddImage", req)
}

func (c *GalleryServiceClient) DeleteImage(ctx context.Context, req *IDRequest) (*Empty, error) {
	return grpcjson.Invoke[Empty](ctx, c.cc, ServiceName, "DeleteImage", req)
}

func (c *GalleryServiceClient) ToggleLike(ctx context.Context, req *ToggleLikeRequest) (*ToggleLikeResponse, error) {
	return grpcjson.Invoke[ToggleLikeResponse](ctx, c.cc, ServiceName, "ToggleLike", req)
}

func (c *GalleryServiceClient) LikedImages(ctx context.Context, req *UserRequest) (*LikedImagesResponse, error) {
	return grpcjson.Invoke[LikedImagesResponse](ctx, c.cc, ServiceName, "LikedImages", req)
}
