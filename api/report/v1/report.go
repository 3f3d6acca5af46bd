// Package reportv1 describes the ReportService wire contract.
package reportv1

import (
	"context"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc"

	catalogv1 "github.com/dwikikusuma/bakery-shop/api/catalog/v1"
	"github.com/dwikikusuma/bakery-shop/pkg/grpcjson"
)

const ServiceName = "bakery.report.v1.ReportService"

type Empty struct{}

// Financials sums revenue over every recorded order and investment over the
// stock on hand.
type Financials struct {
	Revenue    decimal.Decimal `json:"revenue"`
	Investment decimal.Decimal `json:"investment"`
	Profit     decimal.Decimal `json:"profit"`
	OrderCount int             `json:"orderCount"`
}

type FinancialsResponse struct {
	Financials Financials `json:"financials"`
}

type LowStockResponse struct {
	Items []catalogv1.InventoryItem `json:"items"`
}

type ReportServiceServer interface {
	Financials(context.Context, *Empty) (*FinancialsResponse, error)
	LowStock(context.Context, *Empty) (*LowStockResponse, error)
}

var ReportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		grpcjson.Unary(ServiceName, "Financials", ReportServiceServer.Financials),
		grpcjson.Unary(ServiceName, "LowStock", ReportServiceServer.LowStock),
	},
	Metadata: "report/v1/report",
}

func RegisterReportServiceServer(s grpc.ServiceRegistrar, srv ReportServiceServer) {
	s.RegisterService(&ReportService_ServiceDesc, srv)
}

type ReportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReportServiceClient(cc grpc.ClientConnInterface) *ReportServiceClient {
	return &ReportServiceClient{cc: cc}
}

func (c *ReportServiceClient) Financials(ctx context.Context) (*FinancialsResponse, error) {
	return grpcjson.Invoke[FinancialsResponse](ctx, c.cc, ServiceName, "Financials", &Empty{})
}

func (c *ReportServiceClient) LowStock(ctx context.Context) (*LowStockResponse, error) {
	return grpcjson.Invoke[LowStockResponse](ctx, c.cc, ServiceName, "LowStock", &Empty{})
}
