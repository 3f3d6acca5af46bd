package grpcjson

import (
	"context"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const echoService = "test.EchoService"

type echoRequest struct {
	Text string `json:"text"`
}

type echoResponse struct {
	Text string `json:"text"`
}

type echoServer interface {
	Echo(ctx context.Context, req *echoRequest) (*echoResponse, error)
}

type echo struct{}

func (echo) Echo(_ context.Context, req *echoRequest) (*echoResponse, error) {
	if req.Text == "" {
		return nil, status.Error(codes.InvalidArgument, "empty")
	}
	return &echoResponse{Text: req.Text + "!"}, nil
}

var echoDesc = grpc.ServiceDesc{
	ServiceName: echoService,
	HandlerType: (*echoServer)(nil),
	Methods: []grpc.MethodDesc{
		Unary(echoService, "Echo", echoServer.Echo),
	},
}

func dial(t *testing.T, opts ...grpc.ServerOption) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(opts...)
	srv.RegisterService(&echoDesc, echo{})
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		DialOption(),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestUnaryRoundTrip(t *testing.T) {
	conn := dial(t)

	t.Run("ok", func(t *testing.T) {
		resp, err := Invoke[echoResponse](context.Background(), conn, echoService, "Echo", &echoRequest{Text: "cake"})
		if err != nil {
			t.Fatalf("invoke: %v", err)
		}
		if resp.Text != "cake!" {
			t.Fatalf("got %q", resp.Text)
		}
	})

	t.Run("status propagates", func(t *testing.T) {
		_, err := Invoke[echoResponse](context.Background(), conn, echoService, "Echo", &echoRequest{})
		if status.Code(err) != codes.InvalidArgument {
			t.Fatalf("expected InvalidArgument, got %v", err)
		}
	})
}

func TestUnaryInterceptor(t *testing.T) {
	seen := make(chan string, 1)
	conn := dial(t, grpc.UnaryInterceptor(func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		seen <- info.FullMethod
		return handler(ctx, req)
	}))

	if _, err := Invoke[echoResponse](context.Background(), conn, echoService, "Echo", &echoRequest{Text: "x"}); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if got := <-seen; got != "/test.EchoService/Echo" {
		t.Fatalf("interceptor saw %q", got)
	}
}
