package grpcgate

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// GateServer is the server API for the Gate gRPC service.
//
// We intentionally use protobuf well-known wrapper types so this package does
// not require a protoc/codegen toolchain: the request is kind-tagged entity
// JSON, the response a verdict string.
//
// Proto definition: gate.proto.
type GateServer interface {
	Check(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error)
}

// UnimplementedGateServer can be embedded to have forward compatible implementations.
type UnimplementedGateServer struct{}

func (UnimplementedGateServer) Check(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Check not implemented")
}

// RegisterGateServer registers the Gate service on a gRPC server.
func RegisterGateServer(s grpc.ServiceRegistrar, srv GateServer) {
	s.RegisterService(&Gate_ServiceDesc, srv)
}

// GateClient is the client API for the Gate gRPC service.
type GateClient interface {
	Check(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type gateClient struct{ cc grpc.ClientConnInterface }

func NewGateClient(cc grpc.ClientConnInterface) GateClient { return &gateClient{cc: cc} }

func (c *gateClient) Check(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, "/ontograph.datagate.v1.Gate/Check", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func _Gate_Check_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GateServer).Check(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/ontograph.datagate.v1.Gate/Check"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GateServer).Check(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Gate_ServiceDesc is the grpc.ServiceDesc for the Gate service.
var Gate_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ontograph.datagate.v1.Gate",
	HandlerType: (*GateServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Check", Handler: _Gate_Check_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gate.proto",
}
