package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "registre.Registry"

// RegistryServer is the server API for the registre.Registry service. All
// messages are protobuf well-known types:
//
//	ListRecords(Empty) returns (Struct{records: [...]})
//	AddRecord(Struct{firstName, lastName, enrich}) returns (Struct record)
//	RemoveRecord(StringValue id) returns (Empty)
//	ClearRecords(Empty) returns (Empty)
//	GenerateProfile(Struct{firstName, lastName}) returns (Struct{role, bio})
//	Ping(Empty) returns (StringValue)
type RegistryServer interface {
	ListRecords(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	AddRecord(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveRecord(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	ClearRecords(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	GenerateProfile(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
}

// ServiceDesc describes registre.Registry for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RegistryServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("ListRecords", RegistryServer.ListRecords),
		unaryMethod("AddRecord", RegistryServer.AddRecord),
		unaryMethod("RemoveRecord", RegistryServer.RemoveRecord),
		unaryMethod("ClearRecords", RegistryServer.ClearRecords),
		unaryMethod("GenerateProfile", RegistryServer.GenerateProfile),
		unaryMethod("Ping", RegistryServer.Ping),
	},
	Streams: []grpc.StreamDesc{},
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unaryMethod[Req, Resp any](method string, call func(RegistryServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(RegistryServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(RegistryServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// RegistryClient is the client API for the registre.Registry service.
type RegistryClient struct {
	cc grpc.ClientConnInterface
}

func NewRegistryClient(cc grpc.ClientConnInterface) *RegistryClient {
	return &RegistryClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RegistryClient) ListRecords(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, "ListRecords", in, opts...)
}

func (c *RegistryClient) AddRecord(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, "AddRecord", in, opts...)
}

func (c *RegistryClient) RemoveRecord(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "RemoveRecord", in, opts...)
}

func (c *RegistryClient) ClearRecords(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "ClearRecords", in, opts...)
}

func (c *RegistryClient) GenerateProfile(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, "GenerateProfile", in, opts...)
}

func (c *RegistryClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return invoke[wrapperspb.StringValue](ctx, c.cc, "Ping", in, opts...)
}
