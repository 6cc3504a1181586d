// Package api provides the gRPC conversion service for cronconv.
package api

import (
	"context"
	"fmt"

	"github.com/solatis/cronconv/internal/cronexpr"
	"github.com/solatis/cronconv/internal/types"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "cronconv.v1.Converter"

// ConverterServer is the server API for the conversion service.
// Requests and responses are google.protobuf.Struct messages; field names
// are listed on each ConverterService method.
type ConverterServer interface {
	Parse(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Render(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Format(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSchedule(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// ScheduleStore is the catalog lookup the service needs.
// Implemented by *catalog.Store.
type ScheduleStore interface {
	Get(ctx context.Context, name string) (*types.Schedule, error)
	Decode(schedule *types.Schedule) (cronexpr.Expression, error)
}

// ConverterService implements ConverterServer.
// Thin orchestration layer delegating to the converter and the catalog.
type ConverterService struct {
	converter *cronexpr.Converter
	schedules ScheduleStore
}

// NewConverterService creates service instance with dependencies.
// schedules may be nil, in which case GetSchedule reports Unimplemented.
func NewConverterService(converter *cronexpr.Converter, schedules ScheduleStore) (*ConverterService, error) {
	if converter == nil {
		return nil, fmt.Errorf("converter cannot be nil")
	}
	return &ConverterService{
		converter: converter,
		schedules: schedules,
	}, nil
}

// RegisterConverterServer registers srv on s.
func RegisterConverterServer(s grpc.ServiceRegistrar, srv ConverterServer) {
	s.RegisterService(&ConverterServiceDesc, srv)
}

func unaryHandler(method string, call func(ConverterServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(ConverterServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + method,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(ConverterServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ConverterServiceDesc describes the conversion service for grpc.Server.
var ConverterServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ConverterServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler("Parse", ConverterServer.Parse),
		unaryHandler("Render", ConverterServer.Render),
		unaryHandler("Format", ConverterServer.Format),
		unaryHandler("GetSchedule", ConverterServer.GetSchedule),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cronconv/v1/converter.proto",
}

// ConverterClient is the client API for the conversion service.
type ConverterClient struct {
	cc grpc.ClientConnInterface
}

// NewConverterClient wraps a client connection.
func NewConverterClient(cc grpc.ClientConnInterface) *ConverterClient {
	return &ConverterClient{cc: cc}
}

func (c *ConverterClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Parse calls Converter.Parse.
func (c *ConverterClient) Parse(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "Parse", in, opts...)
}

// Render calls Converter.Render.
func (c *ConverterClient) Render(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "Render", in, opts...)
}

// Format calls Converter.Format.
func (c *ConverterClient) Format(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "Format", in, opts...)
}

// GetSchedule calls Converter.GetSchedule.
func (c *ConverterClient) GetSchedule(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "GetSchedule", in, opts...)
}
