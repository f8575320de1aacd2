package cart

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "storefront.cart.v1.CartService"

// Method names of the cart service.
const (
	MethodGetCart        = "GetCart"
	MethodAddToCart      = "AddToCart"
	MethodSetQuantity    = "SetQuantity"
	MethodRemoveFromCart = "RemoveFromCart"
	MethodCheckout       = "Checkout"
)

// CartServiceServer is the server side of storefront.cart.v1.CartService.
// Messages are google.protobuf.Struct so clients need no generated stubs.
type CartServiceServer interface {
	GetCart(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddToCart(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetQuantity(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveFromCart(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Checkout(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(CartServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryCall) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CartServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(CartServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// FullMethod returns the "/service/method" path used on the wire.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CartServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: MethodGetCart,
			Handler:    unaryHandler(MethodGetCart, CartServiceServer.GetCart),
		},
		{
			MethodName: MethodAddToCart,
			Handler:    unaryHandler(MethodAddToCart, CartServiceServer.AddToCart),
		},
		{
			MethodName: MethodSetQuantity,
			Handler:    unaryHandler(MethodSetQuantity, CartServiceServer.SetQuantity),
		},
		{
			MethodName: MethodRemoveFromCart,
			Handler:    unaryHandler(MethodRemoveFromCart, CartServiceServer.RemoveFromCart),
		},
		{
			MethodName: MethodCheckout,
			Handler:    unaryHandler(MethodCheckout, CartServiceServer.Checkout),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/cart/v1/cart_service.proto",
}

// Register attaches srv to a gRPC server.
func Register(s grpc.ServiceRegistrar, srv CartServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}
