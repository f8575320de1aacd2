package cart

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls CartService over an existing connection.
type Client struct {
	conn grpc.ClientConnInterface
}

func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func (c *Client) invoke(ctx context.Context, method string, req map[string]interface{}, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(req)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCart(ctx context.Context, userID string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetCart, map[string]interface{}{fieldUserID: userID}, opts...)
}

// AddToCart sends product as the snapshot; it should carry at least
// product_id, name and price.
func (c *Client) AddToCart(ctx context.Context, userID string, product map[string]interface{}, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodAddToCart, map[string]interface{}{
		fieldUserID:  userID,
		fieldProduct: product,
	}, opts...)
}

func (c *Client) SetQuantity(ctx context.Context, userID, productID string, quantity int, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodSetQuantity, map[string]interface{}{
		fieldUserID:    userID,
		fieldProductID: productID,
		fieldQuantity:  quantity,
	}, opts...)
}

func (c *Client) RemoveFromCart(ctx context.Context, userID, productID string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodRemoveFromCart, map[string]interface{}{
		fieldUserID:    userID,
		fieldProductID: productID,
	}, opts...)
}

func (c *Client) Checkout(ctx context.Context, userID string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodCheckout, map[string]interface{}{fieldUserID: userID}, opts...)
}
