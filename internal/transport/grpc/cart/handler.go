package cart

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain/services"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/dto"
)

// CartAPI is the application surface the transport delegates to.
type CartAPI interface {
	GetCart(ctx context.Context, userID domain.UserID) []domain.CartLine
	AddToCart(ctx context.Context, userID domain.UserID, snapshot domain.ProductSnapshot) ([]domain.CartLine, error)
	SetQuantity(ctx context.Context, userID domain.UserID, productID domain.ProductID, quantity int) ([]domain.CartLine, error)
	RemoveFromCart(ctx context.Context, userID domain.UserID, productID domain.ProductID) ([]domain.CartLine, error)
	Checkout(ctx context.Context, userID domain.UserID) (*dto.Receipt, error)
	Quote(lines []domain.CartLine) (*services.Quote, error)
}

// Handler is a thin gRPC transport adapter.
// It validates input, maps Struct messages to application calls and back.
type Handler struct {
	api CartAPI
}

func NewHandler(api CartAPI) *Handler {
	return &Handler{api: api}
}

var _ CartServiceServer = (*Handler)(nil)

func (h *Handler) GetCart(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID := userIDOf(req)
	return h.reply(userID, h.api.GetCart(ctx, userID))
}

func (h *Handler) AddToCart(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := validateAddToCart(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	userID := userIDOf(req)
	lines, err := h.api.AddToCart(ctx, userID, mapSnapshot(req.GetFields()[fieldProduct].GetStructValue()))
	if err != nil {
		return nil, mapError(err)
	}
	return h.reply(userID, lines)
}

func (h *Handler) SetQuantity(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := validateSetQuantity(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	userID := userIDOf(req)
	lines, err := h.api.SetQuantity(ctx, userID, domain.ProductID(stringField(req, fieldProductID)), quantityOf(req))
	if err != nil {
		return nil, mapError(err)
	}
	return h.reply(userID, lines)
}

func (h *Handler) RemoveFromCart(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := validateRemoveFromCart(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	userID := userIDOf(req)
	lines, err := h.api.RemoveFromCart(ctx, userID, domain.ProductID(stringField(req, fieldProductID)))
	if err != nil {
		return nil, mapError(err)
	}
	return h.reply(userID, lines)
}

func (h *Handler) Checkout(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	receipt, err := h.api.Checkout(ctx, userIDOf(req))
	if err != nil {
		return nil, mapError(err)
	}
	out, err := receiptReply(receipt)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func (h *Handler) reply(userID domain.UserID, lines []domain.CartLine) (*structpb.Struct, error) {
	quote, qerr := h.api.Quote(lines)
	out, err := cartReply(userID, lines, quote, qerr)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}
