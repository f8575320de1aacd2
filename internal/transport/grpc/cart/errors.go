package cart

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
)

// mapError translates domain sentinel errors into proper gRPC status codes.
// Unknown errors become codes.Internal.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	if errors.Is(err, domain.ErrNoUser) {
		return status.Error(codes.Unauthenticated, err.Error())
	}

	// Store unreachable or refusing writes; the cart is unchanged
	if errors.Is(err, domain.ErrStorageWrite) || errors.Is(err, domain.ErrStorageRead) {
		return status.Error(codes.Unavailable, err.Error())
	}

	// Invalid argument (validation)
	switch {
	case errors.Is(err, domain.ErrEmptyProductID),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrDuplicateLine),
		errors.Is(err, domain.ErrMissingPrice),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrNegativePrice):
		return status.Error(codes.InvalidArgument, err.Error())
	}

	return status.Error(codes.Internal, err.Error())
}
