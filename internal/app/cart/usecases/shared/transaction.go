package shared

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	contracts "github.com/murkotick/storefront-cart-service/internal/app/cart/contracts"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
)

const tracerName = "github.com/murkotick/storefront-cart-service/internal/app/cart"

// Mutation changes one user's cart inside a transaction.
type Mutation func(cart *domain.Cart) error

// Result is the state a transaction leaves behind.
type Result struct {
	Lines   []domain.CartLine
	Written bool
}

// MutateCart runs a single load -> mutate -> save cycle for userID.
//
// Nothing is written when the mutation leaves the cart unchanged. Events are
// published only after the table has been saved.
func MutateCart(
	ctx context.Context,
	repo contracts.TableRepo,
	publisher contracts.EventPublisher,
	op string,
	userID domain.UserID,
	fn Mutation,
) (*Result, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "cart."+op,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("cart.user_id", string(userID))),
	)
	defer span.End()

	if err := userID.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	// 1. Load the whole table
	table, err := repo.LoadTableForUpdate(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		return nil, err
	}
	cart := table.Cart(userID)

	// 2. Domain call
	if err := fn(cart); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "mutation rejected")
		return nil, err
	}

	if !cart.HasChanges() {
		span.SetAttributes(attribute.Bool("cart.written", false))
		return &Result{Lines: table.Lines(userID)}, nil
	}

	// 3. Write the table back
	if err := table.Apply(cart); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "apply failed")
		return nil, err
	}
	if err := repo.SaveTable(ctx, table); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		return nil, err
	}
	span.SetAttributes(
		attribute.Bool("cart.written", true),
		attribute.Int("cart.lines", len(table.Lines(userID))),
	)

	// 4. Fire-and-forget events
	if publisher != nil {
		publisher.Publish(ctx, cart.DomainEvents())
	}
	cart.ClearEvents()

	return &Result{Lines: table.Lines(userID), Written: true}, nil
}
