package cart

import (
	"strconv"
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain/services"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/dto"
)

// Struct field names used in requests and replies.
const (
	fieldUserID       = "user_id"
	fieldProduct      = "product"
	fieldProductID    = "product_id"
	fieldQuantity     = "quantity"
	fieldName         = "name"
	fieldDescription  = "description"
	fieldPrice        = "price"
	fieldImageURL     = "image_url"
	fieldCategory     = "category"
	fieldLines        = "lines"
	fieldSubtotal     = "subtotal"
	fieldItemCount    = "item_count"
	fieldTotal        = "total"
	fieldPricingError = "pricing_error"
	fieldPlaced       = "placed"
	fieldOrderID      = "order_id"
	fieldPlacedAt     = "placed_at"
)

// stringField reads a string field. Numbers are accepted and formatted
// without a trailing fraction, matching catalog ids and prices sent as JSON numbers.
func stringField(s *structpb.Struct, key string) string {
	v, ok := s.GetFields()[key]
	if !ok {
		return ""
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return strings.TrimSpace(k.StringValue)
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(k.NumberValue, 'f', -1, 64)
	}
	return ""
}

func userIDOf(req *structpb.Struct) domain.UserID {
	return domain.UserID(stringField(req, fieldUserID))
}

func mapSnapshot(product *structpb.Struct) domain.ProductSnapshot {
	return domain.ProductSnapshot{
		ProductID:   domain.ProductID(stringField(product, fieldProductID)),
		Name:        stringField(product, fieldName),
		Description: stringField(product, fieldDescription),
		Price:       stringField(product, fieldPrice),
		ImageURL:    stringField(product, fieldImageURL),
		Category:    stringField(product, fieldCategory),
	}
}

func quantityOf(req *structpb.Struct) int {
	return int(req.GetFields()[fieldQuantity].GetNumberValue())
}

func snapshotValue(s domain.ProductSnapshot) map[string]interface{} {
	return map[string]interface{}{
		fieldProductID:   string(s.ProductID),
		fieldName:        s.Name,
		fieldDescription: s.Description,
		fieldPrice:       s.Price,
		fieldImageURL:    s.ImageURL,
		fieldCategory:    s.Category,
	}
}

func linesValue(lines []domain.CartLine, quote *services.Quote) []interface{} {
	out := make([]interface{}, 0, len(lines))
	for i, l := range lines {
		m := map[string]interface{}{
			fieldProductID: string(l.ProductID),
			fieldQuantity:  l.Quantity,
			fieldProduct:   snapshotValue(l.Snapshot),
		}
		if quote != nil && i < len(quote.Lines) {
			m[fieldSubtotal] = quote.Lines[i].Subtotal.String()
		}
		out = append(out, m)
	}
	return out
}

// cartReply renders a cart with its quote. A pricing failure does not fail
// the call: the lines are still valid and the error is reported alongside.
func cartReply(userID domain.UserID, lines []domain.CartLine, quote *services.Quote, quoteErr error) (*structpb.Struct, error) {
	itemCount := 0
	for _, l := range lines {
		itemCount += l.Quantity
	}
	m := map[string]interface{}{
		fieldUserID:    string(userID),
		fieldLines:     linesValue(lines, quote),
		fieldItemCount: itemCount,
	}
	if quoteErr != nil {
		m[fieldPricingError] = quoteErr.Error()
	} else if quote != nil {
		m[fieldTotal] = quote.Total.String()
	}
	return structpb.NewStruct(m)
}

func receiptReply(r *dto.Receipt) (*structpb.Struct, error) {
	if r == nil {
		return structpb.NewStruct(map[string]interface{}{fieldPlaced: false})
	}
	m := map[string]interface{}{
		fieldPlaced:    true,
		fieldOrderID:   r.OrderID,
		fieldUserID:    string(r.UserID),
		fieldLines:     linesValue(r.Lines, nil),
		fieldItemCount: r.ItemCount,
		fieldPlacedAt:  r.PlacedAt.UTC().Format(time.RFC3339),
	}
	if r.Total != nil {
		m[fieldTotal] = r.Total.String()
	}
	if r.PricingError != nil {
		m[fieldPricingError] = r.PricingError.Error()
	}
	return structpb.NewStruct(m)
}
