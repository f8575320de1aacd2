package cart

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"
)

func validateAddToCart(req *structpb.Struct) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	product := req.GetFields()[fieldProduct].GetStructValue()
	if product == nil {
		return fmt.Errorf("product is required")
	}
	if stringField(product, fieldProductID) == "" {
		return fmt.Errorf("product.product_id is required")
	}
	return nil
}

func validateSetQuantity(req *structpb.Struct) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if stringField(req, fieldProductID) == "" {
		return fmt.Errorf("product_id is required")
	}
	v, ok := req.GetFields()[fieldQuantity]
	if !ok {
		return fmt.Errorf("quantity is required")
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return fmt.Errorf("quantity must be a number")
	}
	if n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > math.MaxInt32 {
		return fmt.Errorf("quantity must be a whole number")
	}
	return nil
}

func validateRemoveFromCart(req *structpb.Struct) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if stringField(req, fieldProductID) == "" {
		return fmt.Errorf("product_id is required")
	}
	return nil
}
