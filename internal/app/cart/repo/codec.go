package repo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
)

// Wire layout of the stored cart table:
//
//	{"<userId>": [{"productId": "...", "quantity": 2, "productSnapshot": {...}}]}
//
// Older blobs written by the browser storefront used "productDetails" for the
// snapshot and numeric ids and prices; both are accepted on read and
// rewritten in the current layout.
type wireTable map[string][]wireLine

type wireLine struct {
	ProductID       flexString    `json:"productId"`
	Quantity        int           `json:"quantity"`
	ProductSnapshot *wireSnapshot `json:"productSnapshot,omitempty"`
	ProductDetails  *wireSnapshot `json:"productDetails,omitempty"`
}

type wireSnapshot struct {
	ProductID   flexString `json:"product_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Price       flexString `json:"price"`
	ImageURL    string     `json:"image_url,omitempty"`
	Category    string     `json:"category,omitempty"`
}

// flexString decodes a JSON string or number (or null) into a string.
// It always encodes as a JSON string.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*f = flexString(n.String())
	return nil
}

// encodeTable serializes the table. User keys are emitted in sorted order so
// the output is byte-stable for a given table.
func encodeTable(t *domain.CartTable) ([]byte, error) {
	out := make(wireTable, t.Len())
	for _, u := range t.Users() {
		lines := t.Lines(u)
		wl := make([]wireLine, 0, len(lines))
		for _, l := range lines {
			s := l.Snapshot
			wl = append(wl, wireLine{
				ProductID: flexString(l.ProductID),
				Quantity:  l.Quantity,
				ProductSnapshot: &wireSnapshot{
					ProductID:   flexString(s.ProductID),
					Name:        s.Name,
					Description: s.Description,
					Price:       flexString(s.Price),
					ImageURL:    s.ImageURL,
					Category:    s.Category,
				},
			})
		}
		out[string(u)] = wl
	}
	return json.Marshal(out)
}

// decodeTable parses and validates a stored table. Any invalid shape fails the
// whole table: a blob is either fully trusted or treated as absent.
func decodeTable(data []byte) (*domain.CartTable, error) {
	var wt wireTable
	if err := json.Unmarshal(data, &wt); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDeserialization, err)
	}

	t := domain.NewCartTable()
	for user, wl := range wt {
		if strings.TrimSpace(user) == "" {
			return nil, fmt.Errorf("%w: empty user id", domain.ErrDeserialization)
		}
		lines := make([]domain.CartLine, 0, len(wl))
		for i, w := range wl {
			line, err := w.toDomain()
			if err != nil {
				return nil, fmt.Errorf("%w: user %q line %d: %v", domain.ErrDeserialization, user, i, err)
			}
			lines = append(lines, line)
		}
		if err := t.Put(domain.UserID(user), lines); err != nil {
			return nil, fmt.Errorf("%w: user %q: %v", domain.ErrDeserialization, user, err)
		}
	}
	return t, nil
}

func (w wireLine) toDomain() (domain.CartLine, error) {
	id := domain.ProductID(strings.TrimSpace(string(w.ProductID)))
	snap := w.ProductSnapshot
	if snap == nil {
		snap = w.ProductDetails
	}
	if snap == nil {
		return domain.CartLine{}, fmt.Errorf("product %q has no snapshot", id)
	}

	snapID := domain.ProductID(strings.TrimSpace(string(snap.ProductID)))
	switch {
	case id == "" && snapID == "":
		return domain.CartLine{}, domain.ErrEmptyProductID
	case id == "":
		id = snapID
	case snapID == "":
		snapID = id
	case snapID != id:
		return domain.CartLine{}, fmt.Errorf("snapshot is for product %q, line is for %q", snapID, id)
	}

	return domain.CartLine{
		ProductID: id,
		Quantity:  w.Quantity,
		Snapshot: domain.ProductSnapshot{
			ProductID:   snapID,
			Name:        snap.Name,
			Description: snap.Description,
			Price:       string(snap.Price),
			ImageURL:    snap.ImageURL,
			Category:    snap.Category,
		},
	}, nil
}
